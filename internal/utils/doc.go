// Package utils provides shared utility functions for the timelock application.
//
// This package contains general-purpose helpers used across multiple packages.
// Functions are organized into logical groups:
//
// # I/O Utilities
//
// Functions for reading from stdin and other I/O operations:
//   - ReadStdin: reads all data from standard input
//
// # Terminal Utilities
//
// Functions for terminal detection:
//   - IsTerminal: checks if stdin is a terminal
//   - IsStdoutTerminal: checks if stdout is a terminal
//
// # Formatting Utilities
//
// Functions for report formatting:
//   - FormatDigest: hex-encodes an artifact digest
//   - Truncate: shortens long values (chain hashes, public keys) for display
package utils
