// Package workflows provides high-level orchestration for timelock commands.
//
// Workflows coordinate the pipeline stages (validation, network selection,
// the timelock primitive, destination resolution) to implement complete
// user-facing features. Each workflow handles a single command's business
// logic, independent of CLI concerns like flag parsing, spinners, and output
// formatting.
//
// # Design Philosophy
//
// The cmd/ package should be a thin layer that:
//   - Parses command-line flags and arguments
//   - Calls the appropriate workflow function
//   - Delivers the artifact and formats the result for display
//
// Workflows handle everything else:
//   - Validating inputs before any network call
//   - Selecting the drand network variant
//   - Invoking the timelock primitive
//   - Resolving the output destination
//
// # Available Workflows
//
// Each command has a corresponding workflow:
//
//   - Encrypt: Timelock-encrypts text against a future drand round
//   - Decrypt: Decrypts an artifact once its bound round is reached
//
// # Error Handling
//
// Workflows return typed errors from the internal/errors package, allowing
// the CLI layer to provide appropriate user-facing messages without string
// matching. Use errors.Is() to check for specific error conditions:
//
//	result, err := workflows.Encrypt(ctx, opts)
//	if errors.Is(err, terrors.ErrEncryptFailed) {
//	    // Show user-friendly network-failure message
//	}
//
// The diagnostic chain-info fetch is the one recoverable step: its failure
// is logged as a warning and never aborts encryption.
//
// # Context Usage
//
// All workflow functions accept a context.Context as their first parameter.
// This bounds the network calls made through the drand client.
//
// # Testing Seams
//
// Options structs carry optional Client, Encrypt, and Decrypt fields that
// default to the production drand client and tlock primitive. Tests inject
// fakes there; no network is touched.
package workflows
