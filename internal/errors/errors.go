package errors

import "errors"

// Validation errors indicate malformed user input, detected before any
// network or crypto work begins.
var (
	// ErrEmptyText indicates the plaintext argument is empty or whitespace-only.
	ErrEmptyText = errors.New("text must not be empty")

	// ErrInvalidRound indicates the round argument is not a positive integer.
	ErrInvalidRound = errors.New("round must be a positive integer")
)

// Usage errors indicate flag combinations the flag library cannot reject on
// its own.
var (
	// ErrQuietRequiresStdout indicates --quiet was given without --stdout.
	ErrQuietRequiresStdout = errors.New("--quiet requires --stdout")
)

// Diagnostic errors are non-fatal: they are reported as warnings and never
// abort the run.
var (
	// ErrChainInfoUnavailable indicates the chain metadata query failed.
	ErrChainInfoUnavailable = errors.New("chain info unavailable")
)

// Cryptographic errors indicate failures in the timelock primitive or the
// network it depends on. No retry policy exists; all are terminal.
var (
	// ErrEncryptFailed indicates the timelock encryption call failed.
	ErrEncryptFailed = errors.New("failed to encrypt")

	// ErrDecryptFailed indicates the timelock decryption call failed.
	ErrDecryptFailed = errors.New("failed to decrypt")

	// ErrTooEarly indicates decryption was attempted before the bound round
	// has been reached.
	ErrTooEarly = errors.New("too early to decrypt")
)

// I/O errors indicate failures reading input or delivering the artifact.
var (
	// ErrReadInput indicates the ciphertext input could not be read.
	ErrReadInput = errors.New("failed to read input")

	// ErrWriteOutput indicates the output file or stream could not be written.
	ErrWriteOutput = errors.New("failed to write output")
)
