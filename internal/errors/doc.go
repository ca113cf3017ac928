// Package errors provides typed error values for the timelock application.
//
// Using sentinel errors allows callers to handle specific error conditions
// programmatically with errors.Is() rather than string matching. This makes
// error handling more robust and refactoring-safe.
//
// # Error Categories
//
// Errors are grouped by category:
//
//   - Validation errors: Bad user input (ErrEmptyText, ErrInvalidRound)
//   - Usage errors: Flag conflicts the flag library cannot express
//   - Diagnostic errors: Non-fatal reporting failures (ErrChainInfoUnavailable)
//   - Crypto errors: Encryption/decryption failures (ErrEncryptFailed)
//   - I/O errors: Input/output failures (ErrWriteOutput)
//
// # Usage
//
// Return errors from internal packages:
//
//	if round == 0 {
//	    return 0, errors.ErrInvalidRound
//	}
//
// Handle errors in the CLI layer:
//
//	result, err := workflows.Encrypt(ctx, opts)
//	if errors.Is(err, terrors.ErrEncryptFailed) {
//	    // Show user-friendly message
//	}
//
// Wrap errors with additional context:
//
//	return fmt.Errorf("%w: %v", errors.ErrEncryptFailed, err)
//
// Only ErrChainInfoUnavailable is recoverable; every other error aborts the
// remaining pipeline steps for the current invocation.
package errors
