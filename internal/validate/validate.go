// Package validate provides pure input validation for the timelock CLI.
//
// Both validators run before any network client is constructed, so malformed
// input never triggers a network call.
package validate

import (
	"fmt"
	"strconv"
	"strings"

	terrors "github.com/a137x/timelock/internal/errors"
)

// Text checks that the plaintext argument is non-empty after trimming
// whitespace. The original string is returned untouched; trimming is only
// part of the emptiness check.
//
// Returns ErrEmptyText on failure.
func Text(s string) (string, error) {
	if strings.TrimSpace(s) == "" {
		return "", terrors.ErrEmptyText
	}
	return s, nil
}

// Round parses the round argument as an exact positive integer.
//
// Fractional values, signs, and anything beyond the 64-bit unsigned range
// are rejected, so the round identifier is always exactly representable.
// Returns ErrInvalidRound on failure.
func Round(s string) (uint64, error) {
	n, err := strconv.ParseUint(strings.TrimSpace(s), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", terrors.ErrInvalidRound, s)
	}
	if n == 0 {
		return 0, fmt.Errorf("%w: %q", terrors.ErrInvalidRound, s)
	}
	return n, nil
}
