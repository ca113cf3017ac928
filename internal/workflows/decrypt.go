package workflows

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"

	"filippo.io/age/armor"
	"github.com/drand/tlock"

	"github.com/a137x/timelock/internal/drandnet"
	terrors "github.com/a137x/timelock/internal/errors"
	logger "github.com/a137x/timelock/internal/logging"
	"github.com/a137x/timelock/internal/output"
)

// DecryptFunc inverts the timelock primitive: artifact in, plaintext out,
// available only once the bound round has been reached.
type DecryptFunc func(ctx context.Context, client drandnet.Client, ciphertext []byte) ([]byte, error)

// DecryptOptions configures the decrypt workflow.
type DecryptOptions struct {
	// Ciphertext is the artifact read from the input file or stdin.
	Ciphertext []byte

	// OutputPath is the plaintext output path. Empty means stdout.
	OutputPath string

	// Quiet suppresses all reporting.
	Quiet bool

	// Verbose enables diagnostic reporting.
	Verbose bool

	// UseTestnet selects the testnet network variant.
	UseTestnet bool

	// Client overrides network selection. Nil means Select(UseTestnet).
	Client drandnet.Client

	// Decrypt overrides the timelock primitive. Nil means tlock.
	Decrypt DecryptFunc

	// Log receives diagnostic output.
	Log logger.Logger
}

// DecryptResult contains the outcome of a decrypt operation.
type DecryptResult struct {
	// Plaintext is the recovered text.
	Plaintext []byte

	// Network is the selected variant name, "mainnet" or "testnet".
	Network string

	// Armored indicates the input carried age ASCII armor.
	Armored bool

	// Destination is where the plaintext should be written.
	Destination output.Destination
}

// Decrypt recovers the plaintext from a timelock artifact.
//
// Armored input (age PEM) is detected by its header and unwrapped before the
// primitive runs.
//
// Returns ErrReadInput if the ciphertext is empty.
// Returns ErrTooEarly if the artifact's bound round has not been reached.
// Returns ErrDecryptFailed for any other primitive or network failure.
func Decrypt(ctx context.Context, opts DecryptOptions) (*DecryptResult, error) {
	if len(bytes.TrimSpace(opts.Ciphertext)) == 0 {
		return nil, fmt.Errorf("%w: no ciphertext provided", terrors.ErrReadInput)
	}

	ciphertext := opts.Ciphertext
	armored := isArmored(ciphertext)
	if armored {
		opts.Log.Debugf("unwrapping age armor")
		unwrapped, err := io.ReadAll(armor.NewReader(bytes.NewReader(ciphertext)))
		if err != nil {
			return nil, fmt.Errorf("%w: unwrapping armor: %v", terrors.ErrDecryptFailed, err)
		}
		ciphertext = unwrapped
	}

	client := opts.Client
	if client == nil {
		client = drandnet.Select(opts.UseTestnet)
	}

	decrypt := opts.Decrypt
	if decrypt == nil {
		decrypt = tlockDecrypt
	}

	plaintext, err := decrypt(ctx, client, ciphertext)
	if err != nil {
		if errors.Is(err, tlock.ErrTooEarly) || errors.Is(err, terrors.ErrTooEarly) {
			return nil, fmt.Errorf("%w: the artifact's round has not been reached yet", terrors.ErrTooEarly)
		}
		return nil, fmt.Errorf("%w: %v", terrors.ErrDecryptFailed, err)
	}

	result := &DecryptResult{
		Plaintext: plaintext,
		Network:   client.Network(),
		Armored:   armored,
	}

	if opts.OutputPath != "" {
		result.Destination = output.Destination{Path: opts.OutputPath}
	} else {
		result.Destination = output.Destination{Stream: true}
	}

	return result, nil
}

// tlockDecrypt is the production DecryptFunc backed by the tlock primitive.
func tlockDecrypt(_ context.Context, client drandnet.Client, ciphertext []byte) ([]byte, error) {
	network, err := client.Handle()
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := tlock.New(network).Decrypt(&buf, bytes.NewReader(ciphertext)); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// isArmored reports whether the input starts with the age armor header,
// ignoring leading whitespace.
func isArmored(data []byte) bool {
	return bytes.HasPrefix(bytes.TrimLeft(data, " \t\r\n"), []byte(armor.Header))
}
