package workflows

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"filippo.io/age/armor"
	"github.com/drand/tlock"

	"github.com/a137x/timelock/internal/drandnet"
	terrors "github.com/a137x/timelock/internal/errors"
	logger "github.com/a137x/timelock/internal/logging"
	"github.com/a137x/timelock/internal/output"
	"github.com/a137x/timelock/internal/utils"
	"github.com/a137x/timelock/internal/validate"
)

// EncryptFunc invokes the timelock primitive: plaintext in, an encrypted age
// artifact bound to the round out. The production implementation wraps
// tlock; tests substitute fakes.
type EncryptFunc func(ctx context.Context, client drandnet.Client, round uint64, plaintext []byte) ([]byte, error)

// EncryptOptions configures the encrypt workflow.
type EncryptOptions struct {
	// Text is the plaintext to encrypt. Validated non-blank.
	Text string

	// Round is the target drand round as given on the command line.
	// Validated as a positive integer before any client use.
	Round string

	// OutputPath is the output file path. Empty means an auto-generated
	// filename, unless ToStdout is set.
	OutputPath string

	// ToStdout streams the artifact to standard output instead of a file.
	ToStdout bool

	// Armor wraps the artifact in age ASCII armor.
	Armor bool

	// Quiet suppresses all reporting, including the diagnostic fetch.
	Quiet bool

	// Verbose enables the diagnostic chain-info fetch.
	Verbose bool

	// UseTestnet selects the testnet network variant.
	UseTestnet bool

	// Client overrides network selection. Nil means Select(UseTestnet).
	Client drandnet.Client

	// Encrypt overrides the timelock primitive. Nil means tlock.
	Encrypt EncryptFunc

	// Log receives diagnostic output.
	Log logger.Logger
}

// EncryptResult contains the outcome of an encrypt operation. The artifact
// is opaque: it is measured and delivered, never inspected.
type EncryptResult struct {
	// Artifact is the encrypted blob returned by the primitive.
	Artifact []byte

	// Round is the validated target round.
	Round uint64

	// Network is the selected variant name, "mainnet" or "testnet".
	Network string

	// Destination is where the artifact should be written.
	Destination output.Destination

	// ChainInfo holds diagnostic chain metadata when the verbose fetch
	// succeeded. Nil otherwise.
	ChainInfo *drandnet.ChainInfo
}

// Encrypt timelock-encrypts text against a future drand round.
//
// Inputs are validated before any network client is used. Under Verbose the
// workflow attempts a diagnostic chain-info fetch first; its failure is
// logged as a warning and never aborts encryption. The primitive is invoked
// exactly once with no retries.
//
// Returns ErrEmptyText or ErrInvalidRound for bad input.
// Returns ErrEncryptFailed if the primitive or its network fails.
func Encrypt(ctx context.Context, opts EncryptOptions) (*EncryptResult, error) {
	text, err := validate.Text(opts.Text)
	if err != nil {
		return nil, err
	}

	round, err := validate.Round(opts.Round)
	if err != nil {
		return nil, err
	}

	client := opts.Client
	if client == nil {
		client = drandnet.Select(opts.UseTestnet)
	}

	result := &EncryptResult{
		Round:   round,
		Network: client.Network(),
	}

	if opts.Verbose && !opts.Quiet {
		info, err := client.ChainInfo(ctx)
		if err != nil {
			// Diagnostic only. Encryption proceeds regardless.
			opts.Log.Warnf("%v", err)
		} else {
			result.ChainInfo = info
			opts.Log.Infof("chain hash: %s", info.Hash)
			opts.Log.Infof("scheme: %s", info.SchemeID)
			opts.Log.Infof("public key: %s", utils.Truncate(info.PublicKey, 64))
		}
	}

	encrypt := opts.Encrypt
	if encrypt == nil {
		encrypt = tlockEncrypt
	}

	artifact, err := encrypt(ctx, client, round, []byte(text))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", terrors.ErrEncryptFailed, err)
	}

	if opts.Armor {
		artifact, err = armorWrap(artifact)
		if err != nil {
			return nil, err
		}
	}
	result.Artifact = artifact

	switch {
	case opts.ToStdout:
		result.Destination = output.Destination{Stream: true}
	case opts.OutputPath != "":
		result.Destination = output.Destination{Path: opts.OutputPath}
	default:
		result.Destination = output.Destination{Path: output.AutoFilename(result.Network, round, time.Now())}
	}

	return result, nil
}

// tlockEncrypt is the production EncryptFunc backed by the tlock primitive.
func tlockEncrypt(_ context.Context, client drandnet.Client, round uint64, plaintext []byte) ([]byte, error) {
	network, err := client.Handle()
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := tlock.New(network).Encrypt(&buf, bytes.NewReader(plaintext), round); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// armorWrap wraps an artifact in age ASCII armor.
func armorWrap(artifact []byte) ([]byte, error) {
	var buf bytes.Buffer
	w := armor.NewWriter(&buf)
	if _, err := w.Write(artifact); err != nil {
		return nil, fmt.Errorf("%w: armoring artifact: %v", terrors.ErrEncryptFailed, err)
	}
	if err := w.Close(); err != nil {
		return nil, fmt.Errorf("%w: armoring artifact: %v", terrors.ErrEncryptFailed, err)
	}
	return buf.Bytes(), nil
}
