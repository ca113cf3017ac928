package workflows

import (
	"bytes"
	"context"
	"errors"
	"io"
	"regexp"
	"strings"
	"testing"

	"filippo.io/age/armor"
	"github.com/drand/tlock"

	"github.com/a137x/timelock/internal/drandnet"
	terrors "github.com/a137x/timelock/internal/errors"
	logger "github.com/a137x/timelock/internal/logging"
)

// fakeClient implements drandnet.Client without touching the network.
type fakeClient struct {
	name      string
	info      *drandnet.ChainInfo
	infoErr   error
	infoCalls int
	handleErr error
}

func (f *fakeClient) Network() string { return f.name }

func (f *fakeClient) ChainInfo(ctx context.Context) (*drandnet.ChainInfo, error) {
	f.infoCalls++
	if f.infoErr != nil {
		return nil, f.infoErr
	}
	return f.info, nil
}

func (f *fakeClient) Handle() (tlock.Network, error) {
	if f.handleErr != nil {
		return nil, f.handleErr
	}
	return nil, errors.New("fake client has no tlock handle")
}

// fixedEncrypt returns an EncryptFunc that records its inputs and returns
// the given artifact.
func fixedEncrypt(artifact []byte, calls *int, gotRound *uint64, gotPlaintext *[]byte) EncryptFunc {
	return func(ctx context.Context, client drandnet.Client, round uint64, plaintext []byte) ([]byte, error) {
		*calls++
		if gotRound != nil {
			*gotRound = round
		}
		if gotPlaintext != nil {
			*gotPlaintext = append([]byte(nil), plaintext...)
		}
		return artifact, nil
	}
}

func TestEncryptValidatesBeforeClientUse(t *testing.T) {
	tests := []struct {
		name    string
		text    string
		round   string
		wantErr error
	}{
		{"empty text", "", "100", terrors.ErrEmptyText},
		{"whitespace text", "   ", "100", terrors.ErrEmptyText},
		{"zero round", "hello", "0", terrors.ErrInvalidRound},
		{"negative round", "hello", "-5", terrors.ErrInvalidRound},
		{"fractional round", "hello", "1.5", terrors.ErrInvalidRound},
		{"non-numeric round", "hello", "soon", terrors.ErrInvalidRound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := &fakeClient{name: "mainnet"}
			encryptCalls := 0

			_, err := Encrypt(context.Background(), EncryptOptions{
				Text:    tt.text,
				Round:   tt.round,
				Verbose: true,
				Client:  client,
				Encrypt: fixedEncrypt([]byte("x"), &encryptCalls, nil, nil),
			})
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("Encrypt error = %v, want %v", err, tt.wantErr)
			}
			if client.infoCalls != 0 {
				t.Errorf("chain info fetched %d times on invalid input, want 0", client.infoCalls)
			}
			if encryptCalls != 0 {
				t.Errorf("primitive invoked %d times on invalid input, want 0", encryptCalls)
			}
		})
	}
}

func TestEncryptPassesValidatedInputsToPrimitive(t *testing.T) {
	encryptCalls := 0
	var gotRound uint64
	var gotPlaintext []byte

	result, err := Encrypt(context.Background(), EncryptOptions{
		Text:    "Hello",
		Round:   "100",
		Client:  &fakeClient{name: "mainnet"},
		Encrypt: fixedEncrypt([]byte("artifact"), &encryptCalls, &gotRound, &gotPlaintext),
	})
	if err != nil {
		t.Fatalf("Encrypt failed: %v", err)
	}
	if encryptCalls != 1 {
		t.Errorf("primitive invoked %d times, want exactly 1", encryptCalls)
	}
	if gotRound != 100 {
		t.Errorf("primitive got round %d, want 100", gotRound)
	}
	if !bytes.Equal(gotPlaintext, []byte("Hello")) {
		t.Errorf("primitive got plaintext %q, want UTF-8 bytes of %q", gotPlaintext, "Hello")
	}
	if !bytes.Equal(result.Artifact, []byte("artifact")) {
		t.Errorf("result artifact = %q, want primitive output verbatim", result.Artifact)
	}
	if result.Round != 100 {
		t.Errorf("result round = %d, want 100", result.Round)
	}
	if result.Network != "mainnet" {
		t.Errorf("result network = %q, want mainnet", result.Network)
	}
}

func TestEncryptChainInfoFailureIsNonFatal(t *testing.T) {
	client := &fakeClient{name: "mainnet", infoErr: terrors.ErrChainInfoUnavailable}
	encryptCalls := 0
	var warnings bytes.Buffer

	result, err := Encrypt(context.Background(), EncryptOptions{
		Text:    "Hello",
		Round:   "100",
		Verbose: true,
		Client:  client,
		Encrypt: fixedEncrypt([]byte("artifact"), &encryptCalls, nil, nil),
		Log:     logger.Logger{Verbose: true, Err: &warnings, Out: io.Discard},
	})
	if err != nil {
		t.Fatalf("Encrypt must succeed despite chain info failure, got: %v", err)
	}
	if client.infoCalls != 1 {
		t.Errorf("chain info fetched %d times, want 1", client.infoCalls)
	}
	if encryptCalls != 1 {
		t.Errorf("primitive invoked %d times after diagnostic failure, want 1", encryptCalls)
	}
	if result.ChainInfo != nil {
		t.Errorf("result carries chain info after failed fetch")
	}
	if !strings.Contains(warnings.String(), "chain info unavailable") {
		t.Errorf("diagnostic failure not warned about, stderr: %q", warnings.String())
	}
}

func TestEncryptChainInfoFetchGating(t *testing.T) {
	tests := []struct {
		name      string
		verbose   bool
		quiet     bool
		wantCalls int
	}{
		{"fetched under verbose", true, false, 1},
		{"skipped without verbose", false, false, 0},
		{"skipped under quiet", true, true, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := &fakeClient{
				name: "mainnet",
				info: &drandnet.ChainInfo{Hash: "52db9b", SchemeID: "bls-unchained-g1-rfc9380"},
			}
			encryptCalls := 0

			result, err := Encrypt(context.Background(), EncryptOptions{
				Text:     "Hello",
				Round:    "100",
				ToStdout: true,
				Verbose:  tt.verbose,
				Quiet:    tt.quiet,
				Client:   client,
				Encrypt:  fixedEncrypt([]byte("artifact"), &encryptCalls, nil, nil),
				Log:      logger.Logger{Verbose: tt.verbose, Quiet: tt.quiet, Out: io.Discard, Err: io.Discard},
			})
			if err != nil {
				t.Fatalf("Encrypt failed: %v", err)
			}
			if client.infoCalls != tt.wantCalls {
				t.Errorf("chain info fetched %d times, want %d", client.infoCalls, tt.wantCalls)
			}
			if tt.wantCalls == 1 && result.ChainInfo == nil {
				t.Errorf("result missing chain info after successful fetch")
			}
		})
	}
}

func TestEncryptPrimitiveFailureIsTerminal(t *testing.T) {
	encryptErr := errors.New("relay unreachable")

	result, err := Encrypt(context.Background(), EncryptOptions{
		Text:   "Hello",
		Round:  "100",
		Client: &fakeClient{name: "mainnet"},
		Encrypt: func(ctx context.Context, client drandnet.Client, round uint64, plaintext []byte) ([]byte, error) {
			return nil, encryptErr
		},
	})
	if !errors.Is(err, terrors.ErrEncryptFailed) {
		t.Fatalf("Encrypt error = %v, want ErrEncryptFailed", err)
	}
	if result != nil {
		t.Errorf("result must be nil on primitive failure")
	}
	if !strings.Contains(err.Error(), "relay unreachable") {
		t.Errorf("cause lost from error: %v", err)
	}
}

func TestEncryptDestinationResolution(t *testing.T) {
	run := func(t *testing.T, opts EncryptOptions) *EncryptResult {
		t.Helper()
		encryptCalls := 0
		opts.Text = "Hello"
		opts.Round = "100"
		opts.Encrypt = fixedEncrypt([]byte("artifact"), &encryptCalls, nil, nil)
		result, err := Encrypt(context.Background(), opts)
		if err != nil {
			t.Fatalf("Encrypt failed: %v", err)
		}
		return result
	}

	t.Run("StdoutYieldsStream", func(t *testing.T) {
		result := run(t, EncryptOptions{ToStdout: true, Client: &fakeClient{name: "mainnet"}})
		if !result.Destination.Stream {
			t.Errorf("destination = %v, want stream", result.Destination)
		}
	})

	t.Run("ExplicitPathKept", func(t *testing.T) {
		result := run(t, EncryptOptions{OutputPath: "secret.age", Client: &fakeClient{name: "mainnet"}})
		if result.Destination.Stream || result.Destination.Path != "secret.age" {
			t.Errorf("destination = %v, want secret.age", result.Destination)
		}
	})

	t.Run("AutoFilenameMainnet", func(t *testing.T) {
		result := run(t, EncryptOptions{Client: &fakeClient{name: "mainnet"}})
		pattern := regexp.MustCompile(`^encrypted-mainnet-round-100-[0-9TZ-]+\.age$`)
		if !pattern.MatchString(result.Destination.Path) {
			t.Errorf("auto filename %q does not match expected pattern", result.Destination.Path)
		}
	})

	t.Run("AutoFilenameTestnet", func(t *testing.T) {
		result := run(t, EncryptOptions{Client: &fakeClient{name: "testnet"}})
		pattern := regexp.MustCompile(`^encrypted-testnet-round-100-[0-9TZ-]+\.age$`)
		if !pattern.MatchString(result.Destination.Path) {
			t.Errorf("auto filename %q does not match expected pattern", result.Destination.Path)
		}
	})
}

func TestEncryptArmorWrapsArtifact(t *testing.T) {
	raw := []byte{0x00, 0x01, 0xfe, 0xff}
	encryptCalls := 0

	result, err := Encrypt(context.Background(), EncryptOptions{
		Text:    "Hello",
		Round:   "100",
		Armor:   true,
		Client:  &fakeClient{name: "mainnet"},
		Encrypt: fixedEncrypt(raw, &encryptCalls, nil, nil),
	})
	if err != nil {
		t.Fatalf("Encrypt failed: %v", err)
	}

	if !strings.HasPrefix(string(result.Artifact), armor.Header) {
		t.Fatalf("armored artifact missing header, got: %q", result.Artifact)
	}

	unwrapped, err := io.ReadAll(armor.NewReader(bytes.NewReader(result.Artifact)))
	if err != nil {
		t.Fatalf("unwrapping armored artifact: %v", err)
	}
	if !bytes.Equal(unwrapped, raw) {
		t.Errorf("armor round-trip = %v, want %v", unwrapped, raw)
	}
}
