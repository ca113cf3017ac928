package drandnet

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/drand/tlock"
	dhttp "github.com/drand/tlock/networks/http"

	terrors "github.com/a137x/timelock/internal/errors"
)

// The two supported drand networks. Both run the unchained quicknet scheme,
// which is what timelock encryption requires.
const (
	mainnetHost      = "https://api.drand.sh"
	mainnetChainHash = "52db9ba70e0cc0f6eaf7803dd07447a1f5477735fd3f661792ba94600c84e971"

	testnetHost      = "https://pl-us.testnet.drand.sh"
	testnetChainHash = "cc9c398442737cbd141526600919edd69f1d6f9b4adb67e4d912fbc64341a9a5"
)

// chainInfoTimeout bounds the diagnostic metadata query. The query is
// best-effort; a slow relay must not stall the encryption call behind it.
const chainInfoTimeout = 10 * time.Second

// ChainInfo is the diagnostic metadata a drand relay reports for a chain.
type ChainInfo struct {
	Hash      string `json:"hash"`
	PublicKey string `json:"public_key"`
	SchemeID  string `json:"schemeID"`
	Period    int    `json:"period"`
	Genesis   int64  `json:"genesis_time"`
}

// Client is the narrow capability the pipeline needs from a drand network:
// a name for reporting, a diagnostic metadata query, and an opaque handle
// for the encryption primitive.
type Client interface {
	// Network returns the variant name, "mainnet" or "testnet".
	Network() string

	// ChainInfo fetches diagnostic chain metadata from the relay.
	ChainInfo(ctx context.Context) (*ChainInfo, error)

	// Handle returns the tlock network handle, constructing it on first use.
	Handle() (tlock.Network, error)
}

// httpClient talks to a drand HTTP relay. The tlock handle is built lazily
// so that selecting a client never performs I/O by itself.
type httpClient struct {
	name      string
	host      string
	chainHash string

	once      sync.Once
	handle    *dhttp.Network
	handleErr error
}

// Select maps the testnet flag to one of the two fixed network variants.
// Selection performs no I/O.
func Select(testnet bool) Client {
	if testnet {
		return &httpClient{name: "testnet", host: testnetHost, chainHash: testnetChainHash}
	}
	return &httpClient{name: "mainnet", host: mainnetHost, chainHash: mainnetChainHash}
}

func (c *httpClient) Network() string {
	return c.name
}

// ChainInfo queries the relay's info endpoint directly. The tlock handle is
// deliberately not involved: diagnostic failures must stay independent of
// the handle used for encryption.
func (c *httpClient) ChainInfo(ctx context.Context) (*ChainInfo, error) {
	ctx, cancel := context.WithTimeout(ctx, chainInfoTimeout)
	defer cancel()

	url := fmt.Sprintf("%s/%s/info", c.host, c.chainHash)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", terrors.ErrChainInfoUnavailable, err)
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", terrors.ErrChainInfoUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: relay returned status %d", terrors.ErrChainInfoUnavailable, resp.StatusCode)
	}

	var info ChainInfo
	if err := json.NewDecoder(resp.Body).Decode(&info); err != nil {
		return nil, fmt.Errorf("%w: %v", terrors.ErrChainInfoUnavailable, err)
	}

	return &info, nil
}

func (c *httpClient) Handle() (tlock.Network, error) {
	c.once.Do(func() {
		c.handle, c.handleErr = dhttp.NewNetwork(c.host, c.chainHash)
	})
	if c.handleErr != nil {
		return nil, fmt.Errorf("connecting to %s network: %w", c.name, c.handleErr)
	}
	return c.handle, nil
}
