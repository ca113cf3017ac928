// Package shared contains testing utilities shared between integration tests.
// This file provides common functions for running the CLI with injected
// fakes, capturing output, and setting up temporary working directories.
package shared

import (
	"bytes"
	"context"
	"errors"
	"os"
	"testing"

	"github.com/drand/tlock"

	"github.com/a137x/timelock/cmd"
	"github.com/a137x/timelock/internal/drandnet"
)

// FakeClient implements drandnet.Client for integration tests. No network
// is ever touched: ChainInfo answers from the struct and Handle always
// fails, so any test that reaches the real primitive fails loudly.
type FakeClient struct {
	Name      string
	Info      *drandnet.ChainInfo
	InfoErr   error
	InfoCalls int
}

func (f *FakeClient) Network() string {
	if f.Name == "" {
		return "mainnet"
	}
	return f.Name
}

func (f *FakeClient) ChainInfo(ctx context.Context) (*drandnet.ChainInfo, error) {
	f.InfoCalls++
	if f.InfoErr != nil {
		return nil, f.InfoErr
	}
	if f.Info == nil {
		return nil, errors.New("fake client has no chain info configured")
	}
	return f.Info, nil
}

func (f *FakeClient) Handle() (tlock.Network, error) {
	return nil, errors.New("fake client has no tlock handle")
}

// RunCommand executes the CLI with the given arguments, capturing stdout and
// stderr separately. Call Reset first and inject fakes before running so the
// invocation never touches the real network.
func RunCommand(t *testing.T, args ...string) (stdout string, stderr string, err error) {
	t.Helper()

	if args == nil {
		// SetArgs(nil) would fall back to os.Args, which under `go test`
		// carries the test binary's flags.
		args = []string{}
	}

	var outBuf, errBuf bytes.Buffer
	root := cmd.GetRootCmd()
	root.SetOut(&outBuf)
	root.SetErr(&errBuf)
	root.SetArgs(args)

	err = root.Execute()
	return outBuf.String(), errBuf.String(), err
}

// Reset clears global command state and registers cleanup so the next test
// starts from a fresh invocation.
func Reset(t *testing.T) {
	t.Helper()
	cmd.ResetGlobalState()
	t.Cleanup(cmd.ResetGlobalState)
}

// InTempDir switches the working directory to a fresh temporary directory
// for the duration of the test, so auto-named output files land somewhere
// inspectable and disposable.
func InTempDir(t *testing.T) string {
	t.Helper()

	originalWd, err := os.Getwd()
	if err != nil {
		t.Fatalf("Failed to get original working directory: %v", err)
	}

	tempDir := t.TempDir()
	if err := os.Chdir(tempDir); err != nil {
		t.Fatalf("Failed to change to temp directory: %v", err)
	}

	t.Cleanup(func() {
		if err := os.Chdir(originalWd); err != nil {
			t.Fatalf("Failed to change to original directory: %v", err)
		}
	})

	return tempDir
}
