package cmd

import (
	"github.com/a137x/timelock/internal/drandnet"
	logger "github.com/a137x/timelock/internal/logging"
	"github.com/a137x/timelock/internal/workflows"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// Helper functions for testing

// GetRootCmd returns the root command for testing.
func GetRootCmd() *cobra.Command {
	return rootCmd
}

// ResetGlobalState resets all global variables to their default values for testing.
func ResetGlobalState() {
	outputPath = ""
	useTestnet = false
	toStdout = false
	useArmor = false
	verbose = false
	debug = false
	quiet = false
	decryptOutputPath = ""

	testClient = nil
	testEncryptFunc = nil
	testDecryptFunc = nil
	Logger = logger.Logger{}

	// Cobra remembers which flags were set; clear that between runs.
	resetFlagState(rootCmd)
	for _, sub := range rootCmd.Commands() {
		resetFlagState(sub)
	}
}

func resetFlagState(c *cobra.Command) {
	c.Flags().VisitAll(func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	})
	c.PersistentFlags().VisitAll(func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	})
}

// SetClientForTesting injects a fake drand client.
func SetClientForTesting(c drandnet.Client) {
	testClient = c
}

// SetEncryptFuncForTesting injects a fake encryption primitive.
func SetEncryptFuncForTesting(fn workflows.EncryptFunc) {
	testEncryptFunc = fn
}

// SetDecryptFuncForTesting injects a fake decryption primitive.
func SetDecryptFuncForTesting(fn workflows.DecryptFunc) {
	testDecryptFunc = fn
}

// SetLogger sets the logger for testing.
func SetLogger(l logger.Logger) {
	Logger = l
}
