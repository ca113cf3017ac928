package cmd

import (
	"fmt"

	"golang.org/x/crypto/blake2b"

	"github.com/a137x/timelock/internal/drandnet"
	terrors "github.com/a137x/timelock/internal/errors"
	logger "github.com/a137x/timelock/internal/logging"
	"github.com/a137x/timelock/internal/ui"
	"github.com/a137x/timelock/internal/utils"
	"github.com/a137x/timelock/internal/workflows"

	"github.com/spf13/cobra"
)

var (
	outputPath string
	useTestnet bool
	toStdout   bool
	useArmor   bool
	verbose    bool
	debug      bool
	quiet      bool

	Logger logger.Logger

	// Test seams. Nil in production; integration tests inject fakes so no
	// command ever touches the real drand network.
	testClient      drandnet.Client
	testEncryptFunc workflows.EncryptFunc
	testDecryptFunc workflows.DecryptFunc
)

var rootCmd = &cobra.Command{
	Use:   "timelock \"<text>\" <round>",
	Short: "Timelock - encrypt text so it can only be decrypted after a future drand round.",
	Long: `Timelock encrypts free-form text against a future round of the drand
randomness beacon. Nobody, including you, can decrypt the result before the
network publishes that round.

The artifact is written in the age file format, either to a file or as raw
bytes on stdout for piping.

Examples:
  # Encrypt until mainnet round 5000000, auto-named output file
  timelock "see you in the future" 5000000

  # Stream the artifact into another tool, no reporting on stdout
  timelock "see you in the future" 5000000 --stdout --quiet | gzip > note.age.gz

  # Testnet, explicit output path, with chain diagnostics
  timelock "see you in the future" 5000000 --testnet --output note.age --verbose

Run 'timelock decrypt' once the round has been reached.`,
	Args:          cobra.ExactArgs(2),
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		Logger = logger.Logger{
			Verbose: verbose,
			Debug:   debug,
			Quiet:   quiet,
			Out:     cmd.OutOrStdout(),
			Err:     cmd.ErrOrStderr(),
		}
		if toStdout {
			// The artifact owns stdout; every report moves to stderr.
			Logger.Out = cmd.ErrOrStderr()
		}
		Logger.Debugf("flags: testnet=%t stdout=%t quiet=%t armor=%t", useTestnet, toStdout, quiet, useArmor)
	},
	PreRunE: func(cmd *cobra.Command, args []string) error {
		// Cobra can't express this dependency between flags itself.
		if quiet && !toStdout {
			return terrors.ErrQuietRequiresStdout
		}
		return nil
	},
	RunE: runEncrypt,
}

func init() {
	rootCmd.Flags().StringVarP(&outputPath, "output", "o", "", "write the artifact to this path (default: auto-generated filename)")
	rootCmd.Flags().BoolVarP(&toStdout, "stdout", "s", false, "stream raw artifact bytes to stdout")
	rootCmd.Flags().BoolVarP(&useArmor, "armor", "a", false, "wrap the artifact in age ASCII armor")
	rootCmd.PersistentFlags().BoolVarP(&useTestnet, "testnet", "t", false, "use the drand testnet instead of mainnet")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().BoolVarP(&debug, "debug", "d", false, "enable debug output")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "suppress all reporting (requires --stdout)")
	rootCmd.MarkFlagsMutuallyExclusive("output", "stdout")

	rootCmd.AddCommand(decryptCmd)
	rootCmd.AddCommand(versionCmd)
}

// Execute runs the CLI. main exits 1 on any returned error.
func Execute() error {
	err := rootCmd.Execute()
	if err != nil {
		// Stdout may be carrying artifact bytes; the report goes to stderr
		// and is never swallowed by --quiet.
		Logger.Errorf("%v", err)
	}
	return err
}

func runEncrypt(cmd *cobra.Command, args []string) error {
	Logger.Infof("Starting encrypt for round %s", args[1])

	reportOut := cmd.OutOrStdout()
	if toStdout {
		reportOut = cmd.ErrOrStderr()
	}

	spinner, cleanup := startSpinner("Encrypting with timelock...", reportOut)
	defer cleanup()

	result, err := workflows.Encrypt(cmd.Context(), workflows.EncryptOptions{
		Text:       args[0],
		Round:      args[1],
		OutputPath: outputPath,
		ToStdout:   toStdout,
		Armor:      useArmor,
		Quiet:      quiet,
		Verbose:    verbose || debug,
		UseTestnet: useTestnet,
		Client:     testClient,
		Encrypt:    testEncryptFunc,
		Log:        Logger,
	})
	if err != nil {
		spinner.FinalMSG = ui.Error.Sprint("✗") + " Encryption failed\n" +
			ui.Error.Sprint("Error: ") + err.Error()
		return err
	}

	if result.Destination.Stream && !useArmor && !quiet && utils.IsStdoutTerminal() {
		Logger.WarnfUser("streaming binary artifact bytes to a terminal; pipe stdout or use %s", ui.Code.Sprint("--armor"))
	}

	if err := result.Destination.WriteArtifact(result.Artifact, cmd.OutOrStdout()); err != nil {
		wrapped := fmt.Errorf("%w: %v", terrors.ErrWriteOutput, err)
		spinner.FinalMSG = ui.Error.Sprint("✗") + " Failed to write the artifact\n" +
			ui.Error.Sprint("Error: ") + err.Error()
		return wrapped
	}

	if verbose || debug {
		sum := blake2b.Sum256(result.Artifact)
		Logger.Infof("artifact: %d bytes, blake2b-256 %s", len(result.Artifact), utils.FormatDigest(sum[:]))
	}

	if result.Destination.Stream {
		// Stdout carries exactly the artifact; the summary goes to stderr.
		Logger.Infof("streamed %d artifact bytes for %s round %d", len(result.Artifact), result.Network, result.Round)
		return nil
	}

	finalMessage := ui.Success.Sprint("✓") + " Text encrypted until " +
		ui.Highlight.Sprint(result.Network) + " round " + ui.Highlight.Sprintf("%d", result.Round) + "\n" +
		ui.Info.Sprint("→") + " Artifact written to " + ui.Path.Sprint(result.Destination.Path) + "\n" +
		ui.Info.Sprint("→") + " Decrypt later with " + ui.Code.Sprint("timelock decrypt "+result.Destination.Path)
	spinner.FinalMSG = finalMessage
	return nil
}
