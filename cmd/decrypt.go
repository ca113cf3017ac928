package cmd

import (
	"errors"
	"fmt"
	"os"

	terrors "github.com/a137x/timelock/internal/errors"
	"github.com/a137x/timelock/internal/ui"
	"github.com/a137x/timelock/internal/utils"
	"github.com/a137x/timelock/internal/workflows"

	"github.com/spf13/cobra"
)

var decryptOutputPath string

func init() {
	decryptCmd.Flags().StringVarP(&decryptOutputPath, "output", "o", "", "write the plaintext to this path (default: stdout)")
}

var decryptCmd = &cobra.Command{
	Use:   "decrypt [file]",
	Short: "Decrypt a timelock artifact once its round has been reached",
	Long: `Decrypts an artifact produced by timelock. The input is a file argument,
or stdin when the argument is omitted or given as '-'. Armored input (age
ASCII armor) is detected and unwrapped automatically.

Decryption needs the beacon signature of the artifact's bound round, so it
only succeeds once the network has published that round. Use the same
network flag the artifact was created with.

Examples:
  # Decrypt a file to stdout
  timelock decrypt note.age

  # Decrypt a piped artifact to a file
  gunzip -c note.age.gz | timelock decrypt --output note.txt

  # Artifacts created with --testnet need --testnet here too
  timelock decrypt note.age --testnet`,
	Args:          cobra.MaximumNArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		toStream := decryptOutputPath == ""
		reportOut := cmd.OutOrStdout()
		if toStream {
			// Plaintext owns stdout; reports move to stderr.
			reportOut = cmd.ErrOrStderr()
			Logger.Out = cmd.ErrOrStderr()
		}

		Logger.Infof("Starting decrypt command")

		ciphertext, source, err := readCiphertext(args)
		if err != nil {
			return fmt.Errorf("%w: %v", terrors.ErrReadInput, err)
		}
		Logger.Debugf("Read %d ciphertext bytes from %s", len(ciphertext), source)

		spinner, cleanup := startSpinner("Decrypting timelock artifact...", reportOut)
		defer cleanup()

		result, err := workflows.Decrypt(cmd.Context(), workflows.DecryptOptions{
			Ciphertext: ciphertext,
			OutputPath: decryptOutputPath,
			Quiet:      quiet,
			Verbose:    verbose || debug,
			UseTestnet: useTestnet,
			Client:     testClient,
			Decrypt:    testDecryptFunc,
			Log:        Logger,
		})
		if err != nil {
			if errors.Is(err, terrors.ErrTooEarly) {
				spinner.FinalMSG = ui.Warning.Sprint("✗") + " Too early: the artifact's round has not been published yet\n" +
					ui.Info.Sprint("→") + " Try again once the round is reached"
			} else {
				spinner.FinalMSG = ui.Error.Sprint("✗") + " Decryption failed\n" +
					ui.Error.Sprint("Error: ") + err.Error()
			}
			return err
		}

		if result.Armored {
			Logger.Debugf("Input carried age armor")
		}

		if err := result.Destination.WriteArtifact(result.Plaintext, cmd.OutOrStdout()); err != nil {
			wrapped := fmt.Errorf("%w: %v", terrors.ErrWriteOutput, err)
			spinner.FinalMSG = ui.Error.Sprint("✗") + " Failed to write the plaintext\n" +
				ui.Error.Sprint("Error: ") + err.Error()
			return wrapped
		}

		if toStream {
			Logger.Infof("streamed %d plaintext bytes from the %s network", len(result.Plaintext), result.Network)
			return nil
		}

		spinner.FinalMSG = ui.Success.Sprint("✓") + " Artifact decrypted\n" +
			ui.Info.Sprint("→") + " Plaintext written to " + ui.Path.Sprint(result.Destination.Path)
		return nil
	},
}

// readCiphertext reads the artifact from the file argument, or stdin when
// the argument is omitted or '-'.
func readCiphertext(args []string) ([]byte, string, error) {
	if len(args) == 0 || args[0] == "-" {
		data, err := utils.ReadStdin()
		return data, "stdin", err
	}

	data, err := os.ReadFile(args[0])
	if err != nil {
		return nil, args[0], err
	}
	return data, args[0], nil
}
