package cmd

import (
	"fmt"

	"github.com/common-nighthawk/go-figure"
	"github.com/spf13/cobra"

	"github.com/a137x/timelock/internal/ui"
)

// Version is overridden at build time via -ldflags.
var Version = "dev"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the timelock version",
	Run: func(cmd *cobra.Command, args []string) {
		banner := figure.NewColorFigure("Timelock", "alligator2", "cyan", true)
		banner.Print()
		fmt.Fprintf(cmd.OutOrStdout(), "timelock %s %s\n", Version, ui.Muted.Sprint("drand timelock encryption"))
	},
}
