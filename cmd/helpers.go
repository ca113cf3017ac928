package cmd

import (
	"fmt"
	"io"
	"time"

	"github.com/a137x/timelock/internal/ui"
	"github.com/briandowns/spinner"
)

// startSpinner creates and starts a spinner with the given message when not
// in verbose, debug, or quiet mode. The spinner and its final message are
// written to w, which the callers point at stderr whenever stdout carries
// artifact bytes.
// Returns the spinner and a function that should be deferred to clean up.
//
// IMPORTANT: spinner.FinalMSG values do NOT need trailing newlines. The
// cleanup function automatically calls ui.EnsureNewline() on the final
// message before printing it. Under --quiet the final message is dropped
// entirely; fatal errors still surface through the returned error in main.
func startSpinner(message string, w io.Writer) (*spinner.Spinner, func()) {
	Logger.Debugf("Starting spinner with message: %s", message)
	s := spinner.New(spinner.CharSets[14], 100*time.Millisecond, spinner.WithWriter(w))
	s.Suffix = " " + message

	if err := s.Color("cyan"); err != nil {
		// If we can't set spinner color, just continue without it.
		Logger.Warnf("Failed to set spinner color: %v", err)
	}

	active := !verbose && !debug && !quiet
	if active {
		Logger.Debugf("Starting spinner in non-verbose mode")
		s.Start()
	} else {
		Logger.Infof("Running without spinner: %s", message)
	}

	cleanup := func() {
		// Ensure final message ends with a newline.
		finalMsg := ""
		if s.FinalMSG != "" && !quiet {
			finalMsg = ui.EnsureNewline(s.FinalMSG)
		}
		// Clear FinalMSG so s.Stop() doesn't print it.
		s.FinalMSG = ""

		// Stop the spinner first to clear the spinner line.
		if active {
			Logger.Debugf("Stopping spinner")
			s.Stop()
		}

		if finalMsg != "" {
			fmt.Fprint(w, finalMsg)
		}
	}

	return s, cleanup
}
