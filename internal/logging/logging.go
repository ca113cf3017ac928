package logger

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
)

type Logger struct {
	Verbose bool
	Debug   bool
	Quiet   bool

	// Out receives info and debug messages. Defaults to os.Stdout; the cmd
	// layer points it at stderr when the artifact is streamed to stdout.
	Out io.Writer

	// Err receives warnings and errors. Defaults to os.Stderr.
	Err io.Writer
}

func (l Logger) out() io.Writer {
	if l.Out != nil {
		return l.Out
	}
	return os.Stdout
}

func (l Logger) err() io.Writer {
	if l.Err != nil {
		return l.Err
	}
	return os.Stderr
}

func (l Logger) Infof(msg string, args ...any) {
	if (l.Verbose || l.Debug) && !l.Quiet {
		fmt.Fprintf(l.out(), color.GreenString("[info] ")+msg+"\n", args...)
	}
}

func (l Logger) Debugf(msg string, args ...any) {
	if l.Debug && !l.Quiet {
		fmt.Fprintf(l.out(), color.CyanString("[debug] ")+msg+"\n", args...)
	}
}

func (l Logger) Warnf(msg string, args ...any) {
	if !l.Quiet {
		fmt.Fprintf(l.err(), color.YellowString("[warn] ")+msg+"\n", args...)
	}
}

// WarnfUser prints a user-facing warning without a level prefix.
func (l Logger) WarnfUser(msg string, args ...any) {
	if !l.Quiet {
		fmt.Fprintf(l.err(), color.YellowString("Warning: ")+msg+"\n", args...)
	}
}

// Errorf prints even under Quiet. Fatal failures are never silently swallowed.
func (l Logger) Errorf(msg string, args ...any) {
	fmt.Fprintf(l.err(), color.RedString("[error] ")+msg+"\n", args...)
}
