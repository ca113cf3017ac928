// Package output delivers encrypted artifacts to their destination.
//
// A destination is either a file path or the process's standard output
// stream. Stream delivery writes raw artifact bytes with no framing, so
// piping stdout alone yields exactly the artifact. File delivery overwrites
// any existing file at the path without prompting.
package output

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"
)

// Destination describes where an artifact goes: a stream, or a named file.
type Destination struct {
	// Stream is true when the artifact goes to standard output.
	Stream bool

	// Path is the output file path. Empty when Stream is set.
	Path string
}

// String renders the destination for reporting.
func (d Destination) String() string {
	if d.Stream {
		return "stdout"
	}
	return d.Path
}

// AutoFilename builds the default output filename for a file destination:
// encrypted-<network>-round-<round>-<timestamp>.age. Colons and periods in
// the timestamp are replaced with dashes for filesystem safety.
func AutoFilename(network string, round uint64, now time.Time) string {
	ts := now.UTC().Format("2006-01-02T15:04:05.000Z")
	ts = strings.NewReplacer(":", "-", ".", "-").Replace(ts)
	return fmt.Sprintf("encrypted-%s-round-%d-%s.age", network, round, ts)
}

// WriteArtifact writes the artifact verbatim to its destination. The stdout
// writer is passed in rather than taken from the process so tests and the
// cobra command can substitute their own stream.
func (d Destination) WriteArtifact(artifact []byte, stdout io.Writer) error {
	if d.Stream {
		if _, err := stdout.Write(artifact); err != nil {
			return fmt.Errorf("writing artifact to stdout: %w", err)
		}
		return nil
	}

	if err := os.WriteFile(d.Path, artifact, 0o644); err != nil {
		return fmt.Errorf("writing artifact to %s: %w", d.Path, err)
	}
	return nil
}
