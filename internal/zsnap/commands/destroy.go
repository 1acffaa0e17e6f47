package commands

import (
	"bufio"
	"errors"
	"fmt"
	"io"

	"github.com/tvandijk/zsnap/internal/zsnap/lib"
	"github.com/tvandijk/zsnap/internal/zsnap/types"
)

// ErrMissingSnapshotName is a defensive check for a snapshot record with
// an empty name. Unreachable with well-formed zfs output.
var ErrMissingSnapshotName = errors.New("missing snapshot name")

// DestroyOptions holds the configuration for the destroy command.
type DestroyOptions struct {
	Selection types.Selection
	Yes       bool
	Verbose   bool
	DryRun    bool
}

// Destroy fetches the snapshots of dataset, applies the selection filters
// (including keep/invert) and destroys the selected snapshots one at a
// time, in order.
//
// Unless Yes is set, each snapshot is confirmed on in first; any answer
// not starting with y/Y — including EOF — declines and skips just that
// snapshot. With DryRun the equivalent zfs invocation is printed instead
// of executed. A failed destroy is reported to errOut and the loop
// continues; there are no retries and no rollback.
func Destroy(src SnapshotSource, dataset string, opts DestroyOptions, in io.Reader, out, errOut io.Writer) error {
	snaps, err := src.List(dataset)
	if err != nil {
		return err
	}
	selected := lib.Apply(snaps, opts.Selection)

	reader := bufio.NewReader(in)
	for _, snap := range selected {
		if snap.Name == "" {
			return ErrMissingSnapshotName
		}
		if !lib.ValidSnapshotName(snap.Name) {
			return fmt.Errorf("%w: %q", lib.ErrInvalidSnapshotName, snap.Name)
		}

		full := dataset + "@" + snap.Name
		if !opts.Yes && !confirm(reader, out, full) {
			continue
		}
		if opts.Verbose {
			fmt.Fprintf(out, "Destroying %s\n", full)
		}
		if opts.DryRun {
			fmt.Fprintf(out, "zfs destroy %s\n", full)
			continue
		}
		if err := src.Destroy(dataset, snap.Name); err != nil {
			fmt.Fprintf(errOut, "cannot destroy %s: %v\n", full, err)
		}
	}
	return nil
}

// confirm prompts for one snapshot and reads a single line. The default
// is no.
func confirm(reader *bufio.Reader, out io.Writer, full string) bool {
	fmt.Fprintf(out, "Destroy snapshot %s? (y/N) ", full)
	answer, err := reader.ReadString('\n')
	if err != nil && answer == "" {
		return false
	}
	return len(answer) > 0 && (answer[0] == 'y' || answer[0] == 'Y')
}
