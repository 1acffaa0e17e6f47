// Package commands implements the list and destroy actions of zsnap.
package commands

import (
	"fmt"
	"io"

	"github.com/tvandijk/zsnap/internal/zsnap/lib"
	"github.com/tvandijk/zsnap/internal/zsnap/types"
)

const createdLayout = "2006-01-02 15:04:05"

// SnapshotSource is the subset of lib.Source the commands use.
type SnapshotSource interface {
	List(dataset string) ([]types.Snapshot, error)
	Destroy(dataset, name string) error
}

// ListOptions holds the configuration for the list command.
type ListOptions struct {
	Selection types.Selection
	NoHeader  bool
	Parsable  bool
}

// List fetches the snapshots of dataset, applies the selection filters and
// prints one line per selected snapshot to out.
//
// Human mode prints a TYPE/CREATED/NAME table; the TYPE column is dropped
// when exactly one of the auto-only/manual-only filters is active, since
// every row would repeat the same value. Parsable mode prints
// "A|M  <unix-timestamp>  NAME" and always suppresses the header.
func List(src SnapshotSource, dataset string, opts ListOptions, out io.Writer) error {
	snaps, err := src.List(dataset)
	if err != nil {
		return err
	}
	selected := lib.Apply(snaps, opts.Selection)

	if opts.Parsable {
		for _, s := range selected {
			fmt.Fprintf(out, "%s  %d  %s\n", typeLetter(s), s.Creation.Unix(), s.Name)
		}
		return nil
	}

	showType := opts.Selection.AutoOnly == opts.Selection.ManualOnly

	if !opts.NoHeader {
		if showType {
			fmt.Fprintf(out, "%-6s  %-19s  %s\n", "TYPE", "CREATED", "NAME")
		} else {
			fmt.Fprintf(out, "%-19s  %s\n", "CREATED", "NAME")
		}
	}
	for _, s := range selected {
		if showType {
			fmt.Fprintf(out, "%-6s  %s  %s\n", typeWord(s), s.Creation.Format(createdLayout), s.Name)
		} else {
			fmt.Fprintf(out, "%s  %s\n", s.Creation.Format(createdLayout), s.Name)
		}
	}
	return nil
}

func typeWord(s types.Snapshot) string {
	if s.Auto {
		return "Auto"
	}
	return "Manual"
}

func typeLetter(s types.Snapshot) string {
	if s.Auto {
		return "A"
	}
	return "M"
}
