package main

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/tvandijk/zsnap/internal/zsnap/lib"
	"github.com/tvandijk/zsnap/internal/zsnap/types"
)

// filterFlags holds the selection flags shared by list and destroy.
type filterFlags struct {
	auto   bool
	manual bool
	after  string
	before string
	oldest int
	newest int
}

// register binds the shared filter flags onto cmd.
func (f *filterFlags) register(cmd *cobra.Command) {
	cmd.Flags().BoolVarP(&f.auto, "auto", "A", false, "Only consider automatic (zfs-auto-snap) snapshots")
	cmd.Flags().BoolVarP(&f.manual, "manual", "M", false, "Only consider manually created snapshots")
	cmd.Flags().StringVarP(&f.after, "after", "a", "", "Only snapshots created after TIME (YYYY-MM-DD[ hh:mm[:ss]])")
	cmd.Flags().StringVarP(&f.before, "before", "b", "", "Only snapshots created before TIME (YYYY-MM-DD[ hh:mm[:ss]])")
	cmd.Flags().IntVarP(&f.oldest, "oldest", "o", 0, "Keep the N oldest snapshots (negative N drops the N newest)")
	cmd.Flags().IntVarP(&f.newest, "newest", "n", 0, "Keep the N newest snapshots (negative N drops the N oldest)")
}

// selection builds the Selection from the parsed flags. The count filters
// only become active when their flag was actually given, so 0 keeps its
// meaning of "empty the selection" without being the default.
func (f *filterFlags) selection(cmd *cobra.Command) (types.Selection, error) {
	sel := types.Selection{
		AutoOnly:   f.auto,
		ManualOnly: f.manual,
	}

	if f.after != "" {
		// A bare date as a lower bound means "after the end of that day",
		// so the after boundary parses in round-up mode.
		t, err := lib.ParseTime(f.after, true)
		if err != nil {
			return sel, err
		}
		sel.After = t
	}
	if f.before != "" {
		t, err := lib.ParseTime(f.before, false)
		if err != nil {
			return sel, err
		}
		sel.Before = t
	}
	if cmd.Flags().Changed("oldest") {
		n := f.oldest
		sel.Oldest = &n
	}
	if cmd.Flags().Changed("newest") {
		n := f.newest
		sel.Newest = &n
	}
	return sel, nil
}

// datasetArg extracts the mandatory DATASET argument.
func datasetArg(args []string) (string, error) {
	if len(args) == 0 {
		return "", usageError{errors.New("missing dataset argument")}
	}
	return args[0], nil
}
