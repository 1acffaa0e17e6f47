package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/tvandijk/zsnap/internal/zsnap/commands"
	"github.com/tvandijk/zsnap/internal/zsnap/lib"
)

// NewDestroyCommand creates the 'destroy' command for the CLI.
func NewDestroyCommand() *cobra.Command {
	var filters filterFlags
	var keep bool
	var yes bool
	var verbose bool
	var dryRun bool

	cmd := &cobra.Command{
		Use:   "destroy DATASET",
		Short: "Destroy the selected snapshots of a dataset.",
		Long: `Destroys the snapshots of DATASET selected by the filter flags, one at a
time and in creation order. Each snapshot is confirmed individually unless
--yes is given. With --keep the selection is inverted: the filtered
snapshots are kept and everything else is destroyed.`,
		Args:              usageArgs(cobra.MaximumNArgs(1)),
		ValidArgsFunction: datasetCompletions,
		RunE: func(cmd *cobra.Command, args []string) error {
			dataset, err := datasetArg(args)
			if err != nil {
				return err
			}
			sel, err := filters.selection(cmd)
			if err != nil {
				return err
			}
			sel.Keep = keep
			opts := commands.DestroyOptions{
				Selection: sel,
				Yes:       yes,
				Verbose:   verbose,
				DryRun:    dryRun,
			}
			return commands.Destroy(lib.NewSource(), dataset, opts, os.Stdin, os.Stdout, os.Stderr)
		},
	}

	filters.register(cmd)
	cmd.Flags().BoolVarP(&keep, "keep", "k", false, "Invert the selection: keep the selected snapshots, destroy the rest")
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Skip the per-snapshot confirmation prompt")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Announce each destruction")
	cmd.Flags().BoolVarP(&dryRun, "dry-run", "d", false, "Print the zfs commands instead of executing them")

	return cmd
}
