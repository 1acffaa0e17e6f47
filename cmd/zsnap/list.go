package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/tvandijk/zsnap/internal/zsnap/commands"
	"github.com/tvandijk/zsnap/internal/zsnap/lib"
)

func NewListCommand() *cobra.Command {
	var filters filterFlags
	var noHeader bool
	var parsable bool

	cmd := &cobra.Command{
		Use:               "list DATASET",
		Short:             "List snapshots of a dataset.",
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
			opts := commands.ListOptions{
				Selection: sel,
				NoHeader:  noHeader,
				Parsable:  parsable,
			}
			return commands.List(lib.NewSource(), dataset, opts, os.Stdout)
		},
	}

	filters.register(cmd)
	cmd.Flags().BoolVarP(&noHeader, "no-header", "H", false, "Omit the header line")
	cmd.Flags().BoolVarP(&parsable, "parsable", "p", false, "Machine-readable output (implies --no-header)")

	return cmd
}
