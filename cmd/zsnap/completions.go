package main

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/tvandijk/zsnap/internal/zsnap/lib"
)

// datasetCompletions provides dynamic tab completion for the DATASET
// argument by asking zfs for the available filesystems and volumes.
func datasetCompletions(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	// This completion function is for the first argument only.
	if len(args) != 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}

	datasets, err := lib.NewSource().Datasets()
	if err != nil {
		// Don't return an error, just fail to complete.
		return nil, cobra.ShellCompDirectiveNoFileComp
	}

	var suggestions []string
	for _, name := range datasets {
		if strings.HasPrefix(name, toComplete) {
			suggestions = append(suggestions, name)
		}
	}

	return suggestions, cobra.ShellCompDirectiveNoFileComp
}
