package main

import (
	"errors"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/tvandijk/zsnap/internal/zsnap/commands"
	"github.com/tvandijk/zsnap/internal/zsnap/display"
	"github.com/tvandijk/zsnap/internal/zsnap/lib"
)

// usageError marks errors caused by invalid command-line usage; they exit
// with status 2 instead of 1.
type usageError struct {
	err error
}

func (e usageError) Error() string { return e.err.Error() }
func (e usageError) Unwrap() error { return e.err }

// usageArgs wraps a cobra positional-args check so its failures exit with
// the usage status.
func usageArgs(check cobra.PositionalArgs) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if err := check(cmd, args); err != nil {
			return usageError{err}
		}
		return nil
	}
}

func exitCode(err error) int {
	var uerr usageError
	switch {
	case err == nil:
		return 0
	case errors.As(err, &uerr),
		errors.Is(err, lib.ErrInvalidTimeFormat),
		errors.Is(err, commands.ErrMissingSnapshotName):
		return 2
	default:
		return 1
	}
}

func main() {
	rootCmd := &cobra.Command{
		Use:           "zsnap",
		Short:         "List and destroy ZFS snapshots with composable filters.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return usageError{err}
	})

	// Add commands
	rootCmd.AddCommand(NewListCommand())
	rootCmd.AddCommand(NewDestroyCommand())
	rootCmd.AddCommand(NewCompletionCommand())

	// An interrupt mid-run terminates promptly. Each destroy is a single
	// atomic zfs operation, so there is nothing to clean up.
	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt)
	go func() {
		<-interrupt
		display.PrintNotice("interrupted")
		os.Exit(0)
	}()

	if err := rootCmd.Execute(); err != nil {
		display.PrintError(err.Error())
		os.Exit(exitCode(err))
	}
}
