package cmd

import (
	"github.com/spf13/cobra"

	"github.com/Tiliavir/timelog/internal/command"
)

func newStopCmd(run runFunc) *cobra.Command {
	var (
		forgot bool
		commit bool
	)
	c := &cobra.Command{
		Use:   "stop [mnemonic] [datetime]",
		Short: "Registers the time the user stopped working on the current task",
		Args:  cobra.MaximumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(command.RawStop{
				Mnemonic:  optionalArg(args, 0),
				Timestamp: command.RawTimestamp{Text: optionalArg(args, 1), Forgotten: forgot},
				Commit:    commit,
			})
		},
	}
	c.Flags().BoolVarP(&forgot, "forgot", "f", false, forgotDescription)
	c.Flags().BoolVarP(&commit, "commit", "c", false, "Execute the commit subcommand after stop")
	return c
}

func newCommitCmd(run runFunc) *cobra.Command {
	return &cobra.Command{
		Use:   "commit <mnemonic> [datetime]",
		Short: "Marks a time period worked on a task as logged in an external tool",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(command.RawCommit{Mnemonic: args[0], Text: optionalArg(args, 1)})
		},
	}
}
