package cmd

import (
	"github.com/spf13/cobra"

	"github.com/Tiliavir/timelog/internal/command"
)

func newStartCmd(run runFunc) *cobra.Command {
	var forgot bool
	c := &cobra.Command{
		Use:   "start <mnemonic> [datetime]",
		Short: "Registers the time the user started working on a task",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(command.RawStart{
				Mnemonic:  args[0],
				Timestamp: command.RawTimestamp{Text: optionalArg(args, 1), Forgotten: forgot},
			})
		},
	}
	c.Flags().BoolVarP(&forgot, "forgot", "f", false, forgotDescription)
	return c
}
