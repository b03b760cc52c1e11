package cmd

import (
	"github.com/spf13/cobra"

	"github.com/Tiliavir/timelog/internal/command"
)

// newTimestampCmd builds enter and exit, which only take a date/time.
func newTimestampCmd(name, short string, run runFunc, build func(command.RawTimestamp) command.Raw) *cobra.Command {
	var forgot bool
	c := &cobra.Command{
		Use:   name + " [datetime]",
		Short: short,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(build(command.RawTimestamp{Text: optionalArg(args, 0), Forgotten: forgot}))
		},
	}
	c.Flags().BoolVarP(&forgot, "forgot", "f", false, forgotDescription)
	return c
}
