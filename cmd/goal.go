package cmd

import (
	"github.com/spf13/cobra"

	"github.com/Tiliavir/timelog/internal/command"
	"github.com/Tiliavir/timelog/internal/goal"
)

func newGoalCmd(run runFunc) *cobra.Command {
	var (
		period   string
		eraseAll bool
		timeText string
		erase    bool
	)
	c := &cobra.Command{
		Use:   "goal [mnemonic]",
		Short: "Sets a time goal for a provided task or for the work in general",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			action := goal.SetPeriod(period)
			if eraseAll {
				action = goal.EraseAllPeriods()
			}

			var arg *goal.ArgRequest
			switch {
			case erase:
				arg = goal.EraseArg()
			case cmd.Flags().Changed("time"):
				arg = goal.DurationArg(timeText)
			}

			return run(command.RawGoal{Action: action, Arg: arg, Mnemonic: optionalArg(args, 0)})
		},
	}
	c.Flags().StringVarP(&period, "period", "p", "", "Period of the goal (month, week, day, or a day of the week)")
	c.Flags().BoolVar(&eraseAll, "erase_all", false, "Erase the goals for all periods of the given task or work in general")
	c.Flags().StringVarP(&timeText, "time", "t", "", "Expected worked time (e.g. 8h 48m)")
	c.Flags().BoolVarP(&erase, "erase", "e", false, "Erase the time goal for the given period")
	c.MarkFlagsMutuallyExclusive("period", "erase_all")
	c.MarkFlagsOneRequired("period", "erase_all")
	c.MarkFlagsMutuallyExclusive("time", "erase")
	return c
}

func newGoalsCmd(run runFunc) *cobra.Command {
	return &cobra.Command{
		Use:   "goals [mnemonic]",
		Short: "Displays the time goals for a provided task or for the work in general",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(command.RawGoals{Mnemonic: optionalArg(args, 0)})
		},
	}
}
