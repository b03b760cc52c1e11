package cmd

import (
	"github.com/spf13/cobra"

	"github.com/Tiliavir/timelog/internal/command"
)

func newStatusCmd(run runFunc) *cobra.Command {
	return &cobra.Command{
		Use:   "status [mnemonic]",
		Short: "Displays general information about the current status of the user's work",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(command.RawStatus{Mnemonic: optionalArg(args, 0)})
		},
	}
}

func newResolveCmd(run runFunc) *cobra.Command {
	return &cobra.Command{
		Use:   "resolve [mnemonic]",
		Short: "Lists the entries marked as forgotten so their date/time can be estimated better",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(command.RawResolve{Mnemonic: optionalArg(args, 0)})
		},
	}
}
