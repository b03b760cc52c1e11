package cmd

import (
	"github.com/spf13/cobra"

	"github.com/Tiliavir/timelog/internal/command"
)

func newCreateCmd(run runFunc) *cobra.Command {
	return &cobra.Command{
		Use:     "create <mnemonic> [code]",
		Aliases: []string{"new"},
		Short:   "Creates a new task",
		Long:    "Creates a new task.\n\nmnemonic: " + mnemonicDescription + "\ncode: " + codeDescription,
		Args:    cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(command.RawCreate{Mnemonic: args[0], Code: optionalArg(args, 1)})
		},
	}
}

func newEditCmd(run runFunc) *cobra.Command {
	return &cobra.Command{
		Use:   "edit <mnemonic> [code]",
		Short: "Changes the code of a task",
		Long:  "Changes the code of a task.\n\nmnemonic: " + mnemonicDescription + "\ncode: " + codeDescription,
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(command.RawEdit{Mnemonic: args[0], Code: optionalArg(args, 1)})
		},
	}
}

func newDeleteCmd(run runFunc) *cobra.Command {
	return &cobra.Command{
		Use:     "delete <mnemonic>",
		Aliases: []string{"del"},
		Short:   "Removes a task",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(command.RawDelete{Mnemonic: args[0]})
		},
	}
}
