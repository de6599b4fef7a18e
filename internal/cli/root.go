package cli

import (
	"fmt"
	"slices"

	"github.com/0xRadioAc7iv/daysince/daysince"
	"github.com/0xRadioAc7iv/daysince/internal/protocol"
	"github.com/0xRadioAc7iv/daysince/internal/utils"
	"github.com/spf13/cobra"
)

// NewRootCommand builds the daysince command. The first argument is either
// "did", followed by the label to record, or a label to look up.
//
// Flag parsing is disabled so every argument, including ones starting with
// a dash, is treated as a label.
func NewRootCommand(opts ...daysince.Option) *cobra.Command {
	return &cobra.Command{
		Use:                "daysince <label> | daysince did <label>",
		Short:              "Track how long it has been since you last did something",
		Args:               cobra.ArbitraryArgs,
		DisableFlagParsing: true,
		SilenceErrors:      true,
		SilenceUsage:       true,
		CompletionOptions:  cobra.CompletionOptions{DisableDefaultCmd: true},
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, args, opts)
		},
	}
}

// Execute runs cmd with args. cobra adds its shell completion commands
// while executing, so a first argument naming one of them is passed to RunE
// directly to keep it a label.
func Execute(cmd *cobra.Command, args []string) error {
	if args == nil {
		args = []string{}
	}

	if len(args) > 0 && slices.Contains(completionCommands, args[0]) {
		return cmd.RunE(cmd, args)
	}

	cmd.SetArgs(args)
	return cmd.Execute()
}

var completionCommands = []string{cobra.ShellCompRequestCmd, cobra.ShellCompNoDescRequestCmd}

func run(cmd *cobra.Command, args []string, opts []daysince.Option) error {
	command, err := protocol.ParseCommand(args)
	if err != nil {
		return err
	}

	tracker, err := daysince.Open(opts...)
	if err != nil {
		return err
	}

	resp, err := tracker.Execute(command.Cmd, command.Key)
	if err != nil {
		return fmt.Errorf("%s: %w", utils.QuoteArgs(args...), err)
	}

	fmt.Fprintln(cmd.OutOrStdout(), resp)
	return nil
}
