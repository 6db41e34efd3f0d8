package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/CodexForgeBR/has/internal/config"
	"github.com/CodexForgeBR/has/internal/exitcode"
	"github.com/CodexForgeBR/has/internal/report"
)

// NewRootCommand builds the has command. Flag parsing is disabled because
// only the first token may be an option; RunE stores the process exit
// status in *exit.
func NewRootCommand(cfg *config.Config, driver *report.Driver, exit *int) *cobra.Command {
	cmd := &cobra.Command{
		Use:                cfg.ProgramName + " tool [tool]...",
		Short:              "Checks presence of various command line tools",
		Args:               cobra.ArbitraryArgs,
		DisableFlagParsing: true,
		SilenceUsage:       true,
		SilenceErrors:      true,
		CompletionOptions:  cobra.CompletionOptions{DisableDefaultCmd: true},
		RunE: func(cmd *cobra.Command, args []string) error {
			code, err := Dispatch(cmd, cfg, driver, Classify(args))
			*exit = code
			return err
		},
	}

	SetCustomHelp(cmd)
	return cmd
}

// Execute runs cmd with args. cobra always routes a first token of
// "__complete" or "__completeNoDesc" to its hidden completion command, so
// those are handed to RunE directly and probed like any other name.
func Execute(cmd *cobra.Command, args []string) error {
	if len(args) > 0 && strings.HasPrefix(args[0], cobra.ShellCompRequestCmd) {
		return cmd.RunE(cmd, args)
	}
	if args == nil {
		// cobra falls back to os.Args when args is nil.
		args = []string{}
	}
	cmd.SetArgs(args)
	return cmd.Execute()
}

// Dispatch carries out inv and returns the exit status.
func Dispatch(cmd *cobra.Command, cfg *config.Config, driver *report.Driver, inv Invocation) (int, error) {
	out := cmd.OutOrStdout()

	switch inv.Action {
	case ActionVersion:
		fmt.Fprintf(out, "%s %s\n", cfg.ProgramName, cfg.Version)
		return exitcode.Success, nil
	case ActionHelp:
		if err := cmd.Help(); err != nil {
			return exitcode.Usage, fmt.Errorf("render help: %w", err)
		}
		return exitcode.Success, nil
	case ActionNoArgs:
		if err := cmd.Help(); err != nil {
			return exitcode.Usage, fmt.Errorf("render help: %w", err)
		}
		return exitcode.Usage, nil
	case ActionUnknownOption:
		fmt.Fprintf(out, "Unknown option: %s\n", inv.Option)
		if err := cmd.Help(); err != nil {
			return exitcode.Usage, fmt.Errorf("render help: %w", err)
		}
		return exitcode.Usage, nil
	default:
		ctx := cmd.Context()
		if ctx == nil {
			ctx = context.Background()
		}
		return driver.Run(ctx, inv.Names), nil
	}
}
