package main

import (
	"fmt"

	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/Alanissocool/plain-lang/pkg/driver"
)

func newRunCommand(state *cliState) *cobra.Command {
	var failOnError bool
	cmd := &cobra.Command{
		Use:   "run <file | git+<url>//<path>[@<rev>]>",
		Short: "Run a Plain file line by line",
		Long: `Run executes every line of a Plain file against one interpreter.
Failing lines are reported and the run continues with the next line.

The file may live in a git repository:

	plain run git+https://example.com/scripts.git//hello.plain@main`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			src, err := driver.LoadSource(cmd.Context(), args[0])
			if err != nil {
				return state.fail(cmd, err)
			}
			session := driver.NewSession(state.cfg, cmd.OutOrStdout())
			runErr := session.RunSource(src.Name, src.Text)
			if runErr == nil || !failOnError {
				return nil
			}
			var merr *multierror.Error
			if errors.As(runErr, &merr) {
				return state.fail(cmd, fmt.Errorf("%d line(s) failed", merr.Len()))
			}
			return state.fail(cmd, runErr)
		},
	}
	cmd.Flags().BoolVar(&failOnError, "fail-on-error", false, "exit with status 1 when any line fails")
	return cmd
}

func newReplCommand(state *cliState) *cobra.Command {
	return &cobra.Command{
		Use:   "repl",
		Short: "Start the interactive reader",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return state.repl(cmd)
		},
	}
}

func (s *cliState) repl(cmd *cobra.Command) error {
	session := driver.NewSession(s.cfg, cmd.OutOrStdout(), driver.WithInteractive(s.interactive()))
	if err := session.Serve(cmd.InOrStdin()); err != nil {
		return s.fail(cmd, err)
	}
	return nil
}
