package main

import (
	"fmt"
	"io"
	"os"

	"fortio.org/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/Alanissocool/plain-lang/pkg/driver"
)

// cliState carries the global flags and the configuration they resolve to.
type cliState struct {
	stdin io.Reader

	configPath string
	logLevel   string
	noColor    bool
	strict     bool
	loopLimit  int64

	cfg *driver.Config
}

func newRootCommand(state *cliState) *cobra.Command {
	root := &cobra.Command{
		Use:   "plain",
		Short: "Run programs written in plain English.",
		Long: `Plain runs programs written as English sentences, one statement per line:

	set x to 5 then add 3 to x then show x

Without a subcommand it starts the interactive reader.`,
		Version:       cliToolVersion,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return state.configure(cmd)
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return state.repl(cmd)
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&state.configPath, "config", "", "path to a configuration file (default ./"+driver.ConfigFileName+" when present)")
	flags.StringVar(&state.logLevel, "log-level", "", "log level: debug, verbose, info, warning, error")
	flags.BoolVar(&state.noColor, "no-color", false, "disable coloured error output")
	flags.BoolVar(&state.strict, "strict", false, "reject lines containing unrecognized input")
	flags.Int64Var(&state.loopLimit, "loop-limit", 0, "largest count a loop may run with (0 = unlimited)")

	root.AddCommand(
		newRunCommand(state),
		newReplCommand(state),
		newTokensCommand(),
		newParseCommand(state),
		newVersionCommand(),
	)
	return root
}

// configure loads the configuration file and applies flag overrides.
func (s *cliState) configure(cmd *cobra.Command) error {
	cfg, err := driver.LoadConfig(s.configPath)
	if err != nil {
		return s.fail(cmd, err)
	}
	flags := cmd.Flags()
	if flags.Changed("log-level") {
		cfg.LogLevel = s.logLevel
	}
	if flags.Changed("no-color") {
		cfg.Color = !s.noColor
	}
	if flags.Changed("strict") {
		cfg.StrictLexing = s.strict
	}
	if flags.Changed("loop-limit") {
		cfg.LoopLimit = s.loopLimit
	}
	if err := cfg.Validate(); err != nil {
		return s.fail(cmd, err)
	}
	if cfg.LogLevel != "" {
		lvl, err := log.ValidateLevel(cfg.LogLevel)
		if err != nil {
			return s.fail(cmd, err)
		}
		log.SetLogLevel(lvl)
	}
	s.cfg = cfg
	return nil
}

// fail prints err on the command's error stream and returns it marked as
// reported so cobra stops with a non-zero status.
func (s *cliState) fail(cmd *cobra.Command, err error) error {
	fmt.Fprintln(cmd.ErrOrStderr(), err)
	return reportedError{err}
}

// interactive reports whether input comes from a terminal.
func (s *cliState) interactive() bool {
	f, ok := s.stdin.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintln(cmd.OutOrStdout(), cliToolVersion)
		},
	}
}
