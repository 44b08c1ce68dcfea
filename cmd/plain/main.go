package main

import (
	"fmt"
	"io"
	"os"

	"github.com/pkg/errors"
)

const cliToolVersion = "plain-cli 0.1.0-dev"

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

// run executes the CLI and returns the process exit status.
func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	root := newRootCommand(&cliState{stdin: stdin})
	root.SetArgs(args)
	root.SetIn(stdin)
	root.SetOut(stdout)
	root.SetErr(stderr)
	if err := root.Execute(); err != nil {
		var reported reportedError
		if !errors.As(err, &reported) {
			fmt.Fprintln(stderr, err)
		}
		return 1
	}
	return 0
}

// reportedError marks an error that has already been printed. Cobra's own
// failures (argument counts, unknown commands, bad flag values) arrive
// unmarked and are printed by run.
type reportedError struct {
	error
}

func (e reportedError) Unwrap() error {
	return e.error
}
