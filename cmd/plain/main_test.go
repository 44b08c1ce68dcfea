package main

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type result struct {
	code   int
	stdout string
	stderr string
}

func runCLI(t *testing.T, stdin io.Reader, args ...string) result {
	t.Helper()
	t.Chdir(t.TempDir())
	if stdin == nil {
		stdin = strings.NewReader("")
	}
	var stdout, stderr bytes.Buffer
	code := run(args, stdin, &stdout, &stderr)
	return result{code: code, stdout: stdout.String(), stderr: stderr.String()}
}

func writeScript(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "script.plain")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	return path
}

func TestVersion(t *testing.T) {
	res := runCLI(t, nil, "version")
	require.Equal(t, 0, res.code, res.stderr)
	assert.Equal(t, cliToolVersion+"\n", res.stdout)
}

func TestRunFile(t *testing.T) {
	path := writeScript(t, "set x to 5\nshow x\nshow y\nadd 3 to x then show it\n")
	res := runCLI(t, nil, "--no-color", "run", path)
	require.Equal(t, 0, res.code, res.stderr)
	assert.Equal(t, "5\nI don't know the value of 'y'. Did you mean 'Set y to ...' first?\n8\n", res.stdout)
}

func TestRunFailOnError(t *testing.T) {
	path := writeScript(t, "show y\nshow 1\nhello\n")
	res := runCLI(t, nil, "--no-color", "run", "--fail-on-error", path)
	assert.Equal(t, 1, res.code)
	assert.Equal(t, "I don't know the value of 'y'. Did you mean 'Set y to ...' first?\n1\nParse error in: hello - unknown statement\n", res.stdout)
	assert.Equal(t, "2 line(s) failed\n", res.stderr)
}

func TestRunMissingFile(t *testing.T) {
	res := runCLI(t, nil, "run", filepath.Join(t.TempDir(), "missing.plain"))
	assert.Equal(t, 1, res.code)
	assert.Contains(t, res.stderr, "read source")
}

func TestReplReadsStdin(t *testing.T) {
	res := runCLI(t, strings.NewReader("set x to 1\nshow x\nshow x is\n"), "--no-color")
	require.Equal(t, 0, res.code, res.stderr)
	assert.Equal(t, "1\nParse error: unexpected end of tokens\n", res.stdout)
}

func TestLoopLimitFlag(t *testing.T) {
	res := runCLI(t, strings.NewReader("count to 3 and show 1\ncount to 2 and show 2\n"), "--no-color", "--loop-limit", "2", "repl")
	require.Equal(t, 0, res.code, res.stderr)
	assert.Equal(t, "loop count 3 exceeds limit 2\n2\n2\n", res.stdout)
}

func TestStrictFlag(t *testing.T) {
	res := runCLI(t, strings.NewReader("show 1 @\n"), "--no-color", "--strict", "repl")
	require.Equal(t, 0, res.code, res.stderr)
	assert.Equal(t, "Parse error: unrecognized input \"@\"\n", res.stdout)
}

func TestInvalidSettings(t *testing.T) {
	res := runCLI(t, nil, "--loop-limit", "-1", "version")
	assert.Equal(t, 1, res.code)
	assert.Contains(t, res.stderr, "loop_limit must not be negative")

	res = runCLI(t, nil, "--config", filepath.Join(t.TempDir(), "absent.yml"), "version")
	assert.Equal(t, 1, res.code)
	assert.Contains(t, res.stderr, "config")
}

func TestTokensCommand(t *testing.T) {
	res := runCLI(t, nil, "tokens", "show", "x", "@")
	require.Equal(t, 0, res.code, res.stderr)
	assert.Contains(t, res.stdout, "IDENT")
	assert.Contains(t, res.stdout, "show")
	assert.Contains(t, res.stdout, `dropped "@" at offset 7`)
}

func TestParseCommand(t *testing.T) {
	res := runCLI(t, nil, "parse", "show it")
	require.Equal(t, 0, res.code, res.stderr)
	assert.Equal(t, "type: ShowStatement\nvalue:\n  type: LastValueReference\n", res.stdout)

	res = runCLI(t, nil, "parse", "set x")
	assert.Equal(t, 1, res.code)
	assert.Equal(t, "Parse error: unexpected end of tokens\n", res.stderr)
}

func TestCobraErrorsArePrinted(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"missing file argument", []string{"run"}, "accepts 1 arg(s), received 0"},
		{"unknown command", []string{"bogus"}, `unknown command "bogus"`},
		{"bad flag value", []string{"--loop-limit", "abc", "version"}, "invalid argument"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			res := runCLI(t, nil, tc.args...)
			assert.Equal(t, 1, res.code)
			assert.Contains(t, res.stderr, tc.want)
			assert.Equal(t, 1, strings.Count(res.stderr, "\n"), "expected a single report, got %q", res.stderr)
		})
	}
}

func TestReportedErrorsPrintOnce(t *testing.T) {
	res := runCLI(t, nil, "run", filepath.Join(t.TempDir(), "missing.plain"))
	assert.Equal(t, 1, res.code)
	assert.Equal(t, 1, strings.Count(res.stderr, "read source"), "got %q", res.stderr)
}

func TestParseCommandStrict(t *testing.T) {
	res := runCLI(t, nil, "parse", "show x @")
	require.Equal(t, 0, res.code, res.stderr)

	res = runCLI(t, nil, "--strict", "parse", "show x @")
	assert.Equal(t, 1, res.code)
	assert.Equal(t, "Parse error: unrecognized input \"@\"\n", res.stderr)
	assert.Empty(t, res.stdout)
}
