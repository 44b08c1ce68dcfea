package driver

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/hashicorp/go-multierror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Alanissocool/plain-lang/pkg/interpreter"
	"github.com/Alanissocool/plain-lang/pkg/parser"
	"github.com/Alanissocool/plain-lang/pkg/runtime"
)

func plainConfig() *Config {
	cfg := DefaultConfig()
	cfg.Color = false
	return cfg
}

func TestRunSourceContinuesPastFailures(t *testing.T) {
	var out bytes.Buffer
	session := NewSession(plainConfig(), &out)
	source := strings.Join([]string{
		"set x to 5",
		"  show x  ",
		"",
		"show y",
		",",
		"set x",
		"add 3 to x then show x",
	}, "\n")

	err := session.RunSource("prog.plain", source)

	assert.Equal(t, "5\n"+
		"I don't know the value of 'y'. Did you mean 'Set y to ...' first?\n"+
		"Parse error in: set x - unexpected end of tokens\n"+
		"8\n", out.String())

	var merr *multierror.Error
	require.True(t, errors.As(err, &merr), "expected multierror, got %T", err)
	require.Len(t, merr.Errors, 2)
	assert.Equal(t, "prog.plain:4: I don't know the value of 'y'. Did you mean 'Set y to ...' first?", merr.Errors[0].Error())
	assert.Equal(t, "prog.plain:6: unexpected end of tokens", merr.Errors[1].Error())

	var rtErr *interpreter.RuntimeError
	assert.True(t, errors.As(merr.Errors[0], &rtErr))
	var parseErr *parser.ParseError
	assert.True(t, errors.As(merr.Errors[1], &parseErr))
}

func TestRunSourceSuccess(t *testing.T) {
	var out bytes.Buffer
	session := NewSession(plainConfig(), &out)
	err := session.RunSource("loop.plain", "set x to 0 then count to 3 then add 1 to x then display x\nshow it\n")
	require.NoError(t, err)
	assert.Equal(t, "0\n0\n0\n0\n", out.String())
}

func TestRunSourceSharesStateAcrossLines(t *testing.T) {
	var out bytes.Buffer
	session := NewSession(plainConfig(), &out)
	require.NoError(t, session.RunSource("p", "set x to \"a\"\nset y to 2"))
	val, ok := session.Interpreter().Environment().Lookup("x")
	require.True(t, ok)
	assert.Equal(t, runtime.StringValue{Val: "a"}, val)
	last, _ := session.Interpreter().Environment().Last()
	assert.Equal(t, runtime.IntegerValue{Val: 2}, last)
}

func TestServeNonInteractive(t *testing.T) {
	var out bytes.Buffer
	session := NewSession(plainConfig(), &out)
	err := session.Serve(strings.NewReader("set x to 2\n\n   \nshow x\nbogus words\nshow \"bye\""))
	require.NoError(t, err)
	assert.Equal(t, "2\nParse error: unknown statement\nbye\n", out.String())
}

func TestServeInteractivePrompts(t *testing.T) {
	var out bytes.Buffer
	cfg := plainConfig()
	cfg.Prompt = "> "
	session := NewSession(cfg, &out, WithInteractive(true))
	require.NoError(t, session.Serve(strings.NewReader("show 1\n")))
	assert.Equal(t, "> 1\n> \n", out.String())
}

func TestExecuteStrictLexing(t *testing.T) {
	var out bytes.Buffer
	cfg := plainConfig()
	lenient := NewSession(cfg, &out)
	require.NoError(t, lenient.Execute("show 1 @"))
	assert.Equal(t, "1\n", out.String())

	cfg.StrictLexing = true
	strict := NewSession(cfg, &out)
	err := strict.Execute("show 1 @")
	var parseErr *parser.ParseError
	require.True(t, errors.As(err, &parseErr))
	assert.Equal(t, `unrecognized input "@"`, parseErr.Message)
}

func TestSessionLoopLimit(t *testing.T) {
	var out bytes.Buffer
	cfg := plainConfig()
	cfg.LoopLimit = 2
	session := NewSession(cfg, &out)
	require.Error(t, session.RunSource("p", "count to 3 and show 1"))
	assert.Equal(t, "loop count 3 exceeds limit 2\n", out.String())
}

func TestServeLongLine(t *testing.T) {
	var out bytes.Buffer
	session := NewSession(plainConfig(), &out)
	long := strings.Repeat("a", 200*1024)
	input := "show \"" + long + "\"\nshow 1\n"
	require.NoError(t, session.Serve(strings.NewReader(input)))
	assert.Equal(t, long+"\n1\n", out.String())
}
