package driver

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"fortio.org/log"
	"github.com/fatih/color"
	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"

	"github.com/Alanissocool/plain-lang/pkg/interpreter"
	"github.com/Alanissocool/plain-lang/pkg/parser"
)

// maxLineBytes bounds a single interactive line.
const maxLineBytes = 1 << 20

// Session feeds whole lines to one interpreter and reports failures without
// stopping. A batch run and an interactive loop both go through it.
type Session struct {
	interp      *interpreter.Interpreter
	out         io.Writer
	failure     *color.Color
	parseOpts   parser.Options
	prompt      string
	interactive bool
}

// SessionOption configures a Session.
type SessionOption func(*Session)

// WithInteractive controls whether Serve prints the prompt.
func WithInteractive(interactive bool) SessionOption {
	return func(s *Session) {
		s.interactive = interactive
	}
}

// NewSession builds a session writing program output and failures to out.
func NewSession(cfg *Config, out io.Writer, opts ...SessionOption) *Session {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	failure := color.New(color.FgRed)
	if !cfg.Color {
		failure.DisableColor()
	}
	s := &Session{
		interp: interpreter.New(
			interpreter.WithOutput(out),
			interpreter.WithLoopLimit(cfg.LoopLimit),
		),
		out:       out,
		failure:   failure,
		parseOpts: parser.Options{StrictLexing: cfg.StrictLexing},
		prompt:    cfg.Prompt,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Interpreter exposes the session's interpreter.
func (s *Session) Interpreter() *interpreter.Interpreter {
	return s.interp
}

// Execute parses and runs one line. The returned error is either a
// *parser.ParseError or a *interpreter.RuntimeError.
func (s *Session) Execute(line string) error {
	tokens, dropped := parser.Scan(line)
	if len(dropped) > 0 {
		if s.parseOpts.StrictLexing {
			return parser.RejectUnrecognized(dropped)
		}
		for _, d := range dropped {
			log.Warnf("ignoring unrecognized input %q at offset %d", d.Text, d.Offset)
		}
	}
	stmt, err := parser.ParseTokens(tokens)
	if err != nil {
		return err
	}
	return s.interp.Exec(stmt)
}

// RunSource executes every line of source in order. Blank lines and lines
// holding a single comma are skipped. Each failure is printed and the run
// continues; the returned error lists every failed line.
func (s *Session) RunSource(name, source string) error {
	var result *multierror.Error
	for idx, raw := range strings.Split(source, "\n") {
		line := strings.TrimSpace(raw)
		if line == "" || line == "," {
			continue
		}
		lineNo := idx + 1
		log.LogVf("%s:%d: %s", name, lineNo, line)
		if err := s.Execute(line); err != nil {
			s.report(err, fmt.Sprintf("Parse error in: %s - ", line))
			result = multierror.Append(result, errors.Wrapf(err, "%s:%d", name, lineNo))
		}
	}
	if err := result.ErrorOrNil(); err != nil {
		log.Warnf("%s: %d line(s) failed", name, len(result.Errors))
		return err
	}
	return nil
}

// Serve reads lines from in until end of input, executing each one.
func (s *Session) Serve(in io.Reader) error {
	scanner := bufio.NewScanner(in)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineBytes)
	for {
		if s.interactive {
			fmt.Fprint(s.out, s.prompt)
		}
		if !scanner.Scan() {
			break
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if err := s.Execute(line); err != nil {
			s.report(err, "Parse error: ")
		}
	}
	if s.interactive {
		fmt.Fprintln(s.out)
	}
	return errors.Wrap(scanner.Err(), "read input")
}

// report prints err, prefixing parse failures with parsePrefix.
func (s *Session) report(err error, parsePrefix string) {
	var parseErr *parser.ParseError
	if errors.As(err, &parseErr) {
		s.failure.Fprintln(s.out, parsePrefix+parseErr.Message)
		return
	}
	s.failure.Fprintln(s.out, err.Error())
}
