package interpreter

import (
	"io"
	"os"

	"github.com/Alanissocool/plain-lang/pkg/runtime"
)

// Interpreter executes statement trees against one environment. It is not
// safe for concurrent use; a session owns exactly one.
type Interpreter struct {
	env       *runtime.Environment
	out       io.Writer
	loopLimit int64
}

// Option configures an Interpreter.
type Option func(*Interpreter)

// WithOutput directs show output to w instead of standard output.
func WithOutput(w io.Writer) Option {
	return func(i *Interpreter) {
		i.out = w
	}
}

// WithLoopLimit caps the count a loop may run with. Zero means no cap.
func WithLoopLimit(limit int64) Option {
	return func(i *Interpreter) {
		i.loopLimit = limit
	}
}

// WithEnvironment runs against an existing environment.
func WithEnvironment(env *runtime.Environment) Option {
	return func(i *Interpreter) {
		i.env = env
	}
}

// New returns an interpreter with an empty environment writing to stdout.
func New(opts ...Option) *Interpreter {
	i := &Interpreter{out: os.Stdout}
	for _, opt := range opts {
		opt(i)
	}
	if i.env == nil {
		i.env = runtime.NewEnvironment()
	}
	return i
}

// Environment exposes the session's bindings.
func (i *Interpreter) Environment() *runtime.Environment {
	return i.env
}
