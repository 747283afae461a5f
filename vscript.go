// Package vscript ties the lexer, parser, and evaluator together into a
// single entry point for running VScript source.
package vscript

import (
	"context"
	"io"
	"os"

	"github.com/vscript-lang/vscript/builtins"
	"github.com/vscript-lang/vscript/evaluator"
	"github.com/vscript-lang/vscript/object"
	"github.com/vscript-lang/vscript/parser"
)

// Option configures an Interpreter at construction time.
type Option func(*Interpreter)

// WithStdout sets the stream the 输出 builtin writes to. Defaults to
// os.Stdout.
func WithStdout(w io.Writer) Option {
	return func(i *Interpreter) { i.stdout = w }
}

// Interpreter holds a persistent global environment, so that successive
// calls to Run accumulate variable and function definitions, as a REPL
// session requires.
type Interpreter struct {
	eval   *evaluator.Evaluator
	stdout io.Writer
}

// New creates an Interpreter with its builtin functions registered into a
// fresh global environment.
func New(opts ...Option) *Interpreter {
	i := &Interpreter{
		eval:   evaluator.New(),
		stdout: os.Stdout,
	}
	for _, opt := range opts {
		opt(i)
	}
	builtins.Register(i.eval.Globals, i.stdout)
	return i
}

// Run parses and evaluates source against the interpreter's persistent
// global environment, returning the value of its last expression statement.
func (i *Interpreter) Run(ctx context.Context, source string) (object.Value, error) {
	stmts, err := parser.Parse(source)
	if err != nil {
		return nil, err
	}
	return i.eval.Run(ctx, stmts)
}

// Eval is a convenience function that constructs a fresh Interpreter and
// runs a single piece of source against it. Each call gets its own global
// environment; use New and Run directly to share state across calls.
func Eval(ctx context.Context, source string, opts ...Option) (object.Value, error) {
	return New(opts...).Run(ctx, source)
}
