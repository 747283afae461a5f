package object

import (
	"strings"

	"github.com/vscript-lang/vscript/ast"
)

// Environment is the subset of the environment package's interface the
// object package needs; the concrete type lives in package environment,
// which in turn imports object for Value. Defined here to avoid an import
// cycle between object and environment.
type Environment interface {
	Define(name string, value Value)
	Get(name string) (Value, bool)
	Assign(name string, value Value) bool
}

// Function is a user-defined, closure-capturing callable produced by
// evaluating a 函数 declaration.
type Function struct {
	Decl    *ast.FunctionDecl
	Closure Environment
}

func NewFunction(decl *ast.FunctionDecl, closure Environment) *Function {
	return &Function{Decl: decl, Closure: closure}
}

func (*Function) Type() Type { return FUNCTION }

func (f *Function) String() string {
	params := make([]string, len(f.Decl.Params))
	for i, p := range f.Decl.Params {
		params[i] = p.Lexeme
	}
	return "<函数 " + f.Decl.Name.Lexeme + "(" + strings.Join(params, ", ") + ")>"
}

func (*Function) IsTruthy() bool { return true }

func (f *Function) Arity() int { return len(f.Decl.Params) }

func (f *Function) Name() string { return f.Decl.Name.Lexeme }

// BuiltinFunc is the signature host-implemented builtins are called with.
type BuiltinFunc func(args []Value) (Value, error)

// Builtin wraps a host-implemented function so it can be called like any
// other VScript callable.
type Builtin struct {
	FnName string
	FnAr   int
	Fn     BuiltinFunc
}

func NewBuiltin(name string, arity int, fn BuiltinFunc) *Builtin {
	return &Builtin{FnName: name, FnAr: arity, Fn: fn}
}

func (*Builtin) Type() Type { return FUNCTION }

func (b *Builtin) String() string { return "<内置函数 " + b.FnName + ">" }

func (*Builtin) IsTruthy() bool { return true }

func (b *Builtin) Arity() int { return b.FnAr }

func (b *Builtin) Name() string { return b.FnName }
