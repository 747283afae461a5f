// Package evaluator walks the AST produced by the parser against a chain of
// environment.Environment scopes, producing object.Value results or
// propagating a *errors.RuntimeError.
package evaluator

import (
	"context"

	"github.com/vscript-lang/vscript/ast"
	"github.com/vscript-lang/vscript/environment"
	"github.com/vscript-lang/vscript/errors"
	"github.com/vscript-lang/vscript/object"
	"github.com/vscript-lang/vscript/token"
)

// Evaluator is a single-threaded tree walker holding the global scope. Its
// state (the global environment, hence every function and builtin defined
// in it) persists across successive Run calls, which is what lets a REPL
// session accumulate definitions.
type Evaluator struct {
	Globals *environment.Environment
}

// New creates an Evaluator with a fresh global environment.
func New() *Evaluator {
	return &Evaluator{Globals: environment.New()}
}

// controlKind distinguishes normal completion from a return-unwind; it is
// never treated as an error by callers.
type controlKind int

const (
	controlNone controlKind = iota
	controlReturn
)

type control struct {
	kind  controlKind
	value object.Value
}

// Run evaluates a sequence of statements (as produced by parser.Parse)
// against the global environment and returns the value of the last
// expression statement, or null if the program produced none. ctx is
// checked between top-level statements and loop iterations so a long
// running or infinite-looping script can be cancelled from outside.
func (e *Evaluator) Run(ctx context.Context, stmts []ast.Stmt) (object.Value, error) {
	var result object.Value = object.Null
	for _, stmt := range stmts {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		val, ctrl, err := e.evalStmt(ctx, stmt, e.Globals)
		if err != nil {
			return nil, err
		}
		if ctrl.kind == controlReturn {
			return ctrl.value, nil
		}
		if val != nil {
			result = val
		}
	}
	return result, nil
}

func (e *Evaluator) evalStmt(ctx context.Context, stmt ast.Stmt, env *environment.Environment) (object.Value, control, error) {
	switch s := stmt.(type) {
	case *ast.ExpressionStmt:
		v, err := e.evalExpr(ctx, s.Expr, env)
		if err != nil {
			return nil, control{}, err
		}
		return v, control{}, nil

	case *ast.LetStmt:
		var value object.Value = object.Null
		if s.Initializer != nil {
			v, err := e.evalExpr(ctx, s.Initializer, env)
			if err != nil {
				return nil, control{}, err
			}
			value = v
		}
		env.Define(s.Name.Lexeme, value)
		return nil, control{}, nil

	case *ast.FunctionDecl:
		fn := object.NewFunction(s, env)
		env.Define(s.Name.Lexeme, fn)
		return nil, control{}, nil

	case *ast.BlockStmt:
		return e.evalBlock(ctx, s, environment.NewEnclosed(env))

	case *ast.IfStmt:
		cond, err := e.evalExpr(ctx, s.Cond, env)
		if err != nil {
			return nil, control{}, err
		}
		if cond.IsTruthy() {
			return e.evalStmt(ctx, s.Then, env)
		}
		if s.Else != nil {
			return e.evalStmt(ctx, s.Else, env)
		}
		return nil, control{}, nil

	case *ast.WhileStmt:
		for {
			if err := ctx.Err(); err != nil {
				return nil, control{}, err
			}
			cond, err := e.evalExpr(ctx, s.Cond, env)
			if err != nil {
				return nil, control{}, err
			}
			if !cond.IsTruthy() {
				return nil, control{}, nil
			}
			_, ctrl, err := e.evalStmt(ctx, s.Body, env)
			if err != nil {
				return nil, control{}, err
			}
			if ctrl.kind == controlReturn {
				return nil, ctrl, nil
			}
		}

	case *ast.ForStmt:
		return e.evalFor(ctx, s, env)

	case *ast.ReturnStmt:
		var value object.Value = object.Null
		if s.Value != nil {
			v, err := e.evalExpr(ctx, s.Value, env)
			if err != nil {
				return nil, control{}, err
			}
			value = v
		}
		return nil, control{kind: controlReturn, value: value}, nil

	default:
		return nil, control{}, errors.NewRuntimeError(0, 0, "未知的语句类型")
	}
}

func (e *Evaluator) evalBlock(ctx context.Context, block *ast.BlockStmt, env *environment.Environment) (object.Value, control, error) {
	var last object.Value
	for _, stmt := range block.Stmts {
		val, ctrl, err := e.evalStmt(ctx, stmt, env)
		if err != nil {
			return nil, control{}, err
		}
		if ctrl.kind == controlReturn {
			return nil, ctrl, nil
		}
		if val != nil {
			last = val
		}
	}
	return last, control{}, nil
}

func (e *Evaluator) evalFor(ctx context.Context, s *ast.ForStmt, env *environment.Environment) (object.Value, control, error) {
	iterVal, err := e.evalExpr(ctx, s.Iterable, env)
	if err != nil {
		return nil, control{}, err
	}
	arr, ok := iterVal.(*object.Array)
	if !ok {
		return nil, control{}, runtimeErrorAt(s.Var, "'对于' 循环需要一个数组")
	}
	loopEnv := environment.NewEnclosed(env)
	for _, elem := range arr.Elements {
		if err := ctx.Err(); err != nil {
			return nil, control{}, err
		}
		loopEnv.Define(s.Var.Lexeme, elem)
		_, ctrl, err := e.evalStmt(ctx, s.Body, loopEnv)
		if err != nil {
			return nil, control{}, err
		}
		if ctrl.kind == controlReturn {
			return nil, ctrl, nil
		}
	}
	return nil, control{}, nil
}

func runtimeErrorAt(t token.Token, format string, args ...interface{}) *errors.RuntimeError {
	return errors.NewRuntimeError(t.Line, t.Column, format, args...)
}
