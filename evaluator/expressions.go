package evaluator

import (
	"context"
	"math"

	"github.com/vscript-lang/vscript/ast"
	"github.com/vscript-lang/vscript/environment"
	"github.com/vscript-lang/vscript/errors"
	"github.com/vscript-lang/vscript/object"
	"github.com/vscript-lang/vscript/token"
)

func (e *Evaluator) evalExpr(ctx context.Context, expr ast.Expr, env *environment.Environment) (object.Value, error) {
	switch ex := expr.(type) {
	case *ast.Literal:
		return literalValue(ex), nil

	case *ast.Grouping:
		return e.evalExpr(ctx, ex.Inner, env)

	case *ast.Variable:
		v, ok := env.Get(ex.Name.Lexeme)
		if !ok {
			return nil, runtimeErrorAt(ex.Name, "未定义的变量 '%s'", ex.Name.Lexeme)
		}
		return v, nil

	case *ast.Assign:
		val, err := e.evalExpr(ctx, ex.Value, env)
		if err != nil {
			return nil, err
		}
		if !env.Assign(ex.Name.Lexeme, val) {
			return nil, runtimeErrorAt(ex.Name, "未定义的变量 '%s'", ex.Name.Lexeme)
		}
		return val, nil

	case *ast.Unary:
		return e.evalUnary(ctx, ex, env)

	case *ast.Binary:
		return e.evalBinary(ctx, ex, env)

	case *ast.Call:
		return e.evalCall(ctx, ex, env)

	case *ast.ArrayLit:
		elems := make([]object.Value, len(ex.Elements))
		for i, el := range ex.Elements {
			v, err := e.evalExpr(ctx, el, env)
			if err != nil {
				return nil, err
			}
			elems[i] = v
		}
		return object.NewArray(elems), nil

	default:
		return nil, errors.NewRuntimeError(0, 0, "未知的表达式类型")
	}
}

func literalValue(l *ast.Literal) object.Value {
	if l.Value == nil {
		return object.Null
	}
	switch v := l.Value.(type) {
	case float64:
		return object.Number(v)
	case string:
		return object.String(v)
	case bool:
		return object.Boolean(v)
	default:
		return object.Null
	}
}

func (e *Evaluator) evalUnary(ctx context.Context, ex *ast.Unary, env *environment.Environment) (object.Value, error) {
	right, err := e.evalExpr(ctx, ex.Right, env)
	if err != nil {
		return nil, err
	}
	switch ex.Operator.Type {
	case token.MINUS:
		n, ok := right.(object.Number)
		if !ok {
			return nil, runtimeErrorAt(ex.Operator, "操作数必须是数字")
		}
		return -n, nil
	case token.NOT:
		return object.Boolean(!right.IsTruthy()), nil
	default:
		return nil, runtimeErrorAt(ex.Operator, "未知的一元运算符 '%s'", ex.Operator.Lexeme)
	}
}

func (e *Evaluator) evalBinary(ctx context.Context, ex *ast.Binary, env *environment.Environment) (object.Value, error) {
	left, err := e.evalExpr(ctx, ex.Left, env)
	if err != nil {
		return nil, err
	}
	right, err := e.evalExpr(ctx, ex.Right, env)
	if err != nil {
		return nil, err
	}

	switch ex.Operator.Type {
	case token.AND:
		return object.Boolean(left.IsTruthy() && right.IsTruthy()), nil
	case token.OR:
		return object.Boolean(left.IsTruthy() || right.IsTruthy()), nil
	case token.EQUAL_EQUAL:
		return object.Boolean(valuesEqual(left, right)), nil
	case token.BANG_EQUAL:
		return object.Boolean(!valuesEqual(left, right)), nil
	}

	switch ex.Operator.Type {
	case token.PLUS:
		return evalPlus(left, right, ex.Operator)
	case token.MINUS, token.STAR, token.SLASH, token.PERCENT:
		return evalArithmetic(ex.Operator, left, right)
	case token.LESS, token.LESS_EQUAL, token.GREATER, token.GREATER_EQUAL:
		return evalComparison(ex.Operator, left, right)
	default:
		return nil, runtimeErrorAt(ex.Operator, "未知的二元运算符 '%s'", ex.Operator.Lexeme)
	}
}

func evalPlus(left, right object.Value, op token.Token) (object.Value, error) {
	if ln, ok := left.(object.Number); ok {
		if rn, ok := right.(object.Number); ok {
			return ln + rn, nil
		}
	}
	if ls, ok := left.(object.String); ok {
		if rs, ok := right.(object.String); ok {
			return ls + rs, nil
		}
	}
	return nil, runtimeErrorAt(op, "'+' 运算符需要两个数字或两个字符串")
}

func evalArithmetic(op token.Token, left, right object.Value) (object.Value, error) {
	ln, ok1 := left.(object.Number)
	rn, ok2 := right.(object.Number)
	if !ok1 || !ok2 {
		return nil, runtimeErrorAt(op, "'%s' 运算符需要两个数字", op.Lexeme)
	}
	switch op.Type {
	case token.MINUS:
		return ln - rn, nil
	case token.STAR:
		return ln * rn, nil
	case token.SLASH:
		if rn == 0 {
			return nil, runtimeErrorAt(op, "除数不能为零")
		}
		return ln / rn, nil
	case token.PERCENT:
		// Float modulo takes the sign of the dividend, matching host semantics.
		return object.Number(math.Mod(float64(ln), float64(rn))), nil
	default:
		return nil, runtimeErrorAt(op, "未知的算术运算符 '%s'", op.Lexeme)
	}
}

func evalComparison(op token.Token, left, right object.Value) (object.Value, error) {
	ln, ok1 := left.(object.Number)
	rn, ok2 := right.(object.Number)
	if !ok1 || !ok2 {
		return nil, runtimeErrorAt(op, "'%s' 运算符需要两个数字", op.Lexeme)
	}
	switch op.Type {
	case token.LESS:
		return object.Boolean(ln < rn), nil
	case token.LESS_EQUAL:
		return object.Boolean(ln <= rn), nil
	case token.GREATER:
		return object.Boolean(ln > rn), nil
	case token.GREATER_EQUAL:
		return object.Boolean(ln >= rn), nil
	default:
		return nil, runtimeErrorAt(op, "未知的比较运算符 '%s'", op.Lexeme)
	}
}

// valuesEqual implements ==/!= : Number/String/Boolean compare by value,
// arrays and callables by identity. object.Value's own == already does the
// right thing for every variant, since Number/String/Boolean are compared
// by underlying value and *Array/*Function/*Builtin/nullValue by pointer or
// struct identity.
func valuesEqual(a, b object.Value) bool {
	return a.Type() == b.Type() && a == b
}

func (e *Evaluator) evalCall(ctx context.Context, ex *ast.Call, env *environment.Environment) (object.Value, error) {
	callee, err := e.evalExpr(ctx, ex.Callee, env)
	if err != nil {
		return nil, err
	}
	args := make([]object.Value, len(ex.Args))
	for i, a := range ex.Args {
		v, err := e.evalExpr(ctx, a, env)
		if err != nil {
			return nil, err
		}
		args[i] = v
	}

	callable, ok := callee.(object.Callable)
	if !ok {
		return nil, runtimeErrorAt(ex.Paren, "只能调用函数")
	}
	if len(args) != callable.Arity() {
		return nil, runtimeErrorAt(ex.Paren, "期望 %d 个参数但得到 %d 个", callable.Arity(), len(args))
	}

	switch fn := callable.(type) {
	case *object.Builtin:
		v, err := fn.Fn(args)
		if err != nil {
			return nil, runtimeErrorAt(ex.Paren, "%s", err.Error())
		}
		return v, nil
	case *object.Function:
		return e.callFunction(ctx, fn, args)
	default:
		return nil, runtimeErrorAt(ex.Paren, "只能调用函数")
	}
}

func (e *Evaluator) callFunction(ctx context.Context, fn *object.Function, args []object.Value) (object.Value, error) {
	closureEnv, ok := fn.Closure.(*environment.Environment)
	if !ok {
		return nil, runtimeErrorAt(fn.Decl.Name, "函数的闭包环境无效")
	}
	callEnv := environment.NewEnclosed(closureEnv)
	for i, p := range fn.Decl.Params {
		callEnv.Define(p.Lexeme, args[i])
	}
	for _, stmt := range fn.Decl.Body {
		_, ctrl, err := e.evalStmt(ctx, stmt, callEnv)
		if err != nil {
			return nil, err
		}
		if ctrl.kind == controlReturn {
			return ctrl.value, nil
		}
	}
	return object.Null, nil
}
