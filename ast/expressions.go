package ast

import (
	"strconv"
	"strings"

	"github.com/vscript-lang/vscript/token"
)

func toString(v interface{}) string {
	if f, ok := v.(float64); ok {
		return strconv.FormatFloat(f, 'f', -1, 64)
	}
	return ""
}

// Binary is a binary operator expression, e.g. "a + b".
type Binary struct {
	Left     Expr
	Operator token.Token
	Right    Expr
}

func (*Binary) exprNode() {}

func (b *Binary) String() string {
	return "(" + b.Left.String() + " " + b.Operator.Lexeme + " " + b.Right.String() + ")"
}

// Grouping is a parenthesized expression, e.g. "(a + b)".
type Grouping struct {
	Inner Expr
}

func (*Grouping) exprNode() {}

func (g *Grouping) String() string {
	return "(" + g.Inner.String() + ")"
}

// Literal is a constant value appearing directly in source: a number,
// string, boolean, or null.
type Literal struct {
	Value interface{} // float64, string, bool, or nil
}

func (*Literal) exprNode() {}

func (l *Literal) String() string {
	if l.Value == nil {
		return "空"
	}
	switch v := l.Value.(type) {
	case string:
		return `"` + v + `"`
	case bool:
		if v {
			return "真"
		}
		return "假"
	default:
		return toString(v)
	}
}

// Unary is a prefix operator expression, e.g. "-a" or "非 a".
type Unary struct {
	Operator token.Token
	Right    Expr
}

func (*Unary) exprNode() {}

func (u *Unary) String() string {
	return "(" + u.Operator.Lexeme + u.Right.String() + ")"
}

// Variable is a reference to a named binding.
type Variable struct {
	Name token.Token
}

func (*Variable) exprNode() {}

func (v *Variable) String() string { return v.Name.Lexeme }

// Assign is a variable assignment expression, e.g. "x = 1". The parser only
// ever produces this with Name resolved to a Variable's identifier token; any
// other left-hand side is rejected at parse time.
type Assign struct {
	Name  token.Token
	Value Expr
}

func (*Assign) exprNode() {}

func (a *Assign) String() string {
	return "(" + a.Name.Lexeme + " = " + a.Value.String() + ")"
}

// Call is a function invocation expression, e.g. "f(1, 2)".
type Call struct {
	Callee Expr
	Paren  token.Token // the closing ")", used for error attribution
	Args   []Expr
}

func (*Call) exprNode() {}

func (c *Call) String() string {
	args := make([]string, len(c.Args))
	for i, a := range c.Args {
		args[i] = a.String()
	}
	return c.Callee.String() + "(" + strings.Join(args, ", ") + ")"
}

// ArrayLit is an array literal expression, e.g. "[1, 2, 3]".
type ArrayLit struct {
	Elements []Expr
}

func (*ArrayLit) exprNode() {}

func (a *ArrayLit) String() string {
	elems := make([]string, len(a.Elements))
	for i, e := range a.Elements {
		elems[i] = e.String()
	}
	return "[" + strings.Join(elems, ", ") + "]"
}
