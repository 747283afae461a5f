package ast

import (
	"strings"

	"github.com/vscript-lang/vscript/token"
)

// ExpressionStmt is a statement consisting of a bare expression, evaluated
// for its side effects with the result discarded.
type ExpressionStmt struct {
	Expr Expr
}

func (*ExpressionStmt) stmtNode() {}

func (s *ExpressionStmt) String() string { return s.Expr.String() }

// FunctionDecl declares a named function: "函数 f(a, b) { ... }".
type FunctionDecl struct {
	Name   token.Token
	Params []token.Token
	Body   []Stmt
}

func (*FunctionDecl) stmtNode() {}

func (f *FunctionDecl) String() string {
	params := make([]string, len(f.Params))
	for i, p := range f.Params {
		params[i] = p.Lexeme
	}
	return "函数 " + f.Name.Lexeme + "(" + strings.Join(params, ", ") + ") { ... }"
}

// IfStmt is a conditional statement with an optional else branch.
type IfStmt struct {
	Cond Expr
	Then Stmt
	Else Stmt // nil if there is no else branch
}

func (*IfStmt) stmtNode() {}

func (i *IfStmt) String() string {
	s := "如果 (" + i.Cond.String() + ") " + i.Then.String()
	if i.Else != nil {
		s += " 否则 " + i.Else.String()
	}
	return s
}

// LetStmt declares a new variable, optionally with an initializer. Without
// an initializer the variable is bound to null.
type LetStmt struct {
	Name        token.Token
	Initializer Expr // nil if omitted
}

func (*LetStmt) stmtNode() {}

func (l *LetStmt) String() string {
	if l.Initializer == nil {
		return "就是 " + l.Name.Lexeme
	}
	return "就是 " + l.Name.Lexeme + " = " + l.Initializer.String()
}

// ReturnStmt returns from the enclosing function, optionally carrying a
// value. Value is nil when the source omits the expression, which the parser
// allows only when the token after 返回 is '}'.
type ReturnStmt struct {
	Keyword token.Token
	Value   Expr // nil if omitted
}

func (*ReturnStmt) stmtNode() {}

func (r *ReturnStmt) String() string {
	if r.Value == nil {
		return "返回"
	}
	return "返回 " + r.Value.String()
}

// WhileStmt is a pretest loop. It has no surface syntax in VScript (no
// keyword reaches it from the parser) but remains part of the AST contract:
// the evaluator must still handle it exhaustively. Only code that builds the
// AST directly can produce one.
type WhileStmt struct {
	Cond Expr
	Body Stmt
}

func (*WhileStmt) stmtNode() {}

func (w *WhileStmt) String() string {
	return "while (" + w.Cond.String() + ") " + w.Body.String()
}

// BlockStmt is a brace-delimited sequence of statements that introduces a
// new lexical scope.
type BlockStmt struct {
	Stmts []Stmt
}

func (*BlockStmt) stmtNode() {}

func (b *BlockStmt) String() string {
	parts := make([]string, len(b.Stmts))
	for i, s := range b.Stmts {
		parts[i] = s.String()
	}
	return "{ " + strings.Join(parts, " ") + " }"
}

// ForStmt iterates Var over the elements of Iterable, which must evaluate to
// an array, executing Body once per element.
type ForStmt struct {
	Var      token.Token
	Iterable Expr
	Body     Stmt
}

func (*ForStmt) stmtNode() {}

func (f *ForStmt) String() string {
	return "对于 " + f.Var.Lexeme + " 在 " + f.Iterable.String() + " " + f.Body.String()
}
