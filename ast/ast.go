// Package ast defines the abstract syntax tree produced by the parser and
// walked by the evaluator.
package ast

// Node is the common interface implemented by every expression and
// statement variant.
type Node interface {
	// String returns a human readable representation of the node, similar
	// to (but not necessarily identical to) the original source.
	String() string
}

// Expr is implemented by every expression node. Expressions evaluate to a
// Value and may be nested within other expressions.
type Expr interface {
	Node
	exprNode()
}

// Stmt is implemented by every statement node. Statements cause side
// effects but do not themselves evaluate to a value.
type Stmt interface {
	Node
	stmtNode()
}
