package parser_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vscript-lang/vscript/ast"
	"github.com/vscript-lang/vscript/parser"
)

func mustParse(t *testing.T, source string) []ast.Stmt {
	t.Helper()
	stmts, err := parser.Parse(source)
	require.NoError(t, err)
	return stmts
}

func TestParseLetDeclWithInitializer(t *testing.T) {
	stmts := mustParse(t, "就是 x = 10")
	require.Len(t, stmts, 1)
	let, ok := stmts[0].(*ast.LetStmt)
	require.True(t, ok)
	assert.Equal(t, "x", let.Name.Lexeme)
	require.NotNil(t, let.Initializer)
}

func TestParseLetDeclWithoutInitializer(t *testing.T) {
	stmts := mustParse(t, "就是 x")
	let := stmts[0].(*ast.LetStmt)
	assert.Nil(t, let.Initializer)
}

func TestParseBinaryPrecedence(t *testing.T) {
	stmts := mustParse(t, "1 + 2 * 3")
	expr := stmts[0].(*ast.ExpressionStmt).Expr
	assert.Equal(t, "(1 + (2 * 3))", expr.String())
}

func TestParseLeftAssociativity(t *testing.T) {
	stmts := mustParse(t, "1 - 2 - 3")
	expr := stmts[0].(*ast.ExpressionStmt).Expr
	assert.Equal(t, "((1 - 2) - 3)", expr.String())
}

func TestParseAssignmentRightAssociative(t *testing.T) {
	stmts := mustParse(t, "x = y = 1")
	expr := stmts[0].(*ast.ExpressionStmt).Expr
	assign, ok := expr.(*ast.Assign)
	require.True(t, ok)
	assert.Equal(t, "x", assign.Name.Lexeme)
	inner, ok := assign.Value.(*ast.Assign)
	require.True(t, ok)
	assert.Equal(t, "y", inner.Name.Lexeme)
}

func TestParseInvalidAssignmentTarget(t *testing.T) {
	_, err := parser.Parse("1 = 2")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "赋值目标必须是一个变量")
}

func TestParseFunctionDecl(t *testing.T) {
	stmts := mustParse(t, "函数 f(a, b) { 返回 a + b }")
	fn, ok := stmts[0].(*ast.FunctionDecl)
	require.True(t, ok)
	assert.Equal(t, "f", fn.Name.Lexeme)
	require.Len(t, fn.Params, 2)
	require.Len(t, fn.Body, 1)
}

func TestParseIfWithElse(t *testing.T) {
	stmts := mustParse(t, "如果 (x < 5) { 输出(x) } 否则 { 输出(0) }")
	ifStmt, ok := stmts[0].(*ast.IfStmt)
	require.True(t, ok)
	require.NotNil(t, ifStmt.Else)
}

func TestParseIfWithoutElse(t *testing.T) {
	stmts := mustParse(t, "如果 (x < 5) { 输出(x) }")
	ifStmt := stmts[0].(*ast.IfStmt)
	assert.Nil(t, ifStmt.Else)
}

func TestParseForLoop(t *testing.T) {
	stmts := mustParse(t, "对于 i 在 范围(0, 3) { 输出(i) }")
	forStmt, ok := stmts[0].(*ast.ForStmt)
	require.True(t, ok)
	assert.Equal(t, "i", forStmt.Var.Lexeme)
}

func TestParseReturnWithValue(t *testing.T) {
	stmts := mustParse(t, "函数 f() { 返回 1 }")
	fn := stmts[0].(*ast.FunctionDecl)
	ret := fn.Body[0].(*ast.ReturnStmt)
	require.NotNil(t, ret.Value)
}

func TestParseReturnOmittedBeforeClosingBrace(t *testing.T) {
	stmts := mustParse(t, "函数 f() { 返回 }")
	fn := stmts[0].(*ast.FunctionDecl)
	ret := fn.Body[0].(*ast.ReturnStmt)
	assert.Nil(t, ret.Value)
}

func TestParseCallExpression(t *testing.T) {
	stmts := mustParse(t, "f(1, 2)")
	call, ok := stmts[0].(*ast.ExpressionStmt).Expr.(*ast.Call)
	require.True(t, ok)
	require.Len(t, call.Args, 2)
}

func TestParseArrayLiteral(t *testing.T) {
	stmts := mustParse(t, "[1, 2, 3]")
	arr, ok := stmts[0].(*ast.ExpressionStmt).Expr.(*ast.ArrayLit)
	require.True(t, ok)
	require.Len(t, arr.Elements, 3)
}

func TestParseUnaryNot(t *testing.T) {
	for _, src := range []string{"非 真", "!真"} {
		stmts := mustParse(t, src)
		unary, ok := stmts[0].(*ast.ExpressionStmt).Expr.(*ast.Unary)
		require.True(t, ok, src)
		assert.Equal(t, "真", unary.Right.String())
	}
}

func TestParseLogicalOperatorsAreBinaryNodes(t *testing.T) {
	stmts := mustParse(t, "真 并 假 或 真")
	expr := stmts[0].(*ast.ExpressionStmt).Expr
	_, ok := expr.(*ast.Binary)
	assert.True(t, ok, "或/并 fold as Binary nodes, not short-circuit control flow")
}

func TestParseMissingClosingParenIsError(t *testing.T) {
	_, err := parser.Parse("(1 + 2")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "文件末尾")
}

func TestParseUnexpectedTokenError(t *testing.T) {
	_, err := parser.Parse("就是 = 1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "'='")
}
