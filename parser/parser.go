// Package parser implements a recursive-descent, Pratt-style parser that
// turns a VScript token stream into the ast package's statement list.
package parser

import (
	"github.com/vscript-lang/vscript/ast"
	"github.com/vscript-lang/vscript/lexer"
	"github.com/vscript-lang/vscript/token"
)

type (
	prefixParseFn func() (ast.Expr, error)
	infixParseFn  func(ast.Expr) (ast.Expr, error)
)

const maxParams = 255

// Parser holds the token stream and the prefix/infix parse-fn tables used
// for precedence-climbing expression parsing.
type Parser struct {
	tokens  []token.Token
	current int

	prefixParseFns map[token.Type]prefixParseFn
	infixParseFns  map[token.Type]infixParseFn
}

// New creates a Parser over the given token stream, as produced by
// lexer.ScanTokens.
func New(tokens []token.Token) *Parser {
	p := &Parser{tokens: tokens}

	p.prefixParseFns = map[token.Type]prefixParseFn{}
	p.infixParseFns = map[token.Type]infixParseFn{}

	p.registerPrefix(token.NUMBER, p.parseNumber)
	p.registerPrefix(token.STRING, p.parseString)
	p.registerPrefix(token.TRUE, p.parseBoolean)
	p.registerPrefix(token.FALSE, p.parseBoolean)
	p.registerPrefix(token.NULL, p.parseNull)
	p.registerPrefix(token.IDENT, p.parseVariable)
	p.registerPrefix(token.LPAREN, p.parseGrouping)
	p.registerPrefix(token.LBRACKET, p.parseArrayLit)
	p.registerPrefix(token.MINUS, p.parseUnary)
	p.registerPrefix(token.NOT, p.parseUnary)

	p.registerInfix(token.PLUS, p.parseBinary)
	p.registerInfix(token.MINUS, p.parseBinary)
	p.registerInfix(token.STAR, p.parseBinary)
	p.registerInfix(token.SLASH, p.parseBinary)
	p.registerInfix(token.PERCENT, p.parseBinary)
	p.registerInfix(token.LESS, p.parseBinary)
	p.registerInfix(token.LESS_EQUAL, p.parseBinary)
	p.registerInfix(token.GREATER, p.parseBinary)
	p.registerInfix(token.GREATER_EQUAL, p.parseBinary)
	p.registerInfix(token.EQUAL_EQUAL, p.parseBinary)
	p.registerInfix(token.BANG_EQUAL, p.parseBinary)
	p.registerInfix(token.AND, p.parseBinary)
	p.registerInfix(token.OR, p.parseBinary)
	p.registerInfix(token.EQUAL, p.parseAssign)
	p.registerInfix(token.LPAREN, p.parseCall)

	return p
}

// Parse parses the entire token stream, as the EBNF's `program` production:
// a sequence of declarations up to end-of-input. Parsing aborts on the first
// error: no statements are returned, matching the single-error-abort policy.
func Parse(source string) ([]ast.Stmt, error) {
	tokens, err := lexer.ScanTokens(source)
	if err != nil {
		return nil, err
	}
	return New(tokens).Parse()
}

func (p *Parser) Parse() ([]ast.Stmt, error) {
	var stmts []ast.Stmt
	for !p.isAtEnd() {
		stmt, err := p.declaration()
		if err != nil {
			p.synchronize()
			return nil, err
		}
		stmts = append(stmts, stmt)
	}
	return stmts, nil
}

func (p *Parser) registerPrefix(t token.Type, fn prefixParseFn) { p.prefixParseFns[t] = fn }
func (p *Parser) registerInfix(t token.Type, fn infixParseFn)   { p.infixParseFns[t] = fn }

// synchronize implements the panic-mode recovery rule: consume tokens until
// either the previous token is "}" or the next token starts a new
// declaration, then return to the caller, which rethrows the original error.
func (p *Parser) synchronize() {
	for !p.isAtEnd() {
		if p.current > 0 && p.previous().Type == token.RBRACE {
			return
		}
		switch p.peek().Type {
		case token.FUNCTION, token.LET, token.IF, token.FOR, token.RETURN:
			return
		}
		p.advance()
	}
}

// --- token cursor helpers ---

func (p *Parser) peek() token.Token     { return p.tokens[p.current] }
func (p *Parser) previous() token.Token { return p.tokens[p.current-1] }
func (p *Parser) isAtEnd() bool         { return p.peek().Type == token.EOF }

func (p *Parser) advance() token.Token {
	t := p.peek()
	if !p.isAtEnd() {
		p.current++
	}
	return t
}

func (p *Parser) check(t token.Type) bool {
	return p.peek().Type == t
}

func (p *Parser) match(types ...token.Type) bool {
	for _, t := range types {
		if p.check(t) {
			p.advance()
			return true
		}
	}
	return false
}

func (p *Parser) consume(t token.Type, message string) (token.Token, error) {
	if p.check(t) {
		return p.advance(), nil
	}
	return token.Token{}, newParseError(p.peek(), message)
}

func (p *Parser) peekPrecedence() int {
	return precedenceOf(p.peek().Type)
}

// --- declarations & statements ---

func (p *Parser) declaration() (ast.Stmt, error) {
	switch {
	case p.match(token.FUNCTION):
		return p.functionDecl()
	case p.match(token.LET):
		return p.letDecl()
	default:
		return p.statement()
	}
}

func (p *Parser) functionDecl() (ast.Stmt, error) {
	name, err := p.consume(token.IDENT, "期望函数名")
	if err != nil {
		return nil, err
	}
	if _, err := p.consume(token.LPAREN, "期望 '('"); err != nil {
		return nil, err
	}
	var params []token.Token
	if !p.check(token.RPAREN) {
		for {
			if len(params) >= maxParams {
				return nil, newParseError(p.peek(), "参数数量不能超过 %d 个", maxParams)
			}
			param, err := p.consume(token.IDENT, "期望参数名")
			if err != nil {
				return nil, err
			}
			params = append(params, param)
			if !p.match(token.COMMA) {
				break
			}
		}
	}
	if _, err := p.consume(token.RPAREN, "期望 ')'"); err != nil {
		return nil, err
	}
	if _, err := p.consume(token.LBRACE, "期望 '{'"); err != nil {
		return nil, err
	}
	body, err := p.blockBody()
	if err != nil {
		return nil, err
	}
	return &ast.FunctionDecl{Name: name, Params: params, Body: body}, nil
}

func (p *Parser) letDecl() (ast.Stmt, error) {
	name, err := p.consume(token.IDENT, "期望变量名")
	if err != nil {
		return nil, err
	}
	var initializer ast.Expr
	if p.match(token.EQUAL) {
		initializer, err = p.expression()
		if err != nil {
			return nil, err
		}
	}
	return &ast.LetStmt{Name: name, Initializer: initializer}, nil
}

func (p *Parser) statement() (ast.Stmt, error) {
	switch {
	case p.check(token.IF):
		return p.ifStmt()
	case p.check(token.FOR):
		return p.forStmt()
	case p.check(token.RETURN):
		return p.returnStmt()
	case p.check(token.LBRACE):
		return p.blockStmt()
	default:
		return p.exprStmt()
	}
}

func (p *Parser) ifStmt() (ast.Stmt, error) {
	p.advance() // "如果"
	if _, err := p.consume(token.LPAREN, "期望 '('"); err != nil {
		return nil, err
	}
	cond, err := p.expression()
	if err != nil {
		return nil, err
	}
	if _, err := p.consume(token.RPAREN, "期望 ')'"); err != nil {
		return nil, err
	}
	thenBranch, err := p.statement()
	if err != nil {
		return nil, err
	}
	var elseBranch ast.Stmt
	if p.match(token.ELSE) {
		elseBranch, err = p.statement()
		if err != nil {
			return nil, err
		}
	}
	return &ast.IfStmt{Cond: cond, Then: thenBranch, Else: elseBranch}, nil
}

func (p *Parser) forStmt() (ast.Stmt, error) {
	p.advance() // "对于"
	v, err := p.consume(token.IDENT, "期望循环变量名")
	if err != nil {
		return nil, err
	}
	if _, err := p.consume(token.IN, "期望 '在'"); err != nil {
		return nil, err
	}
	iterable, err := p.expression()
	if err != nil {
		return nil, err
	}
	body, err := p.statement()
	if err != nil {
		return nil, err
	}
	return &ast.ForStmt{Var: v, Iterable: iterable, Body: body}, nil
}

// returnStmt implements the "expression omitted iff next token is '}'" rule.
func (p *Parser) returnStmt() (ast.Stmt, error) {
	keyword := p.advance() // "返回"
	if p.check(token.RBRACE) {
		return &ast.ReturnStmt{Keyword: keyword}, nil
	}
	value, err := p.expression()
	if err != nil {
		return nil, err
	}
	return &ast.ReturnStmt{Keyword: keyword, Value: value}, nil
}

func (p *Parser) blockStmt() (ast.Stmt, error) {
	p.advance() // "{"
	stmts, err := p.blockBody()
	if err != nil {
		return nil, err
	}
	return &ast.BlockStmt{Stmts: stmts}, nil
}

// blockBody parses declaration* up to and including the closing "}".
func (p *Parser) blockBody() ([]ast.Stmt, error) {
	var stmts []ast.Stmt
	for !p.check(token.RBRACE) && !p.isAtEnd() {
		stmt, err := p.declaration()
		if err != nil {
			return nil, err
		}
		stmts = append(stmts, stmt)
	}
	if _, err := p.consume(token.RBRACE, "期望 '}'"); err != nil {
		return nil, err
	}
	return stmts, nil
}

func (p *Parser) exprStmt() (ast.Stmt, error) {
	expr, err := p.expression()
	if err != nil {
		return nil, err
	}
	return &ast.ExpressionStmt{Expr: expr}, nil
}

// --- expressions: Pratt / precedence climbing ---

func (p *Parser) expression() (ast.Expr, error) {
	return p.parseExpression(LOWEST)
}

func (p *Parser) parseExpression(precedence int) (ast.Expr, error) {
	prefix := p.prefixParseFns[p.peek().Type]
	if prefix == nil {
		return nil, newParseError(p.peek(), "期望一个表达式")
	}
	p.advance()
	left, err := prefix()
	if err != nil {
		return nil, err
	}

	for precedence < p.peekPrecedence() {
		infix := p.infixParseFns[p.peek().Type]
		if infix == nil {
			return left, nil
		}
		p.advance()
		left, err = infix(left)
		if err != nil {
			return nil, err
		}
	}
	return left, nil
}

func (p *Parser) parseNumber() (ast.Expr, error) {
	tok := p.previous()
	return &ast.Literal{Value: tok.Literal}, nil
}

func (p *Parser) parseString() (ast.Expr, error) {
	tok := p.previous()
	return &ast.Literal{Value: tok.Literal}, nil
}

func (p *Parser) parseBoolean() (ast.Expr, error) {
	return &ast.Literal{Value: p.previous().Type == token.TRUE}, nil
}

func (p *Parser) parseNull() (ast.Expr, error) {
	return &ast.Literal{Value: nil}, nil
}

func (p *Parser) parseVariable() (ast.Expr, error) {
	return &ast.Variable{Name: p.previous()}, nil
}

func (p *Parser) parseGrouping() (ast.Expr, error) {
	inner, err := p.expression()
	if err != nil {
		return nil, err
	}
	if _, err := p.consume(token.RPAREN, "期望 ')'"); err != nil {
		return nil, err
	}
	return &ast.Grouping{Inner: inner}, nil
}

func (p *Parser) parseArrayLit() (ast.Expr, error) {
	var elements []ast.Expr
	if !p.check(token.RBRACKET) {
		for {
			elem, err := p.expression()
			if err != nil {
				return nil, err
			}
			elements = append(elements, elem)
			if !p.match(token.COMMA) {
				break
			}
		}
	}
	if _, err := p.consume(token.RBRACKET, "期望 ']'"); err != nil {
		return nil, err
	}
	return &ast.ArrayLit{Elements: elements}, nil
}

func (p *Parser) parseUnary() (ast.Expr, error) {
	operator := p.previous()
	right, err := p.parseExpression(UNARY)
	if err != nil {
		return nil, err
	}
	return &ast.Unary{Operator: operator, Right: right}, nil
}

func (p *Parser) parseBinary(left ast.Expr) (ast.Expr, error) {
	operator := p.previous()
	precedence := precedenceOf(operator.Type)
	right, err := p.parseExpression(precedence)
	if err != nil {
		return nil, err
	}
	return &ast.Binary{Left: left, Operator: operator, Right: right}, nil
}

// parseAssign implements right-associative "=", validating that the LHS is
// exactly a Variable node.
func (p *Parser) parseAssign(left ast.Expr) (ast.Expr, error) {
	equals := p.previous()
	variable, ok := left.(*ast.Variable)
	if !ok {
		return nil, newParseError(equals, "赋值目标必须是一个变量")
	}
	value, err := p.expression()
	if err != nil {
		return nil, err
	}
	return &ast.Assign{Name: variable.Name, Value: value}, nil
}

func (p *Parser) parseCall(callee ast.Expr) (ast.Expr, error) {
	var args []ast.Expr
	if !p.check(token.RPAREN) {
		for {
			if len(args) >= maxParams {
				return nil, newParseError(p.peek(), "参数数量不能超过 %d 个", maxParams)
			}
			arg, err := p.expression()
			if err != nil {
				return nil, err
			}
			args = append(args, arg)
			if !p.match(token.COMMA) {
				break
			}
		}
	}
	paren, err := p.consume(token.RPAREN, "期望 ')'")
	if err != nil {
		return nil, err
	}
	return &ast.Call{Callee: callee, Paren: paren, Args: args}, nil
}
