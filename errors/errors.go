// Package errors defines VScript's three-kind error taxonomy: lexical,
// parse, and runtime errors, each carrying a source location and rendering
// to the spec's bit-exact message formats.
package errors

import "fmt"

// LexError is raised by the lexer: unterminated string, unterminated block
// comment, unexpected character.
type LexError struct {
	Line    int
	Column  int
	Message string
}

func (e *LexError) Error() string {
	return fmt.Sprintf("第 %d 行，第 %d 列：%s", e.Line, e.Column, e.Message)
}

// ParseError is raised by the parser: unexpected token, invalid assignment
// target, missing delimiter. Where is the offending token's lexeme quoted
// with '', or 文件末尾 when the token is end-of-input.
type ParseError struct {
	Line    int
	Column  int
	Where   string
	Message string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("第 %d 行，第 %d 列，在 %s 处：%s", e.Line, e.Column, e.Where, e.Message)
}

// RuntimeError is raised by the evaluator and attributed to a source token:
// type mismatch, division by zero, undefined variable, wrong arity,
// non-callable call target, non-array iterable.
type RuntimeError struct {
	Line    int
	Column  int
	Message string
}

func (e *RuntimeError) Error() string {
	return fmt.Sprintf("运行时错误（第 %d 行，第 %d 列）：%s", e.Line, e.Column, e.Message)
}

// NewRuntimeError builds a RuntimeError attributed to the given position.
func NewRuntimeError(line, column int, format string, args ...interface{}) *RuntimeError {
	return &RuntimeError{Line: line, Column: column, Message: fmt.Sprintf(format, args...)}
}
