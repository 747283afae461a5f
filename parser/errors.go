package parser

import (
	"fmt"

	"github.com/vscript-lang/vscript/errors"
	"github.com/vscript-lang/vscript/token"
)

// where renders a token's location description for the "在 WHERE 处" slot
// of a parse error: the quoted lexeme, or 文件末尾 at end-of-input.
func where(t token.Token) string {
	if t.Type == token.EOF {
		return "文件末尾"
	}
	return "'" + t.Lexeme + "'"
}

func newParseError(t token.Token, format string, args ...interface{}) *errors.ParseError {
	return &errors.ParseError{
		Line:    t.Line,
		Column:  t.Column,
		Where:   where(t),
		Message: fmt.Sprintf(format, args...),
	}
}
