package parser

import "github.com/vscript-lang/vscript/token"

// Operator precedence levels, lowest to highest.
const (
	LOWEST     int = iota
	ASSIGNMENT     // =
	LOGIC_OR       // 或
	LOGIC_AND      // 并
	EQUALITY       // == !=
	COMPARISON     // < <= > >=
	TERM           // + -
	FACTOR         // / * %
	UNARY          // 非 ! -
	CALL           // f(...)
)

var precedences = map[token.Type]int{
	token.EQUAL:         ASSIGNMENT,
	token.OR:            LOGIC_OR,
	token.AND:           LOGIC_AND,
	token.EQUAL_EQUAL:   EQUALITY,
	token.BANG_EQUAL:    EQUALITY,
	token.LESS:          COMPARISON,
	token.LESS_EQUAL:    COMPARISON,
	token.GREATER:       COMPARISON,
	token.GREATER_EQUAL: COMPARISON,
	token.PLUS:          TERM,
	token.MINUS:         TERM,
	token.SLASH:         FACTOR,
	token.STAR:          FACTOR,
	token.PERCENT:       FACTOR,
	token.LPAREN:        CALL,
}

func precedenceOf(t token.Type) int {
	if p, ok := precedences[t]; ok {
		return p
	}
	return LOWEST
}
