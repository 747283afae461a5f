// Package object defines the runtime value model of VScript: numbers,
// strings, booleans, null, arrays, and callables.
package object

import (
	"strconv"
	"strings"
)

// Type identifies the runtime type of a Value.
type Type string

// Type constants, matching the tags reported by the built-in 类型 function.
const (
	NUMBER   Type = "数字"
	STRING   Type = "字符串"
	BOOLEAN  Type = "布尔"
	NULL     Type = "空"
	ARRAY    Type = "数组"
	FUNCTION Type = "函数"
)

// Value is the interface implemented by every runtime value.
type Value interface {
	// Type returns the runtime type tag of the value.
	Type() Type

	// String returns the human readable rendering used by the 输出 builtin.
	String() string

	// IsTruthy implements VScript's truthiness rule: null is false, a
	// boolean is itself, everything else is true.
	IsTruthy() bool
}

// Number is a double-precision floating point value.
type Number float64

func (Number) Type() Type { return NUMBER }

func (n Number) String() string {
	return strconv.FormatFloat(float64(n), 'f', -1, 64)
}

func (Number) IsTruthy() bool { return true }

// String is a VScript string value.
type String string

func (String) Type() Type { return STRING }

func (s String) String() string { return string(s) }

func (String) IsTruthy() bool { return true }

// Boolean is a VScript boolean value.
type Boolean bool

func (Boolean) Type() Type { return BOOLEAN }

func (b Boolean) String() string {
	if bool(b) {
		return "真"
	}
	return "假"
}

func (b Boolean) IsTruthy() bool { return bool(b) }

// nullValue is the sole null value.
type nullValue struct{}

func (nullValue) Type() Type { return NULL }

func (nullValue) String() string { return "空" }

func (nullValue) IsTruthy() bool { return false }

// Null is the singleton null value; all VScript null results share it.
var Null Value = nullValue{}

// Array is an ordered, mutable-by-reassignment sequence of values.
type Array struct {
	Elements []Value
}

func NewArray(elements []Value) *Array {
	return &Array{Elements: elements}
}

func (*Array) Type() Type { return ARRAY }

func (a *Array) String() string {
	parts := make([]string, len(a.Elements))
	for i, e := range a.Elements {
		parts[i] = e.String()
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

func (*Array) IsTruthy() bool { return true }

// Callable is implemented by every invocable value: user-defined functions
// and host-implemented builtins.
type Callable interface {
	Value
	Arity() int
	Name() string
}
