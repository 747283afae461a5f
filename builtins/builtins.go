// Package builtins defines VScript's fixed set of host-implemented
// functions, registered into the global environment at interpreter
// construction.
package builtins

import (
	"fmt"
	"io"
	"unicode/utf16"

	"github.com/vscript-lang/vscript/object"
)

// Output writes its argument to w followed by a newline, using the
// human-readable rendering shared with object.Value.String.
func Output(w io.Writer) object.BuiltinFunc {
	return func(args []object.Value) (object.Value, error) {
		fmt.Fprintln(w, args[0].String())
		return object.Null, nil
	}
}

// Range returns an array of integers [start, start+1, ..., end-1], or an
// empty array if end <= start.
func Range(args []object.Value) (object.Value, error) {
	start, ok1 := args[0].(object.Number)
	end, ok2 := args[1].(object.Number)
	if !ok1 || !ok2 {
		return nil, fmt.Errorf("范围函数需要两个数字参数")
	}
	var elems []object.Value
	for n := int(start); n < int(end); n++ {
		elems = append(elems, object.Number(n))
	}
	return object.NewArray(elems), nil
}

// Length returns the element count of an array or the UTF-16 code-unit count
// of a string.
func Length(args []object.Value) (object.Value, error) {
	switch v := args[0].(type) {
	case *object.Array:
		return object.Number(len(v.Elements)), nil
	case object.String:
		return object.Number(len(utf16.Encode([]rune(string(v))))), nil
	default:
		return nil, fmt.Errorf("长度函数需要数组或字符串参数")
	}
}

// Typeof returns the string tag naming its argument's runtime type.
func Typeof(args []object.Value) (object.Value, error) {
	switch args[0].(type) {
	case *object.Array:
		return object.String(object.ARRAY), nil
	case object.Number:
		return object.String(object.NUMBER), nil
	case object.String:
		return object.String(object.STRING), nil
	case object.Boolean:
		return object.String(object.BOOLEAN), nil
	case object.Callable:
		return object.String(object.FUNCTION), nil
	default:
		if args[0] == object.Null {
			return object.String(object.NULL), nil
		}
		return object.String("未知"), nil
	}
}

// Register defines the fixed builtin set in env. w is the stream 输出 writes
// to; in the CLI and REPL this is stdout.
func Register(env object.Environment, w io.Writer) {
	env.Define("输出", object.NewBuiltin("输出", 1, Output(w)))
	env.Define("范围", object.NewBuiltin("范围", 2, Range))
	env.Define("长度", object.NewBuiltin("长度", 1, Length))
	env.Define("类型", object.NewBuiltin("类型", 1, Typeof))
}
