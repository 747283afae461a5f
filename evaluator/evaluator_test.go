package evaluator_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vscript-lang/vscript/builtins"
	"github.com/vscript-lang/vscript/evaluator"
	"github.com/vscript-lang/vscript/parser"
)

func run(t *testing.T, out *bytes.Buffer, source string) error {
	t.Helper()
	stmts, err := parser.Parse(source)
	require.NoError(t, err)
	ev := evaluator.New()
	builtins.Register(ev.Globals, out)
	_, err = ev.Run(context.Background(), stmts)
	return err
}

func TestOutputAddition(t *testing.T) {
	var out bytes.Buffer
	err := run(t, &out, "输出(1+2)")
	require.NoError(t, err)
	assert.Equal(t, "3\n", out.String())
}

func TestClosureSeesLaterMutation(t *testing.T) {
	var out bytes.Buffer
	source := `
		就是 x = 10
		函数 做 () {
			输出(x)
		}
		x = 20
		做()
	`
	err := run(t, &out, source)
	require.NoError(t, err)
	assert.Equal(t, "20\n", out.String())
}

func TestRecursiveFibonacci(t *testing.T) {
	var out bytes.Buffer
	source := `
		函数 fib(n) {
			如果 (n < 2) {
				返回 n
			}
			返回 fib(n - 1) + fib(n - 2)
		}
		输出(fib(10))
	`
	err := run(t, &out, source)
	require.NoError(t, err)
	assert.Equal(t, "55\n", out.String())
}

func TestForLoopOverRange(t *testing.T) {
	var out bytes.Buffer
	err := run(t, &out, `对于 i 在 范围(0, 3) { 输出(i) }`)
	require.NoError(t, err)
	assert.Equal(t, "0\n1\n2\n", out.String())
}

func TestStringConcatenationCJK(t *testing.T) {
	var out bytes.Buffer
	err := run(t, &out, `输出("你好，" + "世界")`)
	require.NoError(t, err)
	assert.Equal(t, "你好，世界\n", out.String())
}

func TestDivisionByZeroIsRuntimeError(t *testing.T) {
	var out bytes.Buffer
	err := run(t, &out, `输出(1 / 0)`)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "除数不能为零")
	assert.Equal(t, "", out.String())
}

func TestOrDoesNotSkipSecondOperand(t *testing.T) {
	var out bytes.Buffer
	source := `
		函数 副作用() {
			输出("已求值")
			返回 假
		}
		真 或 副作用()
	`
	err := run(t, &out, source)
	require.NoError(t, err)
	assert.Equal(t, "已求值\n", out.String())
}

func TestAndShortCircuitDoesNotSkipSecondOperand(t *testing.T) {
	var out bytes.Buffer
	source := `
		函数 副作用() {
			输出("已求值")
			返回 真
		}
		假 并 副作用()
	`
	err := run(t, &out, source)
	require.NoError(t, err)
	assert.Equal(t, "已求值\n", out.String())
}

func TestClosureCallsIntoClosureEnvNotCallerEnv(t *testing.T) {
	var out bytes.Buffer
	source := `
		就是 y = 1
		函数 制造() {
			就是 y = 100
			函数 内部() {
				返回 y
			}
			返回 内部
		}
		就是 f = 制造()
		输出(f())
	`
	err := run(t, &out, source)
	require.NoError(t, err)
	assert.Equal(t, "100\n", out.String())
}

func TestForLoopOverNonArrayIsRuntimeError(t *testing.T) {
	var out bytes.Buffer
	err := run(t, &out, `对于 i 在 1 { 输出(i) }`)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "'对于' 循环需要一个数组")
}

func TestCallingNonFunctionIsRuntimeError(t *testing.T) {
	var out bytes.Buffer
	err := run(t, &out, `就是 x = 1
x()`)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "只能调用函数")
}

func TestArityMismatchIsRuntimeError(t *testing.T) {
	var out bytes.Buffer
	source := `
		函数 加(a, b) { 返回 a + b }
		加(1)
	`
	err := run(t, &out, source)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "期望 2 个参数但得到 1 个")
}

func TestFunctionWithoutExplicitReturnYieldsNull(t *testing.T) {
	var out bytes.Buffer
	source := `
		函数 无返回() { 就是 x = 1 }
		输出(无返回())
	`
	err := run(t, &out, source)
	require.NoError(t, err)
	assert.Equal(t, "空\n", out.String())
}

func TestArrayEqualityIsByIdentityNotContent(t *testing.T) {
	var out bytes.Buffer
	source := `
		就是 a = [1, 2]
		就是 b = a
		就是 c = [1, 2]
		输出(a == b)
		输出(a == c)
	`
	err := run(t, &out, source)
	require.NoError(t, err)
	assert.Equal(t, "真\n假\n", out.String())
}

func TestFunctionEqualityIsByIdentity(t *testing.T) {
	var out bytes.Buffer
	source := `
		函数 f() { 返回 1 }
		就是 g = f
		输出(f == g)
	`
	err := run(t, &out, source)
	require.NoError(t, err)
	assert.Equal(t, "真\n", out.String())
}

func TestRunStopsOnCancelledContext(t *testing.T) {
	stmts, err := parser.Parse(`输出(1)
输出(2)`)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var out bytes.Buffer
	ev := evaluator.New()
	builtins.Register(ev.Globals, &out)
	_, err = ev.Run(ctx, stmts)
	require.Error(t, err)
	assert.Equal(t, context.Canceled, err)
	assert.Equal(t, "", out.String())
}
