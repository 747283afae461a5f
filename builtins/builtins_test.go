package builtins_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vscript-lang/vscript/builtins"
	"github.com/vscript-lang/vscript/environment"
	"github.com/vscript-lang/vscript/object"
)

func TestOutputWritesRendering(t *testing.T) {
	var buf bytes.Buffer
	out := builtins.Output(&buf)
	_, err := out([]object.Value{object.Number(3)})
	require.NoError(t, err)
	assert.Equal(t, "3\n", buf.String())
}

func TestRangeExcludesEnd(t *testing.T) {
	v, err := builtins.Range([]object.Value{object.Number(0), object.Number(3)})
	require.NoError(t, err)
	arr := v.(*object.Array)
	require.Len(t, arr.Elements, 3)
	assert.Equal(t, object.Number(0), arr.Elements[0])
	assert.Equal(t, object.Number(2), arr.Elements[2])
}

func TestRangeEmptyWhenEndNotAfterStart(t *testing.T) {
	v, err := builtins.Range([]object.Value{object.Number(5), object.Number(5)})
	require.NoError(t, err)
	assert.Empty(t, v.(*object.Array).Elements)
}

func TestRangeRequiresNumbers(t *testing.T) {
	_, err := builtins.Range([]object.Value{object.String("a"), object.Number(1)})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "范围函数需要两个数字参数")
}

func TestLengthOfArrayAndString(t *testing.T) {
	v, err := builtins.Length([]object.Value{object.NewArray([]object.Value{object.Number(1), object.Number(2)})})
	require.NoError(t, err)
	assert.Equal(t, object.Number(2), v)

	v, err = builtins.Length([]object.Value{object.String("你好")})
	require.NoError(t, err)
	assert.Equal(t, object.Number(2), v)
}

func TestLengthRejectsOtherTypes(t *testing.T) {
	_, err := builtins.Length([]object.Value{object.Number(1)})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "长度函数需要数组或字符串参数")
}

func TestTypeofTags(t *testing.T) {
	cases := []struct {
		v    object.Value
		want object.Type
	}{
		{object.Number(1), object.NUMBER},
		{object.String("s"), object.STRING},
		{object.Boolean(true), object.BOOLEAN},
		{object.Null, object.NULL},
		{object.NewArray(nil), object.ARRAY},
	}
	for _, c := range cases {
		v, err := builtins.Typeof([]object.Value{c.v})
		require.NoError(t, err)
		assert.Equal(t, object.String(c.want), v)
	}
}

func TestRegisterDefinesAllBuiltins(t *testing.T) {
	env := environment.New()
	builtins.Register(env, &bytes.Buffer{})
	for _, name := range []string{"输出", "范围", "长度", "类型"} {
		_, ok := env.Get(name)
		assert.True(t, ok, name)
	}
}
