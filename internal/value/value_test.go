package value_test

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/binplang/binp/internal/value"
)

func TestLiteralRoundTrip(t *testing.T) {
	assert.Equal(t, "42", value.NewInt(big.NewInt(42)).Literal())
	assert.Equal(t, "-7", value.NewInt(big.NewInt(-7)).Literal())
	assert.Equal(t, "true", value.NewBool(true).Literal())
	assert.Equal(t, "false", value.NewBool(false).Literal())
	assert.Equal(t, "null", value.Null().Literal())
	assert.Equal(t, "hi", value.NewString("hi").Literal())
}

func TestCallable(t *testing.T) {
	assert.True(t, value.NewFunction(&value.Function{Name: "f"}).Callable())
	assert.True(t, value.NewBuiltin(&value.Builtin{Name: "b"}).Callable())
	assert.False(t, value.NewInt(big.NewInt(1)).Callable())
	assert.False(t, value.Null().Callable())
}

func TestFunctionDisplaySignature(t *testing.T) {
	fn := &value.Function{
		Name:       "add",
		ReturnType: "int",
		Params: []value.Param{
			{Type: "int", Name: "a"},
			{Type: "int", Name: "b"},
		},
	}
	assert.Equal(t, "add: (int, int) -> int", value.NewFunction(fn).Display())
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "int", value.KindInt.String())
	assert.Equal(t, "bool", value.KindBool.String())
	assert.Equal(t, "str", value.KindString.String())
	assert.Equal(t, "null", value.KindNull.String())
}
