package exprparser_test

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/binplang/binp/internal/evaluator"
	"github.com/binplang/binp/internal/exprparser"
)

func TestIsIntLiteral(t *testing.T) {
	assert.True(t, exprparser.IsIntLiteral("0"))
	assert.True(t, exprparser.IsIntLiteral("42"))
	assert.True(t, exprparser.IsIntLiteral("-42"))
	assert.False(t, exprparser.IsIntLiteral("-"))
	assert.False(t, exprparser.IsIntLiteral("4.2"))
	assert.False(t, exprparser.IsIntLiteral("x"))
	assert.False(t, exprparser.IsIntLiteral(""))
}

func TestParseArithPrecedence(t *testing.T) {
	cases := []struct {
		name string
		toks []string
		want int64
	}{
		{"mul before add", []string{"2", "+", "3", "*", "4"}, 14},
		{"parens override", []string{"(", "2", "+", "3", ")", "*", "4"}, 20},
		{"left assoc subtraction", []string{"10", "-", "3", "-", "2"}, 5},
		{"mod", []string{"10", "%", "3"}, 1},
		{"nested parens", []string{"(", "(", "1", "+", "2", ")", "*", "(", "3", "+", "4", ")", ")"}, 21},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			tree, err := exprparser.ParseArith(c.toks)
			require.NoError(t, err)
			got, err := evaluator.EvalArithTree(tree)
			require.NoError(t, err)
			assert.Equal(t, big.NewInt(c.want).String(), got.String())
		})
	}
}

func TestParseArithErrors(t *testing.T) {
	_, err := exprparser.ParseArith(nil)
	assert.Error(t, err)

	_, err = exprparser.ParseArith([]string{"(", "1", "+", "2"})
	assert.Error(t, err)

	_, err = exprparser.ParseArith([]string{"1", "2"})
	assert.Error(t, err)

	_, err = exprparser.ParseArith([]string{"x"})
	assert.Error(t, err)

	// no unary minus in the grammar: a leading '-' is not a valid factor.
	_, err = exprparser.ParseArith([]string{"-", "7"})
	assert.Error(t, err)
}

func TestEvalArithDivisionTruncatesTowardZero(t *testing.T) {
	tree, err := exprparser.ParseArith([]string{"7", "/", "2"})
	require.NoError(t, err)
	got, err := evaluator.EvalArithTree(tree)
	require.NoError(t, err)
	assert.Equal(t, "3", got.String())

	tree, err = exprparser.ParseArith([]string{"(", "0", "-", "7", ")", "/", "2"})
	require.NoError(t, err)
	got, err = evaluator.EvalArithTree(tree)
	require.NoError(t, err)
	assert.Equal(t, "-3", got.String(), "truncation toward zero, not floor division")
}

func TestEvalArithModuloFollowsDivisorSign(t *testing.T) {
	tree, err := exprparser.ParseArith([]string{"(", "0", "-", "7", ")", "%", "3"})
	require.NoError(t, err)
	got, err := evaluator.EvalArithTree(tree)
	require.NoError(t, err)
	assert.Equal(t, "2", got.String())

	tree, err = exprparser.ParseArith([]string{"7", "%", "(", "0", "-", "3", ")"})
	require.NoError(t, err)
	got, err = evaluator.EvalArithTree(tree)
	require.NoError(t, err)
	assert.Equal(t, "-2", got.String())
}

func TestEvalArithDivisionByZero(t *testing.T) {
	tree, err := exprparser.ParseArith([]string{"5", "/", "0"})
	require.NoError(t, err)
	_, err = evaluator.EvalArithTree(tree)
	assert.Error(t, err)
}
