package lexer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPreformat(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want []string
	}{
		{"empty", "", nil},
		{"whitespace only", "   ", nil},
		{"simple assignment", "var int x = 2+3*4", []string{"var", "int", "x", "=", "2", "+", "3", "*", "4"}},
		{"already spaced", "var int x = 2 + 3 * 4", []string{"var", "int", "x", "=", "2", "+", "3", "*", "4"}},
		{"multi-char operators stay atomic", "if ( i<=3 ) =>", []string{"if", "(", "i", "<=", "3", ")", "=>"}},
		{"not-equal kept atomic", "while ( x!=0 ) =>", []string{"while", "(", "x", "!=", "0", ")", "=>"}},
		{"logical operators kept atomic", "var bool b = a&&b", []string{"var", "bool", "b", "=", "a", "&&", "b"}},
		{"quoted string is opaque", "output 'hello, world'", []string{"output", "'hello, world'"}},
		{"minus is its own atom even before a digit", "var int x = -5", []string{"var", "int", "x", "=", "-", "5"}},
		{"function call", "add(1,2)", []string{"add", "(", "1", ",", "2", ")"}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := Preformat(c.in)
			assert.Equal(t, c.want, got)
		})
	}
}
