package program_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/binplang/binp/internal/program"
)

func TestLoadTokenizesEveryLineOnce(t *testing.T) {
	prog := program.Load([]string{
		"var int x = 2+3",
		"output x",
		"",
	})

	assert.Len(t, prog, 3)
	assert.Equal(t, []string{"var", "int", "x", "=", "2", "+", "3"}, prog[0].Tokens)
	assert.Equal(t, "var int x = 2 + 3", prog[0].Text)
	assert.Equal(t, []string{"output", "x"}, prog[1].Tokens)
	assert.Nil(t, prog[2].Tokens)
}

func TestLoadLine(t *testing.T) {
	ln := program.LoadLine("if ( x<=3 ) =>")
	assert.Equal(t, []string{"if", "(", "x", "<=", "3", ")", "=>"}, ln.Tokens)
	assert.Equal(t, "if ( x <= 3 ) =>", ln.Text)
}
