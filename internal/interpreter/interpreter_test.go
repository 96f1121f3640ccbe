package interpreter_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/binplang/binp/internal/builtins"
	"github.com/binplang/binp/internal/diagnostics"
	"github.com/binplang/binp/internal/interpreter"
	"github.com/binplang/binp/internal/namespace"
	"github.com/binplang/binp/internal/program"
)

func run(t *testing.T, src string, stdin string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	interp := interpreter.New(strings.NewReader(stdin), &out)
	ns := namespace.New()
	builtins.Register(ns)
	builtins.RegisterArgs(ns, nil)

	lines := strings.Split(strings.TrimRight(src, "\n"), "\n")
	err := interp.Run(program.Load(lines), ns)
	return out.String(), err
}

func TestArithmeticPrecedence(t *testing.T) {
	out, err := run(t, `
var int x = 2 + 3 * 4
output x
`, "")
	require.NoError(t, err)
	assert.Equal(t, " >> 14\n", out)
}

func TestFunctionDefinitionAndCall(t *testing.T) {
	out, err := run(t, `
var int func add = ( int a , int b ) =>
return a + b
end add
var int s = add ( 40 , 2 )
output s
`, "")
	require.NoError(t, err)
	assert.Equal(t, " >> 42\n", out)
}

func TestWhileLoop(t *testing.T) {
	out, err := run(t, `
var int i = 0
while ( i < 3 ) =>
output i
var int i = i + 1
end
`, "")
	require.NoError(t, err)
	assert.Equal(t, " >> 0\n >> 1\n >> 2\n", out)
}

func TestIfElse(t *testing.T) {
	out, err := run(t, `
var bool b = 1 == 1
if ( b ) =>
output yes
else
output no
end
`, "")
	require.NoError(t, err)
	assert.Equal(t, " >> yes\n", out)
}

func TestRecursiveFactorial(t *testing.T) {
	out, err := run(t, `
var int func fact = ( int n ) =>
if ( n <= 1 ) =>
return 1
end
return n * fact ( n - 1 )
end fact
output fact ( 5 )
`, "")
	require.NoError(t, err)
	assert.Equal(t, " >> 120\n", out)
}

func TestValueErrorOnBadCast(t *testing.T) {
	_, err := run(t, `var int x = hello`, "")
	require.Error(t, err)
	diagErr, ok := err.(*diagnostics.Error)
	require.True(t, ok)
	assert.Equal(t, diagnostics.Value, diagErr.Kind)
	assert.Equal(t, 1, diagErr.Line)
}

func TestZeroParameterFunction(t *testing.T) {
	out, err := run(t, `
var int func answer = ( ) =>
return 42
end answer
output answer ( )
`, "")
	require.NoError(t, err)
	assert.Equal(t, " >> 42\n", out)
}

func TestNoReturnWithNullTypeYieldsNull(t *testing.T) {
	out, err := run(t, `
var null func noop = ( ) =>
var int x = 1
end noop
noop ( )
output 'done'
`, "")
	require.NoError(t, err)
	assert.Equal(t, " >> done\n", out)
}

func TestNoReturnWithNonNullTypeIsValueError(t *testing.T) {
	_, err := run(t, `
var int func broken = ( ) =>
var int x = 1
end broken
var int y = broken ( )
`, "")
	require.Error(t, err)
	diagErr, ok := err.(*diagnostics.Error)
	require.True(t, ok)
	assert.Equal(t, diagnostics.Value, diagErr.Kind)
}

func TestUnmatchedEndIsSyntaxError(t *testing.T) {
	_, err := run(t, `
var int func f = ( ) =>
return 1
`, "")
	require.Error(t, err)
	diagErr, ok := err.(*diagnostics.Error)
	require.True(t, ok)
	assert.Equal(t, diagnostics.Syntax, diagErr.Kind)
}

func TestEmptyFunctionBodyIsSyntaxError(t *testing.T) {
	_, err := run(t, `
var int func f = ( ) =>
end f
`, "")
	require.Error(t, err)
	diagErr, ok := err.(*diagnostics.Error)
	require.True(t, ok)
	assert.Equal(t, diagnostics.Syntax, diagErr.Kind)
}

func TestInputSourcedAssignment(t *testing.T) {
	out, err := run(t, `
var int n = input
output n
`, "7\n")
	require.NoError(t, err)
	assert.Equal(t, " >> 7\n", out)
}

func TestCallerNamespaceUnaffectedByCallFailure(t *testing.T) {
	var out bytes.Buffer
	interp := interpreter.New(strings.NewReader(""), &out)
	ns := namespace.New()
	builtins.Register(ns)
	src := `
var int func boom = ( int n ) =>
return n + hello
end boom
var int x = 1
var int y = boom ( 2 )
output x
`
	err := interp.Run(program.Load(strings.Split(strings.TrimRight(src, "\n"), "\n")), ns)
	require.Error(t, err)
	assert.Equal(t, "", out.String(), "the call fails before the output line ever runs")

	x, ok := ns.Get("x")
	require.True(t, ok)
	assert.Equal(t, "1", x.Literal())
	_, ok = ns.Get("n")
	assert.False(t, ok, "the callee's parameter binding must not leak into the caller")
	_, ok = ns.Get("y")
	assert.False(t, ok, "the failed assignment must not bind y")
}

func TestArgCountMismatchIsArgumentError(t *testing.T) {
	_, err := run(t, `
var int func add = ( int a , int b ) =>
return a + b
end add
var int s = add ( 1 )
`, "")
	require.Error(t, err)
	diagErr, ok := err.(*diagnostics.Error)
	require.True(t, ok)
	assert.Equal(t, diagnostics.Argument, diagErr.Kind)
}
