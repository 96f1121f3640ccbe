package namespace_test

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/binplang/binp/internal/namespace"
	"github.com/binplang/binp/internal/value"
)

func TestGetSet(t *testing.T) {
	ns := namespace.New()
	_, ok := ns.Get("x")
	assert.False(t, ok)

	ns.Set("x", value.NewInt(big.NewInt(5)))
	v, ok := ns.Get("x")
	require.True(t, ok)
	assert.Equal(t, "5", v.Literal())
}

func TestCloneIsIsolated(t *testing.T) {
	ns := namespace.New()
	ns.Set("x", value.NewInt(big.NewInt(1)))

	clone := ns.Clone()
	clone.Set("x", value.NewInt(big.NewInt(2)))
	clone.Set("y", value.NewInt(big.NewInt(3)))

	orig, _ := ns.Get("x")
	assert.Equal(t, "1", orig.Literal(), "mutating the clone must not affect the original")

	_, ok := ns.Get("y")
	assert.False(t, ok, "a binding added only to the clone must not leak back")
}
