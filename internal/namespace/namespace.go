// Package namespace implements BinP's identifier→Value mapping and the
// shallow-copy discipline spec.md §3/§5 requires at every call boundary:
// a callee gets its own map, seeded from the caller's bindings by value
// (pointer) copy, so mutations inside a call never leak back to the
// caller and no two scopes ever alias the same underlying map.
package namespace

import "github.com/binplang/binp/internal/value"

// Namespace is one scope: the global namespace, or one call's namespace.
type Namespace struct {
	vars map[string]*value.Value
}

// New returns an empty namespace, used once per program run for the global
// scope.
func New() *Namespace {
	return &Namespace{vars: make(map[string]*value.Value)}
}

// Get looks up name, reporting whether it is bound.
func (n *Namespace) Get(name string) (*value.Value, bool) {
	v, ok := n.vars[name]
	return v, ok
}

// Set binds name to v, overwriting any previous binding.
func (n *Namespace) Set(name string, v *value.Value) {
	n.vars[name] = v
}

// Clone returns a new Namespace with the same bindings, in a fresh map.
// Values themselves are immutable records (spec.md §3), so sharing the
// *value.Value pointers between caller and callee copies is safe: neither
// side ever mutates a Value in place, only replaces a namespace entry
// wholesale via Set.
func (n *Namespace) Clone() *Namespace {
	clone := make(map[string]*value.Value, len(n.vars))
	for k, v := range n.vars {
		clone[k] = v
	}
	return &Namespace{vars: clone}
}
