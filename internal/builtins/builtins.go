// Package builtins populates a fresh global namespace with BinP's native
// functions (spec.md §6): int_negate and bool_negate are always present;
// ARG_COUNT and ARG_0..ARG_n are seeded from the program's command-line
// arguments before the first line ever runs.
package builtins

import (
	"math/big"

	"github.com/binplang/binp/internal/namespace"
	"github.com/binplang/binp/internal/value"
)

// Register installs the native functions every BinP program can call
// regardless of how it was invoked.
func Register(ns *namespace.Namespace) {
	ns.Set("int_negate", value.NewBuiltin(&value.Builtin{
		Name:       "int_negate",
		ParamTypes: []string{"int"},
		ReturnType: "int",
		Call: func(args []*value.Value) (*value.Value, error) {
			return value.NewInt(new(big.Int).Neg(args[0].Int)), nil
		},
	}))
	ns.Set("bool_negate", value.NewBuiltin(&value.Builtin{
		Name:       "bool_negate",
		ParamTypes: []string{"bool"},
		ReturnType: "bool",
		Call: func(args []*value.Value) (*value.Value, error) {
			return value.NewBool(!args[0].Bool), nil
		},
	}))
}

// RegisterArgs binds ARG_COUNT and ARG_0..ARG_{n-1} to the program's
// command-line arguments (spec.md §6). Every ARG_i is bound as a string;
// a program that needs one as an int or bool casts it itself via a `var`
// declaration, the same as any other string-sourced value.
func RegisterArgs(ns *namespace.Namespace, args []string) {
	ns.Set("ARG_COUNT", value.NewInt(big.NewInt(int64(len(args)))))
	for i, a := range args {
		ns.Set(argName(i), value.NewString(a))
	}
}

func argName(i int) string {
	return "ARG_" + big.NewInt(int64(i)).String()
}
