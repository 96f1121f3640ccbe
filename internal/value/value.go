// Package value implements BinP's tagged Value variant (spec.md §3): a
// scalar is always exactly one of Integer, Boolean, String, Null, Function,
// or Builtin, and every operator or cast dispatches by switching on Kind —
// the same discipline the teacher repo's internal/evaluator.Object
// hierarchy uses, collapsed here to a single struct since BinP has no
// container types to justify the teacher's interface-per-shape design.
package value

import (
	"math/big"

	"github.com/binplang/binp/internal/program"
)

// Kind tags which field of a Value is meaningful.
type Kind int

const (
	KindNull Kind = iota
	KindInt
	KindBool
	KindString
	KindFunction
	KindBuiltin
)

func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindInt:
		return "int"
	case KindBool:
		return "bool"
	case KindString:
		return "str"
	case KindFunction:
		return "func"
	case KindBuiltin:
		return "func"
	default:
		return "?"
	}
}

// Param is one (type, name) pair in a function's parameter list.
type Param struct {
	Type string
	Name string
}

// Function is an immutable, first-class user-defined BinP function (spec.md
// §3). Body is a copy of the defining program's body lines; BodyLine is the
// absolute 0-based index of Body's first line, needed so error messages
// raised from inside a call still report the true source line.
type Function struct {
	Name       string
	ReturnType string
	Params     []Param
	Body       program.Program // copy of the defining program's body lines
	BodyLine   int             // absolute 0-based index of Body's first line
}

// BuiltinFunc is the Go implementation of a native BinP function.
type BuiltinFunc func(args []*Value) (*Value, error)

// Builtin is a native function pre-populated into the global namespace
// (spec.md §6): int_negate and bool_negate.
type Builtin struct {
	Name       string
	ParamTypes []string
	ReturnType string
	Call       BuiltinFunc
}

// Value is the tagged variant every expression evaluates to.
type Value struct {
	Kind Kind
	Int  *big.Int
	Bool bool
	Str  string
	Fn   *Function
	Bi   *Builtin
}

func NewInt(i *big.Int) *Value       { return &Value{Kind: KindInt, Int: i} }
func NewBool(b bool) *Value          { return &Value{Kind: KindBool, Bool: b} }
func NewString(s string) *Value      { return &Value{Kind: KindString, Str: s} }
func NewFunction(f *Function) *Value { return &Value{Kind: KindFunction, Fn: f} }
func NewBuiltin(b *Builtin) *Value   { return &Value{Kind: KindBuiltin, Bi: b} }

func Null() *Value { return &Value{Kind: KindNull} }

// Callable reports whether v can appear on the left of `name ( ... )`.
func (v *Value) Callable() bool {
	return v.Kind == KindFunction || v.Kind == KindBuiltin
}

// Literal renders v as the canonical token BinP's substitution pass
// re-injects into an expression's token stream (spec.md §4.4): the decimal
// form of an integer, "true"/"false" for a boolean, "null" for Null. String
// values are not expected to flow back into int/bool expressions — Literal
// still renders one so the downstream parser can reject it with a proper
// Value error instead of panicking.
func (v *Value) Literal() string {
	switch v.Kind {
	case KindInt:
		return v.Int.String()
	case KindBool:
		if v.Bool {
			return "true"
		}
		return "false"
	case KindString:
		return v.Str
	case KindNull:
		return "null"
	default:
		return v.Str
	}
}

// Display renders v the way `output` substitutes it into text (spec.md §6):
// identical to Literal (so Null renders as "null"), except that functions
// and builtins render as their declared signature for debugging, matching
// the original implementation's __str__ on BinPFunction.
func (v *Value) Display() string {
	switch v.Kind {
	case KindFunction:
		sig := v.Fn.Name + ": ("
		for i, p := range v.Fn.Params {
			if i > 0 {
				sig += ", "
			}
			sig += p.Type
		}
		return sig + ") -> " + v.Fn.ReturnType
	case KindBuiltin:
		sig := v.Bi.Name + ": ("
		for i, t := range v.Bi.ParamTypes {
			if i > 0 {
				sig += ", "
			}
			sig += t
		}
		return sig + ") -> " + v.Bi.ReturnType
	default:
		return v.Literal()
	}
}
