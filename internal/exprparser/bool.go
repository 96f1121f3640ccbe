package exprparser

import (
	"fmt"
	"math/big"

	"github.com/binplang/binp/internal/ast"
	"github.com/binplang/binp/internal/config"
)

// ParseBool parses an already-substituted boolean token vector into a tree.
// spec.md §4.4 deliberately keeps the grammar minimal: a boolean expression
// is either a single leaf, or exactly `<leaf> <binop> <leaf>`. A leaf is a
// boolean literal ("true"/"false") or an integer literal; identifiers are
// expected to already be resolved to one of those by the evaluator's
// substitution pass before this is called.
func ParseBool(tokens []string) (*ast.Node, error) {
	switch len(tokens) {
	case 1:
		leaf, err := boolLeaf(tokens[0])
		if err != nil {
			return nil, err
		}
		if leaf.Kind == ast.IntLit {
			// spec.md §9 open question, resolved: a lone integer leaf in a
			// boolean context is truthy only for 0/1; anything else errors
			// rather than silently picking a Python-style truthiness rule.
			switch leaf.IntVal.Cmp(big.NewInt(0)) {
			case 0:
				return ast.Bool(false), nil
			default:
				if leaf.IntVal.Cmp(big.NewInt(1)) == 0 {
					return ast.Bool(true), nil
				}
				return nil, fmt.Errorf("integer %s used alone in a boolean context must be 0 or 1", leaf.IntVal.String())
			}
		}
		return leaf, nil

	case 3:
		left, err := boolLeaf(tokens[0])
		if err != nil {
			return nil, err
		}
		op := tokens[1]
		right, err := boolLeaf(tokens[2])
		if err != nil {
			return nil, err
		}
		if !config.BooleanOperators[op] {
			return nil, fmt.Errorf("unsupported boolean operator %q", op)
		}
		if left.Kind != right.Kind {
			return nil, errKindMismatch
		}
		if left.Kind == ast.BoolLit && op != "&&" && op != "||" {
			return nil, fmt.Errorf("boolean operands only support && and ||, got %q", op)
		}
		if left.Kind == ast.IntLit && (op == "&&" || op == "||") {
			return nil, fmt.Errorf("integer operands do not support %q", op)
		}
		return ast.Bin(op, left, right), nil

	default:
		return nil, fmt.Errorf("boolean expression must be a single value or exactly one comparison")
	}
}

// errKindMismatch is wrapped by the evaluator into a diagnostics.Value error
// — spec.md §4.4's "Comparison of a Boolean with an Integer fails with a
// value error".
var errKindMismatch = fmt.Errorf("cannot compare a Boolean with an Integer")

// ErrKindMismatch lets callers recognize the boolean/integer comparison
// failure specifically, to tag it a Value error rather than a Syntax error.
func ErrKindMismatch() error { return errKindMismatch }

func boolLeaf(tok string) (*ast.Node, error) {
	switch tok {
	case "true", "True":
		return ast.Bool(true), nil
	case "false", "False":
		return ast.Bool(false), nil
	default:
		if IsIntLiteral(tok) {
			v, ok := new(big.Int).SetString(tok, 10)
			if !ok {
				return nil, fmt.Errorf("invalid integer literal %q", tok)
			}
			return ast.Int(v), nil
		}
		return nil, fmt.Errorf("invalid boolean token %q", tok)
	}
}
