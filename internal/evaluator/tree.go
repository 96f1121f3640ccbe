package evaluator

import (
	"fmt"
	"math/big"

	"github.com/binplang/binp/internal/ast"
)

// EvalArithTree walks an arithmetic expression tree to its integer value.
// Division truncates toward zero (big.Int.Quo, matching spec.md §4.4's
// explicit text rather than the original implementation's floored `//`);
// modulo follows pythonMod, which keeps the divisor's sign rather than
// Go's native truncated-remainder sign or big.Int.Mod's always-nonnegative
// Euclidean result.
func EvalArithTree(node *ast.Node) (*big.Int, error) {
	switch node.Kind {
	case ast.IntLit:
		return new(big.Int).Set(node.IntVal), nil
	case ast.BinOp:
		l, err := EvalArithTree(node.Left)
		if err != nil {
			return nil, err
		}
		r, err := EvalArithTree(node.Right)
		if err != nil {
			return nil, err
		}
		switch node.Op {
		case "+":
			return new(big.Int).Add(l, r), nil
		case "-":
			return new(big.Int).Sub(l, r), nil
		case "*":
			return new(big.Int).Mul(l, r), nil
		case "/":
			if r.Sign() == 0 {
				return nil, fmt.Errorf("division by zero")
			}
			return new(big.Int).Quo(l, r), nil
		case "%":
			if r.Sign() == 0 {
				return nil, fmt.Errorf("modulo by zero")
			}
			return pythonMod(l, r), nil
		default:
			return nil, fmt.Errorf("unsupported arithmetic operator %q", node.Op)
		}
	default:
		return nil, fmt.Errorf("not an arithmetic expression")
	}
}

// pythonMod returns x%y with the divisor's sign, the way Python's `%`
// behaves and big.Int's Mod/Rem individually do not: Rem alone follows the
// dividend's sign, so a single correction step is added back when the
// truncated remainder's sign disagrees with y's.
func pythonMod(x, y *big.Int) *big.Int {
	r := new(big.Int).Rem(x, y)
	if r.Sign() != 0 && r.Sign() != y.Sign() {
		r.Add(r, y)
	}
	return r
}

// EvalBoolTree walks a boolean expression tree (spec.md §4.4's minimal
// shape: a single leaf, or one `left op right` comparison) to its value.
func EvalBoolTree(node *ast.Node) (bool, error) {
	switch node.Kind {
	case ast.BoolLit:
		return node.BoolVal, nil
	case ast.BinOp:
		switch {
		case node.Left.Kind == ast.BoolLit && node.Right.Kind == ast.BoolLit:
			switch node.Op {
			case "&&":
				return node.Left.BoolVal && node.Right.BoolVal, nil
			case "||":
				return node.Left.BoolVal || node.Right.BoolVal, nil
			default:
				return false, fmt.Errorf("unsupported boolean operator %q", node.Op)
			}
		case node.Left.Kind == ast.IntLit && node.Right.Kind == ast.IntLit:
			cmp := node.Left.IntVal.Cmp(node.Right.IntVal)
			switch node.Op {
			case "==":
				return cmp == 0, nil
			case "!=":
				return cmp != 0, nil
			case "<":
				return cmp < 0, nil
			case "<=":
				return cmp <= 0, nil
			case ">":
				return cmp > 0, nil
			case ">=":
				return cmp >= 0, nil
			default:
				return false, fmt.Errorf("unsupported comparison operator %q", node.Op)
			}
		default:
			return false, fmt.Errorf("cannot compare a Boolean with an Integer")
		}
	default:
		return false, fmt.Errorf("invalid boolean expression")
	}
}
