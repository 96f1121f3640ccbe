// Package ast defines the expression tree BinP's arithmetic and boolean
// parsers build and its evaluator walks (spec.md §4.4), the direct
// generalization of the original implementation's OpNode to a typed Go
// tree, in the same spirit as the teacher repo's internal/ast node-per-
// construct style.
package ast

import "math/big"

// Kind tags which expression-tree shape a Node is.
type Kind int

const (
	IntLit Kind = iota
	BoolLit
	BinOp
)

// Node is one node of an arithmetic or boolean expression tree. Leaves
// (IntLit, BoolLit) carry a literal value; BinOp nodes carry an operator
// and two operand subtrees.
type Node struct {
	Kind    Kind
	IntVal  *big.Int
	BoolVal bool
	Op      string
	Left    *Node
	Right   *Node
}

func Int(v *big.Int) *Node             { return &Node{Kind: IntLit, IntVal: v} }
func Bool(v bool) *Node                { return &Node{Kind: BoolLit, BoolVal: v} }
func Bin(op string, l, r *Node) *Node { return &Node{Kind: BinOp, Op: op, Left: l, Right: r} }
