// Package exprparser builds BinP's expression trees from an
// already-substituted token vector (spec.md §4.4): ParseArith is the
// explicit-precedence recursive-descent integer grammar from spec.md §4.4,
// a direct Go transcription of the original implementation's
// arith_expr/arith_term/arith_factor functions; ParseBool builds the
// minimal single-leaf-or-leaf-op-leaf boolean tree.
package exprparser

import (
	"fmt"
	"math/big"
	"regexp"

	"github.com/binplang/binp/internal/ast"
)

var intLiteralRE = regexp.MustCompile(`^-?[0-9]+$`)

// IsIntLiteral reports whether tok is a valid (optionally negative) decimal
// integer literal. A leading '-' is only ever part of the literal when the
// whole token, minus that leading '-', is all digits — spec.md §4.4's
// tie-break distinguishing a substituted negative constant ("-5" as one
// token) from the subtraction operator ("-" as its own token).
func IsIntLiteral(tok string) bool {
	return intLiteralRE.MatchString(tok)
}

// arithParser walks tokens with a cursor, consistent with the teacher's
// parser style of an index-carrying parser struct rather than slice
// popping.
type arithParser struct {
	tokens []string
	pos    int
}

// ParseArith parses tokens (arithmetic atoms only: integers, + - * / % ( ))
// into an expression tree, per the grammar:
//
//	expr   := term expr'
//	expr'  := ('+'|'-') term expr' | ε
//	term   := factor term'
//	term'  := ('*'|'/'|'%') factor term' | ε
//	factor := '(' expr ')' | INT
func ParseArith(tokens []string) (*ast.Node, error) {
	p := &arithParser{tokens: tokens}
	if len(tokens) == 0 {
		return nil, fmt.Errorf("empty arithmetic expression")
	}
	node, err := p.expr()
	if err != nil {
		return nil, err
	}
	if p.pos != len(p.tokens) {
		return nil, fmt.Errorf("unexpected token %q", p.tokens[p.pos])
	}
	return node, nil
}

func (p *arithParser) expr() (*ast.Node, error) {
	left, err := p.term()
	if err != nil {
		return nil, err
	}
	return p.exprPrime(left)
}

func (p *arithParser) exprPrime(left *ast.Node) (*ast.Node, error) {
	if p.pos >= len(p.tokens) {
		return left, nil
	}
	op := p.tokens[p.pos]
	if op != "+" && op != "-" {
		return left, nil
	}
	p.pos++
	right, err := p.term()
	if err != nil {
		return nil, err
	}
	return p.exprPrime(ast.Bin(op, left, right))
}

func (p *arithParser) term() (*ast.Node, error) {
	left, err := p.factor()
	if err != nil {
		return nil, err
	}
	return p.termPrime(left)
}

func (p *arithParser) termPrime(left *ast.Node) (*ast.Node, error) {
	if p.pos >= len(p.tokens) {
		return left, nil
	}
	op := p.tokens[p.pos]
	if op != "*" && op != "/" && op != "%" {
		return left, nil
	}
	p.pos++
	right, err := p.factor()
	if err != nil {
		return nil, err
	}
	return p.termPrime(ast.Bin(op, left, right))
}

func (p *arithParser) factor() (*ast.Node, error) {
	if p.pos >= len(p.tokens) {
		return nil, fmt.Errorf("unexpected end of expression")
	}
	tok := p.tokens[p.pos]

	if tok == "(" {
		p.pos++
		node, err := p.expr()
		if err != nil {
			return nil, err
		}
		if p.pos >= len(p.tokens) || p.tokens[p.pos] != ")" {
			return nil, fmt.Errorf("expected closing parenthesis")
		}
		p.pos++
		return node, nil
	}

	if IsIntLiteral(tok) {
		p.pos++
		v, ok := new(big.Int).SetString(tok, 10)
		if !ok {
			return nil, fmt.Errorf("invalid integer literal %q", tok)
		}
		return ast.Int(v), nil
	}

	return nil, fmt.Errorf("invalid syntax: expected integer or parenthesis, got %q", tok)
}
