package interpreter

import (
	"github.com/binplang/binp/internal/diagnostics"
	"github.com/binplang/binp/internal/namespace"
	"github.com/binplang/binp/internal/program"
)

// runIf implements spec.md §4.6's if handler: it walks the block
// line-by-line rather than pre-locating `else`/`end`, re-entering Dispatch
// for every line so a nested if/while finds its own matching `end` by
// recursion instead of the outer scan having to count nesting depth.
func (interp *Interpreter) runIf(i int, lines program.Program, lineOffset int, ns *namespace.Namespace, execute bool) (nextI int, ret []string, hasReturn bool, err error) {
	cond := false
	if execute {
		v, everr := interp.Eval.EvalBool(conditionTokens(lines[i].Tokens), ns, lineOffset+i, lines[i].Text)
		if everr != nil {
			return 0, nil, false, everr
		}
		cond = v.Bool
	}

	inElse := false
	j := i + 1
	for {
		if j >= len(lines) {
			return 0, nil, false, diagnostics.NewSyntax(lineOffset+i, lines[i].Text, "unterminated if block")
		}
		toks := lines[j].Tokens
		if len(toks) == 1 && toks[0] == "end" {
			return j + 1, nil, false, nil
		}
		if len(toks) == 1 && toks[0] == "else" {
			inElse = true
			j++
			continue
		}

		branchActive := execute && ((!inElse && cond) || (inElse && !cond))
		nj, r, hasRet, derr := interp.Dispatch(j, lines, lineOffset, ns, branchActive)
		if derr != nil {
			return 0, nil, false, derr
		}
		if hasRet {
			return 0, r, true, nil
		}
		j = nj
	}
}

// runWhile implements spec.md §4.6's while handler and its §9 resolved
// open question: each call evaluates the condition exactly once. A true
// condition runs the body and, on reaching `end`, loops back to the
// `while` line itself so the caller re-evaluates it. A false condition
// runs the `else` branch once, if present, then advances past the block —
// the else never runs more than once per loop, only on the exiting check.
func (interp *Interpreter) runWhile(i int, lines program.Program, lineOffset int, ns *namespace.Namespace, execute bool) (nextI int, ret []string, hasReturn bool, err error) {
	cond := false
	if execute {
		v, everr := interp.Eval.EvalBool(conditionTokens(lines[i].Tokens), ns, lineOffset+i, lines[i].Text)
		if everr != nil {
			return 0, nil, false, everr
		}
		cond = v.Bool
	}

	inElse := false
	j := i + 1
	for {
		if j >= len(lines) {
			return 0, nil, false, diagnostics.NewSyntax(lineOffset+i, lines[i].Text, "unterminated while block")
		}
		toks := lines[j].Tokens
		if len(toks) == 1 && toks[0] == "end" {
			if execute && cond {
				return i, nil, false, nil
			}
			return j + 1, nil, false, nil
		}
		if len(toks) == 1 && toks[0] == "else" {
			inElse = true
			j++
			continue
		}

		branchActive := execute && ((!inElse && cond) || (inElse && !cond))
		nj, r, hasRet, derr := interp.Dispatch(j, lines, lineOffset, ns, branchActive)
		if derr != nil {
			return 0, nil, false, derr
		}
		if hasRet {
			return 0, r, true, nil
		}
		j = nj
	}
}
