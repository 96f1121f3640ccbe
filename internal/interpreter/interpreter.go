// Package interpreter implements BinP's statement dispatcher (spec.md
// §4.2): the per-line classifier that routes a line to the right handler,
// the driver's top-level run loop, and the evaluator.Runner a function
// call re-enters to execute its body.
package interpreter

import (
	"bufio"
	"fmt"
	"io"

	"github.com/binplang/binp/internal/config"
	"github.com/binplang/binp/internal/diagnostics"
	"github.com/binplang/binp/internal/evaluator"
	"github.com/binplang/binp/internal/namespace"
	"github.com/binplang/binp/internal/program"
)

// Interpreter owns the evaluator it drives and the I/O streams `output`
// and `input`-sourced assignments read and write.
type Interpreter struct {
	Eval   *evaluator.Evaluator
	Stdin  *bufio.Reader
	Stdout io.Writer
}

// New returns an Interpreter wired to itself as the evaluator's Runner,
// reading from in and writing `output` lines to out.
func New(in io.Reader, out io.Writer) *Interpreter {
	interp := &Interpreter{
		Eval:   evaluator.New(),
		Stdin:  bufio.NewReader(in),
		Stdout: out,
	}
	interp.Eval.Runner = interp
	return interp
}

// Run drives an entire program from its first line against ns, the way
// the file driver and the REPL both ultimately do.
func (interp *Interpreter) Run(prog program.Program, ns *namespace.Namespace) error {
	i := 0
	for i < len(prog) {
		nextI, _, hasReturn, err := interp.Dispatch(i, prog, 0, ns, true)
		if err != nil {
			return err
		}
		if hasReturn {
			return nil
		}
		i = nextI
	}
	return nil
}

// RunBody implements evaluator.Runner: it runs body to completion or to
// its first return, reporting the raw return token list (nil if the body
// fell off its end).
func (interp *Interpreter) RunBody(body program.Program, lineOffset int, ns *namespace.Namespace) ([]string, error) {
	i := 0
	for i < len(body) {
		nextI, ret, hasReturn, err := interp.Dispatch(i, body, lineOffset, ns, true)
		if err != nil {
			return nil, err
		}
		if hasReturn {
			return ret, nil
		}
		i = nextI
	}
	return nil, nil
}

// Dispatch classifies lines[i] by its leading tokens and routes it to the
// matching handler (spec.md §4.2's table). execute=false means a nested
// block is being skipped: the handler must still return the correct next
// index — finding a function's matching `end`, or an if/while's matching
// `end`, requires real recursive traversal — but must perform no side
// effect and evaluate no expression.
func (interp *Interpreter) Dispatch(i int, lines program.Program, lineOffset int, ns *namespace.Namespace, execute bool) (nextI int, ret []string, hasReturn bool, err error) {
	toks := lines[i].Tokens

	switch {
	case len(toks) == 0:
		return i + 1, nil, false, nil

	case toks[0] == "$":
		return i + 1, nil, false, nil

	case toks[0] == "output":
		if execute {
			v, everr := interp.Eval.EvalStr(toks[1:], ns, lineOffset+i, lines[i].Text)
			if everr != nil {
				return 0, nil, false, everr
			}
			fmt.Fprintln(interp.Stdout, config.OutputPrefix+v.Str)
		}
		return i + 1, nil, false, nil

	case toks[0] == "var":
		nj, verr := interp.handleVar(i, lines, lineOffset, ns, execute)
		if verr != nil {
			return 0, nil, false, verr
		}
		return nj, nil, false, nil

	case isBlockHeader("if", toks):
		return interp.runIf(i, lines, lineOffset, ns, execute)

	case isBlockHeader("while", toks):
		return interp.runWhile(i, lines, lineOffset, ns, execute)

	case toks[0] == "return":
		if execute {
			return i + 1, toks[1:], true, nil
		}
		return i + 1, nil, false, nil

	case isCallStatement(toks):
		if execute {
			_, cerr := interp.Eval.CallFunction(toks[0], toks[2:len(toks)-1], ns, lineOffset+i, lines[i].Text)
			if cerr != nil {
				return 0, nil, false, cerr
			}
		}
		return i + 1, nil, false, nil

	default:
		return 0, nil, false, diagnostics.NewSyntax(lineOffset+i, lines[i].Text, "unrecognized statement")
	}
}

func isBlockHeader(keyword string, toks []string) bool {
	return len(toks) >= 4 && toks[0] == keyword && toks[1] == "(" && toks[len(toks)-1] == "=>" && toks[len(toks)-2] == ")"
}

func conditionTokens(toks []string) []string {
	return toks[2 : len(toks)-2]
}

func isCallStatement(toks []string) bool {
	return len(toks) >= 3 && toks[1] == "(" && toks[len(toks)-1] == ")" && config.ValidIdentifier(toks[0])
}
