// Package evaluator turns a line's token vector into a value.Value: it
// substitutes bound identifiers and resolves function/builtin calls, then
// hands the remaining tokens to the arithmetic or boolean tree parser and
// walks the result. Function calls need to re-enter the statement
// dispatcher to run a callee's body, and the dispatcher needs this package
// to evaluate expressions — the Runner interface breaks that cycle the
// same way the teacher repo's Evaluator depends on a ModuleLoader
// interface instead of importing the package that implements it.
package evaluator

import "github.com/binplang/binp/internal/namespace"
import "github.com/binplang/binp/internal/program"

// Runner executes a function body and reports what it returned. ret is the
// token vector following the `return` keyword on whichever line produced
// it, or nil/empty if the body ran off its end without a return statement.
type Runner interface {
	RunBody(body program.Program, lineOffset int, ns *namespace.Namespace) (ret []string, err error)
}

// Evaluator is the shared expression-evaluation entry point used by the
// dispatcher for every `var`, `if`, `while`, and `output` line.
type Evaluator struct {
	Runner Runner
}

// New returns an Evaluator with no Runner wired. The caller must set
// Runner before evaluating any expression that can call a user-defined
// function, normally by assigning the interpreter that embeds this
// Evaluator right after constructing both.
func New() *Evaluator {
	return &Evaluator{}
}
