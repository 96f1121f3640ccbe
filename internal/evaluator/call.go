package evaluator

import (
	"github.com/binplang/binp/internal/diagnostics"
	"github.com/binplang/binp/internal/namespace"
	"github.com/binplang/binp/internal/value"
)

// substitute runs the two-phase substitution spec.md §4.4 describes: first
// every bound, non-callable identifier is replaced by its literal token,
// then any remaining `name ( args )` call forms are resolved in place. The
// order matters — a variable holding a function is never substituted in
// phase one, so `f(x)` with `x` bound to 3 becomes `f(3)`, not `f(x)`
// followed by a dangling `3`.
func (e *Evaluator) substitute(tokens []string, ns *namespace.Namespace, lineNo int, lineText string) ([]string, error) {
	phase1 := make([]string, len(tokens))
	for i, t := range tokens {
		if v, ok := ns.Get(t); ok && !v.Callable() {
			phase1[i] = v.Literal()
		} else {
			phase1[i] = t
		}
	}
	return e.resolveCalls(phase1, ns, lineNo, lineText)
}

// resolveCalls scans left to right for `name (` where name is bound to a
// callable value, replaces the whole `name ( ... )` run with the literal
// form of the call's result, and leaves every other token untouched.
func (e *Evaluator) resolveCalls(tokens []string, ns *namespace.Namespace, lineNo int, lineText string) ([]string, error) {
	out := make([]string, 0, len(tokens))
	i := 0
	for i < len(tokens) {
		tok := tokens[i]
		v, bound := ns.Get(tok)
		if bound && v.Callable() && i+1 < len(tokens) && tokens[i+1] == "(" {
			args, end, err := collectCallArgs(tokens, i+2, lineNo, lineText)
			if err != nil {
				return nil, err
			}
			result, err := e.CallFunction(tok, args, ns, lineNo, lineText)
			if err != nil {
				return nil, err
			}
			out = append(out, result.Literal())
			i = end + 1
			continue
		}
		out = append(out, tok)
		i++
	}
	return out, nil
}

// collectCallArgs returns the token run between a call's opening `(`
// (already consumed, start points just past it) and its matching `)`,
// tracking nested parentheses so an argument can itself be a parenthesized
// expression.
func collectCallArgs(tokens []string, start, lineNo int, lineText string) ([]string, int, error) {
	depth := 0
	var inner []string
	for j := start; ; j++ {
		if j >= len(tokens) {
			return nil, 0, diagnostics.NewSyntax(lineNo, lineText, "unterminated function call: missing ')'")
		}
		switch tokens[j] {
		case "(":
			depth++
			inner = append(inner, tokens[j])
		case ")":
			if depth == 0 {
				return inner, j, nil
			}
			depth--
			inner = append(inner, tokens[j])
		default:
			inner = append(inner, tokens[j])
		}
	}
}

// splitTopLevelCommas splits a call's argument tokens into one group per
// argument, ignoring commas nested inside parentheses. An empty input
// yields zero groups, not one empty group, so a zero-argument call counts
// correctly.
func splitTopLevelCommas(tokens []string) [][]string {
	if len(tokens) == 0 {
		return nil
	}
	var groups [][]string
	depth := 0
	cur := []string{}
	for _, t := range tokens {
		switch t {
		case "(":
			depth++
			cur = append(cur, t)
		case ")":
			depth--
			cur = append(cur, t)
		case ",":
			if depth == 0 {
				groups = append(groups, cur)
				cur = []string{}
				continue
			}
			cur = append(cur, t)
		default:
			cur = append(cur, t)
		}
	}
	groups = append(groups, cur)
	return groups
}

// CallFunction resolves one call site to its result, covering both
// user-defined functions and native builtins (spec.md §4.5, §6). For a
// user-defined function: the caller's namespace is cloned, each argument
// is evaluated against its parameter's declared type inside that clone (so
// later parameters can reference earlier ones), the Runner executes the
// body, and the return tokens (if any) are evaluated against the
// function's declared return type. A body that runs off its end without a
// `return` is treated as returning null.
func (e *Evaluator) CallFunction(name string, rawArgs []string, callerNS *namespace.Namespace, lineNo int, lineText string) (*value.Value, error) {
	callee, ok := callerNS.Get(name)
	if !ok || !callee.Callable() {
		return nil, diagnostics.NewValue(lineNo, lineText, "%q is not a function", name)
	}
	groups := splitTopLevelCommas(rawArgs)

	if callee.Kind == value.KindBuiltin {
		b := callee.Bi
		if len(groups) != len(b.ParamTypes) {
			return nil, diagnostics.NewArgument(lineNo, lineText, "%s expects %d argument(s), got %d", b.Name, len(b.ParamTypes), len(groups))
		}
		args := make([]*value.Value, len(groups))
		for i, g := range groups {
			v, err := e.EvalByType(g, b.ParamTypes[i], callerNS, lineNo, lineText)
			if err != nil {
				return nil, err
			}
			args[i] = v
		}
		return b.Call(args)
	}

	fn := callee.Fn
	if len(groups) != len(fn.Params) {
		return nil, diagnostics.NewArgument(lineNo, lineText, "%s expects %d argument(s), got %d", fn.Name, len(fn.Params), len(groups))
	}
	calleeNS := callerNS.Clone()
	for i, p := range fn.Params {
		v, err := e.EvalByType(groups[i], p.Type, calleeNS, lineNo, lineText)
		if err != nil {
			return nil, err
		}
		calleeNS.Set(p.Name, v)
	}

	if e.Runner == nil {
		return nil, diagnostics.NewRuntime(lineNo, lineText, "no interpreter wired to run %s's body", fn.Name)
	}
	ret, err := e.Runner.RunBody(fn.Body, fn.BodyLine, calleeNS)
	if err != nil {
		return nil, err
	}

	noValue := len(ret) == 0 || (len(ret) == 1 && ret[0] == "null")
	if noValue {
		if fn.ReturnType != "null" {
			return nil, diagnostics.NewValue(lineNo, lineText, "%s fell off its body without returning a value of type %q", fn.Name, fn.ReturnType)
		}
		return value.Null(), nil
	}
	return e.EvalByType(ret, fn.ReturnType, calleeNS, lineNo, lineText)
}
