package interpreter

import (
	"strings"

	"github.com/binplang/binp/internal/config"
	"github.com/binplang/binp/internal/diagnostics"
	"github.com/binplang/binp/internal/namespace"
	"github.com/binplang/binp/internal/program"
	"github.com/binplang/binp/internal/value"
)

// handleVar implements spec.md §4.3's three recognised shapes of a `var`
// line. Shape detection runs regardless of execute, since it is
// structural classification, not evaluation — an unrecognised shape is a
// syntax error whether or not the line is actually live. A function
// definition's body-end scan also always runs, since locating it is
// navigation, not evaluation; everything past that point (parameter
// validation, binding) only happens when execute is true.
func (interp *Interpreter) handleVar(i int, lines program.Program, lineOffset int, ns *namespace.Namespace, execute bool) (nextI int, err error) {
	toks := lines[i].Tokens
	rhs := toks[1:]
	lineNo, lineText := lineOffset+i, lines[i].Text

	switch {
	case isFuncDef(rhs):
		name := rhs[2]
		endIdx, ferr := findFunctionEnd(lines, i, name, lineNo, lineText)
		if ferr != nil {
			return 0, ferr
		}
		if execute {
			if !config.ValidIdentifier(name) {
				return 0, diagnostics.NewSyntax(lineNo, lineText, "invalid function name %q", name)
			}
			params, perr := parseParams(rhs[5:len(rhs)-2], lineNo, lineText)
			if perr != nil {
				return 0, perr
			}
			body := append(program.Program{}, lines[i+1:endIdx]...)
			ns.Set(name, value.NewFunction(&value.Function{
				Name:       name,
				ReturnType: rhs[0],
				Params:     params,
				Body:       body,
				BodyLine:   lineOffset + i + 1,
			}))
		}
		return endIdx + 1, nil

	case isInputRead(rhs):
		if execute {
			typ, name := rhs[0], rhs[1]
			if !config.ValidIdentifier(name) {
				return 0, diagnostics.NewSyntax(lineNo, lineText, "invalid identifier %q", name)
			}
			raw, rerr := interp.readInputLine()
			if rerr != nil {
				return 0, diagnostics.NewRuntime(lineNo, lineText, "reading input: %s", rerr)
			}
			ln := program.LoadLine(raw)
			v, everr := interp.Eval.EvalByType(ln.Tokens, typ, ns, lineNo, lineText)
			if everr != nil {
				return 0, everr
			}
			ns.Set(name, v)
		}
		return i + 1, nil

	case len(rhs) >= 4 && rhs[2] == "=":
		if execute {
			typ, name := rhs[0], rhs[1]
			if !config.ValidIdentifier(name) {
				return 0, diagnostics.NewSyntax(lineNo, lineText, "invalid identifier %q", name)
			}
			v, everr := interp.Eval.EvalByType(rhs[3:], typ, ns, lineNo, lineText)
			if everr != nil {
				return 0, everr
			}
			ns.Set(name, v)
		}
		return i + 1, nil

	default:
		return 0, diagnostics.NewSyntax(lineNo, lineText, "malformed var declaration")
	}
}

func isFuncDef(rhs []string) bool {
	return len(rhs) >= 7 && rhs[1] == "func" && rhs[3] == "=" && rhs[4] == "(" &&
		rhs[len(rhs)-1] == "=>" && rhs[len(rhs)-2] == ")"
}

func isInputRead(rhs []string) bool {
	return len(rhs) == 4 && rhs[2] == "=" && rhs[3] == "input"
}

// findFunctionEnd scans for the first line whose tokens are exactly
// ["end", name] (spec.md §4.5's definition capture). An `end` found on the
// very first scanned line means the body is empty, which spec.md §8 lists
// as a syntax error rather than a valid zero-line function.
func findFunctionEnd(lines program.Program, i int, name string, lineNo int, lineText string) (int, error) {
	for j := i + 1; j < len(lines); j++ {
		toks := lines[j].Tokens
		if len(toks) == 2 && toks[0] == "end" && toks[1] == name {
			if j == i+1 {
				return 0, diagnostics.NewSyntax(lineNo, lineText, "function %q has an empty body", name)
			}
			return j, nil
		}
	}
	return 0, diagnostics.NewSyntax(lineNo, lineText, "missing matching 'end %s'", name)
}

func parseParams(tokens []string, lineNo int, lineText string) ([]value.Param, error) {
	groups := splitCommas(tokens)
	params := make([]value.Param, 0, len(groups))
	for _, g := range groups {
		if len(g) != 2 {
			return nil, diagnostics.NewSyntax(lineNo, lineText, "bad parameter declaration %q", strings.Join(g, " "))
		}
		if !config.ValidIdentifier(g[1]) {
			return nil, diagnostics.NewSyntax(lineNo, lineText, "invalid parameter name %q", g[1])
		}
		params = append(params, value.Param{Type: g[0], Name: g[1]})
	}
	return params, nil
}

func splitCommas(tokens []string) [][]string {
	if len(tokens) == 0 {
		return nil
	}
	var groups [][]string
	cur := []string{}
	for _, t := range tokens {
		if t == "," {
			groups = append(groups, cur)
			cur = []string{}
			continue
		}
		cur = append(cur, t)
	}
	groups = append(groups, cur)
	return groups
}

func (interp *Interpreter) readInputLine() (string, error) {
	line, err := interp.Stdin.ReadString('\n')
	if err != nil && line == "" {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}
