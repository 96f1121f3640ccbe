package evaluator

import (
	"strings"

	"github.com/binplang/binp/internal/diagnostics"
	"github.com/binplang/binp/internal/exprparser"
	"github.com/binplang/binp/internal/namespace"
	"github.com/binplang/binp/internal/value"
)

var arithOperatorTokens = map[string]bool{
	"+": true, "-": true, "*": true, "/": true, "%": true, "(": true, ")": true,
}

// EvalByType dispatches to the evaluator matching typ, the way spec.md
// §4.3 says a `var` or parameter's declared type selects its evaluator.
// Any declared type outside {int, bool, null} falls back to the string
// evaluator — BinP has no compound types, so any such name is a bare
// annotation carried through to Display without further checking.
func (e *Evaluator) EvalByType(tokens []string, typ string, ns *namespace.Namespace, lineNo int, lineText string) (*value.Value, error) {
	switch typ {
	case "int":
		return e.EvalInt(tokens, ns, lineNo, lineText)
	case "bool":
		return e.EvalBool(tokens, ns, lineNo, lineText)
	case "null":
		return value.Null(), nil
	default:
		return e.EvalStr(tokens, ns, lineNo, lineText)
	}
}

// EvalInt substitutes tokens and evaluates the result as an arithmetic
// expression.
func (e *Evaluator) EvalInt(tokens []string, ns *namespace.Namespace, lineNo int, lineText string) (*value.Value, error) {
	subst, err := e.substitute(tokens, ns, lineNo, lineText)
	if err != nil {
		return nil, err
	}
	for _, t := range subst {
		if !exprparser.IsIntLiteral(t) && !arithOperatorTokens[t] {
			return nil, diagnostics.NewValue(lineNo, lineText, "invalid cast of type 'int': unexpected token %q", t)
		}
	}
	tree, err := exprparser.ParseArith(subst)
	if err != nil {
		return nil, diagnostics.NewSyntax(lineNo, lineText, "%s", err)
	}
	result, err := EvalArithTree(tree)
	if err != nil {
		return nil, diagnostics.NewValue(lineNo, lineText, "%s", err)
	}
	return value.NewInt(result), nil
}

// EvalBool substitutes tokens and evaluates the result as a boolean
// expression. Every failure exprparser.ParseBool can report — an invalid
// leaf token, a lone non-0/1 integer, a mismatched-kind comparison, an
// unsupported operator for the operand kind — is surfaced as a Value
// error, matching the original implementation's bool_replacement, which
// raises the same exception type for all of them.
func (e *Evaluator) EvalBool(tokens []string, ns *namespace.Namespace, lineNo int, lineText string) (*value.Value, error) {
	subst, err := e.substitute(tokens, ns, lineNo, lineText)
	if err != nil {
		return nil, err
	}
	tree, err := exprparser.ParseBool(subst)
	if err != nil {
		return nil, diagnostics.NewValue(lineNo, lineText, "invalid cast of type 'bool': %s", err)
	}
	result, err := EvalBoolTree(tree)
	if err != nil {
		return nil, diagnostics.NewValue(lineNo, lineText, "%s", err)
	}
	return value.NewBool(result), nil
}

// EvalStr renders tokens as BinP's string interpolation (spec.md §4.3,
// §6): function calls are resolved first, then every remaining token bound
// to a non-callable value is replaced by its display text, and whatever is
// left is stripped of at most one layer of surrounding single quotes and
// joined with single spaces. A bare name still bound to a function or
// builtin is left as-is — functions are never substituted in the middle of
// a string unless actually called.
func (e *Evaluator) EvalStr(tokens []string, ns *namespace.Namespace, lineNo int, lineText string) (*value.Value, error) {
	resolved, err := e.resolveCalls(tokens, ns, lineNo, lineText)
	if err != nil {
		return nil, err
	}
	parts := make([]string, len(resolved))
	for i, t := range resolved {
		if v, ok := ns.Get(t); ok && !v.Callable() {
			parts[i] = v.Display()
			continue
		}
		parts[i] = stripOneQuoteLayer(t)
	}
	return value.NewString(strings.Join(parts, " ")), nil
}

func stripOneQuoteLayer(tok string) string {
	if len(tok) >= 2 && strings.HasPrefix(tok, "'") && strings.HasSuffix(tok, "'") {
		return tok[1 : len(tok)-1]
	}
	return tok
}
