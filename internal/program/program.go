// Package program holds a loaded BinP source file as a slice of
// already-preformatted lines. Each line's token vector is split exactly
// once at load time and reused by every later pass — the dispatcher, the
// expression substitution pass, and error reporting all read Tokens/Text
// instead of re-splitting, per spec.md's Design Notes ("avoid re-splitting
// inside hot loops").
package program

import (
	"strings"

	"github.com/binplang/binp/internal/lexer"
)

// Line is one physical source line after preformatting (spec.md §4.1).
type Line struct {
	Text   string
	Tokens []string
}

// Program is an ordered sequence of preformatted lines (spec.md §3).
type Program []Line

// Load preformats every raw line once and memoizes its token vector.
func Load(rawLines []string) Program {
	p := make(Program, len(rawLines))
	for i, raw := range rawLines {
		toks := lexer.Preformat(raw)
		p[i] = Line{Text: strings.Join(toks, " "), Tokens: toks}
	}
	return p
}

// LoadLine preformats a single line, for use by the REPL and by `input`
// reads, both of which must run a freshly typed line through the same
// normalization as file-sourced lines (spec.md §4.3).
func LoadLine(raw string) Line {
	toks := lexer.Preformat(raw)
	return Line{Text: strings.Join(toks, " "), Tokens: toks}
}
