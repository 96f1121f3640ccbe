// Package config is the single source of truth for BinP's lexical and
// runtime constants: reserved words, the preformatter's operator atoms, and
// the strings the driver uses for output and prompts.
package config

import "regexp"

// SourceFileExtension is the only extension the driver accepts.
const SourceFileExtension = ".binp"

// OutputPrefix is written before every `output` statement's rendered text.
const OutputPrefix = " >> "

// InteractivePrompt and InteractivePromptNested are shown by the REPL for a
// top-level line and for a line inside an open if/while/function block.
const (
	InteractivePrompt       = ">> "
	InteractivePromptNested = ".. "
)

// ReservedWords may not be used as identifiers.
var ReservedWords = map[string]bool{
	"if": true, "else": true, "while": true, "end": true, "then": true,
	"return": true, "func": true, "int": true, "str": true, "bool": true,
	"fn": true, "null": true, "tup": true, "var": true, "output": true,
	"input": true, "true": true, "false": true,
}

// SingleCharAtoms are preformatter atoms that are always one byte wide.
var SingleCharAtoms = map[byte]bool{
	'(': true, ')': true, ',': true, '.': true, '$': true,
	'+': true, '-': true, '*': true, '/': true, '%': true,
	'<': true, '>': true, '=': true,
}

// MultiCharAtoms are the two-byte operator atoms the preformatter must keep
// atomic instead of splitting into their constituent single-char atoms.
var MultiCharAtoms = map[string]bool{
	"==": true, "!=": true, "<=": true, ">=": true, "&&": true, "||": true,
	"=>": true,
}

// BooleanOperators are the operators legal inside a boolean expression.
var BooleanOperators = map[string]bool{
	"&&": true, "||": true, "==": true, "!=": true,
	"<": true, "<=": true, ">": true, ">=": true,
}

// ScalarTypes are the declared-type names with a dedicated evaluator; any
// other declared type name falls back to the string evaluator (spec.md §4.3).
var ScalarTypes = map[string]bool{
	"int": true, "str": true, "bool": true, "null": true,
}

var identifierRE = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// ValidIdentifier reports whether name is a legal, non-reserved BinP
// identifier (spec.md §4.3's var/func declaration grammar).
func ValidIdentifier(name string) bool {
	return identifierRE.MatchString(name) && !ReservedWords[name]
}
