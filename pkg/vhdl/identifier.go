package vhdl

import (
	"encoding/json"
	"strings"
)

// VariableName is a validated VHDL basic identifier.
//
// The original spelling is kept for rendering. Comparisons between names use
// Equal or Key because VHDL identifiers are case-insensitive.
type VariableName string

// ParseVariableName validates raw as a basic identifier: a letter followed by
// letters, digits or single underscores, not ending in an underscore and not
// a reserved word.
func ParseVariableName(raw string) (VariableName, error) {
	if raw == "" {
		return "", &SyntaxError{Reason: "identifier is empty"}
	}
	for i := 0; i < len(raw); i++ {
		c := raw[i]
		switch {
		case isLetter(c):
		case isDigit(c) && i > 0:
		case c == '_' && i > 0:
			if raw[i-1] == '_' {
				return "", syntaxErrorf(raw, i, "identifier contains consecutive underscores")
			}
		default:
			return "", syntaxErrorf(raw, i, "invalid character %q in identifier", c)
		}
	}
	if raw[len(raw)-1] == '_' {
		return "", syntaxErrorf(raw, len(raw)-1, "identifier ends with an underscore")
	}
	if IsReserved(raw) {
		return "", syntaxErrorf(raw, 0, "%q is a reserved word", raw)
	}
	return VariableName(raw), nil
}

// MustParseVariableName is like ParseVariableName but panics on error.
func MustParseVariableName(raw string) VariableName {
	name, err := ParseVariableName(raw)
	if err != nil {
		panic(err)
	}
	return name
}

func (v VariableName) String() string { return string(v) }

// Key returns the case-folded form used for lookups.
func (v VariableName) Key() string { return strings.ToLower(string(v)) }

// Equal reports whether both names denote the same VHDL identifier.
func (v VariableName) Equal(other VariableName) bool {
	return strings.EqualFold(string(v), string(other))
}

func (v *VariableName) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	name, err := ParseVariableName(raw)
	if err != nil {
		return err
	}
	*v = name
	return nil
}

// IsReserved reports whether word is a VHDL-2008 reserved word.
func IsReserved(word string) bool {
	_, ok := reservedWords[strings.ToLower(word)]
	return ok
}

func isLetter(c byte) bool { return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') }
func isDigit(c byte) bool  { return c >= '0' && c <= '9' }

var reservedWords = func() map[string]struct{} {
	words := []string{
		"abs", "access", "after", "alias", "all", "and", "architecture", "array",
		"assert", "assume", "assume_guarantee", "attribute", "begin", "block",
		"body", "buffer", "bus", "case", "component", "configuration", "constant",
		"context", "cover", "default", "disconnect", "downto", "else", "elsif",
		"end", "entity", "exit", "fairness", "file", "for", "force", "function",
		"generate", "generic", "group", "guarded", "if", "impure", "in",
		"inertial", "inout", "is", "label", "library", "linkage", "literal",
		"loop", "map", "mod", "nand", "new", "next", "nor", "not", "null", "of",
		"on", "open", "or", "others", "out", "package", "parameter", "port",
		"postponed", "procedure", "process", "property", "protected", "pure",
		"range", "record", "register", "reject", "release", "rem", "report",
		"restrict", "restrict_guarantee", "return", "rol", "ror", "select",
		"sequence", "severity", "shared", "signal", "sla", "sll", "sra", "srl",
		"strong", "subtype", "then", "to", "transport", "type", "unaffected",
		"units", "until", "use", "variable", "vmode", "vprop", "vunit", "wait",
		"when", "while", "with", "xnor", "xor",
	}
	set := make(map[string]struct{}, len(words))
	for _, w := range words {
		set[w] = struct{}{}
	}
	return set
}()
