package vhdl

import "fmt"

// SyntaxError reports a fragment that could not be parsed.
type SyntaxError struct {
	Input  string // The fragment being parsed
	Offset int    // Byte offset of the offending token
	Reason string
}

func (e *SyntaxError) Error() string {
	if e.Input == "" {
		return fmt.Sprintf("syntax error: %s", e.Reason)
	}
	return fmt.Sprintf("syntax error at offset %d in %q: %s", e.Offset, e.Input, e.Reason)
}

func syntaxErrorf(input string, offset int, format string, args ...any) *SyntaxError {
	return &SyntaxError{Input: input, Offset: offset, Reason: fmt.Sprintf(format, args...)}
}
