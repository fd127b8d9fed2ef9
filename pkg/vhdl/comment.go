package vhdl

import "strings"

// Comment is a "--" comment kept in an action. An inline comment follows the
// previous statement on its line.
type Comment struct {
	Text   string // includes the leading dashes
	Inline bool
}

func (Comment) isStatement() {}

func (c Comment) String() string { return c.Text }

// Trivia holds the comments written around a declaration. Leading comments
// sit on the lines above it. Trailing follows it on its line, or on the lines
// below when it starts with a line break.
type Trivia struct {
	Leading  string `json:"leadingComments,omitempty"`
	Trailing string `json:"trailingComments,omitempty"`
}

// Wrap renders decl with its comments in place.
func (t Trivia) Wrap(decl string) string {
	if t.Leading != "" {
		decl = t.Leading + "\n" + decl
	}
	if t.Trailing != "" {
		if !strings.HasPrefix(t.Trailing, "\n") {
			decl += " "
		}
		decl += t.Trailing
	}
	return decl
}

// Above renders decl with all of its comments on the lines above it, for
// lists where nothing may follow a declaration on its line.
func (t Trivia) Above(decl string) string {
	var lines []string
	if t.Leading != "" {
		lines = append(lines, t.Leading)
	}
	if trailing := strings.TrimPrefix(t.Trailing, "\n"); trailing != "" {
		lines = append(lines, trailing)
	}
	return strings.Join(append(lines, decl), "\n")
}
