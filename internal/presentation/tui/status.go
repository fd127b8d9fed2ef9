package tui

import (
	"fmt"
	"io"

	"github.com/muesli/termenv"
)

// Status prints one-line outcomes of CLI operations.
type Status struct {
	out     *termenv.Output
	success termenv.Color
	failure termenv.Color
}

// NewStatus writes to w using the colour profile of the environment. Writers
// that are not terminals get plain text.
func NewStatus(w io.Writer) *Status {
	out := termenv.NewOutput(w)
	p := out.EnvColorProfile()
	return &Status{
		out:     out,
		success: p.Color("#34d399"),
		failure: p.Color("#f87171"),
	}
}

// Success prints a green check followed by msg.
func (s *Status) Success(format string, args ...any) {
	fmt.Fprintln(s.out, s.out.String("✔ "+fmt.Sprintf(format, args...)).Foreground(s.success))
}

// Failure prints a red cross followed by the error.
func (s *Status) Failure(err error) {
	fmt.Fprintln(s.out, s.out.String("✘ "+err.Error()).Foreground(s.failure).Bold())
}
