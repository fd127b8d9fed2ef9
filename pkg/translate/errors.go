package translate

import (
	"fmt"
	"strings"
)

// StructureError lists every problem found while translating a machine.
type StructureError struct {
	Problems []string
}

func (e *StructureError) Error() string {
	if len(e.Problems) == 1 {
		return e.Problems[0]
	}
	var sb strings.Builder
	fmt.Fprintf(&sb, "%d problems:", len(e.Problems))
	for i, p := range e.Problems {
		fmt.Fprintf(&sb, "\n  %d. %s", i+1, p)
	}
	return sb.String()
}

type problems []string

func (p *problems) addf(format string, args ...any) {
	*p = append(*p, fmt.Sprintf(format, args...))
}

func (p problems) err() error {
	if len(p) == 0 {
		return nil
	}
	return &StructureError{Problems: p}
}
