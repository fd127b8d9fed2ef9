package vhdl

import (
	"fmt"
	"strings"
)

// Include is a library or use clause.
type Include struct {
	Use  bool           // use clause when set, library clause otherwise
	Path []VariableName // Library name, or the selected name of a use clause
	All  bool           // use clause ends in .all
	Trivia
}

// ParseIncludes parses a block of library and use clauses.
func ParseIncludes(text string) ([]Include, error) {
	decls, err := SplitDeclarations(text)
	if err != nil {
		return nil, err
	}
	includes := []Include{}
	for _, decl := range decls {
		inc, err := ParseInclude(decl.Text)
		if err != nil {
			return nil, err
		}
		inc.Trivia = decl.Trivia
		includes = append(includes, inc)
	}
	return includes, nil
}

// ParseInclude parses a single clause, e.g. "use IEEE.std_logic_1164.all;".
func ParseInclude(text string) (Include, error) {
	p, err := newParser(text)
	if err != nil {
		return Include{}, err
	}
	var inc Include
	switch {
	case p.accept("library"):
		name, err := p.identifier()
		if err != nil {
			return Include{}, err
		}
		inc.Path = []VariableName{name}
	case p.accept("use"):
		inc.Use = true
		for {
			if len(inc.Path) > 0 && p.accept("all") {
				inc.All = true
				break
			}
			name, err := p.identifier()
			if err != nil {
				return Include{}, err
			}
			inc.Path = append(inc.Path, name)
			if !p.accept(".") {
				break
			}
		}
		if len(inc.Path) < 2 && !inc.All {
			return Include{}, p.errorf("use clause must select a library unit")
		}
	default:
		return Include{}, p.errorf("expected library or use clause")
	}
	if err := p.expect(";"); err != nil {
		return Include{}, err
	}
	if err := p.expectEOF(); err != nil {
		return Include{}, err
	}
	return inc, nil
}

func (i Include) String() string {
	parts := make([]string, len(i.Path))
	for n, p := range i.Path {
		parts[n] = string(p)
	}
	if !i.Use {
		return i.Wrap(fmt.Sprintf("library %s;", strings.Join(parts, ".")))
	}
	if i.All {
		parts = append(parts, "all")
	}
	return i.Wrap(fmt.Sprintf("use %s;", strings.Join(parts, ".")))
}

func (i Include) MarshalText() ([]byte, error) { return []byte(i.String()), nil }

func (i *Include) UnmarshalText(data []byte) error {
	parsed, err := ParseIncludes(string(data))
	if err != nil {
		return err
	}
	if len(parsed) != 1 {
		return syntaxErrorf(string(data), 0, "expected a single clause, found %d", len(parsed))
	}
	*i = parsed[0]
	return nil
}
