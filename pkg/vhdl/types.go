package vhdl

import (
	"fmt"
	"strconv"
	"strings"
)

// Range is a discrete range such as 7 downto 0.
type Range struct {
	Left      int
	Direction string // "to" or "downto"
	Right     int
}

func (r Range) String() string { return fmt.Sprintf("%d %s %d", r.Left, r.Direction, r.Right) }

// SignalType is the subtype indication of a signal.
type SignalType struct {
	Name       string // Lower-case type mark
	Range      *Range // Index constraint of vector types
	Constraint *Range // Range constraint of integer types
}

var scalarTypes = map[string]bool{
	"std_logic": true, "std_ulogic": true, "bit": true, "boolean": true,
	"character": true, "time": true, "real": true,
	"integer": true, "natural": true, "positive": true,
}

var vectorTypes = map[string]bool{
	"std_logic_vector": true, "std_ulogic_vector": true, "bit_vector": true,
	"signed": true, "unsigned": true, "string": true,
}

var rangedTypes = map[string]bool{"integer": true, "natural": true, "positive": true}

// ParseSignalType parses a subtype indication such as std_logic_vector(3 downto 0).
func ParseSignalType(text string) (SignalType, error) {
	p, err := newParser(text)
	if err != nil {
		return SignalType{}, err
	}
	typ, err := p.signalType()
	if err != nil {
		return SignalType{}, err
	}
	if err := p.expectEOF(); err != nil {
		return SignalType{}, err
	}
	return typ, nil
}

func (t SignalType) String() string {
	switch {
	case t.Range != nil:
		return fmt.Sprintf("%s(%s)", t.Name, t.Range)
	case t.Constraint != nil:
		return fmt.Sprintf("%s range %s", t.Name, t.Constraint)
	}
	return t.Name
}

// Width returns the number of bits of a std_logic style type, or 0 when the
// type is not a bit or a bit vector.
func (t SignalType) Width() int {
	switch t.Name {
	case "std_logic", "std_ulogic", "bit":
		return 1
	case "std_logic_vector", "std_ulogic_vector", "bit_vector", "signed", "unsigned":
		if t.Range == nil {
			return 0
		}
		w := t.Range.Left - t.Range.Right
		if w < 0 {
			w = -w
		}
		return w + 1
	}
	return 0
}

func (t SignalType) MarshalText() ([]byte, error) { return []byte(t.String()), nil }

func (t *SignalType) UnmarshalText(data []byte) error {
	parsed, err := ParseSignalType(string(data))
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

func (p *parser) signalType() (SignalType, error) {
	t := p.peek()
	if t.kind != tokenIdent {
		return SignalType{}, p.errorf("expected type")
	}
	name := strings.ToLower(t.text)
	if !scalarTypes[name] && !vectorTypes[name] {
		return SignalType{}, p.errorf("unsupported type %q", t.text)
	}
	p.pos++
	typ := SignalType{Name: name}
	switch {
	case vectorTypes[name]:
		if err := p.expect("("); err != nil {
			return SignalType{}, err
		}
		r, err := p.discreteRange()
		if err != nil {
			return SignalType{}, err
		}
		if err := p.expect(")"); err != nil {
			return SignalType{}, err
		}
		typ.Range = &r
	case rangedTypes[name] && p.accept("range"):
		r, err := p.discreteRange()
		if err != nil {
			return SignalType{}, err
		}
		typ.Constraint = &r
	}
	return typ, nil
}

func (p *parser) discreteRange() (Range, error) {
	left, err := p.integer()
	if err != nil {
		return Range{}, err
	}
	dir, ok := p.operator([]string{"downto", "to"})
	if !ok {
		return Range{}, p.errorf("expected range direction")
	}
	right, err := p.integer()
	if err != nil {
		return Range{}, err
	}
	return Range{Left: left, Direction: dir, Right: right}, nil
}

func (p *parser) integer() (int, error) {
	negative := p.accept("-")
	t := p.peek()
	if t.kind != tokenInteger {
		return 0, p.errorf("expected integer")
	}
	n, err := strconv.Atoi(strings.ReplaceAll(t.text, "_", ""))
	if err != nil {
		return 0, syntaxErrorf(p.input, t.offset, "invalid integer %q", t.text)
	}
	p.pos++
	if negative {
		n = -n
	}
	return n, nil
}
