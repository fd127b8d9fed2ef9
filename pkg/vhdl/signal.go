package vhdl

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Mode is the direction of a port.
type Mode string

const (
	ModeIn     Mode = "in"
	ModeOut    Mode = "out"
	ModeInout  Mode = "inout"
	ModeBuffer Mode = "buffer"
)

// PortSignal is an external variable of a machine, declared as a port.
type PortSignal struct {
	Name    VariableName
	Mode    Mode
	Type    SignalType
	Default Expression // optional
	Trivia
}

// LocalSignal is a signal declared inside a machine or a state.
type LocalSignal struct {
	Name    VariableName
	Type    SignalType
	Default Expression // optional
	Trivia
}

func (s PortSignal) String() string {
	return s.Wrap(fmt.Sprintf("%s: %s %s%s;", s.Name, s.Mode, s.Type, defaultSuffix(s.Default)))
}

// Port renders the signal as an entry of a port clause, without the
// terminating semicolon. Its comments go on the lines above.
func (s PortSignal) Port() string {
	return s.Above(fmt.Sprintf("%s: %s %s%s", s.Name, s.Mode, s.Type, defaultSuffix(s.Default)))
}

func (s LocalSignal) String() string {
	return s.Wrap(fmt.Sprintf("signal %s: %s%s;", s.Name, s.Type, defaultSuffix(s.Default)))
}

func defaultSuffix(e Expression) string {
	if e == nil {
		return ""
	}
	return " := " + e.String()
}

// ParsePortSignals parses a block of port declarations. Each declaration is
// terminated by a semicolon and may name several signals.
func ParsePortSignals(text string) ([]PortSignal, error) {
	decls, err := SplitDeclarations(text)
	if err != nil {
		return nil, err
	}
	signals := []PortSignal{}
	for _, decl := range decls {
		parsed, err := parsePortDeclaration(decl.Text)
		if err != nil {
			return nil, err
		}
		parsed[0].Trivia = decl.Trivia
		signals = append(signals, parsed...)
	}
	return signals, nil
}

// ParsePortSignal parses a single port declaration naming one signal.
func ParsePortSignal(text string) (PortSignal, error) {
	signals, err := parsePortDeclaration(text)
	if err != nil {
		return PortSignal{}, err
	}
	if len(signals) != 1 {
		return PortSignal{}, syntaxErrorf(text, 0, "expected a single signal, found %d", len(signals))
	}
	return signals[0], nil
}

func parsePortDeclaration(text string) ([]PortSignal, error) {
	p, err := newParser(text)
	if err != nil {
		return nil, err
	}
	names, err := p.identifierList()
	if err != nil {
		return nil, err
	}
	if err := p.expect(":"); err != nil {
		return nil, err
	}
	modeText, ok := p.operator([]string{"in", "out", "inout", "buffer"})
	if !ok {
		return nil, p.errorf("expected port mode")
	}
	typ, def, err := p.signalTail()
	if err != nil {
		return nil, err
	}
	out := make([]PortSignal, len(names))
	for i, name := range names {
		out[i] = PortSignal{Name: name, Mode: Mode(modeText), Type: typ, Default: def}
	}
	return out, nil
}

// ParseLocalSignals parses a block of "signal" declarations.
func ParseLocalSignals(text string) ([]LocalSignal, error) {
	decls, err := SplitDeclarations(text)
	if err != nil {
		return nil, err
	}
	signals := []LocalSignal{}
	for _, decl := range decls {
		parsed, err := parseLocalDeclaration(decl.Text)
		if err != nil {
			return nil, err
		}
		parsed[0].Trivia = decl.Trivia
		signals = append(signals, parsed...)
	}
	return signals, nil
}

func parseLocalDeclaration(text string) ([]LocalSignal, error) {
	p, err := newParser(text)
	if err != nil {
		return nil, err
	}
	if err := p.expect("signal"); err != nil {
		return nil, err
	}
	names, err := p.identifierList()
	if err != nil {
		return nil, err
	}
	if err := p.expect(":"); err != nil {
		return nil, err
	}
	typ, def, err := p.signalTail()
	if err != nil {
		return nil, err
	}
	out := make([]LocalSignal, len(names))
	for i, name := range names {
		out[i] = LocalSignal{Name: name, Type: typ, Default: def}
	}
	return out, nil
}

func (p *parser) identifierList() ([]VariableName, error) {
	var names []VariableName
	for {
		name, err := p.identifier()
		if err != nil {
			return nil, err
		}
		names = append(names, name)
		if !p.accept(",") {
			return names, nil
		}
	}
}

// signalTail parses "type [:= default];".
func (p *parser) signalTail() (SignalType, Expression, error) {
	typ, err := p.signalType()
	if err != nil {
		return SignalType{}, nil, err
	}
	var def Expression
	if p.accept(":=") {
		def, err = p.expression()
		if err != nil {
			return SignalType{}, nil, err
		}
	}
	if err := p.expect(";"); err != nil {
		return SignalType{}, nil, err
	}
	if err := p.expectEOF(); err != nil {
		return SignalType{}, nil, err
	}
	return typ, def, nil
}

type signalJSON struct {
	Name         VariableName `json:"name"`
	Mode         Mode         `json:"mode,omitempty"`
	Type         SignalType   `json:"type"`
	DefaultValue string       `json:"defaultValue,omitempty"`
	Trivia
}

func parseDefault(text string) (Expression, error) {
	if strings.TrimSpace(text) == "" {
		return nil, nil
	}
	return ParseExpression(text)
}

func defaultText(e Expression) string {
	if e == nil {
		return ""
	}
	return e.String()
}

func (s PortSignal) MarshalJSON() ([]byte, error) {
	return json.Marshal(signalJSON{Name: s.Name, Mode: s.Mode, Type: s.Type, DefaultValue: defaultText(s.Default), Trivia: s.Trivia})
}

func (s *PortSignal) UnmarshalJSON(data []byte) error {
	var raw signalJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	switch raw.Mode {
	case ModeIn, ModeOut, ModeInout, ModeBuffer:
	default:
		return &SyntaxError{Reason: fmt.Sprintf("invalid port mode %q", raw.Mode)}
	}
	def, err := parseDefault(raw.DefaultValue)
	if err != nil {
		return err
	}
	*s = PortSignal{Name: raw.Name, Mode: raw.Mode, Type: raw.Type, Default: def, Trivia: raw.Trivia}
	return nil
}

func (s LocalSignal) MarshalJSON() ([]byte, error) {
	return json.Marshal(signalJSON{Name: s.Name, Type: s.Type, DefaultValue: defaultText(s.Default), Trivia: s.Trivia})
}

func (s *LocalSignal) UnmarshalJSON(data []byte) error {
	var raw signalJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	def, err := parseDefault(raw.DefaultValue)
	if err != nil {
		return err
	}
	*s = LocalSignal{Name: raw.Name, Type: raw.Type, Default: def, Trivia: raw.Trivia}
	return nil
}
