package dsl

import (
	"strings"

	"github.com/llfsmgen/llfsmgen/pkg/domain"
)

// StateBuilder provides a fluent API for configuring a state.
type StateBuilder struct {
	state       domain.StateModel
	transitions []domain.TransitionModel
	external    []string
	variables   []string
	builder     *Builder
}

// Uses declares the external variables the state accesses.
func (s *StateBuilder) Uses(names ...string) *StateBuilder {
	s.external = append(s.external, names...)
	return s
}

// Variables appends state variable declarations, one per line.
func (s *StateBuilder) Variables(lines ...string) *StateBuilder {
	s.variables = append(s.variables, lines...)
	return s
}

// Action sets the code of a named action, replacing earlier code for the
// same name.
func (s *StateBuilder) Action(name, code string) *StateBuilder {
	for i, a := range s.state.Actions {
		if a.Name == name {
			s.state.Actions[i].Code = code
			return s
		}
	}
	s.state.Actions = append(s.state.Actions, domain.ActionModel{Name: name, Code: code})
	return s
}

// OnEntry runs code when the state is entered.
func (s *StateBuilder) OnEntry(code string) *StateBuilder {
	return s.Action("OnEntry", code)
}

// OnExit runs code when a transition leaves the state.
func (s *StateBuilder) OnExit(code string) *StateBuilder {
	return s.Action("OnExit", code)
}

// Internal runs code on every ringlet where no transition fires.
func (s *StateBuilder) Internal(code string) *StateBuilder {
	return s.Action("Internal", code)
}

// Go adds an unconditional transition to the target state.
func (s *StateBuilder) Go(target string) *StateBuilder {
	return s.Branch("true", target)
}

// Branch adds a guarded transition. Transitions are tried in the order they
// are added.
func (s *StateBuilder) Branch(condition string, target string) *StateBuilder {
	s.transitions = append(s.transitions, domain.TransitionModel{
		Source:    s.state.Name,
		Target:    target,
		Condition: condition,
	})
	return s
}

// Done returns the machine builder, for chaining.
func (s *StateBuilder) Done() *Builder {
	return s.builder
}

// Build returns the underlying domain.StateModel.
// This is primarily used by the Builder, but exposed for advanced usage.
func (s *StateBuilder) Build() domain.StateModel {
	state := s.state
	state.ExternalVariables = strings.Join(s.external, "\n")
	state.Variables = strings.Join(s.variables, "\n")
	state.Actions = append([]domain.ActionModel{}, s.state.Actions...)
	return state
}
