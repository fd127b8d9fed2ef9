package dsl

import (
	"errors"
	"fmt"
	"strings"

	"github.com/llfsmgen/llfsmgen/pkg/domain"
)

// Canvas placement of generated states.
const (
	StateWidth   = 200
	StateHeight  = 100
	StateSpacing = 200
)

// Builder manages the machine construction.
type Builder struct {
	states    []*StateBuilder
	index     map[string]*StateBuilder
	external  []string
	variables []string
	includes  []string
	clocks    []domain.ClockModel
	initial   string
	suspended *string
}

// New creates a new machine builder.
func New() *Builder {
	return &Builder{
		index: make(map[string]*StateBuilder),
	}
}

// Add creates a new state in the machine.
// If the state already exists, it returns the existing builder.
func (b *Builder) Add(name string) *StateBuilder {
	if sb, ok := b.index[name]; ok {
		return sb
	}
	sb := &StateBuilder{
		state: domain.StateModel{
			Name:    name,
			Actions: []domain.ActionModel{},
			Layout: domain.StateLayout{
				Position:   domain.Point2D{X: 0, Y: float64(len(b.states) * StateSpacing)},
				Dimensions: domain.Point2D{X: StateWidth, Y: StateHeight},
			},
		},
		builder: b,
	}
	b.states = append(b.states, sb)
	b.index[name] = sb
	return sb
}

// External appends port declarations, one per line.
func (b *Builder) External(lines ...string) *Builder {
	b.external = append(b.external, lines...)
	return b
}

// Variables appends machine variable declarations, one per line.
func (b *Builder) Variables(lines ...string) *Builder {
	b.variables = append(b.variables, lines...)
	return b
}

// Includes appends library and use clauses, one per line.
func (b *Builder) Includes(lines ...string) *Builder {
	b.includes = append(b.includes, lines...)
	return b
}

// Clock adds a clock, e.g. Clock("clk", "50 MHz").
func (b *Builder) Clock(name, frequency string) *Builder {
	b.clocks = append(b.clocks, domain.ClockModel{Name: name, Frequency: frequency})
	return b
}

// Initial overrides the initial state.
func (b *Builder) Initial(name string) *Builder {
	b.initial = name
	return b
}

// Suspended sets the state entered while the machine is suspended.
func (b *Builder) Suspended(name string) *Builder {
	b.suspended = &name
	return b
}

// Build assembles the model. Every state referenced by a transition, the
// initial state and the suspended state must have been added.
func (b *Builder) Build() (domain.MachineModel, error) {
	if len(b.states) == 0 {
		return domain.MachineModel{}, errors.New("machine has no states")
	}

	initial := b.initial
	if initial == "" {
		initial = b.states[0].state.Name
	}
	if _, ok := b.index[initial]; !ok {
		return domain.MachineModel{}, fmt.Errorf("unknown initial state %q", initial)
	}
	if b.suspended != nil {
		if _, ok := b.index[*b.suspended]; !ok {
			return domain.MachineModel{}, fmt.Errorf("unknown suspended state %q", *b.suspended)
		}
	}

	model := domain.MachineModel{
		States:            make([]domain.StateModel, 0, len(b.states)),
		ExternalVariables: strings.Join(b.external, "\n"),
		MachineVariables:  strings.Join(b.variables, "\n"),
		Includes:          strings.Join(b.includes, "\n"),
		Transitions:       []domain.TransitionModel{},
		InitialState:      initial,
		SuspendedState:    b.suspended,
		Clocks:            b.clocks,
	}
	for _, sb := range b.states {
		model.States = append(model.States, sb.Build())
		for _, t := range sb.transitions {
			if _, ok := b.index[t.Target]; !ok {
				return domain.MachineModel{}, fmt.Errorf("state %s: unknown target state %q", sb.state.Name, t.Target)
			}
			model.Transitions = append(model.Transitions, t)
		}
	}
	return model, nil
}
