package domain

import "github.com/llfsmgen/llfsmgen/pkg/vhdl"

// State is a validated state of a Machine.
type State struct {
	Name              vhdl.VariableName               `json:"name"`
	Actions           map[vhdl.VariableName]vhdl.Block `json:"actions"`
	Signals           []vhdl.LocalSignal              `json:"signals"`
	ExternalVariables []vhdl.VariableName             `json:"externalVariables"`
}

// Action returns the code of the named action, matching the name
// case-insensitively.
func (s State) Action(name vhdl.VariableName) (vhdl.Block, bool) {
	if code, ok := s.Actions[name]; ok {
		return code, true
	}
	for key, code := range s.Actions {
		if key.Equal(name) {
			return code, true
		}
	}
	return nil, false
}

// Transition is a guarded edge between states referenced by index.
type Transition struct {
	Condition vhdl.Condition `json:"condition"`
	Source    int            `json:"source"`
	Target    int            `json:"target"`
}

// Machine is the canonical form of an LLFSM, persisted as machine.json.
type Machine struct {
	// Actions lists every action name used by the machine in order of first
	// appearance. It fixes the order in which actions are exported.
	Actions         []vhdl.VariableName `json:"actions"`
	Includes        []vhdl.Include      `json:"includes"`
	ExternalSignals []vhdl.PortSignal   `json:"externalSignals"`
	Clocks          []vhdl.Clock        `json:"clocks"`
	DrivingClock    int                 `json:"drivingClock"`
	MachineSignals  []vhdl.LocalSignal  `json:"machineSignals"`
	States          []State             `json:"states"`
	Transitions     []Transition        `json:"transitions"`
	InitialState    int                 `json:"initialState"`
	SuspendedState  *int                `json:"suspendedState"`
}

// StateIndex returns the index of the named state, matching case-insensitively.
func (m Machine) StateIndex(name vhdl.VariableName) (int, bool) {
	for i, s := range m.States {
		if s.Name.Equal(name) {
			return i, true
		}
	}
	return 0, false
}

// TransitionsFrom returns the transitions leaving the state at index, in
// priority order.
func (m Machine) TransitionsFrom(index int) []Transition {
	var out []Transition
	for _, t := range m.Transitions {
		if t.Source == index {
			out = append(out, t)
		}
	}
	return out
}
