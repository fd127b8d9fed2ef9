package translate

import (
	"strings"

	"github.com/llfsmgen/llfsmgen/pkg/domain"
	"github.com/llfsmgen/llfsmgen/pkg/vhdl"
)

// MsgCannotCreateMachine is reported when a model does not compile.
const MsgCannotCreateMachine = "Cannot create valid machine from model."

// Compile validates a MachineModel and produces its canonical Machine.
// All problems are collected into a *StructureError wrapped in an
// InvalidGeneration error.
func Compile(model domain.MachineModel) (domain.Machine, error) {
	machine, errs := compile(model)
	if err := errs.err(); err != nil {
		return domain.Machine{}, domain.WrapError(domain.KindInvalidGeneration, MsgCannotCreateMachine, err)
	}
	return machine, nil
}

func compile(model domain.MachineModel) (domain.Machine, problems) {
	var errs problems
	machine := domain.Machine{
		Actions:     []vhdl.VariableName{},
		States:      make([]domain.State, 0, len(model.States)),
		Transitions: make([]domain.Transition, 0, len(model.Transitions)),
	}

	var err error
	if machine.Includes, err = vhdl.ParseIncludes(model.Includes); err != nil {
		errs.addf("includes: %v", err)
	}
	if machine.ExternalSignals, err = vhdl.ParsePortSignals(model.ExternalVariables); err != nil {
		errs.addf("external variables: %v", err)
	}
	if machine.MachineSignals, err = vhdl.ParseLocalSignals(model.MachineVariables); err != nil {
		errs.addf("machine variables: %v", err)
	}

	machine.Clocks = make([]vhdl.Clock, 0, len(model.Clocks))
	for _, c := range model.Clocks {
		clock, err := vhdl.ParseClock(c.Name, c.Frequency)
		if err != nil {
			errs.addf("clock %q: %v", c.Name, err)
			continue
		}
		machine.Clocks = append(machine.Clocks, clock)
	}
	if len(model.Clocks) == 0 {
		errs.addf("machine declares no clocks")
	}

	// Machine-wide names: ports, machine signals and clocks share a scope.
	scope := newScope()
	for _, s := range machine.ExternalSignals {
		scope.declare(s.Name, "external variable", &errs)
	}
	for _, s := range machine.MachineSignals {
		scope.declare(s.Name, "machine variable", &errs)
	}
	for _, c := range machine.Clocks {
		scope.declare(c.Name, "clock", &errs)
	}

	stateIndex := make(map[string]int, len(model.States))
	seenActions := make(map[string]bool)
	for i, sm := range model.States {
		state, ok := compileState(sm, machine.ExternalSignals, scope, &errs)
		if !ok {
			continue
		}
		if _, dup := stateIndex[state.Name.Key()]; dup {
			errs.addf("duplicate state %q", sm.Name)
			continue
		}
		stateIndex[state.Name.Key()] = i
		for _, a := range sm.Actions {
			name, err := vhdl.ParseVariableName(a.Name)
			if err != nil || seenActions[name.Key()] {
				continue
			}
			seenActions[name.Key()] = true
			machine.Actions = append(machine.Actions, name)
		}
		machine.States = append(machine.States, state)
	}
	if len(errs) > 0 {
		return machine, errs
	}

	for i, tm := range model.Transitions {
		source, okSource := lookupState(stateIndex, tm.Source)
		target, okTarget := lookupState(stateIndex, tm.Target)
		if !okSource {
			errs.addf("transition %d: unknown source state %q", i, tm.Source)
		}
		if !okTarget {
			errs.addf("transition %d: unknown target state %q", i, tm.Target)
		}
		cond, err := vhdl.ParseCondition(tm.Condition)
		if err != nil {
			errs.addf("transition %d: condition: %v", i, err)
		}
		if !okSource || !okTarget || err != nil {
			continue
		}
		machine.Transitions = append(machine.Transitions, domain.Transition{Condition: cond, Source: source, Target: target})
	}

	if initial, ok := lookupState(stateIndex, model.InitialState); ok {
		machine.InitialState = initial
	} else {
		errs.addf("unknown initial state %q", model.InitialState)
	}
	if model.SuspendedState != nil && strings.TrimSpace(*model.SuspendedState) != "" {
		if suspended, ok := lookupState(stateIndex, *model.SuspendedState); ok {
			machine.SuspendedState = &suspended
		} else {
			errs.addf("unknown suspended state %q", *model.SuspendedState)
		}
	}

	return machine, errs
}

func compileState(sm domain.StateModel, ports []vhdl.PortSignal, machineScope scope, errs *problems) (domain.State, bool) {
	before := len(*errs)
	name, err := vhdl.ParseVariableName(strings.TrimSpace(sm.Name))
	if err != nil {
		errs.addf("state %q: invalid name: %v", sm.Name, err)
		return domain.State{}, false
	}
	state := domain.State{
		Name:              name,
		Actions:           make(map[vhdl.VariableName]vhdl.Block),
		ExternalVariables: []vhdl.VariableName{},
	}

	if state.Signals, err = vhdl.ParseLocalSignals(sm.Variables); err != nil {
		errs.addf("state %s: variables: %v", name, err)
	}
	local := machineScope.child()
	for _, s := range state.Signals {
		local.declare(s.Name, "state "+string(name)+" variable", errs)
	}

	for _, raw := range strings.FieldsFunc(sm.ExternalVariables, isListSeparator) {
		ext, err := vhdl.ParseVariableName(raw)
		if err != nil {
			errs.addf("state %s: external variable %q: %v", name, raw, err)
			continue
		}
		if !declaresPort(ports, ext) {
			errs.addf("state %s: %q is not an external variable of the machine", name, raw)
			continue
		}
		state.ExternalVariables = append(state.ExternalVariables, ext)
	}

	for _, a := range sm.Actions {
		actionName, err := vhdl.ParseVariableName(strings.TrimSpace(a.Name))
		if err != nil {
			errs.addf("state %s: invalid action name %q: %v", name, a.Name, err)
			continue
		}
		if _, dup := state.Action(actionName); dup {
			errs.addf("state %s: duplicate action %s", name, actionName)
			continue
		}
		code, err := vhdl.ParseStatements(a.Code)
		if err != nil {
			errs.addf("state %s: action %s: %v", name, actionName, err)
			continue
		}
		if len(code) > 0 {
			state.Actions[actionName] = code
		}
	}

	return state, len(*errs) == before
}

func isListSeparator(r rune) bool {
	return r == '\n' || r == '\r' || r == ',' || r == ' ' || r == '\t' || r == ';'
}

func declaresPort(ports []vhdl.PortSignal, name vhdl.VariableName) bool {
	for _, p := range ports {
		if p.Name.Equal(name) {
			return true
		}
	}
	return false
}

func lookupState(index map[string]int, raw string) (int, bool) {
	name, err := vhdl.ParseVariableName(strings.TrimSpace(raw))
	if err != nil {
		return 0, false
	}
	i, ok := index[name.Key()]
	return i, ok
}

// scope detects case-insensitive name collisions.
type scope map[string]string

func newScope() scope { return scope{} }

func (s scope) child() scope {
	c := make(scope, len(s))
	for k, v := range s {
		c[k] = v
	}
	return c
}

func (s scope) declare(name vhdl.VariableName, what string, errs *problems) {
	if prev, ok := s[name.Key()]; ok {
		errs.addf("%s %s collides with %s", what, name, prev)
		return
	}
	s[name.Key()] = what + " " + string(name)
}
