package translate

import (
	"fmt"
	"sort"
	"strings"

	"github.com/llfsmgen/llfsmgen/pkg/domain"
	"github.com/llfsmgen/llfsmgen/pkg/vhdl"
)

// MsgCannotCreateModel is reported when a machine cannot be rendered as a model.
const MsgCannotCreateModel = "Cannot create valid model from machine."

// Decompile renders machine as a MachineModel, taking state and transition
// layouts positionally from original. The layout counts must match the
// machine exactly.
func Decompile(machine domain.Machine, original domain.MachineModel) (domain.MachineModel, error) {
	stateLayouts := original.StateLayouts()
	if len(stateLayouts) != len(machine.States) {
		return domain.MachineModel{}, domain.NewError(domain.KindInvalidLayout, fmt.Sprintf(
			"Found incorrect number of state layouts.\nMachine: %d\nModel: %d", len(machine.States), len(stateLayouts)))
	}
	transitionLayouts := original.TransitionLayouts()
	if len(transitionLayouts) != len(machine.Transitions) {
		return domain.MachineModel{}, domain.NewError(domain.KindInvalidLayout, fmt.Sprintf(
			"Found incorrect number of transition layouts.\nMachine: %d\nModel: %d", len(machine.Transitions), len(transitionLayouts)))
	}

	model, errs := decompile(machine, stateLayouts, transitionLayouts)
	if err := errs.err(); err != nil {
		return domain.MachineModel{}, domain.WrapError(domain.KindInvalidExportation, MsgCannotCreateModel, err)
	}
	return model, nil
}

func decompile(machine domain.Machine, stateLayouts []domain.StateLayout, transitionLayouts []domain.TransitionLayout) (domain.MachineModel, problems) {
	var errs problems
	model := domain.MachineModel{
		States:            make([]domain.StateModel, len(machine.States)),
		ExternalVariables: joinLines(machine.ExternalSignals),
		MachineVariables:  joinLines(machine.MachineSignals),
		Includes:          joinLines(machine.Includes),
		Transitions:       make([]domain.TransitionModel, len(machine.Transitions)),
		Clocks:            make([]domain.ClockModel, len(machine.Clocks)),
	}

	for i, s := range machine.States {
		if s.Name == "" {
			errs.addf("state %d has no name", i)
		}
		model.States[i] = domain.StateModel{
			Name:              string(s.Name),
			Variables:         joinLines(s.Signals),
			ExternalVariables: joinLines(s.ExternalVariables),
			Actions:           exportActions(machine.Actions, s),
			Layout:            stateLayouts[i],
		}
	}

	for i, t := range machine.Transitions {
		if !validIndex(t.Source, machine.States) || !validIndex(t.Target, machine.States) {
			errs.addf("transition %d references a missing state", i)
			continue
		}
		model.Transitions[i] = domain.TransitionModel{
			Source:    string(machine.States[t.Source].Name),
			Target:    string(machine.States[t.Target].Name),
			Condition: t.Condition.String(),
			Layout:    transitionLayouts[i],
		}
	}

	for i, c := range machine.Clocks {
		model.Clocks[i] = domain.ClockModel{Name: string(c.Name), Frequency: c.FrequencyText()}
	}

	if validIndex(machine.InitialState, machine.States) {
		model.InitialState = string(machine.States[machine.InitialState].Name)
	} else {
		errs.addf("initial state %d does not exist", machine.InitialState)
	}
	if machine.SuspendedState != nil {
		if validIndex(*machine.SuspendedState, machine.States) {
			name := string(machine.States[*machine.SuspendedState].Name)
			model.SuspendedState = &name
		} else {
			errs.addf("suspended state %d does not exist", *machine.SuspendedState)
		}
	}

	return model, errs
}

// exportActions lists the state's non-empty actions in machine order. Actions
// missing from the machine-wide list follow in name order.
func exportActions(order []vhdl.VariableName, state domain.State) []domain.ActionModel {
	actions := []domain.ActionModel{}
	emitted := make(map[string]bool)
	for _, name := range order {
		code, ok := state.Action(name)
		if !ok || emitted[name.Key()] {
			continue
		}
		emitted[name.Key()] = true
		if len(code) > 0 {
			actions = append(actions, domain.ActionModel{Name: string(name), Code: code.String()})
		}
	}

	var rest []vhdl.VariableName
	for name := range state.Actions {
		if !emitted[name.Key()] {
			rest = append(rest, name)
		}
	}
	sort.Slice(rest, func(i, j int) bool { return rest[i] < rest[j] })
	for _, name := range rest {
		if code := state.Actions[name]; len(code) > 0 {
			actions = append(actions, domain.ActionModel{Name: string(name), Code: code.String()})
		}
	}
	return actions
}

func joinLines[T fmt.Stringer](items []T) string {
	lines := make([]string, len(items))
	for i, item := range items {
		lines[i] = item.String()
	}
	return strings.Join(lines, "\n")
}

func validIndex[T any](i int, items []T) bool { return i >= 0 && i < len(items) }
