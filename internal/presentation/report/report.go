// Package report renders the human-readable summary of a machine printed by
// the report command.
//
// The output is YAML-like: every section is a "- <name>:" heading followed by
// its data indented by four spaces.
package report

import (
	"fmt"
	"strings"

	"github.com/llfsmgen/llfsmgen/pkg/domain"
)

const indent = "    "

// Category renders a single section. Blank data renders the heading alone.
func Category(name, data string) string {
	if strings.TrimSpace(data) == "" {
		return fmt.Sprintf("- %s:", name)
	}
	return fmt.Sprintf("- %s:\n%s", name, indentLines(data))
}

// indentLines prefixes every line, including empty ones.
func indentLines(text string) string {
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = indent + line
	}
	return strings.Join(lines, "\n")
}

// Machine renders the design of a machine under the heading name.
func Machine(model domain.MachineModel, name string) string {
	states := make([]string, len(model.States))
	for i, state := range model.States {
		states[i] = State(model, state)
	}

	clocks := make([]string, len(model.Clocks))
	for i, clock := range model.Clocks {
		clocks[i] = fmt.Sprintf("- %s %s", clock.Name, clock.Frequency)
	}

	suspended := ""
	if model.SuspendedState != nil {
		suspended = *model.SuspendedState
	}

	sections := []string{
		Category("External Variables", model.ExternalVariables),
		Category("Machine Variables", model.MachineVariables),
		Category("Clocks", strings.Join(clocks, "\n")),
		Category("States", strings.Join(states, "\n")),
		Category("Initial State", model.InitialState),
		Category("Suspended State", suspended),
		Category("Includes", model.Includes),
	}
	return Category(name, strings.Join(sections, "\n"))
}

// State renders one state together with the transitions leaving it. The
// transition indices are the priorities within the state.
func State(model domain.MachineModel, state domain.StateModel) string {
	var actions []string
	for _, action := range state.Actions {
		if strings.TrimSpace(action.Code) == "" {
			continue
		}
		actions = append(actions, fmt.Sprintf("- %s:\n%s", action.Name, indentLines(action.Code)))
	}

	var transitions []string
	for _, t := range model.Transitions {
		if t.Source != state.Name {
			continue
		}
		transitions = append(transitions, fmt.Sprintf("- %d: %s", len(transitions), t.Condition))
	}

	sections := []string{
		Category("External Variables", state.ExternalVariables),
		Category("State Variables", state.Variables),
		Category("Actions", strings.Join(actions, "\n\n")),
		Category("Transitions", strings.Join(transitions, "\n")),
	}
	return Category(state.Name, strings.Join(sections, "\n"))
}

// KripkeStructure renders the node and edge counts of a state space.
func KripkeStructure(structure domain.KripkeStructure) string {
	data := fmt.Sprintf("- Nodes: %d\n- Edges: %d", len(structure.Nodes), structure.EdgeCount())
	return Category("Kripke Structure", data)
}

// Document renders the complete report for the machine folder name. The
// structure is optional.
func Document(name string, model domain.MachineModel, structure *domain.KripkeStructure) string {
	machine := Category("Machine", Machine(model, name))
	if structure == nil {
		return machine + "\n"
	}
	return machine + "\n" + Category("Kripke Structure", KripkeStructure(*structure)) + "\n"
}
