// Package arrangement assembles the canonical Arrangement from its editor
// model.
package arrangement

import (
	"path/filepath"
	"strings"

	"github.com/llfsmgen/llfsmgen/pkg/domain"
	"github.com/llfsmgen/llfsmgen/pkg/vhdl"
)

// Assemble validates model and resolves its machine paths against base, the
// arrangement folder. Every part is checked before anything is committed; the
// Arrangement is returned only when all parts are valid.
//
// Invalid or duplicate machine names are caught by comparing the size of the
// name map against the number of references.
func Assemble(model domain.ArrangementModel, base string) (domain.Arrangement, bool) {
	machines := make(map[vhdl.VariableName]string, len(model.Machines))
	for _, ref := range model.Machines {
		name, err := vhdl.ParseVariableName(strings.TrimSpace(ref.Name))
		if err != nil {
			continue
		}
		machines[name] = resolve(base, ref.Path)
	}
	machinesOK := len(machines) == len(model.Machines) && uniqueKeys(machines)

	externals, externalsOK := parseAll(model.ExternalVariables, parsePortSignal)
	signals, signalsOK := parseAll(model.GlobalVariables, parseLocalSignal)

	clocks := make([]vhdl.Clock, 0, len(model.Clocks))
	clocksOK := true
	for _, c := range model.Clocks {
		clock, err := vhdl.ParseClock(c.Name, c.Frequency)
		if err != nil {
			clocksOK = false
			continue
		}
		clocks = append(clocks, clock)
	}

	if !machinesOK || !externalsOK || !signalsOK || !clocksOK {
		return domain.Arrangement{}, false
	}
	return domain.Arrangement{
		Machines:        machines,
		ExternalSignals: externals,
		Signals:         signals,
		Clocks:          clocks,
	}, true
}

// Disassemble projects an Arrangement back to its model. Machines are listed
// in name order.
func Disassemble(a domain.Arrangement) domain.ArrangementModel {
	model := domain.ArrangementModel{
		ExternalVariables: joinLines(a.ExternalSignals),
		GlobalVariables:   joinLines(a.Signals),
		Clocks:            make([]domain.ClockModel, len(a.Clocks)),
		Machines:          make([]domain.MachineReference, 0, len(a.Machines)),
	}
	for i, c := range a.Clocks {
		model.Clocks[i] = domain.ClockModel{Name: string(c.Name), Frequency: c.FrequencyText()}
	}
	for _, name := range a.MachineNames() {
		model.Machines = append(model.Machines, domain.MachineReference{Name: string(name), Path: a.Machines[name]})
	}
	return model
}

func resolve(base, path string) string {
	if filepath.IsAbs(path) {
		return filepath.Clean(path)
	}
	return filepath.Join(base, path)
}

// uniqueKeys rejects names that differ only in case.
func uniqueKeys(machines map[vhdl.VariableName]string) bool {
	seen := make(map[string]bool, len(machines))
	for name := range machines {
		if seen[name.Key()] {
			return false
		}
		seen[name.Key()] = true
	}
	return true
}

// parseAll splits text into declarations and parses each one. A text that
// cannot be split, or any declaration that fails to parse, clears ok.
func parseAll[T any](text string, parse func(vhdl.Declaration) (T, error)) ([]T, bool) {
	decls, err := vhdl.SplitDeclarations(text)
	if err != nil {
		return nil, false
	}
	out := []T{}
	ok := true
	for _, decl := range decls {
		v, err := parse(decl)
		if err != nil {
			ok = false
			continue
		}
		out = append(out, v)
	}
	return out, ok
}

func parsePortSignal(decl vhdl.Declaration) (vhdl.PortSignal, error) {
	signal, err := vhdl.ParsePortSignal(decl.Text)
	if err != nil {
		return vhdl.PortSignal{}, err
	}
	signal.Trivia = decl.Trivia
	return signal, nil
}

func parseLocalSignal(decl vhdl.Declaration) (vhdl.LocalSignal, error) {
	signals, err := vhdl.ParseLocalSignals(decl.Text)
	if err != nil {
		return vhdl.LocalSignal{}, err
	}
	if len(signals) != 1 {
		return vhdl.LocalSignal{}, &vhdl.SyntaxError{Input: decl.Text, Reason: "expected a single signal"}
	}
	signal := signals[0]
	signal.Trivia = decl.Trivia
	return signal, nil
}

func joinLines[T interface{ String() string }](items []T) string {
	lines := make([]string, len(items))
	for i, item := range items {
		lines[i] = item.String()
	}
	return strings.Join(lines, "\n")
}

// MachineNames returns the machine references in declared order, as
// identifiers. References with invalid names are skipped.
func MachineNames(model domain.ArrangementModel) []vhdl.VariableName {
	names := make([]vhdl.VariableName, 0, len(model.Machines))
	for _, ref := range model.Machines {
		if name, err := vhdl.ParseVariableName(strings.TrimSpace(ref.Name)); err == nil {
			names = append(names, name)
		}
	}
	return names
}
