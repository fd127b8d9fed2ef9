package domain

import (
	"sort"

	"github.com/llfsmgen/llfsmgen/pkg/vhdl"
)

// MachineReference points an arrangement at a machine folder. Relative paths
// are resolved against the arrangement folder.
type MachineReference struct {
	Name string `json:"name"`
	Path string `json:"path"`
}

// ArrangementModel is the editor-facing form of an arrangement, persisted as
// model.json inside a .arrangement folder.
type ArrangementModel struct {
	ExternalVariables string             `json:"externalVariables"`
	GlobalVariables   string             `json:"globalVariables"`
	Clocks            []ClockModel       `json:"clocks"`
	Machines          []MachineReference `json:"machines"`
}

// Arrangement is the canonical form of a set of machines sharing signals and
// clocks, persisted as arrangement.json.
type Arrangement struct {
	Machines        map[vhdl.VariableName]string `json:"machines"`
	ExternalSignals []vhdl.PortSignal            `json:"externalSignals"`
	Signals         []vhdl.LocalSignal           `json:"signals"`
	Clocks          []vhdl.Clock                 `json:"clocks"`
}

// MachineNames returns the machine names in a deterministic order.
func (a Arrangement) MachineNames() []vhdl.VariableName {
	names := make([]vhdl.VariableName, 0, len(a.Machines))
	for name := range a.Machines {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool { return names[i] < names[j] })
	return names
}
