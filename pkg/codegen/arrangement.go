package codegen

import (
	"fmt"
	"strings"

	"github.com/llfsmgen/llfsmgen/pkg/domain"
	"github.com/llfsmgen/llfsmgen/pkg/vhdl"
)

// MachineFactory builds the representation of one machine of an arrangement.
type MachineFactory func(machine domain.Machine, name vhdl.VariableName) (*MachineRepresentation, error)

// MachineInstance is a compiled machine placed in an arrangement under Label.
type MachineInstance struct {
	Label   vhdl.VariableName // Key of the machine in the arrangement
	Entity  vhdl.VariableName // Entity name derived from the machine folder
	Machine domain.Machine
}

type instance struct {
	label          vhdl.VariableName
	representation *MachineRepresentation
}

// ArrangementRepresentation is an Arrangement whose machines have all been
// represented and whose port wiring has been checked.
type ArrangementRepresentation struct {
	Name        vhdl.VariableName
	Arrangement domain.Arrangement

	instances []instance
}

// NewArrangementRepresentation represents every machine through factory and
// checks that each machine port and clock is provided by the arrangement.
func NewArrangementRepresentation(a domain.Arrangement, name vhdl.VariableName, machines []MachineInstance, factory MachineFactory) (*ArrangementRepresentation, error) {
	names := newNameSet()
	names.reserve(string(name), "entity name")
	for _, c := range a.Clocks {
		if err := names.declare(string(c.Name), "clock"); err != nil {
			return nil, fmt.Errorf("arrangement %s: %w", name, err)
		}
	}
	for _, s := range a.ExternalSignals {
		if err := names.declare(string(s.Name), "external signal"); err != nil {
			return nil, fmt.Errorf("arrangement %s: %w", name, err)
		}
	}
	for _, s := range a.Signals {
		if err := names.declare(string(s.Name), "signal"); err != nil {
			return nil, fmt.Errorf("arrangement %s: %w", name, err)
		}
	}

	rep := &ArrangementRepresentation{Name: name, Arrangement: a}
	for _, m := range machines {
		if _, ok := a.Machines[m.Label]; !ok {
			return nil, fmt.Errorf("arrangement %s: machine %s is not part of the arrangement", name, m.Label)
		}
		if err := names.declare(instanceLabel(m.Label), "instance"); err != nil {
			return nil, fmt.Errorf("arrangement %s: %w", name, err)
		}
		mr, err := factory(m.Machine, m.Entity)
		if err != nil {
			return nil, fmt.Errorf("arrangement %s: machine %s: %w", name, m.Label, err)
		}
		if err := rep.checkWiring(mr); err != nil {
			return nil, fmt.Errorf("arrangement %s: machine %s: %w", name, m.Label, err)
		}
		rep.instances = append(rep.instances, instance{label: m.Label, representation: mr})
	}
	if len(rep.instances) != len(a.Machines) {
		return nil, fmt.Errorf("arrangement %s: expected %d machines, got %d", name, len(a.Machines), len(rep.instances))
	}
	return rep, nil
}

func (r *ArrangementRepresentation) checkWiring(mr *MachineRepresentation) error {
	for _, c := range mr.Machine.Clocks {
		if !r.hasClock(c.Name) {
			return fmt.Errorf("clock %s is not provided by the arrangement", c.Name)
		}
	}
	for _, port := range mr.Machine.ExternalSignals {
		typ, ok := r.signalType(port.Name)
		if !ok {
			return fmt.Errorf("port %s is not connected to an arrangement signal", port.Name)
		}
		if typ.String() != port.Type.String() {
			return fmt.Errorf("port %s has type %s but the arrangement signal has type %s", port.Name, port.Type, typ)
		}
	}
	return nil
}

func (r *ArrangementRepresentation) hasClock(name vhdl.VariableName) bool {
	for _, c := range r.Arrangement.Clocks {
		if c.Name.Equal(name) {
			return true
		}
	}
	return false
}

func (r *ArrangementRepresentation) signalType(name vhdl.VariableName) (vhdl.SignalType, bool) {
	for _, s := range r.Arrangement.ExternalSignals {
		if s.Name.Equal(name) {
			return s.Type, true
		}
	}
	for _, s := range r.Arrangement.Signals {
		if s.Name.Equal(name) {
			return s.Type, true
		}
	}
	return vhdl.SignalType{}, false
}

// FileName is the name of the generated top-level source file.
func (r *ArrangementRepresentation) FileName() string { return string(r.Name) + ".vhd" }

// File renders the top-level entity instantiating every machine.
func (r *ArrangementRepresentation) File() string {
	a := r.Arrangement
	var sb strings.Builder

	writeIncludes(&sb, nil)
	sb.WriteString("\n")

	ports := make([]string, 0, len(a.Clocks)+len(a.ExternalSignals))
	for _, c := range a.Clocks {
		ports = append(ports, fmt.Sprintf("%s: in std_logic", c.Name))
	}
	for _, s := range a.ExternalSignals {
		ports = append(ports, s.Port())
	}
	fmt.Fprintf(&sb, "entity %s is\n", r.Name)
	sb.WriteString(portClause(ports))
	fmt.Fprintf(&sb, "end %s;\n\n", r.Name)

	fmt.Fprintf(&sb, "architecture Behavioral of %s is\n", r.Name)
	for _, s := range a.Signals {
		sb.WriteString(vhdl.Indent(s.String(), 1) + "\n")
	}
	sb.WriteString("begin\n")
	for i, inst := range r.instances {
		if i > 0 {
			sb.WriteString("\n")
		}
		sb.WriteString(r.instantiation(inst))
	}
	sb.WriteString("end Behavioral;")
	return sb.String()
}

func (r *ArrangementRepresentation) instantiation(inst instance) string {
	m := inst.representation.Machine
	var assoc []string
	for _, c := range m.Clocks {
		assoc = append(assoc, fmt.Sprintf("%s => %s", c.Name, r.clockName(c.Name)))
	}
	for _, p := range m.ExternalSignals {
		assoc = append(assoc, fmt.Sprintf("%s => %s", p.Name, r.signalName(p.Name)))
	}
	if inst.representation.Suspensible() {
		assoc = append(assoc, "suspended => open")
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "    %s: entity work.%s port map (\n", instanceLabel(inst.label), inst.representation.Name)
	for i, a := range assoc {
		sb.WriteString("        " + a)
		if i < len(assoc)-1 {
			sb.WriteString(",")
		}
		sb.WriteString("\n")
	}
	sb.WriteString("    );\n")
	return sb.String()
}

func (r *ArrangementRepresentation) clockName(name vhdl.VariableName) vhdl.VariableName {
	for _, c := range r.Arrangement.Clocks {
		if c.Name.Equal(name) {
			return c.Name
		}
	}
	return name
}

func (r *ArrangementRepresentation) signalName(name vhdl.VariableName) vhdl.VariableName {
	for _, s := range r.Arrangement.ExternalSignals {
		if s.Name.Equal(name) {
			return s.Name
		}
	}
	for _, s := range r.Arrangement.Signals {
		if s.Name.Equal(name) {
			return s.Name
		}
	}
	return name
}

func instanceLabel(label vhdl.VariableName) string { return string(label) + "_inst" }
