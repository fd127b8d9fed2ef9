package codegen

import (
	"fmt"
	"math/bits"
	"strings"

	"github.com/llfsmgen/llfsmgen/pkg/domain"
	"github.com/llfsmgen/llfsmgen/pkg/vhdl"
)

// Action names understood by the generated ringlet.
const (
	ActionOnEntry  vhdl.VariableName = "OnEntry"
	ActionOnExit   vhdl.VariableName = "OnExit"
	ActionInternal vhdl.VariableName = "Internal"
)

// Internal states of the ringlet, in encoding order.
var ringletStates = []string{"ReadSnapshot", "OnEntry", "CheckTransition", "Internal", "OnExit", "WriteSnapshot"}

// Names declared by the generated architecture itself.
var generatedNames = []string{"internalState", "currentState", "targetState", "previousRinglet", "suspended"}

// MachineRepresentation is a Machine that has been checked for VHDL
// generation under a given entity name.
type MachineRepresentation struct {
	Name    vhdl.VariableName
	Machine domain.Machine

	stateBits int
}

// NewMachineRepresentation validates machine for generation as entity name.
func NewMachineRepresentation(machine domain.Machine, name vhdl.VariableName) (*MachineRepresentation, error) {
	if len(machine.States) == 0 {
		return nil, fmt.Errorf("machine %s has no states", name)
	}
	if machine.DrivingClock < 0 || machine.DrivingClock >= len(machine.Clocks) {
		return nil, fmt.Errorf("machine %s: driving clock %d does not exist", name, machine.DrivingClock)
	}
	if machine.InitialState < 0 || machine.InitialState >= len(machine.States) {
		return nil, fmt.Errorf("machine %s: initial state %d does not exist", name, machine.InitialState)
	}
	if s := machine.SuspendedState; s != nil && (*s < 0 || *s >= len(machine.States)) {
		return nil, fmt.Errorf("machine %s: suspended state %d does not exist", name, *s)
	}
	for i, t := range machine.Transitions {
		if t.Source < 0 || t.Source >= len(machine.States) || t.Target < 0 || t.Target >= len(machine.States) {
			return nil, fmt.Errorf("machine %s: transition %d references a missing state", name, i)
		}
		if t.Condition.Expr == nil {
			return nil, fmt.Errorf("machine %s: transition %d has no condition", name, i)
		}
	}
	for _, a := range machine.Actions {
		if !a.Equal(ActionOnEntry) && !a.Equal(ActionOnExit) && !a.Equal(ActionInternal) {
			return nil, fmt.Errorf("machine %s: unsupported action %s", name, a)
		}
	}

	names := newNameSet()
	names.reserve(string(name), "entity name")
	for _, n := range ringletStates {
		names.reserve(n, "ringlet state")
	}
	for _, n := range generatedNames {
		names.reserve(n, "generated signal")
	}
	for _, s := range machine.States {
		names.reserve(stateConstant(s.Name), "state constant")
		for a := range s.Actions {
			if !a.Equal(ActionOnEntry) && !a.Equal(ActionOnExit) && !a.Equal(ActionInternal) {
				return nil, fmt.Errorf("machine %s: state %s: unsupported action %s", name, s.Name, a)
			}
		}
	}
	for _, c := range machine.Clocks {
		if err := names.declare(string(c.Name), "clock"); err != nil {
			return nil, fmt.Errorf("machine %s: %w", name, err)
		}
	}
	for _, s := range machine.ExternalSignals {
		if err := names.declare(string(s.Name), "external signal"); err != nil {
			return nil, fmt.Errorf("machine %s: %w", name, err)
		}
	}
	for _, s := range machine.MachineSignals {
		if err := names.declare(string(s.Name), "machine signal"); err != nil {
			return nil, fmt.Errorf("machine %s: %w", name, err)
		}
	}
	for _, st := range machine.States {
		for _, s := range st.Signals {
			if err := names.declare(string(s.Name), "signal of state "+string(st.Name)); err != nil {
				return nil, fmt.Errorf("machine %s: %w", name, err)
			}
		}
	}

	return &MachineRepresentation{
		Name:      name,
		Machine:   machine,
		stateBits: max(1, bits.Len(uint(len(machine.States)-1))),
	}, nil
}

// FileName is the name of the generated source file.
func (r *MachineRepresentation) FileName() string { return string(r.Name) + ".vhd" }

// Suspensible reports whether the entity exposes a suspended output.
func (r *MachineRepresentation) Suspensible() bool { return r.Machine.SuspendedState != nil }

// File renders the VHDL source of the machine.
func (r *MachineRepresentation) File() string {
	m := r.Machine
	var sb strings.Builder

	writeIncludes(&sb, m.Includes)
	sb.WriteString("\n")

	fmt.Fprintf(&sb, "entity %s is\n", r.Name)
	sb.WriteString(portClause(r.ports()))
	fmt.Fprintf(&sb, "end %s;\n\n", r.Name)

	fmt.Fprintf(&sb, "architecture Behavioral of %s is\n", r.Name)
	sb.WriteString("    -- Internal States\n")
	for i, s := range ringletStates {
		fmt.Fprintf(&sb, "    constant %s: std_logic_vector(2 downto 0) := \"%s\";\n", s, binary(i, 3))
	}
	sb.WriteString("    signal internalState: std_logic_vector(2 downto 0) := ReadSnapshot;\n")

	sb.WriteString("    -- State Representation Bits\n")
	stateType := fmt.Sprintf("std_logic_vector(%d downto 0)", r.stateBits-1)
	for i, s := range m.States {
		fmt.Fprintf(&sb, "    constant %s: %s := \"%s\";\n", stateConstant(s.Name), stateType, binary(i, r.stateBits))
	}
	initial := stateConstant(m.States[m.InitialState].Name)
	fmt.Fprintf(&sb, "    signal currentState: %s := %s;\n", stateType, initial)
	fmt.Fprintf(&sb, "    signal targetState: %s := %s;\n", stateType, initial)
	fmt.Fprintf(&sb, "    signal previousRinglet: %s := \"%s\";\n", stateType, strings.Repeat("Z", r.stateBits))

	if len(m.MachineSignals) > 0 {
		sb.WriteString("    -- Machine Signals\n")
		for _, s := range m.MachineSignals {
			sb.WriteString(vhdl.Indent(s.String(), 1) + "\n")
		}
	}
	var stateSignals []vhdl.LocalSignal
	for _, st := range m.States {
		stateSignals = append(stateSignals, st.Signals...)
	}
	if len(stateSignals) > 0 {
		sb.WriteString("    -- State Signals\n")
		for _, s := range stateSignals {
			sb.WriteString(vhdl.Indent(s.String(), 1) + "\n")
		}
	}

	sb.WriteString("begin\n")
	if r.Suspensible() {
		fmt.Fprintf(&sb, "    suspended <= '1' when currentState = %s else '0';\n", stateConstant(m.States[*m.SuspendedState].Name))
	}
	fmt.Fprintf(&sb, "    process (%s)\n", m.Clocks[m.DrivingClock].Name)
	sb.WriteString("    begin\n")
	fmt.Fprintf(&sb, "        if (rising_edge(%s)) then\n", m.Clocks[m.DrivingClock].Name)
	sb.WriteString(vhdl.Indent(r.ringlet(), 3))
	sb.WriteString("\n        end if;\n")
	sb.WriteString("    end process;\n")
	sb.WriteString("end Behavioral;")
	return sb.String()
}

func (r *MachineRepresentation) ports() []string {
	m := r.Machine
	ports := make([]string, 0, len(m.Clocks)+len(m.ExternalSignals)+1)
	for _, c := range m.Clocks {
		ports = append(ports, fmt.Sprintf("%s: in std_logic", c.Name))
	}
	for _, s := range m.ExternalSignals {
		ports = append(ports, s.Port())
	}
	if r.Suspensible() {
		ports = append(ports, "suspended: out std_logic")
	}
	return ports
}

func (r *MachineRepresentation) ringlet() string {
	var sb strings.Builder
	sb.WriteString("case internalState is\n")

	sb.WriteString("    when ReadSnapshot =>\n")
	sb.WriteString("        if (previousRinglet /= currentState) then\n")
	sb.WriteString("            internalState <= OnEntry;\n")
	sb.WriteString("        else\n")
	sb.WriteString("            internalState <= CheckTransition;\n")
	sb.WriteString("        end if;\n")

	sb.WriteString("    when OnEntry =>\n")
	sb.WriteString(vhdl.Indent(r.actionCase(ActionOnEntry), 2) + "\n")
	sb.WriteString("        internalState <= CheckTransition;\n")

	sb.WriteString("    when CheckTransition =>\n")
	sb.WriteString(vhdl.Indent(r.transitionCase(), 2) + "\n")

	sb.WriteString("    when Internal =>\n")
	sb.WriteString(vhdl.Indent(r.actionCase(ActionInternal), 2) + "\n")
	sb.WriteString("        internalState <= WriteSnapshot;\n")

	sb.WriteString("    when OnExit =>\n")
	sb.WriteString(vhdl.Indent(r.actionCase(ActionOnExit), 2) + "\n")
	sb.WriteString("        internalState <= WriteSnapshot;\n")

	sb.WriteString("    when WriteSnapshot =>\n")
	sb.WriteString("        previousRinglet <= currentState;\n")
	sb.WriteString("        currentState <= targetState;\n")
	sb.WriteString("        internalState <= ReadSnapshot;\n")

	sb.WriteString("    when others =>\n")
	sb.WriteString("        null;\n")
	sb.WriteString("end case;")
	return sb.String()
}

func (r *MachineRepresentation) actionCase(action vhdl.VariableName) string {
	var sb strings.Builder
	sb.WriteString("case currentState is\n")
	for _, st := range r.Machine.States {
		code, ok := st.Action(action)
		if !ok || len(code) == 0 {
			continue
		}
		fmt.Fprintf(&sb, "    when %s =>\n", stateConstant(st.Name))
		sb.WriteString(vhdl.Indent(code.String(), 2) + "\n")
	}
	sb.WriteString("    when others =>\n")
	sb.WriteString("        null;\n")
	sb.WriteString("end case;")
	return sb.String()
}

func (r *MachineRepresentation) transitionCase() string {
	var sb strings.Builder
	sb.WriteString("case currentState is\n")
	for i, st := range r.Machine.States {
		transitions := r.Machine.TransitionsFrom(i)
		if len(transitions) == 0 {
			continue
		}
		fmt.Fprintf(&sb, "    when %s =>\n", stateConstant(st.Name))
		for j, t := range transitions {
			keyword := "if"
			if j > 0 {
				keyword = "elsif"
			}
			fmt.Fprintf(&sb, "        %s %s then\n", keyword, guard(t.Condition))
			fmt.Fprintf(&sb, "            targetState <= %s;\n", stateConstant(r.Machine.States[t.Target].Name))
			sb.WriteString("            internalState <= OnExit;\n")
		}
		sb.WriteString("        else\n")
		sb.WriteString("            internalState <= Internal;\n")
		sb.WriteString("        end if;\n")
	}
	sb.WriteString("    when others =>\n")
	sb.WriteString("        internalState <= Internal;\n")
	sb.WriteString("end case;")
	return sb.String()
}

func guard(c vhdl.Condition) string {
	if _, ok := c.Expr.(vhdl.Paren); ok {
		return c.String()
	}
	return "(" + c.String() + ")"
}

func stateConstant(name vhdl.VariableName) string { return "STATE_" + string(name) }

func binary(value, width int) string {
	return fmt.Sprintf("%0*b", width, value)
}

func writeIncludes(sb *strings.Builder, includes []vhdl.Include) {
	if len(includes) == 0 {
		sb.WriteString("library IEEE;\nuse IEEE.std_logic_1164.all;\n")
		return
	}
	for _, inc := range includes {
		sb.WriteString(inc.String() + "\n")
	}
}

func portClause(ports []string) string {
	if len(ports) == 0 {
		return ""
	}
	var sb strings.Builder
	sb.WriteString("    port(\n")
	for i, p := range ports {
		sb.WriteString(vhdl.Indent(p, 2))
		if i < len(ports)-1 {
			sb.WriteString(";")
		}
		sb.WriteString("\n")
	}
	sb.WriteString("    );\n")
	return sb.String()
}

// nameSet tracks VHDL names case-insensitively.
type nameSet map[string]string

func newNameSet() nameSet { return nameSet{} }

func (n nameSet) reserve(name, what string) { n[strings.ToLower(name)] = what + " " + name }

func (n nameSet) declare(name, what string) error {
	if prev, ok := n[strings.ToLower(name)]; ok {
		return fmt.Errorf("%s %s collides with %s", what, name, prev)
	}
	n[strings.ToLower(name)] = what + " " + name
	return nil
}
