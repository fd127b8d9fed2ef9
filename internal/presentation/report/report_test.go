package report_test

import (
	"strings"
	"testing"

	"github.com/llfsmgen/llfsmgen/internal/presentation/report"
	"github.com/llfsmgen/llfsmgen/internal/testutils"
	"github.com/llfsmgen/llfsmgen/pkg/domain"
	"github.com/stretchr/testify/assert"
)

// pingMachineLines is the report of PingMachine. The blank line between the
// WaitForPong actions keeps its indentation.
var pingMachineLines = []string{
	"- PingMachine.machine:",
	"    - External Variables:",
	"        ping: out std_logic;",
	"        pong: in std_logic;",
	"    - Machine Variables:",
	"    - Clocks:",
	"        - clk 5 MHz",
	"    - States:",
	"        - Initial:",
	"            - External Variables:",
	"            - State Variables:",
	"            - Actions:",
	"            - Transitions:",
	"                - 0: true",
	"        - SendPing:",
	"            - External Variables:",
	"                ping",
	"            - State Variables:",
	"            - Actions:",
	"                - OnExit:",
	"                    ping <= '1';",
	"            - Transitions:",
	"                - 0: true",
	"        - WaitForPong:",
	"            - External Variables:",
	"                ping",
	"                pong",
	"            - State Variables:",
	"            - Actions:",
	"                - Internal:",
	"                    ping <= '0';",
	"                ",
	"                - OnEntry:",
	"                    ping <= '0';",
	"            - Transitions:",
	"                - 0: pong = '1'",
	"    - Initial State:",
	"        Initial",
	"    - Suspended State:",
	"    - Includes:",
	"        library IEEE;",
	"        use IEEE.std_logic_1164.all;",
}

func shift(lines []string) []string {
	out := make([]string, len(lines))
	for i, line := range lines {
		out[i] = "    " + line
	}
	return out
}

func TestCategory(t *testing.T) {
	assert.Equal(t, "- Data:\n    This is\n    some data!", report.Category("Data", "This is\nsome data!"))
	assert.Equal(t, "- Data:", report.Category("Data", ""))
	assert.Equal(t, "- Data:", report.Category("Data", " \n\t"))
	assert.Equal(t, "- Data:\n    a\n    \n    b", report.Category("Data", "a\n\nb"))
}

func TestMachine(t *testing.T) {
	got := report.Machine(testutils.PingMachineModel(), "PingMachine.machine")
	assert.Equal(t, strings.Join(pingMachineLines, "\n"), got)
}

func TestMachine_SuspendedState(t *testing.T) {
	got := report.Machine(testutils.PongMachineModel(), "PongMachine.machine")
	assert.Contains(t, got, "    - Suspended State:\n        WaitForPing\n")
	assert.Contains(t, got, "        - SendPong:\n")
}

func TestKripkeStructure(t *testing.T) {
	structure := domain.KripkeStructure{
		Nodes: []domain.KripkeNode{{ID: "0"}, {ID: "1"}, {ID: "2"}},
		Edges: map[string][]domain.KripkeEdge{
			"0": {{Target: "1"}, {Target: "2"}},
			"1": {{Target: "2"}},
		},
	}
	assert.Equal(t, "- Kripke Structure:\n    - Nodes: 3\n    - Edges: 3", report.KripkeStructure(structure))
}

func TestDocument(t *testing.T) {
	model := testutils.PingMachineModel()
	machine := append([]string{"- Machine:"}, shift(pingMachineLines)...)

	t.Run("Without Kripke Structure", func(t *testing.T) {
		got := report.Document("PingMachine.machine", model, nil)
		assert.Equal(t, strings.Join(machine, "\n")+"\n", got)
	})

	t.Run("With Kripke Structure", func(t *testing.T) {
		structure := &domain.KripkeStructure{
			Nodes: []domain.KripkeNode{{ID: "0"}},
			Edges: map[string][]domain.KripkeEdge{"0": {{Target: "0"}}},
		}
		lines := append(machine,
			"- Kripke Structure:",
			"    - Kripke Structure:",
			"        - Nodes: 1",
			"        - Edges: 1",
		)
		got := report.Document("PingMachine.machine", model, structure)
		assert.Equal(t, strings.Join(lines, "\n")+"\n", got)
	})
}
