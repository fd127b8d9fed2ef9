package codegen_test

import (
	"errors"
	"testing"

	"github.com/llfsmgen/llfsmgen/internal/testutils"
	"github.com/llfsmgen/llfsmgen/pkg/arrangement"
	"github.com/llfsmgen/llfsmgen/pkg/codegen"
	"github.com/llfsmgen/llfsmgen/pkg/domain"
	"github.com/llfsmgen/llfsmgen/pkg/vhdl"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pingPong(t *testing.T) (domain.Arrangement, []codegen.MachineInstance) {
	t.Helper()
	a, ok := arrangement.Assemble(testutils.PingPongArrangementModel(), "/work/PingPong.arrangement")
	require.True(t, ok)
	return a, []codegen.MachineInstance{
		{Label: "PingMachine", Entity: "PingMachine", Machine: compile(t, testutils.PingMachineModel())},
		{Label: "PongMachine", Entity: "PongMachine", Machine: compile(t, testutils.PongMachineModel())},
	}
}

func TestArrangementRepresentation_File(t *testing.T) {
	a, machines := pingPong(t)

	rep, err := codegen.NewArrangementRepresentation(a, "PingPong", machines, codegen.NewMachineRepresentation)
	require.NoError(t, err)
	assert.Equal(t, "PingPong.vhd", rep.FileName())

	file := rep.File()
	assert.Contains(t, file, "entity PingPong is\n"+line(4, "port(")+line(8, "clk: in std_logic")+line(4, ");")+"end PingPong;\n")
	assert.Contains(t, file, line(4, "signal ping: std_logic;")+line(4, "signal pong: std_logic;")+"begin\n")
	assert.Contains(t, file, line(4, "PingMachine_inst: entity work.PingMachine port map (")+
		line(8, "clk => clk,")+
		line(8, "ping => ping,")+
		line(8, "pong => pong")+
		line(4, ");"))
	assert.Contains(t, file, line(8, "pong => pong,")+line(8, "suspended => open")+line(4, ");"))
	assert.Contains(t, file, "end Behavioral;")
}

func TestArrangementRepresentation_Rejects(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(a *domain.Arrangement, machines []codegen.MachineInstance)
	}{
		{"Unconnected Port", func(a *domain.Arrangement, _ []codegen.MachineInstance) {
			a.Signals = a.Signals[:1]
		}},
		{"Type Mismatch", func(a *domain.Arrangement, _ []codegen.MachineInstance) {
			a.Signals[0].Type = vhdl.SignalType{Name: "bit"}
		}},
		{"Missing Clock", func(a *domain.Arrangement, _ []codegen.MachineInstance) {
			a.Clocks[0].Name = "other"
		}},
		{"Unknown Label", func(_ *domain.Arrangement, machines []codegen.MachineInstance) {
			machines[0].Label = "Stranger"
		}},
		{"Signal Collides With Clock", func(a *domain.Arrangement, _ []codegen.MachineInstance) {
			a.Signals = append(a.Signals, vhdl.LocalSignal{Name: "CLK", Type: vhdl.SignalType{Name: "std_logic"}})
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, machines := pingPong(t)
			tt.mutate(&a, machines)

			_, err := codegen.NewArrangementRepresentation(a, "PingPong", machines, codegen.NewMachineRepresentation)
			assert.Error(t, err)
		})
	}
}

func TestArrangementRepresentation_MissingMachine(t *testing.T) {
	a, machines := pingPong(t)

	_, err := codegen.NewArrangementRepresentation(a, "PingPong", machines[:1], codegen.NewMachineRepresentation)
	assert.Error(t, err)
}

func TestArrangementRepresentation_FactoryError(t *testing.T) {
	a, machines := pingPong(t)
	boom := errors.New("boom")

	_, err := codegen.NewArrangementRepresentation(a, "PingPong", machines,
		func(domain.Machine, vhdl.VariableName) (*codegen.MachineRepresentation, error) { return nil, boom })
	assert.ErrorIs(t, err, boom)
}
