package translate_test

import (
	"testing"

	"github.com/llfsmgen/llfsmgen/internal/testutils"
	"github.com/llfsmgen/llfsmgen/pkg/domain"
	"github.com/llfsmgen/llfsmgen/pkg/translate"
	"github.com/llfsmgen/llfsmgen/pkg/vhdl"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompile_Machine0(t *testing.T) {
	machine, err := translate.Compile(testutils.Machine0Model())
	require.NoError(t, err)

	require.Len(t, machine.States, 2)
	assert.Equal(t, vhdl.VariableName("Initial"), machine.States[0].Name)
	assert.Equal(t, []vhdl.VariableName{"OnEntry", "OnExit"}, machine.Actions)
	assert.Equal(t, []vhdl.VariableName{"x", "y"}, machine.States[0].ExternalVariables)
	assert.Len(t, machine.States[0].Signals, 1)
	assert.Empty(t, machine.States[1].Actions)

	require.Len(t, machine.Transitions, 1)
	assert.Equal(t, 0, machine.Transitions[0].Source)
	assert.Equal(t, 1, machine.Transitions[0].Target)
	assert.Equal(t, "true", machine.Transitions[0].Condition.String())

	require.Len(t, machine.Clocks, 1)
	assert.Equal(t, uint64(50_000_000), machine.Clocks[0].Hertz())
	assert.Equal(t, 0, machine.DrivingClock)
	assert.Equal(t, 0, machine.InitialState)
	assert.Nil(t, machine.SuspendedState)
	assert.Len(t, machine.Includes, 3)
}

func TestCompile_SuspendedState(t *testing.T) {
	machine, err := translate.Compile(testutils.PongMachineModel())
	require.NoError(t, err)
	require.NotNil(t, machine.SuspendedState)
	assert.Equal(t, 0, *machine.SuspendedState)
}

func TestCompile_ActionOrderFollowsFirstAppearance(t *testing.T) {
	machine, err := translate.Compile(testutils.PingMachineModel())
	require.NoError(t, err)
	assert.Equal(t, []vhdl.VariableName{"OnExit", "Internal", "OnEntry"}, machine.Actions)
}

func TestCompile_Rejects(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(m *domain.MachineModel)
	}{
		{"Unknown Initial State", func(m *domain.MachineModel) { m.InitialState = "Nowhere" }},
		{"Unknown Suspended State", func(m *domain.MachineModel) { s := "Nowhere"; m.SuspendedState = &s }},
		{"Unknown Transition Target", func(m *domain.MachineModel) { m.Transitions[0].Target = "Nowhere" }},
		{"Bad Condition", func(m *domain.MachineModel) { m.Transitions[0].Condition = "x and" }},
		{"Empty Condition", func(m *domain.MachineModel) { m.Transitions[0].Condition = "" }},
		{"Bad Action Code", func(m *domain.MachineModel) { m.States[0].Actions[0].Code = "InitialX <= ;" }},
		{"Bad External Declaration", func(m *domain.MachineModel) { m.ExternalVariables = "x: sideways std_logic;" }},
		{"Undeclared State External", func(m *domain.MachineModel) { m.States[0].ExternalVariables = "z" }},
		{"Duplicate State", func(m *domain.MachineModel) { m.States[1].Name = "initial" }},
		{"Invalid State Name", func(m *domain.MachineModel) { m.States[1].Name = "end" }},
		{"Duplicate Action", func(m *domain.MachineModel) { m.States[0].Actions[1].Name = "OnEntry" }},
		{"Signal Collision", func(m *domain.MachineModel) { m.MachineVariables = "signal X: std_logic;" }},
		{"State Signal Shadows Machine Signal", func(m *domain.MachineModel) { m.States[0].Variables = "signal machineX: std_logic;" }},
		{"No Clocks", func(m *domain.MachineModel) { m.Clocks = nil }},
		{"Bad Clock", func(m *domain.MachineModel) { m.Clocks[0].Frequency = "fast" }},
		{"Bad Include", func(m *domain.MachineModel) { m.Includes = "import IEEE;" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			model := testutils.Machine0Model()
			tt.mutate(&model)

			_, err := translate.Compile(model)
			require.Error(t, err)
			assert.ErrorIs(t, err, domain.ErrInvalidGeneration)
			assert.Contains(t, err.Error(), translate.MsgCannotCreateMachine)

			var structureErr *translate.StructureError
			assert.ErrorAs(t, err, &structureErr)
		})
	}
}

func TestCompile_CollectsAllProblems(t *testing.T) {
	model := testutils.Machine0Model()
	model.Includes = "import IEEE;"
	model.Clocks[0].Frequency = "fast"

	_, err := translate.Compile(model)

	var structureErr *translate.StructureError
	require.ErrorAs(t, err, &structureErr)
	assert.Len(t, structureErr.Problems, 2)
	assert.Contains(t, err.Error(), "2 problems:")
}
