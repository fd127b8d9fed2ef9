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

func TestDecompile_RoundTrip(t *testing.T) {
	fixtures := map[string]domain.MachineModel{
		"Machine0":    testutils.Machine0Model(),
		"PingMachine": testutils.PingMachineModel(),
		"PongMachine": testutils.PongMachineModel(),
	}

	for name, model := range fixtures {
		t.Run(name, func(t *testing.T) {
			machine, err := translate.Compile(model)
			require.NoError(t, err)

			exported, err := translate.Decompile(machine, model)
			require.NoError(t, err)
			assert.Equal(t, model, exported)
		})
	}
}

func TestDecompile_Canonicalises(t *testing.T) {
	model := testutils.Machine0Model()
	model.ExternalVariables = "x : IN std_logic ;\n\n y: OUT STD_LOGIC;"
	model.Transitions[0].Condition = "TRUE"

	machine, err := translate.Compile(model)
	require.NoError(t, err)

	exported, err := translate.Decompile(machine, model)
	require.NoError(t, err)
	assert.Equal(t, "x: in std_logic;\ny: out std_logic;", exported.ExternalVariables)
	assert.Equal(t, "true", exported.Transitions[0].Condition)
}

func TestDecompile_KeepsComments(t *testing.T) {
	model := testutils.Machine0Model()
	model.States[0].Actions[0].Code = "-- latch the input\nInitialX <= x and machineX; -- both high"
	model.ExternalVariables = "-- button\nx: in std_logic;\ny: out std_logic; -- led"
	model.MachineVariables = "signal machineX: std_logic; -- shadow of x"
	model.Includes = "-- standard logic\nlibrary IEEE;\nuse IEEE.std_logic_1164.all;\nuse IEEE.math_real.all;"

	machine, err := translate.Compile(model)
	require.NoError(t, err)

	exported, err := translate.Decompile(machine, model)
	require.NoError(t, err)
	assert.Equal(t, model, exported)
}

func TestDecompile_StateLayoutMismatch(t *testing.T) {
	model := testutils.Machine0Model()
	machine, err := translate.Compile(model)
	require.NoError(t, err)

	model.States = model.States[:1]
	_, err = translate.Decompile(machine, model)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidLayout)
	assert.Equal(t, "Found incorrect number of state layouts.\nMachine: 2\nModel: 1", err.Error())
}

func TestDecompile_TransitionLayoutMismatch(t *testing.T) {
	model := testutils.Machine0Model()
	machine, err := translate.Compile(model)
	require.NoError(t, err)

	model.Transitions = nil
	_, err = translate.Decompile(machine, model)

	assert.ErrorIs(t, err, domain.ErrInvalidLayout)
	assert.Equal(t, "Found incorrect number of transition layouts.\nMachine: 1\nModel: 0", err.Error())
}

func TestDecompile_InvalidMachine(t *testing.T) {
	model := testutils.Machine0Model()
	machine, err := translate.Compile(model)
	require.NoError(t, err)

	machine.Transitions[0].Target = 7
	_, err = translate.Decompile(machine, model)

	assert.ErrorIs(t, err, domain.ErrInvalidExportation)
	assert.Contains(t, err.Error(), translate.MsgCannotCreateModel)
}

func TestDecompile_ActionsOutsideMachineOrder(t *testing.T) {
	model := testutils.Machine0Model()
	machine, err := translate.Compile(model)
	require.NoError(t, err)

	code, err := vhdl.ParseStatements("null;")
	require.NoError(t, err)
	machine.States[1].Actions["Internal"] = code

	exported, err := translate.Decompile(machine, model)
	require.NoError(t, err)
	assert.Equal(t, []domain.ActionModel{{Name: "Internal", Code: "null;"}}, exported.States[1].Actions)
}
