package tests

import (
	"path/filepath"
	"testing"

	"github.com/llfsmgen/llfsmgen/internal/testutils"
	"github.com/llfsmgen/llfsmgen/pkg/arrangement"
	"github.com/llfsmgen/llfsmgen/pkg/ports"
	"github.com/llfsmgen/llfsmgen/pkg/translate"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// WorkspaceContractTest is a reusable test suite that verifies if an adapter complies with ports.Workspace.
// root must be an empty, writable directory.
func WorkspaceContractTest(t *testing.T, ws ports.Workspace, root string) {
	t.Helper()

	machineFolder := filepath.Join(root, "Machine0.machine")
	arrangementFolder := filepath.Join(root, "PingPong.arrangement")

	t.Run("MachineModel_RoundTrip", func(t *testing.T) {
		model := testutils.Machine0Model()
		require.NoError(t, ws.SaveMachineModel(machineFolder, model))

		loaded, err := ws.LoadMachineModel(machineFolder)
		require.NoError(t, err)
		assert.Equal(t, model, loaded)
	})

	t.Run("Machine_RoundTrip", func(t *testing.T) {
		machine, err := translate.Compile(testutils.Machine0Model())
		require.NoError(t, err)
		require.NoError(t, ws.SaveMachine(machineFolder, machine))

		loaded, err := ws.LoadMachine(machineFolder)
		require.NoError(t, err)
		assert.Equal(t, machine, loaded)
	})

	t.Run("Arrangement_RoundTrip", func(t *testing.T) {
		model := testutils.PingPongArrangementModel()
		require.NoError(t, ws.SaveArrangementModel(arrangementFolder, model))

		loadedModel, err := ws.LoadArrangementModel(arrangementFolder)
		require.NoError(t, err)
		assert.Equal(t, model, loadedModel)

		a, ok := arrangement.Assemble(model, arrangementFolder)
		require.True(t, ok)
		require.NoError(t, ws.SaveArrangement(arrangementFolder, a))

		loaded, err := ws.LoadArrangement(arrangementFolder)
		require.NoError(t, err)
		assert.Equal(t, a, loaded)
	})

	t.Run("Remove", func(t *testing.T) {
		require.NoError(t, ws.SaveMachineModel(machineFolder, testutils.Machine0Model()))
		machine, err := translate.Compile(testutils.Machine0Model())
		require.NoError(t, err)
		require.NoError(t, ws.SaveMachine(machineFolder, machine))

		require.NoError(t, ws.RemoveMachine(machineFolder))
		_, err = ws.LoadMachine(machineFolder)
		assert.Error(t, err)
		_, err = ws.LoadMachineModel(machineFolder)
		assert.NoError(t, err, "the model must survive")

		a, ok := arrangement.Assemble(testutils.PingPongArrangementModel(), arrangementFolder)
		require.True(t, ok)
		require.NoError(t, ws.SaveArrangement(arrangementFolder, a))
		require.NoError(t, ws.RemoveArrangement(arrangementFolder))
		_, err = ws.LoadArrangement(arrangementFolder)
		assert.Error(t, err)

		// Removing twice is not an error.
		assert.NoError(t, ws.RemoveMachine(machineFolder))
		assert.NoError(t, ws.RemoveArrangement(arrangementFolder))
	})

	t.Run("Load_NotFound", func(t *testing.T) {
		missing := filepath.Join(root, "Missing.machine")

		_, err := ws.LoadMachineModel(missing)
		assert.Error(t, err)
		_, err = ws.LoadMachine(missing)
		assert.Error(t, err)
		_, err = ws.LoadArrangement(missing)
		assert.Error(t, err)
		_, err = ws.LoadKripkeStructure(filepath.Join(missing, "output.json"))
		assert.Error(t, err)
	})
}
