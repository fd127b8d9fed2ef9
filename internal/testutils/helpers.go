package testutils

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/llfsmgen/llfsmgen/pkg/domain"
	"github.com/stretchr/testify/require"
)

// SetupWorkspace creates a temporary directory and returns its absolute path.
// It fails the test immediately on error.
func SetupWorkspace(t *testing.T) string {
	t.Helper()

	absPath, err := filepath.Abs(t.TempDir())
	require.NoError(t, err, "Failed to get absolute path for temp dir")
	return absPath
}

// WriteMachine creates <dir>/<name>.machine/model.json and returns the folder.
func WriteMachine(t *testing.T, dir, name string, model domain.MachineModel) string {
	t.Helper()
	folder := filepath.Join(dir, name+domain.MachineSuffix)
	WriteJSON(t, filepath.Join(folder, "model.json"), model)
	return folder
}

// WriteArrangement creates <dir>/<name>.arrangement/model.json and returns the folder.
func WriteArrangement(t *testing.T, dir, name string, model domain.ArrangementModel) string {
	t.Helper()
	folder := filepath.Join(dir, name+domain.ArrangementSuffix)
	WriteJSON(t, filepath.Join(folder, "model.json"), model)
	return folder
}

// WriteJSON marshals v into path, creating parent directories.
func WriteJSON(t *testing.T, path string, v any) {
	t.Helper()
	data, err := json.MarshalIndent(v, "", "  ")
	require.NoError(t, err)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, data, 0o644))
}

// ReadJSON decodes the file at path into a new T.
func ReadJSON[T any](t *testing.T, path string) T {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	var v T
	require.NoError(t, json.Unmarshal(data, &v))
	return v
}
