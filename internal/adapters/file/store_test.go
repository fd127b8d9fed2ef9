package file_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/llfsmgen/llfsmgen/internal/adapters/file"
	"github.com/llfsmgen/llfsmgen/internal/testutils"
	"github.com/llfsmgen/llfsmgen/pkg/domain"
	"github.com/llfsmgen/llfsmgen/pkg/ports"
	"github.com/llfsmgen/llfsmgen/pkg/ports/tests"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStore_Contract(t *testing.T) {
	tests.WorkspaceContractTest(t, file.New(), testutils.SetupWorkspace(t))
}

func TestStore_WritesIndentedJSON(t *testing.T) {
	dir := testutils.SetupWorkspace(t)
	folder := filepath.Join(dir, "Machine0.machine")

	require.NoError(t, file.New().SaveMachineModel(folder, testutils.Machine0Model()))

	data, err := os.ReadFile(filepath.Join(folder, "model.json"))
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), "{\n  \"states\": ["))
	assert.True(t, strings.HasSuffix(string(data), "}\n"))
	assert.Contains(t, string(data), `"suspendedState": null`)

	entries, err := os.ReadDir(folder)
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temporary files must not be left behind")
}

func TestStore_SaveOverDirectoryFails(t *testing.T) {
	dir := testutils.SetupWorkspace(t)
	folder := filepath.Join(dir, "Machine0.machine")
	require.NoError(t, os.MkdirAll(filepath.Join(folder, "machine.json"), 0o755))

	err := file.New().SaveMachine(folder, domain.Machine{})
	assert.ErrorIs(t, err, domain.ErrInvalidExportation)
}

func TestStore_RemoveDirectoryFails(t *testing.T) {
	dir := testutils.SetupWorkspace(t)
	folder := filepath.Join(dir, "Machine0.machine")
	require.NoError(t, os.MkdirAll(filepath.Join(folder, "machine.json"), 0o755))

	err := file.New().RemoveMachine(folder)
	assert.ErrorIs(t, err, ports.ErrDocumentIsDir)
	assert.DirExists(t, filepath.Join(folder, "machine.json"))
}

func TestStore_LoadRejectsInvalidMachine(t *testing.T) {
	dir := testutils.SetupWorkspace(t)
	folder := filepath.Join(dir, "Machine0.machine")
	require.NoError(t, os.MkdirAll(folder, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(folder, "machine.json"),
		[]byte(`{"states":[{"name":"process"}]}`), 0o644))

	_, err := file.New().LoadMachine(folder)
	assert.Error(t, err)
}

func TestFS_ResetAndCopy(t *testing.T) {
	dir := testutils.SetupWorkspace(t)
	target := filepath.Join(dir, "build", "vhdl")

	require.NoError(t, file.ResetDir(target))
	require.NoError(t, os.WriteFile(filepath.Join(target, "stale.vhd"), []byte("old"), 0o644))
	require.NoError(t, file.ResetDir(target))

	names, err := file.ListFiles(target)
	require.NoError(t, err)
	assert.Empty(t, names)

	src := filepath.Join(dir, "a.vhd")
	require.NoError(t, os.WriteFile(src, []byte("new"), 0o644))
	dst := filepath.Join(target, "a.vhd")
	require.NoError(t, os.WriteFile(dst, []byte("previous content"), 0o644))
	require.NoError(t, file.CopyReplace(src, dst))

	data, err := os.ReadFile(dst)
	require.NoError(t, err)
	assert.Equal(t, "new", string(data))
	assert.True(t, file.Exists(dst))
	assert.True(t, file.IsDir(target))
	assert.False(t, file.IsDir(dst))
}
