package llfsmgen_test

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/llfsmgen/llfsmgen"
	"github.com/llfsmgen/llfsmgen/internal/logging"
	"github.com/llfsmgen/llfsmgen/internal/testutils"
	"github.com/llfsmgen/llfsmgen/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRun_Commands(t *testing.T) {
	dir := testutils.SetupWorkspace(t)
	testutils.WriteMachine(t, dir, "PingMachine", testutils.PingMachineModel())
	testutils.WriteMachine(t, dir, "PongMachine", testutils.PongMachineModel())
	arrangement := testutils.WriteArrangement(t, dir, "PingPong", testutils.PingPongArrangementModel())
	ping := filepath.Join(dir, "PingMachine.machine")
	install := t.TempDir()

	var out bytes.Buffer
	gen := llfsmgen.New(llfsmgen.WithLogger(logging.NewNop()), llfsmgen.WithOutput(&out))
	ctx := context.Background()

	for _, cmd := range []llfsmgen.Command{
		llfsmgen.VHDLCommand{Path: arrangement},
		llfsmgen.InstallCommand{Path: arrangement, InstallPath: install},
		llfsmgen.ReportCommand{Path: ping},
		llfsmgen.ModelCommand{Path: ping, ExportModel: true},
		llfsmgen.CleanCommand{Path: arrangement},
	} {
		require.NoError(t, gen.Run(ctx, cmd), "%T", cmd)
	}

	for _, name := range []string{"PingMachine.vhd", "PongMachine.vhd", "PingPong.vhd"} {
		assert.FileExists(t, filepath.Join(install, name))
	}
	assert.Contains(t, out.String(), "- PingMachine.machine:\n")
	assert.NoDirExists(t, filepath.Join(arrangement, "build"))
	assert.NoFileExists(t, filepath.Join(arrangement, "arrangement.json"))
}

func TestRun_Graph(t *testing.T) {
	dir := testutils.SetupWorkspace(t)
	folder := testutils.WriteMachine(t, dir, "PingMachine", testutils.PingMachineModel())
	testutils.WriteJSON(t, filepath.Join(folder, "output.json"), domain.KripkeStructure{
		Nodes: []domain.KripkeNode{{ID: "0", State: "Initial"}},
	})
	gen := llfsmgen.New()

	written, err := gen.Graph(context.Background(), llfsmgen.GraphCommand{
		Path: folder, IsMachine: true, Destination: dir, Format: "mermaid",
	})
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "output.mmd"), written)

	err = gen.Run(context.Background(), llfsmgen.GraphCommand{Path: folder, IsMachine: true, Destination: dir, Format: "png"})
	assert.Error(t, err)
}

func TestRun_UnknownCommand(t *testing.T) {
	err := llfsmgen.New().Run(context.Background(), nil)
	assert.ErrorIs(t, err, llfsmgen.ErrUnknownCommand)
}

func TestRun_ErrorKinds(t *testing.T) {
	dir := testutils.SetupWorkspace(t)
	folder := testutils.WriteMachine(t, dir, "PingMachine", testutils.PingMachineModel())
	gen := llfsmgen.New()

	err := gen.Run(context.Background(), llfsmgen.VHDLCommand{Path: folder, IncludeKripkeStructure: true})
	assert.Error(t, err, "machine.json does not exist yet")

	require.NoError(t, gen.Run(context.Background(), llfsmgen.ModelCommand{Path: folder}))
	err = gen.Run(context.Background(), llfsmgen.VHDLCommand{Path: folder, IncludeKripkeStructure: true})
	assert.ErrorIs(t, err, domain.ErrInvalidGeneration)
}

func TestMetrics(t *testing.T) {
	dir := testutils.SetupWorkspace(t)
	folder := testutils.WriteMachine(t, dir, "PingMachine", testutils.PingMachineModel())
	gen := llfsmgen.New(llfsmgen.WithMetrics())
	require.NoError(t, gen.Run(context.Background(), llfsmgen.ModelCommand{Path: folder}))

	rec := httptest.NewRecorder()
	gen.MetricsHandler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	body, err := io.ReadAll(rec.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), `llfsmgen_operations_total{operation="model",result="success"} 1`)

	path := filepath.Join(dir, "llfsmgen.prom")
	require.NoError(t, gen.WriteMetrics(path))
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "llfsmgen_operation_duration_seconds")
}

func TestMetrics_Disabled(t *testing.T) {
	path := filepath.Join(t.TempDir(), "llfsmgen.prom")
	require.NoError(t, llfsmgen.New().WriteMetrics(path))
	assert.NoFileExists(t, path)
}
