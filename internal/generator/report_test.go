package generator_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/llfsmgen/llfsmgen/internal/generator"
	"github.com/llfsmgen/llfsmgen/internal/presentation/report"
	"github.com/llfsmgen/llfsmgen/internal/testutils"
	"github.com/llfsmgen/llfsmgen/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pingStructure() domain.KripkeStructure {
	return domain.KripkeStructure{
		Nodes: []domain.KripkeNode{
			{ID: "0", State: "Initial"},
			{ID: "1", State: "SendPing"},
			{ID: "2", State: "WaitForPong"},
		},
		Edges: map[string][]domain.KripkeEdge{
			"0": {{Target: "1", Time: 200, Energy: 1}},
			"1": {{Target: "2", Time: 200, Energy: 1}},
			"2": {{Target: "1", Time: 200, Energy: 1}, {Target: "2", Time: 200, Energy: 1}},
		},
	}
}

func TestReport(t *testing.T) {
	dir := testutils.SetupWorkspace(t)
	folder := testutils.WriteMachine(t, dir, "PingMachine", testutils.PingMachineModel())
	ctx := context.Background()
	machine := report.Category("Machine", report.Machine(testutils.PingMachineModel(), "PingMachine.machine"))

	t.Run("Without Kripke Structure", func(t *testing.T) {
		output := filepath.Join(dir, "report.txt")
		require.NoError(t, newGenerator().Report(ctx, folder, output, false))
		assert.Equal(t, machine+"\n", string(readFile(t, output)))
	})

	t.Run("With Kripke Structure", func(t *testing.T) {
		testutils.WriteJSON(t, filepath.Join(folder, "output.json"), pingStructure())
		t.Cleanup(func() { _ = os.Remove(filepath.Join(folder, "output.json")) })

		text, err := newGenerator().ReportText(folder)
		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(text, machine+"\n"))
		assert.True(t, strings.HasSuffix(text, "- Kripke Structure:\n    - Kripke Structure:\n        - Nodes: 3\n        - Edges: 4\n"))
	})

	t.Run("Replaces Output", func(t *testing.T) {
		output := filepath.Join(dir, "replaced.txt")
		require.NoError(t, os.WriteFile(output, []byte("previous report that is longer than the new one"+strings.Repeat("!", 4096)), 0o644))
		require.NoError(t, newGenerator().Report(ctx, folder, output, false))
		assert.Equal(t, machine+"\n", string(readFile(t, output)))
	})

	t.Run("Standard Output", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, newGenerator(generator.WithOutput(&buf)).Report(ctx, folder, "", false))
		assert.Equal(t, machine+"\n\n", buf.String())
	})

	t.Run("Pretty", func(t *testing.T) {
		var buf bytes.Buffer
		var rendered string
		g := newGenerator(generator.WithOutput(&buf), generator.WithRenderer(func(markdown string) (string, error) {
			rendered = markdown
			return "pretty", nil
		}))
		require.NoError(t, g.Report(ctx, folder, "", true))
		assert.Equal(t, "pretty\n", buf.String())
		assert.True(t, strings.HasPrefix(rendered, "# PingMachine.machine\n\n```yaml\n- Machine:\n"))
	})

	t.Run("Missing Model", func(t *testing.T) {
		assert.Error(t, newGenerator().Report(ctx, filepath.Join(dir, "Ghost.machine"), "", false))
	})
}
