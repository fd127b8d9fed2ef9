package generator_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/llfsmgen/llfsmgen/internal/generator"
	"github.com/llfsmgen/llfsmgen/internal/testutils"
	"github.com/llfsmgen/llfsmgen/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInstall(t *testing.T) {
	folder := builtMachine(t)
	target := t.TempDir()

	require.NoError(t, newGenerator().Install(context.Background(), folder, target, false))

	assert.Equal(t,
		readFile(t, filepath.Join(folder, "build", "vhdl", "PingMachine.vhd")),
		readFile(t, filepath.Join(target, "PingMachine.vhd")),
	)
}

func TestInstall_Vivado(t *testing.T) {
	ctx := context.Background()

	t.Run("Project", func(t *testing.T) {
		folder := builtMachine(t)
		project := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(project, "Blinky.xpr"), nil, 0o644))
		sources := filepath.Join(project, "Blinky.srcs", "sources_1", "new")
		require.NoError(t, os.MkdirAll(sources, 0o755))

		require.NoError(t, newGenerator().Install(ctx, folder, project, true))
		assert.FileExists(t, filepath.Join(sources, "PingMachine.vhd"))
	})

	t.Run("Custom Sources Folder", func(t *testing.T) {
		folder := builtMachine(t)
		project := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(project, "Blinky.xpr"), nil, 0o644))
		sources := filepath.Join(project, "Blinky.srcs", "hdl")
		require.NoError(t, os.MkdirAll(sources, 0o755))

		g := newGenerator(generator.WithVivadoSourcesDir("hdl"))
		require.NoError(t, g.Install(ctx, folder, project, true))
		assert.FileExists(t, filepath.Join(sources, "PingMachine.vhd"))
	})

	t.Run("Missing Project File", func(t *testing.T) {
		folder := builtMachine(t)
		err := newGenerator().Install(ctx, folder, t.TempDir(), true)
		requireMessage(t, err, domain.ErrInvalidInput, generator.MsgNotVivadoProject)
	})

	t.Run("Missing Sources Folder", func(t *testing.T) {
		folder := builtMachine(t)
		project := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(project, "Blinky.xpr"), nil, 0o644))

		err := newGenerator().Install(ctx, folder, project, true)
		requireMessage(t, err, domain.ErrInvalidInput, generator.MsgVivadoSetup)
	})
}

func TestInstall_Errors(t *testing.T) {
	ctx := context.Background()

	t.Run("Not A Machine", func(t *testing.T) {
		err := newGenerator().Install(ctx, t.TempDir(), t.TempDir(), false)
		requireMessage(t, err, domain.ErrInvalidMachine, generator.MsgNotAMachine)
	})

	t.Run("Missing Machine", func(t *testing.T) {
		missing := filepath.Join(t.TempDir(), "Ghost.machine")
		err := newGenerator().Install(ctx, missing, t.TempDir(), false)
		requireMessage(t, err, domain.ErrInvalidMachine, generator.MsgInvalidMachine)
	})

	t.Run("Missing Install Folder", func(t *testing.T) {
		folder := builtMachine(t)
		err := newGenerator().Install(ctx, folder, filepath.Join(t.TempDir(), "nowhere"), false)
		requireMessage(t, err, domain.ErrInvalidInput, generator.MsgInstallDir)
	})

	t.Run("Not Built", func(t *testing.T) {
		dir := testutils.SetupWorkspace(t)
		folder := testutils.WriteMachine(t, dir, "PingMachine", testutils.PingMachineModel())
		err := newGenerator().Install(ctx, folder, t.TempDir(), false)
		requireMessage(t, err, domain.ErrInvalidGeneration, generator.MsgNoBuildFolder)
	})

	t.Run("Corrupted Build", func(t *testing.T) {
		folder := builtMachine(t)
		require.NoError(t, os.WriteFile(filepath.Join(folder, "build", "vhdl", "notes.txt"), nil, 0o644))
		err := newGenerator().Install(ctx, folder, t.TempDir(), false)
		requireMessage(t, err, domain.ErrInvalidGeneration, generator.MsgCorruptedBuild)
	})
}
