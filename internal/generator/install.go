package generator

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"github.com/llfsmgen/llfsmgen/internal/adapters/file"
	"github.com/llfsmgen/llfsmgen/pkg/domain"
)

// Messages of install failures.
const (
	MsgNotAMachine      = "The path provided is not a machine."
	MsgInvalidMachine   = "The path provided is not a valid machine."
	MsgInstallDir       = "The install directory is incorrect."
	MsgNoBuildFolder    = "The build folder does not exist. Have you generated the VHDL files?"
	MsgCorruptedBuild   = "The build folder is corrupted! Please regenerate the VHDL files."
	MsgNotVivadoProject = "The install directory is not a valid vivado project."
	MsgVivadoSetup      = "The vivado project is not set up correctly."
)

// Install copies the generated VHDL of a machine or arrangement folder into
// installPath. With vivado, installPath is a Vivado project directory and the
// files go to <project>.srcs/<sources dir>.
func (g *Generator) Install(ctx context.Context, path, installPath string, vivado bool) (err error) {
	defer g.begin(ctx, OpInstall, path)(&err)
	if err := ctx.Err(); err != nil {
		return err
	}

	if !domain.HasSuffix(path, domain.MachineSuffix) && !domain.HasSuffix(path, domain.ArrangementSuffix) {
		return domain.NewError(domain.KindInvalidMachine, MsgNotAMachine)
	}
	if !file.IsDir(path) {
		return domain.NewError(domain.KindInvalidMachine, MsgInvalidMachine)
	}
	if !file.IsDir(installPath) {
		return domain.NewError(domain.KindInvalidInput, MsgInstallDir)
	}
	if !file.IsDir(file.BuildPath(path)) {
		return domain.NewError(domain.KindInvalidGeneration, MsgNoBuildFolder)
	}
	source := file.VHDLPath(path)
	names, ok, err := hasOnlyVHDL(source)
	if err != nil || !ok {
		return domain.WrapError(domain.KindInvalidGeneration, MsgCorruptedBuild, err)
	}

	destination := installPath
	if vivado {
		destination, err = g.vivadoSources(installPath)
		if err != nil {
			return err
		}
	}
	for _, n := range names {
		target := filepath.Join(destination, n)
		g.logger.DebugContext(ctx, "installing file", "file", target)
		if err := file.CopyReplace(filepath.Join(source, n), target); err != nil {
			return domain.WrapError(domain.KindInvalidExportation, "Cannot install "+n+".", err)
		}
	}
	return nil
}

// vivadoSources locates the sources folder of the Vivado project in dir.
func (g *Generator) vivadoSources(dir string) (string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return "", domain.WrapError(domain.KindInvalidInput, MsgNotVivadoProject, err)
	}
	project := ""
	for _, e := range entries {
		if !e.IsDir() && strings.HasSuffix(e.Name(), ".xpr") {
			project = strings.TrimSuffix(e.Name(), ".xpr")
			break
		}
	}
	if project == "" {
		return "", domain.NewError(domain.KindInvalidInput, MsgNotVivadoProject)
	}
	sources := filepath.Join(dir, project+".srcs", filepath.FromSlash(g.sourcesDir))
	if !file.IsDir(sources) {
		return "", domain.NewError(domain.KindInvalidInput, MsgVivadoSetup)
	}
	return sources, nil
}
