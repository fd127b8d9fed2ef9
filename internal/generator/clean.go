package generator

import (
	"context"
	"errors"
	"os"

	"github.com/llfsmgen/llfsmgen/internal/adapters/file"
	"github.com/llfsmgen/llfsmgen/pkg/domain"
	"github.com/llfsmgen/llfsmgen/pkg/ports"
)

// Messages of clean failures.
const (
	MsgBuildIsFile      = "Found a file at the build folders location."
	MsgMachineFileIsDir = "Found a directory at the machine files location."
)

// Clean removes the generated files of a machine or arrangement folder: the
// build folder and, unless buildOnly is set, machine.json or arrangement.json.
// The documents are removed through the Workspace.
// Files that do not exist are not an error.
func (g *Generator) Clean(ctx context.Context, path string, buildOnly bool) (err error) {
	defer g.begin(ctx, OpClean, path)(&err)
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := requireFolder(path); err != nil {
		return err
	}
	return g.clean(path, buildOnly)
}

func (g *Generator) clean(folder string, buildOnly bool) error {
	build := file.BuildPath(folder)
	if info, err := os.Stat(build); err == nil {
		if !info.IsDir() {
			return domain.NewError(domain.KindInvalidExportation, MsgBuildIsFile)
		}
		if err := os.RemoveAll(build); err != nil {
			return domain.WrapError(domain.KindInvalidExportation, "Cannot remove the build folder.", err)
		}
	}
	if buildOnly {
		return nil
	}

	if domain.HasSuffix(folder, domain.ArrangementSuffix) {
		if err := g.workspace.RemoveArrangement(folder); err != nil {
			return domain.WrapError(domain.KindInvalidExportation, "Cannot remove the arrangement file.", err)
		}
		return nil
	}

	if err := g.workspace.RemoveMachine(folder); err != nil {
		if errors.Is(err, ports.ErrDocumentIsDir) {
			return domain.NewError(domain.KindInvalidExportation, MsgMachineFileIsDir)
		}
		return domain.WrapError(domain.KindInvalidExportation, "Cannot remove the machine file.", err)
	}
	return nil
}
