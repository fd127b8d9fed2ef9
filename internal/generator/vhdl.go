package generator

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/llfsmgen/llfsmgen/internal/adapters/file"
	"github.com/llfsmgen/llfsmgen/pkg/codegen"
	"github.com/llfsmgen/llfsmgen/pkg/domain"
)

// Messages of single machine generation failures.
const (
	MsgInvalidMachineName = "The machine specified is invalid. Please make sure you specify a machine with the .machine extension and valid name."
	msgVHDLFailed         = "Failed to generate VHDL for %s."
	msgKripkeFailed       = "Failed to generate Kripke Structure for %s."
)

// VHDL generates the VHDL of a machine folder from its machine.json, or
// builds an arrangement folder. With includeKripke a machine's state space
// artefacts are generated instead; arrangements ignore the flag for their
// machines.
func (g *Generator) VHDL(ctx context.Context, path string, includeKripke bool) (err error) {
	defer g.begin(ctx, OpVHDL, path)(&err)
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := requireFolder(path); err != nil {
		return err
	}
	if domain.HasSuffix(path, domain.ArrangementSuffix) {
		return g.buildArrangement(ctx, path)
	}
	return g.generateMachine(ctx, path, includeKripke)
}

func (g *Generator) generateMachine(ctx context.Context, folder string, includeKripke bool) error {
	machine, err := g.workspace.LoadMachine(folder)
	if err != nil {
		return err
	}
	name, err := domain.DeriveIdentifier(folder, domain.MachineSuffix)
	if err != nil {
		return domain.WrapError(domain.KindInvalidFormat, MsgInvalidMachineName, err)
	}
	rep, err := codegen.NewMachineRepresentation(machine, name)
	if err != nil {
		return domain.WrapError(domain.KindInvalidGeneration, fmt.Sprintf(msgVHDLFailed, name), err)
	}

	if !includeKripke {
		path := filepath.Join(file.VHDLPath(folder), rep.FileName())
		g.logger.DebugContext(ctx, "writing machine vhdl", "file", path)
		if err := file.WriteReplace(path, []byte(rep.File()+"\n")); err != nil {
			return domain.WrapError(domain.KindInvalidExportation, fmt.Sprintf(msgVHDLFailed, name), err)
		}
		return nil
	}

	if g.stateSpace == nil {
		return domain.NewError(domain.KindInvalidGeneration, fmt.Sprintf(msgKripkeFailed, name))
	}
	tree, err := g.stateSpace.Generate(ctx, rep)
	if err != nil {
		return domain.WrapError(domain.KindInvalidGeneration, fmt.Sprintf(msgKripkeFailed, name), err)
	}
	build := file.BuildPath(folder)
	for _, rel := range tree.Paths() {
		path := filepath.Join(build, filepath.FromSlash(rel))
		g.logger.DebugContext(ctx, "writing state space artefact", "file", path)
		if err := file.WriteReplace(path, tree[rel]); err != nil {
			return domain.WrapError(domain.KindInvalidExportation, fmt.Sprintf(msgKripkeFailed, name), err)
		}
	}
	return nil
}

// hasOnlyVHDL reports whether every entry of dir is a .vhd file, ignoring
// case. It returns the entry names.
func hasOnlyVHDL(dir string) ([]string, bool, error) {
	names, err := file.ListFiles(dir)
	if err != nil {
		return nil, false, err
	}
	for _, n := range names {
		if !isVHDLFile(n) {
			return names, false, nil
		}
	}
	return names, true, nil
}

func isVHDLFile(name string) bool {
	return strings.EqualFold(filepath.Ext(name), ".vhd")
}
