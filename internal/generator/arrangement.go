package generator

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/llfsmgen/llfsmgen/internal/adapters/file"
	"github.com/llfsmgen/llfsmgen/pkg/arrangement"
	"github.com/llfsmgen/llfsmgen/pkg/codegen"
	"github.com/llfsmgen/llfsmgen/pkg/domain"
	"github.com/llfsmgen/llfsmgen/pkg/translate"
	"github.com/llfsmgen/llfsmgen/pkg/vhdl"
)

// Messages of arrangement build failures.
const (
	MsgArrangementName    = "The arrangement is not named correctly!"
	MsgArrangementInvalid = "The arrangement contains invalid data!"
	msgMachineVHDLFailed  = "Failed to generate VHDL for machine %s"
)

// buildArrangement builds every machine of the arrangement in folder and
// merges their VHDL into build/vhdl together with the arrangement entity.
//
// Machines are validated before anything is written. After that the build is
// not transactional: when a machine fails, the machines before it stay copied
// into build/vhdl and nothing is rolled back.
func (g *Generator) buildArrangement(ctx context.Context, folder string) error {
	name, err := domain.DeriveIdentifier(folder, domain.ArrangementSuffix)
	if err != nil {
		return domain.WrapError(domain.KindInvalidFormat, MsgArrangementName, err)
	}

	model, a, err := g.loadAndAssemble(folder)
	if err != nil {
		return err
	}

	rep, err := g.representArrangement(a, name)
	if err != nil {
		return domain.WrapError(domain.KindInvalidFormat, MsgArrangementInvalid, err)
	}

	shared := file.VHDLPath(folder)
	g.logger.DebugContext(ctx, "resetting build folder", "path", shared)
	if err := file.ResetDir(shared); err != nil {
		return domain.WrapError(domain.KindInvalidExportation, "Cannot create the build folder.", err)
	}

	for _, machine := range arrangement.MachineNames(model) {
		if err := ctx.Err(); err != nil {
			return err
		}
		path := a.Machines[machine]
		err := g.buildMachine(ctx, path, shared)
		g.metrics.MachineProcessed(err)
		if err != nil {
			return fmt.Errorf("machine %s: %w", machine, err)
		}
	}

	destination := filepath.Join(shared, rep.FileName())
	g.logger.DebugContext(ctx, "writing arrangement vhdl", "file", destination)
	if err := file.WriteReplace(destination, []byte(rep.File())); err != nil {
		return domain.WrapError(domain.KindInvalidExportation, fmt.Sprintf(msgVHDLFailed, name), err)
	}
	return nil
}

// representArrangement compiles every machine model of a, in key order, and
// composes the arrangement representation. The factory runs once per machine,
// inside the composition.
func (g *Generator) representArrangement(a domain.Arrangement, name vhdl.VariableName) (*codegen.ArrangementRepresentation, error) {
	instances := make([]codegen.MachineInstance, 0, len(a.Machines))
	for _, label := range a.MachineNames() {
		path := a.Machines[label]
		model, err := g.workspace.LoadMachineModel(path)
		if err != nil {
			return nil, fmt.Errorf("machine %s: %w", label, err)
		}
		machine, err := translate.Compile(model)
		if err != nil {
			return nil, fmt.Errorf("machine %s: %w", label, err)
		}
		entity, err := domain.DeriveIdentifier(path, domain.MachineSuffix)
		if err != nil {
			return nil, fmt.Errorf("machine %s: %w", label, err)
		}
		instances = append(instances, codegen.MachineInstance{Label: label, Entity: entity, Machine: machine})
	}
	return codegen.NewArrangementRepresentation(a, name, instances, g.factory)
}

// buildMachine runs clean, model and vhdl on one machine folder and copies
// its VHDL into shared.
func (g *Generator) buildMachine(ctx context.Context, folder, shared string) error {
	logger := g.logger.With("machine", folder)

	logger.DebugContext(ctx, "cleaning machine")
	if err := g.clean(folder, false); err != nil {
		return err
	}
	logger.DebugContext(ctx, "compiling machine")
	if err := g.compileMachine(folder); err != nil {
		return err
	}
	logger.DebugContext(ctx, "generating machine vhdl")
	if err := g.machineVHDL(ctx, folder); err != nil {
		return err
	}

	source := file.VHDLPath(folder)
	names, ok, err := hasOnlyVHDL(source)
	if err != nil || !ok {
		return domain.WrapError(domain.KindInvalidGeneration,
			fmt.Sprintf(msgMachineVHDLFailed, filepath.Base(filepath.Clean(folder))), err)
	}
	for _, n := range names {
		if err := file.CopyReplace(filepath.Join(source, n), filepath.Join(shared, n)); err != nil {
			return domain.WrapError(domain.KindInvalidExportation,
				fmt.Sprintf(msgMachineVHDLFailed, filepath.Base(filepath.Clean(folder))), err)
		}
	}
	return nil
}
