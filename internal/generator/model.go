package generator

import (
	"context"

	"github.com/llfsmgen/llfsmgen/pkg/arrangement"
	"github.com/llfsmgen/llfsmgen/pkg/domain"
	"github.com/llfsmgen/llfsmgen/pkg/translate"
)

// MsgCannotCreateArrangement is returned when model.json of an arrangement
// does not assemble.
const MsgCannotCreateArrangement = "Cannot create valid arrangement from model."

// Model translates between model.json and machine.json of a machine folder,
// or between model.json and arrangement.json of an arrangement folder. With
// export the canonical document is projected back into model.json.
func (g *Generator) Model(ctx context.Context, path string, export bool) (err error) {
	defer g.begin(ctx, OpModel, path)(&err)
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := requireFolder(path); err != nil {
		return err
	}
	if domain.HasSuffix(path, domain.ArrangementSuffix) {
		if export {
			return g.exportArrangement(path)
		}
		return g.assembleArrangement(path)
	}
	if export {
		return g.exportMachine(path)
	}
	return g.compileMachine(path)
}

func (g *Generator) compileMachine(folder string) error {
	model, err := g.workspace.LoadMachineModel(folder)
	if err != nil {
		return err
	}
	machine, err := translate.Compile(model)
	if err != nil {
		return err
	}
	g.logger.Debug("compiled machine", "path", folder, "states", len(machine.States), "transitions", len(machine.Transitions))
	return g.workspace.SaveMachine(folder, machine)
}

func (g *Generator) exportMachine(folder string) error {
	machine, err := g.workspace.LoadMachine(folder)
	if err != nil {
		return err
	}
	original, err := g.workspace.LoadMachineModel(folder)
	if err != nil {
		return err
	}
	model, err := translate.Decompile(machine, original)
	if err != nil {
		return err
	}
	return g.workspace.SaveMachineModel(folder, model)
}

func (g *Generator) assembleArrangement(folder string) error {
	_, _, err := g.loadAndAssemble(folder)
	return err
}

// loadAndAssemble assembles model.json of an arrangement and persists the
// result as arrangement.json.
func (g *Generator) loadAndAssemble(folder string) (domain.ArrangementModel, domain.Arrangement, error) {
	model, err := g.workspace.LoadArrangementModel(folder)
	if err != nil {
		return model, domain.Arrangement{}, err
	}
	a, ok := arrangement.Assemble(model, folder)
	if !ok {
		return model, domain.Arrangement{}, domain.NewError(domain.KindInvalidGeneration, MsgCannotCreateArrangement)
	}
	if err := g.workspace.SaveArrangement(folder, a); err != nil {
		return model, domain.Arrangement{}, err
	}
	return model, a, nil
}

func (g *Generator) exportArrangement(folder string) error {
	a, err := g.workspace.LoadArrangement(folder)
	if err != nil {
		return err
	}
	return g.workspace.SaveArrangementModel(folder, arrangement.Disassemble(a))
}
