package generator

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/llfsmgen/llfsmgen/internal/adapters/file"
	"github.com/llfsmgen/llfsmgen/internal/presentation/report"
	"github.com/llfsmgen/llfsmgen/internal/presentation/tui"
	"github.com/llfsmgen/llfsmgen/pkg/domain"
)

// Report writes the report of the machine folder at path to output, replacing
// an existing file, or to the generator's output when output is empty. With
// pretty the report is rendered for a terminal.
func (g *Generator) Report(ctx context.Context, path, output string, pretty bool) (err error) {
	defer g.begin(ctx, OpReport, path)(&err)
	if err := ctx.Err(); err != nil {
		return err
	}

	text, err := g.ReportText(path)
	if err != nil {
		return err
	}
	if pretty {
		if text, err = g.render(filepath.Base(filepath.Clean(path)), text); err != nil {
			return err
		}
	}
	if output == "" {
		_, err := fmt.Fprintln(g.stdout, text)
		return err
	}
	if err := file.WriteReplace(output, []byte(text)); err != nil {
		return domain.WrapError(domain.KindInvalidExportation, "Cannot write the report.", err)
	}
	return nil
}

// ReportText builds the report of the machine folder at path. The Kripke
// structure section is included when output.json exists.
func (g *Generator) ReportText(path string) (string, error) {
	model, err := g.workspace.LoadMachineModel(path)
	if err != nil {
		return "", err
	}
	name := filepath.Base(filepath.Clean(path))

	kripke := file.KripkePath(path)
	if !file.Exists(kripke) {
		g.logger.Debug("no kripke structure to report", "path", kripke)
		return report.Document(name, model, nil), nil
	}
	structure, err := g.workspace.LoadKripkeStructure(kripke)
	if err != nil {
		return "", err
	}
	return report.Document(name, model, &structure), nil
}

func (g *Generator) render(title, text string) (string, error) {
	render := g.renderer
	if render == nil {
		r, err := tui.NewRenderer()
		if err != nil {
			g.logger.Warn("pretty rendering unavailable, printing plain report", "error", err)
			return text, nil
		}
		render = r
	}
	return render(tui.ReportMarkdown(title, text))
}
