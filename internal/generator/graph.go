package generator

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"github.com/llfsmgen/llfsmgen/internal/adapters/file"
	"github.com/llfsmgen/llfsmgen/internal/presentation/graph"
	"github.com/llfsmgen/llfsmgen/pkg/domain"
)

// Messages of graph failures.
const (
	MsgNotMachineFolder = "The path must be a valid machines location."
	MsgNoKripke         = "The Kripke structure does not exist at this specified location."
)

// GraphRequest describes one graph operation.
type GraphRequest struct {
	// Path is the Kripke structure file, or a machine folder when IsMachine
	// is set.
	Path      string
	IsMachine bool
	// Destination is a directory or a file. Empty means the working
	// directory.
	Destination string
	Format      graph.Format
}

// Graph renders a Kripke structure to a graphviz or Mermaid file and returns
// the path of the written file.
func (g *Generator) Graph(ctx context.Context, req GraphRequest) (written string, err error) {
	defer g.begin(ctx, OpGraph, req.Path)(&err)
	if err := ctx.Err(); err != nil {
		return "", err
	}

	source := req.Path
	if req.IsMachine {
		if !domain.HasSuffix(source, domain.MachineSuffix) || !file.IsDir(source) {
			return "", domain.NewError(domain.KindInvalidInput, MsgNotMachineFolder)
		}
		source = file.KripkePath(source)
	}
	if !file.Exists(source) || file.IsDir(source) {
		return "", domain.NewError(domain.KindInvalidMachine, MsgNoKripke)
	}
	structure, err := g.workspace.LoadKripkeStructure(source)
	if err != nil {
		return "", err
	}

	name := strings.TrimSuffix(filepath.Base(source), filepath.Ext(source))
	written = g.graphFile(req.Destination, name, req.Format.Extension())
	if err := os.MkdirAll(filepath.Dir(written), 0o755); err != nil {
		return "", domain.WrapError(domain.KindInvalidExportation, "Cannot create the graph folder.", err)
	}
	if err := file.WriteReplace(written, []byte(graph.Render(req.Format, structure))); err != nil {
		return "", domain.WrapError(domain.KindInvalidExportation, "The Kripke structure could not be exported.", err)
	}
	return written, nil
}

// graphFile resolves the destination of a graph: an existing directory gets
// <name><ext> inside it, an existing file or a path ending in ext is used
// as-is, and anything else is treated as a directory.
func (g *Generator) graphFile(destination, name, ext string) string {
	if destination == "" {
		return filepath.Join(".", name+ext)
	}
	if info, err := os.Stat(destination); err == nil {
		if info.IsDir() {
			return filepath.Join(destination, name+ext)
		}
		return destination
	}
	if strings.HasSuffix(destination, ext) {
		return destination
	}
	g.logger.Warn("cannot discern if destination is a directory or a file, defaulting to directory", "destination", destination)
	return filepath.Join(destination, name+ext)
}
