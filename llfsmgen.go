package llfsmgen

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/llfsmgen/llfsmgen/internal/generator"
	"github.com/llfsmgen/llfsmgen/internal/metrics"
	"github.com/llfsmgen/llfsmgen/internal/presentation/graph"
	"github.com/llfsmgen/llfsmgen/internal/presentation/tui"
	"github.com/llfsmgen/llfsmgen/pkg/ports"
)

// Version is the version of the llfsmgen library and CLI.
var Version = "0.1.0"

// Generator is the high-level entry point of the library.
// It wraps the internal generator and exposes its operations as Commands.
type Generator struct {
	gen     *generator.Generator
	metrics *metrics.Recorder
	logger  *slog.Logger
}

type options struct {
	logger     *slog.Logger
	metrics    bool
	stateSpace ports.StateSpaceGenerator
	sourcesDir string
	output     io.Writer
	renderer   tui.Renderer
	workspace  ports.Workspace
}

// Option defines a functional option for configuring the Generator.
type Option func(*options)

// WithLogger sets a custom structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithMetrics records every operation in a Prometheus registry, served by
// MetricsHandler and written by WriteMetrics.
func WithMetrics() Option {
	return func(o *options) {
		o.metrics = true
	}
}

// WithStateSpaceGenerator enables VHDLCommand.IncludeKripkeStructure.
func WithStateSpaceGenerator(s ports.StateSpaceGenerator) Option {
	return func(o *options) {
		o.stateSpace = s
	}
}

// WithVivadoSourcesDir sets the folder below <project>.srcs that Vivado
// installs copy into (default "sources_1/new").
func WithVivadoSourcesDir(dir string) Option {
	return func(o *options) {
		o.sourcesDir = dir
	}
}

// WithOutput sets where reports without an output file are printed.
func WithOutput(w io.Writer) Option {
	return func(o *options) {
		o.output = w
	}
}

// WithRenderer sets the renderer used by pretty reports.
func WithRenderer(r func(string) (string, error)) Option {
	return func(o *options) {
		o.renderer = r
	}
}

// WithWorkspace replaces the filesystem store of folder documents.
func WithWorkspace(ws ports.Workspace) Option {
	return func(o *options) {
		o.workspace = ws
	}
}

// New initializes a Generator.
func New(opts ...Option) *Generator {
	o := &options{}
	for _, opt := range opts {
		opt(o)
	}

	g := &Generator{logger: o.logger}
	if o.metrics {
		g.metrics = metrics.New()
	}

	genOpts := []generator.Option{
		generator.WithMetrics(g.metrics),
		generator.WithVivadoSourcesDir(o.sourcesDir),
	}
	if o.logger != nil {
		genOpts = append(genOpts, generator.WithLogger(o.logger))
	}
	if o.stateSpace != nil {
		genOpts = append(genOpts, generator.WithStateSpaceGenerator(o.stateSpace))
	}
	if o.output != nil {
		genOpts = append(genOpts, generator.WithOutput(o.output))
	}
	if o.renderer != nil {
		genOpts = append(genOpts, generator.WithRenderer(o.renderer))
	}
	if o.workspace != nil {
		genOpts = append(genOpts, generator.WithWorkspace(o.workspace))
	}
	g.gen = generator.New(genOpts...)
	return g
}

// Run executes a command.
func (g *Generator) Run(ctx context.Context, cmd Command) error {
	switch c := cmd.(type) {
	case ModelCommand:
		return g.gen.Model(ctx, c.Path, c.ExportModel)
	case VHDLCommand:
		return g.gen.VHDL(ctx, c.Path, c.IncludeKripkeStructure)
	case CleanCommand:
		return g.gen.Clean(ctx, c.Path, c.BuildFolderOnly)
	case InstallCommand:
		return g.gen.Install(ctx, c.Path, c.InstallPath, c.Vivado)
	case ReportCommand:
		return g.gen.Report(ctx, c.Path, c.Output, c.Pretty)
	case GraphCommand:
		_, err := g.Graph(ctx, c)
		return err
	}
	return fmt.Errorf("%w: %T", ErrUnknownCommand, cmd)
}

// Graph runs a GraphCommand and returns the path of the written file.
func (g *Generator) Graph(ctx context.Context, c GraphCommand) (string, error) {
	format, err := graph.ParseFormat(c.Format)
	if err != nil {
		return "", err
	}
	return g.gen.Graph(ctx, generator.GraphRequest{
		Path:        c.Path,
		IsMachine:   c.IsMachine,
		Destination: c.Destination,
		Format:      format,
	})
}

// ReportText returns the report of a machine folder without writing it.
func (g *Generator) ReportText(path string) (string, error) {
	return g.gen.ReportText(path)
}

// MetricsHandler serves the recorded metrics. Without WithMetrics it serves
// an empty registry.
func (g *Generator) MetricsHandler() http.Handler {
	return g.metrics.Handler()
}

// WriteMetrics writes the recorded metrics to path in the Prometheus text
// format. It does nothing without WithMetrics.
func (g *Generator) WriteMetrics(path string) error {
	if g.metrics == nil {
		return nil
	}
	return g.metrics.WriteTextfile(path)
}
