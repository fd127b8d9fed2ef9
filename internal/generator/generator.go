// Package generator implements the operations of the llfsmgen tool on
// machine and arrangement folders: model translation, VHDL generation,
// arrangement builds, cleaning, installation, reports and graphs.
//
// Every operation is synchronous. The filesystem is the only shared state and
// no locking is performed; callers that share a Generator between goroutines
// must serialise operations themselves.
package generator

import (
	"context"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/llfsmgen/llfsmgen/internal/adapters/file"
	"github.com/llfsmgen/llfsmgen/internal/logging"
	"github.com/llfsmgen/llfsmgen/internal/metrics"
	"github.com/llfsmgen/llfsmgen/internal/presentation/tui"
	"github.com/llfsmgen/llfsmgen/pkg/codegen"
	"github.com/llfsmgen/llfsmgen/pkg/domain"
	"github.com/llfsmgen/llfsmgen/pkg/ports"
)

// DefaultVivadoSourcesDir is where Vivado keeps hand-written sources inside
// <project>.srcs.
const DefaultVivadoSourcesDir = "sources_1/new"

// Operation names used in logs and metrics.
const (
	OpModel   = "model"
	OpVHDL    = "vhdl"
	OpClean   = "clean"
	OpInstall = "install"
	OpReport  = "report"
	OpGraph   = "graph"
)

// MsgNotAFolder is returned when an operation is pointed at a folder that is
// neither a machine nor an arrangement.
const MsgNotAFolder = "The path must be a .machine or .arrangement folder."

// Generator runs operations against a Workspace.
type Generator struct {
	logger      *slog.Logger
	metrics     *metrics.Recorder
	workspace   ports.Workspace
	stateSpace  ports.StateSpaceGenerator
	factory     ports.RepresentationFactory
	machineVHDL MachineVHDLFunc
	sourcesDir  string
	stdout      io.Writer
	renderer    tui.Renderer
}

// MachineVHDLFunc writes the VHDL of the machine in folder to its
// build/vhdl folder.
type MachineVHDLFunc func(ctx context.Context, folder string) error

// Option configures a Generator.
type Option func(*Generator)

// WithLogger sets the structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(g *Generator) {
		g.logger = logger
	}
}

// WithMetrics records every operation in r.
func WithMetrics(r *metrics.Recorder) Option {
	return func(g *Generator) {
		g.metrics = r
	}
}

// WithWorkspace replaces the filesystem store.
func WithWorkspace(ws ports.Workspace) Option {
	return func(g *Generator) {
		g.workspace = ws
	}
}

// WithStateSpaceGenerator enables Kripke structure generation.
func WithStateSpaceGenerator(s ports.StateSpaceGenerator) Option {
	return func(g *Generator) {
		g.stateSpace = s
	}
}

// WithRepresentationFactory replaces the factory used for the machines of an
// arrangement.
func WithRepresentationFactory(f ports.RepresentationFactory) Option {
	return func(g *Generator) {
		g.factory = f
	}
}

// WithMachineVHDL replaces the step that generates each machine's VHDL during
// an arrangement build. Whatever it leaves in build/vhdl is checked before
// being copied into the arrangement.
func WithMachineVHDL(f MachineVHDLFunc) Option {
	return func(g *Generator) {
		g.machineVHDL = f
	}
}

// WithVivadoSourcesDir sets the folder below <project>.srcs used by install.
func WithVivadoSourcesDir(dir string) Option {
	return func(g *Generator) {
		if dir != "" {
			g.sourcesDir = dir
		}
	}
}

// WithOutput sets where reports are printed when no output file is given.
func WithOutput(w io.Writer) Option {
	return func(g *Generator) {
		g.stdout = w
	}
}

// WithRenderer sets the renderer used for pretty reports.
func WithRenderer(r tui.Renderer) Option {
	return func(g *Generator) {
		g.renderer = r
	}
}

// New creates a Generator. Without options it works on the local filesystem,
// logs nothing and has no state space generator.
func New(opts ...Option) *Generator {
	g := &Generator{}
	for _, opt := range opts {
		opt(g)
	}
	if g.logger == nil {
		g.logger = logging.NewNop()
	}
	if g.workspace == nil {
		g.workspace = file.New()
	}
	if g.factory == nil {
		g.factory = codegen.NewMachineRepresentation
	}
	if g.machineVHDL == nil {
		g.machineVHDL = func(ctx context.Context, folder string) error {
			return g.generateMachine(ctx, folder, false)
		}
	}
	if g.sourcesDir == "" {
		g.sourcesDir = DefaultVivadoSourcesDir
	}
	if g.stdout == nil {
		g.stdout = os.Stdout
	}
	return g
}

// Metrics returns the recorder, which may be nil.
func (g *Generator) Metrics() *metrics.Recorder {
	return g.metrics
}

// begin logs the start of an operation and returns the function that logs
// and records its outcome. Call it as:
//
//	defer g.begin(ctx, OpModel, path)(&err)
func (g *Generator) begin(ctx context.Context, op, path string) func(*error) {
	started := time.Now()
	logger := g.logger.With("operation", op, "path", path)
	logger.InfoContext(ctx, "operation started")
	return func(errp *error) {
		err := *errp
		g.metrics.Observe(op, started, err)
		if err != nil {
			logger.ErrorContext(ctx, "operation failed", "error", err, "duration", time.Since(started))
			return
		}
		logger.InfoContext(ctx, "operation finished", "duration", time.Since(started))
	}
}

// requireFolder rejects paths that do not name a machine or arrangement
// folder, so no operation writes to or deletes from an arbitrary directory.
func requireFolder(path string) error {
	if domain.HasSuffix(path, domain.MachineSuffix) || domain.HasSuffix(path, domain.ArrangementSuffix) {
		return nil
	}
	return domain.NewError(domain.KindInvalidInput, MsgNotAFolder)
}
