// Package mcp exposes generator operations as Model Context Protocol tools.
package mcp

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/llfsmgen/llfsmgen"
	"github.com/llfsmgen/llfsmgen/pkg/domain"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// Generator is the part of llfsmgen.Generator used by the tools.
type Generator interface {
	Run(ctx context.Context, cmd llfsmgen.Command) error
	Graph(ctx context.Context, cmd llfsmgen.GraphCommand) (string, error)
	ReportText(path string) (string, error)
}

// Server wraps a Generator as an MCP server. Tool calls run one at a time.
type Server struct {
	gen       Generator
	mcpServer *server.MCPServer
	tools     []string

	mu sync.Mutex
}

// NewServer creates a new MCP Server instance.
func NewServer(gen Generator) *Server {
	s := &Server{
		gen:       gen,
		mcpServer: server.NewMCPServer("llfsmgen-mcp", strings.TrimSpace(llfsmgen.Version)),
	}
	s.registerTools()
	return s
}

// ServeStdio starts the server on Stdin/Stdout.
func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.mcpServer)
}

// Tools returns the names of the registered tools.
func (s *Server) Tools() []string {
	return append([]string(nil), s.tools...)
}

func (s *Server) addTool(tool mcp.Tool, handler server.ToolHandlerFunc) {
	s.tools = append(s.tools, tool.Name)
	s.mcpServer.AddTool(tool, handler)
}

func (s *Server) registerTools() {
	pathArg := mcp.WithString("path", mcp.Required(), mcp.Description("Path to a .machine or .arrangement folder"))

	s.addTool(mcp.NewTool("model",
		mcp.WithDescription("Compile model.json into machine.json (or arrangement.json). With export_model, regenerate model.json from the compiled document."),
		pathArg,
		mcp.WithBoolean("export_model", mcp.Description("Regenerate model.json instead")),
	), s.handleModel)

	s.addTool(mcp.NewTool("vhdl",
		mcp.WithDescription("Generate VHDL for a machine, or build every machine of an arrangement."),
		pathArg,
		mcp.WithBoolean("include_kripke_structure", mcp.Description("Generate the Kripke structure program instead")),
	), s.handleVHDL)

	s.addTool(mcp.NewTool("clean",
		mcp.WithDescription("Remove the generated files of a machine or arrangement."),
		pathArg,
		mcp.WithBoolean("clean_build_folder", mcp.Description("Only remove the build folder")),
	), s.handleClean)

	s.addTool(mcp.NewTool("report",
		mcp.WithDescription("Summarise the states, variables and Kripke structure of a machine."),
		mcp.WithString("path", mcp.Required(), mcp.Description("Path to a .machine folder")),
	), s.handleReport)

	s.addTool(mcp.NewTool("graph",
		mcp.WithDescription("Render a Kripke structure to a graphviz or Mermaid file."),
		mcp.WithString("path", mcp.Required(), mcp.Description("Path to output.json, or to a .machine folder with is_machine")),
		mcp.WithBoolean("is_machine", mcp.Description("Whether path is a machine folder")),
		mcp.WithString("destination", mcp.Description("Directory or file to write")),
		mcp.WithString("format", mcp.Description("dot (default) or mermaid")),
	), s.handleGraph)
}

func (s *Server) run(ctx context.Context, cmd llfsmgen.Command, done string) (*mcp.CallToolResult, error) {
	s.mu.Lock()
	err := s.gen.Run(ctx, cmd)
	s.mu.Unlock()
	if err != nil {
		return toolError(err), nil
	}
	return mcp.NewToolResultText(done), nil
}

func (s *Server) handleModel(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	path, err := request.RequireString("path")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	cmd := llfsmgen.ModelCommand{Path: path, ExportModel: request.GetBool("export_model", false)}
	if cmd.ExportModel {
		return s.run(ctx, cmd, "Exported model.json for "+path)
	}
	return s.run(ctx, cmd, "Compiled "+path)
}

func (s *Server) handleVHDL(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	path, err := request.RequireString("path")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	cmd := llfsmgen.VHDLCommand{Path: path, IncludeKripkeStructure: request.GetBool("include_kripke_structure", false)}
	return s.run(ctx, cmd, "Generated VHDL for "+path)
}

func (s *Server) handleClean(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	path, err := request.RequireString("path")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	cmd := llfsmgen.CleanCommand{Path: path, BuildFolderOnly: request.GetBool("clean_build_folder", false)}
	return s.run(ctx, cmd, "Cleaned "+path)
}

func (s *Server) handleReport(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	path, err := request.RequireString("path")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	s.mu.Lock()
	text, err := s.gen.ReportText(path)
	s.mu.Unlock()
	if err != nil {
		return toolError(err), nil
	}
	return mcp.NewToolResultText(text), nil
}

func (s *Server) handleGraph(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	path, err := request.RequireString("path")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	s.mu.Lock()
	written, err := s.gen.Graph(ctx, llfsmgen.GraphCommand{
		Path:        path,
		IsMachine:   request.GetBool("is_machine", false),
		Destination: request.GetString("destination", ""),
		Format:      request.GetString("format", ""),
	})
	s.mu.Unlock()
	if err != nil {
		return toolError(err), nil
	}
	return mcp.NewToolResultText("Wrote " + written), nil
}

// toolError reports failures to the client as tool results, prefixed with
// the error kind when there is one.
func toolError(err error) *mcp.CallToolResult {
	var ge *domain.GenerationError
	if errors.As(err, &ge) {
		return mcp.NewToolResultError(fmt.Sprintf("%s: %v", ge.Kind, err))
	}
	return mcp.NewToolResultError(err.Error())
}
