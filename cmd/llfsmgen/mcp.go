package main

import (
	"github.com/llfsmgen/llfsmgen/internal/adapters/mcp"
	"github.com/spf13/cobra"
)

// mcpCmd represents the mcp command
var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Run the Model Context Protocol (MCP) server",
	Long: `Starts llfsmgen as an MCP server over standard input and output, so agents can
compile, build, clean, report on and graph machines as tools. Logs go to stderr.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		srv := mcp.NewServer(newGenerator(cmd, false))
		settings.logger.Info("Starting llfsmgen MCP server (stdio)", "tools", srv.Tools())
		return srv.ServeStdio()
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}
