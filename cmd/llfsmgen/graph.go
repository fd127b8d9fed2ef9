package main

import (
	"github.com/llfsmgen/llfsmgen"
	"github.com/llfsmgen/llfsmgen/internal/presentation/tui"
	"github.com/spf13/cobra"
)

// graphCmd represents the graph command
var graphCmd = &cobra.Command{
	Use:   "graph [--machine] [--destination d] [--format dot|mermaid] <path>",
	Short: "Export the Kripke structure of a machine as a graph",
	Long: `Reads output.json, the Kripke structure generated by vhdl --include-kripke-structure,
and writes it as a graphviz (dot) or Mermaid diagram.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		isMachine, _ := cmd.Flags().GetBool("machine")
		destination, _ := cmd.Flags().GetString("destination")
		format, _ := cmd.Flags().GetString("format")

		gen := newGenerator(cmd, false)
		file, err := gen.Graph(cmd.Context(), llfsmgen.GraphCommand{
			Path:        args[0],
			IsMachine:   isMachine,
			Destination: destination,
			Format:      format,
		})
		if path := settings.config.MetricsFile; path != "" {
			if werr := gen.WriteMetrics(path); werr != nil {
				settings.logger.Warn("Failed to write metrics", "path", path, "error", werr)
			}
		}
		if err != nil {
			return err
		}
		tui.NewStatus(cmd.ErrOrStderr()).Success("Graph written to %s", file)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(graphCmd)
	graphCmd.Flags().Bool("machine", false, "Path is a .machine folder rather than the folder holding output.json")
	graphCmd.Flags().String("destination", "", "File or directory receiving the graph")
	graphCmd.Flags().String("format", "dot", "Graph format: dot or mermaid")
}
