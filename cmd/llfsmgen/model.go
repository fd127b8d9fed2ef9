package main

import (
	"github.com/llfsmgen/llfsmgen"
	"github.com/spf13/cobra"
)

var modelCmd = &cobra.Command{
	Use:   "model [--export-model] <path>",
	Short: "Compile a model into its machine, or export a machine back into a model",
	Long: `Reads model.json from a .machine or .arrangement folder and writes the compiled
machine.json (or the assembled arrangement.json). With --export-model the direction
is reversed and model.json is regenerated from the compiled files.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		export, _ := cmd.Flags().GetBool("export-model")
		return run(cmd, llfsmgen.ModelCommand{Path: args[0], ExportModel: export}, "Model updated for "+args[0])
	},
}

func init() {
	rootCmd.AddCommand(modelCmd)
	modelCmd.Flags().Bool("export-model", false, "Generate model.json from the compiled machine or arrangement")
}
