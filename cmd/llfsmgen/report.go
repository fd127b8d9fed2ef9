package main

import (
	"github.com/llfsmgen/llfsmgen"
	"github.com/spf13/cobra"
)

var reportCmd = &cobra.Command{
	Use:   "report [-o file] [--pretty] <path>",
	Short: "Summarise the design of a machine",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		output, _ := cmd.Flags().GetString("output")
		pretty, _ := cmd.Flags().GetBool("pretty")
		done := ""
		if output != "" {
			done = "Report written to " + output
		}
		return run(cmd, llfsmgen.ReportCommand{Path: args[0], Output: output, Pretty: pretty}, done)
	},
}

func init() {
	rootCmd.AddCommand(reportCmd)
	reportCmd.Flags().StringP("output", "o", "", "Write the report to this file instead of stdout")
	reportCmd.Flags().Bool("pretty", false, "Render the report as styled markdown")
}
