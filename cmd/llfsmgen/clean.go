package main

import (
	"github.com/llfsmgen/llfsmgen"
	"github.com/spf13/cobra"
)

var cleanCmd = &cobra.Command{
	Use:   "clean [--clean-build-folder] <path>",
	Short: "Remove generated files from a machine or arrangement folder",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		buildOnly, _ := cmd.Flags().GetBool("clean-build-folder")
		return run(cmd, llfsmgen.CleanCommand{Path: args[0], BuildFolderOnly: buildOnly}, "Cleaned "+args[0])
	},
}

func init() {
	rootCmd.AddCommand(cleanCmd)
	cleanCmd.Flags().Bool("clean-build-folder", false, "Only remove the build folder")
}
