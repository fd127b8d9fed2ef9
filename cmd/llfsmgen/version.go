package main

import (
	"fmt"

	"github.com/llfsmgen/llfsmgen"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of llfsmgen",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		_, err := fmt.Fprintf(cmd.OutOrStdout(), "llfsmgen version %s\n", llfsmgen.Version)
		return err
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
