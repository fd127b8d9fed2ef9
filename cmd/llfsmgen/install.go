package main

import (
	"github.com/llfsmgen/llfsmgen"
	"github.com/spf13/cobra"
)

var installCmd = &cobra.Command{
	Use:   "install [--vivado] <path> <install-path>",
	Short: "Copy the generated VHDL into another folder or a Vivado project",
	Long: `Copies build/vhdl of a machine or arrangement into install-path. With --vivado,
install-path is a folder holding a single .xpr project and the files are copied into
its sources directory (vivado.sources_dir in the config).`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		vivado, _ := cmd.Flags().GetBool("vivado")
		c := llfsmgen.InstallCommand{Path: args[0], InstallPath: args[1], Vivado: vivado}
		return run(cmd, c, "Installed "+args[0]+" into "+args[1])
	},
}

func init() {
	rootCmd.AddCommand(installCmd)
	installCmd.Flags().Bool("vivado", false, "Treat install-path as a Vivado project folder")
}
