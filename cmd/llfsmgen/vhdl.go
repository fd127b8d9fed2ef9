package main

import (
	"github.com/llfsmgen/llfsmgen"
	"github.com/spf13/cobra"
)

var vhdlCmd = &cobra.Command{
	Use:   "vhdl [--include-kripke-structure] <path>",
	Short: "Generate the VHDL of a machine or arrangement",
	Long: `Compiles the model of a .machine folder into build/vhdl/<Name>.vhd. An .arrangement
folder is built into build/vhdl together with every machine it instantiates.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		kripke, _ := cmd.Flags().GetBool("include-kripke-structure")
		return run(cmd, llfsmgen.VHDLCommand{Path: args[0], IncludeKripkeStructure: kripke}, "VHDL generated for "+args[0])
	},
}

func init() {
	rootCmd.AddCommand(vhdlCmd)
	vhdlCmd.Flags().Bool("include-kripke-structure", false, "Also generate the Kripke structure of the machine")
}
