/*
Package llfsmgen translates Logic-Labelled Finite State Machines (LLFSMs)
between their editor model and their canonical machine form, and generates
VHDL for machines and for arrangements of machines.

A machine lives in a folder named <Name>.machine holding model.json (the
editor model with layout), machine.json (the canonical machine) and, once
generated, build/vhdl/<Name>.vhd. An arrangement lives in <Name>.arrangement
and references machine folders; building it compiles every machine and merges
their VHDL with a top-level entity into build/vhdl.

# Commands

Every operation is a Command run by a Generator:

  - ModelCommand: model.json to machine.json, or back with ExportModel.
  - VHDLCommand: VHDL for a machine, or a full arrangement build.
  - CleanCommand: remove generated files.
  - InstallCommand: copy VHDL into a directory or a Vivado project.
  - ReportCommand: human readable summary of a machine.
  - GraphCommand: graphviz or Mermaid rendering of a Kripke structure.

# Usage

	package main

	import (
		"context"
		"log"

		"github.com/llfsmgen/llfsmgen"
	)

	func main() {
		gen := llfsmgen.New()
		ctx := context.Background()

		if err := gen.Run(ctx, llfsmgen.ModelCommand{Path: "PingMachine.machine"}); err != nil {
			log.Fatal(err)
		}
		if err := gen.Run(ctx, llfsmgen.VHDLCommand{Path: "PingMachine.machine"}); err != nil {
			log.Fatal(err)
		}
	}

Errors returned by commands wrap a domain.GenerationError; use errors.Is with
the kind sentinels of package domain (for example domain.ErrInvalidLayout) to
classify them.
*/
package llfsmgen
