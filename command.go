package llfsmgen

import "errors"

// ErrUnknownCommand is returned by Run for a nil Command.
var ErrUnknownCommand = errors.New("unknown command")

// Command is one of ModelCommand, VHDLCommand, CleanCommand, InstallCommand,
// ReportCommand or GraphCommand. The set is closed.
type Command interface {
	command()
}

// ModelCommand compiles model.json into machine.json (or arrangement.json),
// or with ExportModel projects the canonical document back into model.json.
type ModelCommand struct {
	Path        string
	ExportModel bool
}

// VHDLCommand generates the VHDL of a machine or builds an arrangement.
type VHDLCommand struct {
	Path                   string
	IncludeKripkeStructure bool
}

// CleanCommand removes generated files.
type CleanCommand struct {
	Path            string
	BuildFolderOnly bool
}

// InstallCommand copies generated VHDL into InstallPath, a directory or, with
// Vivado, a Vivado project.
type InstallCommand struct {
	Path        string
	InstallPath string
	Vivado      bool
}

// ReportCommand prints or writes a report of a machine.
type ReportCommand struct {
	Path   string
	Output string
	Pretty bool
}

// GraphCommand renders a Kripke structure. Format is "dot" (default) or
// "mermaid".
type GraphCommand struct {
	Path        string
	IsMachine   bool
	Destination string
	Format      string
}

func (ModelCommand) command()   {}
func (VHDLCommand) command()    {}
func (CleanCommand) command()   {}
func (InstallCommand) command() {}
func (ReportCommand) command()  {}
func (GraphCommand) command()   {}
