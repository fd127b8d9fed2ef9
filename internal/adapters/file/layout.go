package file

import "path/filepath"

// File and folder names inside machine and arrangement folders.
const (
	ModelFile       = "model.json"
	MachineFile     = "machine.json"
	ArrangementFile = "arrangement.json"
	KripkeFile      = "output.json"
	BuildDir        = "build"
	VHDLDir         = "vhdl"
)

// ModelPath returns <folder>/model.json.
func ModelPath(folder string) string { return filepath.Join(folder, ModelFile) }

// MachinePath returns <folder>/machine.json.
func MachinePath(folder string) string { return filepath.Join(folder, MachineFile) }

// ArrangementPath returns <folder>/arrangement.json.
func ArrangementPath(folder string) string { return filepath.Join(folder, ArrangementFile) }

// KripkePath returns <folder>/output.json.
func KripkePath(folder string) string { return filepath.Join(folder, KripkeFile) }

// BuildPath returns <folder>/build.
func BuildPath(folder string) string { return filepath.Join(folder, BuildDir) }

// VHDLPath returns <folder>/build/vhdl.
func VHDLPath(folder string) string { return filepath.Join(folder, BuildDir, VHDLDir) }
