package ports

import (
	"errors"

	"github.com/llfsmgen/llfsmgen/pkg/domain"
)

// ErrDocumentIsDir is returned when a directory sits where a document belongs.
var ErrDocumentIsDir = errors.New("a directory exists at the document location")

// Workspace reads and writes the documents stored in machine and
// arrangement folders.
type Workspace interface {
	// LoadMachineModel reads model.json of a machine folder.
	LoadMachineModel(folder string) (domain.MachineModel, error)
	// SaveMachineModel replaces model.json of a machine folder.
	SaveMachineModel(folder string, model domain.MachineModel) error

	// LoadMachine reads machine.json of a machine folder.
	LoadMachine(folder string) (domain.Machine, error)
	// SaveMachine replaces machine.json of a machine folder.
	SaveMachine(folder string, machine domain.Machine) error

	LoadArrangementModel(folder string) (domain.ArrangementModel, error)
	SaveArrangementModel(folder string, model domain.ArrangementModel) error

	LoadArrangement(folder string) (domain.Arrangement, error)
	SaveArrangement(folder string, arrangement domain.Arrangement) error

	// RemoveMachine deletes machine.json of a machine folder. A missing
	// document is not an error.
	RemoveMachine(folder string) error
	// RemoveArrangement deletes arrangement.json of an arrangement folder. A
	// missing document is not an error.
	RemoveArrangement(folder string) error

	// LoadKripkeStructure reads a state space document from path.
	LoadKripkeStructure(path string) (domain.KripkeStructure, error)
}
