package ports

import (
	"context"
	"sort"

	"github.com/llfsmgen/llfsmgen/pkg/codegen"
)

// FileTree maps slash-separated relative paths to file contents.
type FileTree map[string][]byte

// Paths returns the paths of the tree in lexical order.
func (t FileTree) Paths() []string {
	paths := make([]string, 0, len(t))
	for p := range t {
		paths = append(paths, p)
	}
	sort.Strings(paths)
	return paths
}

// StateSpaceGenerator computes the state space of a machine and returns the
// artefacts to write under the machine's build folder.
type StateSpaceGenerator interface {
	Generate(ctx context.Context, rep *codegen.MachineRepresentation) (FileTree, error)
}

// RepresentationFactory builds the representation of one machine of an
// arrangement under the given entity name.
type RepresentationFactory = codegen.MachineFactory
