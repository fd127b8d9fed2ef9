// Package graph renders Kripke structures for graphviz and Mermaid.
package graph

import (
	"fmt"
	"sort"

	"github.com/llfsmgen/llfsmgen/pkg/domain"
)

// Format selects the output language of the graph command.
type Format string

const (
	FormatDOT     Format = "dot"
	FormatMermaid Format = "mermaid"
)

// ParseFormat accepts "dot", "mermaid" or the empty string, which selects dot.
func ParseFormat(s string) (Format, error) {
	switch Format(s) {
	case "", FormatDOT:
		return FormatDOT, nil
	case FormatMermaid:
		return FormatMermaid, nil
	}
	return "", fmt.Errorf("unknown graph format %q", s)
}

// Extension is the file extension, including the dot, of files in this format.
func (f Format) Extension() string {
	if f == FormatMermaid {
		return ".mmd"
	}
	return ".dot"
}

// Render dispatches to the generator for f.
func Render(f Format, structure domain.KripkeStructure) string {
	if f == FormatMermaid {
		return GenerateMermaid(structure)
	}
	return GenerateDOT(structure)
}

// edgeSources lists the sources of edges: nodes in declared order first,
// then any dangling sources sorted.
func edgeSources(structure domain.KripkeStructure) []string {
	seen := make(map[string]bool, len(structure.Nodes))
	sources := make([]string, 0, len(structure.Edges))
	for _, node := range structure.Nodes {
		if seen[node.ID] {
			continue
		}
		seen[node.ID] = true
		if len(structure.Edges[node.ID]) > 0 {
			sources = append(sources, node.ID)
		}
	}
	var dangling []string
	for id := range structure.Edges {
		if !seen[id] {
			dangling = append(dangling, id)
		}
	}
	sort.Strings(dangling)
	return append(sources, dangling...)
}

func nodeName(node domain.KripkeNode) string {
	if node.State != "" {
		return node.State
	}
	return node.ID
}

// properties renders node properties as sorted "key = value" lines.
func properties(node domain.KripkeNode) []string {
	keys := make([]string, 0, len(node.Properties))
	for k := range node.Properties {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	lines := make([]string, len(keys))
	for i, k := range keys {
		lines[i] = k + " = " + node.Properties[k]
	}
	return lines
}

func edgeLabel(edge domain.KripkeEdge) string {
	return fmt.Sprintf("t=%d e=%d", edge.Time, edge.Energy)
}
