package graph

import (
	"fmt"
	"strings"

	"github.com/llfsmgen/llfsmgen/pkg/domain"
)

// GenerateMermaid produces a Mermaid flowchart of a Kripke structure.
// The first node is the initial configuration and is drawn as a circle;
// every other node is a rectangle labelled with its state. Edges carry the
// time and energy of the step.
func GenerateMermaid(structure domain.KripkeStructure) string {
	var sb strings.Builder
	sb.WriteString("graph TD\n")

	for i, node := range structure.Nodes {
		opener, closer := "[", "]"
		if i == 0 {
			opener, closer = "((", "))"
		}
		sb.WriteString(fmt.Sprintf("    %s%s\"%s\"%s\n", sanitizeMermaidID(node.ID), opener, mermaidLabel(node), closer))
	}

	for _, source := range edgeSources(structure) {
		for _, edge := range structure.Edges[source] {
			sb.WriteString(fmt.Sprintf("    %s -- \"%s\" --> %s\n",
				sanitizeMermaidID(source), edgeLabel(edge), sanitizeMermaidID(edge.Target)))
		}
	}

	return sb.String()
}

func mermaidLabel(node domain.KripkeNode) string {
	lines := append([]string{nodeName(node)}, properties(node)...)
	// Mermaid labels break on double quotes.
	return strings.ReplaceAll(strings.Join(lines, "<br/>"), "\"", "'")
}

func sanitizeMermaidID(id string) string {
	s := strings.ReplaceAll(id, ".", "_")
	s = strings.ReplaceAll(s, "-", "_")
	s = strings.ReplaceAll(s, "/", "_")
	s = strings.ReplaceAll(s, "\\", "_")
	s = strings.ReplaceAll(s, " ", "_")
	return "n" + s
}
