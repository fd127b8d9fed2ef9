package graph

import (
	"fmt"
	"strings"

	"github.com/llfsmgen/llfsmgen/pkg/domain"
)

// GenerateDOT produces a graphviz digraph of a Kripke structure. Node IDs are
// quoted as-is; the initial node is drawn with a double border.
func GenerateDOT(structure domain.KripkeStructure) string {
	var sb strings.Builder
	sb.WriteString("digraph {\n")

	for i, node := range structure.Nodes {
		shape := "box"
		if i == 0 {
			shape = "doublecircle"
		}
		sb.WriteString(fmt.Sprintf("    %s [shape=%s, label=%s];\n",
			dotQuote(node.ID), shape, dotQuote(strings.Join(append([]string{nodeName(node)}, properties(node)...), "\n"))))
	}

	for _, source := range edgeSources(structure) {
		for _, edge := range structure.Edges[source] {
			sb.WriteString(fmt.Sprintf("    %s -> %s [label=%s];\n",
				dotQuote(source), dotQuote(edge.Target), dotQuote(edgeLabel(edge))))
		}
	}

	sb.WriteString("}\n")
	return sb.String()
}

func dotQuote(s string) string {
	s = strings.ReplaceAll(s, "\\", "\\\\")
	s = strings.ReplaceAll(s, "\"", "\\\"")
	s = strings.ReplaceAll(s, "\n", "\\n")
	return "\"" + s + "\""
}
