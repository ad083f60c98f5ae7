package graph

import (
	"fmt"
	"strings"
)

// Mermaid renders the graph as a Mermaid flowchart (graph TD), handy for
// pasting into markdown docs. States are rectangles, the entry point a
// small circle, and edges carry the transition name. Overlay styling
// follows the same green/red convention as DOT.
func Mermaid(g Graph, overlay *Overlay) string {
	var sb strings.Builder
	sb.WriteString("graph TD\n")
	sb.WriteString(fmt.Sprintf("    %s((\" \"))\n", StartMarker))

	for _, n := range g.Nodes {
		sb.WriteString(fmt.Sprintf("    %s[\"%s\"]\n", sanitizeID(n.ID), escapeLabel(n.ID)))
	}

	for _, e := range g.Edges {
		from := StartMarker
		if e.From != "" {
			from = sanitizeID(e.From)
		}
		sb.WriteString(fmt.Sprintf("    %s -- \"%s\" --> %s\n",
			from, escapeLabel(e.Label), sanitizeID(e.To)))
	}

	if overlay != nil {
		sb.WriteString("\n    %% Run overlay\n")
		sb.WriteString("    classDef visited fill:#e8f5e9,stroke:#1b5e20,stroke-width:2px,color:#000;\n")
		sb.WriteString("    classDef failed fill:#ffebee,stroke:#b71c1c,stroke-width:4px,color:#000;\n")

		seen := make(map[string]bool)
		for _, id := range overlay.VisitedNodes {
			safe := sanitizeID(id)
			if safe == "" || seen[safe] || id == overlay.FailedNode {
				continue
			}
			seen[safe] = true
			sb.WriteString(fmt.Sprintf("    class %s visited;\n", safe))
		}
		if overlay.FailedNode != "" {
			sb.WriteString(fmt.Sprintf("    class %s failed;\n", sanitizeID(overlay.FailedNode)))
		}
	}

	return sb.String()
}
