package graph

import (
	"fmt"
	"strings"
)

// DOT renders the graph in Graphviz DOT syntax: one node statement per
// state, one edge statement per transition. The start transition is drawn
// from a point-shaped entry marker. An optional overlay colors the visited
// path green and the failing state/transition red.
func DOT(g Graph, overlay *Overlay) string {
	var sb strings.Builder

	name := sanitizeID(g.Name)
	if name == "" {
		name = "statemachine"
	}
	sb.WriteString(fmt.Sprintf("digraph %s {\n", name))
	sb.WriteString("    rankdir=LR;\n")
	sb.WriteString("    fontsize=10;\n")
	sb.WriteString("    node [shape=Mrecord, fontname=\"monaco\", fontsize=10];\n")
	sb.WriteString(fmt.Sprintf("    %s [shape=point, label=\"\"];\n", StartMarker))

	for _, n := range g.Nodes {
		color := "black"
		switch {
		case overlay != nil && n.ID == overlay.FailedNode:
			color = "red"
		case overlay != nil && contains(overlay.VisitedNodes, n.ID):
			color = "darkgreen"
		}
		sb.WriteString(fmt.Sprintf("    %s [label=\"%s\", color=%s, fontcolor=%s];\n",
			sanitizeID(n.ID), escapeLabel(n.ID), color, color))
	}

	for _, e := range g.Edges {
		from := StartMarker
		if e.From != "" {
			from = sanitizeID(e.From)
		}
		color := "black"
		switch {
		case overlay != nil && e.Label == overlay.FailedEdge:
			color = "red"
		case overlay != nil && contains(overlay.VisitedEdges, e.Label):
			color = "darkgreen"
		}
		sb.WriteString(fmt.Sprintf("    %s -> %s [label=\"%s\", color=%s, fontcolor=%s];\n",
			from, sanitizeID(e.To), escapeLabel(e.Label), color, color))
	}

	sb.WriteString("}\n")
	return sb.String()
}
