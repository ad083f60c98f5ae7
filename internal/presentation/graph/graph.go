// Package graph renders the static structure of a state machine as a
// textual directed-graph description (Graphviz DOT or Mermaid) for visual
// inspection. It only sees names and edges; traversal semantics live in
// the root package.
package graph

import "strings"

// Graph is the neutral description handed to the renderers: states as
// nodes, transitions as labeled directed edges, in insertion order.
type Graph struct {
	Name  string
	Nodes []Node
	Edges []Edge
}

// Node is a state.
type Node struct {
	ID string
}

// Edge is a transition. An empty From marks the machine's start
// transition, which has no source state; renderers draw it from a small
// entry marker.
type Edge struct {
	Label string
	From  string
	To    string
}

// Overlay carries the dynamic outcome of one run to color on top of the
// static structure: the visited path in green, the failing state and its
// incoming transition in red.
type Overlay struct {
	VisitedNodes []string
	VisitedEdges []string
	FailedNode   string
	FailedEdge   string
}

// StartMarker is the reserved identifier renderers use for the entry
// point node.
const StartMarker = "__start"

// sanitizeID makes a name safe for use as a DOT/Mermaid identifier.
func sanitizeID(id string) string {
	s := strings.ReplaceAll(id, ".", "_")
	s = strings.ReplaceAll(s, "-", "_")
	s = strings.ReplaceAll(s, "/", "_")
	s = strings.ReplaceAll(s, "\\", "_")
	s = strings.ReplaceAll(s, " ", "_")
	return s
}

// escapeLabel makes a name safe inside a double-quoted DOT string or a
// Mermaid label.
func escapeLabel(label string) string {
	return strings.ReplaceAll(label, `"`, `'`)
}

func contains(list []string, id string) bool {
	for _, v := range list {
		if v == id {
			return true
		}
	}
	return false
}
