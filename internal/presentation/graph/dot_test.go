package graph_test

import (
	"strings"
	"testing"

	"github.com/apfeiffer1/selenium-state-machines/internal/presentation/graph"
)

func TestDOT(t *testing.T) {
	g := graph.Graph{
		Name:  "login-flow",
		Nodes: []graph.Node{{ID: "login_page"}, {ID: "dashboard"}},
		Edges: []graph.Edge{
			{Label: "open_login", From: "", To: "login_page"},
			{Label: "submit", From: "login_page", To: "dashboard"},
		},
	}

	got := graph.DOT(g, nil)

	for _, want := range []string{
		"digraph login_flow {",
		`__start [shape=point, label=""];`,
		`login_page [label="login_page", color=black, fontcolor=black];`,
		`__start -> login_page [label="open_login", color=black, fontcolor=black];`,
		`login_page -> dashboard [label="submit", color=black, fontcolor=black];`,
	} {
		if !strings.Contains(got, want) {
			t.Errorf("DOT() missing substring %q in:\n%s", want, got)
		}
	}
}

func TestDOT_NodeAndEdgeCounts(t *testing.T) {
	// N states and M transitions must yield exactly N node statements and
	// M edge statements (plus the fixed entry marker).
	g := graph.Graph{
		Name:  "counts",
		Nodes: []graph.Node{{ID: "a"}, {ID: "b"}, {ID: "c"}},
		Edges: []graph.Edge{
			{Label: "t1", From: "", To: "a"},
			{Label: "t2", From: "a", To: "b"},
			{Label: "t3", From: "b", To: "c"},
			{Label: "t4", From: "c", To: "a"},
		},
	}

	got := graph.DOT(g, nil)

	nodeCount := strings.Count(got, "[label=") - strings.Count(got, "->")
	edgeCount := strings.Count(got, "->")
	if nodeCount != len(g.Nodes) {
		t.Errorf("expected %d node statements, got %d:\n%s", len(g.Nodes), nodeCount, got)
	}
	if edgeCount != len(g.Edges) {
		t.Errorf("expected %d edge statements, got %d:\n%s", len(g.Edges), edgeCount, got)
	}
}

func TestDOT_Overlay(t *testing.T) {
	g := graph.Graph{
		Name:  "overlay",
		Nodes: []graph.Node{{ID: "good"}, {ID: "bad"}},
		Edges: []graph.Edge{
			{Label: "enter", From: "", To: "good"},
			{Label: "break", From: "good", To: "bad"},
		},
	}
	overlay := &graph.Overlay{
		VisitedNodes: []string{"good", "bad"},
		VisitedEdges: []string{"enter"},
		FailedNode:   "bad",
		FailedEdge:   "break",
	}

	got := graph.DOT(g, overlay)

	for _, want := range []string{
		`good [label="good", color=darkgreen, fontcolor=darkgreen];`,
		`bad [label="bad", color=red, fontcolor=red];`,
		`__start -> good [label="enter", color=darkgreen, fontcolor=darkgreen];`,
		`good -> bad [label="break", color=red, fontcolor=red];`,
	} {
		if !strings.Contains(got, want) {
			t.Errorf("DOT() missing substring %q in:\n%s", want, got)
		}
	}
}
