package graph_test

import (
	"strings"
	"testing"

	"github.com/apfeiffer1/selenium-state-machines/internal/presentation/graph"
)

func TestMermaid(t *testing.T) {
	tests := []struct {
		name     string
		graph    graph.Graph
		overlay  *graph.Overlay
		contains []string
	}{
		{
			name: "Nodes And Edges",
			graph: graph.Graph{
				Name:  "login",
				Nodes: []graph.Node{{ID: "login_page"}, {ID: "dashboard"}},
				Edges: []graph.Edge{
					{Label: "open_login", From: "", To: "login_page"},
					{Label: "submit", From: "login_page", To: "dashboard"},
				},
			},
			contains: []string{
				"graph TD",
				`login_page["login_page"]`,
				`dashboard["dashboard"]`,
				`__start -- "open_login" --> login_page`,
				`login_page -- "submit" --> dashboard`,
			},
		},
		{
			name: "ID Sanitization",
			graph: graph.Graph{
				Nodes: []graph.Node{{ID: "checkout-page"}, {ID: "cart.summary"}},
			},
			contains: []string{
				`checkout_page["checkout-page"]`,
				`cart_summary["cart.summary"]`,
			},
		},
		{
			name: "Label Escaping",
			graph: graph.Graph{
				Nodes: []graph.Node{{ID: "a"}, {ID: "b"}},
				Edges: []graph.Edge{{Label: `click "buy"`, From: "a", To: "b"}},
			},
			contains: []string{
				`-- "click 'buy'" -->`,
			},
		},
		{
			name: "Run Overlay",
			graph: graph.Graph{
				Nodes: []graph.Node{{ID: "ok"}, {ID: "broken"}},
				Edges: []graph.Edge{{Label: "go", From: "ok", To: "broken"}},
			},
			overlay: &graph.Overlay{
				VisitedNodes: []string{"ok", "broken"},
				FailedNode:   "broken",
			},
			contains: []string{
				"class ok visited;",
				"class broken failed;",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := graph.Mermaid(tt.graph, tt.overlay)
			for _, want := range tt.contains {
				if !strings.Contains(got, want) {
					t.Errorf("Mermaid() = \n%v\nWant substring: %v", got, want)
				}
			}
		})
	}
}
