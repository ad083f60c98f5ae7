package statemachines

import (
	"errors"
	"fmt"
	"os"

	"github.com/apfeiffer1/selenium-state-machines/internal/presentation/graph"
)

// Format selects the textual graph syntax used by WriteToFile.
type Format string

const (
	// FormatDOT emits Graphviz DOT, renderable with `dot -Tsvg`.
	FormatDOT Format = "dot"
	// FormatMermaid emits a Mermaid flowchart for embedding in markdown.
	FormatMermaid Format = "mermaid"
)

// WriteToFile serializes the machine's reachable graph to path: states as
// nodes labeled with their name, transitions as directed edges labeled
// with theirs. The export reflects static structure only, never the path
// a run actually took, and it remains available after a failed run.
func (m *StateMachine) WriteToFile(path string, format Format) error {
	return m.writeGraph(path, format, nil)
}

// WriteRunToFile serializes the graph like WriteToFile but colors it with
// the outcome of result: the visited path in green, and on failure the
// failing state plus the transition that led into it in red.
func (m *StateMachine) WriteRunToFile(path string, format Format, result *RunResult) error {
	if result == nil {
		return fmt.Errorf("write run graph: result must not be nil")
	}
	return m.writeGraph(path, format, runOverlay(result))
}

func (m *StateMachine) writeGraph(path string, format Format, overlay *graph.Overlay) error {
	g := m.buildGraph()

	var out string
	switch format {
	case FormatDOT:
		out = graph.DOT(g, overlay)
	case FormatMermaid:
		out = graph.Mermaid(g, overlay)
	default:
		return fmt.Errorf("unsupported graph format %q", format)
	}

	if err := os.WriteFile(path, []byte(out), 0o644); err != nil {
		return fmt.Errorf("write graph file: %w", err)
	}
	return nil
}

// buildGraph collects the states reachable from the start transition with
// a stack traversal (cycles and shared targets are fine) and flattens
// them, plus their outgoing transitions, into the renderer model.
// Registered states that no transition reaches are omitted.
func (m *StateMachine) buildGraph() graph.Graph {
	g := graph.Graph{Name: m.name}

	reachable := make(map[string]bool)
	var stack []*State
	if m.start != nil && m.start.target != nil {
		stack = append(stack, m.start.target)
	}
	for len(stack) > 0 {
		s := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if reachable[s.name] {
			continue
		}
		reachable[s.name] = true
		for _, t := range s.outgoing {
			if t.target != nil && !reachable[t.target.name] {
				stack = append(stack, t.target)
			}
		}
	}

	// Emit in insertion order for deterministic output.
	for _, s := range m.stateOrder {
		if reachable[s.name] {
			g.Nodes = append(g.Nodes, graph.Node{ID: s.name})
		}
	}
	for _, t := range m.transitionOrder {
		if t.target == nil {
			continue
		}
		if t.source == nil {
			g.Edges = append(g.Edges, graph.Edge{Label: t.name, To: t.target.name})
			continue
		}
		if reachable[t.source.name] {
			g.Edges = append(g.Edges, graph.Edge{Label: t.name, From: t.source.name, To: t.target.name})
		}
	}
	return g
}

// runOverlay converts a run's recorded path into renderer styling.
func runOverlay(result *RunResult) *graph.Overlay {
	o := &graph.Overlay{}
	for _, step := range result.Steps {
		o.VisitedEdges = append(o.VisitedEdges, step.Transition)
		o.VisitedNodes = append(o.VisitedNodes, step.State)
	}
	var aerr *AssertionError
	if len(result.Steps) > 0 && errors.As(result.Err, &aerr) {
		o.FailedNode = aerr.State
		o.FailedEdge = result.Steps[len(result.Steps)-1].Transition
	}
	return o
}
