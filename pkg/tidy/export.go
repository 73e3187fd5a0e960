package tidy

import (
	"encoding/json"

	"github.com/matzehuels/tidytree/pkg/graph"
)

// Export converts l to its serialization format.
func (l *Layout) Export() graph.Layout {
	out := graph.Layout{
		Width:      l.Width,
		Height:     l.Height,
		Separation: l.Separation,
		Strategy:   string(l.Strategy),
		Nodes:      make([]graph.Node, len(l.Nodes)),
		Edges:      make([]graph.Edge, 0, max(len(l.Nodes)-1, 0)),
	}
	for i, p := range l.Nodes {
		out.Nodes[i] = graph.Node{
			ID:     i,
			Label:  p.Label,
			Depth:  p.Depth,
			Column: p.Column,
			Offset: p.Offset,
		}
		if p.Left >= 0 {
			out.Edges = append(out.Edges, graph.Edge{From: i, To: p.Left, Side: graph.SideLeft})
		}
		if p.Right >= 0 {
			out.Edges = append(out.Edges, graph.Edge{From: i, To: p.Right, Side: graph.SideRight})
		}
	}
	return out
}

// MarshalJSON encodes l in the graph.Layout wire format.
func (l *Layout) MarshalJSON() ([]byte, error) {
	return json.Marshal(l.Export())
}

// FromGraph rebuilds a Layout from its serialization format. The result has
// no source tree, so Position and Positions find nothing.
func FromGraph(g graph.Layout) (*Layout, error) {
	if err := graph.Validate(g); err != nil {
		return nil, err
	}
	out := &Layout{
		Separation: g.Separation,
		Strategy:   Strategy(g.Strategy),
		Width:      g.Width,
		Height:     g.Height,
		Nodes:      make([]Placement, len(g.Nodes)),
	}
	for i, n := range g.Nodes {
		out.Nodes[i] = Placement{
			Position: Position{Depth: n.Depth, Column: n.Column},
			Label:    n.Label,
			Offset:   n.Offset,
			Parent:   -1,
			Left:     -1,
			Right:    -1,
		}
	}
	for _, e := range g.Edges {
		out.Nodes[e.To].Parent = e.From
		if e.Side == graph.SideLeft {
			out.Nodes[e.From].Left = e.To
		} else {
			out.Nodes[e.From].Right = e.To
		}
	}
	return out, nil
}
