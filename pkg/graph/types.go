package graph

import (
	"cmp"
	"slices"
)

// =============================================================================
// Constants
// =============================================================================

// Edge sides.
const (
	SideLeft  = "left"
	SideRight = "right"
)

// =============================================================================
// Layout - Tree Layout Serialization
// =============================================================================

// Layout is the canonical serialization format for a computed tree layout.
type Layout struct {
	Width      int    `json:"width"`
	Height     int    `json:"height"`
	Separation int    `json:"separation"`
	Strategy   string `json:"strategy,omitempty"`
	Nodes      []Node `json:"nodes"`
	Edges      []Edge `json:"edges"`
}

// Rows groups node IDs by depth, each row ordered by column.
func (l *Layout) Rows() [][]int {
	rows := make([][]int, l.Height)
	for _, n := range l.Nodes {
		if n.Depth < 0 || n.Depth >= l.Height {
			continue
		}
		rows[n.Depth] = append(rows[n.Depth], n.ID)
	}
	for _, row := range rows {
		slices.SortFunc(row, func(a, b int) int {
			return cmp.Compare(l.Nodes[a].Column, l.Nodes[b].Column)
		})
	}
	return rows
}

// =============================================================================
// Node - Placed Tree Node
// =============================================================================

// Node is one placed tree node. Offset is the column relative to the parent.
type Node struct {
	ID     int    `json:"id"`
	Label  string `json:"label"`
	Depth  int    `json:"depth"`
	Column int    `json:"column"`
	Offset int    `json:"offset,omitempty"`
}

// =============================================================================
// Edge - Parent to Child Link
// =============================================================================

// Edge links a parent to one of its children.
type Edge struct {
	From int    `json:"from"`
	To   int    `json:"to"`
	Side string `json:"side"`
}
