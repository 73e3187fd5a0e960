package tidy

import (
	"github.com/matzehuels/tidytree/pkg/tree"
)

// Position is the grid coordinate of one node.
type Position struct {
	Depth  int `json:"depth"`
	Column int `json:"column"`
}

// Placement is one laid-out node. Parent, Left and Right index into
// Layout.Nodes and are -1 when absent.
type Placement struct {
	Position
	Label  string
	Offset int
	Parent int
	Left   int
	Right  int
}

// Layout is the result of Build. Nodes are in preorder, so Nodes[0] is the
// root of a non-empty layout.
type Layout struct {
	Separation int
	Strategy   Strategy
	Width      int // columns spanned; 0 when empty
	Height     int // levels; 0 when empty
	Nodes      []Placement

	index map[tree.TreeView]int
}

// Build lays out the tree rooted at root. A nil root yields an empty
// layout. The input must be acyclic; see tree.Validate.
func Build(root tree.TreeView, opts Options) (*Layout, error) {
	opts = opts.WithDefaults()
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	out := &Layout{Separation: opts.Separation, Strategy: opts.Strategy}

	sroot, count := shadow(root)
	if sroot == nil {
		return out, nil
	}
	if err := checkRange(count, opts.Separation); err != nil {
		return nil, err
	}

	b := newBuilder(opts)
	b.contours(sroot)
	b.resolve(sroot)
	out.collect(sroot, count)
	return out, nil
}

// collect flattens the resolved shadow tree into preorder placements and
// shifts every column so the leftmost node is at column 0.
func (l *Layout) collect(root *node, count int) {
	minCol, maxCol := root.column, root.column
	preorder(root, func(n *node) {
		minCol = min(minCol, n.column)
		maxCol = max(maxCol, n.column)
	})

	l.Nodes = make([]Placement, 0, count)
	l.index = make(map[tree.TreeView]int, count)
	parents := map[*node]int{root: -1}
	preorder(root, func(n *node) {
		n.index = len(l.Nodes)
		parent := parents[n]
		delete(parents, n)
		l.Nodes = append(l.Nodes, Placement{
			Position: Position{Depth: n.depth, Column: n.column - minCol},
			Label:    n.label,
			Offset:   n.offset,
			Parent:   parent,
			Left:     -1,
			Right:    -1,
		})
		l.index[n.view] = n.index
		l.Height = max(l.Height, n.depth+1)
		if parent >= 0 {
			// Child offsets are never 0: a left child is always negative.
			p := &l.Nodes[parent]
			if n.offset < 0 {
				p.Left = n.index
			} else {
				p.Right = n.index
			}
		}
		if n.left != nil {
			parents[n.left] = n.index
		}
		if n.right != nil {
			parents[n.right] = n.index
		}
	})
	l.Width = maxCol - minCol + 1
}

// Len returns the number of placed nodes.
func (l *Layout) Len() int { return len(l.Nodes) }

// Empty reports whether the layout has no nodes.
func (l *Layout) Empty() bool { return len(l.Nodes) == 0 }

// Position returns the coordinate assigned to v.
func (l *Layout) Position(v tree.TreeView) (Position, bool) {
	i, ok := l.index[v]
	if !ok {
		return Position{}, false
	}
	return l.Nodes[i].Position, true
}

// Positions returns the coordinate of every source node, keyed by view.
// It is empty for layouts decoded from JSON, which carry no source tree.
func (l *Layout) Positions() map[tree.TreeView]Position {
	out := make(map[tree.TreeView]Position, len(l.index))
	for v, i := range l.index {
		out[v] = l.Nodes[i].Position
	}
	return out
}

// Children returns the indices of the left and right children of node i,
// -1 where absent.
func (l *Layout) Children(i int) (left, right int) {
	return l.Nodes[i].Left, l.Nodes[i].Right
}
