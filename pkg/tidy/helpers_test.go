package tidy

import (
	"math/rand/v2"
	"slices"
	"strconv"
	"testing"

	"github.com/matzehuels/tidytree/pkg/tree"
)

func mustParse(t *testing.T, text string) *tree.Node {
	t.Helper()
	root, err := tree.ParseLevelOrder(text)
	if err != nil {
		t.Fatalf("ParseLevelOrder(%q): %v", text, err)
	}
	return root
}

func mustBuild(t *testing.T, root *tree.Node, opts Options) *Layout {
	t.Helper()
	l, err := Build(root.View(), opts)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	return l
}

func columns(l *Layout) []int {
	out := make([]int, len(l.Nodes))
	for i, n := range l.Nodes {
		out[i] = n.Column
	}
	return out
}

// randomTree grows a tree of n nodes labeled by creation order. Each new
// node attaches to a random free child slot.
func randomTree(r *rand.Rand, n int) *tree.Node {
	if n == 0 {
		return nil
	}
	root := tree.Leaf("0")
	type slot struct {
		parent *tree.Node
		left   bool
	}
	free := []slot{{root, true}, {root, false}}
	for i := 1; i < n; i++ {
		k := r.IntN(len(free))
		s := free[k]
		free[k] = free[len(free)-1]
		free = free[:len(free)-1]
		c := tree.Leaf(strconv.Itoa(i))
		if s.left {
			s.parent.LeftChild = c
		} else {
			s.parent.RightChild = c
		}
		free = append(free, slot{c, true}, slot{c, false})
	}
	return root
}

// chain builds a path of n nodes. pattern picks the side of each link in
// turn, true meaning left.
func chain(n int, pattern ...bool) *tree.Node {
	if n == 0 {
		return nil
	}
	root := tree.Leaf("0")
	cur := root
	for i := 1; i < n; i++ {
		c := tree.Leaf(strconv.Itoa(i))
		if pattern[(i-1)%len(pattern)] {
			cur.LeftChild = c
		} else {
			cur.RightChild = c
		}
		cur = c
	}
	return root
}

func mirror(n *tree.Node) *tree.Node {
	if n == nil {
		return nil
	}
	return tree.New(n.Val, mirror(n.RightChild), mirror(n.LeftChild))
}

// checkInvariants verifies the structural guarantees every layout makes.
func checkInvariants(t *testing.T, l *Layout) {
	t.Helper()
	if l.Empty() {
		if l.Width != 0 || l.Height != 0 {
			t.Errorf("empty layout has frame %dx%d", l.Width, l.Height)
		}
		return
	}
	seen := make(map[Position]int, len(l.Nodes))
	levels := make([][]int, l.Height)
	minCol, maxCol := l.Nodes[0].Column, l.Nodes[0].Column
	for i, n := range l.Nodes {
		if j, ok := seen[n.Position]; ok {
			t.Errorf("nodes %d and %d share %+v", j, i, n.Position)
		}
		seen[n.Position] = i
		if n.Column < 0 || n.Column >= l.Width {
			t.Errorf("node %d column %d outside [0,%d)", i, n.Column, l.Width)
		}
		if n.Depth < 0 || n.Depth >= l.Height {
			t.Errorf("node %d depth %d outside [0,%d)", i, n.Depth, l.Height)
		}
		minCol, maxCol = min(minCol, n.Column), max(maxCol, n.Column)
		levels[n.Depth] = append(levels[n.Depth], n.Column)

		if n.Left >= 0 {
			c := l.Nodes[n.Left]
			if c.Column >= n.Column || c.Depth != n.Depth+1 || c.Parent != i {
				t.Errorf("left child %d of %d misplaced: %+v under %+v", n.Left, i, c, n)
			}
		}
		if n.Right >= 0 {
			c := l.Nodes[n.Right]
			if c.Column <= n.Column || c.Depth != n.Depth+1 || c.Parent != i {
				t.Errorf("right child %d of %d misplaced: %+v under %+v", n.Right, i, c, n)
			}
		}
	}
	if minCol != 0 || maxCol != l.Width-1 {
		t.Errorf("columns span [%d,%d], want [0,%d]", minCol, maxCol, l.Width-1)
	}
	for d, cols := range levels {
		slices.Sort(cols)
		for k := 1; k < len(cols); k++ {
			if cols[k]-cols[k-1] < l.Separation {
				t.Errorf("depth %d: columns %d and %d closer than %d", d, cols[k-1], cols[k], l.Separation)
			}
		}
	}
}

// allOptions enumerates every strategy and traversal combination.
func allOptions(sep int) []Options {
	var out []Options
	for _, s := range []Strategy{StrategyLevels, StrategyThreaded} {
		for _, tr := range []Traversal{TraversalRecursive, TraversalIterative} {
			out = append(out, Options{Separation: sep, Strategy: s, Traversal: tr})
		}
	}
	return out
}
