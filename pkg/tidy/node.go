package tidy

import (
	"math"

	errs "github.com/matzehuels/tidytree/pkg/errors"
	"github.com/matzehuels/tidytree/pkg/tree"
)

// node is the engine's private shadow of one source node. Child links are
// exclusive to the shadow tree and are never rewritten.
type node struct {
	view   tree.TreeView
	label  string
	left   *node
	right  *node
	depth  int
	offset int // relative to the parent; 0 for the root
	column int
	index  int // preorder position in the exported layout

	// threaded marks a node that is the source of a thread.
	threaded bool

	// Per-subtree results of the contour pass. Each strategy uses its own
	// field and releases a child's data once the parent has consumed it.
	contour      contour
	lmost, rmost extreme
}

// shadow copies the structure of root into a fresh shadow tree, assigning
// depths on the way down. It returns the shadow root and the node count.
// The walk uses an explicit stack so skewed inputs cannot exhaust the
// goroutine stack.
func shadow(root tree.TreeView) (*node, int) {
	if root == nil {
		return nil, 0
	}
	r := &node{view: root, label: root.Label()}
	count := 1
	stack := []*node{r}
	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if n.view.HasLeft() {
			n.left = child(n, n.view.Left())
			stack = append(stack, n.left)
			count++
		}
		if n.view.HasRight() {
			n.right = child(n, n.view.Right())
			stack = append(stack, n.right)
			count++
		}
	}
	return r, count
}

func child(parent *node, v tree.TreeView) *node {
	return &node{view: v, label: v.Label(), depth: parent.depth + 1}
}

// checkRange refuses trees whose cumulative offsets could exceed the int
// range. Every node widens the drawing by at most sep+1 columns.
func checkRange(count, sep int) error {
	if count > (math.MaxInt-1)/(sep+1) {
		return errs.New(errs.ErrCodeOverflow,
			"tree of %d nodes with separation %d exceeds the coordinate range", count, sep)
	}
	return nil
}

// half returns ⌈x/2⌉ for non-negative x.
func half(x int) int {
	return (x + 1) / 2
}
