package tree

// Walk visits every node reachable from root in preorder (node, left
// subtree, right subtree) together with its depth. Returning false from fn
// stops the walk. Walk uses an explicit stack, so arbitrarily deep trees are
// safe, but it does not guard against cycles; run [Validate] first on
// untrusted input.
func Walk(root TreeView, fn func(v TreeView, depth int) bool) {
	if root == nil {
		return
	}

	type frame struct {
		view  TreeView
		depth int
	}
	stack := []frame{{root, 0}}
	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if !fn(f.view, f.depth) {
			return
		}
		// Right is pushed first so that left is visited first.
		if f.view.HasRight() {
			stack = append(stack, frame{f.view.Right(), f.depth + 1})
		}
		if f.view.HasLeft() {
			stack = append(stack, frame{f.view.Left(), f.depth + 1})
		}
	}
}

// Count returns the number of nodes in the tree rooted at root.
func Count(root TreeView) int {
	n := 0
	Walk(root, func(TreeView, int) bool {
		n++
		return true
	})
	return n
}

// Height returns the number of levels in the tree: 0 for an empty tree and
// 1 for a single node.
func Height(root TreeView) int {
	h := 0
	Walk(root, func(_ TreeView, depth int) bool {
		h = max(h, depth+1)
		return true
	})
	return h
}
