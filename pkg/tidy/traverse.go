package tidy

// builder carries the state of one layout run: the resolved options and
// the thread table shared by the contour pass.
type builder struct {
	sep       int
	strategy  Strategy
	traversal Traversal
	threads   map[*node]thread
}

func newBuilder(o Options) *builder {
	return &builder{
		sep:       o.Separation,
		strategy:  o.Strategy,
		traversal: o.Traversal,
		threads:   make(map[*node]thread),
	}
}

// contours runs the bottom-up pass with the configured strategy.
func (b *builder) contours(root *node) {
	visit := b.mergeLevels
	if b.strategy == StrategyThreaded {
		visit = b.mergeThreaded
	}
	if b.traversal == TraversalIterative {
		postorderIterative(root, visit)
	} else {
		postorderRecursive(root, visit)
	}
}

// resolve runs the top-down pass, turning offsets into absolute columns
// with the root at column 0. Every thread is dropped on the way.
func (b *builder) resolve(root *node) {
	if b.traversal == TraversalIterative {
		b.resolveIterative(root)
	} else {
		b.resolveRecursive(root, 0)
	}
}

func (b *builder) petrify(n *node, column int) {
	n.column = column
	if n.threaded {
		delete(b.threads, n)
		n.threaded = false
	}
}

func (b *builder) resolveRecursive(n *node, column int) {
	b.petrify(n, column)
	if n.left != nil {
		b.resolveRecursive(n.left, column+n.left.offset)
	}
	if n.right != nil {
		b.resolveRecursive(n.right, column+n.right.offset)
	}
}

func (b *builder) resolveIterative(root *node) {
	b.petrify(root, 0)
	stack := []*node{root}
	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if n.right != nil {
			b.petrify(n.right, n.column+n.right.offset)
			stack = append(stack, n.right)
		}
		if n.left != nil {
			b.petrify(n.left, n.column+n.left.offset)
			stack = append(stack, n.left)
		}
	}
}

func postorderRecursive(n *node, visit func(*node)) {
	if n == nil {
		return
	}
	postorderRecursive(n.left, visit)
	postorderRecursive(n.right, visit)
	visit(n)
}

// postorderIterative visits children before parents, left before right,
// using an explicit stack.
func postorderIterative(root *node, visit func(*node)) {
	var (
		stack []*node
		last  *node
	)
	n := root
	for n != nil || len(stack) > 0 {
		if n != nil {
			stack = append(stack, n)
			n = n.left
			continue
		}
		top := stack[len(stack)-1]
		if top.right != nil && top.right != last {
			n = top.right
			continue
		}
		visit(top)
		last = top
		stack = stack[:len(stack)-1]
	}
}

// preorder calls fn for every node, parents first, left before right.
func preorder(root *node, fn func(*node)) {
	if root == nil {
		return
	}
	stack := []*node{root}
	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		fn(n)
		if n.right != nil {
			stack = append(stack, n.right)
		}
		if n.left != nil {
			stack = append(stack, n.left)
		}
	}
}
