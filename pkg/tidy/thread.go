package tidy

// thread links the deepest extreme node of a shallower subtree to the next
// contour node of its deeper sibling. delta is the target's column minus
// the source's column.
type thread struct {
	target *node
	delta  int
}

// extreme is the leftmost or rightmost node on the deepest level of a
// subtree. offset is its column relative to the subtree root.
type extreme struct {
	node   *node
	offset int
	level  int
}

func (e extreme) shift(d int) extreme {
	e.offset += d
	return e
}

func (b *builder) addThread(from, to *node, delta int) {
	from.threaded = true
	b.threads[from] = thread{target: to, delta: delta}
}

// nextLeft follows the left contour one level down: the left child, the
// right child if there is none, then the thread. The returned delta is the
// column change from x to the result.
func (b *builder) nextLeft(x *node) (*node, int) {
	switch {
	case x.left != nil:
		return x.left, x.left.offset
	case x.right != nil:
		return x.right, x.right.offset
	}
	if t, ok := b.threads[x]; ok {
		return t.target, t.delta
	}
	return nil, 0
}

// nextRight mirrors nextLeft for the right contour.
func (b *builder) nextRight(x *node) (*node, int) {
	switch {
	case x.right != nil:
		return x.right, x.right.offset
	case x.left != nil:
		return x.left, x.left.offset
	}
	if t, ok := b.threads[x]; ok {
		return t.target, t.delta
	}
	return nil, 0
}

// mergeThreaded is the contour pass for StrategyThreaded. Each subtree keeps
// only its two deepest extreme nodes; contours are walked node by node.
func (b *builder) mergeThreaded(n *node) {
	switch {
	case n.left == nil && n.right == nil:
		n.lmost = extreme{node: n, level: n.depth}
		n.rmost = n.lmost
		return
	case n.right == nil:
		m := -half(b.sep)
		n.left.offset = m
		n.lmost, n.rmost = n.left.lmost.shift(m), n.left.rmost.shift(m)
		return
	case n.left == nil:
		m := half(b.sep)
		n.right.offset = m
		n.lmost, n.rmost = n.right.lmost.shift(m), n.right.rmost.shift(m)
		return
	}

	// lw walks the right contour of the left subtree, rw the left contour
	// of the right subtree. Positions are relative to each subtree root.
	lw, rw := n.left, n.right
	lpos, rpos, gap := 0, 0, 0
	for lw != nil && rw != nil {
		gap = max(gap, lpos-rpos)
		var d int
		lw, d = b.nextRight(lw)
		lpos += d
		rw, d = b.nextLeft(rw)
		rpos += d
	}
	m := half(gap + b.sep)
	n.left.offset, n.right.offset = -m, m

	ll, lr := n.left.lmost.shift(-m), n.left.rmost.shift(-m)
	rl, rr := n.right.lmost.shift(m), n.right.rmost.shift(m)
	n.lmost, n.rmost = ll, rr
	if rl.level > ll.level {
		n.lmost = rl
	}
	if lr.level > rr.level {
		n.rmost = lr
	}

	switch {
	case lw != nil:
		b.addThread(rr.node, lw, (lpos-m)-rr.offset)
	case rw != nil:
		b.addThread(ll.node, rw, (rpos+m)-ll.offset)
	}
}
