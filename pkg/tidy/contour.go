package tidy

// reach is the horizontal extent of a subtree at one relative depth
// together with the nodes at either end.
type reach struct {
	left, right         int
	leftNode, rightNode *node
}

// contour holds one reach per relative depth, stored deepest first so that
// a parent can push its own level onto a child's contour in place. Stored
// columns are relative to -shift; at(d) returns them relative to the
// subtree root. Shifting a whole contour is a change of shift alone.
type contour struct {
	levels []reach
	shift  int
}

func newContour(root reach) contour {
	return contour{levels: []reach{root}}
}

func (c *contour) height() int { return len(c.levels) }

// at returns the reach at relative depth d.
func (c *contour) at(d int) reach {
	r := c.levels[len(c.levels)-1-d]
	r.left += c.shift
	r.right += c.shift
	return r
}

func (c *contour) setLeft(d, col int, n *node) {
	i := len(c.levels) - 1 - d
	c.levels[i].left, c.levels[i].leftNode = col-c.shift, n
}

func (c *contour) setRight(d, col int, n *node) {
	i := len(c.levels) - 1 - d
	c.levels[i].right, c.levels[i].rightNode = col-c.shift, n
}

// push moves the contour down one level, shifted by offset, under a new
// root level at (0, 0).
func (c *contour) push(root reach, offset int) {
	c.shift += offset
	root.left, root.right = -c.shift, -c.shift
	c.levels = append(c.levels, root)
}

// mergeLevels is the contour pass for StrategyLevels. It expects the
// contours of n's children to be complete and leaves n's own in n.contour.
// A lone child costs O(1); two children cost the height of the shallower.
func (b *builder) mergeLevels(n *node) {
	self := reach{leftNode: n, rightNode: n}
	switch {
	case n.left == nil && n.right == nil:
		n.contour = newContour(self)
	case n.right == nil:
		n.left.offset = -half(b.sep)
		n.contour = n.left.contour
		n.contour.push(self, n.left.offset)
	case n.left == nil:
		n.right.offset = half(b.sep)
		n.contour = n.right.contour
		n.contour.push(self, n.right.offset)
	default:
		n.contour = b.join(self, n.left.contour, n.right.contour, n)
	}
	if n.left != nil {
		n.left.contour = contour{}
	}
	if n.right != nil {
		n.right.contour = contour{}
	}
}

// join places the two child contours of n as close as they allow, sets the
// child offsets and records the thread needed when their heights differ.
// The deeper contour is reused for the result.
func (b *builder) join(root reach, lc, rc contour, n *node) contour {
	shared := min(lc.height(), rc.height())
	gap := 0
	for d := 0; d < shared; d++ {
		gap = max(gap, lc.at(d).right-rc.at(d).left)
	}
	m := half(gap + b.sep)
	n.left.offset, n.right.offset = -m, m

	switch {
	case lc.height() > rc.height():
		from, to := rc.at(shared-1), lc.at(shared)
		b.addThread(from.rightNode, to.rightNode, (to.right-m)-(from.right+m))
	case rc.height() > lc.height():
		from, to := lc.at(shared-1), rc.at(shared)
		b.addThread(from.leftNode, to.leftNode, (to.left+m)-(from.left-m))
	}

	var out contour
	if lc.height() >= rc.height() {
		out = lc
		out.shift -= m
		for d := 0; d < shared; d++ {
			r := rc.at(d)
			out.setRight(d, r.right+m, r.rightNode)
		}
	} else {
		out = rc
		out.shift += m
		for d := 0; d < shared; d++ {
			l := lc.at(d)
			out.setLeft(d, l.left-m, l.leftNode)
		}
	}
	out.push(root, 0)
	return out
}
