// Package tree provides the node abstraction consumed by the tidy layout
// engine, along with a concrete binary tree type and input helpers.
//
// # Overview
//
// The layout engine never depends on a concrete node type. Instead it reads
// trees through [TreeView], a read-only capability with five accessors:
//
//	HasLeft() bool
//	HasRight() bool
//	Left() TreeView
//	Right() TreeView
//	Label() string
//
// [Node] implements TreeView directly. Any other node type can be adapted
// without writing a wrapper type by supplying accessor functions to [Adapt]:
//
//	view := tree.Adapt(root, tree.Accessors[*MyNode]{
//	    Left:  func(n *MyNode) (*MyNode, bool) { return n.Lo, n.Lo != nil },
//	    Right: func(n *MyNode) (*MyNode, bool) { return n.Hi, n.Hi != nil },
//	    Label: func(n *MyNode) string { return n.Key },
//	})
//
// # Identity
//
// A TreeView value is its node's identity: the layout result is keyed by it
// and [Validate] tracks visited nodes by it. Implementations must therefore
// be comparable, and calling Left or Right twice on the same view must
// return equal values. Pointer types satisfy both.
//
// # Input
//
// [ParseLevelOrder] builds a [Node] tree from LeetCode's level-order test
// case notation, for example "[1,null,2,3]". Node also round-trips through
// encoding/json as nested {"label", "left", "right"} objects.
//
// # Validation
//
// The layout engine assumes its input is a tree. Callers run [Validate]
// once before layout; it reports a [CyclicStructureError] when any node is
// reachable more than once.
package tree
