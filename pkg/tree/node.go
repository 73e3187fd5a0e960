package tree

// Node is a plain binary tree node.
// The zero value is a leaf with an empty label.
type Node struct {
	Val        string `json:"label"`
	LeftChild  *Node  `json:"left,omitempty"`
	RightChild *Node  `json:"right,omitempty"`
}

// New creates a node with the given label and children (either may be nil).
func New(label string, left, right *Node) *Node {
	return &Node{Val: label, LeftChild: left, RightChild: right}
}

// Leaf creates a childless node.
func Leaf(label string) *Node { return &Node{Val: label} }

func (n *Node) HasLeft() bool   { return n.LeftChild != nil }
func (n *Node) HasRight() bool  { return n.RightChild != nil }
func (n *Node) Left() TreeView  { return n.LeftChild }
func (n *Node) Right() TreeView { return n.RightChild }
func (n *Node) Label() string   { return n.Val }

// View returns n as a TreeView, mapping a nil *Node to a nil interface so
// that callers can test for the empty tree with == nil.
func (n *Node) View() TreeView {
	if n == nil {
		return nil
	}
	return n
}

var _ TreeView = (*Node)(nil)
