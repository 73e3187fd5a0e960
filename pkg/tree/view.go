package tree

// TreeView is a read-only view of a binary tree node.
//
// Left and Right are only meaningful when HasLeft and HasRight report true.
// Implementations must be comparable; see the package documentation.
type TreeView interface {
	HasLeft() bool
	HasRight() bool
	Left() TreeView
	Right() TreeView
	Label() string
}

// Accessors describes how to read a node of type T.
// Left and Right report the child and whether it exists.
type Accessors[T comparable] struct {
	Left  func(T) (T, bool)
	Right func(T) (T, bool)
	Label func(T) string
}

// Adapt returns a TreeView over root using acc to read each node.
// Views returned for the same underlying node compare equal.
func Adapt[T comparable](root T, acc Accessors[T]) TreeView {
	shared := acc
	return adapter[T]{node: root, acc: &shared}
}

type adapter[T comparable] struct {
	node T
	acc  *Accessors[T]
}

func (a adapter[T]) HasLeft() bool {
	_, ok := a.acc.Left(a.node)
	return ok
}

func (a adapter[T]) HasRight() bool {
	_, ok := a.acc.Right(a.node)
	return ok
}

func (a adapter[T]) Left() TreeView {
	child, _ := a.acc.Left(a.node)
	return adapter[T]{node: child, acc: a.acc}
}

func (a adapter[T]) Right() TreeView {
	child, _ := a.acc.Right(a.node)
	return adapter[T]{node: child, acc: a.acc}
}

func (a adapter[T]) Label() string { return a.acc.Label(a.node) }

// Unwrap returns the adapted node behind v, if v was produced by Adapt for
// node type T.
func Unwrap[T comparable](v TreeView) (T, bool) {
	a, ok := v.(adapter[T])
	if !ok {
		var zero T
		return zero, false
	}
	return a.node, true
}
