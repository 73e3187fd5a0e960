package tree

import "testing"

type customNode struct {
	key    string
	lo, hi *customNode
}

var customAccessors = Accessors[*customNode]{
	Left:  func(n *customNode) (*customNode, bool) { return n.lo, n.lo != nil },
	Right: func(n *customNode) (*customNode, bool) { return n.hi, n.hi != nil },
	Label: func(n *customNode) string { return n.key },
}

func TestAdapt(t *testing.T) {
	root := &customNode{key: "r", lo: &customNode{key: "l"}}
	v := Adapt(root, customAccessors)

	if !v.HasLeft() || v.HasRight() {
		t.Fatalf("HasLeft/HasRight = %v/%v, want true/false", v.HasLeft(), v.HasRight())
	}
	if got := v.Left().Label(); got != "l" {
		t.Errorf("Left().Label() = %q, want %q", got, "l")
	}
	if v.Left() != v.Left() {
		t.Error("views of the same child should compare equal")
	}
	if v.Left() == v {
		t.Error("views of different nodes should differ")
	}

	n, ok := Unwrap[*customNode](v.Left())
	if !ok || n != root.lo {
		t.Errorf("Unwrap() = %v, %v; want left child", n, ok)
	}
	if _, ok := Unwrap[*customNode](Leaf("x")); ok {
		t.Error("Unwrap() of a *Node should fail")
	}
}

func TestWalkCountHeight(t *testing.T) {
	root := New("1", New("2", Leaf("4"), Leaf("5")), New("3", nil, Leaf("6")))

	var order []string
	Walk(root, func(v TreeView, depth int) bool {
		order = append(order, v.Label())
		return true
	})
	want := []string{"1", "2", "4", "5", "3", "6"}
	if len(order) != len(want) {
		t.Fatalf("Walk order = %v, want %v", order, want)
	}
	for i := range want {
		if order[i] != want[i] {
			t.Fatalf("Walk order = %v, want %v", order, want)
		}
	}

	if got := Count(root); got != 6 {
		t.Errorf("Count() = %d, want 6", got)
	}
	if got := Height(root); got != 3 {
		t.Errorf("Height() = %d, want 3", got)
	}
	if got := Height(nil); got != 0 {
		t.Errorf("Height(nil) = %d, want 0", got)
	}
	var empty *Node
	if empty.View() != nil {
		t.Error("nil *Node View() should be a nil TreeView")
	}
}

func TestWalkStops(t *testing.T) {
	root := New("1", Leaf("2"), Leaf("3"))
	visited := 0
	Walk(root, func(TreeView, int) bool {
		visited++
		return visited < 2
	})
	if visited != 2 {
		t.Errorf("visited = %d, want 2", visited)
	}
}
