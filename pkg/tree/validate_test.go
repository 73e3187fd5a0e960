package tree

import (
	"errors"
	"testing"

	errs "github.com/matzehuels/tidytree/pkg/errors"
)

func TestValidate(t *testing.T) {
	t.Run("nil tree", func(t *testing.T) {
		if err := Validate(nil); err != nil {
			t.Errorf("Validate(nil) = %v, want nil", err)
		}
	})

	t.Run("proper tree", func(t *testing.T) {
		root := New("1", New("2", Leaf("4"), nil), Leaf("3"))
		if err := Validate(root); err != nil {
			t.Errorf("Validate() = %v, want nil", err)
		}
	})

	t.Run("self loop", func(t *testing.T) {
		root := Leaf("1")
		root.LeftChild = root
		assertCyclic(t, Validate(root), "1")
	})

	t.Run("back edge", func(t *testing.T) {
		root := New("1", Leaf("2"), nil)
		root.LeftChild.RightChild = root
		assertCyclic(t, Validate(root), "1")
	})

	t.Run("shared child", func(t *testing.T) {
		shared := Leaf("s")
		root := New("1", shared, shared)
		assertCyclic(t, Validate(root), "s")
	})

	t.Run("adapted cycle", func(t *testing.T) {
		type ring struct {
			next *ring
			name string
		}
		a := &ring{name: "a"}
		b := &ring{name: "b", next: a}
		a.next = b
		view := Adapt(a, Accessors[*ring]{
			Left:  func(r *ring) (*ring, bool) { return r.next, r.next != nil },
			Right: func(r *ring) (*ring, bool) { return nil, false },
			Label: func(r *ring) string { return r.name },
		})
		assertCyclic(t, Validate(view), "a")
	})
}

func assertCyclic(t *testing.T, err error, label string) {
	t.Helper()
	var cyc *CyclicStructureError
	if !errors.As(err, &cyc) {
		t.Fatalf("Validate() = %v, want *CyclicStructureError", err)
	}
	if cyc.Label != label {
		t.Errorf("CyclicStructureError.Label = %q, want %q", cyc.Label, label)
	}
	if !errs.Is(err, errs.ErrCodeCyclicStructure) {
		t.Errorf("error code = %v, want %v", errs.GetCode(err), errs.ErrCodeCyclicStructure)
	}
}
