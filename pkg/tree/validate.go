package tree

import (
	"fmt"

	errs "github.com/matzehuels/tidytree/pkg/errors"
)

// CyclicStructureError reports that a node is reachable from the root more
// than once, either through a cycle or because two parents share it. A
// coordinate layout is undefined for such graphs.
type CyclicStructureError struct {
	Label string // label of the first node reached twice
	Depth int    // depth at which it was reached the second time
}

// Error implements the error interface.
func (e *CyclicStructureError) Error() string {
	return fmt.Sprintf("node %q is reachable more than once (depth %d): layout is undefined for non-tree graphs", e.Label, e.Depth)
}

// Code returns the error code for this error type.
func (e *CyclicStructureError) Code() errs.Code {
	return errs.ErrCodeCyclicStructure
}

// Validate checks that root describes a tree: every node must be reachable
// along exactly one path. It returns a *CyclicStructureError otherwise.
//
// The check is a preorder walk with a visited set, so it terminates on
// cyclic input after visiting each distinct node once.
func Validate(root TreeView) error {
	var cycleErr error
	visited := make(map[TreeView]struct{})

	Walk(root, func(v TreeView, depth int) bool {
		if _, seen := visited[v]; seen {
			cycleErr = &CyclicStructureError{Label: v.Label(), Depth: depth}
			return false
		}
		visited[v] = struct{}{}
		return true
	})
	return cycleErr
}
