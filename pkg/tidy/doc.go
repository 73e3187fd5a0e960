// Package tidy computes compact, non-overlapping layouts of binary trees for
// character-grid display, following Reingold and Tilford's "Tidier Drawings
// of Trees".
//
// # Overview
//
// [Build] assigns every node of a [tree.TreeView] an integer depth (row) and
// column so that:
//
//   - parents sit strictly above their children,
//   - a left child is always left of its parent and a right child right of it,
//   - nodes on the same level are at least [Options.Separation] columns apart,
//   - mirror-image subtrees are drawn as mirror images.
//
// The engine works on a private shadow copy of the input and never mutates
// the source tree. It runs in two passes:
//
//  1. Contour building (bottom-up): each subtree reports the horizontal reach
//     of its drawing at every relative depth. A parent places its two
//     subtrees as close together as their contours allow and records each
//     child's offset relative to itself.
//  2. Coordinate resolution (top-down): offsets are summed along root paths
//     into absolute columns, then shifted so the leftmost node is column 0.
//
// # Strategies
//
// Two interchangeable contour builders produce identical layouts:
//
//   - [StrategyLevels] (default) keeps a per-level contour slice for every
//     subtree, deepest level first. A lone child pushes its parent's level
//     onto the slice in place, and merging two children costs the height of
//     the shallower one, so skewed trees stay linear.
//   - [StrategyThreaded] keeps only the two extreme nodes of each subtree and
//     walks contours node by node, hopping over missing levels through
//     threads. This is the linear-time formulation of Reingold and Tilford.
//
// # Threads
//
// When two sibling subtrees have different heights, the shallower one's
// contour stops early. A thread links its deepest extreme node to the
// deeper subtree's contour node one level down, annotated with the column
// delta between the two. Threads live in a side table owned by the builder;
// the shadow tree's child links are never rewritten. The resolver discards
// every thread, so none survive into the returned [Layout].
//
// # Traversal
//
// Both passes are depth-first. [TraversalRecursive] uses the call stack;
// [TraversalIterative] uses explicit stacks and is safe for arbitrarily deep
// (for example linked-list shaped) trees. Results are identical.
//
// # Preconditions
//
// The input must be a tree. Run [tree.Validate] first on untrusted input;
// Build itself does not detect cycles.
//
// [tree.TreeView]: github.com/matzehuels/tidytree/pkg/tree.TreeView
// [tree.Validate]: github.com/matzehuels/tidytree/pkg/tree.Validate
package tidy
