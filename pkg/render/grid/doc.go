// Package grid draws tidy layouts as character grids.
//
// A [Renderer] turns a [tidy.Layout] into a [Grid] of runes. Nodes occupy the
// even rows; the odd row below each level holds the connectors to the next:
//
//	    ●          2·depth      node glyphs
//	┌───┴───┐      2·depth+1    connectors
//	●       ●
//
// A child whose column is within the adjacency threshold of its parent's is
// joined with a single diagonal (/ or \) next to the parent. Farther children
// get a horizontal run with a corner above the child and an elbow (or, when
// both children are far, a junction) under the parent. Connector spans of
// different parents never share a cell because sibling subtrees are
// separated by at least one column on every level.
//
// # Glyphs
//
// [Unicode] is the default glyph set; [ASCII] draws with plain 7-bit
// characters. Any set can be overridden field by field with [Glyphs.Merge].
// [NewRenderer] rejects incomplete glyph sets up front, so Render itself
// cannot fail.
//
// # Labels
//
// With [WithLabels], nodes whose label is a single character are drawn as
// that character instead of the node glyph.
//
// [tidy.Layout]: github.com/matzehuels/tidytree/pkg/tidy.Layout
package grid
