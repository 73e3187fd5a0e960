// Package nodelink renders tidy layouts as node-link diagrams.
//
// # Overview
//
// This package exports a computed [tidy.Layout] to Graphviz, keeping every
// node pinned at its layout coordinate. Graphviz only draws the shapes and
// straight edges; it never re-positions nodes, so the diagram matches the
// character grid exactly.
//
// # Usage
//
// Convert a layout to DOT format, then render to SVG:
//
//	dot := nodelink.ToDOT(l, nodelink.Options{})
//	svg, err := nodelink.RenderSVG(ctx, dot)
//
// # DOT Format
//
// The [ToDOT] function produces Graphviz DOT source that can be:
//
//   - Rendered directly via [RenderSVG]
//   - Saved and processed with external Graphviz tools (neato -n)
//   - Customized before rendering
//
// Positions are written as pinned pos attributes in inches, scaled by
// [Options.ColumnWidth] and [Options.RowHeight].
//
// # Dependencies
//
// This package uses [github.com/goccy/go-graphviz] for in-process SVG
// rendering with the neato engine.
//
// [tidy.Layout]: github.com/matzehuels/tidytree/pkg/tidy.Layout
package nodelink
