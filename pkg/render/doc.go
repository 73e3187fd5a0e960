// Package render provides the output formats for computed tree layouts.
//
// # Overview
//
// This package groups the renderers that consume a [tidy.Layout]:
//
//   - Character grids for terminals (in [grid] subpackage)
//   - Node-link diagrams via Graphviz (in [nodelink] subpackage)
//
// Renderers never change coordinates; they only draw what the layout engine
// computed.
//
// # Character Grids
//
//	r, err := grid.NewRenderer(grid.WithGlyphs(grid.ASCII))
//	fmt.Println(r.Render(layout))
//
// # Node-Link Diagrams
//
//	dot := nodelink.ToDOT(layout, nodelink.Options{})
//	svg, err := nodelink.RenderSVG(ctx, dot)
//
// [tidy.Layout]: github.com/matzehuels/tidytree/pkg/tidy.Layout
// [grid]: github.com/matzehuels/tidytree/pkg/render/grid
// [nodelink]: github.com/matzehuels/tidytree/pkg/render/nodelink
package render
