// Package pkg provides the libraries behind tidytree, a Reingold-Tilford
// tidy layout for binary trees.
//
// # Overview
//
// Tidytree assigns every node of a binary tree a (depth, column) cell so
// that the drawing is narrow, subtrees never overlap, identical subtrees
// are drawn identically and a parent sits centered above its children.
// The pkg directory is organized into four areas:
//
//  1. [tree] and [io] - Input (the TreeView adapter, level-order, nested
//     and edge-list JSON)
//  2. [tidy] - The layout engine (contours, threads, coordinate resolution)
//  3. [render] - Output (character grids, Graphviz DOT and SVG)
//  4. [pipeline], [cache], [server] - Orchestration shared by the CLI and
//     the HTTP API
//
// # Architecture
//
// The typical data flow through tidytree:
//
//	level-order / nested / edge-list text
//	         ↓
//	    [tree] package (parse + cycle check)
//	         ↓
//	    [tidy] package (contours → columns)
//	         ↓
//	    [render] packages (grid, dot, svg) and [graph] (layout JSON)
//
// # Quick Start
//
//	root, _ := tree.ParseLevelOrder("[1,2,3,null,4]")
//	l, _ := tidy.Build(root, tidy.Options{Separation: 3})
//	r, _ := grid.NewRenderer()
//	fmt.Println(r.Render(l))
//
// # Main Packages
//
// [tree] - The read-only TreeView interface, an adapter for arbitrary node
// types, the plain Node type, level-order parsing and cycle detection.
//
// [tidy] - Contour building (level arrays or threaded extremes), recursive
// or iterative traversal, and resolution of relative offsets into columns.
//
// [graph] - Serialization types for layouts (JSON nodes and edges).
//
// [render/grid] - Character grid drawing with configurable glyphs.
//
// [render/nodelink] - Pinned-position Graphviz output.
//
// [pipeline] - Parse → layout → render with caching, used by the CLI and the
// API so that both behave identically.
//
// [cache] - Content-addressed cache: file, Redis or MongoDB backends with TTLs.
//
// [observability] - Hooks around pipeline stages, cache access and HTTP
// requests.
//
// [errors] - Structured error codes.
//
// [tree]: github.com/matzehuels/tidytree/pkg/tree
// [io]: github.com/matzehuels/tidytree/pkg/io
// [tidy]: github.com/matzehuels/tidytree/pkg/tidy
// [render]: github.com/matzehuels/tidytree/pkg/render
// [render/grid]: github.com/matzehuels/tidytree/pkg/render/grid
// [render/nodelink]: github.com/matzehuels/tidytree/pkg/render/nodelink
// [graph]: github.com/matzehuels/tidytree/pkg/graph
// [pipeline]: github.com/matzehuels/tidytree/pkg/pipeline
// [cache]: github.com/matzehuels/tidytree/pkg/cache
// [server]: github.com/matzehuels/tidytree/pkg/server
// [observability]: github.com/matzehuels/tidytree/pkg/observability
// [errors]: github.com/matzehuels/tidytree/pkg/errors
package pkg
