// Package graph provides the serialization format for computed tree layouts.
//
// This package defines the canonical wire format for tidytree's layout data,
// used for JSON output, API responses, caching, and cross-tool
// interoperability.
//
// # Architecture
//
// The package sits at the serialization boundary between the layout engine
// and external formats:
//
//   - [Layout], [Node], [Edge]: serialization types (this package)
//   - pkg/tidy.Layout: internal layout with identity lookups
//
// Use tidy.Layout.Export and tidy.FromGraph to convert between them.
//
// # Layout Serialization
//
// Layouts use a node-link JSON format. Node IDs are preorder indices, so the
// root is always node 0:
//
//	{
//	  "width": 7,
//	  "height": 2,
//	  "separation": 3,
//	  "nodes": [
//	    {"id": 0, "label": "1", "depth": 0, "column": 2},
//	    {"id": 1, "label": "2", "depth": 1, "column": 0, "offset": -2}
//	  ],
//	  "edges": [{"from": 0, "to": 1, "side": "left"}]
//	}
//
// Common operations:
//
//	l, _ := graph.ReadLayoutFile("layout.json")   // File → Layout
//	graph.WriteLayoutFile(l, "out.json")          // Layout → File
//	data, _ := graph.MarshalLayout(l)             // Layout → []byte
//	parsed, _ := graph.UnmarshalLayout(data)      // []byte → Layout
//
// Decoding validates structure: IDs must be dense and ordered, every edge
// must join a parent to a child one level down, and coordinates must fall
// inside the declared frame.
//
// # Concurrency
//
// All functions are safe for concurrent use.
package graph
