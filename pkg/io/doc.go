// Package io reads and writes binary trees as JSON edge lists.
//
// Level-order text and nested node documents cannot describe a node with
// two parents or a cycle. Edge lists can, which makes this the format in
// which malformed input actually shows up, for example when a tree is
// exported from a database table of (parent, child) rows.
//
// # JSON Format
//
//	{
//	  "nodes": [
//	    {"id": "root", "label": "1"},
//	    {"id": "l", "label": "2"},
//	    {"id": "r"}
//	  ],
//	  "edges": [
//	    {"from": "root", "to": "l", "side": "left"},
//	    {"from": "root", "to": "r"}
//	  ]
//	}
//
// A node's label defaults to its id. An edge's side may be "left",
// "right" or omitted; omitted sides fill the parent's free slots left to
// right. The root is the one node without a parent.
//
// # Errors
//
// Structural problems are reported with the codes of pkg/errors:
//
//   - INVALID_TREE: duplicate or empty ids, unknown edge endpoints, more
//     than two children, a side used twice, or several roots
//   - CYCLIC_STRUCTURE: a node reachable along two paths, or nodes that
//     only reach each other
package io
