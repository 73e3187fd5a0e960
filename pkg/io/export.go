package io

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/matzehuels/tidytree/pkg/graph"
	"github.com/matzehuels/tidytree/pkg/tree"
)

// WriteJSON encodes the tree rooted at root as an edge list. Nodes get ids
// n0, n1, ... in preorder and every edge names its side, so the output
// re-imports with [ReadJSON] to the same shape. The tree must be acyclic;
// see tree.Validate.
func WriteJSON(root tree.TreeView, w io.Writer) error {
	out := document{Nodes: []node{}, Edges: []edge{}}

	ids := make(map[tree.TreeView]string)
	tree.Walk(root, func(v tree.TreeView, _ int) bool {
		id := "n" + strconv.Itoa(len(out.Nodes))
		ids[v] = id
		out.Nodes = append(out.Nodes, node{ID: id, Label: v.Label()})
		return true
	})
	tree.Walk(root, func(v tree.TreeView, _ int) bool {
		if v.HasLeft() {
			out.Edges = append(out.Edges, edge{From: ids[v], To: ids[v.Left()], Side: graph.SideLeft})
		}
		if v.HasRight() {
			out.Edges = append(out.Edges, edge{From: ids[v], To: ids[v.Right()], Side: graph.SideRight})
		}
		return true
	})

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

// ExportJSON writes the tree to an edge-list file at path.
func ExportJSON(root tree.TreeView, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := WriteJSON(root, f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
