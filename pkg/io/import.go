package io

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	errs "github.com/matzehuels/tidytree/pkg/errors"
	"github.com/matzehuels/tidytree/pkg/graph"
	"github.com/matzehuels/tidytree/pkg/tree"
)

type document struct {
	Nodes []node `json:"nodes"`
	Edges []edge `json:"edges"`
}

type node struct {
	ID    string `json:"id"`
	Label string `json:"label,omitempty"`
}

type edge struct {
	From string `json:"from"`
	To   string `json:"to"`
	Side string `json:"side,omitempty"`
}

// IsEdgeList reports whether data is a JSON object with a "nodes" member.
func IsEdgeList(data []byte) bool {
	var probe map[string]json.RawMessage
	if json.Unmarshal(data, &probe) != nil {
		return false
	}
	_, ok := probe["nodes"]
	return ok
}

// ReadJSON decodes an edge-list document from r into a tree.
// An empty node list yields a nil tree. ReadJSON does not close r.
func ReadJSON(r io.Reader) (*tree.Node, error) {
	var doc document
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&doc); err != nil {
		return nil, errs.Wrap(errs.ErrCodeInvalidTree, err, "decode edge list")
	}
	return build(doc)
}

// ParseJSON decodes an edge-list document held in a string.
func ParseJSON(text string) (*tree.Node, error) {
	if err := errs.ValidateTreeText(text); err != nil {
		return nil, err
	}
	return ReadJSON(strings.NewReader(text))
}

// ImportJSON reads an edge-list file.
func ImportJSON(path string) (*tree.Node, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	return ReadJSON(f)
}

func build(doc document) (*tree.Node, error) {
	if len(doc.Nodes) == 0 {
		if len(doc.Edges) > 0 {
			return nil, errs.New(errs.ErrCodeInvalidTree, "edge list has %d edges but no nodes", len(doc.Edges))
		}
		return nil, nil
	}

	byID := make(map[string]*tree.Node, len(doc.Nodes))
	order := make([]*tree.Node, len(doc.Nodes))
	for i, n := range doc.Nodes {
		if n.ID == "" {
			return nil, errs.New(errs.ErrCodeInvalidTree, "node %d has no id", i)
		}
		if _, dup := byID[n.ID]; dup {
			return nil, errs.New(errs.ErrCodeInvalidTree, "duplicate node id %q", n.ID)
		}
		label := n.Label
		if label == "" {
			label = n.ID
		}
		if err := errs.ValidateLabel(label); err != nil {
			return nil, err
		}
		order[i] = tree.Leaf(label)
		byID[n.ID] = order[i]
	}

	hasParent := make(map[*tree.Node]bool, len(doc.Nodes))
	for _, e := range doc.Edges {
		from, ok := byID[e.From]
		if !ok {
			return nil, errs.New(errs.ErrCodeInvalidTree, "edge %s->%s: unknown node %q", e.From, e.To, e.From)
		}
		to, ok := byID[e.To]
		if !ok {
			return nil, errs.New(errs.ErrCodeInvalidTree, "edge %s->%s: unknown node %q", e.From, e.To, e.To)
		}
		if err := attach(from, to, e); err != nil {
			return nil, err
		}
		hasParent[to] = true
	}

	var roots []*tree.Node
	for _, n := range order {
		if !hasParent[n] {
			roots = append(roots, n)
		}
	}
	switch len(roots) {
	case 0:
		// Every node has a parent, so following parents never ends.
		return nil, errs.New(errs.ErrCodeCyclicStructure, "every node has a parent: the edges form a cycle")
	case 1:
	default:
		return nil, errs.New(errs.ErrCodeInvalidTree, "edge list describes a forest with %d roots", len(roots))
	}

	root := roots[0]
	if err := tree.Validate(root); err != nil {
		return nil, err
	}
	if reached := tree.Count(root); reached < len(order) {
		return nil, errs.New(errs.ErrCodeCyclicStructure, "%d nodes are unreachable from the root and form a cycle", len(order)-reached)
	}
	return root, nil
}

func attach(from, to *tree.Node, e edge) error {
	side := e.Side
	if side == "" {
		switch {
		case from.LeftChild == nil:
			side = graph.SideLeft
		case from.RightChild == nil:
			side = graph.SideRight
		default:
			return errs.New(errs.ErrCodeInvalidTree, "node %q has more than two children", e.From)
		}
	}

	var slot **tree.Node
	switch side {
	case graph.SideLeft:
		slot = &from.LeftChild
	case graph.SideRight:
		slot = &from.RightChild
	default:
		return errs.New(errs.ErrCodeInvalidTree, "edge %s->%s: side %q must be left or right", e.From, e.To, side)
	}
	if *slot != nil {
		return errs.New(errs.ErrCodeInvalidTree, "node %q already has a %s child", e.From, side)
	}
	*slot = to
	return nil
}
