package graph

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"

	errs "github.com/matzehuels/tidytree/pkg/errors"
)

// =============================================================================
// Layout Serialization API
// =============================================================================

// MarshalLayout serializes a Layout to pretty-printed JSON bytes.
func MarshalLayout(l Layout) ([]byte, error) {
	var buf bytes.Buffer
	if err := WriteLayout(l, &buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// UnmarshalLayout deserializes and validates JSON bytes.
func UnmarshalLayout(data []byte) (Layout, error) {
	return ReadLayout(bytes.NewReader(data))
}

// WriteLayout writes a Layout as indented JSON to w.
func WriteLayout(l Layout, w io.Writer) error {
	if l.Nodes == nil {
		l.Nodes = []Node{}
	}
	if l.Edges == nil {
		l.Edges = []Edge{}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(l); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

// ReadLayout decodes and validates a JSON layout from r.
func ReadLayout(r io.Reader) (Layout, error) {
	var l Layout
	if err := json.NewDecoder(r).Decode(&l); err != nil {
		return Layout{}, errs.Wrap(errs.ErrCodeInvalidFormat, err, "decode layout")
	}
	if err := Validate(l); err != nil {
		return Layout{}, err
	}
	return l, nil
}

// WriteLayoutFile writes a Layout to a JSON file.
// The file is created with 0644 permissions.
func WriteLayoutFile(l Layout, path string) error {
	data, err := MarshalLayout(l)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

// ReadLayoutFile reads a Layout from a JSON file.
func ReadLayoutFile(path string) (Layout, error) {
	f, err := os.Open(path)
	if err != nil {
		return Layout{}, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	return ReadLayout(f)
}

// =============================================================================
// Validation
// =============================================================================

// Validate checks that l describes a well-formed tree drawing.
func Validate(l Layout) error {
	if len(l.Nodes) == 0 {
		if len(l.Edges) != 0 {
			return invalid("empty layout has %d edges", len(l.Edges))
		}
		return nil
	}
	if l.Width < 1 || l.Height < 1 {
		return invalid("non-empty layout has frame %dx%d", l.Width, l.Height)
	}
	for i, n := range l.Nodes {
		if n.ID != i {
			return invalid("node %d has id %d", i, n.ID)
		}
		if n.Column < 0 || n.Column >= l.Width {
			return invalid("node %d column %d outside [0,%d)", i, n.Column, l.Width)
		}
		if n.Depth < 0 || n.Depth >= l.Height {
			return invalid("node %d depth %d outside [0,%d)", i, n.Depth, l.Height)
		}
	}
	if l.Nodes[0].Depth != 0 {
		return invalid("root has depth %d", l.Nodes[0].Depth)
	}
	if len(l.Edges) != len(l.Nodes)-1 {
		return invalid("%d nodes need %d edges, got %d", len(l.Nodes), len(l.Nodes)-1, len(l.Edges))
	}

	type slot struct {
		from int
		side string
	}
	hasParent := make([]bool, len(l.Nodes))
	taken := make(map[slot]bool, len(l.Edges))
	for _, e := range l.Edges {
		if e.From < 0 || e.From >= len(l.Nodes) || e.To < 1 || e.To >= len(l.Nodes) {
			return invalid("edge %d->%d references unknown node", e.From, e.To)
		}
		if e.Side != SideLeft && e.Side != SideRight {
			return invalid("edge %d->%d has side %q", e.From, e.To, e.Side)
		}
		if hasParent[e.To] {
			return invalid("node %d has two parents", e.To)
		}
		s := slot{e.From, e.Side}
		if taken[s] {
			return invalid("node %d has two %s children", e.From, e.Side)
		}
		taken[s] = true
		from, to := l.Nodes[e.From], l.Nodes[e.To]
		if to.Depth != from.Depth+1 {
			return invalid("edge %d->%d spans depth %d to %d", e.From, e.To, from.Depth, to.Depth)
		}
		hasParent[e.To] = true
	}
	return nil
}

func invalid(format string, args ...any) error {
	return errs.New(errs.ErrCodeInvalidFormat, format, args...)
}
