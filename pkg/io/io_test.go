package io

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	errs "github.com/matzehuels/tidytree/pkg/errors"
	"github.com/matzehuels/tidytree/pkg/tree"
)

func TestReadJSON(t *testing.T) {
	root, err := ParseJSON(`{
		"nodes": [{"id": "a", "label": "1"}, {"id": "b"}, {"id": "c"}, {"id": "d"}],
		"edges": [
			{"from": "a", "to": "b"},
			{"from": "a", "to": "c"},
			{"from": "b", "to": "d", "side": "right"}
		]
	}`)
	if err != nil {
		t.Fatalf("ParseJSON: %v", err)
	}

	want, _ := tree.ParseLevelOrder(`["1","b","c",null,"d"]`)
	if got, w := shape(root), shape(want); got != w {
		t.Errorf("shape = %s, want %s", got, w)
	}
}

func TestReadJSONErrors(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		code errs.Code
	}{
		{"Malformed", `{"nodes": [`, errs.ErrCodeInvalidTree},
		{"UnknownField", `{"nodes": [], "root": "a"}`, errs.ErrCodeInvalidTree},
		{"EmptyID", `{"nodes": [{"id": ""}]}`, errs.ErrCodeInvalidTree},
		{"DuplicateID", `{"nodes": [{"id": "a"}, {"id": "a"}]}`, errs.ErrCodeInvalidTree},
		{"UnknownEndpoint", `{"nodes": [{"id": "a"}], "edges": [{"from": "a", "to": "z"}]}`, errs.ErrCodeInvalidTree},
		{"EdgesWithoutNodes", `{"nodes": [], "edges": [{"from": "a", "to": "b"}]}`, errs.ErrCodeInvalidTree},
		{"BadSide", `{"nodes": [{"id": "a"}, {"id": "b"}], "edges": [{"from": "a", "to": "b", "side": "up"}]}`, errs.ErrCodeInvalidTree},
		{"SideTwice", `{"nodes": [{"id": "a"}, {"id": "b"}, {"id": "c"}],
			"edges": [{"from": "a", "to": "b", "side": "left"}, {"from": "a", "to": "c", "side": "left"}]}`, errs.ErrCodeInvalidTree},
		{"ThreeChildren", `{"nodes": [{"id": "a"}, {"id": "b"}, {"id": "c"}, {"id": "d"}],
			"edges": [{"from": "a", "to": "b"}, {"from": "a", "to": "c"}, {"from": "a", "to": "d"}]}`, errs.ErrCodeInvalidTree},
		{"Forest", `{"nodes": [{"id": "a"}, {"id": "b"}]}`, errs.ErrCodeInvalidTree},
		{"SharedChild", `{"nodes": [{"id": "a"}, {"id": "b"}, {"id": "c"}, {"id": "d"}],
			"edges": [{"from": "a", "to": "b"}, {"from": "a", "to": "c"}, {"from": "b", "to": "d"}, {"from": "c", "to": "d"}]}`, errs.ErrCodeCyclicStructure},
		{"Cycle", `{"nodes": [{"id": "a"}, {"id": "b"}], "edges": [{"from": "a", "to": "b"}, {"from": "b", "to": "a"}]}`, errs.ErrCodeCyclicStructure},
		{"DetachedCycle", `{"nodes": [{"id": "a"}, {"id": "b"}, {"id": "c"}],
			"edges": [{"from": "b", "to": "c"}, {"from": "c", "to": "b"}]}`, errs.ErrCodeCyclicStructure},
		{"ControlLabel", `{"nodes": [{"id": "a", "label": "x\n"}]}`, errs.ErrCodeInvalidTree},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseJSON(tt.doc)
			if !errs.Is(err, tt.code) {
				t.Errorf("err = %v, want code %s", err, tt.code)
			}
		})
	}
}

func TestReadJSONEmpty(t *testing.T) {
	root, err := ParseJSON(`{"nodes": []}`)
	if err != nil || root != nil {
		t.Errorf("ParseJSON(empty) = %v, %v; want nil, nil", root, err)
	}
}

func TestRoundTrip(t *testing.T) {
	for _, text := range []string{"[1]", "[1,2,3,null,4]", "[1,null,2,null,3,4]", "[1,2,3,4,5,6,7]"} {
		t.Run(text, func(t *testing.T) {
			root, err := tree.ParseLevelOrder(text)
			if err != nil {
				t.Fatal(err)
			}
			path := filepath.Join(t.TempDir(), "tree.json")
			if err := ExportJSON(root, path); err != nil {
				t.Fatalf("ExportJSON: %v", err)
			}
			back, err := ImportJSON(path)
			if err != nil {
				t.Fatalf("ImportJSON: %v", err)
			}
			if got, want := shape(back), shape(root); got != want {
				t.Errorf("round trip = %s, want %s", got, want)
			}
		})
	}
}

func TestIsEdgeList(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{`{"nodes": []}`, true},
		{`{"label": "a"}`, false},
		{`[1,2]`, false},
		{`{`, false},
	}
	for _, tt := range tests {
		if got := IsEdgeList([]byte(tt.in)); got != tt.want {
			t.Errorf("IsEdgeList(%s) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestWriteJSONEmpty(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteJSON(nil, &buf); err != nil {
		t.Fatal(err)
	}
	if got := strings.Join(strings.Fields(buf.String()), ""); got != `{"nodes":[],"edges":[]}` {
		t.Errorf("WriteJSON(nil) = %s", got)
	}
}

// shape renders a tree as a parenthesized string: label(left,right).
func shape(n *tree.Node) string {
	if n == nil {
		return "-"
	}
	if n.LeftChild == nil && n.RightChild == nil {
		return n.Val
	}
	return n.Val + "(" + shape(n.LeftChild) + "," + shape(n.RightChild) + ")"
}
