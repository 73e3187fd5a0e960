package tree

import (
	"testing"

	errs "github.com/matzehuels/tidytree/pkg/errors"
)

// shape renders a tree as nested parentheses for compact comparisons.
func shape(n *Node) string {
	if n == nil {
		return "-"
	}
	if n.LeftChild == nil && n.RightChild == nil {
		return n.Val
	}
	return "(" + n.Val + " " + shape(n.LeftChild) + " " + shape(n.RightChild) + ")"
}

func TestParseLevelOrder(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"empty array", "[]", "-"},
		{"null root", "[null]", "-"},
		{"single", "[1]", "1"},
		{"complete", "[1,2,3]", "(1 2 3)"},
		{"right chain", "[1,null,2,null,3]", "(1 - (2 - 3))"},
		{"leetcode example", "[1,null,2,3]", "(1 - (2 3 -))"},
		{"trailing nulls", "[1,2,null,null,null]", "(1 2 -)"},
		{"strings", `["a","b","c"]`, "(a b c)"},
		{"negative and float", "[-1,2.5]", "(-1 2.5 -)"},
		{"booleans", "[true,false]", "(true false -)"},
		{"whitespace", " [ 1 , 2 ] \n", "(1 2 -)"},
		{
			name:  "seven nodes",
			input: "[4,2,6,1,3,5,7]",
			want:  "(4 (2 1 3) (6 5 7))",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			root, err := ParseLevelOrder(tt.input)
			if err != nil {
				t.Fatalf("ParseLevelOrder(%q) error: %v", tt.input, err)
			}
			if got := shape(root); got != tt.want {
				t.Errorf("ParseLevelOrder(%q) = %s, want %s", tt.input, got, tt.want)
			}
		})
	}
}

func TestParseLevelOrderErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"empty", ""},
		{"not json", "1,2,3"},
		{"object", `{"label":"1"}`},
		{"nested array", "[1,[2]]"},
		{"orphan value", "[1,null,null,2]"},
		{"trailing data", "[1] [2]"},
		{"control label", `["a\nb"]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseLevelOrder(tt.input)
			if err == nil {
				t.Fatalf("ParseLevelOrder(%q) expected error", tt.input)
			}
			if !errs.Is(err, errs.ErrCodeInvalidTree) {
				t.Errorf("ParseLevelOrder(%q) code = %v, want %v", tt.input, errs.GetCode(err), errs.ErrCodeInvalidTree)
			}
		})
	}
}
