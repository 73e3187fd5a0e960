package tree

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	errs "github.com/matzehuels/tidytree/pkg/errors"
)

// ParseLevelOrder builds a tree from LeetCode's level-order notation.
//
// The input is a JSON array walked breadth first: after the root, values
// alternate between the left and right child of the oldest node that still
// has unassigned children, and null marks a missing child. Children of
// missing nodes are omitted, so "[1,null,2,3]" is a root 1 whose right child
// 2 has a left child 3.
//
// Numbers keep their literal spelling as labels, strings are used verbatim
// and booleans become "true"/"false". An empty array or a null root yields a
// nil tree and no error.
func ParseLevelOrder(text string) (*Node, error) {
	if err := errs.ValidateTreeText(text); err != nil {
		return nil, err
	}

	dec := json.NewDecoder(strings.NewReader(text))
	dec.UseNumber()

	var values []any
	if err := dec.Decode(&values); err != nil {
		return nil, errs.Wrap(errs.ErrCodeInvalidTree, err, "parse level-order tree")
	}
	if _, err := dec.Token(); err != io.EOF {
		return nil, errs.New(errs.ErrCodeInvalidTree, "unexpected data after level-order array")
	}

	if len(values) == 0 || values[0] == nil {
		return nil, nil
	}

	rootLabel, err := labelOf(values[0])
	if err != nil {
		return nil, err
	}
	root := Leaf(rootLabel)

	queue := []*Node{root}
	isLeft := true
	for i, v := range values[1:] {
		if len(queue) == 0 {
			return nil, errs.New(errs.ErrCodeInvalidTree, "value at index %d has no parent", i+1)
		}

		var child *Node
		if v != nil {
			label, err := labelOf(v)
			if err != nil {
				return nil, err
			}
			child = Leaf(label)
		}

		parent := queue[0]
		if isLeft {
			parent.LeftChild = child
		} else {
			parent.RightChild = child
			queue = queue[1:]
		}
		if child != nil {
			queue = append(queue, child)
		}
		isLeft = !isLeft
	}

	return root, nil
}

func labelOf(v any) (string, error) {
	var label string
	switch x := v.(type) {
	case json.Number:
		label = x.String()
	case string:
		label = x
	case bool:
		label = strconv.FormatBool(x)
	default:
		return "", errs.New(errs.ErrCodeInvalidTree, "unsupported node value %s", describe(v))
	}
	if err := errs.ValidateLabel(label); err != nil {
		return "", err
	}
	return label, nil
}

func describe(v any) string {
	switch v.(type) {
	case []any:
		return "of type array"
	case map[string]any:
		return "of type object"
	default:
		return fmt.Sprintf("%v", v)
	}
}
