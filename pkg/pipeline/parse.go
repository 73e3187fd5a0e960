package pipeline

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/matzehuels/tidytree/pkg/cache"
	errs "github.com/matzehuels/tidytree/pkg/errors"
	treeio "github.com/matzehuels/tidytree/pkg/io"
	"github.com/matzehuels/tidytree/pkg/observability"
	"github.com/matzehuels/tidytree/pkg/tree"
)

// Parse reads a tree description. Text whose first non-space character is
// '{' is a JSON document: an edge list when it has a "nodes" member (see
// pkg/io), a nested node document ({"label":..,"left":..,"right":..})
// otherwise. Anything else is level-order notation. The result is validated before it
// is returned: labels must be printable and no node may be reached twice.
func Parse(ctx context.Context, text string) (*tree.Node, error) {
	hooks := observability.Pipeline()
	hooks.OnParseStart(ctx, len(text))
	start := time.Now()

	root, err := parse(text)
	count := 0
	if err == nil {
		count = tree.Count(root.View())
	}
	hooks.OnParseComplete(ctx, count, time.Since(start), err)
	return root, err
}

func parse(text string) (*tree.Node, error) {
	if err := errs.ValidateTreeText(text); err != nil {
		return nil, err
	}
	if !strings.HasPrefix(strings.TrimSpace(text), "{") {
		return tree.ParseLevelOrder(text)
	}
	if treeio.IsEdgeList([]byte(text)) {
		return treeio.ParseJSON(text)
	}
	return parseNested(text)
}

func parseNested(text string) (*tree.Node, error) {
	dec := json.NewDecoder(strings.NewReader(text))
	dec.DisallowUnknownFields()

	var root tree.Node
	if err := dec.Decode(&root); err != nil {
		return nil, errs.Wrap(errs.ErrCodeInvalidTree, err, "decode nested tree")
	}
	if dec.More() {
		return nil, errs.New(errs.ErrCodeInvalidTree, "unexpected data after tree document")
	}

	var labelErr error
	tree.Walk(&root, func(v tree.TreeView, _ int) bool {
		labelErr = errs.ValidateLabel(v.Label())
		return labelErr == nil
	})
	if labelErr != nil {
		return nil, labelErr
	}
	if err := tree.Validate(&root); err != nil {
		return nil, err
	}
	return &root, nil
}

// TreeHash returns a content hash of root's canonical nested encoding.
// Level-order and nested spellings of the same tree hash identically.
func TreeHash(root *tree.Node) (string, error) {
	var buf bytes.Buffer
	if root != nil {
		if err := json.NewEncoder(&buf).Encode(root); err != nil {
			return "", errs.Wrap(errs.ErrCodeInternal, err, "encode tree")
		}
	}
	return cache.Hash(buf.Bytes()), nil
}
