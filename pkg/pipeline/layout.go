package pipeline

import (
	"context"
	"time"

	"github.com/matzehuels/tidytree/pkg/observability"
	"github.com/matzehuels/tidytree/pkg/tidy"
	"github.com/matzehuels/tidytree/pkg/tree"
)

// =============================================================================
// Layout Generation
// =============================================================================

// ComputeLayout runs the tidy engine on root with the layout options in
// opts. A nil root yields an empty layout.
func ComputeLayout(ctx context.Context, root *tree.Node, opts Options) (*tidy.Layout, error) {
	to := opts.TidyOptions()
	hooks := observability.Pipeline()
	hooks.OnLayoutStart(ctx, string(to.Strategy), tree.Count(root.View()))
	start := time.Now()

	l, err := tidy.Build(root.View(), to)
	hooks.OnLayoutComplete(ctx, string(to.Strategy), time.Since(start), err)
	return l, err
}
