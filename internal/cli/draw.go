package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/tidytree/pkg/pipeline"
)

// drawCommand creates the draw command, which prints the tree as a grid.
func (c *CLI) drawCommand() *cobra.Command {
	var t treeOpts
	var g gridOpts

	cmd := &cobra.Command{
		Use:   "draw [tree]",
		Short: "Draw a binary tree as a character grid",
		Long: `Draw a binary tree as a character grid.

The tree is level-order text such as "[1,2,3,null,4]", a nested JSON
document {"label":"a","left":{...},"right":{...}}, or a JSON edge list
{"nodes":[{"id":"a"},...],"edges":[{"from":"a","to":"b","side":"left"}]},
given as the argument, with --input, or on stdin.`,
		Example: `  tidytree draw "[1,2,3,null,4]"
  tidytree draw --ascii --frame -i tree.json
  echo "[1,null,2]" | tidytree draw --labels`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := c.options(cmd, args, &t, &g)
			if err != nil {
				return err
			}
			opts.Formats = []string{pipeline.FormatGrid}
			return c.runDraw(cmd.Context(), opts, t.noCache)
		},
	}

	t.bind(cmd)
	g.bind(cmd)
	return cmd
}

func (c *CLI) runDraw(ctx context.Context, opts pipeline.Options, noCache bool) error {
	runner, err := c.newRunner(noCache)
	if err != nil {
		return err
	}
	defer runner.Close()

	prog := newProgress(c.Logger)
	res, err := runner.Execute(ctx, opts)
	if err != nil {
		return err
	}
	prog.done(fmt.Sprintf("drew %d nodes on %dx%d", res.Stats.NodeCount, res.Stats.Width, res.Stats.Height))

	if grid := res.Artifacts[pipeline.FormatGrid]; len(grid) > 0 {
		fmt.Fprintln(c.out, string(grid))
	}
	return nil
}
