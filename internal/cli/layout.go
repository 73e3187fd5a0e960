package cli

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/matzehuels/tidytree/pkg/pipeline"
	"github.com/matzehuels/tidytree/pkg/tidy"
)

type layoutOpts struct {
	output string // write JSON here instead of stdout
	table  bool   // print a placement table instead of JSON
}

// layoutCommand creates the layout command, which prints node coordinates.
func (c *CLI) layoutCommand() *cobra.Command {
	var t treeOpts
	var o layoutOpts

	cmd := &cobra.Command{
		Use:   "layout [tree]",
		Short: "Compute node coordinates and print them as JSON",
		Example: `  tidytree layout "[1,2,3]"
  tidytree layout --table --strategy threaded "[1,2,3,4,5,6,7]"
  tidytree layout -i tree.json -o layout.json`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := c.options(cmd, args, &t, nil)
			if err != nil {
				return err
			}
			opts.Formats = []string{pipeline.FormatJSON}
			return c.runLayout(cmd.Context(), opts, o, t.noCache)
		},
	}

	t.bind(cmd)
	cmd.Flags().StringVarP(&o.output, "output", "o", "", "output file (default stdout)")
	cmd.Flags().BoolVar(&o.table, "table", false, "print a table of placements instead of JSON")
	return cmd
}

func (c *CLI) runLayout(ctx context.Context, opts pipeline.Options, o layoutOpts, noCache bool) error {
	runner, err := c.newRunner(noCache)
	if err != nil {
		return err
	}
	defer runner.Close()

	res, err := runner.Execute(ctx, opts)
	if err != nil {
		return err
	}

	if o.table {
		fmt.Fprintln(c.out, placementTable(res.Layout))
		return nil
	}

	data := res.Artifacts[pipeline.FormatJSON]
	if o.output == "" {
		fmt.Fprintln(c.out, string(data))
		return nil
	}
	if err := os.WriteFile(o.output, append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("write layout: %w", err)
	}
	printSuccess(c.out, "Layout %s", StyleNumber.Render(fmt.Sprintf("%dx%d", res.Stats.Width, res.Stats.Height)))
	printFile(c.out, o.output)
	return nil
}

// placementTable renders one row per node in preorder.
func placementTable(l *tidy.Layout) string {
	ref := func(i int) string {
		if i < 0 {
			return "-"
		}
		return strconv.Itoa(i)
	}

	rows := make([][]string, len(l.Nodes))
	for i, p := range l.Nodes {
		rows[i] = []string{
			strconv.Itoa(i), p.Label,
			strconv.Itoa(p.Depth), strconv.Itoa(p.Column), strconv.Itoa(p.Offset),
			ref(p.Parent), ref(p.Left), ref(p.Right),
		}
	}

	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true).Padding(0, 1)
	cellStyle := lipgloss.NewStyle().Padding(0, 1)
	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("#", "Label", "Depth", "Column", "Offset", "Parent", "Left", "Right").
		Rows(rows...).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == -1 {
				return headerStyle
			}
			return cellStyle
		}).
		String()
}
