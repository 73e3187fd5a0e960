package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	errs "github.com/matzehuels/tidytree/pkg/errors"
	treeio "github.com/matzehuels/tidytree/pkg/io"
	"github.com/matzehuels/tidytree/pkg/pipeline"
)

// convertCommand creates the convert command, which rewrites a tree in
// another input notation.
func (c *CLI) convertCommand() *cobra.Command {
	var (
		input string
		to    string
	)

	cmd := &cobra.Command{
		Use:   "convert [tree]",
		Short: "Convert a tree between nested JSON and edge-list JSON",
		Example: `  tidytree convert --to edges "[1,2,3]"
  tidytree convert --to nested -i edges.json`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := c.readTree(args, input)
			if err != nil {
				return err
			}
			root, err := pipeline.Parse(cmd.Context(), text)
			if err != nil {
				return err
			}

			switch to {
			case "edges":
				return treeio.WriteJSON(root.View(), c.out)
			case "nested":
				data, err := json.MarshalIndent(root, "", "  ")
				if err != nil {
					return err
				}
				fmt.Fprintln(c.out, string(data))
				return nil
			default:
				return errs.New(errs.ErrCodeInvalidInput, "unknown target %q (must be nested or edges)", to)
			}
		},
	}

	cmd.Flags().StringVarP(&input, "input", "i", "", "read the tree from a file (- for stdin)")
	cmd.Flags().StringVar(&to, "to", "nested", "target notation: nested, edges")
	return cmd
}
