package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	errs "github.com/matzehuels/tidytree/pkg/errors"
	"github.com/matzehuels/tidytree/pkg/pipeline"
	"github.com/matzehuels/tidytree/pkg/tidy"
)

// treeOpts holds the flags shared by every command that lays out a tree.
type treeOpts struct {
	input      string // file to read the tree from ("-" for stdin)
	config     string // explicit config file
	separation int
	strategy   string
	iterative  bool
	noCache    bool
}

// gridOpts holds the flags that control grid drawing.
type gridOpts struct {
	ascii     bool
	labels    bool
	frame     bool
	adjacency int
}

func (o *treeOpts) bind(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&o.input, "input", "i", "", "read the tree from a file (- for stdin)")
	cmd.Flags().StringVar(&o.config, "config", "", "config file (default $XDG_CONFIG_HOME/tidytree/config.toml)")
	cmd.Flags().IntVarP(&o.separation, "separation", "s", tidy.DefaultSeparation, "minimum column gap between subtrees")
	cmd.Flags().StringVar(&o.strategy, "strategy", string(tidy.StrategyLevels), "contour strategy: levels, threaded")
	cmd.Flags().BoolVar(&o.iterative, "iterative", false, "use explicit stacks instead of recursion (deep trees)")
	cmd.Flags().BoolVar(&o.noCache, "no-cache", false, "disable the layout cache")
}

func (o *gridOpts) bind(cmd *cobra.Command) {
	cmd.Flags().BoolVar(&o.ascii, "ascii", false, "draw with ASCII characters only")
	cmd.Flags().BoolVar(&o.labels, "labels", false, "draw single-character labels instead of node glyphs")
	cmd.Flags().BoolVar(&o.frame, "frame", false, "draw a border around the grid")
	cmd.Flags().IntVar(&o.adjacency, "adjacency", 1, "max column distance joined by a diagonal")
}

// options merges the config file and the flags the user set explicitly
// into pipeline options. grid may be nil for commands without grid flags.
func (c *CLI) options(cmd *cobra.Command, args []string, t *treeOpts, g *gridOpts) (pipeline.Options, error) {
	cfg, err := loadConfig(t.config)
	if err != nil {
		return pipeline.Options{}, err
	}

	text, err := c.readTree(args, t.input)
	if err != nil {
		return pipeline.Options{}, err
	}

	opts := pipeline.Options{
		Tree:       text,
		Separation: cfg.Separation,
		Strategy:   cfg.Strategy,
		Iterative:  cfg.Iterative,
		ASCII:      cfg.ASCII,
		Labels:     cfg.Labels,
		Frame:      cfg.Frame,
		Adjacency:  cfg.Adjacency,
		Glyphs:     cfg.Glyphs,
		Logger:     c.Logger,
	}

	flags := cmd.Flags()
	if flags.Changed("separation") && t.separation < 1 {
		return pipeline.Options{}, errs.New(errs.ErrCodeInvalidInput, "separation must be at least 1, got %d", t.separation)
	}
	if flags.Changed("separation") || opts.Separation == 0 {
		opts.Separation = t.separation
	}
	if flags.Changed("strategy") || opts.Strategy == "" {
		opts.Strategy = t.strategy
	}
	if flags.Changed("iterative") {
		opts.Iterative = t.iterative
	}
	if g == nil {
		return opts, nil
	}
	if flags.Changed("ascii") {
		opts.ASCII = g.ascii
	}
	if flags.Changed("labels") {
		opts.Labels = g.labels
	}
	if flags.Changed("frame") {
		opts.Frame = g.frame
	}
	if flags.Changed("adjacency") || opts.Adjacency == nil {
		adj := g.adjacency
		opts.Adjacency = &adj
	}
	return opts, nil
}

// readTree takes the tree from the single argument, the --input file or
// standard input, in that order.
func (c *CLI) readTree(args []string, input string) (string, error) {
	switch {
	case len(args) > 0 && input != "":
		return "", errs.New(errs.ErrCodeInvalidInput, "give the tree as an argument or with --input, not both")
	case len(args) > 0:
		return args[0], nil
	case input != "" && input != "-":
		data, err := os.ReadFile(input)
		if err != nil {
			return "", fmt.Errorf("read tree: %w", err)
		}
		return string(data), nil
	}

	data, err := io.ReadAll(io.LimitReader(c.in, 1<<20+1))
	if err != nil {
		return "", fmt.Errorf("read tree from stdin: %w", err)
	}
	if strings.TrimSpace(string(data)) == "" {
		return "", errs.New(errs.ErrCodeInvalidInput, "no tree given: pass it as an argument, with --input, or on stdin")
	}
	return string(data), nil
}
