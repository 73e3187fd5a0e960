package nodelink

import (
	"bytes"
	"context"
	"fmt"
	"regexp"
	"strconv"

	"github.com/goccy/go-graphviz"

	"github.com/matzehuels/tidytree/pkg/tidy"
)

// Default scale factors, in inches.
const (
	DefaultColumnWidth = 0.3
	DefaultRowHeight   = 0.8
)

// Options configures node-link diagram rendering.
type Options struct {
	// ColumnWidth is the horizontal distance between adjacent layout columns.
	ColumnWidth float64
	// RowHeight is the vertical distance between levels.
	RowHeight float64
	// Detailed appends each node's depth and column to its label.
	Detailed bool
}

func (o Options) withDefaults() Options {
	if o.ColumnWidth <= 0 {
		o.ColumnWidth = DefaultColumnWidth
	}
	if o.RowHeight <= 0 {
		o.RowHeight = DefaultRowHeight
	}
	return o
}

// ToDOT converts a layout to Graphviz DOT format with pinned positions.
// The resulting DOT string can be rendered using [RenderSVG].
//
// Nodes are named by their preorder index; the root is n0.
func ToDOT(l *tidy.Layout, opts Options) string {
	opts = opts.withDefaults()

	var buf bytes.Buffer
	buf.WriteString("digraph G {\n")
	buf.WriteString("  layout=neato;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  splines=line;\n")
	buf.WriteString("  overlap=true;\n")
	buf.WriteString("  node [shape=circle, style=filled, fillcolor=white, fontsize=12, width=0.3, fixedsize=shape];\n")
	buf.WriteString("  edge [arrowhead=none];\n")
	buf.WriteString("\n")

	for i, n := range l.Nodes {
		x := float64(n.Column) * opts.ColumnWidth
		y := float64(l.Height-1-n.Depth) * opts.RowHeight
		fmt.Fprintf(&buf, "  n%d [label=%q, pos=\"%s,%s!\"];\n",
			i, fmtLabel(n, opts.Detailed), fmtFloat(x), fmtFloat(y))
	}

	buf.WriteString("\n")
	for i, n := range l.Nodes {
		if n.Left >= 0 {
			fmt.Fprintf(&buf, "  n%d -> n%d;\n", i, n.Left)
		}
		if n.Right >= 0 {
			fmt.Fprintf(&buf, "  n%d -> n%d;\n", i, n.Right)
		}
	}

	buf.WriteString("}\n")
	return buf.String()
}

func fmtLabel(n tidy.Placement, detailed bool) string {
	if !detailed {
		return n.Label
	}
	return fmt.Sprintf("%s\n(%d,%d)", n.Label, n.Depth, n.Column)
}

func fmtFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// RenderSVG renders a DOT graph to SVG using Graphviz's neato engine, which
// honours pinned positions.
func RenderSVG(ctx context.Context, dot string) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()
	gv.SetLayout(graphviz.NEATO)

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return normalizeViewBox(buf.Bytes()), nil
}

var (
	svgTagRe  = regexp.MustCompile(`<svg[^>]*>`)
	viewBoxRe = regexp.MustCompile(`viewBox="([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)"`)
)

// normalizeViewBox replaces Graphviz's svg element with one whose viewBox
// starts at the origin and whose size matches it.
func normalizeViewBox(svg []byte) []byte {
	match := viewBoxRe.FindSubmatch(svg)
	if match == nil {
		return svg
	}

	w, _ := strconv.ParseFloat(string(match[3]), 64)
	h, _ := strconv.ParseFloat(string(match[4]), 64)
	if w == 0 || h == 0 {
		return svg
	}

	tag := fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.2f %.2f" width="%.0f" height="%.0f">`,
		w, h, w, h)
	return svgTagRe.ReplaceAll(svg, []byte(tag))
}
