package pipeline

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/matzehuels/tidytree/pkg/graph"
	"github.com/matzehuels/tidytree/pkg/observability"
	"github.com/matzehuels/tidytree/pkg/render/nodelink"
	"github.com/matzehuels/tidytree/pkg/tidy"
)

// RenderArtifacts produces every format in opts.Formats from l.
func RenderArtifacts(ctx context.Context, l *tidy.Layout, opts Options) (map[string][]byte, error) {
	artifacts := make(map[string][]byte, len(opts.Formats))
	for _, format := range opts.Formats {
		data, err := RenderFormat(ctx, l, format, opts)
		if err != nil {
			return nil, err
		}
		artifacts[format] = data
	}
	return artifacts, nil
}

// RenderFormat produces a single artifact.
func RenderFormat(ctx context.Context, l *tidy.Layout, format string, opts Options) ([]byte, error) {
	hooks := observability.Pipeline()
	hooks.OnRenderStart(ctx, format)
	start := time.Now()

	data, err := renderFormat(ctx, l, format, opts)
	if err != nil {
		err = fmt.Errorf("render %s: %w", format, err)
	}
	hooks.OnRenderComplete(ctx, format, time.Since(start), err)
	return data, err
}

func renderFormat(ctx context.Context, l *tidy.Layout, format string, opts Options) ([]byte, error) {
	switch format {
	case FormatGrid:
		return renderGrid(l, opts)
	case FormatJSON:
		return graph.MarshalLayout(l.Export())
	case FormatDOT:
		return []byte(nodelink.ToDOT(l, nodelink.Options{Detailed: opts.Labels})), nil
	case FormatSVG:
		return nodelink.RenderSVG(ctx, nodelink.ToDOT(l, nodelink.Options{Detailed: opts.Labels}))
	default:
		return nil, ValidateFormat(format)
	}
}

func renderGrid(l *tidy.Layout, opts Options) ([]byte, error) {
	r, err := opts.Renderer()
	if err != nil {
		return nil, err
	}
	g := r.Render(l)
	if !opts.Frame {
		return []byte(g.String()), nil
	}
	border := lipgloss.RoundedBorder()
	if opts.ASCII {
		border = lipgloss.ASCIIBorder()
	}
	return []byte(g.Frame(border)), nil
}
