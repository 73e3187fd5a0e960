package grid

import (
	errs "github.com/matzehuels/tidytree/pkg/errors"
	"github.com/matzehuels/tidytree/pkg/tidy"
)

// DefaultAdjacency is the largest parent-to-child column distance that is
// drawn as a single diagonal.
const DefaultAdjacency = 1

// Option configures a Renderer.
type Option func(*Renderer)

// Renderer draws layouts into grids. It is immutable after construction and
// safe for concurrent use.
type Renderer struct {
	glyphs    Glyphs
	adjacency int
	labels    bool
}

// WithGlyphs replaces the glyph set. It is validated by NewRenderer.
func WithGlyphs(g Glyphs) Option { return func(r *Renderer) { r.glyphs = g } }

// WithAdjacency sets the largest column distance drawn as a diagonal.
// 0 draws corners only, except under layouts with separation 1 where
// neighbouring connectors would share a cell.
func WithAdjacency(n int) Option { return func(r *Renderer) { r.adjacency = n } }

// WithLabels draws single-rune labels in place of the node glyph.
func WithLabels() Option { return func(r *Renderer) { r.labels = true } }

// NewRenderer returns a Renderer using the Unicode glyphs unless overridden.
// It fails with INVALID_GLYPHS for an incomplete glyph set and with
// INVALID_INPUT for a negative adjacency threshold.
func NewRenderer(opts ...Option) (*Renderer, error) {
	r := &Renderer{glyphs: Unicode, adjacency: DefaultAdjacency}
	for _, opt := range opts {
		opt(r)
	}
	if err := r.glyphs.Validate(); err != nil {
		return nil, err
	}
	if r.adjacency < 0 {
		return nil, errs.New(errs.ErrCodeInvalidInput, "adjacency must not be negative, got %d", r.adjacency)
	}
	return r, nil
}

// cell is one glyph placement.
type cell struct {
	row, col int
	r        rune
}

// Render draws l. An empty layout yields an empty grid.
func (r *Renderer) Render(l *tidy.Layout) Grid {
	if l == nil || l.Empty() {
		return Grid{}
	}
	g := Grid{Rows: 2*l.Height - 1, Cols: l.Width}
	g.Cells = make([][]rune, g.Rows)
	for i := range g.Cells {
		row := make([]rune, g.Cols)
		for j := range row {
			row[j] = r.glyphs.Blank
		}
		g.Cells[i] = row
	}
	for _, c := range r.cells(l) {
		g.Cells[c.row][c.col] = c.r
	}
	return g
}

// cells lists every non-blank placement: node glyphs followed by the
// connectors of each parent.
func (r *Renderer) cells(l *tidy.Layout) []cell {
	adj := r.adjacency
	if l.Separation < 2 {
		// Same-depth nodes may sit in neighbouring columns, and a corner
		// under one parent would take the cell of the next one's elbow.
		adj = max(adj, 1)
	}
	out := make([]cell, 0, 2*len(l.Nodes))
	for _, n := range l.Nodes {
		out = append(out, cell{2 * n.Depth, n.Column, r.nodeGlyph(n.Label)})
	}
	for _, n := range l.Nodes {
		out = r.connect(out, l, n, adj)
	}
	return out
}

func (r *Renderer) nodeGlyph(label string) rune {
	if !r.labels {
		return r.glyphs.Node
	}
	rs := []rune(label)
	if len(rs) != 1 {
		return r.glyphs.Node
	}
	return rs[0]
}

func (r *Renderer) connect(out []cell, l *tidy.Layout, p tidy.Placement, adj int) []cell {
	row := 2*p.Depth + 1
	farLeft, farRight := false, false

	if p.Left >= 0 {
		c := l.Nodes[p.Left].Column
		if p.Column-c <= adj {
			out = append(out, cell{row, p.Column - 1, r.glyphs.Left})
		} else {
			farLeft = true
			out = append(out, cell{row, c, r.glyphs.LeftChild})
			for x := c + 1; x < p.Column; x++ {
				out = append(out, cell{row, x, r.glyphs.Horizontal})
			}
		}
	}
	if p.Right >= 0 {
		c := l.Nodes[p.Right].Column
		if c-p.Column <= adj {
			out = append(out, cell{row, p.Column + 1, r.glyphs.Right})
		} else {
			farRight = true
			for x := p.Column + 1; x < c; x++ {
				out = append(out, cell{row, x, r.glyphs.Horizontal})
			}
			out = append(out, cell{row, c, r.glyphs.RightChild})
		}
	}

	switch {
	case farLeft && farRight:
		out = append(out, cell{row, p.Column, r.glyphs.Junction})
	case farLeft:
		out = append(out, cell{row, p.Column, r.glyphs.UnderLeft})
	case farRight:
		out = append(out, cell{row, p.Column, r.glyphs.UnderRight})
	}
	return out
}
