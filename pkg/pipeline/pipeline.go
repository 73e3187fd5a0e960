// Package pipeline provides the parse → layout → render pipeline for
// tidytree.
//
// The CLI and the HTTP API both run trees through this package so that
// validation, caching and output formats behave the same everywhere.
//
// # Architecture
//
// The pipeline consists of three stages:
//
//  1. Parse: read level-order or nested JSON text into a tree and reject
//     anything that is not a tree
//  2. Layout: compute grid coordinates with the tidy engine
//  3. Render: produce the requested formats (grid, json, dot, svg)
//
// Each stage can be run independently or as part of the complete pipeline.
//
// # Usage
//
//	runner := pipeline.NewRunner(cache, nil, logger)
//	result, err := runner.Execute(ctx, pipeline.Options{
//	    Tree:    "[1,2,3,null,4]",
//	    Formats: []string{pipeline.FormatGrid},
//	})
//	fmt.Println(string(result.Artifacts[pipeline.FormatGrid]))
package pipeline

import (
	"slices"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/tidytree/pkg/cache"
	errs "github.com/matzehuels/tidytree/pkg/errors"
	"github.com/matzehuels/tidytree/pkg/render/grid"
	"github.com/matzehuels/tidytree/pkg/tidy"
	"github.com/matzehuels/tidytree/pkg/tree"
)

// =============================================================================
// Default Values - Single Source of Truth for CLI and API
// =============================================================================

// Format constants for output formats.
const (
	FormatGrid = "grid"
	FormatJSON = "json"
	FormatDOT  = "dot"
	FormatSVG  = "svg"
)

// ValidFormats is the set of supported output formats.
var ValidFormats = map[string]bool{
	FormatGrid: true,
	FormatJSON: true,
	FormatDOT:  true,
	FormatSVG:  true,
}

// =============================================================================
// Options - Pipeline Configuration
// =============================================================================

// Options contains all configuration for the pipeline.
// This struct supports JSON serialization for API requests.
type Options struct {
	// Input: level-order text such as "[1,null,2]" or a nested JSON node.
	Tree string `json:"tree"`

	// Layout options
	Separation int    `json:"separation,omitempty"`
	Strategy   string `json:"strategy,omitempty"`
	Iterative  bool   `json:"iterative,omitempty"`

	// Render options
	Formats   []string          `json:"formats,omitempty"`
	ASCII     bool              `json:"ascii,omitempty"`
	Labels    bool              `json:"labels,omitempty"`
	Frame     bool              `json:"frame,omitempty"`
	Adjacency *int              `json:"adjacency,omitempty"`
	Glyphs    map[string]string `json:"glyphs,omitempty"`

	// Runtime options (not serialized)
	Logger *log.Logger `json:"-"`
}

// Result contains the outputs of a pipeline run.
type Result struct {
	// Tree is the parsed input.
	Tree *tree.Node

	// TreeHash is the content hash of the canonical tree encoding.
	TreeHash string

	// Layout holds the computed coordinates.
	Layout *tidy.Layout

	// Artifacts contains rendered outputs keyed by format.
	Artifacts map[string][]byte

	// Stats contains timing and size information.
	Stats Stats

	// CacheInfo tracks which stages hit the cache.
	CacheInfo CacheInfo
}

// Stats contains pipeline execution statistics.
type Stats struct {
	NodeCount  int
	Width      int
	Height     int
	ParseTime  time.Duration
	LayoutTime time.Duration
	RenderTime time.Duration
}

// CacheInfo tracks cache hits for each pipeline stage.
type CacheInfo struct {
	LayoutHit bool // Whether the layout came from cache
	RenderHit bool // Whether all artifacts came from cache
}

// =============================================================================
// Validation Functions
// =============================================================================

// ValidateFormat checks that a format is valid.
func ValidateFormat(format string) error {
	if !ValidFormats[format] {
		return errs.New(errs.ErrCodeInvalidInput, "invalid format: %q (must be one of: grid, json, dot, svg)", format)
	}
	return nil
}

// ValidateFormats checks that all formats are valid.
func ValidateFormats(formats []string) error {
	for _, f := range formats {
		if err := ValidateFormat(f); err != nil {
			return err
		}
	}
	return nil
}

// =============================================================================
// Options Methods
// =============================================================================

// SetDefaults fills unset options. It is idempotent.
func (o *Options) SetDefaults() {
	if o.Separation == 0 {
		o.Separation = tidy.DefaultSeparation
	}
	if o.Strategy == "" {
		o.Strategy = string(tidy.StrategyLevels)
	}
	if len(o.Formats) == 0 {
		o.Formats = []string{FormatGrid}
	}
}

// Validate checks every option after defaults have been applied.
func (o *Options) Validate() error {
	if err := errs.ValidateTreeText(o.Tree); err != nil {
		return err
	}
	if err := o.TidyOptions().Validate(); err != nil {
		return err
	}
	if err := ValidateFormats(o.Formats); err != nil {
		return err
	}
	_, err := o.Renderer()
	return err
}

// ValidateAndSetDefaults applies defaults and validates in one step.
func (o *Options) ValidateAndSetDefaults() error {
	o.SetDefaults()
	return o.Validate()
}

// TidyOptions returns the layout engine options.
func (o *Options) TidyOptions() tidy.Options {
	traversal := tidy.TraversalRecursive
	if o.Iterative {
		traversal = tidy.TraversalIterative
	}
	return tidy.Options{
		Separation: o.Separation,
		Strategy:   tidy.Strategy(o.Strategy),
		Traversal:  traversal,
	}.WithDefaults()
}

// GlyphSet returns the base preset with any overrides applied.
func (o *Options) GlyphSet() (grid.Glyphs, error) {
	base := grid.Unicode
	if o.ASCII {
		base = grid.ASCII
	}
	over, err := grid.ParseGlyphs(o.Glyphs)
	if err != nil {
		return grid.Glyphs{}, err
	}
	return base.Merge(over), nil
}

// Renderer builds the grid renderer described by o.
func (o *Options) Renderer() (*grid.Renderer, error) {
	glyphs, err := o.GlyphSet()
	if err != nil {
		return nil, err
	}
	opts := []grid.Option{grid.WithGlyphs(glyphs), grid.WithAdjacency(o.adjacency())}
	if o.Labels {
		opts = append(opts, grid.WithLabels())
	}
	return grid.NewRenderer(opts...)
}

func (o *Options) adjacency() int {
	if o.Adjacency == nil {
		return grid.DefaultAdjacency
	}
	return *o.Adjacency
}

// LayoutKeyOpts returns cache key options for layout computation.
// The traversal mode does not change coordinates and is left out.
func (o *Options) LayoutKeyOpts() cache.LayoutKeyOpts {
	return cache.LayoutKeyOpts{
		Separation: o.Separation,
		Strategy:   o.Strategy,
	}
}

// ArtifactKeyOpts returns cache key options for artifact rendering.
func (o *Options) ArtifactKeyOpts(format string) cache.ArtifactKeyOpts {
	k := cache.ArtifactKeyOpts{Format: format}
	switch format {
	case FormatGrid:
	case FormatDOT, FormatSVG:
		// Labels selects detailed node labels.
		k.Labels = o.Labels
		return k
	default:
		return k
	}
	k.ASCII = o.ASCII
	k.Labels = o.Labels
	k.Frame = o.Frame
	k.Adjacency = o.adjacency()
	if len(o.Glyphs) > 0 {
		keys := make([]string, 0, len(o.Glyphs))
		for name := range o.Glyphs {
			keys = append(keys, name)
		}
		slices.Sort(keys)
		var b strings.Builder
		for _, name := range keys {
			b.WriteString(name + "=" + o.Glyphs[name] + ";")
		}
		k.Glyphs = b.String()
	}
	return k
}
