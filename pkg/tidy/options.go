package tidy

import (
	errs "github.com/matzehuels/tidytree/pkg/errors"
)

// DefaultSeparation is the minimum horizontal distance between two nodes on
// the same level.
const DefaultSeparation = 3

// MaxSeparation bounds Options.Separation.
const MaxSeparation = 1 << 16

// Strategy selects the contour builder.
type Strategy string

const (
	// StrategyLevels merges per-level contour slices.
	StrategyLevels Strategy = "levels"
	// StrategyThreaded walks extreme-node contours with threads.
	StrategyThreaded Strategy = "threaded"
)

// Traversal selects how the depth-first passes are driven.
type Traversal string

const (
	// TraversalRecursive uses the call stack.
	TraversalRecursive Traversal = "recursive"
	// TraversalIterative uses explicit stacks.
	TraversalIterative Traversal = "iterative"
)

// Options configures Build. The zero value selects the defaults.
type Options struct {
	Separation int       `json:"separation,omitempty" toml:"separation"`
	Strategy   Strategy  `json:"strategy,omitempty" toml:"strategy"`
	Traversal  Traversal `json:"traversal,omitempty" toml:"traversal"`
}

// WithDefaults returns o with zero fields replaced by their defaults.
func (o Options) WithDefaults() Options {
	if o.Separation == 0 {
		o.Separation = DefaultSeparation
	}
	if o.Strategy == "" {
		o.Strategy = StrategyLevels
	}
	if o.Traversal == "" {
		o.Traversal = TraversalRecursive
	}
	return o
}

// Validate checks o after defaults have been applied.
func (o Options) Validate() error {
	if o.Separation < 1 || o.Separation > MaxSeparation {
		return errs.New(errs.ErrCodeInvalidInput, "separation must be between 1 and %d, got %d", MaxSeparation, o.Separation)
	}
	if _, err := ParseStrategy(string(o.Strategy)); err != nil {
		return err
	}
	if _, err := ParseTraversal(string(o.Traversal)); err != nil {
		return err
	}
	return nil
}

// ParseStrategy converts a strategy name. The empty string selects
// StrategyLevels.
func ParseStrategy(s string) (Strategy, error) {
	switch Strategy(s) {
	case "", StrategyLevels:
		return StrategyLevels, nil
	case StrategyThreaded:
		return StrategyThreaded, nil
	default:
		return "", errs.New(errs.ErrCodeInvalidInput, "unknown strategy %q (must be %q or %q)", s, StrategyLevels, StrategyThreaded)
	}
}

// ParseTraversal converts a traversal name. The empty string selects
// TraversalRecursive.
func ParseTraversal(s string) (Traversal, error) {
	switch Traversal(s) {
	case "", TraversalRecursive:
		return TraversalRecursive, nil
	case TraversalIterative:
		return TraversalIterative, nil
	default:
		return "", errs.New(errs.ErrCodeInvalidInput, "unknown traversal %q (must be %q or %q)", s, TraversalRecursive, TraversalIterative)
	}
}
