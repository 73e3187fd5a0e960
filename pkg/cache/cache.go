// Package cache provides content-addressed storage for layouts and rendered
// artifacts.
//
// # Backends
//
//   - [FileCache]: one JSON file per entry under a directory, with optional
//     expiry. Used by the CLI under $XDG_CACHE_HOME/tidytree.
//   - [NullCache]: stores nothing. Used with --no-cache and in tests.
//   - [RedisCache] and [MongoCache]: shared stores for several API
//     instances behind a load balancer.
//
// [Open] picks a backend by name.
//
// # Keys
//
// A [Keyer] derives keys from content hashes plus the options that affect
// the cached value. Options that do not change the result, such as the
// traversal mode, are left out so equivalent requests share an entry.
//
//	k := cache.NewDefaultKeyer()
//	lk := k.LayoutKey(cache.Hash(treeJSON), cache.LayoutKeyOpts{Separation: 3, Strategy: "levels"})
//	ak := k.ArtifactKey(cache.Hash(layoutJSON), cache.ArtifactKeyOpts{Format: "grid"})
package cache

import (
	"context"
	"time"
)

// Default lifetimes for cache entries.
const (
	LayoutTTL   = 7 * 24 * time.Hour
	ArtifactTTL = 7 * 24 * time.Hour
)

// Cache stores opaque byte values by key.
type Cache interface {
	// Get returns the value for key and whether it was present.
	Get(ctx context.Context, key string) ([]byte, bool, error)
	// Set stores data under key. A ttl of 0 means no expiry.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error
	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error
	// Clear removes every entry.
	Clear(ctx context.Context) error
	Close() error
}

// LayoutKeyOpts lists the layout options that change coordinates.
type LayoutKeyOpts struct {
	Separation int    `json:"separation"`
	Strategy   string `json:"strategy"`
}

// ArtifactKeyOpts lists the render options that change an artifact.
type ArtifactKeyOpts struct {
	Format    string `json:"format"` // "grid", "dot" or "svg"
	ASCII     bool   `json:"ascii,omitempty"`
	Labels    bool   `json:"labels,omitempty"`
	Frame     bool   `json:"frame,omitempty"`
	Adjacency int    `json:"adjacency,omitempty"`
	Glyphs    string `json:"glyphs,omitempty"` // canonical glyph override string
}

// Keyer derives cache keys.
type Keyer interface {
	LayoutKey(treeHash string, opts LayoutKeyOpts) string
	ArtifactKey(layoutHash string, opts ArtifactKeyOpts) string
}

// DefaultKeyer produces keys of the form "kind:sha256".
type DefaultKeyer struct{}

// NewDefaultKeyer returns the standard keyer.
func NewDefaultKeyer() Keyer { return DefaultKeyer{} }

// LayoutKey hashes the tree hash together with the layout options.
func (DefaultKeyer) LayoutKey(treeHash string, opts LayoutKeyOpts) string {
	return hashKey("layout", treeHash, opts)
}

// ArtifactKey hashes the layout hash together with the render options.
func (DefaultKeyer) ArtifactKey(layoutHash string, opts ArtifactKeyOpts) string {
	return hashKey("artifact", layoutHash, opts)
}
