// Package route defines the route extraction result, its modes, options
// and sentinel errors.
package route

import (
	"errors"

	"github.com/katalvlaran/lvlgen/core"
	"github.com/katalvlaran/lvlgen/dfs"
)

var (
	// ErrGraphNil is returned when a nil *core.Graph is passed to Extract.
	ErrGraphNil = errors.New("route: graph is nil")

	// ErrStartNotFound indicates that the start cell resolves to no vertex.
	ErrStartNotFound = errors.New("route: start vertex not found")

	// ErrFinishNotFound indicates that the finish cell resolves to no vertex.
	ErrFinishNotFound = errors.New("route: finish vertex not found")

	// ErrNoPath indicates that finish is unreachable from start. The graph
	// is left unpruned.
	ErrNoPath = errors.New("route: no path from start to finish")
)

// Mode selects what Extract does with edges that are not on the route.
type Mode int

const (
	// Prune deletes every off-route edge; cascading deletion removes the
	// vertices they leave unreferenced.
	Prune Mode = iota
	// Mark leaves the graph untouched and only reports off-route edges.
	Mark
)

// String returns the lower-case mode name.
func (m Mode) String() string {
	switch m {
	case Prune:
		return "prune"
	case Mark:
		return "mark"
	default:
		return "unknown"
	}
}

// Option configures Extract.
type Option func(*Options)

// Options holds the Extract knobs.
type Options struct {
	Mode Mode

	// Search options passed through to dfs.Search (hooks).
	Search []dfs.Option
}

// DefaultOptions returns Options in Prune mode without search hooks.
func DefaultOptions() Options {
	return Options{Mode: Prune}
}

// WithMode sets the extraction mode.
func WithMode(m Mode) Option {
	return func(o *Options) {
		o.Mode = m
	}
}

// WithSearchOptions forwards opts to the underlying depth-first search.
func WithSearchOptions(opts ...dfs.Option) Option {
	return func(o *Options) {
		o.Search = append(o.Search, opts...)
	}
}

// Result describes one extracted route.
type Result struct {
	Start  core.Vertex
	Finish core.Vertex

	// Path lists route edges ordered start→finish, each in stored direction.
	Path []core.Edge

	// OffPath lists the edges not on the route, sorted by canonical key.
	// In Prune mode these edges are no longer in the graph.
	OffPath []core.Edge

	Mode Mode
}

// Len returns the number of route edges.
func (r *Result) Len() int {
	return len(r.Path)
}

// Vertices returns the route vertices ordered start→finish. A route whose
// start equals its finish yields the single start vertex.
func (r *Result) Vertices() []core.Vertex {
	vs, ok := dfs.Walk(r.Start, r.Path)
	if !ok {
		// Path is produced by Extract from a chain; unreachable in practice.
		return nil
	}
	return vs
}
