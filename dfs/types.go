// Package dfs defines sentinel errors and options for the from→to
// depth-first search: arrival and backtrack hooks.
package dfs

import (
	"errors"

	"github.com/katalvlaran/lvlgen/core"
)

var (
	// ErrGraphNil is returned when a nil *core.Graph is passed to Search.
	ErrGraphNil = errors.New("dfs: graph is nil")

	// ErrVertexNotFound indicates that the from or to vertex is not in the graph.
	ErrVertexNotFound = errors.New("dfs: vertex not found")

	// ErrNoPath indicates that the search exhausted its stack without reaching the target.
	ErrNoPath = errors.New("dfs: no path between vertices")
)

// Option configures optional behavior of Search.
type Option func(*Options)

// Options holds the hooks invoked during a search.
// Hooks run synchronously; returning an error aborts the search.
type Options struct {
	// OnVisit, if non-nil, is invoked each time the search arrives at a
	// vertex for the first time (including the start vertex).
	OnVisit func(v core.Vertex) error

	// OnBacktrack, if non-nil, is invoked with the dead-end vertex popped
	// from the history stack.
	OnBacktrack func(v core.Vertex) error
}

// DefaultOptions returns Options with no hooks installed.
func DefaultOptions() Options {
	return Options{}
}

// WithOnVisit returns an Option that installs fn as the arrival hook.
func WithOnVisit(fn func(v core.Vertex) error) Option {
	return func(o *Options) {
		o.OnVisit = fn
	}
}

// WithOnBacktrack returns an Option that installs fn as the backtrack hook.
func WithOnBacktrack(fn func(v core.Vertex) error) Option {
	return func(o *Options) {
		o.OnBacktrack = fn
	}
}
