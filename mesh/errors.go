// SPDX-License-Identifier: MIT
// Package: lvlgen/mesh
//
// errors.go: Sentinel errors for the mesh package.
//
// Error policy:
//   • Only sentinel variables are exposed; callers use errors.Is.
//   • Implementations attach context with %w (method tag first).
//   • Option constructors panic on meaningless input; algorithms never panic.

package mesh

import "errors"

// ErrInvalidSize indicates a mesh size below 1.
var ErrInvalidSize = errors.New("mesh: size must be at least 1")

// ErrInvalidSpacing indicates a cell spacing below 1.
var ErrInvalidSpacing = errors.New("mesh: spacing must be at least 1")

// ErrCellOutOfRange indicates a mesh cell outside [0, size) on some axis.
var ErrCellOutOfRange = errors.New("mesh: cell out of range")

// ErrStartNotFound indicates that the start cell resolves to no vertex in
// the graph; carving did not touch the graph.
var ErrStartNotFound = errors.New("mesh: start vertex not found")

// ErrNeedRand indicates that carving was requested without a random source
// (use WithSeed or WithRand).
var ErrNeedRand = errors.New("mesh: rng is required")
