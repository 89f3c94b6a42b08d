// Package raster paints routes onto a tile grid: integer line tracing,
// noise-driven stroke widths and square-brush strokes.
package raster

import (
	"errors"

	"github.com/katalvlaran/lvlgen/level"
)

var (
	// ErrOutOfBounds indicates that a stroke would paint outside the canvas.
	// Nothing is written when it is returned.
	ErrOutOfBounds = errors.New("raster: stroke exceeds canvas bounds")

	// ErrWidthsMismatch indicates len(widths) != len(points).
	ErrWidthsMismatch = errors.New("raster: widths and points differ in length")

	// ErrNeedRand indicates Widths was called without a random source.
	ErrNeedRand = errors.New("raster: rng is required")

	// ErrNegativeWidth indicates a negative half-thickness.
	ErrNegativeWidth = errors.New("raster: negative width")
)

// Canvas is the writable surface a stroke paints onto; *level.Grid
// satisfies it.
type Canvas interface {
	Width() int
	Height() int
	Set(x, y int, b level.Block) error
}

var _ Canvas = (*level.Grid)(nil)
