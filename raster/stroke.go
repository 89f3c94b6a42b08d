// SPDX-License-Identifier: MIT
// Package: lvlgen/raster
//
// stroke.go: Square-brush painting with an all-or-nothing bounds contract.
//
// Contract:
//   • Segment i (points[i]→points[i+1]) is traced with Line and every line
//     cell (x,y) paints [x-w, x+w] × [y-w, y+w] with w = widths[i].
//   • A single point paints one square.
//   • The painted bounding box is computed first; if it leaves the canvas,
//     ErrOutOfBounds is returned and the canvas is untouched.

package raster

import (
	"fmt"

	"github.com/paulmach/orb"

	"github.com/katalvlaran/lvlgen/core"
	"github.com/katalvlaran/lvlgen/level"
)

// Stroke paints the polyline points with per-point widths.
func Stroke(c Canvas, points []core.Vertex, widths []int, b level.Block) error {
	if len(points) != len(widths) {
		return fmt.Errorf("raster: Stroke: %d points, %d widths: %w", len(points), len(widths), ErrWidthsMismatch)
	}
	if len(points) == 0 {
		return nil
	}

	bound, err := StrokeBounds(points, widths)
	if err != nil {
		return err
	}
	if err := checkBounds(c, bound); err != nil {
		return fmt.Errorf("raster: Stroke: %w", err)
	}

	if len(points) == 1 {
		return paintSquare(c, points[0], widths[0], b)
	}
	for i := 0; i+1 < len(points); i++ {
		for _, p := range Line(points[i], points[i+1]) {
			if err := paintSquare(c, p, widths[i], b); err != nil {
				return err
			}
		}
	}
	return nil
}

// Square paints the (2r+1)×(2r+1) square centred at p.
func Square(c Canvas, p core.Vertex, r int, b level.Block) error {
	if r < 0 {
		return fmt.Errorf("raster: Square: r=%d: %w", r, ErrNegativeWidth)
	}
	if err := checkBounds(c, squareBound(p, r)); err != nil {
		return fmt.Errorf("raster: Square: %w", err)
	}
	return paintSquare(c, p, r, b)
}

// StrokeBounds returns the exact bounding box of the cells Stroke would
// paint for points and widths (inclusive corners). Both slices must be
// non-empty and of equal length.
func StrokeBounds(points []core.Vertex, widths []int) (orb.Bound, error) {
	if len(points) == 0 || len(points) != len(widths) {
		return orb.Bound{}, ErrWidthsMismatch
	}
	for i, w := range widths {
		if w < 0 {
			return orb.Bound{}, fmt.Errorf("raster: widths[%d]=%d: %w", i, w, ErrNegativeWidth)
		}
	}

	bound := squareBound(points[0], widths[0])
	for i := 0; i+1 < len(points); i++ {
		seg := orb.MultiPoint{toPoint(points[i]), toPoint(points[i+1])}.Bound()
		bound = bound.Union(seg.Pad(float64(widths[i])))
	}
	return bound, nil
}

// checkBounds fails with ErrOutOfBounds unless bound lies inside c.
func checkBounds(c Canvas, bound orb.Bound) error {
	canvas := orb.Bound{
		Min: orb.Point{0, 0},
		Max: orb.Point{float64(c.Width() - 1), float64(c.Height() - 1)},
	}
	if c.Width() < 1 || c.Height() < 1 || !canvas.Contains(bound.Min) || !canvas.Contains(bound.Max) {
		return fmt.Errorf("painted %v-%v outside %dx%d: %w",
			bound.Min, bound.Max, c.Width(), c.Height(), ErrOutOfBounds)
	}
	return nil
}

func squareBound(p core.Vertex, r int) orb.Bound {
	return orb.Bound{Min: toPoint(p), Max: toPoint(p)}.Pad(float64(r))
}

// paintSquare writes the square without a bounds pre-check.
func paintSquare(c Canvas, p core.Vertex, r int, b level.Block) error {
	for y := p.Y - r; y <= p.Y+r; y++ {
		for x := p.X - r; x <= p.X+r; x++ {
			if err := c.Set(x, y, b); err != nil {
				return err
			}
		}
	}
	return nil
}

func toPoint(v core.Vertex) orb.Point {
	return orb.Point{float64(v.X), float64(v.Y)}
}
