// Package raster turns a point sequence into painted grid cells.
//
// What:
//
//   - Line: symmetric integer Bresenham tracing, endpoints included.
//   - Widths: one half-thickness per point from 1D Perlin noise of the point
//     index, so widths drift gradually; floored at 1.
//   - Stroke: for each consecutive pair, trace the line and paint a full
//     square neighbourhood of the pair's width around every line cell.
//   - Square: one square brush stamp (used for route markers).
//
// Bounds:
//
//   - Stroke and Square compute the painted box (orb.Bound) before writing.
//     Overflow is a caller or configuration error: ErrOutOfBounds, with no
//     partial writes. Nothing is clamped.
//
// Determinism:
//
//   - Widths consumes exactly two values from the rng: Intn(1001) for the
//     noise offset, then Int63 for the noise seed.
package raster
