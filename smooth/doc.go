// Package smooth turns a jagged, grid-aligned route into a smooth curve.
//
// The ordered route vertices become control points of two independent
// piecewise cubic interpolants x(t) and y(t) over evenly spaced parameters
// in [0, 1] (gonum interp). The curve is resampled at five times the number
// of control points and rounded back to grid coordinates.
//
// Routes with fewer than four distinct vertices are returned verbatim:
// cubic interpolation needs at least four control points.
package smooth
