// SPDX-License-Identifier: MIT
// Package: lvlgen/smooth
//
// smooth.go: Parametric cubic smoothing of a grid route.
//
// Model:
//   • N control points at t_i = i/(N-1).
//   • x(t) and y(t) are fitted independently with a piecewise cubic.
//   • The curve is sampled at k·N points t_j = j/(k·N-1), k defaults to 5.
//   • Smooth rounds samples half away from zero (math.Round).
//
// Guards:
//   • Fewer than MinPoints distinct points: the input is returned as a copy.

package smooth

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/interp"
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/katalvlaran/lvlgen/core"
)

// MinPoints is the smallest number of distinct control points that is smoothed.
const MinPoints = 4

// ErrFit wraps a spline fitting failure.
var ErrFit = errors.New("smooth: spline fit failed")

// Kind selects the cubic end conditions.
type Kind int

const (
	// NotAKnotSpline uses not-a-knot end conditions.
	NotAKnotSpline Kind = iota
	// NaturalSpline uses zero second derivatives at both ends.
	NaturalSpline
)

// String returns the lower-case kind name.
func (k Kind) String() string {
	switch k {
	case NotAKnotSpline:
		return "not-a-knot"
	case NaturalSpline:
		return "natural"
	default:
		return "unknown"
	}
}

// Option configures Smooth and Curve.
type Option func(*options)

type options struct {
	samplesPerPoint int
	kind            Kind
}

func defaultOptions() options {
	return options{samplesPerPoint: 5, kind: NotAKnotSpline}
}

// WithSamplesPerPoint sets the oversampling factor k. Panics if k < 1.
func WithSamplesPerPoint(k int) Option {
	if k < 1 {
		panic("smooth: WithSamplesPerPoint(k<1)")
	}
	return func(o *options) { o.samplesPerPoint = k }
}

// WithKind selects the spline end conditions.
func WithKind(k Kind) Option {
	return func(o *options) { o.kind = k }
}

// Smooth returns the resampled, rounded curve through points.
// With fewer than MinPoints distinct points it returns a copy of points.
func Smooth(points []core.Vertex, opts ...Option) ([]core.Vertex, error) {
	if Distinct(points) < MinPoints {
		return append([]core.Vertex(nil), points...), nil
	}
	curve, err := Curve(points, opts...)
	if err != nil {
		return nil, err
	}

	out := make([]core.Vertex, len(curve))
	for i, p := range curve {
		out[i] = core.V(int(math.Round(p.X)), int(math.Round(p.Y)))
	}
	return out, nil
}

// Curve fits and samples the curve through points without rounding.
// It requires at least MinPoints distinct points.
func Curve(points []core.Vertex, opts ...Option) ([]r2.Vec, error) {
	o := defaultOptions()
	for _, fn := range opts {
		fn(&o)
	}

	n := len(points)
	if Distinct(points) < MinPoints {
		return nil, fmt.Errorf("smooth: %d distinct points, need %d: %w", Distinct(points), MinPoints, ErrFit)
	}

	ts := make([]float64, n)
	xs := make([]float64, n)
	ys := make([]float64, n)
	for i, p := range points {
		ts[i] = float64(i) / float64(n-1)
		xs[i] = float64(p.X)
		ys[i] = float64(p.Y)
	}

	fx, fy := newPredictor(o.kind), newPredictor(o.kind)
	if err := fx.Fit(ts, xs); err != nil {
		return nil, fmt.Errorf("smooth: x(t): %v: %w", err, ErrFit)
	}
	if err := fy.Fit(ts, ys); err != nil {
		return nil, fmt.Errorf("smooth: y(t): %v: %w", err, ErrFit)
	}

	m := o.samplesPerPoint * n
	out := make([]r2.Vec, m)
	for j := 0; j < m; j++ {
		t := float64(j) / float64(m-1)
		if j == m-1 {
			t = 1 // exact endpoint
		}
		out[j] = r2.Vec{X: fx.Predict(t), Y: fy.Predict(t)}
	}
	return out, nil
}

// Distinct counts the distinct vertices in points.
func Distinct(points []core.Vertex) int {
	seen := make(map[core.Vertex]struct{}, len(points))
	for _, p := range points {
		seen[p] = struct{}{}
	}
	return len(seen)
}

func newPredictor(k Kind) interp.FittablePredictor {
	if k == NaturalSpline {
		return &interp.NaturalCubic{}
	}
	return &interp.NotAKnotCubic{}
}
