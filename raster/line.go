package raster

import (
	"github.com/katalvlaran/lvlgen/core"
)

// Line returns every grid cell on the segment a→b, both endpoints included,
// using integer-only Bresenham stepping.
//
// The segment is always traced from the smaller endpoint (core.Vertex.Less)
// so that Line(b, a) is exactly the reverse of Line(a, b).
// Complexity: O(max(|dx|, |dy|)).
func Line(a, b core.Vertex) []core.Vertex {
	if b.Less(a) {
		out := bresenham(b, a)
		for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
			out[i], out[j] = out[j], out[i]
		}
		return out
	}
	return bresenham(a, b)
}

func bresenham(from, to core.Vertex) []core.Vertex {
	dx := abs(to.X - from.X)
	dy := abs(to.Y - from.Y)
	sx, sy := step(from.X, to.X), step(from.Y, to.Y)
	errAcc := dx - dy

	out := make([]core.Vertex, 0, max(dx, dy)+1)
	x, y := from.X, from.Y
	for {
		out = append(out, core.V(x, y))
		if x == to.X && y == to.Y {
			return out
		}
		e2 := 2 * errAcc
		if e2 > -dy {
			errAcc -= dy
			x += sx
		}
		if e2 < dx {
			errAcc += dx
			y += sy
		}
	}
}

func step(from, to int) int {
	if from < to {
		return 1
	}
	return -1
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
