// SPDX-License-Identifier: MIT
// Package: lvlgen/segment
//
// index.go: R-tree over merged segments.
//
// Geometry:
//   • A segment covers the grid cells of its bounding box; the box of an
//     axis-aligned segment (x0,y0)-(x1,y1) spans [min, max+1) on each axis.
//   • Cell queries use a half-cell box centred in the cell, so adjacent
//     boxes that only touch never match.

package segment

import (
	"sort"

	"github.com/dhconnelly/rtreego"

	"github.com/katalvlaran/lvlgen/core"
)

// entry wraps a segment for R-tree storage.
type entry struct {
	seg  core.Edge
	bbox rtreego.Rect
}

// Bounds implements rtreego.Spatial.
func (e *entry) Bounds() rtreego.Rect {
	return e.bbox
}

// Index answers "which segments cover this grid cell" queries.
type Index struct {
	tree     *rtreego.Rtree
	segments []core.Edge
}

// NewIndex builds an Index over segs.
func NewIndex(segs []core.Edge) *Index {
	tree := rtreego.NewTree(2, 25, 50) // 2D, min 25, max 50 entries per node
	kept := make([]core.Edge, 0, len(segs))
	for _, s := range segs {
		bbox, err := cellBox(s)
		if err != nil {
			continue
		}
		tree.Insert(&entry{seg: s, bbox: bbox})
		kept = append(kept, s)
	}

	return &Index{tree: tree, segments: kept}
}

// At returns the segments whose cells include (x, y), sorted by canonical key.
func (ix *Index) At(x, y int) []core.Edge {
	q, err := rtreego.NewRect(
		rtreego.Point{float64(x) + 0.25, float64(y) + 0.25},
		[]float64{0.5, 0.5},
	)
	if err != nil {
		return nil
	}

	hits := ix.tree.SearchIntersect(q)
	out := make([]core.Edge, 0, len(hits))
	for _, h := range hits {
		out = append(out, h.(*entry).seg)
	}
	sort.Slice(out, func(i, j int) bool {
		a, b := out[i].Key(), out[j].Key()
		if a.A != b.A {
			return a.A.Less(b.A)
		}
		return a.B.Less(b.B)
	})

	return out
}

// Covered reports whether any segment covers (x, y).
func (ix *Index) Covered(x, y int) bool {
	return len(ix.At(x, y)) > 0
}

// Len returns the number of indexed segments.
func (ix *Index) Len() int {
	return ix.tree.Size()
}

// Segments returns a copy of the indexed segments in insertion order.
func (ix *Index) Segments() []core.Edge {
	return append([]core.Edge(nil), ix.segments...)
}

// cellBox returns the cell-covering box of s.
func cellBox(s core.Edge) (rtreego.Rect, error) {
	minX, maxX := order(s.From.X, s.To.X)
	minY, maxY := order(s.From.Y, s.To.Y)
	return rtreego.NewRect(
		rtreego.Point{float64(minX), float64(minY)},
		[]float64{float64(maxX-minX) + 1, float64(maxY-minY) + 1},
	)
}

func order(a, b int) (int, int) {
	if a <= b {
		return a, b
	}
	return b, a
}
