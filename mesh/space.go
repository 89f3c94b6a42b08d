// SPDX-License-Identifier: MIT
// Package: lvlgen/mesh
//
// space.go: The mesh coordinate space.
//
// Canonical model:
//   • Exclusive convention: a mesh of size N has N×N cells, (i, j) ∈ [0, N)².
//   • Cell (i, j) sits at grid position (S·(i+1), S·(j+1)); grid row/column 0
//     up to S-1 is the unused border of one spacing unit.
//   • Bounds checks are mesh-relative: only 0 ≤ i, j < N is ever compared.

package mesh

import (
	"fmt"

	"github.com/katalvlaran/lvlgen/core"
)

// Cell addresses a mesh cell by its mesh indices.
type Cell struct {
	I int
	J int
}

// C is shorthand for Cell{I: i, J: j}.
func C(i, j int) Cell {
	return Cell{I: i, J: j}
}

// String renders the cell as "[i,j]".
func (c Cell) String() string {
	return fmt.Sprintf("[%d,%d]", c.I, c.J)
}

// Space maps mesh cells to grid coordinates. It is a pure value; every
// pipeline stage uses the same Space for one run.
type Space struct {
	Size    int // N: cells per axis
	Spacing int // S: grid cells between adjacent mesh vertices
}

// NewSpace validates size and spacing and returns the Space.
func NewSpace(size, spacing int) (Space, error) {
	s := Space{Size: size, Spacing: spacing}
	if err := s.Validate(); err != nil {
		return Space{}, err
	}
	return s, nil
}

// Validate reports ErrInvalidSize or ErrInvalidSpacing.
func (s Space) Validate() error {
	if s.Size < 1 {
		return fmt.Errorf("mesh: size=%d: %w", s.Size, ErrInvalidSize)
	}
	if s.Spacing < 1 {
		return fmt.Errorf("mesh: spacing=%d: %w", s.Spacing, ErrInvalidSpacing)
	}
	return nil
}

// Contains reports whether c lies inside the mesh.
func (s Space) Contains(c Cell) bool {
	return c.I >= 0 && c.I < s.Size && c.J >= 0 && c.J < s.Size
}

// Point returns the grid vertex of cell c. It does not bounds-check.
func (s Space) Point(c Cell) core.Vertex {
	return core.V(s.Spacing*(c.I+1), s.Spacing*(c.J+1))
}

// CellOf maps a grid vertex back to its mesh cell. The second result is
// false when v is not on a mesh position inside the mesh.
func (s Space) CellOf(v core.Vertex) (Cell, bool) {
	if s.Spacing < 1 || v.X%s.Spacing != 0 || v.Y%s.Spacing != 0 {
		return Cell{}, false
	}
	c := Cell{I: v.X/s.Spacing - 1, J: v.Y/s.Spacing - 1}
	if !s.Contains(c) {
		return Cell{}, false
	}
	return c, true
}

// Clamp pulls v into the square spanned by the mesh vertices,
// [S, S·N] on both axes.
func (s Space) Clamp(v core.Vertex) core.Vertex {
	lo, hi := s.Spacing, s.Spacing*s.Size
	return core.V(min(max(v.X, lo), hi), min(max(v.Y, lo), hi))
}

// VertexAt resolves cell c to the graph vertex stored at its grid position.
// Cells outside the mesh and positions without a vertex report false.
func (s Space) VertexAt(g *core.Graph, c Cell) (core.Vertex, bool) {
	if !s.Contains(c) {
		return core.Vertex{}, false
	}
	p := s.Point(c)
	return g.VertexAt(p.X, p.Y)
}

// Extent returns the minimum grid side, S·(N+1), that holds the mesh plus
// one spacing unit of border on each side.
func (s Space) Extent() int {
	return s.Spacing * (s.Size + 1)
}

// CellCount returns N².
func (s Space) CellCount() int {
	return s.Size * s.Size
}
