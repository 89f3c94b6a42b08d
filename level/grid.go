// SPDX-License-Identifier: MIT
// Package: lvlgen/level
//
// grid.go: The mutable tile grid.
//
// Contract:
//   • Addressed [y][x]; (0,0) is the top-left cell.
//   • Writes outside the grid fail with ErrOutOfBounds; nothing is clamped.
//   • Rows() and FromRows() deep-copy; the Grid never aliases caller memory.

package level

import (
	"fmt"
)

// Grid is a W×H array of blocks.
type Grid struct {
	width, height int
	cells         [][]Block
}

// NewGrid returns a w×h grid filled with fill.
// Returns ErrEmptyGrid if w or h is below 1.
func NewGrid(w, h int, fill Block) (*Grid, error) {
	if w < 1 || h < 1 {
		return nil, fmt.Errorf("level: NewGrid(%d, %d): %w", w, h, ErrEmptyGrid)
	}
	g := &Grid{width: w, height: h, cells: make([][]Block, h)}
	for y := range g.cells {
		g.cells[y] = make([]Block, w)
	}
	g.Fill(fill)
	return g, nil
}

// FromRows builds a grid from a non-empty rectangular slice, deep-copying it.
// Complexity: O(W×H).
func FromRows(rows [][]Block) (*Grid, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(rows), len(rows[0])
	for _, row := range rows {
		if len(row) != w {
			return nil, ErrNonRectangular
		}
	}
	g := &Grid{width: w, height: h, cells: make([][]Block, h)}
	for y := 0; y < h; y++ {
		g.cells[y] = append([]Block(nil), rows[y]...)
	}
	return g, nil
}

// Width returns the number of columns.
func (g *Grid) Width() int { return g.width }

// Height returns the number of rows.
func (g *Grid) Height() int { return g.height }

// InBounds reports whether (x,y) lies within the grid boundaries.
// Complexity: O(1).
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.width && y >= 0 && y < g.height
}

// At returns the block at (x,y); false when out of bounds.
func (g *Grid) At(x, y int) (Block, bool) {
	if !g.InBounds(x, y) {
		return 0, false
	}
	return g.cells[y][x], true
}

// Set stores b at (x,y).
func (g *Grid) Set(x, y int, b Block) error {
	if !g.InBounds(x, y) {
		return fmt.Errorf("level: Set(%d, %d) on %dx%d: %w", x, y, g.width, g.height, ErrOutOfBounds)
	}
	g.cells[y][x] = b
	return nil
}

// Fill overwrites every cell with b.
func (g *Grid) Fill(b Block) {
	for y := range g.cells {
		row := g.cells[y]
		for x := range row {
			row[x] = b
		}
	}
}

// FillBorder paints a rim of the given width along all four edges.
// Widths covering the whole grid fill it; width ≤ 0 is a no-op.
func (g *Grid) FillBorder(width int, b Block) {
	if width <= 0 {
		return
	}
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			if x < width || y < width || x >= g.width-width || y >= g.height-width {
				g.cells[y][x] = b
			}
		}
	}
}

// Rows returns a deep copy of the cells, indexed [y][x].
func (g *Grid) Rows() [][]Block {
	out := make([][]Block, g.height)
	for y := range g.cells {
		out[y] = append([]Block(nil), g.cells[y]...)
	}
	return out
}

// Count returns how many cells hold b.
func (g *Grid) Count(b Block) int {
	n := 0
	for _, row := range g.cells {
		for _, c := range row {
			if c == b {
				n++
			}
		}
	}
	return n
}

// Clone returns an independent copy of g.
func (g *Grid) Clone() *Grid {
	return &Grid{width: g.width, height: g.height, cells: g.Rows()}
}

// Equal reports whether o has the same size and contents.
func (g *Grid) Equal(o *Grid) bool {
	if o == nil || g.width != o.width || g.height != o.height {
		return false
	}
	for y := range g.cells {
		for x := range g.cells[y] {
			if g.cells[y][x] != o.cells[y][x] {
				return false
			}
		}
	}
	return true
}
