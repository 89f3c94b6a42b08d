package level

// orthogonal lists 4-connectivity offsets: N, E, S, W.
var orthogonal = [4][2]int{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}

// Regions finds every 4-connected region of cells for which match returns
// true. Regions are discovered in row-major order of their first cell; cells
// within a region are in BFS order.
//
// Time:   O(W·H).
// Memory: O(W·H) for visited flags and output.
func (g *Grid) Regions(match func(Block) bool) [][]Cell {
	seen := make([]bool, g.width*g.height)
	var regions [][]Cell

	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			if !match(g.cells[y][x]) || seen[g.index(x, y)] {
				continue
			}
			queue := []Cell{{X: x, Y: y}}
			seen[g.index(x, y)] = true

			for qi := 0; qi < len(queue); qi++ {
				u := queue[qi]
				for _, d := range orthogonal {
					vx, vy := u.X+d[0], u.Y+d[1]
					if !g.InBounds(vx, vy) || !match(g.cells[vy][vx]) {
						continue
					}
					if vi := g.index(vx, vy); !seen[vi] {
						seen[vi] = true
						queue = append(queue, Cell{X: vx, Y: vy})
					}
				}
			}
			regions = append(regions, queue)
		}
	}
	return regions
}

// Is returns a Regions predicate matching any of blocks.
func Is(blocks ...Block) func(Block) bool {
	return func(b Block) bool {
		for _, want := range blocks {
			if b == want {
				return true
			}
		}
		return false
	}
}

// index maps (x,y) to a row-major index: y*width + x.
func (g *Grid) index(x, y int) int {
	return y*g.width + x
}
