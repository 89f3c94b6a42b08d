// Package level holds the tile-level side of a generated map.
//
// What:
//
//   - Block: the tile vocabulary (Empty, Hookable, Freeze, Start, Finish,
//     Spawn, Flood) with the numeric ids of the target game.
//   - Grid: a mutable W×H surface addressed [y][x] with strict bounds.
//   - Palette: block → "#rrggbb" colour for image export.
//   - Regions: 4-connected components of matching cells, used to check
//     that a carved corridor is one walkable area.
//
// Errors:
//
//   - ErrEmptyGrid, ErrNonRectangular: construction.
//   - ErrOutOfBounds: Set outside the grid.
//   - ErrUnknownBlock: ParseBlock.
package level
