// Package render exports a level grid as an image.
//
// Draw paints the grid into a gg.Context (one scale×scale square per cell,
// coloured through a level.Palette); PNG and SavePNG encode the result.
// WithGraphOverlay draws a maze graph on top of the tiles, which is useful
// to inspect the mesh, the carved tree or the extracted route.
package render
