// Package lvlgen generates corridor-maze levels for 2D tile-based games.
//
// A run carves a random spanning tree into a regular mesh, extracts the
// route between a start and a finish cell, smooths it and paints it as a
// variable-width corridor onto a tile grid. The same preset and seed always
// produce the same level.
//
// Packages, in pipeline order:
//
//	core/      coordinate-keyed undirected Graph, Vertex, Edge
//	dfs/       iterative depth-first search with backtracking
//	mesh/      mesh coordinate space, vertex mesh, randomized carving
//	route/     start→finish route extraction and pruning
//	segment/   collinear run merging and an R-tree over segments
//	smooth/    parametric cubic smoothing of the route
//	raster/    Bresenham lines, noise widths, square-brush strokes
//	level/     block vocabulary, tile Grid, colour palette
//	preset/    YAML and built-in run configuration
//	render/    PNG export with an optional graph overlay
//	generator/ the pipeline itself
//
// Quick example:
//
//	p, _ := preset.Builtin("small")
//	gen, _ := generator.New(p)
//	res, _ := gen.Run()
//	_ = render.SavePNG("level.png", res.Grid, render.WithScale(8))
//
// The command cmd/lvlgen wraps the same steps behind flags.
package lvlgen
