// Package generator orchestrates one generation run: it validates a
// preset, builds and carves the mesh, extracts the start→finish route,
// shapes it (spline or merged segments) and paints the corridor, the route
// markers and the frozen rim onto a fresh level grid.
//
// Runs are deterministic: the preset seed drives a single random source
// threaded through carving and width generation, so the same preset always
// yields the same graph and the same grid.
//
// Logging goes through log/slog and is silent until SetLogger is called.
package generator
