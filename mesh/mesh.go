// SPDX-License-Identifier: MIT
// Package: lvlgen/mesh
//
// mesh.go: CreateVertexMesh.
//
// Contract:
//   • Adds N×N vertices at Space.Point(i, j); no edges.
//   • Idempotent: vertices already present are kept as they are.
//   • Invalid Space fails before any mutation.
//
// Determinism:
//   • Insertion order i asc, then j asc (does not influence adjacency).

package mesh

import (
	"fmt"

	"github.com/katalvlaran/lvlgen/core"
)

const methodCreateVertexMesh = "CreateVertexMesh"

// CreateVertexMesh populates g with one isolated vertex per mesh cell.
// Complexity: O(N² log N²).
func CreateVertexMesh(g *core.Graph, space Space) error {
	if err := space.Validate(); err != nil {
		return fmt.Errorf("%s: %w", methodCreateVertexMesh, err)
	}
	for i := 0; i < space.Size; i++ {
		for j := 0; j < space.Size; j++ {
			p := space.Point(Cell{I: i, J: j})
			g.AddVertex(p.X, p.Y)
		}
	}
	return nil
}
