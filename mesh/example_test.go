// SPDX-License-Identifier: MIT

package mesh_test

import (
	"fmt"

	"github.com/katalvlaran/lvlgen/core"
	"github.com/katalvlaran/lvlgen/mesh"
)

// ExampleConnectRandom carves a 3×3 mesh; any seed yields a spanning tree.
func ExampleConnectRandom() {
	space, _ := mesh.NewSpace(3, 10)
	g := core.NewGraph()
	_ = mesh.CreateVertexMesh(g, space)
	_ = mesh.ConnectRandom(g, space, mesh.C(0, 0), mesh.WithSeed(1))

	fmt.Println("vertices:", g.VertexCount())
	fmt.Println("edges:", g.EdgeCount())
	fmt.Println("extent:", space.Extent())
	// Output:
	// vertices: 9
	// edges: 8
	// extent: 40
}
