package core_test

import (
	"fmt"

	"github.com/katalvlaran/lvlgen/core"
)

// ExampleGraph_DeleteEdge shows cascading cleanup: removing the only edge of
// a vertex removes the vertex as well.
func ExampleGraph_DeleteEdge() {
	g := core.NewGraph()
	g.Connect(core.V(10, 10), core.V(20, 10))
	g.Connect(core.V(20, 10), core.V(20, 20))

	g.DeleteEdge(core.NewEdge(core.V(20, 20), core.V(20, 10)))

	fmt.Println("vertices:", g.Vertices())
	fmt.Println("edges:", g.Edges())
	// Output:
	// vertices: [(10,10) (20,10)]
	// edges: [(10,10)-(20,10)]
}
