package segment_test

import (
	"fmt"

	"github.com/katalvlaran/lvlgen/core"
	"github.com/katalvlaran/lvlgen/segment"
)

// ExampleGroupEdges merges an L-shaped run of unit edges into two segments.
func ExampleGroupEdges() {
	edges := []core.Edge{
		core.NewEdge(core.V(0, 0), core.V(10, 0)),
		core.NewEdge(core.V(10, 0), core.V(20, 0)),
		core.NewEdge(core.V(20, 0), core.V(20, 10)),
	}
	for _, s := range segment.GroupEdges(edges) {
		fmt.Println(s)
	}
	// Output:
	// (0,0)-(20,0)
	// (20,0)-(20,10)
}
