package dfs_test

import (
	"fmt"

	"github.com/katalvlaran/waypoint/core"
	"github.com/katalvlaran/waypoint/dfs"
)

// ExampleFind shows the last-hop distances recorded by depth-first search.
func ExampleFind() {
	g := core.NewGraph()
	_ = g.AddNode("A", core.NewPoint(0, 0))
	_ = g.AddNode("B", core.NewPoint(0, 3))
	_ = g.AddNode("C", core.NewPoint(4, 3))
	g.AddEdge("A", "B")
	g.AddEdge("B", "C")

	path, _, _ := dfs.Find(g, "A", "C")
	for _, step := range path {
		fmt.Printf("%s %.0f\n", step.ID, step.Distance)
	}
	fmt.Printf("total %.0f\n", dfs.Total(path))

	// Output:
	// A 0
	// B 3
	// C 4
	// total 7
}
