package route_test

import (
	"context"
	"fmt"

	"github.com/katalvlaran/waypoint/core"
	"github.com/katalvlaran/waypoint/route"
)

// ExampleFind selects an engine by name and runs it to completion.
func ExampleFind() {
	g := core.NewGraph()
	_ = g.AddNode("A", core.NewPoint(0, 0))
	_ = g.AddNode("B", core.NewPoint(0, 3))
	_ = g.AddNode("C", core.NewPoint(4, 3))
	g.AddEdge("A", "B")
	g.AddEdge("B", "C")

	algo, _ := route.ParseAlgorithm("depth-first")
	res, _ := route.Find(g, algo, "A", "C")
	fmt.Println(res.Algorithm, res.Status, res.IDs(), res.Distance(), res.Steps)

	// Output:
	// dfs Found [A B C] 7 5
}

// ExampleDrive observes every step of a search.
func ExampleDrive() {
	g := core.NewGraph()
	_ = g.AddNode("A", core.NewPoint(0, 0))
	_ = g.AddNode("B", core.NewPoint(0, 1))
	g.AddEdge("A", "B")

	s, _ := route.New(g, route.BFS, "A", "B")
	_, _ = route.Drive(context.Background(), s, route.WithOnStep(func(snap route.Snapshot) {
		fmt.Printf("%d %s %s\n", snap.Step, snap.State, snap.Current)
	}))

	// Output:
	// 1 Push A
	// 2 Pop A
	// 3 Done(Found) A
}
