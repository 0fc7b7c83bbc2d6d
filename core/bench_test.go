// Package core_test provides benchmarks for core.Graph operations.
package core_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/waypoint/core"
)

// BenchmarkAddEdge measures symmetric edge insertion from a hub.
func BenchmarkAddEdge(b *testing.B) {
	const fan = 1024
	g := core.NewGraphWithCapacity(fan + 1)
	_ = g.AddNode("Root", core.NewPoint(0, 0))
	ids := make([]string, fan)
	for i := range ids {
		ids[i] = fmt.Sprintf("N%d", i)
		_ = g.AddNode(ids[i], core.NewPoint(float64(i), 1))
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		g.AddEdge("Root", ids[i%fan])
	}
}

// BenchmarkNeighbors measures the sorted neighbor snapshot of a dense hub.
func BenchmarkNeighbors(b *testing.B) {
	g := core.NewGraph()
	_ = g.AddNode("Root", core.NewPoint(0, 0))
	for i := 0; i < 256; i++ {
		id := fmt.Sprintf("N%d", i)
		_ = g.AddNode(id, core.NewPoint(float64(i), 1))
		g.AddEdge("Root", id)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = g.Neighbors("Root")
	}
}

// BenchmarkRemoveNode measures the cascade over every node.
func BenchmarkRemoveNode(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		b.StopTimer()
		g := core.NewGraph()
		_ = g.AddNode("Root", core.NewPoint(0, 0))
		for j := 0; j < 128; j++ {
			id := fmt.Sprintf("N%d", j)
			_ = g.AddNode(id, core.NewPoint(float64(j), 1))
			g.AddEdge("Root", id)
		}
		b.StartTimer()
		g.RemoveNode("Root")
	}
}
