// Package core_test verifies thread-safety of core.Graph under concurrent operations.
package core_test

import (
	"fmt"
	"sync"
	"testing"

	"github.com/katalvlaran/waypoint/core"
	"github.com/stretchr/testify/require"
)

// TestConcurrentAddEdge ensures concurrent AddEdge calls from a shared hub
// are safe and every neighbor appears.
func TestConcurrentAddEdge(t *testing.T) {
	const num = 200
	g := core.NewGraph()
	require.NoError(t, g.AddNode("X", core.NewPoint(0, 0)))
	for i := 0; i < num; i++ {
		require.NoError(t, g.AddNode(fmt.Sprintf("V%d", i), core.NewPoint(float64(i), 1)))
	}

	var wg sync.WaitGroup
	wg.Add(num)
	for i := 0; i < num; i++ {
		go func(id int) {
			defer wg.Done()
			g.AddEdge("X", fmt.Sprintf("V%d", id))
		}(i)
	}
	wg.Wait()

	nbs, err := g.Neighbors("X")
	require.NoError(t, err)
	require.Len(t, nbs, num)
}

// TestConcurrentReadWrite mixes readers with node removal to surface races
// under -race.
func TestConcurrentReadWrite(t *testing.T) {
	const rounds = 100
	g := core.NewGraph()
	require.NoError(t, g.AddNode("Base", core.NewPoint(0, 0)))
	for i := 0; i < rounds; i++ {
		id := fmt.Sprintf("V%d", i)
		require.NoError(t, g.AddNode(id, core.NewPoint(float64(i), 1)))
		g.AddEdge("Base", id)
	}

	var wg sync.WaitGroup
	wg.Add(2 * rounds)
	for i := 0; i < rounds; i++ {
		go func(id int) {
			defer wg.Done()
			g.RemoveNode(fmt.Sprintf("V%d", id))
		}(i)
		go func() {
			defer wg.Done()
			_ = g.Nodes()
			_, _ = g.Neighbors("Base")
		}()
	}
	wg.Wait()

	n, ok := g.Node("Base")
	require.True(t, ok)
	require.Zero(t, n.Degree())
}
