package dfs_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/waypoint/core"
	"github.com/katalvlaran/waypoint/dfs"
	"github.com/katalvlaran/waypoint/search"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// corner builds A(0,0), B(0,3), C(4,3) with A–B and B–C.
func corner(t testing.TB) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	require.NoError(t, g.AddNode("A", core.NewPoint(0, 0)))
	require.NoError(t, g.AddNode("B", core.NewPoint(0, 3)))
	require.NoError(t, g.AddNode("C", core.NewPoint(4, 3)))
	g.AddEdge("A", "B")
	g.AddEdge("B", "C")

	return g
}

func TestNew_Errors(t *testing.T) {
	_, err := dfs.New(nil, "A", "B")
	require.ErrorIs(t, err, search.ErrNilGraph)

	_, err = dfs.New(corner(t), "Z", "A")
	require.ErrorIs(t, err, search.ErrNodeNotFound)
}

func TestFind_LastHopDistances(t *testing.T) {
	path, ok, err := dfs.Find(corner(t), "A", "C")
	require.NoError(t, err)
	require.True(t, ok)

	assert.Equal(t, []search.Step{
		{ID: "A", Distance: 0},
		{ID: "B", Distance: 3},
		{ID: "C", Distance: 4},
	}, path)
	assert.Equal(t, 7.0, dfs.Total(path))
}

func TestNext_LIFOOrder(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddNode("S", core.NewPoint(0, 0)))
	for i, id := range []string{"a", "b", "c"} {
		require.NoError(t, g.AddNode(id, core.NewPoint(float64(i+1), 0)))
		g.AddEdge("S", id)
	}

	s, err := dfs.New(g, "S", "a")
	require.NoError(t, err)
	require.Equal(t, search.Searching, s.Next()) // pop S
	require.Equal(t, search.Searching, s.Next()) // push a, b, c
	assert.Equal(t, []string{"a", "b", "c"}, ids(s.Visible()))

	var order []string
	for s.Next() == search.Searching {
		if s.State() == search.PushState() {
			order = append(order, s.Current())
		}
	}
	assert.Equal(t, []string{"c", "b"}, order, "largest ID is expanded first")
	assert.Equal(t, search.DoneState(search.Found), s.State())
}

func TestNext_IdempotentAfterDone(t *testing.T) {
	s, err := dfs.New(corner(t), "A", "C")
	require.NoError(t, err)
	for s.Next() == search.Searching {
	}
	visited := s.Visited()

	for i := 0; i < 3; i++ {
		assert.Equal(t, search.Found, s.Next())
	}
	assert.Equal(t, visited, s.Visited())
}

func TestFind_Disconnected(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddNode("A", core.NewPoint(0, 0)))
	require.NoError(t, g.AddNode("B", core.NewPoint(1, 1)))

	path, ok, err := dfs.Find(g, "A", "B")
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Nil(t, path)
}

// TestFind_SimplePath checks every found path on a complete graph is simple
// and follows existing edges.
func TestFind_SimplePath(t *testing.T) {
	g := core.NewGraph()
	const n = 6
	for i := 0; i < n; i++ {
		require.NoError(t, g.AddNode(fmt.Sprintf("v%d", i), core.NewPoint(float64(i), float64(i*i))))
	}
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			g.AddEdge(fmt.Sprintf("v%d", i), fmt.Sprintf("v%d", j))
		}
	}

	for i := 1; i < n; i++ {
		dest := fmt.Sprintf("v%d", i)
		path, ok, err := dfs.Find(g, "v0", dest)
		require.NoError(t, err)
		require.True(t, ok)

		seen := map[string]bool{}
		for k, st := range path {
			assert.False(t, seen[st.ID], "repeated %s", st.ID)
			seen[st.ID] = true
			if k > 0 {
				assert.True(t, g.HasEdge(path[k-1].ID, st.ID))
			}
		}
		assert.Equal(t, "v0", path[0].ID)
		assert.Equal(t, dest, path[len(path)-1].ID)
	}
}

func TestWithFilterNeighbor(t *testing.T) {
	g := corner(t)
	require.NoError(t, g.AddNode("D", core.NewPoint(4, 0)))
	g.AddEdge("A", "D")
	g.AddEdge("D", "C")

	// D is expanded first (largest ID); forbidding D→C forces the B detour.
	path, ok, err := dfs.Find(g, "A", "C", search.WithFilterNeighbor(func(curr, nbr string) bool {
		return !(curr == "D" && nbr == "C")
	}))
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, []string{"A", "B", "C"}, search.IDs(path))
}

func ids(entries []search.Entry) []string {
	out := make([]string, len(entries))
	for i, e := range entries {
		out[i] = e.ID
	}

	return out
}

func TestWithMaxDistance_CapsHopLength(t *testing.T) {
	// Every hop is at most 4, so a cap of 4 still reaches C.
	_, ok, err := dfs.Find(corner(t), "A", "C", search.WithMaxDistance(4))
	require.NoError(t, err)
	assert.True(t, ok)

	_, ok, err = dfs.Find(corner(t), "A", "C", search.WithMaxDistance(3.5))
	require.NoError(t, err)
	assert.False(t, ok)
}
