package route

import (
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/waypoint/bfs"
	"github.com/katalvlaran/waypoint/dfs"
	"github.com/katalvlaran/waypoint/dijkstra"
	"github.com/katalvlaran/waypoint/search"
)

// ErrUnknownAlgorithm is returned for an unrecognized algorithm name.
var ErrUnknownAlgorithm = errors.New("route: unknown algorithm")

// Algorithm selects a search engine.
type Algorithm int

const (
	// BFS is breadth-first search (fewest hops).
	BFS Algorithm = iota + 1
	// DFS is depth-first search (any path).
	DFS
	// Dijkstra is the shortest weighted path.
	Dijkstra
)

var algorithmNames = map[string]Algorithm{
	"bfs":           BFS,
	"breadth-first": BFS,
	"dfs":           DFS,
	"depth-first":   DFS,
	"dijkstra":      Dijkstra,
	"shortest-path": Dijkstra,
}

// Algorithms lists every engine in declaration order.
func Algorithms() []Algorithm { return []Algorithm{BFS, DFS, Dijkstra} }

// ParseAlgorithm accepts "bfs", "breadth-first", "dfs", "depth-first",
// "dijkstra" and "shortest-path", case-insensitively.
func ParseAlgorithm(s string) (Algorithm, error) {
	a, ok := algorithmNames[strings.ToLower(strings.TrimSpace(s))]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, s)
	}

	return a, nil
}

// String returns the canonical short name.
func (a Algorithm) String() string {
	switch a {
	case BFS:
		return "bfs"
	case DFS:
		return "dfs"
	case Dijkstra:
		return "dijkstra"
	default:
		return fmt.Sprintf("Algorithm(%d)", int(a))
	}
}

// MarshalText implements encoding.TextMarshaler.
func (a Algorithm) MarshalText() ([]byte, error) {
	if !a.valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownAlgorithm, int(a))
	}

	return []byte(a.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (a *Algorithm) UnmarshalText(b []byte) error {
	v, err := ParseAlgorithm(string(b))
	if err != nil {
		return err
	}
	*a = v

	return nil
}

func (a Algorithm) valid() bool { return a >= BFS && a <= Dijkstra }

// AlgorithmOf reports which engine s is. It returns false for a Search
// implemented outside this module.
func AlgorithmOf(s search.Search) (Algorithm, bool) {
	switch s.(type) {
	case *bfs.BreadthFirstSearch:
		return BFS, true
	case *dfs.DepthFirstSearch:
		return DFS, true
	case *dijkstra.ShortestPath:
		return Dijkstra, true
	default:
		return 0, false
	}
}
