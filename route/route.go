package route

import (
	"context"
	"fmt"

	"github.com/katalvlaran/waypoint/bfs"
	"github.com/katalvlaran/waypoint/core"
	"github.com/katalvlaran/waypoint/dfs"
	"github.com/katalvlaran/waypoint/dijkstra"
	"github.com/katalvlaran/waypoint/search"
)

// Result is the outcome of a finished (or abandoned) drive.
type Result struct {
	Algorithm Algorithm
	Status    search.Status
	Path      []search.Step // nil unless Status is Found
	Steps     int           // Next calls made by this drive
}

// Found reports whether a path was produced.
func (r Result) Found() bool { return r.Status == search.Found }

// IDs returns the node IDs along the path.
func (r Result) IDs() []string { return search.IDs(r.Path) }

// Distance is the path length in graph units. BFS and Dijkstra record
// cumulative distances, so it is the last step's distance; DFS records
// last-hop weights, which are summed.
func (r Result) Distance() float64 {
	if len(r.Path) == 0 {
		return 0
	}
	if r.Algorithm == DFS {
		return dfs.Total(r.Path)
	}

	return r.Path[len(r.Path)-1].Distance
}

// New validates g, start and dest, then builds the engine for algo.
//
// Errors:
//   - search.ErrNilGraph if g is nil.
//   - search.ErrNodeNotFound if start or dest is absent.
//   - ErrUnknownAlgorithm if algo is not BFS, DFS or Dijkstra.
//   - search.ErrOptionViolation for a bad search option.
func New(g *core.Graph, algo Algorithm, start, dest string, opts ...search.Option) (search.Search, error) {
	if err := search.Validate(g, start, dest); err != nil {
		return nil, err
	}

	// explicit nil: never wrap a nil engine in the interface
	switch algo {
	case BFS:
		s, err := bfs.New(g, start, dest, opts...)
		if err != nil {
			return nil, err
		}
		return s, nil
	case DFS:
		s, err := dfs.New(g, start, dest, opts...)
		if err != nil {
			return nil, err
		}
		return s, nil
	case Dijkstra:
		s, err := dijkstra.New(g, start, dest, opts...)
		if err != nil {
			return nil, err
		}
		return s, nil
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownAlgorithm, int(algo))
	}
}

// Find builds the engine for algo and runs it to completion without pacing.
func Find(g *core.Graph, algo Algorithm, start, dest string, opts ...search.Option) (Result, error) {
	s, err := New(g, algo, start, dest, opts...)
	if err != nil {
		return Result{Algorithm: algo}, err
	}

	return Drive(context.Background(), s)
}
