package search

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/waypoint/core"
)

// Validate checks that g is non-nil and holds every id. The missing-node error
// wraps both ErrNodeNotFound and core.ErrNodeNotFound.
func Validate(g *core.Graph, ids ...string) error {
	if g == nil {
		return ErrNilGraph
	}
	if err := g.Require(ids...); err != nil {
		return fmt.Errorf("%w: %w", ErrNodeNotFound, err)
	}

	return nil
}

// Reconstruct walks visited from dest back to the Sentinel and returns the
// reversed walk, start first. Distances are copied verbatim.
//
// A dest missing from visited yields nil. A predecessor chain that revisits a
// node (impossible for engines in this module) is cut at the repeat.
//
// Complexity: O(L) for a path of L steps.
func Reconstruct(visited map[string]Hop, dest string) []Step {
	if _, ok := visited[dest]; !ok {
		return nil
	}

	var (
		path = make([]Step, 0, 8)
		seen = make(map[string]struct{}, 8)
	)
	for id := dest; ; {
		hop, ok := visited[id]
		if !ok {
			break
		}
		if _, dup := seen[id]; dup {
			break
		}
		seen[id] = struct{}{}
		path = append(path, Step{ID: id, Distance: hop.Distance})
		if hop.From == Sentinel {
			break
		}
		id = hop.From
	}

	// reverse to get start → dest
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path
}

// SortedEntries flattens visited into entries sorted by ID.
func SortedEntries(visited map[string]Hop) []Entry {
	out := make([]Entry, 0, len(visited))
	for id, hop := range visited {
		out = append(out, Entry{ID: id, Hop: hop})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })

	return out
}

// IDs projects a path onto its node IDs.
func IDs(path []Step) []string {
	ids := make([]string, len(path))
	for i, s := range path {
		ids[i] = s.ID
	}

	return ids
}
