// File: methods_adjacent.go
// Role: Neighborhood APIs (Neighbors, NeighborIDs, AdjacencyList).
// Determinism:
//   - Neighbors() and NeighborIDs() are sorted by neighbor ID asc.
//   - AdjacencyList() returns per-node neighbor slices sorted lex asc.
// Concurrency:
//   - Read operations hold g.mu read lock; results are independent copies.

package core

import (
	"fmt"
	"sort"
)

// Neighbors returns the outgoing edges of id.
//
// Implementation:
//   - Stage 1: Validate id is non-empty (ErrEmptyNodeID).
//   - Stage 2: Acquire the read lock and resolve the node (ErrNodeNotFound).
//   - Stage 3: Copy the neighbor mapping into a slice sorted by neighbor ID.
//
// Behavior highlights:
//   - Deterministic ordering; this is the expansion order of every search engine.
//   - The returned slice is a copy; mutating it does not touch the graph.
//
// Complexity:
//   - Time O(d log d), Space O(d), where d is the out-degree of id.
func (g *Graph) Neighbors(id string) ([]Edge, error) {
	if id == "" {
		return nil, ErrEmptyNodeID
	}

	g.mu.RLock()
	defer g.mu.RUnlock()

	n, ok := g.nodes[id]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrNodeNotFound, id)
	}

	return n.Edges(), nil
}

// NeighborIDs returns the neighbor IDs of id, sorted ascending.
func (g *Graph) NeighborIDs(id string) ([]string, error) {
	edges, err := g.Neighbors(id)
	if err != nil {
		return nil, err
	}
	ids := make([]string, len(edges))
	for i, e := range edges {
		ids[i] = e.To
	}

	return ids, nil
}

// AdjacencyList returns a map from node ID to its sorted neighbor IDs.
// Nodes without edges map to an empty, non-nil slice.
//
// Complexity: O(V + E·log d).
func (g *Graph) AdjacencyList() map[string][]string {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make(map[string][]string, len(g.nodes))
	for id, n := range g.nodes {
		ids := make([]string, 0, len(n.edges))
		for to := range n.edges {
			ids = append(ids, to)
		}
		sort.Strings(ids)
		out[id] = ids
	}

	return out
}
