// SPDX-License-Identifier: MIT
//
// File: api.go
// Role: Read-only diagnostics on top of the core types.
// Policy:
//   - No algorithms or hidden state here.
//   - Every exported function documents complexity and locking strategy.

package core

// GraphStats is an immutable-by-convention snapshot of catalog sizes.
type GraphStats struct {
	// NodeCount is the number of nodes.
	NodeCount int

	// HalfEdgeCount counts stored directed half-edges.
	HalfEdgeCount int

	// SymmetricPairs counts unordered pairs {a,b} holding both a→b and b→a.
	SymmetricPairs int

	// DirectedOnly counts half-edges whose mirror is absent.
	DirectedOnly int

	// SelfLoops counts half-edges x→x. They are neither symmetric pairs nor
	// one-way edges.
	SelfLoops int

	// TotalWeight sums the weights of symmetric pairs once, of one-way
	// half-edges and of self-loops.
	TotalWeight float64
}

// Stats produces a deterministic, read-only snapshot of the graph's size and
// the split between symmetric and one-way edges.
//
// Implementation:
//   - Stage 1: Acquire the read lock.
//   - Stage 2: Scan every half-edge once, classifying it by whether its mirror exists.
//
// Determinism:
//   - Deterministic for a fixed graph state.
//
// Complexity:
//   - Time O(V+E), Space O(1).
func (g *Graph) Stats() *GraphStats {
	g.mu.RLock()
	defer g.mu.RUnlock()

	stats := GraphStats{NodeCount: len(g.nodes)}
	for id, n := range g.nodes {
		stats.HalfEdgeCount += len(n.edges)
		for to, w := range n.edges {
			if to == id {
				stats.SelfLoops++
				stats.TotalWeight += w
				continue
			}
			mirror, ok := g.nodes[to]
			if ok {
				if _, back := mirror.edges[id]; back {
					// count each symmetric pair from its smaller endpoint only
					if id <= to {
						stats.SymmetricPairs++
						stats.TotalWeight += w
					}
					continue
				}
			}
			stats.DirectedOnly++
			stats.TotalWeight += w
		}
	}

	return &stats
}
