// File: methods_clone.go
// Role: Cloning and clearing graph instances.
// Concurrency:
//   - Read lock for snapshotting; no mutation of the source graph.

package core

// Clone returns a deep copy of the Graph: nodes, points and edge weights.
// A search may be bound to the clone while the original keeps changing.
//
// Complexity: O(V + E)
func (g *Graph) Clone() *Graph {
	g.mu.RLock()
	defer g.mu.RUnlock()

	clone := NewGraphWithCapacity(len(g.nodes))
	for id, n := range g.nodes {
		clone.nodes[id] = n.clone()
	}

	return clone
}

// Clear removes every node.
//
// Complexity: O(1) for map reallocation.
func (g *Graph) Clear() {
	g.mu.Lock()
	g.nodes = make(map[string]*Node)
	g.mu.Unlock()
}
