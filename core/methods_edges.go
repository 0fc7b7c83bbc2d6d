// File: methods_edges.go
// Role: Edge lifecycle & queries: AddEdge/AddDirectedEdge/RemoveEdge/EdgeCount.
// Determinism:
//   - Weights are a pure function of the endpoint points.
// Concurrency:
//   - Mutations under g.mu write lock, queries under read lock.

package core

// AddEdge connects a and b in both directions with weight Distance(a, b),
// overwriting any weight previously stored between the pair.
//
// Steps:
//  1. Look up both endpoints under the write lock.
//  2. If either is missing, return without writing anything.
//  3. Store the weight on a's side and on b's side.
//
// AddEdge reports nothing: a missing endpoint is a silent no-op.
// Complexity: O(1).
func (g *Graph) AddEdge(a, b string) {
	g.mu.Lock()
	defer g.mu.Unlock()

	na, nb, ok := g.endpoints(a, b)
	if !ok {
		return
	}
	w := na.point.Distance(nb.point)
	na.edges[b] = w
	nb.edges[a] = w
}

// AddDirectedEdge adds a → b with weight Distance(a, b). b's neighbor mapping
// is left untouched. Like AddEdge, a missing endpoint makes it a no-op.
func (g *Graph) AddDirectedEdge(a, b string) {
	g.mu.Lock()
	defer g.mu.Unlock()

	na, nb, ok := g.endpoints(a, b)
	if !ok {
		return
	}
	na.edges[b] = na.point.Distance(nb.point)
}

// RemoveEdge removes the half-edge id → other and returns its weight.
// The mirror other → id, if any, is kept; remove it with a second call.
func (g *Graph) RemoveEdge(id, other string) (float64, bool) {
	g.mu.Lock()
	defer g.mu.Unlock()

	n, ok := g.nodes[id]
	if !ok {
		return 0, false
	}
	w, ok := n.edges[other]
	if !ok {
		return 0, false
	}
	delete(n.edges, other)

	return w, true
}

// HasEdge reports whether the half-edge from → to exists.
func (g *Graph) HasEdge(from, to string) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	n, ok := g.nodes[from]
	if !ok {
		return false
	}
	_, ok = n.edges[to]

	return ok
}

// EdgeCount returns the number of stored half-edges. An AddEdge pair counts
// twice, an AddDirectedEdge once.
// Complexity: O(V).
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	total := 0
	for _, n := range g.nodes {
		total += len(n.edges)
	}

	return total
}

// endpoints resolves both nodes; the caller holds g.mu.
func (g *Graph) endpoints(a, b string) (*Node, *Node, bool) {
	na, ok := g.nodes[a]
	if !ok {
		return nil, nil, false
	}
	nb, ok := g.nodes[b]
	if !ok {
		return nil, nil, false
	}

	return na, nb, true
}
