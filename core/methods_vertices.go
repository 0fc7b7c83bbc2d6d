// File: methods_vertices.go
// Role: Node lifecycle & queries.
//
// Determinism:
//   - IDs() returns node IDs sorted lexicographically ascending.
//
// Concurrency:
//   - Node catalog protected by g.mu.

package core

import (
	"fmt"
	"sort"
)

// ID returns the node identifier.
func (n *Node) ID() string { return n.id }

// Point returns the node position.
func (n *Node) Point() Point { return n.point }

// Degree returns the number of outgoing edges.
func (n *Node) Degree() int { return len(n.edges) }

// Weight returns the weight of the edge to id, if present.
func (n *Node) Weight(id string) (float64, bool) {
	w, ok := n.edges[id]

	return w, ok
}

// Edges returns the outgoing edges sorted by neighbor ID.
// Complexity: O(d·log d).
func (n *Node) Edges() []Edge {
	out := make([]Edge, 0, len(n.edges))
	for to, w := range n.edges {
		out = append(out, Edge{To: to, Weight: w})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].To < out[j].To })

	return out
}

// clone returns a detached copy of n.
func (n *Node) clone() *Node {
	c := &Node{id: n.id, point: n.point, edges: make(map[string]float64, len(n.edges))}
	for to, w := range n.edges {
		c.edges[to] = w
	}

	return c
}

// AddNode inserts a node at p, or replaces the node already stored under id.
//
// Implementation:
//   - Stage 1: Validate non-empty ID (ErrEmptyNodeID).
//   - Stage 2: Under the write lock, store a fresh Node with no edges.
//
// Behavior highlights:
//   - Replacement drops the replaced node's own outgoing edges. Edges held by
//     other nodes that point at id are kept; their weights still describe the
//     old position.
//
// Complexity:
//   - Time O(1) amortized, Space O(1).
func (g *Graph) AddNode(id string, p Point) error {
	if id == "" {
		return ErrEmptyNodeID
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	g.nodes[id] = newNode(id, p)

	return nil
}

// HasNode reports whether the node ID exists (empty ID ⇒ false).
// Complexity: O(1).
func (g *Graph) HasNode(id string) bool {
	if id == "" {
		return false
	}
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.nodes[id]

	return ok
}

// Node returns a detached copy of the node stored under id.
func (g *Graph) Node(id string) (*Node, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	n, ok := g.nodes[id]
	if !ok {
		return nil, false
	}

	return n.clone(), true
}

// RemoveNode deletes id and every edge pointing to it.
//
// Implementation:
//   - Stage 1: Under the write lock, drop the edge to id from every node.
//   - Stage 2: Remove id from the catalog.
//
// Behavior highlights:
//   - No surviving node keeps id in its neighbor mapping.
//   - The removed node is returned with its outgoing edges intact.
//
// Returns:
//   - (*Node, true) when id existed; (nil, false) otherwise.
//
// Complexity:
//   - Time O(V), Space O(1).
func (g *Graph) RemoveNode(id string) (*Node, bool) {
	g.mu.Lock()
	defer g.mu.Unlock()

	for _, n := range g.nodes {
		delete(n.edges, id)
	}

	n, ok := g.nodes[id]
	if !ok {
		return nil, false
	}
	delete(g.nodes, id)

	return n, true
}

// Nodes returns a read-only snapshot of the node catalog. Every Node in the
// returned map is a detached copy, so the caller may iterate it freely while
// the graph changes.
//
// Complexity: O(V+E).
func (g *Graph) Nodes() map[string]*Node {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make(map[string]*Node, len(g.nodes))
	for id, n := range g.nodes {
		out[id] = n.clone()
	}

	return out
}

// IDs returns all node IDs in ascending order.
// Complexity: O(V·log V).
func (g *Graph) IDs() []string {
	g.mu.RLock()
	ids := make([]string, 0, len(g.nodes))
	for id := range g.nodes {
		ids = append(ids, id)
	}
	g.mu.RUnlock()
	sort.Strings(ids)

	return ids
}

// Len returns the node count.
func (g *Graph) Len() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.nodes)
}

// Require checks that every id exists. The first missing id is reported as
// ErrNodeNotFound wrapped with the id.
func (g *Graph) Require(ids ...string) error {
	g.mu.RLock()
	defer g.mu.RUnlock()

	for _, id := range ids {
		if _, ok := g.nodes[id]; !ok {
			return fmt.Errorf("%w: %q", ErrNodeNotFound, id)
		}
	}

	return nil
}
