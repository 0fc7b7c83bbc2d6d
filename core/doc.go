// Package core provides the location graph used by every search engine in
// this module: named nodes placed at 2-D points, joined by edges whose weight
// is the Euclidean distance between the endpoints.
//
// The Graph G = (V,E) is deliberately small:
//
//   - Point is an immutable (row, col) coordinate with a Euclidean metric.
//   - Node is a named vertex holding a Point and a neighbor-id → weight mapping.
//   - Graph owns all Nodes and is the only place edges are added or removed.
//
// Weights are never supplied by the caller. AddEdge and AddDirectedEdge look
// both endpoints up and store Distance(a, b), so a stored weight always equals
// the distance between the points at the time the edge was added. Points are
// immutable, so weights cannot drift.
//
// Core Methods:
//
//	// Node lifecycle
//	AddNode(id string, p Point) error            // O(1), insert or replace
//	HasNode(id string) bool                      // O(1)
//	Node(id string) (*Node, bool)                // O(deg), detached copy
//	RemoveNode(id string) (*Node, bool)          // O(V), cascades incoming edges
//
//	// Edge lifecycle
//	AddEdge(a, b string)                         // O(1), symmetric, best-effort
//	AddDirectedEdge(a, b string)                 // O(1), a → b only
//	RemoveEdge(id, other string) (float64, bool) // O(1)
//
//	// Query
//	Neighbors(id string) ([]Edge, error)         // O(d·log d), sorted by neighbor id
//	Nodes() map[string]*Node                     // O(V+E), detached snapshot
//	IDs() []string                               // O(V·log V), sorted
//	Len() int                                    // O(1)
//	Require(ids ...string) error                 // O(k), existence check
//
// Determinism:
//
//	Neighbor iteration is lexicographic by neighbor id. Search engines expand
//	neighbors in that order, so which path is found first under ties is
//	reproducible across runs.
//
// Best-effort edges:
//
//	AddEdge and AddDirectedEdge do not report missing endpoints. When either
//	id is absent no weight can be computed and nothing is written.
//
// Concurrency:
//
//	A single sync.RWMutex guards the node catalog, so concurrent readers and a
//	writer never corrupt it. A search keeps reading the graph across many
//	steps, however, so callers must not mutate a Graph while a search over it
//	is in progress.
//
// Errors:
//
//	ErrEmptyNodeID  – zero-length node ID
//	ErrNodeNotFound – missing node
package core
