// Package dijkstra provides a stepwise shortest-path search between two nodes
// of a core.Graph, implementing search.Search.
//
// ShortestPath finds the path of minimum cumulative weight, one micro-step per
// Next call. It maintains a min-heap frontier keyed by cumulative distance and
// relaxes edges in increasing order of distance from the start.
//
// Lazy deletion:
//
//	There is no decrease-key. An improving candidate is pushed as a new heap
//	entry and the outdated one stays in the heap. When a popped entry refers to
//	a node already visited with a strictly smaller distance it is stale: the
//	engine moves Current to it for introspection, writes nothing, stays in Pop
//	and returns Searching. An entry with an equal distance is not stale and
//	re-records the node.
//
// Relaxation (Push):
//
//	For each neighbor n of current, candidate = visited[current] + weight.
//	n is skipped when visited[n] <= candidate; otherwise (n, (current,
//	candidate)) is pushed. There is no discovered set, so a node may sit in the
//	heap more than once.
//
// Tie-break:
//
//	Entries of equal distance pop in insertion order (earlier push first). With
//	Neighbors sorted by ID, the whole run is reproducible.
//
// Complexity:
//
//	– Time:  O((V + E) log E) over a full run, V = |nodes|, E = |half-edges|.
//	– Space: O(V + E); the heap may hold one entry per relaxation.
//
// Options (package search):
//
//	– WithFilterNeighbor / WithAvoid: prune roads or nodes.
//	– WithMaxDistance: do not push candidates beyond the given radius.
//
// Errors (sentinel, package search):
//
//	– ErrNilGraph        if the provided graph pointer is nil.
//	– ErrNodeNotFound    if start or dest does not exist.
//	– ErrOptionViolation if an option is invalid.
//
// Example usage:
//
//	path, ok, err := dijkstra.Find(g, "Boston, MA", "Los Angeles, CA")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if ok {
//	    fmt.Println(path[len(path)-1].Distance) // total length
//	}
package dijkstra
