// Package bfs provides a stepwise breadth-first search between two nodes of a
// core.Graph, implementing search.Search.
//
// What
//
//   - BreadthFirstSearch explores nodes in non-decreasing hop count from the
//     start, one micro-step per Next call.
//   - The frontier is a FIFO queue seeded with (start, (Sentinel, 0)).
//   - A discovered set, updated at enqueue time, keeps every node out of the
//     queue after its first discovery.
//   - Push tags each new neighbor with (current, weight + visited[current]),
//     the cumulative distance along the BFS tree.
//
// Why
//
//   - The returned path has the minimum number of hops. Its distances are
//     cumulative but not necessarily minimal; use package dijkstra for that.
//
// Determinism
//
//	core.Graph.Neighbors returns edges sorted by neighbor ID and Push enqueues
//	them in that order, so the visit sequence is fully reproducible.
//
// Snapshot
//
//	New binds the engine to a Clone of the graph. Edits made to the caller's
//	graph after construction do not affect a running search.
//
// Options
//
//   - search.WithFilterNeighbor(fn): skip edges for which fn(curr, neighbor) is false.
//   - search.WithAvoid(ids...):      never expand into the listed nodes.
//
// Errors
//
//   - search.ErrNilGraph      if the graph pointer is nil.
//   - search.ErrNodeNotFound  if start or dest does not exist.
//
// Complexity (V = |nodes|, E = |half-edges|)
//
//   - Time:   O(V + E·log d) over a full run.
//   - Memory: O(V) for queue, discovered set and visited map.
//
// Usage
//
//	s, err := bfs.New(g, "Boston, MA", "Denver, CO")
//	if err != nil {
//		// search.ErrNilGraph or search.ErrNodeNotFound
//	}
//	for s.Next() == search.Searching {
//		render(s.Current(), s.Visible(), s.Visited())
//	}
//	path, ok := s.Result()
package bfs
