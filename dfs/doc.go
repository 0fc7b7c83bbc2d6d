// Package dfs provides a stepwise depth-first search between two nodes of a
// core.Graph, implementing search.Search.
//
// What
//
//   - DepthFirstSearch follows the most recently discovered node first, one
//     micro-step per Next call.
//   - The frontier is a LIFO stack seeded with (start, (Sentinel, 0)).
//   - A discovered set, updated at push time, keeps every node off the stack
//     after its first discovery.
//   - Push tags each new neighbor with (current, weight): the raw weight of
//     the last hop, not a cumulative sum.
//
// Distance semantics
//
//	Because entries carry the last-hop weight, the Distance of each Step in a
//	result path is the length of the edge that reached it. Total sums the
//	steps into the length of the route.
//
// Guarantees
//
//   - A found path is simple (no repeated IDs); it carries no optimality
//     guarantee in hops or in length.
//
// Determinism
//
//	Neighbors are pushed in ascending ID order, so the neighbor with the
//	largest ID is expanded first. The visit sequence is fully reproducible.
//
// Snapshot
//
//	New binds the engine to a Clone of the graph.
//
// Options and errors are those of package search (WithFilterNeighbor,
// WithAvoid; ErrNilGraph, ErrNodeNotFound).
//
// Complexity (V = |nodes|, E = |half-edges|)
//
//   - Time:   O(V + E·log d) over a full run.
//   - Memory: O(V).
package dfs
