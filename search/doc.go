// Package search defines the contract shared by every stepwise pathfinding
// engine in this module (bfs, dfs, dijkstra) together with the records they
// expose for introspection.
//
// What
//
//   - Search: a resumable state machine bound to a graph, a start and a
//     destination. Each call to Next performs exactly one micro-step.
//   - State: Pop (examine the next frontier entry), Push (expand the node just
//     finalized), Done(status) (terminal, idempotent).
//   - Status: Searching, Found, NotFound.
//   - Entry / Hop: frontier and visited records, (id, (predecessor, distance)).
//   - Step: one element of a result path, (id, distance).
//
// Transition table (one Next() = one transition)
//
//	Pop, frontier empty        → Done(NotFound)              returns NotFound
//	Pop, popped id == dest     → record visited, Done(Found) returns Found
//	Pop, popped id != dest     → current := id, record       returns Searching
//	                             visited, Push
//	Push                       → expand current per variant  returns Searching
//	                             policy, Pop
//	Done(s)                    → Done(s)                     returns s
//
// Engines never log and never block. A driver calls Next in a loop (see
// package route) and reads Current, Visible, Visited and State between
// steps to render progress; Result returns the path once the state is
// Done(Found).
//
// Validation
//
//	Engines index the graph unchecked. Validate reports ErrNilGraph or
//	ErrNodeNotFound before an engine is built; every engine constructor calls
//	it, so a constructed engine always refers to existing nodes.
//
// Path reconstruction
//
//	Reconstruct walks visited predecessors from the destination back to the
//	Sentinel and reverses the walk. Distances are copied verbatim from the
//	visited records, so a path carries whatever distance semantics its engine
//	recorded (cumulative for BFS and Dijkstra, last-hop for DFS).
package search
