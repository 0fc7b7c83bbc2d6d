// Package waypoint is a weighted location graph with three interchangeable,
// resumable pathfinding engines: breadth-first, depth-first and Dijkstra.
//
// 🚀 What is waypoint?
//
//	Every engine is a single-step state machine. One call to Next performs
//	one micro-step (pop a frontier entry, or expand the node just popped),
//	so a renderer can show the frontier and the finalized set between steps.
//
// ✨ Why waypoint?
//
//   - Deterministic : neighbors expand in ID order, heap ties break by insertion
//   - Inspectable : Current, Visible, Visited and State after every step
//   - Thread-safe graph : R/W locks; engines search a private snapshot
//   - Batteries : a 15-city US dataset, an R-tree index, an HTTP/websocket server
//
// Packages:
//
//	core/      : Point, Node, Graph (construction, mutation, snapshot)
//	search/    : Status, State, Entry, the Search contract, path reconstruction
//	bfs/       : BreadthFirstSearch (FIFO, cumulative distances)
//	dfs/       : DepthFirstSearch (LIFO, last-hop distances)
//	dijkstra/  : ShortestPath (min-heap, lazy deletion of stale entries)
//	route/     : algorithm selection, validation, paced driving
//	builder/   : deterministic fixture graphs with geometric points
//	cities/    : the sample dataset, DMS parsing, lon/lat, spatial index, canvas
//	config/    : YAML configuration
//	logging/   : slog logger construction
//	server/    : gin HTTP API, websocket step streams, Prometheus metrics
//
// Quick ASCII example:
//
//	A(0,0)───3───B(0,3)
//	               │
//	               4
//	               │
//	             C(4,3)
//
// BFS and Dijkstra report [A 0, B 3, C 7]; DFS reports last-hop weights
// [A 0, B 3, C 4].
//
//	go install github.com/katalvlaran/waypoint/cmd/waypoint@latest
package waypoint
