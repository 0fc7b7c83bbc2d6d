// SPDX-License-Identifier: MIT
// Package builder provides deterministic fixture graphs for tests, benchmarks
// and demos of the search engines.
//
// Every constructor places its nodes at geometric points, so edge weights are
// the Euclidean distances core.Graph computes on AddEdge. Layouts:
//
//	Path(n)                 nodes on a row, unit spacing
//	Cycle(n)                nodes on a circle of radius cfg.radius
//	Star(n)                 "Center" at the origin, n-1 leaves on the circle
//	Wheel(n)                Cycle(n-1) plus spokes to "Center"
//	Complete(n)             circle layout, every pair connected
//	Grid(rows, cols)        IDs "r,c" at point (r, c), 4-neighborhood
//	RandomGeometric(n, rad) seeded uniform points, edge when distance ≤ rad
//
// All coordinates are multiplied by cfg.scale (WithScale).
//
// Composition:
//
//	BuildGraph(opts, cons...) runs constructors in order on one graph. A node
//	ID already present is reused, not moved, so constructors sharing IDs (for
//	example "Center") glue their topologies together.
//
// Determinism:
//
//	Same options, seed and constructor order ⇒ identical graphs. Only
//	RandomGeometric consumes randomness and it requires WithSeed or WithRand.
//
// Errors:
//
//	ErrTooFewVertices  parameter below the constructor minimum.
//	ErrInvalidRadius   non-positive connection radius.
//	ErrNeedRandSource  stochastic constructor without an RNG.
//	ErrConstructFailed nil constructor or core rejection.
package builder
