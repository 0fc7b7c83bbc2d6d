// SPDX-License-Identifier: MIT
// Package: waypoint/builder
//
// impl_classic.go - Path, Cycle, Star, Wheel and Complete constructors.
//
// Contract:
//   - Parameters are validated before any node is added (ErrTooFewVertices).
//   - Indexed nodes use cfg.idFn; hubs use the fixed ID "Center".
//   - Edges are emitted in increasing index order.
//
// Determinism:
//   - No randomness; layouts depend only on n, cfg.radius and cfg.scale.

package builder

import (
	"fmt"

	"github.com/katalvlaran/waypoint/core"
)

const (
	methodPath     = "Path"
	methodCycle    = "Cycle"
	methodStar     = "Star"
	methodWheel    = "Wheel"
	methodComplete = "Complete"

	minPathNodes     = 2
	minCycleNodes    = 3
	minStarNodes     = 2
	minWheelNodes    = 4
	minCompleteNodes = 1
)

// Path builds P_n: nodes idFn(0..n-1) at (0, i), consecutive nodes joined.
// Every edge has weight cfg.scale.
func Path(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minPathNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodPath, n, minPathNodes, ErrTooFewVertices)
		}
		for i := 0; i < n; i++ {
			if err := place(g, cfg, cfg.idFn(i), 0, float64(i)); err != nil {
				return fmt.Errorf("%s: %w", methodPath, err)
			}
		}
		for i := 1; i < n; i++ {
			g.AddEdge(cfg.idFn(i-1), cfg.idFn(i))
		}

		return nil
	}
}

// Cycle builds C_n on a circle.
func Cycle(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minCycleNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodCycle, n, minCycleNodes, ErrTooFewVertices)
		}
		ids, err := circle(g, cfg, 0, n)
		if err != nil {
			return fmt.Errorf("%s: %w", methodCycle, err)
		}
		ring(g, ids)

		return nil
	}
}

// Star builds a hub "Center" at the origin with n-1 leaves idFn(1..n-1) on
// the circle. Every spoke has weight cfg.radius·cfg.scale.
func Star(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minStarNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodStar, n, minStarNodes, ErrTooFewVertices)
		}
		if err := place(g, cfg, centerVertexID, 0, 0); err != nil {
			return fmt.Errorf("%s: %w", methodStar, err)
		}
		leaves, err := circle(g, cfg, 1, n-1)
		if err != nil {
			return fmt.Errorf("%s: %w", methodStar, err)
		}
		spokes(g, centerVertexID, leaves)

		return nil
	}
}

// Wheel builds W_n: a rim cycle of n-1 nodes idFn(1..n-1) plus spokes to
// "Center".
func Wheel(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minWheelNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodWheel, n, minWheelNodes, ErrTooFewVertices)
		}
		if err := place(g, cfg, centerVertexID, 0, 0); err != nil {
			return fmt.Errorf("%s: %w", methodWheel, err)
		}
		rim, err := circle(g, cfg, 1, n-1)
		if err != nil {
			return fmt.Errorf("%s: %w", methodWheel, err)
		}
		ring(g, rim)
		spokes(g, centerVertexID, rim)

		return nil
	}
}

// Complete builds K_n on a circle; every unordered pair is connected.
func Complete(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minCompleteNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodComplete, n, minCompleteNodes, ErrTooFewVertices)
		}
		ids, err := circle(g, cfg, 0, n)
		if err != nil {
			return fmt.Errorf("%s: %w", methodComplete, err)
		}
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				g.AddEdge(ids[i], ids[j])
			}
		}

		return nil
	}
}
