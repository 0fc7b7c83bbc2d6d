// SPDX-License-Identifier: MIT
// Package: waypoint/builder
//
// impl_random_geometric.go - RandomGeometric(n, radius) constructor.
//
// Model:
//   - n points drawn uniformly from the unit square, scaled by cfg.scale.
//   - An edge joins every pair at distance ≤ radius (radius is in scaled units).
//
// Contract:
//   - n ≥ 1 (ErrTooFewVertices), radius > 0 (ErrInvalidRadius), cfg.rng set
//     (ErrNeedRandSource).
//
// Complexity:
//   - Time: O(n^2) pair checks. Space: O(n) for the point slice.
//
// Determinism:
//   - Points are drawn in index order; pairs are scanned i<j ascending.
package builder

import (
	"fmt"
	"math"

	"github.com/katalvlaran/waypoint/core"
)

const (
	methodRandomGeometric = "RandomGeometric"
	minRandomGeometric    = 1
)

// RandomGeometric returns a Constructor for a random geometric graph.
func RandomGeometric(n int, radius float64) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minRandomGeometric {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodRandomGeometric, n, minRandomGeometric, ErrTooFewVertices)
		}
		if !(radius > 0) || math.IsInf(radius, 0) {
			return fmt.Errorf("%s: radius=%g: %w", methodRandomGeometric, radius, ErrInvalidRadius)
		}
		if cfg.rng == nil {
			return fmt.Errorf("%s: %w", methodRandomGeometric, ErrNeedRandSource)
		}

		ids := make([]string, n)
		pts := make([]core.Point, n)
		for i := 0; i < n; i++ {
			ids[i] = cfg.idFn(i)
			row, col := cfg.rng.Float64(), cfg.rng.Float64()
			if err := place(g, cfg, ids[i], row, col); err != nil {
				return fmt.Errorf("%s: %w", methodRandomGeometric, err)
			}
			// an existing node keeps its point, and edges follow what is stored
			n, _ := g.Node(ids[i])
			pts[i] = n.Point()
		}
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if pts[i].Distance(pts[j]) <= radius {
					g.AddEdge(ids[i], ids[j])
				}
			}
		}

		return nil
	}
}
