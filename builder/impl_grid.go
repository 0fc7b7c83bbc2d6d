// SPDX-License-Identifier: MIT
// Package: waypoint/builder
//
// impl_grid.go - implementation of Grid(rows, cols) constructor.
//
// Canonical model:
//   - 2D orthogonal grid with 4-neighborhood (right & bottom neighbors per cell).
//   - Node IDs use the fixed scheme "r,c" (row-major order), placed at (r, c).
//     This is an exception to cfg.idFn to keep coordinates explicit.
//
// Contract:
//   - rows ≥ 1 and cols ≥ 1 (else ErrTooFewVertices).
//   - Every edge has weight cfg.scale.
//
// Complexity:
//   - Time: O(rows*cols) nodes + O(rows*cols) edges.
package builder

import (
	"fmt"

	"github.com/katalvlaran/waypoint/core"
)

const (
	methodGrid = "Grid"
	minGridDim = 1
	gridIDFmt  = "%d,%d" // "r,c"
)

// GridID returns the ID Grid assigns to cell (r, c).
func GridID(r, c int) string { return fmt.Sprintf(gridIDFmt, r, c) }

// Grid returns a Constructor that builds a rows×cols orthogonal grid.
func Grid(rows, cols int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if rows < minGridDim || cols < minGridDim {
			return fmt.Errorf("%s: rows=%d, cols=%d (each must be ≥ %d): %w",
				methodGrid, rows, cols, minGridDim, ErrTooFewVertices)
		}
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				if err := place(g, cfg, GridID(r, c), float64(r), float64(c)); err != nil {
					return fmt.Errorf("%s: %w", methodGrid, err)
				}
			}
		}
		// for each (r,c) emit Right then Bottom if present
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				u := GridID(r, c)
				if c+1 < cols {
					g.AddEdge(u, GridID(r, c+1))
				}
				if r+1 < rows {
					g.AddEdge(u, GridID(r+1, c))
				}
			}
		}

		return nil
	}
}
