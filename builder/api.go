// SPDX-License-Identifier: MIT
// Package: waypoint/builder
//
// api.go - public entry-point for the builder package.
//
// Design contract:
//   - One orchestrator: BuildGraph(opts, cons...). Creates g, resolves cfg, runs cons in order.
//   - Functional options (Option) resolve into an immutable builderConfig (no global state).
//   - Safety: never panic at build time; return sentinel errors from constructors.

package builder

import (
	"fmt"

	"github.com/katalvlaran/waypoint/core"
)

// Constructor applies a deterministic graph mutation using the resolved
// builderConfig. Constructors validate parameters before touching the graph
// and return sentinel errors.
type Constructor func(g *core.Graph, cfg builderConfig) error

// BuildGraph creates a new core.Graph, resolves the builder configuration from
// opts, and applies all constructors in order. Any constructor error is wrapped
// with the context "BuildGraph: %w" and returned immediately.
//
// Complexity:
//   - Resolving options: O(len(opts)).
//   - Applying K constructors: Σ cost of each constructor.
//
// Errors:
//   - Wraps constructor errors via %w; callers branch with errors.Is against
//     builder sentinels (ErrTooFewVertices, ErrInvalidRadius, ...).
func BuildGraph(opts []Option, cons ...Constructor) (*core.Graph, error) {
	g := core.NewGraph()
	cfg := newBuilderConfig(opts...)

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildGraph: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(g, cfg); err != nil {
			return nil, fmt.Errorf("BuildGraph: %w", err)
		}
	}

	return g, nil
}
