// Package builder helpers shared by the constructors.
package builder

import (
	"fmt"
	"math"

	"github.com/katalvlaran/waypoint/core"
)

// place adds id at (row, col)·cfg.scale unless id already exists.
func place(g *core.Graph, cfg builderConfig, id string, row, col float64) error {
	if g.HasNode(id) {
		return nil
	}
	if err := g.AddNode(id, core.NewPoint(row*cfg.scale, col*cfg.scale)); err != nil {
		return fmt.Errorf("AddNode(%q): %v: %w", id, err, ErrConstructFailed)
	}

	return nil
}

// circle places n nodes idFn(first..first+n-1) evenly on the config circle,
// starting at angle 0 and turning counter-clockwise. Returns their IDs.
func circle(g *core.Graph, cfg builderConfig, first, n int) ([]string, error) {
	ids := make([]string, n)
	step := 2 * math.Pi / float64(n)
	for i := 0; i < n; i++ {
		sin, cos := math.Sincos(step * float64(i))
		ids[i] = cfg.idFn(first + i)
		if err := place(g, cfg, ids[i], cfg.radius*sin, cfg.radius*cos); err != nil {
			return nil, err
		}
	}

	return ids, nil
}

// ring connects ids[i]–ids[i+1] and closes the loop.
func ring(g *core.Graph, ids []string) {
	for i := range ids {
		g.AddEdge(ids[i], ids[(i+1)%len(ids)])
	}
}

// spokes connects hub to every id.
func spokes(g *core.Graph, hub string, ids []string) {
	for _, id := range ids {
		g.AddEdge(hub, id)
	}
}
