package cities

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/waypoint/core"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geo"
)

const metersPerKm = 1000

// LonLat converts a packed DMS point (row = latitude, col = longitude) into
// an orb.Point, which orders longitude first.
func LonLat(p core.Point) orb.Point {
	return orb.Point{ToDegrees(p.Col()), ToDegrees(p.Row())}
}

// Bounds returns the lon/lat bounding box of every node in g. An empty graph
// yields the zero Bound.
func Bounds(g *core.Graph) orb.Bound {
	nodes := g.Nodes()
	if len(nodes) == 0 {
		return orb.Bound{}
	}
	mp := make(orb.MultiPoint, 0, len(nodes))
	for _, n := range nodes {
		mp = append(mp, LonLat(n.Point()))
	}

	return mp.Bound()
}

// Line returns the lon/lat polyline through ids.
func Line(g *core.Graph, ids []string) (orb.LineString, error) {
	nodes := g.Nodes()
	ls := make(orb.LineString, 0, len(ids))
	for _, id := range ids {
		n, ok := nodes[id]
		if !ok {
			return nil, fmt.Errorf("%w: %q", core.ErrNodeNotFound, id)
		}
		ls = append(ls, LonLat(n.Point()))
	}

	return ls, nil
}

// GreatCircleKm returns the haversine length of the route through ids, in
// kilometres.
func GreatCircleKm(g *core.Graph, ids []string) (float64, error) {
	ls, err := Line(g, ids)
	if err != nil {
		return 0, err
	}

	return geo.LengthHaversine(ls) / metersPerKm, nil
}

// Road is one undirected connection.
type Road struct {
	A, B   string  // A < B
	Weight float64 // packed-coordinate distance
	Km     float64 // great-circle length
}

// Roads lists every connected pair once, sorted by (A, B). A one-way edge is
// reported like a two-way one.
func Roads(g *core.Graph) []Road {
	nodes := g.Nodes()
	seen := make(map[[2]string]struct{})
	out := make([]Road, 0, g.EdgeCount()/2)
	for id, n := range nodes {
		for _, e := range n.Edges() {
			a, b := id, e.To
			if b < a {
				a, b = b, a
			}
			key := [2]string{a, b}
			if _, dup := seen[key]; dup {
				continue
			}
			seen[key] = struct{}{}
			road := Road{A: a, B: b, Weight: e.Weight}
			if to, ok := nodes[e.To]; ok {
				road.Km = geo.DistanceHaversine(LonLat(n.Point()), LonLat(to.Point())) / metersPerKm
			}
			out = append(out, road)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].A != out[j].A {
			return out[i].A < out[j].A
		}
		return out[i].B < out[j].B
	})

	return out
}
