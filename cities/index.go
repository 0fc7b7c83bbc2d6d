package cities

import (
	"math"
	"sort"

	"github.com/dhconnelly/rtreego"
	"github.com/katalvlaran/waypoint/core"
)

const (
	treeDim      = 2
	treeMinChild = 25
	treeMaxChild = 50

	// pointTol is the half-size of the box stored for each point.
	pointTol = 1e-6

	// nearestProbe is how many R-tree candidates Nearest re-ranks exactly.
	nearestProbe = 4
)

// Hit is a node found by a spatial query.
type Hit struct {
	ID       string
	Point    core.Point
	Distance float64
}

// pointEntry wraps a node point for R-tree storage.
type pointEntry struct {
	id   string
	p    core.Point
	bbox rtreego.Rect
}

// Bounds implements rtreego.Spatial.
func (e *pointEntry) Bounds() rtreego.Rect { return e.bbox }

// Index answers nearest-node and radius queries over a fixed set of points.
// It is a snapshot: later graph edits are not reflected.
type Index struct {
	tree *rtreego.Rtree
	size int
}

// NewIndex indexes every node of g.
func NewIndex(g *core.Graph) *Index {
	nodes := g.Nodes()
	pts := make(map[string]core.Point, len(nodes))
	for id, n := range nodes {
		pts[id] = n.Point()
	}

	return NewPointIndex(pts)
}

// NewPointIndex indexes arbitrary named points.
func NewPointIndex(pts map[string]core.Point) *Index {
	tree := rtreego.NewTree(treeDim, treeMinChild, treeMaxChild)
	ix := &Index{tree: tree}
	for id, p := range pts {
		bbox, err := box(p, pointTol)
		if err != nil {
			continue
		}
		tree.Insert(&pointEntry{id: id, p: p, bbox: bbox})
		ix.size++
	}

	return ix
}

// Len returns the number of indexed points.
func (ix *Index) Len() int { return ix.size }

// Nearest returns the indexed point closest to p. Ties go to the smaller ID.
func (ix *Index) Nearest(p core.Point) (Hit, bool) {
	if ix.size == 0 {
		return Hit{}, false
	}
	k := nearestProbe
	if ix.size < k {
		k = ix.size
	}
	hits := ix.rank(p, ix.tree.NearestNeighbors(k, rtreego.Point{p.Row(), p.Col()}), math.Inf(1))
	if len(hits) == 0 {
		return Hit{}, false
	}
	// more points may tie at the best distance than the probe returned
	if tied := ix.Within(p, hits[0].Distance); len(tied) > 0 {
		return tied[0], true
	}

	return hits[0], true
}

// Within returns every indexed point at distance ≤ radius from p, nearest
// first. A negative or NaN radius yields nil.
func (ix *Index) Within(p core.Point, radius float64) []Hit {
	if !(radius >= 0) || ix.size == 0 {
		return nil
	}
	bbox, err := box(p, radius+pointTol)
	if err != nil {
		return nil
	}

	return ix.rank(p, ix.tree.SearchIntersect(bbox), radius)
}

// rank keeps candidates within limit and orders them by (distance, ID).
func (ix *Index) rank(p core.Point, found []rtreego.Spatial, limit float64) []Hit {
	hits := make([]Hit, 0, len(found))
	for _, s := range found {
		e, ok := s.(*pointEntry)
		if !ok {
			continue
		}
		d := p.Distance(e.p)
		if d > limit {
			continue
		}
		hits = append(hits, Hit{ID: e.id, Point: e.p, Distance: d})
	}
	sort.Slice(hits, func(i, j int) bool {
		if hits[i].Distance != hits[j].Distance {
			return hits[i].Distance < hits[j].Distance
		}
		return hits[i].ID < hits[j].ID
	})

	return hits
}

// box returns the square of half-size half centred on p.
func box(p core.Point, half float64) (rtreego.Rect, error) {
	return rtreego.NewRect(
		rtreego.Point{p.Row() - half, p.Col() - half},
		[]float64{2 * half, 2 * half},
	)
}
