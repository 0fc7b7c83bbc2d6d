package cities

import (
	"math"
	"sort"

	"github.com/katalvlaran/waypoint/core"
)

const (
	// DotRadius is the drawn radius of a city, in canvas pixels.
	DotRadius = 5.0

	// canvasPad is the fraction of each dimension left as margin.
	canvasPad = 0.1
)

// Dot is a node projected onto the canvas.
type Dot struct {
	ID string  `json:"id"`
	X  float64 `json:"x"`
	Y  float64 `json:"y"`
}

// Canvas maps graph points onto a width×height drawing surface. North (larger
// row) is up and east (larger col) is right; a 10% margin is split evenly
// around the drawing.
type Canvas struct {
	width, height float64
	dots          []Dot
	index         *Index
}

// NewCanvas projects every node of g. Coordinates are rounded to whole
// pixels. A degenerate extent (one node, or all nodes on a line) is centred.
func NewCanvas(g *core.Graph, width, height float64) *Canvas {
	nodes := g.Nodes()
	c := &Canvas{width: width, height: height, dots: make([]Dot, 0, len(nodes))}

	minRow, maxRow := math.Inf(1), math.Inf(-1)
	minCol, maxCol := math.Inf(1), math.Inf(-1)
	for _, n := range nodes {
		p := n.Point()
		minRow, maxRow = math.Min(minRow, p.Row()), math.Max(maxRow, p.Row())
		minCol, maxCol = math.Min(minCol, p.Col()), math.Max(maxCol, p.Col())
	}

	padH, padW := height*canvasPad, width*canvasPad
	hRatio := ratio(height-padH, maxRow-minRow)
	wRatio := ratio(width-padW, maxCol-minCol)

	pts := make(map[string]core.Point, len(nodes))
	for id, n := range nodes {
		p := n.Point()
		y, x := height/2, width/2
		if hRatio > 0 {
			y = math.Round((maxRow-p.Row())*hRatio + padH/2)
		}
		if wRatio > 0 {
			x = math.Round((p.Col()-minCol)*wRatio + padW/2)
		}
		c.dots = append(c.dots, Dot{ID: id, X: x, Y: y})
		pts[id] = core.NewPoint(x, y)
	}
	sort.Slice(c.dots, func(i, j int) bool { return c.dots[i].ID < c.dots[j].ID })
	c.index = NewPointIndex(pts)

	return c
}

func ratio(span, extent float64) float64 {
	if extent <= 0 || span <= 0 {
		return 0
	}

	return span / extent
}

// Dots returns the projected nodes sorted by ID.
func (c *Canvas) Dots() []Dot {
	out := make([]Dot, len(c.dots))
	copy(out, c.dots)

	return out
}

// Size returns the canvas dimensions.
func (c *Canvas) Size() (width, height float64) { return c.width, c.height }

// Hit returns the city whose dot lies under (x, y): strictly closer than
// DotRadius+1 pixels. The closest dot wins.
func (c *Canvas) Hit(x, y float64) (string, bool) {
	for _, h := range c.index.Within(core.NewPoint(x, y), DotRadius+1) {
		if h.Distance < DotRadius+1 {
			return h.ID, true
		}
	}

	return "", false
}
