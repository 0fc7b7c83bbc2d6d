// File: point.go
// Role: Immutable 2-D coordinate with a Euclidean metric.
// Determinism:
//   - Distance is symmetric and exact for axis-aligned offsets.

package core

import (
	"fmt"

	"gonum.org/v1/gonum/spatial/r2"
)

// Point is a (row, col) coordinate. It is a value type: copies are
// independent and equality is structural, so two Points compare equal with ==
// exactly when both components are equal.
type Point struct {
	v r2.Vec // X = row, Y = col
}

// NewPoint returns the Point at (row, col).
func NewPoint(row, col float64) Point {
	return Point{v: r2.Vec{X: row, Y: col}}
}

// Row returns the first coordinate component.
func (p Point) Row() float64 { return p.v.X }

// Col returns the second coordinate component.
func (p Point) Col() float64 { return p.v.Y }

// Vec exposes the point as a gonum planar vector.
func (p Point) Vec() r2.Vec { return p.v }

// Distance returns the Euclidean norm of the coordinate difference,
// sqrt((p.row-q.row)^2 + (p.col-q.col)^2).
//
// Complexity: O(1).
func (p Point) Distance(q Point) float64 {
	return r2.Norm(r2.Sub(p.v, q.v))
}

// String renders the point as "(row, col)".
func (p Point) String() string {
	return fmt.Sprintf("(%g, %g)", p.v.X, p.v.Y)
}
