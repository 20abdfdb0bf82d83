package model

import (
	"fmt"
	"strconv"
)

// RowID is a dense, registry-local identifier for a city.
// Rows are numbered in lexical name order, so iterating a set of RowIDs in
// ascending order yields names in lexical order.
type RowID uint32

// Point is a pair of Cartesian coordinates. It has no identity beyond its value.
type Point struct {
	X float64
	Y float64
}

// Pt is shorthand for Point{X: x, Y: y}.
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// String returns a string representation of the Point.
func (p Point) String() string {
	return fmt.Sprintf("(%s, %s)",
		strconv.FormatFloat(p.X, 'g', -1, 64),
		strconv.FormatFloat(p.Y, 'g', -1, 64),
	)
}

// City is a named point.
type City struct {
	Name string
	Point
}

// String returns a string representation of the City.
func (c City) String() string {
	return c.Name + " " + c.Point.String()
}
