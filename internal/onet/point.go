// Package onet implements the board model, path routing and match state
// machine for the Onet tile-matching puzzle. It has no terminal or storage
// dependencies; hosts drive it through Controller and render Board snapshots.
package onet

import "fmt"

// Point is a (row, column) cell coordinate. Values one step outside the
// board are valid only as corridor coordinates inside a Route.
type Point struct {
	Row int
	Col int
}

// P is a convenience constructor for Point.
func P(row, col int) Point {
	return Point{Row: row, Col: col}
}

// String returns a string representation of the point.
func (p Point) String() string {
	return fmt.Sprintf("(%d,%d)", p.Row, p.Col)
}

// Step returns the neighbouring point in direction d.
func (p Point) Step(d Dir) Point {
	dr, dc := d.Delta()
	return Point{Row: p.Row + dr, Col: p.Col + dc}
}

// Dir is one of the four cardinal directions.
type Dir int

// Direction order is significant: the path finder explores in this order,
// which fixes the tie-break between equal-turn routes.
const (
	DirUp Dir = iota
	DirDown
	DirLeft
	DirRight
)

// numDirs is the number of cardinal directions.
const numDirs = 4

// Dirs lists all directions in exploration order.
var Dirs = [numDirs]Dir{DirUp, DirDown, DirLeft, DirRight}

// Delta returns the row/column offset of a single step.
func (d Dir) Delta() (dr, dc int) {
	switch d {
	case DirUp:
		return -1, 0
	case DirDown:
		return 1, 0
	case DirLeft:
		return 0, -1
	case DirRight:
		return 0, 1
	default:
		return 0, 0
	}
}

// String returns a human-readable name for the direction.
func (d Dir) String() string {
	switch d {
	case DirUp:
		return "Up"
	case DirDown:
		return "Down"
	case DirLeft:
		return "Left"
	case DirRight:
		return "Right"
	default:
		return "Unknown"
	}
}

// dirBetween returns the direction of a unit step from a to b.
func dirBetween(a, b Point) (Dir, bool) {
	switch {
	case b.Row == a.Row-1 && b.Col == a.Col:
		return DirUp, true
	case b.Row == a.Row+1 && b.Col == a.Col:
		return DirDown, true
	case b.Col == a.Col-1 && b.Row == a.Row:
		return DirLeft, true
	case b.Col == a.Col+1 && b.Row == a.Row:
		return DirRight, true
	}
	return 0, false
}
