package onet

import "github.com/vovakirdan/tui-onet/internal/core"

// Geometry maps cells to drawing coordinates and back. The drawable area
// has a padding border exactly one cell wide on every side, which is where
// corridor segments of a route are drawn.
//
// Units are whatever the renderer uses: pixels for a canvas, characters
// for a terminal (where cells are usually wider than they are tall).
type Geometry struct {
	Rows  int
	Cols  int
	CellW int
	CellH int
}

// NewGeometry returns geometry for square cells of the given size.
func NewGeometry(rows, cols, cellSize int) Geometry {
	return Geometry{Rows: rows, Cols: cols, CellW: cellSize, CellH: cellSize}
}

// Width returns the total drawable width including both padding columns.
func (g Geometry) Width() int {
	return (g.Cols + 2) * g.CellW
}

// Height returns the total drawable height including both padding rows.
func (g Geometry) Height() int {
	return (g.Rows + 2) * g.CellH
}

// CellCenter returns the center of cell p relative to the top-left of the
// drawable area. Corridor points land in the padding ring.
func (g Geometry) CellCenter(p Point) (x, y int) {
	x = p.Col*g.CellW + g.CellW/2 + g.CellW
	y = p.Row*g.CellH + g.CellH/2 + g.CellH
	return x, y
}

// CellRect returns the rectangle covered by cell p, offset by origin.
func (g Geometry) CellRect(p Point, origin core.Rect) core.Rect {
	return core.NewRect(
		origin.X+(p.Col+1)*g.CellW,
		origin.Y+(p.Row+1)*g.CellH,
		g.CellW,
		g.CellH,
	)
}

// PointFromPixel maps an absolute position back to a board cell. origin is
// the rectangle the drawable area was placed in. ok is false for positions
// in the padding ring or outside the board.
func (g Geometry) PointFromPixel(px, py int, origin core.Rect) (p Point, ok bool) {
	if g.CellW <= 0 || g.CellH <= 0 {
		return Point{}, false
	}

	cells := core.NewRect(origin.X+g.CellW, origin.Y+g.CellH, g.Cols*g.CellW, g.Rows*g.CellH)
	if !cells.Contains(px, py) {
		return Point{}, false
	}
	return Point{Row: (py - cells.Y) / g.CellH, Col: (px - cells.X) / g.CellW}, true
}
