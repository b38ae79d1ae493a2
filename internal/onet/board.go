package onet

import (
	"fmt"
	"slices"
	"strings"
)

// Tile is a tile type. Empty marks a cleared cell; real types start at 1.
type Tile int

// Empty is the sentinel value of a cell with no tile.
const Empty Tile = 0

// Board is a rectangular grid of tiles stored in row-major order:
// index = row*cols + col.
type Board struct {
	rows  int
	cols  int
	cells []Tile
}

// NewBoard creates an empty board with the given dimensions.
func NewBoard(rows, cols int) *Board {
	if rows < 0 || cols < 0 {
		panic(fmt.Sprintf("onet: invalid board size %dx%d", rows, cols))
	}
	return &Board{
		rows:  rows,
		cols:  cols,
		cells: make([]Tile, rows*cols),
	}
}

// FromRows builds a board from a slice of rows.
// Ragged rows are a caller bug and cause a panic.
func FromRows(rows [][]Tile) *Board {
	if len(rows) == 0 {
		return NewBoard(0, 0)
	}

	b := NewBoard(len(rows), len(rows[0]))
	for r, row := range rows {
		if len(row) != b.cols {
			panic(fmt.Sprintf("onet: ragged board: row %d has %d cells, want %d", r, len(row), b.cols))
		}
		copy(b.cells[r*b.cols:], row)
	}
	return b
}

// Rows returns the number of rows.
func (b *Board) Rows() int {
	return b.rows
}

// Cols returns the number of columns.
func (b *Board) Cols() int {
	return b.cols
}

// index converts a point to a flat cell index.
func (b *Board) index(p Point) int {
	return p.Row*b.cols + p.Col
}

// InBounds returns true if the point lies on the board.
func (b *Board) InBounds(p Point) bool {
	return p.Row >= 0 && p.Row < b.rows && p.Col >= 0 && p.Col < b.cols
}

// InCorridor returns true if the point lies in the one-cell ring that
// surrounds the board. Corridor cells are always traversable but never
// hold tiles.
func (b *Board) InCorridor(p Point) bool {
	if b.InBounds(p) {
		return false
	}
	return p.Row >= -1 && p.Row <= b.rows && p.Col >= -1 && p.Col <= b.cols
}

// At returns the tile at p. Points off the board read as Empty.
func (b *Board) At(p Point) Tile {
	if !b.InBounds(p) {
		return Empty
	}
	return b.cells[b.index(p)]
}

// Set places a tile at p. Out-of-bounds points are ignored.
func (b *Board) Set(p Point, t Tile) {
	if b.InBounds(p) {
		b.cells[b.index(p)] = t
	}
}

// Clear empties the cell at p.
func (b *Board) Clear(p Point) {
	b.Set(p, Empty)
}

// Clone returns a deep copy of the board.
func (b *Board) Clone() *Board {
	cells := make([]Tile, len(b.cells))
	copy(cells, b.cells)
	return &Board{
		rows:  b.rows,
		cols:  b.cols,
		cells: cells,
	}
}

// Snapshot returns the board contents as a fresh slice of rows.
func (b *Board) Snapshot() [][]Tile {
	out := make([][]Tile, b.rows)
	for r := range b.rows {
		out[r] = make([]Tile, b.cols)
		copy(out[r], b.cells[r*b.cols:(r+1)*b.cols])
	}
	return out
}

// Remaining returns the number of non-empty cells.
func (b *Board) Remaining() int {
	count := 0
	for _, t := range b.cells {
		if t != Empty {
			count++
		}
	}
	return count
}

// IsCleared returns true if every cell is empty.
func (b *Board) IsCleared() bool {
	return b.Remaining() == 0
}

// Counts returns how many times each non-empty tile type occurs.
func (b *Board) Counts() map[Tile]int {
	counts := make(map[Tile]int)
	for _, t := range b.cells {
		if t != Empty {
			counts[t]++
		}
	}
	return counts
}

// Occupied returns the points of all non-empty cells, row by row.
func (b *Board) Occupied() []Point {
	points := make([]Point, 0, len(b.cells))
	for r := range b.rows {
		for c := range b.cols {
			if b.cells[r*b.cols+c] != Empty {
				points = append(points, P(r, c))
			}
		}
	}
	return points
}

// Equal reports whether two boards have the same dimensions and contents.
func (b *Board) Equal(o *Board) bool {
	return b.rows == o.rows && b.cols == o.cols && slices.Equal(b.cells, o.cells)
}

// String renders the board as whitespace-separated tile numbers,
// with "." for empty cells.
func (b *Board) String() string {
	var sb strings.Builder
	for r := range b.rows {
		if r > 0 {
			sb.WriteByte('\n')
		}
		for c := range b.cols {
			if c > 0 {
				sb.WriteByte(' ')
			}
			t := b.cells[r*b.cols+c]
			if t == Empty {
				sb.WriteString(" .")
			} else {
				fmt.Fprintf(&sb, "%2d", int(t))
			}
		}
	}
	return sb.String()
}
