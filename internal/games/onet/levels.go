// Package onet implements the Onet tile-matching game for the arcade
// platform: a campaign of growing boards and an endless mode whose tile
// variety ramps up with every cleared board.
package onet

// Level defines a campaign board.
type Level struct {
	ID        int
	Name      string
	Rows      int
	Cols      int
	TileTypes int
}

// Levels defines the 10 campaign levels. Every board has an even cell count
// and fits an 80x24 terminal with the default 4x2 cells.
var Levels = []Level{
	{ID: 1, Name: "First Pairs", Rows: 4, Cols: 4, TileTypes: 4},
	{ID: 2, Name: "Warm-up", Rows: 4, Cols: 6, TileTypes: 6},
	{ID: 3, Name: "Square", Rows: 6, Cols: 6, TileTypes: 8},
	{ID: 4, Name: "Widening", Rows: 6, Cols: 8, TileTypes: 10},
	{ID: 5, Name: "Classic", Rows: 8, Cols: 8, TileTypes: 12},
	{ID: 6, Name: "Crowded", Rows: 8, Cols: 8, TileTypes: 16},
	{ID: 7, Name: "Long Table", Rows: 8, Cols: 10, TileTypes: 18},
	{ID: 8, Name: "Bazaar", Rows: 8, Cols: 12, TileTypes: 21},
	{ID: 9, Name: "Mosaic", Rows: 8, Cols: 14, TileTypes: 21},
	{ID: 10, Name: "Grand Board", Rows: 8, Cols: 16, TileTypes: 21},
}

// LevelCount returns the number of campaign levels.
func LevelCount() int {
	return len(Levels)
}

// GetLevel returns the level at the given index (0-based).
// Returns nil if index is out of range.
func GetLevel(index int) *Level {
	if index < 0 || index >= len(Levels) {
		return nil
	}
	return &Levels[index]
}
