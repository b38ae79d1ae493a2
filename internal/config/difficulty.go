package config

import "math"

// DifficultyManager calculates endless-mode board parameters from the
// number of boards cleared so far.
type DifficultyManager struct {
	board   BoardConfig
	endless EndlessConfig
}

// NewDifficultyManager creates a new difficulty manager.
func NewDifficultyManager(cfg OnetConfig) *DifficultyManager {
	return &DifficultyManager{
		board:   cfg.Board,
		endless: cfg.Endless,
	}
}

// IsEnabled returns whether endless mode ramps up at all.
func (d *DifficultyManager) IsEnabled() bool {
	return d.endless.MaxTileTypes > d.board.TileTypes
}

// Level returns the current difficulty level (0.0 to 1.0).
func (d *DifficultyManager) Level(cleared int) float64 {
	if !d.IsEnabled() {
		return 0
	}

	maxAt := float64(d.endless.MaxAt)
	if maxAt <= 0 {
		return 1
	}
	return clampF(float64(cleared)/maxAt, 0.0, 1.0)
}

// TileTypes returns how many tile types the next board uses. Variety grows
// linearly from board.tile_types to endless.max_tile_types.
func (d *DifficultyManager) TileTypes(cleared int) int {
	base := d.board.TileTypes
	if !d.IsEnabled() {
		return base
	}
	extra := float64(d.endless.MaxTileTypes - base)
	return base + int(math.Round(d.Level(cleared)*extra))
}

// clampF restricts a float64 to [lo, hi].
func clampF(val, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, val))
}
