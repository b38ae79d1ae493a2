package config

import (
	_ "embed"
)

//go:embed defaults/onet.yaml
var defaultOnetYAML []byte

// defaultGlyphs label the 21 tile types. Colors do the rest of the work,
// so letters that look alike (I/1, O/0, Q) are skipped.
var defaultGlyphs = []string{
	"A", "B", "C", "D", "E", "F", "G", "H", "J", "K", "L",
	"M", "N", "P", "R", "S", "T", "U", "V", "W", "X",
}

// DefaultOnetConfig returns the default configuration.
func DefaultOnetConfig() OnetConfig {
	return OnetConfig{
		Board: BoardConfig{
			Rows:      8,
			Cols:      8,
			TileTypes: 16,
		},
		Rules: RulesConfig{
			Shuffles: 3,
		},
		Scoring: ScoringConfig{
			MatchPoints: 100,
			ClearBonus:  100,
			HintPenalty: 50,
		},
		Timing: TimingConfig{
			RemovalTicks:    30, // ~500ms at 60fps
			MessageTicks:    90,
			LevelClearTicks: 120,
		},
		Display: DisplayConfig{
			CellWidth:  4,
			CellHeight: 2,
			Glyphs:     append([]string(nil), defaultGlyphs...),
		},
		Endless: EndlessConfig{
			MaxTileTypes: 21,
			MaxAt:        10,
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultOnetYAML
}
