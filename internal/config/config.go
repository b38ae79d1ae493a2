// Package config provides YAML-based configuration loading and difficulty
// presets for Onet.
package config

import "fmt"

// OnetConfig contains all tunable parameters of a game of Onet.
type OnetConfig struct {
	Board   BoardConfig   `yaml:"board"`
	Rules   RulesConfig   `yaml:"rules"`
	Scoring ScoringConfig `yaml:"scoring"`
	Timing  TimingConfig  `yaml:"timing"`
	Display DisplayConfig `yaml:"display"`
	Endless EndlessConfig `yaml:"endless"`
}

// BoardConfig defines the board used by endless mode and `onet gen`.
type BoardConfig struct {
	Rows      int `yaml:"rows"`
	Cols      int `yaml:"cols"`
	TileTypes int `yaml:"tile_types"`
}

// RulesConfig defines per-level allowances.
type RulesConfig struct {
	Shuffles int `yaml:"shuffles"` // Reshuffles per level
}

// ScoringConfig defines how points are awarded.
type ScoringConfig struct {
	MatchPoints int `yaml:"match_points"` // Per removed pair
	ClearBonus  int `yaml:"clear_bonus"`  // When the board empties
	HintPenalty int `yaml:"hint_penalty"` // Subtracted per hint, never below zero
}

// TimingConfig defines animation lengths in ticks.
type TimingConfig struct {
	RemovalTicks    int `yaml:"removal_ticks"`     // Route stays on screen before tiles vanish
	MessageTicks    int `yaml:"message_ticks"`     // Status line lifetime
	LevelClearTicks int `yaml:"level_clear_ticks"` // Pause before the next board
}

// DisplayConfig defines how the board is drawn in the terminal.
type DisplayConfig struct {
	CellWidth  int      `yaml:"cell_width"`
	CellHeight int      `yaml:"cell_height"`
	Glyphs     []string `yaml:"glyphs"` // One entry per tile type
}

// EndlessConfig defines how endless mode ramps up.
type EndlessConfig struct {
	MaxTileTypes int `yaml:"max_tile_types"` // Tile variety reached at full difficulty (0 = no ramp)
	MaxAt        int `yaml:"max_at"`         // Cleared boards until full difficulty
}

// Board size limits. Larger boards do not fit a terminal.
const (
	MaxRows = 16
	MaxCols = 20
)

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// ParsePreset converts a CLI value into a preset. An empty string means
// "no preset".
func ParsePreset(s string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(s); p {
	case "", DifficultyEasy, DifficultyNormal, DifficultyHard:
		return p, nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal or hard)", s)
	}
}

// ApplyPreset modifies the config based on a difficulty preset.
func ApplyPreset(cfg *OnetConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Board = BoardConfig{Rows: 6, Cols: 6, TileTypes: 8}
		cfg.Rules.Shuffles = 5
		cfg.Scoring.HintPenalty = 0
		cfg.Endless.MaxTileTypes = 12
	case DifficultyNormal:
		cfg.Board = BoardConfig{Rows: 8, Cols: 8, TileTypes: 16}
		cfg.Rules.Shuffles = 3
		cfg.Endless.MaxTileTypes = 21
	case DifficultyHard:
		cfg.Board = BoardConfig{Rows: 8, Cols: 12, TileTypes: 21}
		cfg.Rules.Shuffles = 1
		cfg.Scoring.HintPenalty = 100
		cfg.Endless.MaxTileTypes = 21
	}
}

// Validate rejects configurations that cannot produce a playable board.
func (c OnetConfig) Validate() error {
	b := c.Board
	switch {
	case b.Rows < 1 || b.Rows > MaxRows:
		return fmt.Errorf("config: board.rows must be between 1 and %d, got %d", MaxRows, b.Rows)
	case b.Cols < 1 || b.Cols > MaxCols:
		return fmt.Errorf("config: board.cols must be between 1 and %d, got %d", MaxCols, b.Cols)
	case b.Rows*b.Cols < 2:
		return fmt.Errorf("config: board must hold at least one pair, got %dx%d", b.Rows, b.Cols)
	case b.Rows*b.Cols%2 != 0:
		return fmt.Errorf("config: board cell count must be even so it can be cleared, got %dx%d", b.Rows, b.Cols)
	case b.TileTypes < 1:
		return fmt.Errorf("config: board.tile_types must be positive, got %d", b.TileTypes)
	case c.Rules.Shuffles < 0:
		return fmt.Errorf("config: rules.shuffles must not be negative, got %d", c.Rules.Shuffles)
	case c.Scoring.MatchPoints < 0 || c.Scoring.ClearBonus < 0 || c.Scoring.HintPenalty < 0:
		return fmt.Errorf("config: scoring values must not be negative")
	case c.Timing.RemovalTicks < 0 || c.Timing.MessageTicks < 0 || c.Timing.LevelClearTicks < 0:
		return fmt.Errorf("config: timing values must not be negative")
	case c.Display.CellWidth < 3:
		return fmt.Errorf("config: display.cell_width must be at least 3, got %d", c.Display.CellWidth)
	case c.Display.CellHeight < 1:
		return fmt.Errorf("config: display.cell_height must be at least 1, got %d", c.Display.CellHeight)
	case c.Endless.MaxTileTypes != 0 && c.Endless.MaxTileTypes < b.TileTypes:
		return fmt.Errorf("config: endless.max_tile_types (%d) is below board.tile_types (%d)",
			c.Endless.MaxTileTypes, b.TileTypes)
	case c.Endless.MaxAt < 0:
		return fmt.Errorf("config: endless.max_at must not be negative, got %d", c.Endless.MaxAt)
	}

	need := max(b.TileTypes, c.Endless.MaxTileTypes)
	if len(c.Display.Glyphs) < need {
		return fmt.Errorf("config: display.glyphs has %d entries, need %d", len(c.Display.Glyphs), need)
	}
	for i, g := range c.Display.Glyphs {
		if g == "" {
			return fmt.Errorf("config: display.glyphs[%d] is empty", i)
		}
	}
	return nil
}
