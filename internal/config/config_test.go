package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefaultConfigIsValid(t *testing.T) {
	if err := DefaultOnetConfig().Validate(); err != nil {
		t.Fatalf("DefaultOnetConfig().Validate() = %v", err)
	}
}

func TestEmbeddedYAMLMatchesDefaults(t *testing.T) {
	cfg, err := decode(DefaultYAML())
	if err != nil {
		t.Fatalf("embedded YAML does not parse: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("embedded YAML is invalid: %v", err)
	}

	def := DefaultOnetConfig()
	if cfg.Board != def.Board || cfg.Scoring != def.Scoring || cfg.Timing != def.Timing {
		t.Errorf("embedded YAML drifted from DefaultOnetConfig:\n got %+v\nwant %+v", cfg, def)
	}
	if len(cfg.Display.Glyphs) != len(def.Display.Glyphs) {
		t.Errorf("glyph count = %d, want %d", len(cfg.Display.Glyphs), len(def.Display.Glyphs))
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*OnetConfig)
		wantErr string
	}{
		{"zero rows", func(c *OnetConfig) { c.Board.Rows = 0 }, "board.rows"},
		{"too many cols", func(c *OnetConfig) { c.Board.Cols = MaxCols + 1 }, "board.cols"},
		{"single cell", func(c *OnetConfig) { c.Board = BoardConfig{Rows: 1, Cols: 1, TileTypes: 1} }, "at least one pair"},
		{"odd cell count", func(c *OnetConfig) { c.Board = BoardConfig{Rows: 3, Cols: 3, TileTypes: 2} }, "even"},
		{"no tile types", func(c *OnetConfig) { c.Board.TileTypes = 0 }, "tile_types"},
		{"negative shuffles", func(c *OnetConfig) { c.Rules.Shuffles = -1 }, "shuffles"},
		{"negative points", func(c *OnetConfig) { c.Scoring.MatchPoints = -5 }, "scoring"},
		{"negative ticks", func(c *OnetConfig) { c.Timing.RemovalTicks = -1 }, "timing"},
		{"narrow cells", func(c *OnetConfig) { c.Display.CellWidth = 2 }, "cell_width"},
		{"flat cells", func(c *OnetConfig) { c.Display.CellHeight = 0 }, "cell_height"},
		{"endless below base", func(c *OnetConfig) { c.Endless.MaxTileTypes = 4 }, "max_tile_types"},
		{"too few glyphs", func(c *OnetConfig) { c.Display.Glyphs = c.Display.Glyphs[:5] }, "glyphs"},
		{"empty glyph", func(c *OnetConfig) { c.Display.Glyphs[3] = "" }, "glyphs[3]"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultOnetConfig()
			tc.mutate(&cfg)

			err := cfg.Validate()
			if err == nil {
				t.Fatal("Validate() = nil, want error")
			}
			if !strings.Contains(err.Error(), tc.wantErr) {
				t.Errorf("Validate() = %q, want mention of %q", err, tc.wantErr)
			}
		})
	}
}

func TestPresetsAreValid(t *testing.T) {
	for _, p := range []DifficultyPreset{DifficultyEasy, DifficultyNormal, DifficultyHard} {
		cfg := DefaultOnetConfig()
		ApplyPreset(&cfg, p)
		if err := cfg.Validate(); err != nil {
			t.Errorf("preset %s: %v", p, err)
		}
	}

	easy, hard := DefaultOnetConfig(), DefaultOnetConfig()
	ApplyPreset(&easy, DifficultyEasy)
	ApplyPreset(&hard, DifficultyHard)
	if easy.Rules.Shuffles <= hard.Rules.Shuffles {
		t.Error("easy should allow more shuffles than hard")
	}
	if easy.Board.TileTypes >= hard.Board.TileTypes {
		t.Error("easy should use fewer tile types than hard")
	}
}

func TestParsePreset(t *testing.T) {
	for _, s := range []string{"", "easy", "normal", "hard"} {
		if _, err := ParsePreset(s); err != nil {
			t.Errorf("ParsePreset(%q) = %v", s, err)
		}
	}
	if _, err := ParsePreset("fixed"); err == nil {
		t.Error("ParsePreset(\"fixed\") should fail")
	}
}

func TestLoadCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "onet.yaml")
	data := "board:\n  rows: 4\n  cols: 6\n  tile_types: 5\nrules:\n  shuffles: 7\n"
	if err := os.WriteFile(path, []byte(data), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, src, err := Load(path)
	if err != nil {
		t.Fatalf("Load() = %v", err)
	}
	if src != SourceCustom {
		t.Errorf("source = %s, want %s", src, SourceCustom)
	}
	if cfg.Board != (BoardConfig{Rows: 4, Cols: 6, TileTypes: 5}) {
		t.Errorf("board = %+v", cfg.Board)
	}
	if cfg.Rules.Shuffles != 7 {
		t.Errorf("shuffles = %d, want 7", cfg.Rules.Shuffles)
	}

	// Keys missing from the file keep their defaults
	if cfg.Scoring.MatchPoints != 100 || cfg.Display.CellWidth != 4 {
		t.Errorf("defaults were not preserved: %+v", cfg)
	}
}

func TestLoadCustomPathErrors(t *testing.T) {
	dir := t.TempDir()

	if _, _, err := Load(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("missing custom file should fail")
	}

	broken := filepath.Join(dir, "broken.yaml")
	if err := os.WriteFile(broken, []byte("board: [1, 2"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, _, err := Load(broken); err == nil {
		t.Error("unparsable custom file should fail")
	}

	invalid := filepath.Join(dir, "invalid.yaml")
	if err := os.WriteFile(invalid, []byte("board:\n  rows: 0\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, _, err := Load(invalid); err == nil {
		t.Error("invalid custom file should fail validation")
	}
}

func TestLoadFallsBackToEmbedded(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Chdir(t.TempDir())

	cfg, src, err := Load("")
	if err != nil {
		t.Fatalf("Load(\"\") = %v", err)
	}
	if src != SourceEmbedded {
		t.Errorf("source = %s, want %s", src, SourceEmbedded)
	}
	if cfg.Board != DefaultOnetConfig().Board {
		t.Errorf("board = %+v", cfg.Board)
	}
}

func TestLoadLocalConfig(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	dir := t.TempDir()
	t.Chdir(dir)

	if err := os.MkdirAll("configs", 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(localConfigPath, []byte("rules:\n  shuffles: 9\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, src, err := Load("")
	if err != nil {
		t.Fatalf("Load(\"\") = %v", err)
	}
	if src != SourceLocal || cfg.Rules.Shuffles != 9 {
		t.Errorf("got source %s shuffles %d, want local config with 9 shuffles", src, cfg.Rules.Shuffles)
	}
}

func TestDifficultyManager(t *testing.T) {
	cfg := DefaultOnetConfig()
	cfg.Board.TileTypes = 10
	cfg.Endless = EndlessConfig{MaxTileTypes: 20, MaxAt: 10}
	d := NewDifficultyManager(cfg)

	tests := []struct {
		cleared int
		want    int
	}{
		{0, 10},
		{5, 15},
		{10, 20},
		{50, 20},
	}
	for _, tc := range tests {
		if got := d.TileTypes(tc.cleared); got != tc.want {
			t.Errorf("TileTypes(%d) = %d, want %d", tc.cleared, got, tc.want)
		}
	}

	cfg.Endless.MaxTileTypes = 0
	if d := NewDifficultyManager(cfg); d.IsEnabled() || d.TileTypes(100) != 10 {
		t.Error("ramp should be disabled when max_tile_types is 0")
	}

	cfg.Endless = EndlessConfig{MaxTileTypes: 20, MaxAt: 0}
	if got := NewDifficultyManager(cfg).TileTypes(0); got != 20 {
		t.Errorf("max_at 0 should jump straight to full difficulty, got %d", got)
	}
}
