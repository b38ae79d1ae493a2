package main

import (
	"math/rand"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-onet/internal/config"
	engine "github.com/vovakirdan/tui-onet/internal/onet"
)

func TestBoardFlags(t *testing.T) {
	cfg := config.DefaultOnetConfig()

	rows, cols, types := boardFlags(cfg, 0, 0, 0)
	assert.Equal(t, cfg.Board.Rows, rows)
	assert.Equal(t, cfg.Board.Cols, cols)
	assert.Equal(t, cfg.Board.TileTypes, types)

	rows, cols, types = boardFlags(cfg, 4, 6, 1000)
	assert.Equal(t, 4, rows)
	assert.Equal(t, 6, cols)
	assert.Equal(t, len(cfg.Display.Glyphs), types, "tile types are capped by the glyph set")
}

func TestSurvey(t *testing.T) {
	steps := 0
	res, err := survey(20, 4, 4, 4, 1, func() { steps++ })
	require.NoError(t, err)

	assert.Equal(t, 20, steps)
	assert.Equal(t, 20, res.Boards)
	assert.LessOrEqual(t, res.Deadlocked, res.Boards)
	assert.LessOrEqual(t, res.Cleared, res.Boards)
	assert.LessOrEqual(t, res.Pairs, 20*8)

	again, err := survey(20, 4, 4, 4, 1, nil)
	require.NoError(t, err)
	assert.Equal(t, res, again, "surveys from the same seed agree")

	deadlocked := 0
	for i := range 20 {
		b, err := engine.Generate(4, 4, 4, rand.New(rand.NewSource(1+int64(i))))
		require.NoError(t, err)
		if !engine.HasMoves(b) {
			deadlocked++
		}
	}
	assert.Equal(t, deadlocked, res.Deadlocked, "one board per consecutive seed")

	_, err = survey(1, 4, 4, 0, 1, nil)
	assert.Error(t, err)
}

func TestLoadConfig(t *testing.T) {
	data, err := config.Marshal(config.DefaultOnetConfig())
	require.NoError(t, err)
	path := filepath.Join(t.TempDir(), "onet.yaml")
	require.NoError(t, os.WriteFile(path, data, 0o600))

	base, src, err := loadConfig(path, "")
	require.NoError(t, err)
	assert.Equal(t, config.SourceCustom, src)

	hard, _, err := loadConfig(path, "hard")
	require.NoError(t, err)
	want := base
	config.ApplyPreset(&want, config.DifficultyHard)
	assert.Equal(t, want, hard)

	_, _, err = loadConfig(path, "nightmare")
	assert.Error(t, err, "unknown presets are reported")
}

func TestNewBoardHint(t *testing.T) {
	_, out, err := newBoard(2, 2, 1, 5)
	require.NoError(t, err)
	require.True(t, out.HasMoves)
	require.NotNil(t, out.Hint)
	assert.Equal(t, 2, out.Rows)
	assert.GreaterOrEqual(t, len(out.Hint.Route), 2)
	assert.LessOrEqual(t, out.Hint.Turns, 2)
}

func TestModeID(t *testing.T) {
	assert.Equal(t, "onet", modeID(""))
	assert.Equal(t, "onet", modeID("campaign"))
	assert.Equal(t, "onet_endless", modeID("endless"))
	assert.Equal(t, "onet_endless", modeID("onet_endless"))
}

func TestPercent(t *testing.T) {
	assert.Zero(t, percent(3, 0))
	assert.InDelta(t, 25.0, percent(1, 4), 1e-9)
}
