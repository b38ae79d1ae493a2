package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-onet/internal/core"
	onet "github.com/vovakirdan/tui-onet/internal/games/onet"
)

func press(t *testing.T, m MenuModel, msgs ...tea.KeyMsg) MenuModel {
	t.Helper()
	for _, msg := range msgs {
		next, _ := m.Update(msg)
		nm, ok := next.(MenuModel)
		require.True(t, ok)
		m = nm
	}
	return m
}

var (
	keyDown  = tea.KeyMsg{Type: tea.KeyDown}
	keyUp    = tea.KeyMsg{Type: tea.KeyUp}
	keyEnter = tea.KeyMsg{Type: tea.KeyEnter}
	keyEsc   = tea.KeyMsg{Type: tea.KeyEsc}
)

func menuIndex(m MenuModel, pred func(MenuItem) bool) int {
	for i, it := range m.items {
		if pred(it) {
			return i
		}
	}
	return -1
}

func TestMenuListsModes(t *testing.T) {
	m := NewMenuModel(core.RuntimeConfig{ScreenW: 80, ScreenH: 24})

	assert.GreaterOrEqual(t, menuIndex(m, func(it MenuItem) bool { return it.GameID == "onet" && !it.Levels }), 0)
	assert.GreaterOrEqual(t, menuIndex(m, func(it MenuItem) bool { return it.GameID == "onet_endless" }), 0)
	assert.Equal(t, len(m.items)-1, menuIndex(m, func(it MenuItem) bool { return it.Levels }),
		"level picker should be the last entry")

	view := m.View()
	assert.Contains(t, view, "O N E T")
	assert.Contains(t, view, "Select level...")
}

func TestMenuSelectsGame(t *testing.T) {
	m := NewMenuModel(core.RuntimeConfig{ScreenW: 80, ScreenH: 24})
	m = press(t, m, keyUp, keyEnter)

	res := m.Result()
	assert.False(t, res.Quit)
	assert.Equal(t, m.items[0].GameID, res.GameID)
	assert.Zero(t, res.StartLevel)
}

func TestMenuLevelSelect(t *testing.T) {
	m := NewMenuModel(core.RuntimeConfig{ScreenW: 80, ScreenH: 24})
	for range m.items {
		m = press(t, m, keyDown)
	}
	m = press(t, m, keyEnter)
	require.True(t, m.inLevelSelect)
	assert.Contains(t, m.View(), "SELECT LEVEL")
	assert.Contains(t, m.View(), "4x4, 4 types")

	// Esc returns to the main list, a second visit picks level 3
	m = press(t, m, keyEsc)
	assert.False(t, m.inLevelSelect)
	m = press(t, m, keyEnter, keyDown, keyDown, keyEnter)

	res := m.Result()
	assert.Equal(t, "onet", res.GameID)
	assert.Equal(t, 3, res.StartLevel)

	// Cursor stops at the last level
	m = NewMenuModel(core.RuntimeConfig{ScreenW: 80, ScreenH: 24})
	for range m.items {
		m = press(t, m, keyDown)
	}
	m = press(t, m, keyEnter)
	for range onet.LevelCount() + 3 {
		m = press(t, m, keyDown)
	}
	assert.Equal(t, onet.LevelCount()-1, m.levelCursor)
}

func TestMenuScoreboardAndQuit(t *testing.T) {
	m := NewMenuModel(core.RuntimeConfig{ScreenW: 80, ScreenH: 24})
	m = press(t, m, tea.KeyMsg{Type: tea.KeyTab})
	assert.True(t, m.Result().WantsScoreboard)

	m = NewMenuModel(core.RuntimeConfig{ScreenW: 80, ScreenH: 24})
	m = press(t, m, runeKey('q'))
	assert.True(t, m.Result().Quit)
	assert.Empty(t, m.View())
}

func TestMenuResizeUpdatesConfig(t *testing.T) {
	m := NewMenuModel(core.RuntimeConfig{ScreenW: 80, ScreenH: 24})
	next, _ := m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	cfg := next.(MenuModel).Config()
	assert.Equal(t, 120, cfg.ScreenW)
	assert.Equal(t, 40, cfg.ScreenH)
}
