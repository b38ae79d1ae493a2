package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-onet/internal/core"
)

func sessionStep(t *testing.T, m SessionModel, msgs ...tea.Msg) SessionModel {
	t.Helper()
	for _, msg := range msgs {
		next, _ := m.Update(msg)
		nm, ok := next.(SessionModel)
		require.True(t, ok)
		m = nm
	}
	return m
}

func newTestSession(t *testing.T) SessionModel {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	t.Chdir(t.TempDir())
	return NewSessionModel(nil, core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Player: "ann"}, nil)
}

func TestSessionGameAndBack(t *testing.T) {
	m := newTestSession(t)
	assert.NotEmpty(t, m.SessionID())
	assert.Equal(t, screenMenu, m.screen)

	m = sessionStep(t, m, keyEnter)
	require.Equal(t, screenGame, m.screen)
	require.NotNil(t, m.gameModel)
	assert.Contains(t, m.View(), "ONET")

	// Pause, then leave the game
	m = sessionStep(t, m, runeKey('p'), TickMsg{})
	require.True(t, m.gameModel.GameState().Paused)
	m = sessionStep(t, m, runeKey('b'))

	assert.Equal(t, screenMenu, m.screen)
	assert.Nil(t, m.gameModel)
	assert.Contains(t, m.View(), "O N E T")
}

func TestSessionLevelPick(t *testing.T) {
	m := newTestSession(t)
	for range m.menu.items {
		m = sessionStep(t, m, keyDown)
	}
	m = sessionStep(t, m, keyEnter, keyDown, keyEnter)

	require.Equal(t, screenGame, m.screen)
	assert.Equal(t, 2, m.gameModel.GameState().Level)
}

func TestSessionScoreboard(t *testing.T) {
	m := newTestSession(t)

	m = sessionStep(t, m, tea.KeyMsg{Type: tea.KeyTab})
	require.Equal(t, screenScores, m.screen)
	assert.Contains(t, m.View(), "HIGH SCORES")

	m = sessionStep(t, m, keyEsc)
	assert.Equal(t, screenMenu, m.screen)
}

func TestSessionQuit(t *testing.T) {
	m := newTestSession(t)
	next, cmd := m.Update(runeKey('q'))
	m = next.(SessionModel)
	assert.True(t, m.quitting)
	assert.NotNil(t, cmd)
	assert.Empty(t, m.View())
}
