package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-onet/internal/core"
	"github.com/vovakirdan/tui-onet/internal/registry"
	"github.com/vovakirdan/tui-onet/internal/storage"
)

// Model runs one game mode: it turns input into frames, steps the game on
// every tick and saves the score when the run ends. `onet play` runs it as
// a program of its own; SSH sessions embed it.
type Model struct {
	game   registry.Game
	screen *core.Screen
	store  *storage.Store
	config core.RuntimeConfig
	keys   *KeyMapper

	frame core.InputFrame // Input collected since the last tick
	state core.GameState  // As of the last tick
	runID string

	standalone bool // Quit the program rather than hand back to a menu
	quitting   bool
	backToMenu bool
	saved      bool // The current run's score is stored
}

// NewModel deals the first board so the first View has something to draw.
// A zero seed is replaced by the clock.
func NewModel(game registry.Game, store *storage.Store, cfg core.RuntimeConfig) Model {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	game.Reset(cfg)

	return Model{
		game:   game,
		screen: core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:  store,
		config: cfg,
		keys:   NewKeyMapper(),
		frame:  core.NewInputFrame(),
		state:  game.State(),
		runID:  storage.NewRunID(),
	}
}

func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.onKey(msg)
	case tea.MouseMsg:
		m.keys.MapMouseToFrame(msg, &m.frame)
	case tea.WindowSizeMsg:
		m.onResize(msg.Width, msg.Height)
	case TickMsg:
		m.onTick()
		return m, tickCmd(m.config.TickRate)
	}
	return m, nil
}

func (m Model) onKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.screenshot()
		return m, nil
	}
	if m.keys.MapKeyToFrame(msg, &m.frame) {
		m.quitting = true
		return m, tea.Quit
	}
	if !m.frame.Has(core.ActionBack) {
		return m, nil
	}

	// Back leaves a paused or finished run and pauses a live one.
	if m.state.GameOver || m.state.Paused {
		m.backToMenu = true
		if m.standalone {
			return m, tea.Quit
		}
		return m, nil
	}
	m.frame.Set(core.ActionPause)
	return m, nil
}

// onResize relayouts games that support it and restarts the others unless
// their run is already over.
func (m *Model) onResize(w, h int) {
	m.config.ScreenW, m.config.ScreenH = w, h
	m.screen.Resize(w, h)

	switch g := m.game.(type) {
	case registry.Resizer:
		g.Resize(w, h)
	default:
		if !m.state.GameOver {
			m.game.Reset(m.config)
		}
	}
}

func (m *Model) onTick() {
	defer m.frame.Clear()

	if m.state.GameOver && m.frame.Has(core.ActionRestart) {
		m.config.Seed = time.Now().UnixNano()
		m.game.Reset(m.config)
		m.state = m.game.State()
		m.runID = storage.NewRunID()
		m.saved = false
		return
	}

	m.state = m.game.Step(m.frame).State
	if m.state.GameOver && !m.saved {
		m.saveScore()
		m.saved = true
	}
}

// saveScore stores a finished run that scored anything.
func (m *Model) saveScore() {
	if m.store == nil || m.state.Score <= 0 {
		return
	}
	//nolint:errcheck // A lost score does not interrupt play
	m.store.SaveScore(storage.ScoreEntry{
		RunID:  m.runID,
		GameID: m.game.ID(),
		Player: m.config.Player,
		Score:  m.state.Score,
		Level:  m.state.Level,
	})
}

// screenshot writes the current frame as plain text under
// ~/.arcade/screenshots, plus the game state as JSON when the game can
// export it.
func (m *Model) screenshot() {
	home, err := os.UserHomeDir()
	if err != nil {
		return
	}
	dir := filepath.Join(home, ".arcade", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return
	}

	m.game.Render(m.screen)
	base := filepath.Join(dir, fmt.Sprintf("%s_%s", m.game.ID(), time.Now().Format("20060102_150405")))
	//nolint:errcheck // Best effort
	os.WriteFile(base+".txt", []byte(m.screen.String()), 0o600)

	if s, ok := m.game.(registry.Snapshotter); ok {
		if data, err := s.SnapshotJSON(); err == nil {
			//nolint:errcheck // Best effort
			os.WriteFile(base+".json", data, 0o600)
		}
	}
}

func (m Model) View() string {
	if m.quitting {
		return ""
	}
	m.game.Render(m.screen)
	return RenderScreen(m.screen)
}

// IsQuitting reports whether the player asked to quit entirely.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// BackToMenu reports whether the player left the run for the menu.
func (m Model) BackToMenu() bool {
	return m.backToMenu
}

// GameState returns the state reported by the last tick.
func (m Model) GameState() core.GameState {
	return m.state
}

// Run plays game full screen with mouse support. It reports whether the
// player went back to the menu rather than quitting.
func Run(game registry.Game, store *storage.Store, cfg core.RuntimeConfig) (backToMenu bool, err error) {
	m := NewModel(game, store, cfg)
	m.standalone = true

	final, err := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion()).Run()
	if err != nil {
		return false, err
	}
	fm, ok := final.(Model)
	return ok && fm.BackToMenu(), nil
}
