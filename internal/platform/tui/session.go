package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/vovakirdan/tui-onet/internal/core"
	"github.com/vovakirdan/tui-onet/internal/registry"
	"github.com/vovakirdan/tui-onet/internal/storage"
)

// sessionScreen is the screen a session is currently showing.
type sessionScreen int

const (
	screenMenu sessionScreen = iota
	screenScores
	screenGame
)

// SessionModel is one SSH connection's program. It moves between the menu,
// the scoreboard and a running game inside a single Bubble Tea program.
type SessionModel struct {
	store      *storage.Store
	config     core.RuntimeConfig
	logger     *log.Logger
	sessionID  string
	screen     sessionScreen
	menu       MenuModel
	scoreboard ScoreboardModel
	gameModel  *Model
	quitting   bool
}

// NewSessionModel starts a session on the menu. cfg.Player names the
// player scores are saved under.
func NewSessionModel(store *storage.Store, cfg core.RuntimeConfig, logger *log.Logger) SessionModel {
	if logger == nil {
		logger = log.Default()
	}
	id := uuid.NewString()
	return SessionModel{
		store:     store,
		config:    cfg,
		logger:    logger.With("session", id, "user", cfg.Player),
		sessionID: id,
		menu:      NewMenuModel(cfg),
	}
}

// SessionID returns the ID the session's log lines carry.
func (m SessionModel) SessionID() string {
	return m.sessionID
}

func (m SessionModel) Init() tea.Cmd {
	return m.menu.Init()
}

func (m SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if size, ok := msg.(tea.WindowSizeMsg); ok {
		m.config.ScreenW, m.config.ScreenH = size.Width, size.Height
	}

	switch m.screen {
	case screenGame:
		return m.updateGame(msg)
	case screenScores:
		return m.updateScores(msg)
	default:
		return m.updateMenu(msg)
	}
}

// toMenu shows a fresh menu.
func (m SessionModel) toMenu() (tea.Model, tea.Cmd) {
	m.screen = screenMenu
	m.menu = NewMenuModel(m.config)
	return m, m.menu.Init()
}

func (m SessionModel) quit() (tea.Model, tea.Cmd) {
	m.quitting = true
	return m, tea.Quit
}

func (m SessionModel) updateMenu(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.menu.Update(msg)
	m.menu = next.(MenuModel)

	// The menu's tea.Quit only closes the menu here.
	switch {
	case m.menu.quitting:
		return m.quit()
	case m.menu.result.WantsScoreboard:
		m.screen = screenScores
		m.scoreboard = NewScoreboardModel(m.store, m.config.ScreenW, m.config.ScreenH)
		return m, m.scoreboard.Init()
	case m.menu.result.GameID != "":
		return m.startGame(m.menu.result)
	}
	return m, cmd
}

func (m SessionModel) startGame(choice MenuResult) (tea.Model, tea.Cmd) {
	game, err := registry.Create(choice.GameID)
	if err != nil {
		m.logger.Error("cannot create game", "game", choice.GameID, "error", err)
		return m.toMenu()
	}
	if ls, ok := game.(registry.LevelStarter); ok && choice.StartLevel > 0 {
		ls.StartAt(choice.StartLevel)
	}

	m.config.Seed = time.Now().UnixNano()
	gm := NewModel(game, m.store, m.config)
	m.gameModel = &gm
	m.screen = screenGame
	m.logger.Info("game started", "game", game.ID(), "level", gm.GameState().Level)
	return m, gm.Init()
}

func (m SessionModel) updateScores(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.scoreboard.Update(msg)
	m.scoreboard = next.(ScoreboardModel)

	switch {
	case m.scoreboard.IsQuitting():
		return m.quit()
	case m.scoreboard.IsGoingBack():
		return m.toMenu()
	}
	return m, cmd
}

func (m SessionModel) updateGame(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.gameModel.Update(msg)
	gm := next.(Model)
	m.gameModel = &gm

	if !gm.IsQuitting() && !gm.BackToMenu() {
		return m, cmd
	}

	state := gm.GameState()
	m.logger.Info("game ended", "score", state.Score, "level", state.Level, "over", state.GameOver)
	if gm.IsQuitting() {
		return m.quit()
	}
	m.gameModel = nil
	return m.toMenu()
}

func (m SessionModel) View() string {
	switch {
	case m.quitting:
		return ""
	case m.screen == screenGame:
		return m.gameModel.View()
	case m.screen == screenScores:
		return m.scoreboard.View()
	default:
		return m.menu.View()
	}
}
