package tui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-onet/internal/core"
	"github.com/vovakirdan/tui-onet/internal/registry"
)

var (
	menuTitleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("11"))
	menuActiveStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("14"))
	menuHintStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
)

// listPage is one screen of the menu: a heading, selectable rows and a
// key legend.
type listPage struct {
	heading  string
	tagline  string
	rows     []string
	cursor   int
	controls string
}

// render lays the page out centered in width columns.
func (p listPage) render(width int) string {
	lines := []string{"", menuTitleStyle.Render(p.heading), ""}
	if p.tagline != "" {
		lines = append(lines, menuHintStyle.Render(p.tagline), "")
	}
	for i, row := range p.rows {
		if i == p.cursor {
			lines = append(lines, menuActiveStyle.Render("> "+row))
			continue
		}
		lines = append(lines, "  "+row)
	}
	lines = append(lines, "", menuHintStyle.Render(p.controls))

	for i, line := range lines {
		lines[i] = centerText(line, width)
	}
	return strings.Join(lines, "\n")
}

// step moves a cursor by delta and clamps it to [0, n).
func step(cursor, delta, n int) int {
	cursor += delta
	if cursor >= n {
		cursor = n - 1
	}
	if cursor < 0 {
		cursor = 0
	}
	return cursor
}

// MenuItem represents a selectable entry in the main menu.
type MenuItem struct {
	GameID string
	Title  string
	Levels bool // Opens the level list instead of starting a game
}

// MenuModel picks a mode, or a campaign level, before a run starts.
type MenuModel struct {
	items         []MenuItem
	cursor        int
	levelCursor   int
	inLevelSelect bool
	width         int
	height        int
	config        core.RuntimeConfig
	keyMapper     *KeyMapper
	result        MenuResult
	quitting      bool
}

// NewMenuModel lists every registered mode, then the campaign level picker.
func NewMenuModel(cfg core.RuntimeConfig) MenuModel {
	m := MenuModel{
		width:     cfg.ScreenW,
		height:    cfg.ScreenH,
		config:    cfg,
		keyMapper: NewKeyMapper(),
	}
	for _, g := range registry.List() {
		m.items = append(m.items, MenuItem{GameID: g.ID, Title: g.Title})
	}
	if registry.Exists(campaignID) {
		m.items = append(m.items, MenuItem{GameID: campaignID, Title: "Select level...", Levels: true})
	}
	return m
}

func (m MenuModel) Init() tea.Cmd {
	return nil
}

func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		action := m.keyMapper.MapKeyToMenuAction(msg)
		if action == MenuActionQuit {
			m.quitting = true
			return m, tea.Quit
		}
		if m.inLevelSelect {
			return m.handleLevelSelectKey(action)
		}
		return m.handleModeKey(action)

	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.config.ScreenW, m.config.ScreenH = msg.Width, msg.Height
	}
	return m, nil
}

func (m MenuModel) handleModeKey(action MenuAction) (tea.Model, tea.Cmd) {
	switch action {
	case MenuActionUp:
		m.cursor = step(m.cursor, -1, len(m.items))
	case MenuActionDown:
		m.cursor = step(m.cursor, 1, len(m.items))
	case MenuActionScoreboard:
		m.result.WantsScoreboard = true
		return m, tea.Quit
	case MenuActionSelect:
		if len(m.items) == 0 {
			break
		}
		item := m.items[m.cursor]
		if item.Levels {
			m.inLevelSelect, m.levelCursor = true, 0
			break
		}
		m.result.GameID = item.GameID
		return m, tea.Quit
	}
	return m, nil
}

// View renders the mode list or the level list.
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}
	if m.inLevelSelect {
		return m.levelPage().render(m.width)
	}

	rows := make([]string, len(m.items))
	for i, item := range m.items {
		rows[i] = item.Title
	}
	return listPage{
		heading:  "  O N E T  ",
		tagline:  "Connect matching tiles with two turns or fewer",
		rows:     rows,
		cursor:   m.cursor,
		controls: "Up/Down: Navigate  |  Enter: Select  |  Tab: Scores  |  Q: Quit",
	}.render(m.width)
}

// Config returns the runtime config, including any resize seen by the menu.
func (m MenuModel) Config() core.RuntimeConfig {
	return m.config
}

// centerText pads text on the left so it sits in the middle of width
// columns. ANSI sequences do not count toward the text's width.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	return strings.Repeat(" ", (width-w)/2) + text
}

// MenuResult holds what the player chose in the menu.
type MenuResult struct {
	GameID          string
	StartLevel      int // 1-indexed campaign level, 0 for the default
	Config          core.RuntimeConfig
	WantsScoreboard bool
	Quit            bool
}

// Result summarizes the choice. A menu closed without a pick is a quit.
func (m MenuModel) Result() MenuResult {
	res := m.result
	res.Config = m.config
	if m.quitting || (res.GameID == "" && !res.WantsScoreboard) {
		return MenuResult{Config: m.config, Quit: true}
	}
	return res
}

// RunMenu shows the menu full screen until the player picks something.
func RunMenu(cfg core.RuntimeConfig) (MenuResult, error) {
	final, err := tea.NewProgram(NewMenuModel(cfg), tea.WithAltScreen()).Run()
	if err != nil {
		return MenuResult{Config: cfg}, err
	}
	m, ok := final.(MenuModel)
	if !ok {
		return MenuResult{Config: cfg, Quit: true}, nil
	}
	return m.Result(), nil
}
