package tui

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-onet/internal/registry"
	"github.com/vovakirdan/tui-onet/internal/storage"
)

const (
	sidebarMinWidth = 80 // Narrower terminals get a tab line instead
	sidebarWidth    = 20
	maxScores       = 100
	anonymousPlayer = "anonymous"
)

var (
	boardPanel = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1)
	boardTitle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	boardActive = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	boardMuted  = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	boardEmpty  = boardMuted.Italic(true).Padding(2, 4)
)

// scoreView selects between individual runs and per-player bests.
type scoreView int

const (
	viewRuns scoreView = iota
	viewPlayers
)

// scoreColumns are the table headers of each view. Column 1 (the player)
// absorbs spare width.
var scoreColumns = map[scoreView][]table.Column{
	viewRuns: {
		{Title: "Rank", Width: 6},
		{Title: "Player", Width: 12},
		{Title: "Score", Width: 8},
		{Title: "Level", Width: 6},
		{Title: "Date", Width: 14},
	},
	viewPlayers: {
		{Title: "Rank", Width: 6},
		{Title: "Player", Width: 12},
		{Title: "Best", Width: 8},
		{Title: "Level", Width: 6},
		{Title: "Runs", Width: 6},
	},
}

// scoreKeys is the scoreboard's key map; it also feeds the help bar.
type scoreKeys struct {
	Scroll key.Binding
	Next   key.Binding
	Prev   key.Binding
	Toggle key.Binding
	Back   key.Binding
	Quit   key.Binding
}

func newScoreKeys() scoreKeys {
	return scoreKeys{
		Scroll: key.NewBinding(key.WithKeys("up", "k", "down", "j"), key.WithHelp("↑/↓", "scroll")),
		Next:   key.NewBinding(key.WithKeys("tab", "right", "l"), key.WithHelp("tab", "next mode")),
		Prev:   key.NewBinding(key.WithKeys("shift+tab", "left", "h"), key.WithHelp("S-tab", "prev mode")),
		Toggle: key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "runs/players")),
		Back:   key.NewBinding(key.WithKeys("esc", "b"), key.WithHelp("esc", "back")),
		Quit:   key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

func (k scoreKeys) ShortHelp() []key.Binding {
	return []key.Binding{k.Scroll, k.Next, k.Toggle, k.Back, k.Quit}
}

func (k scoreKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Scroll, k.Next, k.Prev}, {k.Toggle, k.Back, k.Quit}}
}

// ScoreboardModel shows the saved runs of one mode at a time, either as a
// list of runs or as one best row per player.
type ScoreboardModel struct {
	store      *storage.Store
	games      []registry.GameInfo
	gameCursor int
	view       scoreView
	scores     []storage.ScoreEntry
	players    []storage.PlayerBest
	table      table.Model
	help       help.Model
	keys       scoreKeys
	width      int
	height     int
	quitting   bool
	goingBack  bool
}

// NewScoreboardModel opens the scoreboard on the first registered mode.
// A nil store shows every mode as empty.
func NewScoreboardModel(store *storage.Store, width, height int) ScoreboardModel {
	m := ScoreboardModel{
		store:  store,
		games:  registry.List(),
		help:   help.New(),
		keys:   newScoreKeys(),
		width:  width,
		height: height,
	}
	m.help.Width = width
	m.rebuildTable()
	if len(m.games) > 0 {
		m.loadScores(m.games[0].ID)
	}
	return m
}

func (m ScoreboardModel) wide() bool {
	return m.width >= sidebarMinWidth
}

// rebuildTable recreates the table for the current view and size.
func (m *ScoreboardModel) rebuildTable() {
	columns := append([]table.Column(nil), scoreColumns[m.view]...)

	avail := m.width - 4
	if m.wide() {
		avail -= sidebarWidth + 3
	}
	for _, c := range columns {
		avail -= c.Width
	}
	if avail > 0 {
		columns[1].Width += min(avail, 8)
	}

	styles := table.DefaultStyles()
	styles.Header = styles.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	styles.Selected = styles.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)

	m.table = table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(m.height-8),
		table.WithStyles(styles),
	)
	m.fillRows()
}

// loadScores reads both views of gameID from the store.
func (m *ScoreboardModel) loadScores(gameID string) {
	m.scores, m.players = nil, nil
	if m.store != nil {
		// A failed read shows the mode as empty.
		m.scores, _ = m.store.TopScores(gameID, maxScores)
		m.players, _ = m.store.Leaderboard(gameID, maxScores)
	}
	m.fillRows()
}

func (m *ScoreboardModel) fillRows() {
	var rows []table.Row
	if m.view == viewPlayers {
		for i, p := range m.players {
			rows = append(rows, table.Row{rank(i), playerName(p.Player),
				strconv.Itoa(p.Score), strconv.Itoa(p.Level), strconv.Itoa(p.Runs)})
		}
	} else {
		for i, s := range m.scores {
			rows = append(rows, table.Row{rank(i), playerName(s.Player),
				strconv.Itoa(s.Score), strconv.Itoa(s.Level), s.CreatedAt.Format("Jan 02 15:04")})
		}
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

func rank(i int) string {
	return "#" + strconv.Itoa(i+1)
}

// playerName labels scores saved without a player name.
func playerName(p string) string {
	if p == "" {
		return anonymousPlayer
	}
	return p
}

func (m ScoreboardModel) Init() tea.Cmd {
	return nil
}

func (m ScoreboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Back):
			m.goingBack = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Toggle):
			m.view = 1 - m.view
			m.rebuildTable()
			return m, nil
		case key.Matches(msg, m.keys.Next):
			m.cycle(1)
			return m, nil
		case key.Matches(msg, m.keys.Prev):
			m.cycle(-1)
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		m.rebuildTable()
		return m, nil
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// cycle moves to the next (delta 1) or previous (delta -1) mode, wrapping.
func (m *ScoreboardModel) cycle(delta int) {
	n := len(m.games)
	if n == 0 {
		return
	}
	m.gameCursor = ((m.gameCursor+delta)%n + n) % n
	m.loadScores(m.games[m.gameCursor].ID)
}

func (m ScoreboardModel) View() string {
	if m.quitting || m.goingBack {
		return ""
	}

	title := "HIGH SCORES"
	if m.view == viewPlayers {
		title = "BEST PLAYERS"
	}
	if len(m.games) > 0 {
		title += " - " + m.games[m.gameCursor].Title
	}

	body := boardPanel.Render(m.tableView())
	if m.wide() {
		body = lipgloss.JoinHorizontal(lipgloss.Top, m.sidebar(), "  ", body)
	} else {
		body = centerText(m.tabLine(), m.width) + "\n\n" + centerText(body, m.width)
	}

	return strings.Join([]string{
		boardTitle.Render(centerText(title, m.width)),
		"",
		body,
		boardMuted.Render(m.help.View(m.keys)),
	}, "\n")
}

// sidebar lists the modes in a bordered column.
func (m ScoreboardModel) sidebar() string {
	lines := []string{"Modes", strings.Repeat("-", sidebarWidth-4)}
	for i, g := range m.games {
		name := truncate(g.Title, sidebarWidth-6)
		if i == m.gameCursor {
			lines = append(lines, boardActive.Render("> "+name))
		} else {
			lines = append(lines, "  "+name)
		}
	}
	return boardPanel.Width(sidebarWidth).Render(strings.Join(lines, "\n"))
}

// tabLine lists the modes on one line, or only the current one with
// arrows when they do not fit.
func (m ScoreboardModel) tabLine() string {
	if len(m.games) == 0 {
		return ""
	}
	tabs := make([]string, len(m.games))
	for i, g := range m.games {
		name := truncate(g.Title, 14)
		if i == m.gameCursor {
			tabs[i] = boardActive.Background(lipgloss.Color("57")).Padding(0, 1).Render(name)
		} else {
			tabs[i] = boardMuted.Render(" " + name + " ")
		}
	}
	line := strings.Join(tabs, " ")
	if lipgloss.Width(line) > m.width-4 {
		line = "< " + m.games[m.gameCursor].Title + " >"
	}
	return line
}

func (m ScoreboardModel) tableView() string {
	if len(m.table.Rows()) == 0 {
		return boardEmpty.Render("No scores recorded yet.\nClear a board to set a high score!")
	}
	return m.table.View()
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n-1] + "."
}

// IsGoingBack reports whether the player asked for the menu.
func (m ScoreboardModel) IsGoingBack() bool {
	return m.goingBack
}

// IsQuitting reports whether the player asked to quit.
func (m ScoreboardModel) IsQuitting() bool {
	return m.quitting
}

// RunScoreboard shows the scoreboard full screen. goBack is true when the
// player left with Esc rather than quitting.
func RunScoreboard(store *storage.Store, width, height int) (goBack bool, err error) {
	final, err := tea.NewProgram(NewScoreboardModel(store, width, height), tea.WithAltScreen()).Run()
	if err != nil {
		return false, err
	}
	m, ok := final.(ScoreboardModel)
	return ok && m.IsGoingBack(), nil
}
