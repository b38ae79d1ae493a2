package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	onet "github.com/vovakirdan/tui-onet/internal/games/onet"
)

// campaignID is the registry ID the level list launches.
const campaignID = "onet"

func (m MenuModel) handleLevelSelectKey(action MenuAction) (tea.Model, tea.Cmd) {
	switch action {
	case MenuActionUp:
		m.levelCursor = step(m.levelCursor, -1, onet.LevelCount())
	case MenuActionDown:
		m.levelCursor = step(m.levelCursor, 1, onet.LevelCount())
	case MenuActionBack:
		m.inLevelSelect = false
	case MenuActionSelect:
		m.result.GameID = campaignID
		m.result.StartLevel = m.levelCursor + 1
		return m, tea.Quit
	}
	return m, nil
}

func (m MenuModel) levelPage() listPage {
	rows := make([]string, 0, onet.LevelCount())
	for i, lvl := range onet.Levels {
		rows = append(rows, fmt.Sprintf("%2d. %-12s %dx%d, %d types", i+1, lvl.Name, lvl.Rows, lvl.Cols, lvl.TileTypes))
	}
	return listPage{
		heading:  "SELECT LEVEL",
		rows:     rows,
		cursor:   m.levelCursor,
		controls: "Enter: Select  |  Esc: Back  |  Q: Quit",
	}
}
