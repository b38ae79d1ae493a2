package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-onet/internal/core"
)

// ansiColors maps core colors to terminal palette indexes. ColorDefault has
// no entry and keeps the terminal's foreground.
var ansiColors = map[core.Color]string{
	core.ColorRed:           "1",
	core.ColorGreen:         "2",
	core.ColorYellow:        "3",
	core.ColorBlue:          "4",
	core.ColorMagenta:       "5",
	core.ColorCyan:          "6",
	core.ColorWhite:         "7",
	core.ColorBrightRed:     "9",
	core.ColorBrightGreen:   "10",
	core.ColorBrightYellow:  "11",
	core.ColorBrightBlue:    "12",
	core.ColorBrightMagenta: "13",
	core.ColorBrightCyan:    "14",
	core.ColorBrightWhite:   "15",
	core.ColorOrange:        "208",
	core.ColorGray:          "245",
}

// cellStyle returns the lipgloss style for a cell's color and highlight.
// Unknown colors render like ColorDefault.
func cellStyle(c core.Cell) lipgloss.Style {
	style := lipgloss.NewStyle()
	if code, ok := ansiColors[c.Color]; ok {
		style = style.Foreground(lipgloss.Color(code))
	}
	if c.Reverse {
		style = style.Reverse(true)
	}
	return style
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Adjacent cells sharing a color and highlight are written as one styled
// run, which keeps escape sequences short on wide boards.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	var run strings.Builder
	for y := range s.Height() {
		if y > 0 {
			sb.WriteByte('\n')
		}

		for x := 0; x < s.Width(); {
			start := s.GetCell(x, y)
			run.Reset()
			for ; x < s.Width(); x++ {
				c := s.GetCell(x, y)
				if c.Color != start.Color || c.Reverse != start.Reverse {
					break
				}
				run.WriteRune(c.Rune)
			}
			sb.WriteString(cellStyle(start).Render(run.String()))
		}
	}
	return sb.String()
}
