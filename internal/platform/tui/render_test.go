package tui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"

	"github.com/vovakirdan/tui-onet/internal/core"
)

func TestRenderScreenText(t *testing.T) {
	s := core.NewScreen(10, 3)
	s.DrawText(0, 0, "ab")
	s.SetColor(2, 0, 'X', core.ColorRed)
	s.DrawTextColor(0, 1, "[G]", core.ColorGreen)
	s.Highlight(core.NewRect(0, 1, 3, 1))

	out := ansi.Strip(RenderScreen(s))
	lines := strings.Split(out, "\n")
	if len(lines) != 3 {
		t.Fatalf("got %d lines, want 3", len(lines))
	}
	if lines[0] != "abX       " {
		t.Errorf("line 0 = %q", lines[0])
	}
	if lines[1] != "[G]       " {
		t.Errorf("line 1 = %q", lines[1])
	}
}

func TestCellStyle(t *testing.T) {
	plain := cellStyle(core.Cell{Rune: 'a'})
	if plain.GetReverse() {
		t.Error("plain cell should not be reversed")
	}
	if !cellStyle(core.Cell{Rune: 'a', Reverse: true}).GetReverse() {
		t.Error("highlighted cell should be reversed")
	}
	unknown := cellStyle(core.Cell{Rune: 'a', Color: core.Color(250)})
	if unknown.GetReverse() {
		t.Error("unknown color falls back to default style")
	}
}
