package onet

import (
	"fmt"

	"github.com/vovakirdan/tui-onet/internal/core"
	engine "github.com/vovakirdan/tui-onet/internal/onet"
)

const routeColor = core.ColorBrightWhite

// Render draws the game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.ctrl == nil {
		dst.DrawTextCentered(dst.Height()/2, g.message)
		return
	}

	// Check screen size
	if g.tooSmall {
		g.renderTooSmall(dst)
		return
	}

	g.renderHUD(dst)
	g.renderRoute(dst)
	g.renderTiles(dst)
	g.renderStatus(dst)
	g.renderOverlays(dst)
}

// renderTooSmall shows a "window too small" message.
func (g *Game) renderTooSmall(dst *core.Screen) {
	dst.DrawTextCentered(dst.Height()/2-1, "Window too small")
	dst.DrawTextCentered(dst.Height()/2+1, fmt.Sprintf("Need %dx%d", g.minWidth(), g.minHeight()))
}

// hudRect returns the strip the HUD lines are laid out in.
func (g *Game) hudRect() core.Rect {
	w := min(g.minWidth(), g.screenW)
	return core.NewRect((g.screenW-w)/2, 0, w, hudHeight)
}

// renderHUD draws the title, score and board info.
func (g *Game) renderHUD(dst *core.Screen) {
	hud := g.hudRect()

	title := "ONET"
	if g.mode == ModeEndless {
		title = "ONET - Endless"
	}
	dst.DrawTextColor(hud.X+(hud.W-len(title))/2, 0, title, core.ColorBrightCyan)

	dst.DrawText(hud.X, 1, fmt.Sprintf("Score: %d", g.score))

	var info string
	if g.mode == ModeCampaign {
		info = fmt.Sprintf("Level %d/%d %s", g.levelIndex+1, LevelCount(), GetLevel(g.levelIndex).Name)
	} else {
		info = fmt.Sprintf("Board %d  Types %d", g.cleared+1, g.tileTypes)
	}
	dst.DrawText(max(hud.Right()-len(info), hud.X), 1, info)

	shuffles := fmt.Sprintf("Shuffles: %d", g.ctrl.ShufflesLeft())
	color := core.ColorDefault
	if g.ctrl.ShufflesLeft() == 0 {
		color = core.ColorGray
	}
	dst.DrawTextColor(hud.X, 2, shuffles, color)

	tiles := fmt.Sprintf("Tiles: %d", g.remaining())
	dst.DrawText(max(hud.Right()-len(tiles), hud.X), 2, tiles)
}

// remaining counts the tiles still on the board.
func (g *Game) remaining() int {
	n := 0
	for r := range g.ctrl.Rows() {
		for c := range g.ctrl.Cols() {
			if g.ctrl.At(engine.P(r, c)) != engine.Empty {
				n++
			}
		}
	}
	return n
}

// center returns the screen position of the middle of cell p.
func (g *Game) center(p engine.Point) (int, int) {
	x, y := g.geom.CellCenter(p)
	return g.origin.X + x, g.origin.Y + y
}

// renderTiles draws every tile as a bracketed glyph, with the cursor,
// selection and hint marked.
func (g *Game) renderTiles(dst *core.Screen) {
	selected, hasSelected := g.ctrl.Selected()

	for r := range g.ctrl.Rows() {
		for c := range g.ctrl.Cols() {
			p := engine.P(r, c)
			x, y := g.center(p)
			t := g.ctrl.At(p)

			left, right := '[', ']'
			if p == g.cursor && !g.gameOver {
				left, right = '>', '<'
			}

			if t == engine.Empty {
				if p == g.cursor && !g.gameOver {
					dst.SetColor(x-1, y, left, core.ColorGray)
					dst.SetColor(x+1, y, right, core.ColorGray)
				}
				continue
			}

			color := core.PaletteColor(int(t) - 1)
			dst.SetColor(x-1, y, left, color)
			dst.SetColor(x, y, g.glyph(t), color)
			dst.SetColor(x+1, y, right, color)

			if (hasSelected && p == selected) || g.isHinted(p) {
				dst.Highlight(core.NewRect(x-1, y, 3, 1))
			}
		}
	}
}

// glyph returns the first rune of the tile's catalog entry.
func (g *Game) glyph(t engine.Tile) rune {
	for _, r := range g.catalog.ID(t) {
		return r
	}
	return '?'
}

func (g *Game) isHinted(p engine.Point) bool {
	return g.hintTicks > 0 && (p == g.hint.A || p == g.hint.B)
}

// renderRoute draws the matched route through cell centers, including the
// stretch that runs through the padding ring around the board.
func (g *Game) renderRoute(dst *core.Screen) {
	corners := g.route.Corners()
	if len(corners) < 2 {
		return
	}

	for i := 1; i < len(corners); i++ {
		x0, y0 := g.center(corners[i-1])
		x1, y1 := g.center(corners[i])
		if y0 == y1 {
			dst.DrawHLine(min(x0, x1), y0, core.Abs(x1-x0)+1, '─', routeColor)
		} else {
			dst.DrawVLine(x0, min(y0, y1), core.Abs(y1-y0)+1, '│', routeColor)
		}
	}

	for i := 1; i < len(corners)-1; i++ {
		x, y := g.center(corners[i])
		dst.SetColor(x, y, cornerRune(corners[i-1], corners[i], corners[i+1]), routeColor)
	}
}

// cornerRune picks the box-drawing corner joining the neighbors of at.
func cornerRune(prev, at, next engine.Point) rune {
	up, left := false, false
	for _, n := range []engine.Point{prev, next} {
		switch {
		case n.Row < at.Row:
			up = true
		case n.Col < at.Col:
			left = true
		}
	}

	switch {
	case up && left:
		return '┘'
	case up:
		return '└'
	case left:
		return '┐'
	default:
		return '┌'
	}
}

// renderStatus draws the line under the board.
func (g *Game) renderStatus(dst *core.Screen) {
	y := g.origin.Bottom()

	switch {
	case g.deadlocked && !g.gameOver:
		msg := fmt.Sprintf("No moves - press X to shuffle (%d left)", g.ctrl.ShufflesLeft())
		dst.DrawTextCentered(y, msg)
		dst.Highlight(core.NewRect((dst.Width()-len(msg))/2, y, len(msg), 1))
	case g.messageTicks > 0:
		dst.DrawTextCentered(y, g.message)
	default:
		dst.DrawTextCentered(y, g.Controls())
	}
}

// renderOverlays draws game state overlays.
func (g *Game) renderOverlays(dst *core.Screen) {
	if g.paused {
		g.drawOverlay(dst, "PAUSED", "Press P to resume")
		return
	}

	if g.levelCleared {
		bonus := fmt.Sprintf("Clear bonus +%d", g.cfg.Scoring.ClearBonus)
		switch {
		case g.mode == ModeEndless:
			next := fmt.Sprintf("Next: %d tile types", min(g.difficulty.TileTypes(g.cleared), g.catalog.Len()))
			g.drawOverlay(dst, fmt.Sprintf("Board %d cleared!", g.cleared), bonus, next)
		case g.levelIndex >= LevelCount()-1:
			g.drawOverlay(dst, "Board cleared!", bonus, "Final level complete!")
		default:
			next := fmt.Sprintf("Next: Level %d", g.levelIndex+2)
			g.drawOverlay(dst, "Board cleared!", bonus, next)
		}
		return
	}

	if g.won {
		g.drawOverlay(dst, "CAMPAIGN COMPLETE!",
			fmt.Sprintf("Final score: %d", g.score), "Press R to restart")
		return
	}

	if g.gameOver {
		g.drawOverlay(dst, "NO MOVES LEFT",
			fmt.Sprintf("Score: %d  Level: %d", g.score, g.level()), "Press R to restart")
		return
	}
}

// drawOverlay boxes lines in the middle of the board area, blanking
// whatever was drawn under the box.
func (g *Game) drawOverlay(dst *core.Screen, lines ...string) {
	width := 0
	for _, line := range lines {
		width = max(width, len(line))
	}

	box := g.origin.CenteredIn(width+4, len(lines)+2)
	dst.DrawRect(box, ' ')
	dst.DrawBox(box, core.ColorBrightCyan)
	for i, line := range lines {
		dst.DrawText(box.X+(box.W-len(line))/2, box.Y+1+i, line)
	}
}

// Controls returns the control hints for the game.
func (g *Game) Controls() string {
	return "WASD: Move  Space: Pick  X: Shuffle  H: Hint  N: New  P: Pause"
}
