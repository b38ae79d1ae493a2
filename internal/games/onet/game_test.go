package onet

import (
	"reflect"
	"strings"
	"testing"

	"github.com/bytedance/sonic"

	"github.com/vovakirdan/tui-onet/internal/core"
	engine "github.com/vovakirdan/tui-onet/internal/onet"
	"github.com/vovakirdan/tui-onet/internal/registry"
)

// newTestGame resets g against the embedded default config.
func newTestGame(t *testing.T, g *Game) *Game {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	t.Chdir(t.TempDir())
	SetConfigPath("")
	if err := SetDifficultyPreset(""); err != nil {
		t.Fatal(err)
	}

	g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 42})
	return g
}

func step(g *Game, actions ...core.Action) core.StepResult {
	in := core.NewInputFrame()
	for _, a := range actions {
		in.Set(a)
	}
	return g.Step(in)
}

func idle(g *Game, ticks int) {
	for range ticks {
		step(g)
	}
}

func click(g *Game, p engine.Point) core.StepResult {
	x, y := g.center(p)
	in := core.NewInputFrame()
	in.AddClick(x, y)
	return g.Step(in)
}

func install(g *Game, rows [][]engine.Tile) {
	g.setBoard(engine.FromRows(rows))
}

// clearPair matches a and b and waits out the removal delay.
func clearPair(g *Game, a, b engine.Point) {
	g.selectCell(a)
	g.selectCell(b)
	idle(g, g.cfg.Timing.RemovalTicks)
}

func TestGameIDs(t *testing.T) {
	if New().ID() != "onet" {
		t.Errorf("campaign ID = %q", New().ID())
	}
	if NewEndless().ID() != "onet_endless" {
		t.Errorf("endless ID = %q", NewEndless().ID())
	}
	if New().Title() != "Onet" || NewEndless().Title() != "Onet (Endless)" {
		t.Error("unexpected titles")
	}

	for _, id := range []string{"onet", "onet_endless"} {
		if !registry.Exists(id) {
			t.Errorf("%s is not registered", id)
		}
	}
}

func TestResetDealsFirstLevel(t *testing.T) {
	g := newTestGame(t, New())
	snap := g.Snapshot()

	lvl := Levels[0]
	if len(snap.Board) != lvl.Rows || len(snap.Board[0]) != lvl.Cols {
		t.Fatalf("board is %dx%d, want %dx%d", len(snap.Board), len(snap.Board[0]), lvl.Rows, lvl.Cols)
	}
	if snap.Remaining != lvl.Rows*lvl.Cols {
		t.Errorf("remaining = %d, want full board", snap.Remaining)
	}
	if snap.Level != 1 || snap.Score != 0 || snap.ShufflesLeft != 3 {
		t.Errorf("unexpected start snapshot: %+v", snap)
	}
	if snap.Selected != nil {
		t.Error("nothing should be selected at start")
	}
}

func TestDeterministicDeal(t *testing.T) {
	g1 := newTestGame(t, New())
	g2 := newTestGame(t, New())

	if !reflect.DeepEqual(g1.Snapshot().Board, g2.Snapshot().Board) {
		t.Error("same seed produced different boards")
	}

	for range 3 {
		step(g1, core.ActionShuffle)
		step(g2, core.ActionShuffle)
	}
	if !reflect.DeepEqual(g1.Snapshot(), g2.Snapshot()) {
		t.Error("same seed and inputs produced different games")
	}
}

func TestCursorStaysOnBoard(t *testing.T) {
	g := newTestGame(t, New())

	step(g, core.ActionUp)
	step(g, core.ActionLeft)
	if g.cursor != engine.P(0, 0) {
		t.Errorf("cursor left the board: %v", g.cursor)
	}

	for range 10 {
		step(g, core.ActionRight)
		step(g, core.ActionDown)
	}
	want := engine.P(Levels[0].Rows-1, Levels[0].Cols-1)
	if g.cursor != want {
		t.Errorf("cursor = %v, want %v", g.cursor, want)
	}
}

func TestMatchWaitsForRemovalDelay(t *testing.T) {
	g := newTestGame(t, New())
	install(g, [][]engine.Tile{
		{1, 1},
		{2, 2},
	})

	step(g, core.ActionSelect)
	if snap := g.Snapshot(); snap.Selected == nil || *snap.Selected != engine.P(0, 0) {
		t.Fatalf("selected = %v, want (0,0)", snap.Selected)
	}

	step(g, core.ActionRight)
	step(g, core.ActionSelect)

	snap := g.Snapshot()
	if snap.State != StateRemoving {
		t.Fatalf("state = %s, want %s", snap.State, StateRemoving)
	}
	if snap.Score != 100 {
		t.Errorf("score = %d, want 100", snap.Score)
	}
	if snap.Remaining != 4 {
		t.Errorf("tiles vanished before the delay: %d left", snap.Remaining)
	}
	if len(g.route) == 0 {
		t.Error("route should be shown while removal is pending")
	}

	idle(g, g.cfg.Timing.RemovalTicks-1)
	if g.Snapshot().Remaining != 4 {
		t.Error("tiles vanished one tick early")
	}

	idle(g, 1)
	snap = g.Snapshot()
	if snap.Remaining != 2 || snap.Board[0][0] != engine.Empty || snap.Board[0][1] != engine.Empty {
		t.Errorf("pair not removed: %+v", snap.Board)
	}
	if g.route != nil {
		t.Error("route should be gone after removal")
	}
	if snap.State != StatePlaying {
		t.Errorf("state = %s, want %s", snap.State, StatePlaying)
	}
}

func TestSelectIgnoredWhileRemoving(t *testing.T) {
	g := newTestGame(t, New())
	install(g, [][]engine.Tile{
		{1, 1},
		{2, 2},
	})

	g.selectCell(engine.P(0, 0))
	g.selectCell(engine.P(0, 1))
	g.selectCell(engine.P(1, 0))

	if snap := g.Snapshot(); snap.Selected != nil || snap.State != StateRemoving {
		t.Errorf("pick during removal should be ignored: %+v", snap)
	}
}

func TestClicksSelectCells(t *testing.T) {
	g := newTestGame(t, New())
	install(g, [][]engine.Tile{
		{1, 0, 1},
		{2, 0, 2},
	})

	click(g, engine.P(0, 0))
	if snap := g.Snapshot(); snap.Selected == nil || *snap.Selected != engine.P(0, 0) {
		t.Fatalf("click did not select (0,0): %+v", snap)
	}

	// A click in the padding ring is not a cell
	in := core.NewInputFrame()
	in.AddClick(g.origin.X, g.origin.Y)
	g.Step(in)
	if g.Snapshot().Selected == nil {
		t.Fatal("click outside the board dropped the selection")
	}

	click(g, engine.P(0, 2))
	if g.cursor != engine.P(0, 2) {
		t.Errorf("cursor = %v, want it to follow the click", g.cursor)
	}
	if g.Snapshot().State != StateRemoving {
		t.Fatalf("state = %s, want %s", g.Snapshot().State, StateRemoving)
	}

	screen := core.NewScreen(80, 24)
	g.Render(screen)
	for _, p := range g.route[1 : len(g.route)-1] {
		x, y := g.center(p)
		if r := screen.Get(x, y); !strings.ContainsRune("─│┌┐└┘", r) {
			t.Errorf("route cell %v drawn as %q", p, r)
		}
	}
}

func TestMismatchAndNoRouteMessages(t *testing.T) {
	g := newTestGame(t, New())
	install(g, [][]engine.Tile{
		{1, 2},
		{2, 1},
		{3, 3},
	})

	g.selectCell(engine.P(0, 0))
	g.selectCell(engine.P(0, 1))
	if !strings.Contains(g.message, "match") {
		t.Errorf("message = %q, want mismatch notice", g.message)
	}

	g.selectCell(engine.P(0, 0))
	g.selectCell(engine.P(1, 1))
	if !strings.Contains(g.message, "No path") {
		t.Errorf("message = %q, want no-route notice", g.message)
	}
	if g.score != 0 {
		t.Errorf("failed picks should not score, got %d", g.score)
	}
}

func TestLevelClearAdvances(t *testing.T) {
	g := newTestGame(t, New())
	install(g, [][]engine.Tile{{1, 1}})

	clearPair(g, engine.P(0, 0), engine.P(0, 1))

	snap := g.Snapshot()
	if snap.State != StateLevelCleared {
		t.Fatalf("state = %s, want %s", snap.State, StateLevelCleared)
	}
	if snap.Score != 200 {
		t.Errorf("score = %d, want match plus clear bonus (200)", snap.Score)
	}
	if !g.State().Paused {
		t.Error("game should pause between levels")
	}

	idle(g, g.cfg.Timing.LevelClearTicks)

	snap = g.Snapshot()
	if snap.Level != 2 {
		t.Fatalf("level = %d, want 2", snap.Level)
	}
	lvl := Levels[1]
	if len(snap.Board) != lvl.Rows || len(snap.Board[0]) != lvl.Cols {
		t.Errorf("level 2 board is %dx%d", len(snap.Board), len(snap.Board[0]))
	}
	if snap.Score != 200 {
		t.Errorf("score should carry over, got %d", snap.Score)
	}
	if snap.ShufflesLeft != 3 {
		t.Errorf("shuffles = %d, want budget restored", snap.ShufflesLeft)
	}
}

func TestStartAtOverridesOnce(t *testing.T) {
	g := New()
	g.StartAt(3)
	newTestGame(t, g)
	if g.State().Level != 3 {
		t.Fatalf("level = %d, want 3", g.State().Level)
	}

	g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, Seed: 1})
	if g.State().Level != 1 {
		t.Errorf("second reset level = %d, want 1", g.State().Level)
	}

	var _ registry.LevelStarter = g
}

func TestCampaignWin(t *testing.T) {
	g := New()
	g.StartAt(LevelCount())
	g = newTestGame(t, g)
	if g.State().Level != LevelCount() {
		t.Fatalf("level = %d, want %d", g.State().Level, LevelCount())
	}

	install(g, [][]engine.Tile{{5, 5}})
	clearPair(g, engine.P(0, 0), engine.P(0, 1))
	idle(g, g.cfg.Timing.LevelClearTicks)

	if g.Snapshot().State != StateWin {
		t.Errorf("state = %s, want %s", g.Snapshot().State, StateWin)
	}
	if !g.State().GameOver {
		t.Error("winning the campaign should end the run")
	}
}

func TestDeadlockOffersShuffle(t *testing.T) {
	g := newTestGame(t, New())
	install(g, [][]engine.Tile{
		{1, 2},
		{2, 1},
	})

	if g.Snapshot().State != StateDeadlocked {
		t.Fatalf("state = %s, want %s", g.Snapshot().State, StateDeadlocked)
	}
	if g.State().GameOver {
		t.Fatal("deadlock with shuffles left must not end the run")
	}

	screen := core.NewScreen(80, 24)
	g.Render(screen)
	if !strings.Contains(screen.String(), "No moves - press X to shuffle") {
		t.Error("deadlock notice not shown")
	}

	for g.deadlocked && g.ctrl.ShufflesLeft() > 0 {
		step(g, core.ActionShuffle)
		if g.Snapshot().Remaining != 4 {
			t.Fatal("shuffle lost tiles")
		}
	}

	if g.deadlocked {
		if !g.State().GameOver {
			t.Error("deadlock with no shuffles left should end the run")
		}
	} else if !engine.HasMoves(g.ctrl.Board()) {
		t.Error("game thinks it is unstuck but the board has no moves")
	}
}

func TestDeadlockWithoutShufflesEndsRun(t *testing.T) {
	g := newTestGame(t, New())
	g.cfg.Rules.Shuffles = 0
	g.ctrl = nil
	install(g, [][]engine.Tile{
		{1, 2},
		{2, 1},
	})

	if !g.State().GameOver || g.Snapshot().State != StateGameOver {
		t.Fatalf("state = %s, want %s", g.Snapshot().State, StateGameOver)
	}

	screen := core.NewScreen(80, 24)
	g.Render(screen)
	if !strings.Contains(screen.String(), "NO MOVES LEFT") {
		t.Error("game over overlay not shown")
	}
}

func TestShuffleBudget(t *testing.T) {
	g := newTestGame(t, New())
	install(g, [][]engine.Tile{{1, 2, 1, 2}})

	for i := range 3 {
		step(g, core.ActionShuffle)
		if g.ctrl.ShufflesLeft() != 2-i {
			t.Fatalf("after %d shuffles: %d left", i+1, g.ctrl.ShufflesLeft())
		}
	}

	step(g, core.ActionShuffle)
	if g.ctrl.ShufflesLeft() != 0 || g.message != "No shuffles left" {
		t.Errorf("fourth shuffle: left=%d message=%q", g.ctrl.ShufflesLeft(), g.message)
	}
	if g.Snapshot().Remaining != 4 {
		t.Error("shuffling changed the tile count")
	}
}

func TestHintCostsPoints(t *testing.T) {
	g := newTestGame(t, New())
	install(g, [][]engine.Tile{{1, 2, 2, 1}})

	step(g, core.ActionHint)
	if g.hintTicks == 0 {
		t.Fatal("hint not shown")
	}
	if !g.isHinted(g.hint.A) || !g.isHinted(g.hint.B) {
		t.Error("hinted tiles not marked")
	}
	if g.ctrl.At(g.hint.A) != g.ctrl.At(g.hint.B) {
		t.Error("hint pairs different tiles")
	}
	if g.score != 0 {
		t.Errorf("score should not go negative, got %d", g.score)
	}

	g.score = 120
	step(g, core.ActionHint)
	if g.score != 70 {
		t.Errorf("score = %d, want 70 after hint penalty", g.score)
	}
}

func TestNewBoardRevertsLevelScore(t *testing.T) {
	g := newTestGame(t, New())
	install(g, [][]engine.Tile{
		{1, 1},
		{2, 2},
	})
	clearPair(g, engine.P(0, 0), engine.P(0, 1))
	if g.score != 100 {
		t.Fatalf("score = %d, want 100", g.score)
	}

	step(g, core.ActionNewBoard)

	snap := g.Snapshot()
	if snap.Score != 0 {
		t.Errorf("score = %d, want points from the abandoned board removed", snap.Score)
	}
	if snap.Remaining != Levels[0].Rows*Levels[0].Cols {
		t.Errorf("new board not dealt: %d tiles", snap.Remaining)
	}
	if snap.Level != 1 {
		t.Errorf("new board should not advance the level, got %d", snap.Level)
	}
}

func TestPauseBlocksInput(t *testing.T) {
	g := newTestGame(t, New())

	step(g, core.ActionPause)
	if !g.State().Paused {
		t.Fatal("game should be paused")
	}

	step(g, core.ActionRight)
	step(g, core.ActionSelect)
	if g.cursor != engine.P(0, 0) || g.Snapshot().Selected != nil {
		t.Error("input processed while paused")
	}

	step(g, core.ActionPause)
	step(g, core.ActionRight)
	if g.cursor != engine.P(0, 1) {
		t.Error("input ignored after unpause")
	}
}

func TestEndlessRampsTileTypes(t *testing.T) {
	g := newTestGame(t, NewEndless())

	if g.tileTypes != g.difficulty.TileTypes(0) {
		t.Errorf("first board has %d types, want %d", g.tileTypes, g.difficulty.TileTypes(0))
	}
	if g.ctrl.Rows() != g.cfg.Board.Rows || g.ctrl.Cols() != g.cfg.Board.Cols {
		t.Errorf("endless board is %dx%d", g.ctrl.Rows(), g.ctrl.Cols())
	}

	install(g, [][]engine.Tile{{1, 1}})
	clearPair(g, engine.P(0, 0), engine.P(0, 1))
	idle(g, g.cfg.Timing.LevelClearTicks)

	if g.State().Level != 2 {
		t.Errorf("level = %d, want 2", g.State().Level)
	}
	if g.tileTypes != g.difficulty.TileTypes(1) {
		t.Errorf("second board has %d types, want %d", g.tileTypes, g.difficulty.TileTypes(1))
	}
	if g.State().GameOver {
		t.Error("endless mode never wins")
	}
}

func TestSetDifficultyPreset(t *testing.T) {
	if err := SetDifficultyPreset("impossible"); err == nil {
		t.Error("unknown preset should be rejected")
	}

	t.Setenv("HOME", t.TempDir())
	t.Chdir(t.TempDir())
	SetConfigPath("")
	if err := SetDifficultyPreset("easy"); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { SetDifficultyPreset("") })

	g := New()
	g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, Seed: 1})
	if g.ctrl.ShufflesLeft() != 5 {
		t.Errorf("easy preset shuffles = %d, want 5", g.ctrl.ShufflesLeft())
	}
}

func TestWindowTooSmall(t *testing.T) {
	g := New()
	t.Setenv("HOME", t.TempDir())
	t.Chdir(t.TempDir())
	g.Reset(core.RuntimeConfig{ScreenW: 20, ScreenH: 8, Seed: 1})

	if !g.tooSmall || !g.State().Paused {
		t.Fatal("small window should pause the game")
	}

	screen := core.NewScreen(20, 8)
	g.Render(screen)
	if !strings.Contains(screen.String(), "Window too small") {
		t.Error("too small message not shown")
	}

	board := g.Snapshot().Board
	g.Resize(80, 24)
	if g.tooSmall {
		t.Error("game still too small after resize")
	}
	if !reflect.DeepEqual(board, g.Snapshot().Board) {
		t.Error("resize replaced the board")
	}
}

func TestRender(t *testing.T) {
	g := newTestGame(t, New())
	screen := core.NewScreen(80, 24)
	g.Render(screen)

	out := screen.String()
	for _, want := range []string{"ONET", "Score: 0", "Level 1/10", "Shuffles: 3", "Tiles: 16"} {
		if !strings.Contains(out, want) {
			t.Errorf("render missing %q", want)
		}
	}

	// Cursor brackets surround the top-left tile
	x, y := g.center(engine.P(0, 0))
	if screen.Get(x-1, y) != '>' || screen.Get(x+1, y) != '<' {
		t.Errorf("cursor not drawn: %q%q", screen.Get(x-1, y), screen.Get(x+1, y))
	}
}

func TestCornerRune(t *testing.T) {
	at := engine.P(1, 1)
	tests := []struct {
		prev, next engine.Point
		want       rune
	}{
		{engine.P(0, 1), engine.P(1, 2), '└'},
		{engine.P(0, 1), engine.P(1, 0), '┘'},
		{engine.P(2, 1), engine.P(1, 2), '┌'},
		{engine.P(1, 0), engine.P(2, 1), '┐'},
	}
	for _, tt := range tests {
		if got := cornerRune(tt.prev, at, tt.next); got != tt.want {
			t.Errorf("cornerRune(%v, %v, %v) = %q, want %q", tt.prev, at, tt.next, got, tt.want)
		}
	}
}

func TestAllLevelsValid(t *testing.T) {
	for i, lvl := range Levels {
		if lvl.ID != i+1 {
			t.Errorf("level %d has ID %d", i, lvl.ID)
		}
		if lvl.Rows*lvl.Cols%2 != 0 {
			t.Errorf("level %d has an odd cell count", lvl.ID)
		}
		if lvl.TileTypes < 1 || lvl.TileTypes > 21 {
			t.Errorf("level %d has %d tile types", lvl.ID, lvl.TileTypes)
		}
		// Fits 80x24 with 4x2 cells
		if (lvl.Cols+2)*4 > 80 || hudHeight+(lvl.Rows+2)*2+footerHeight > 24 {
			t.Errorf("level %d does not fit an 80x24 terminal", lvl.ID)
		}
	}

	if GetLevel(-1) != nil || GetLevel(LevelCount()) != nil {
		t.Error("GetLevel should return nil out of range")
	}
}

func TestSnapshotJSON(t *testing.T) {
	g := newTestGame(t, New())
	step(g, core.ActionRight)

	data, err := g.SnapshotJSON()
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), `"shuffles_left"`) {
		t.Errorf("snapshot JSON missing fields: %s", data)
	}

	var back Snapshot
	if err := sonic.Unmarshal(data, &back); err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(back, g.Snapshot()) {
		t.Errorf("round trip = %+v, want %+v", back, g.Snapshot())
	}
}
