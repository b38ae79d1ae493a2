package onet

import (
	"errors"
	"math/rand"

	"github.com/vovakirdan/tui-onet/internal/config"
	"github.com/vovakirdan/tui-onet/internal/core"
	engine "github.com/vovakirdan/tui-onet/internal/onet"
	"github.com/vovakirdan/tui-onet/internal/registry"
)

// Mode represents the game mode.
type Mode string

const (
	ModeCampaign Mode = "campaign"
	ModeEndless  Mode = "endless"
)

// Layout constants in screen cells.
const (
	hudHeight    = 3  // Title, score and allowance lines above the board
	footerHeight = 1  // Status line below the board
	hudMinWidth  = 40 // Narrowest screen the HUD fits on
)

// Game implements Onet on top of the engine controller.
type Game struct {
	mode       Mode
	cfg        config.OnetConfig
	difficulty *config.DifficultyManager
	catalog    engine.Catalog
	rng        *rand.Rand
	tick       uint64

	ctrl   *engine.Controller
	geom   engine.Geometry
	origin core.Rect // Screen area of the padded board
	cursor engine.Point

	score      int
	levelScore int // Score when the current board was dealt
	levelIndex int // Campaign level (0-indexed)
	cleared    int // Boards cleared this run
	tileTypes  int // Tile types on the current board

	route        engine.Route // Matched route shown until removal
	removalTicks int
	hint         engine.Move
	hintTicks    int
	message      string
	messageTicks int

	// Screen dimensions
	screenW int
	screenH int

	// Game state flags
	gameOver        bool
	won             bool
	paused          bool
	tooSmall        bool
	deadlocked      bool
	levelCleared    bool
	levelClearTicks int
	startLevel      int // Consumed by the next Reset
}

// Package-level variables for config
var (
	configPath       string
	difficultyPreset config.DifficultyPreset
)

// SetConfigPath sets a custom config file path.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset applied on top of the
// loaded config. An empty string clears it.
func SetDifficultyPreset(preset string) error {
	p, err := config.ParsePreset(preset)
	if err != nil {
		return err
	}
	difficultyPreset = p
	return nil
}

// StartAt makes the next Reset begin at the given campaign level
// (1-indexed). Endless mode ignores it.
func (g *Game) StartAt(level int) {
	g.startLevel = level
}

// New creates a new campaign mode game.
func New() *Game {
	return &Game{
		mode: ModeCampaign,
	}
}

// NewEndless creates a new endless mode game.
func NewEndless() *Game {
	return &Game{
		mode: ModeEndless,
	}
}

func init() {
	registry.Register("onet", func() registry.Game {
		return New()
	})
	registry.Register("onet_endless", func() registry.Game {
		return NewEndless()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	if g.mode == ModeEndless {
		return "onet_endless"
	}
	return "onet"
}

// Title returns the display name.
func (g *Game) Title() string {
	if g.mode == ModeEndless {
		return "Onet (Endless)"
	}
	return "Onet"
}

// Reset initializes/restarts the game.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	cfg, _, err := config.Load(configPath)
	if err != nil {
		cfg = config.DefaultOnetConfig()
	}
	if difficultyPreset != "" {
		config.ApplyPreset(&cfg, difficultyPreset)
	}

	g.cfg = cfg
	g.difficulty = config.NewDifficultyManager(cfg)
	g.catalog = engine.NewCatalog(cfg.Display.Glyphs...)
	g.rng = rand.New(rand.NewSource(runtime.Seed))
	g.tick = 0
	g.screenW = runtime.ScreenW
	g.screenH = runtime.ScreenH

	g.score = 0
	g.cleared = 0
	g.gameOver = false
	g.won = false
	g.paused = false
	g.levelCleared = false
	g.levelClearTicks = 0

	start := g.startLevel
	g.startLevel = 0
	if g.mode == ModeCampaign && start > 0 && start <= LevelCount() {
		g.levelIndex = start - 1
	} else {
		g.levelIndex = 0
	}

	g.ctrl = nil
	g.loadBoard()
}

// Resize adapts the layout to a new screen size without losing the board.
func (g *Game) Resize(w, h int) {
	g.screenW = w
	g.screenH = h
	g.layout()
}

// boardSpec returns the dimensions and tile variety of the next board.
func (g *Game) boardSpec() (rows, cols, types int) {
	if g.mode == ModeEndless {
		rows, cols = g.cfg.Board.Rows, g.cfg.Board.Cols
		types = g.difficulty.TileTypes(g.cleared)
	} else {
		level := GetLevel(g.levelIndex)
		if level == nil {
			level = GetLevel(LevelCount() - 1)
		}
		rows, cols, types = level.Rows, level.Cols, level.TileTypes
	}
	return rows, cols, min(types, g.catalog.Len())
}

// loadBoard deals a fresh board for the current level.
func (g *Game) loadBoard() {
	rows, cols, types := g.boardSpec()
	b, err := engine.Generate(rows, cols, types, g.rng)
	if err != nil {
		// Fall back to the built-in board.
		def := config.DefaultOnetConfig().Board
		rows, cols, types = def.Rows, def.Cols, min(def.TileTypes, max(g.catalog.Len(), 1))
		if b, err = engine.Generate(rows, cols, types, g.rng); err != nil {
			g.gameOver = true
			g.setMessage(err.Error())
			return
		}
	}
	g.tileTypes = types
	g.setBoard(b)
}

// setBoard installs b as the current board and clears per-board state.
func (g *Game) setBoard(b *engine.Board) {
	if g.ctrl == nil {
		g.ctrl = engine.NewController(b, engine.Options{
			Shuffles:     g.cfg.Rules.Shuffles,
			DeferRemoval: g.cfg.Timing.RemovalTicks > 0,
		})
		g.ctrl.Subscribe(g.onNotify)
	} else {
		g.ctrl.Reset(b)
	}

	g.geom = engine.Geometry{
		Rows:  b.Rows(),
		Cols:  b.Cols(),
		CellW: g.cfg.Display.CellWidth,
		CellH: g.cfg.Display.CellHeight,
	}
	g.layout()

	g.cursor = engine.Point{}
	g.levelScore = g.score
	g.route = nil
	g.removalTicks = 0
	g.hintTicks = 0
	g.messageTicks = 0
	g.checkDeadlock()
}

// layout centers the board below the HUD and checks the screen size.
func (g *Game) layout() {
	w, h := g.geom.Width(), g.geom.Height()
	g.origin = core.NewRect((g.screenW-w)/2, hudHeight, w, h)
	g.tooSmall = g.screenW < g.minWidth() || g.screenH < g.minHeight()
}

func (g *Game) minWidth() int {
	return max(g.geom.Width(), hudMinWidth)
}

func (g *Game) minHeight() int {
	return hudHeight + g.geom.Height() + footerHeight
}

// onNotify reacts to controller notifications.
func (g *Game) onNotify(n engine.Notification) {
	switch n.Kind {
	case engine.NoteTilesRemoved:
		g.route = nil
		g.checkDeadlock()
	case engine.NoteLevelComplete:
		g.score += g.cfg.Scoring.ClearBonus
		g.cleared++
		g.levelCleared = true
		g.levelClearTicks = 0
	}
}

// checkDeadlock ends the run when no pair can be removed and no shuffle is
// left to fix that.
func (g *Game) checkDeadlock() {
	b := g.ctrl.Board()
	if b.IsCleared() || engine.HasMoves(b) {
		g.deadlocked = false
		return
	}

	g.deadlocked = true
	if g.ctrl.ShufflesLeft() == 0 {
		g.gameOver = true
	}
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tick++

	// Handle window size check
	if g.tooSmall {
		return core.StepResult{State: g.State()}
	}

	// Handle pause
	if in.Has(core.ActionPause) && !g.gameOver && !g.won {
		g.paused = !g.paused
	}

	if g.paused {
		return core.StepResult{State: g.State()}
	}

	g.tickTimers()

	// Handle level cleared pause
	if g.levelCleared {
		g.levelClearTicks++
		if g.levelClearTicks >= g.cfg.Timing.LevelClearTicks {
			g.advanceLevel()
		}
		return core.StepResult{State: g.State()}
	}

	if g.gameOver || g.won {
		return core.StepResult{State: g.State()}
	}

	// Finish a removal once its route has been on screen long enough
	if g.ctrl.State() == engine.StateRemoving {
		g.removalTicks++
		if g.removalTicks >= g.cfg.Timing.RemovalTicks {
			g.commitRemoval()
		}
	}

	g.moveCursor(in)

	for _, c := range in.Clicks {
		if p, ok := g.geom.PointFromPixel(c.X, c.Y, g.origin); ok {
			g.cursor = p
			g.selectCell(p)
		}
	}
	if in.Has(core.ActionSelect) || in.Has(core.ActionConfirm) {
		g.selectCell(g.cursor)
	}

	if g.levelCleared || g.gameOver {
		return core.StepResult{State: g.State()}
	}

	switch {
	case in.Has(core.ActionShuffle):
		g.shuffle()
	case in.Has(core.ActionHint):
		g.showHint()
	case in.Has(core.ActionNewBoard):
		g.redeal()
	}

	return core.StepResult{State: g.State()}
}

// tickTimers counts down the status message and hint highlight.
func (g *Game) tickTimers() {
	if g.messageTicks > 0 {
		g.messageTicks--
	}
	if g.hintTicks > 0 {
		g.hintTicks--
	}
}

// moveCursor moves the keyboard cursor, staying on the board.
func (g *Game) moveCursor(in core.InputFrame) {
	switch {
	case in.Has(core.ActionUp):
		g.cursor.Row--
	case in.Has(core.ActionDown):
		g.cursor.Row++
	case in.Has(core.ActionLeft):
		g.cursor.Col--
	case in.Has(core.ActionRight):
		g.cursor.Col++
	default:
		return
	}
	g.cursor.Row = core.Clamp(g.cursor.Row, 0, g.ctrl.Rows()-1)
	g.cursor.Col = core.Clamp(g.cursor.Col, 0, g.ctrl.Cols()-1)
}

// selectCell forwards a pick to the controller and scores matches.
func (g *Game) selectCell(p engine.Point) {
	ev := g.ctrl.Select(p)
	switch ev.Kind {
	case engine.EventMismatch:
		g.setMessage("Those tiles don't match")
	case engine.EventNoRoute:
		g.setMessage("No path with two turns or fewer")
	case engine.EventMatched, engine.EventMatchedAndCleared:
		g.score += g.cfg.Scoring.MatchPoints
		g.hintTicks = 0
		if ev.Pending {
			g.route = ev.Route
			g.removalTicks = 0
		}
	}
}

// commitRemoval clears a matched pair after its route was shown.
func (g *Game) commitRemoval() {
	if err := g.ctrl.Commit(); err != nil {
		g.route = nil
	}
}

// shuffle spends one reshuffle.
func (g *Game) shuffle() {
	err := g.ctrl.Shuffle(g.rng)
	switch {
	case errors.Is(err, engine.ErrNoShuffles):
		g.setMessage("No shuffles left")
	case errors.Is(err, engine.ErrRemovalPending):
		return
	case err == nil:
		g.hintTicks = 0
		g.setMessage("Shuffled")
		g.checkDeadlock()
	}
}

// showHint flashes a removable pair and charges the hint penalty.
func (g *Game) showHint() {
	if g.ctrl.State() == engine.StateRemoving {
		return
	}

	m, ok := engine.FindMove(g.ctrl.Board())
	if !ok {
		g.checkDeadlock()
		return
	}

	g.hint = m
	g.hintTicks = max(g.cfg.Timing.MessageTicks, 1)
	g.score = max(g.score-g.cfg.Scoring.HintPenalty, 0)
}

// redeal replaces the board with a new one for the same level. Points
// earned on the abandoned board are taken back.
func (g *Game) redeal() {
	g.score = g.levelScore
	g.loadBoard()
	g.setMessage("New board")
}

// advanceLevel moves to the next board after a clear.
func (g *Game) advanceLevel() {
	g.levelCleared = false
	g.levelClearTicks = 0

	if g.mode == ModeCampaign {
		if g.levelIndex >= LevelCount()-1 {
			// Completed all levels
			g.won = true
			return
		}
		g.levelIndex++
	}

	g.loadBoard()
}

// setMessage shows a short-lived status line.
func (g *Game) setMessage(msg string) {
	g.message = msg
	g.messageTicks = g.cfg.Timing.MessageTicks
}

// level returns the 1-based level shown to the player and stored with scores.
func (g *Game) level() int {
	if g.mode == ModeEndless {
		return g.cleared + 1
	}
	return g.levelIndex + 1
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		Level:    g.level(),
		GameOver: g.gameOver || g.won,
		Paused:   g.paused || g.tooSmall || g.levelCleared,
	}
}
