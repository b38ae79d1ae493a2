package onet

import (
	"github.com/bytedance/sonic"

	engine "github.com/vovakirdan/tui-onet/internal/onet"
)

// GameStateType represents the current game state.
type GameStateType string

const (
	StatePlaying      GameStateType = "playing"
	StateRemoving     GameStateType = "removing"
	StateDeadlocked   GameStateType = "deadlocked"
	StateLevelCleared GameStateType = "level_cleared"
	StateGameOver     GameStateType = "game_over"
	StateWin          GameStateType = "win"
	StatePaused       GameStateType = "paused"
	StatePausedSmall  GameStateType = "paused_small_window"
)

// Snapshot is the complete game state. Two games dealt from the same seed
// and fed the same input produce equal snapshots.
type Snapshot struct {
	Tick         uint64          `json:"tick"`
	Mode         string          `json:"mode"`  // "campaign" or "endless"
	Level        int             `json:"level"` // 1-indexed level or board number
	Score        int             `json:"score"`
	Board        [][]engine.Tile `json:"board"`
	Remaining    int             `json:"remaining"`
	ShufflesLeft int             `json:"shuffles_left"`
	Cursor       engine.Point    `json:"cursor"`
	Selected     *engine.Point   `json:"selected,omitempty"`
	State        GameStateType   `json:"state"`
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	state := StatePlaying
	switch {
	case g.tooSmall:
		state = StatePausedSmall
	case g.won:
		state = StateWin
	case g.gameOver:
		state = StateGameOver
	case g.levelCleared:
		state = StateLevelCleared
	case g.paused:
		state = StatePaused
	case g.ctrl.State() == engine.StateRemoving:
		state = StateRemoving
	case g.deadlocked:
		state = StateDeadlocked
	}

	snap := Snapshot{
		Tick:         g.tick,
		Mode:         string(g.mode),
		Level:        g.level(),
		Score:        g.score,
		Board:        g.ctrl.Board().Snapshot(),
		Remaining:    g.remaining(),
		ShufflesLeft: g.ctrl.ShufflesLeft(),
		Cursor:       g.cursor,
		State:        state,
	}
	if p, ok := g.ctrl.Selected(); ok && g.ctrl.State() == engine.StateOneSelected {
		snap.Selected = &p
	}
	return snap
}

// SnapshotJSON encodes the current snapshot as indented JSON.
func (g *Game) SnapshotJSON() ([]byte, error) {
	return sonic.ConfigStd.MarshalIndent(g.Snapshot(), "", "  ")
}
