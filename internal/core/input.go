package core

import (
	"maps"
	"slices"
)

// Action is a player intent, decoupled from the key or button behind it.
type Action int

const (
	ActionNone     Action = iota
	ActionUp              // Cursor moves
	ActionDown
	ActionLeft
	ActionRight
	ActionSelect   // Pick the tile under the cursor
	ActionShuffle  // Reshuffle the remaining tiles
	ActionHint     // Flash a connectable pair
	ActionNewBoard // Deal a new board at the same level
	ActionConfirm
	ActionBack
	ActionRestart // Only honored after game over
	ActionQuit
	ActionPause
)

var actionNames = [...]string{
	"None", "Up", "Down", "Left", "Right", "Select", "Shuffle", "Hint",
	"NewBoard", "Confirm", "Back", "Restart", "Quit", "Pause",
}

func (a Action) String() string {
	if a < 0 || int(a) >= len(actionNames) {
		return "Unknown"
	}
	return actionNames[a]
}

// Click is a left mouse press in screen cells.
type Click struct {
	X, Y int
}

// InputFrame is everything the player did between two ticks.
type InputFrame struct {
	Actions map[Action]bool
	Clicks  []Click // In arrival order
}

func NewInputFrame() InputFrame {
	return InputFrame{Actions: map[Action]bool{}}
}

// Set records a.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = map[Action]bool{}
	}
	f.Actions[a] = true
}

// Has reports whether a happened this frame.
func (f InputFrame) Has(a Action) bool {
	return f.Actions[a]
}

// AddClick records a left press at screen cell (x, y).
func (f *InputFrame) AddClick(x, y int) {
	f.Clicks = append(f.Clicks, Click{X: x, Y: y})
}

// Empty reports whether the player did nothing.
func (f InputFrame) Empty() bool {
	return len(f.Actions) == 0 && len(f.Clicks) == 0
}

// Clear empties the frame in place, keeping its storage.
func (f *InputFrame) Clear() {
	clear(f.Actions)
	f.Clicks = f.Clicks[:0]
}

// Clone returns a deep copy.
func (f InputFrame) Clone() InputFrame {
	return InputFrame{
		Actions: maps.Clone(f.Actions),
		Clicks:  slices.Clone(f.Clicks),
	}
}
