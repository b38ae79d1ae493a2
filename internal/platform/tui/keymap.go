package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-onet/internal/core"
)

// gameKeys binds key names (as reported by tea.KeyMsg.String) to actions.
// WASD and the arrows move the cursor; h is the hint, so there are no vim
// movement keys in game.
var gameKeys = map[string]core.Action{
	"w": core.ActionUp, "up": core.ActionUp,
	"s": core.ActionDown, "down": core.ActionDown,
	"a": core.ActionLeft, "left": core.ActionLeft,
	"d": core.ActionRight, "right": core.ActionRight,
	" ":     core.ActionSelect,
	"enter": core.ActionConfirm,
	"x":     core.ActionShuffle,
	"h":     core.ActionHint,
	"n":     core.ActionNewBoard,
	"b":     core.ActionBack, "esc": core.ActionBack,
	"p": core.ActionPause,
	"r": core.ActionRestart,
}

// menuKeys binds key names to menu actions. Menus keep j/k.
var menuKeys = map[string]MenuAction{
	"w": MenuActionUp, "up": MenuActionUp, "k": MenuActionUp,
	"s": MenuActionDown, "down": MenuActionDown, "j": MenuActionDown,
	"enter": MenuActionSelect, " ": MenuActionSelect,
	"b": MenuActionBack, "esc": MenuActionBack,
	"tab": MenuActionScoreboard,
}

// isQuitKey reports whether the key leaves the program from any screen.
func isQuitKey(key string) bool {
	return key == "ctrl+c" || key == "q"
}

// KeyMapper translates Bubble Tea input messages to game and menu actions.
type KeyMapper struct{}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// MapKey translates a key message to a game action.
// Returns the action (may be ActionNone) and whether it's a quit request.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (action core.Action, isQuit bool) {
	key := msg.String()
	if isQuitKey(key) {
		return core.ActionQuit, true
	}
	return gameKeys[key], false
}

// MapKeyToFrame updates an input frame based on a key message.
// Returns true if the key was a quit request.
func (km *KeyMapper) MapKeyToFrame(msg tea.KeyMsg, frame *core.InputFrame) bool {
	action, isQuit := km.MapKey(msg)
	if action != core.ActionNone {
		frame.Set(action)
	}
	return isQuit
}

// MapMouseToFrame records a left-button press as a click in screen cells.
// Returns true if the message was a click.
func (km *KeyMapper) MapMouseToFrame(msg tea.MouseMsg, frame *core.InputFrame) bool {
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return false
	}
	frame.AddClick(msg.X, msg.Y)
	return true
}

// MenuAction represents a menu-specific action derived from input.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionSelect
	MenuActionBack
	MenuActionQuit
	MenuActionScoreboard
)

// MapKeyToMenuAction translates a key to a menu action.
func (km *KeyMapper) MapKeyToMenuAction(msg tea.KeyMsg) MenuAction {
	key := msg.String()
	if isQuitKey(key) {
		return MenuActionQuit
	}
	return menuKeys[key]
}
