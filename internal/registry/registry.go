// Package registry holds the game modes the host can launch.
// Modes register themselves in init() functions, so the terminal host,
// the SSH server and the CLI discover them without importing game code
// directly.
package registry

import (
	"fmt"
	"slices"
	"strings"
	"sync"

	"github.com/vovakirdan/tui-onet/internal/core"
)

// Game is the interface every playable mode implements.
// Games hold pure logic and never import Bubble Tea; the host maps
// input, drives the tick loop and paints the screen buffer.
type Game interface {
	// ID returns a unique identifier (e.g. "onet", "onet_endless").
	// Used for CLI arguments and as the score table key.
	ID() string

	// Title returns a human-readable name for menus.
	Title() string

	// Reset starts a fresh run using the screen size, seed and player
	// carried in cfg.
	Reset(cfg core.RuntimeConfig)

	// Step advances the simulation by one fixed tick.
	Step(in core.InputFrame) core.StepResult

	// Render draws the current state into dst.
	Render(dst *core.Screen)

	// State returns the current score, level and run flags.
	State() core.GameState
}

// Resizer is implemented by games that can relayout after a terminal
// resize without restarting the run.
type Resizer interface {
	Resize(w, h int)
}

// LevelStarter is implemented by games with a level list; StartAt picks
// the level the next Reset begins on.
type LevelStarter interface {
	StartAt(level int)
}

// Snapshotter is implemented by games that can export their full state,
// which the host saves next to screenshots.
type Snapshotter interface {
	SnapshotJSON() ([]byte, error)
}

// GameInfo describes a registered mode.
type GameInfo struct {
	ID    string
	Title string
}

// Factory returns a fresh instance of a mode.
type Factory func() Game

type entry struct {
	factory Factory
	title   string
}

var (
	mu      sync.RWMutex
	entries = map[string]entry{}
)

// Register adds a mode. Registering an ID twice panics, since that can
// only be a programming error in some init function.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, dup := entries[id]; dup {
		panic(fmt.Sprintf("registry: game %q already registered", id))
	}
	entries[id] = entry{factory: f, title: f().Title()}
}

// List returns the registered modes ordered by ID.
func List() []GameInfo {
	mu.RLock()
	defer mu.RUnlock()

	infos := make([]GameInfo, 0, len(entries))
	for id, e := range entries {
		infos = append(infos, GameInfo{ID: id, Title: e.title})
	}
	slices.SortFunc(infos, func(a, b GameInfo) int { return strings.Compare(a.ID, b.ID) })
	return infos
}

// Create returns a new instance of the mode id.
func Create(id string) (Game, error) {
	mu.RLock()
	e, ok := entries[id]
	mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("registry: unknown game %q", id)
	}
	return e.factory(), nil
}

// Exists reports whether id is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := entries[id]
	return ok
}

// Title returns the registered title for id, or id itself when unknown.
func Title(id string) string {
	mu.RLock()
	defer mu.RUnlock()

	if e, ok := entries[id]; ok {
		return e.title
	}
	return id
}
