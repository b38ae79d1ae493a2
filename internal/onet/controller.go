package onet

import "math/rand"

// State is the selection state of a Controller.
type State int

const (
	StateIdle        State = iota // No tile selected
	StateOneSelected              // One tile selected, waiting for its partner
	StateRemoving                 // Route found, removal deferred until Commit
)

// String returns a human-readable name for the state.
func (s State) String() string {
	switch s {
	case StateIdle:
		return "Idle"
	case StateOneSelected:
		return "OneSelected"
	case StateRemoving:
		return "Removing"
	default:
		return "Unknown"
	}
}

// PathFunc finds a route between two cells. FindPath is the default.
type PathFunc func(b *Board, start, end Point) Route

// Options configures a Controller.
type Options struct {
	// Shuffles is the reshuffle allowance restored by every Reset.
	Shuffles int

	// DeferRemoval keeps matched tiles on the board until Commit is called,
	// so the host can animate the route first.
	DeferRemoval bool

	// FindPath overrides the route search. Nil means FindPath.
	FindPath PathFunc
}

// DefaultOptions returns options with three shuffles and immediate removal.
func DefaultOptions() Options {
	return Options{Shuffles: 3}
}

// Controller owns one board for the lifetime of a level and turns cell
// selections into matches. It is not safe for concurrent use; each session
// owns its own controller.
type Controller struct {
	board        *Board
	opts         Options
	state        State
	selected     Point
	pending      Move
	shufflesLeft int
	completed    bool // one-shot LevelComplete latch, cleared by Reset
	listeners    []Listener
}

// NewController creates a controller for the given board.
func NewController(b *Board, opts Options) *Controller {
	if opts.FindPath == nil {
		opts.FindPath = FindPath
	}
	c := &Controller{opts: opts}
	c.Reset(b)
	return c
}

// Subscribe registers a listener for notifications.
func (c *Controller) Subscribe(l Listener) {
	c.listeners = append(c.listeners, l)
}

func (c *Controller) notify(n Notification) {
	for _, l := range c.listeners {
		l(n)
	}
}

// Board returns a copy of the current board.
func (c *Controller) Board() *Board {
	return c.board.Clone()
}

// At returns the tile at p without copying the board.
func (c *Controller) At(p Point) Tile {
	return c.board.At(p)
}

// Rows returns the board height.
func (c *Controller) Rows() int {
	return c.board.Rows()
}

// Cols returns the board width.
func (c *Controller) Cols() int {
	return c.board.Cols()
}

// State returns the current selection state.
func (c *Controller) State() State {
	return c.state
}

// Selected returns the selected cell, if any.
func (c *Controller) Selected() (Point, bool) {
	if c.state == StateIdle {
		return Point{}, false
	}
	return c.selected, true
}

// Pending returns the match waiting for Commit, if any.
func (c *Controller) Pending() (Move, bool) {
	if c.state != StateRemoving {
		return Move{}, false
	}
	return c.pending, true
}

// ShufflesLeft returns the remaining reshuffle allowance.
func (c *Controller) ShufflesLeft() int {
	return c.shufflesLeft
}

// Reset installs a new board, clears the selection and any pending
// removal, re-arms the LevelComplete latch and restores the shuffle
// allowance. It is legal in every state. A nil board is a caller bug and
// panics.
func (c *Controller) Reset(b *Board) {
	if b == nil {
		panic("onet: nil board")
	}
	c.board = b
	c.state = StateIdle
	c.selected = Point{}
	c.pending = Move{}
	c.shufflesLeft = c.opts.Shuffles
	c.completed = false
}

// Select handles a click on cell p and reports what happened.
func (c *Controller) Select(p Point) Event {
	if c.state == StateRemoving {
		return Event{Kind: EventBusy, Cell: p}
	}

	// Empty and off-board cells never change the selection.
	if !c.board.InBounds(p) || c.board.At(p) == Empty {
		return Event{Kind: EventIgnored, Cell: p}
	}

	if c.state == StateIdle {
		c.state = StateOneSelected
		c.selected = p
		c.notify(Notification{Kind: NoteTileSelected, A: p})
		return Event{Kind: EventSelected, Cell: p}
	}

	first := c.selected
	c.state = StateIdle

	if p == first {
		return Event{Kind: EventDeselected, Cell: p}
	}

	if c.board.At(p) != c.board.At(first) {
		return Event{Kind: EventMismatch, Cell: p, A: first, B: p}
	}

	route := c.opts.FindPath(c.board, first, p)
	if route == nil {
		c.notify(Notification{Kind: NoteNoRoute, A: first, B: p})
		return Event{Kind: EventNoRoute, Cell: p, A: first, B: p}
	}

	c.notify(Notification{Kind: NoteRouteFound, A: first, B: p, Route: route})

	ev := Event{Kind: EventMatched, Cell: p, A: first, B: p, Route: route}
	if c.board.Remaining() == 2 {
		ev.Kind = EventMatchedAndCleared
	}

	if c.opts.DeferRemoval {
		c.state = StateRemoving
		c.pending = Move{A: first, B: p, Route: route}
		ev.Pending = true
		return ev
	}

	c.remove(first, p)
	return ev
}

// Commit applies a deferred removal. It returns ErrNothingPending when no
// removal is waiting.
func (c *Controller) Commit() error {
	if c.state != StateRemoving {
		return ErrNothingPending
	}

	m := c.pending
	c.state = StateIdle
	c.pending = Move{}
	c.remove(m.A, m.B)
	return nil
}

// remove clears both cells and runs the completion check.
func (c *Controller) remove(a, b Point) {
	c.board.Clear(a)
	c.board.Clear(b)
	c.notify(Notification{Kind: NoteTilesRemoved, A: a, B: b})
	c.LevelComplete()
}

// LevelComplete reports whether the board is cleared. The first call that
// observes a cleared board emits NoteLevelComplete; later calls do not
// until Reset installs a new board.
func (c *Controller) LevelComplete() bool {
	if !c.board.IsCleared() {
		return false
	}
	if !c.completed {
		c.completed = true
		c.notify(Notification{Kind: NoteLevelComplete})
	}
	return true
}

// Shuffle permutes the remaining tiles and spends one shuffle. The
// selection is dropped. Shuffling is refused while a removal is pending.
func (c *Controller) Shuffle(rng *rand.Rand) error {
	if c.state == StateRemoving {
		return ErrRemovalPending
	}
	if c.shufflesLeft <= 0 {
		return ErrNoShuffles
	}

	c.board.Reshuffle(rng)
	c.shufflesLeft--
	c.state = StateIdle
	c.selected = Point{}
	return nil
}
