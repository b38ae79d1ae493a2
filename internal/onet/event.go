package onet

// EventKind is the outcome of a single Select call.
type EventKind int

const (
	EventIgnored           EventKind = iota // Empty or off-board cell; nothing changed
	EventSelected                           // First tile chosen
	EventDeselected                         // Same tile chosen twice; selection cancelled
	EventMismatch                           // Tiles of different types; no search made
	EventNoRoute                            // Same type but no route within the turn limit
	EventMatched                            // Route found; tiles removed (or pending)
	EventMatchedAndCleared                  // Route found and the board is now empty
	EventBusy                               // A deferred removal is still pending
)

// String returns a human-readable name for the event kind.
func (k EventKind) String() string {
	switch k {
	case EventIgnored:
		return "Ignored"
	case EventSelected:
		return "Selected"
	case EventDeselected:
		return "Deselected"
	case EventMismatch:
		return "Mismatch"
	case EventNoRoute:
		return "NoRoute"
	case EventMatched:
		return "Matched"
	case EventMatchedAndCleared:
		return "MatchedAndCleared"
	case EventBusy:
		return "Busy"
	default:
		return "Unknown"
	}
}

// Event is the result of Controller.Select.
type Event struct {
	Kind  EventKind
	Cell  Point // The cell passed to Select
	A     Point // First tile of the attempted pair
	B     Point // Second tile of the attempted pair
	Route Route // Set for Matched and MatchedAndCleared

	// Pending is true when removal waits for Commit.
	Pending bool
}

// Matched returns true for both successful match kinds.
func (e Event) Matched() bool {
	return e.Kind == EventMatched || e.Kind == EventMatchedAndCleared
}

// NotificationKind identifies a notification sent to listeners.
type NotificationKind int

const (
	NoteTileSelected NotificationKind = iota
	NoteRouteFound
	NoteNoRoute
	NoteTilesRemoved
	NoteLevelComplete
)

// String returns a human-readable name for the notification kind.
func (k NotificationKind) String() string {
	switch k {
	case NoteTileSelected:
		return "TileSelected"
	case NoteRouteFound:
		return "RouteFound"
	case NoteNoRoute:
		return "NoRoute"
	case NoteTilesRemoved:
		return "TilesRemoved"
	case NoteLevelComplete:
		return "LevelComplete"
	default:
		return "Unknown"
	}
}

// Notification is delivered to listeners as the controller changes state.
// RouteFound is always sent before the matching TilesRemoved.
type Notification struct {
	Kind  NotificationKind
	A     Point
	B     Point
	Route Route
}

// Listener receives controller notifications synchronously.
type Listener func(Notification)
