package core

// RuntimeConfig is what the host hands a game on Reset: the terminal it
// draws into, the tick rate, the deal seed and who is playing.
type RuntimeConfig struct {
	ScreenW  int
	ScreenH  int
	TickRate int    // Ticks per second
	Seed     int64  // 0 asks the host to pick a time-based seed
	Player   string // Saved with the run's score
}

// DefaultConfig is a standard 80x24 terminal at 60 ticks per second.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60}
}

// GameState is the summary a game reports to the host after each tick.
type GameState struct {
	Score    int
	Level    int // 1-based
	GameOver bool
	Paused   bool
}

// StepResult is returned by Game.Step.
type StepResult struct {
	State GameState
}
