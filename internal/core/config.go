package core

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt to screen size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score    int  // Current score
	Level    int  // Highest level reached, 1-based
	Cleared  int  // Levels won this run
	Rounds   int  // Rounds fought across the run
	GameOver bool // Whether the run has ended
	Victory  bool // Whether the run ended with the campaign cleared
	Paused   bool // Whether the game is paused
}

// Outcome returns the storage label for a finished run.
func (s GameState) Outcome() string {
	switch {
	case !s.GameOver:
		return "running"
	case s.Victory:
		return "victory"
	default:
		return "defeat"
	}
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State GameState
	// Events lists the combat actions resolved during this tick, by name.
	Events []string
}
