package core

// RuntimeConfig contains configuration passed to the game at initialization.
// The game uses this to adapt to screen size and for deterministic simulation.
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
	Phase    string // Screen state, e.g. "title_screen" or "playing"
	Score    int    // Current score
	Lives    int    // Remaining lives
	Level    int    // Current level, 1-based
	GameOver bool   // Whether the run has ended (lost or won)
	Paused   bool   // Whether the game is paused
	Muted    bool   // Whether sound cues are suppressed
}

// StepResult is returned by Game.Step() after each simulation tick.
// Contains the updated game state and any sound cues raised during the tick.
type StepResult struct {
	State GameState
	Cues  []Cue
}
