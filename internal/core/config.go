package core

// RuntimeConfig contains configuration passed to a game on reset.
// The driver fills it from the terminal size and the chosen seed.
type RuntimeConfig struct {
	ScreenW int   // Screen width in characters
	ScreenH int   // Screen height in characters
	Seed    int64 // RNG seed for food placement, random starts and solver tie-breaks
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW: 80,
		ScreenH: 24,
		Seed:    0, // 0 means use current time in platform layer
	}
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score    int  // Current snake length
	Steps    int  // Moves made this episode
	GameOver bool // Whether the episode has ended
	Paused   bool // Whether the game is paused
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State GameState
	Moved bool  // The snake advanced one cell this tick
	Ate   bool  // The snake ate food this tick
	Err   error // A requested restart failed; the previous episode stays
}
