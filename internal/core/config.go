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

// Outcome describes how a round ended. Empty while a round is in progress.
type Outcome string

const (
	OutcomeNone     Outcome = ""
	OutcomeVictory  Outcome = "victory"
	OutcomeGameOver Outcome = "gameover"
)

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score   int     // Current score
	Lives   int     // Remaining lives
	Started bool    // Whether the ball has been launched
	Paused  bool    // Whether the game is paused
	Outcome Outcome // Set while an end-of-round dialog is shown
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State  GameState
	Events string // Names of the tick's events, empty when nothing happened
}
