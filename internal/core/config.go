package core

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt to screen size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW  int   // Screen width (cells in a terminal, pixels in a window)
	ScreenH  int   // Screen height
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed for deterministic gameplay
	Pixels   bool  // Screen is measured in pixels rather than terminal cells
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
	Moves  int    // Moves made so far
	Ticks  uint64 // Ticks elapsed on the current level, frozen once solved
	Solved bool   // Whether the puzzle has been solved (latched until reset)
	Seed   int64  // Seed that deals the current level
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State GameState

	// JustSolved is true only on the tick the puzzle became solved.
	JustSolved bool
}
