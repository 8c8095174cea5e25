package core

// RuntimeConfig contains the platform parameters handed to the TUI at startup.
// The simulation itself runs in virtual pixels and never sees these values;
// the rasterizer uses them to quantize frames onto the terminal grid.
type RuntimeConfig struct {
	ScreenW  int // Terminal width in cells
	ScreenH  int // Terminal height in cells
	TickRate int // Simulation ticks per second (default 60)
}

// DefaultRuntimeConfig returns a RuntimeConfig with sensible defaults.
func DefaultRuntimeConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
	}
}

// GameState is the simulation status the platform reads after each tick.
type GameState struct {
	Score    int  // Current round score
	HiScore  int  // Best score seen this session, never persisted
	Lives    int  // Remaining lives, display data only
	GameOver bool // Whether the round has ended
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State GameState
}
