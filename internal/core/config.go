package core

// RuntimeConfig is what the platform tells a game when it (re)starts.
type RuntimeConfig struct {
	ScreenW  int
	ScreenH  int
	TickRate int   // ticks per second
	Seed     int64 // 0 picks a time-based seed
}

// DefaultConfig returns the settings of an 80x24 terminal at 30 ticks per
// second with a time-based seed.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 30,
	}
}

// GameState is the part of a game's state the platform acts on.
type GameState struct {
	Score    int
	Moves    int
	GameOver bool
	Paused   bool
}

// StepResult is returned by Game.Step after each tick.
type StepResult struct {
	State GameState
}
