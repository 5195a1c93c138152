package core

// RuntimeConfig is what a frontend hands to a game when a run starts.
type RuntimeConfig struct {
	ScreenW  int   // output width in cells
	ScreenH  int   // output height in cells
	TickRate int   // ticks per second
	Seed     int64 // 0 lets the frontend pick a time-based seed
}

// DefaultConfig is a standard 80x24 terminal at 60 ticks per second.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60}
}

// GameState is the part of a run a frontend needs to decide what to show.
type GameState struct {
	Freedom  int // collected source code
	Shields  int // liberty shields left
	GameOver bool
	Paused   bool
}

// StepResult is returned by every simulation tick.
type StepResult struct {
	State GameState
	Ticks int // ticks simulated since the run started
}
