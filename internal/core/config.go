package core

// DefaultTickRate is the simulation rate every cadence is tuned for.
const DefaultTickRate = 60

// RuntimeConfig is what a host tells a round when it starts: the drawable
// area and how the simulation is clocked.
type RuntimeConfig struct {
	ScreenW  int
	ScreenH  int
	TickRate int
	// Seed drives every random choice of the round. Hosts replace 0 with
	// a time-based seed before starting.
	Seed int64
}

// DefaultConfig returns an 80x24 runtime at the default tick rate.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: DefaultTickRate}
}

// Normalized returns c with a non-positive tick rate replaced by the default
// and negative sizes clamped to zero.
func (c RuntimeConfig) Normalized() RuntimeConfig {
	if c.TickRate <= 0 {
		c.TickRate = DefaultTickRate
	}
	c.ScreenW = max(c.ScreenW, 0)
	c.ScreenH = max(c.ScreenH, 0)
	return c
}

// GameState is the host-visible status of a round.
type GameState struct {
	Score    int
	GameOver bool
	Paused   bool
}

// StepResult reports the state after one tick and what happened during it.
type StepResult struct {
	State  GameState
	Events []Event
}
