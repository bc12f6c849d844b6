package core

import "time"

// Screen bounds below which the river cannot be laid out.
const (
	MinScreenW = 20
	MinScreenH = 8
)

// RuntimeConfig is fixed at session start.
// Screen dimensions are read once from the terminal and never change afterwards.
type RuntimeConfig struct {
	ScreenW int           // Screen width in cells (max_columns)
	ScreenH int           // Screen height in cells (max_rows)
	Tick    time.Duration // Pacing interval between simulation ticks
	Seed    int64         // RNG seed; 0 means seed from the clock
}

// DefaultConfig returns an 80x24 session paced at 100ms.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW: 80,
		ScreenH: 24,
		Tick:    100 * time.Millisecond,
		Seed:    0,
	}
}

// Fits reports whether the screen is large enough to play on.
func (c RuntimeConfig) Fits() bool {
	return c.ScreenW >= MinScreenW && c.ScreenH >= MinScreenH
}

// GameState is the coarse summary the platform needs after each tick.
type GameState struct {
	Score    int  // Enemies destroyed
	Ticks    int  // Ticks survived
	GameOver bool // Player is dead
	Paused   bool
}
