package core

import "time"

// RuntimeConfig contains the settings a session is started with.
type RuntimeConfig struct {
	ScreenW      int           // Screen width in characters
	ScreenH      int           // Screen height in characters
	FrameRate    int           // Host loop iterations per second (default 60)
	TickInterval time.Duration // Time between game-state updates (default 300ms)
	Seed         int64         // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:      80,
		ScreenH:      24,
		FrameRate:    60,
		TickInterval: 300 * time.Millisecond,
		Seed:         0, // 0 means use current time in platform layer
	}
}

// FrameInterval returns the wall time between host loop iterations.
func (c RuntimeConfig) FrameInterval() time.Duration {
	fps := c.FrameRate
	if fps <= 0 {
		fps = 60
	}
	return time.Second / time.Duration(fps)
}
