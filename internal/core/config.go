package core

// RuntimeConfig contains configuration for the frame driver.
// The game itself never reads it; the platform uses it for the tick loop and
// to seed the game's random source.
type RuntimeConfig struct {
	TickRate int   // Frames per second fed to Game.Update (default 60)
	Seed     int64 // RNG seed for deterministic food placement
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}
