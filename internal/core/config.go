package core

// RuntimeConfig contains configuration passed to the game at initialization.
// The platform derives the world bounds from the display so that wraparound
// happens at the visible edges.
type RuntimeConfig struct {
	ScreenW  int     // Screen width in characters
	ScreenH  int     // Screen height in characters
	WorldW   float64 // World width in game units
	WorldH   float64 // World height in game units
	TickRate int     // Display refresh callbacks per second (default 60)
	Seed     int64   // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		WorldW:   800,
		WorldH:   600,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// GameState represents the current state of a game.
type GameState struct {
	Score    int  // Current score
	GameOver bool // Whether the game has ended
}
