package config

import (
	_ "embed"
)

//go:embed defaults/asteroids.yaml
var defaultAsteroidsYAML []byte

// DefaultAsteroidsConfig returns the compiled-in configuration.
func DefaultAsteroidsConfig() AsteroidsConfig {
	return AsteroidsConfig{
		Ship: ShipConfig{
			AccelerationStep: 0.01,
			RetardationStep:  0.006,
			MaxSpeed:         4,
			TurningSpeed:     2,
		},
		Rocks: RockConfig{
			Count:         4,
			Scale:         8,
			MinSplitScale: 2,
			Speed:         0.5,
			Points:        10,
		},
		Bullets: BulletConfig{
			StartSpeed:     3,
			LifetimeMs:     1500,
			FireIntervalMs: 100,
			MaxLive:        4,
			Radius:         2,
		},
		Timing: TimingConfig{
			MinFrameIntervalMs: 10,
		},
		World: WorldConfig{
			Width:      800,
			Height:     600,
			PixelScale: 4,
		},
		Controls: ControlsConfig{
			Left:   "a",
			Right:  "d",
			Thrust: "k",
			Fire:   "j",
			HoldMs: 500,
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultAsteroidsYAML
}
