// Package config provides YAML-based configuration loading and validation
// for the asteroids simulation.
package config

import (
	"errors"
	"fmt"
	"time"
)

// Keys bound by the terminal UI. Game controls must not reuse them.
const (
	KeyQuit      = "q"
	KeyForceQuit = "ctrl+c"
	KeyRestart   = "r"
	KeyAltLeft   = "left"
	KeyAltRight  = "right"
	KeyAltThrust = "up"
	KeyAltFire   = " "
)

var reservedKeys = map[string]bool{
	KeyQuit: true, KeyForceQuit: true, KeyRestart: true,
	KeyAltLeft: true, KeyAltRight: true, KeyAltThrust: true, KeyAltFire: true,
}

// AsteroidsConfig contains all tunables for a game session.
type AsteroidsConfig struct {
	Ship     ShipConfig     `yaml:"ship"`
	Rocks    RockConfig     `yaml:"rocks"`
	Bullets  BulletConfig   `yaml:"bullets"`
	Timing   TimingConfig   `yaml:"timing"`
	World    WorldConfig    `yaml:"world"`
	Controls ControlsConfig `yaml:"controls"`
}

// ShipConfig defines ship kinematics. Speeds are world units per tick.
type ShipConfig struct {
	AccelerationStep float64 `yaml:"acceleration_step"` // Added to thrust every tick the key is held
	RetardationStep  float64 `yaml:"retardation_step"`  // Fraction of velocity removed per tick
	MaxSpeed         float64 `yaml:"max_speed"`
	TurningSpeed     float64 `yaml:"turning_speed"` // Degrees per tick
}

// RockConfig defines rock spawning and splitting.
type RockConfig struct {
	Count         int     `yaml:"count"`
	Scale         float64 `yaml:"scale"`
	MinSplitScale float64 `yaml:"min_split_scale"` // Rocks at or below this scale vanish when hit
	Speed         float64 `yaml:"speed"`
	Points        int     `yaml:"points"` // Score awarded per destroyed rock
}

// BulletConfig defines projectiles and the fire gate.
type BulletConfig struct {
	StartSpeed     float64 `yaml:"start_speed"`
	LifetimeMs     int     `yaml:"lifetime_ms"`
	FireIntervalMs int     `yaml:"fire_interval_ms"`
	MaxLive        int     `yaml:"max_live"`
	Radius         float64 `yaml:"radius"`
}

// Lifetime returns the bullet lifetime as a duration.
func (b BulletConfig) Lifetime() time.Duration {
	return time.Duration(b.LifetimeMs) * time.Millisecond
}

// FireInterval returns the minimum gap between two shots.
func (b BulletConfig) FireInterval() time.Duration {
	return time.Duration(b.FireIntervalMs) * time.Millisecond
}

// TimingConfig defines the frame gate.
type TimingConfig struct {
	MinFrameIntervalMs int `yaml:"min_frame_interval_ms"`
}

// MinFrameInterval returns the gate as a duration.
func (t TimingConfig) MinFrameInterval() time.Duration {
	return time.Duration(t.MinFrameIntervalMs) * time.Millisecond
}

// WorldConfig defines world bounds. Width and Height are used when no
// display dictates the bounds (headless runs).
type WorldConfig struct {
	Width      float64 `yaml:"width"`
	Height     float64 `yaml:"height"`
	PixelScale float64 `yaml:"pixel_scale"` // World units per terminal half-block pixel
}

// ControlsConfig maps game actions to literal key names.
type ControlsConfig struct {
	Left   string `yaml:"left"`
	Right  string `yaml:"right"`
	Thrust string `yaml:"thrust"`
	Fire   string `yaml:"fire"`
	HoldMs int    `yaml:"hold_ms"` // How long a key stays held after its last press; 0 = until released
}

// Hold returns the hold window as a duration.
func (c ControlsConfig) Hold() time.Duration {
	return time.Duration(c.HoldMs) * time.Millisecond
}

// Validate checks every field and reports all problems at once.
func (c AsteroidsConfig) Validate() error {
	var errs []error
	positive := func(name string, v float64) {
		if v <= 0 {
			errs = append(errs, fmt.Errorf("%s must be positive, got %v", name, v))
		}
	}
	nonNegative := func(name string, v float64) {
		if v < 0 {
			errs = append(errs, fmt.Errorf("%s must not be negative, got %v", name, v))
		}
	}

	nonNegative("ship.acceleration_step", c.Ship.AccelerationStep)
	if c.Ship.RetardationStep < 0 || c.Ship.RetardationStep >= 1 {
		errs = append(errs, fmt.Errorf("ship.retardation_step must be in [0, 1), got %v", c.Ship.RetardationStep))
	}
	positive("ship.max_speed", c.Ship.MaxSpeed)
	nonNegative("ship.turning_speed", c.Ship.TurningSpeed)

	nonNegative("rocks.count", float64(c.Rocks.Count))
	positive("rocks.scale", c.Rocks.Scale)
	positive("rocks.min_split_scale", c.Rocks.MinSplitScale)
	positive("rocks.speed", c.Rocks.Speed)
	nonNegative("rocks.points", float64(c.Rocks.Points))

	positive("bullets.start_speed", c.Bullets.StartSpeed)
	positive("bullets.lifetime_ms", float64(c.Bullets.LifetimeMs))
	nonNegative("bullets.fire_interval_ms", float64(c.Bullets.FireIntervalMs))
	positive("bullets.max_live", float64(c.Bullets.MaxLive))
	positive("bullets.radius", c.Bullets.Radius)

	nonNegative("timing.min_frame_interval_ms", float64(c.Timing.MinFrameIntervalMs))

	positive("world.width", c.World.Width)
	positive("world.height", c.World.Height)
	positive("world.pixel_scale", c.World.PixelScale)

	keys := map[string]string{
		"controls.left":   c.Controls.Left,
		"controls.right":  c.Controls.Right,
		"controls.thrust": c.Controls.Thrust,
		"controls.fire":   c.Controls.Fire,
	}
	seen := make(map[string]string, len(keys))
	for _, name := range []string{"controls.left", "controls.right", "controls.thrust", "controls.fire"} {
		k := keys[name]
		if k == "" {
			errs = append(errs, fmt.Errorf("%s must not be empty", name))
			continue
		}
		if reservedKeys[k] {
			errs = append(errs, fmt.Errorf("%s: key %q is reserved by the terminal UI", name, k))
			continue
		}
		if prev, ok := seen[k]; ok {
			errs = append(errs, fmt.Errorf("%s: key %q already bound to %s", name, k, prev))
			continue
		}
		seen[k] = name
	}
	nonNegative("controls.hold_ms", float64(c.Controls.HoldMs))

	if len(errs) > 0 {
		return fmt.Errorf("config: invalid: %w", errors.Join(errs...))
	}
	return nil
}
