package asteroids

import (
	"github.com/vovakirdan/tui-asteroids/internal/config"
	"github.com/vovakirdan/tui-asteroids/internal/core"
)

// Turning is the ship's rotation state for the current tick.
type Turning int

const (
	TurnNone Turning = iota
	TurnLeft
	TurnRight
)

// Hull is the ship outline in local space, nose along +X. The first vertex
// is repeated at the end to close it.
var Hull = []core.Vector{{X: -10, Y: -8}, {X: 10, Y: 0}, {X: -10, Y: 8}, {X: -10, Y: -8}}

// Flame is the open exhaust polyline shown while thrusting.
var Flame = []core.Vector{{X: -10, Y: -3}, {X: -14, Y: 0}, {X: -10, Y: 3}}

// Ship is the player entity.
type Ship struct {
	Pos          core.Vector
	Vel          core.Vector // Displacement per tick
	Heading      core.Vector // Unit facing direction
	Acceleration float64     // Thrust magnitude applied this tick
	Turning      Turning

	cfg config.ShipConfig
}

// NewShip creates a stationary ship at pos facing up.
func NewShip(pos core.Vector, cfg config.ShipConfig) *Ship {
	return &Ship{
		Pos:     pos,
		Heading: core.Vec(0, -1),
		cfg:     cfg,
	}
}

// StartTurnLeft makes the ship rotate counterclockwise on screen.
func (sh *Ship) StartTurnLeft() { sh.Turning = TurnLeft }

// StartTurnRight makes the ship rotate clockwise on screen.
func (sh *Ship) StartTurnRight() { sh.Turning = TurnRight }

// StopTurn stops rotation.
func (sh *Ship) StopTurn() { sh.Turning = TurnNone }

// StartAccelerate adds one acceleration step. Repeated calls compound.
func (sh *Ship) StartAccelerate() { sh.Acceleration += sh.cfg.AccelerationStep }

// StopAccelerate cuts thrust.
func (sh *Ship) StopAccelerate() { sh.Acceleration = 0 }

// Update resolves input, moves, checks for rock contact and applies thrust.
func (sh *Ship) Update(s *Session) {
	sh.handleKeys(s)
	sh.move(s.width, s.height)
	sh.checkForRockHit(s)
	sh.accelerate()
}

// handleKeys maps the held keys to control state. Everything is level
// triggered and recomputed every tick; right wins when both turn keys are held.
func (sh *Ship) handleKeys(s *Session) {
	keys := s.cfg.Controls
	left := s.keys.Has(keys.Left)
	right := s.keys.Has(keys.Right)
	if left {
		sh.StartTurnLeft()
	}
	if right {
		sh.StartTurnRight()
	}
	if !left && !right {
		sh.StopTurn()
	}

	if s.keys.Has(keys.Thrust) {
		sh.StartAccelerate()
	} else {
		sh.StopAccelerate()
	}

	if s.keys.Has(keys.Fire) {
		s.FireBullet(sh.Pos, sh.Heading, sh.Vel)
	}
}

// move advances position with wraparound, then applies the turn.
func (sh *Ship) move(w, h float64) {
	sh.Pos = wrap(sh.Pos.Add(sh.Vel), w, h)

	switch sh.Turning {
	case TurnLeft:
		sh.Heading = sh.Heading.RotateDegrees(-sh.cfg.TurningSpeed).Normalize()
	case TurnRight:
		sh.Heading = sh.Heading.RotateDegrees(sh.cfg.TurningSpeed).Normalize()
	}
}

// accelerate applies linear drag and thrust, then clamps speed.
func (sh *Ship) accelerate() {
	drag := sh.Vel.Negate().Scale(sh.cfg.RetardationStep)
	thrust := sh.Heading.Scale(sh.Acceleration)
	v := sh.Vel.Add(drag).Add(thrust)

	speed := v.Length()
	if speed < sh.cfg.MaxSpeed {
		sh.Vel = v
		return
	}
	sh.Vel = v.Scale(sh.cfg.MaxSpeed / speed)
}

// checkForRockHit ends the game when any hull vertex lies inside a rock.
func (sh *Ship) checkForRockHit(s *Session) {
	hull := sh.HullPoints()
	for _, r := range s.rocks {
		silhouette := r.Silhouette()
		for _, p := range hull {
			if core.PointInPolygon(p, silhouette) {
				s.GameOver()
				return
			}
		}
	}
}

// HullPoints returns the hull in world space.
func (sh *Ship) HullPoints() []core.Vector {
	return transform(Hull, 1, sh.Heading, sh.Pos)
}

// Draw strokes the hull and, while thrusting, the flame.
func (sh *Ship) Draw(c core.Canvas) {
	c.Polyline(sh.HullPoints(), false, stroke)
	if sh.Acceleration != 0 {
		c.Polyline(transform(Flame, 1, sh.Heading, sh.Pos), false, stroke)
	}
}
