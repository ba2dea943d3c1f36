// Package asteroids implements the asteroids simulation: a ship that turns,
// thrusts and fires at rocks which split when hit. The package is pure: it
// reads a key snapshot and elapsed time per frame and emits drawing
// primitives to a core.Canvas.
package asteroids

import "github.com/vovakirdan/tui-asteroids/internal/core"

// Entity is the update/draw capability shared by ships, rocks and bullets.
// The Session keeps one collection per kind and dispatches through this
// interface.
type Entity interface {
	// Update advances the entity by one tick.
	Update(s *Session)
	// Draw emits primitives for the current state.
	Draw(c core.Canvas)
}

// animate runs one tick for an entity: update, then draw.
func animate(e Entity, s *Session, c core.Canvas) {
	e.Update(s)
	e.Draw(c)
}

// stroke is the outline used for every entity.
var stroke = core.Stroke{Color: core.ColorGreen, Width: 2}

// wrap teleports a position that left the world to the opposite edge.
func wrap(p core.Vector, w, h float64) core.Vector {
	if p.X > w {
		p.X = 0
	}
	if p.X < 0 {
		p.X = w
	}
	if p.Y > h {
		p.Y = 0
	}
	if p.Y < 0 {
		p.Y = h
	}
	return p
}

// transform maps local shape coordinates into world space: scale, rotate by
// a unit vector, translate.
func transform(shape []core.Vector, scale float64, rotation, pos core.Vector) []core.Vector {
	out := make([]core.Vector, len(shape))
	for i, v := range shape {
		out[i] = v.Scale(scale).RotateByVector(rotation).Add(pos)
	}
	return out
}
