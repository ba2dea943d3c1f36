package asteroids

import (
	"time"

	"github.com/vovakirdan/tui-asteroids/internal/core"
)

// Bullet is a short-lived projectile.
type Bullet struct {
	Pos      core.Vector
	Vel      core.Vector
	Deadline time.Time // The bullet expires once the clock passes this

	radius            float64
	markedForDeletion bool
}

// Update expires the bullet when its deadline has passed and moves it with
// wraparound.
func (b *Bullet) Update(s *Session) {
	if s.clock().After(b.Deadline) {
		b.markedForDeletion = true
	}
	b.Pos = wrap(b.Pos.Add(b.Vel), s.width, s.height)
}

// Draw strokes a small circle.
func (b *Bullet) Draw(c core.Canvas) {
	c.Arc(b.Pos, b.radius, stroke)
}
