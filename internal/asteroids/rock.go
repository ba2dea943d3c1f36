package asteroids

import (
	"math"

	"github.com/vovakirdan/tui-asteroids/internal/core"
)

// RockShapes holds the rock outlines in local unscaled coordinates. Each is
// closed by repeating its first vertex.
var RockShapes = [4][]core.Vector{
	{
		{X: 0, Y: 2}, {X: 2, Y: 4}, {X: 4, Y: 2}, {X: 3, Y: 0}, {X: 4, Y: -2}, {X: 1, Y: -4},
		{X: -2, Y: -4}, {X: -4, Y: -2}, {X: -4, Y: 2}, {X: -2, Y: 4}, {X: 0, Y: 2},
	},
	{
		{X: 2, Y: 1}, {X: 4, Y: 2}, {X: 2, Y: 4}, {X: 0, Y: 3}, {X: -2, Y: 4}, {X: -4, Y: 2},
		{X: -3, Y: 0}, {X: -4, Y: -2}, {X: -2, Y: -4}, {X: -1, Y: -3}, {X: 2, Y: -4},
		{X: 4, Y: -1}, {X: 2, Y: 1},
	},
	{
		{X: -2, Y: 0}, {X: -4, Y: -1}, {X: -2, Y: -4}, {X: 0, Y: -1}, {X: 0, Y: -4},
		{X: 2, Y: -4}, {X: 4, Y: -1}, {X: 4, Y: 1}, {X: 2, Y: 4}, {X: -1, Y: 4},
		{X: -4, Y: 1}, {X: -2, Y: 0},
	},
	{
		{X: 1, Y: 0}, {X: 4, Y: 1}, {X: 4, Y: 2}, {X: 1, Y: 4}, {X: -2, Y: 4}, {X: -1, Y: 2},
		{X: -4, Y: 2}, {X: -4, Y: -1}, {X: -2, Y: -4}, {X: 1, Y: -3}, {X: 2, Y: -4},
		{X: 4, Y: -2}, {X: 1, Y: 0},
	},
}

// Rock is an obstacle drifting in a straight line.
type Rock struct {
	Pos      core.Vector
	Dir      core.Vector // Unit travel direction
	Speed    float64     // World units per tick
	Rotation core.Vector // Unit vector orienting the shape
	Shape    int         // Index into RockShapes
	Scale    float64
	Hit      bool // Set by a bullet, consumed by the split pass

	markedForDeletion bool
}

// Update moves the rock with wraparound.
func (r *Rock) Update(s *Session) {
	r.Pos = wrap(r.Pos.Add(r.Dir.Scale(r.Speed)), s.width, s.height)
}

// Draw strokes the silhouette.
func (r *Rock) Draw(c core.Canvas) {
	c.Polyline(r.Silhouette(), false, stroke)
}

// Silhouette returns the outline in world space.
func (r *Rock) Silhouette() []core.Vector {
	return transform(RockShapes[r.Shape], r.Scale, r.Rotation, r.Pos)
}

// Contains reports whether p lies inside the silhouette (even-odd rule).
func (r *Rock) Contains(p core.Vector) bool {
	return core.PointInPolygon(p, r.Silhouette())
}

// CreateRocks spawns n rocks cycling through the shapes, laid out on the
// quadrant grid of the current bounds with random orientation and travel
// direction.
func (s *Session) CreateRocks(n int) []*Rock {
	rocks := make([]*Rock, 0, n)
	for i := 0; i < n; i++ {
		r := &Rock{
			Pos: core.Vec(
				s.width/4+s.width/2*float64(i%2),
				s.height/3+s.height/3*float64((i/2)%2),
			),
			Speed: s.cfg.Rocks.Speed,
			Shape: i % len(RockShapes),
			Scale: s.cfg.Rocks.Scale,
		}
		r.Rotation = core.UnitFromAngle(s.rng.Float64() * 2 * math.Pi)
		r.Dir = core.UnitFromAngle(s.rng.Float64() * 2 * math.Pi)
		rocks = append(rocks, r)
	}
	return rocks
}

// split returns the replacement rocks for a hit rock: two half-scale rocks
// at the same spot heading within 90 degrees of the parent, or none once the
// rock is at or below the minimum split scale.
func (s *Session) split(r *Rock) []*Rock {
	if r.Scale <= s.cfg.Rocks.MinSplitScale {
		return nil
	}
	children := make([]*Rock, 2)
	for i := range children {
		children[i] = &Rock{
			Pos:      r.Pos,
			Dir:      r.Dir.RotateDegrees(s.rng.Float64()*180 - 90),
			Speed:    r.Speed,
			Rotation: core.UnitFromAngle(s.rng.Float64() * 2 * math.Pi),
			Shape:    r.Shape,
			Scale:    r.Scale / 2,
		}
	}
	return children
}
