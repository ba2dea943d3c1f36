// Package core provides fundamental types and utilities for the asteroids game.
// It contains no external dependencies (especially no Bubble Tea) to keep game
// logic pure and testable.
package core

import "math"

// Vector is an immutable 2D vector. Every operation returns a new value.
type Vector struct {
	X, Y float64
}

// Vec creates a vector from its components.
func Vec(x, y float64) Vector {
	return Vector{X: x, Y: y}
}

// UnitFromAngle returns (cos(angle), sin(angle)) for an angle in radians.
func UnitFromAngle(angle float64) Vector {
	return Vector{X: math.Cos(angle), Y: math.Sin(angle)}
}

// Negate flips the sign of both components.
func (v Vector) Negate() Vector {
	return Vector{X: -v.X, Y: -v.Y}
}

// Scale multiplies both components by k.
func (v Vector) Scale(k float64) Vector {
	return Vector{X: v.X * k, Y: v.Y * k}
}

// Add returns the component-wise sum.
func (v Vector) Add(other Vector) Vector {
	return Vector{X: v.X + other.X, Y: v.Y + other.Y}
}

// RotateByVector treats r as a complex number and multiplies v by it.
// r must be unit length for a pure rotation; any other length also scales
// the result by |r|.
func (v Vector) RotateByVector(r Vector) Vector {
	return Vector{
		X: v.X*r.X - v.Y*r.Y,
		Y: v.X*r.Y + v.Y*r.X,
	}
}

// RotateDegrees rotates v by deg degrees (positive is clockwise on a
// y-down display).
func (v Vector) RotateDegrees(deg float64) Vector {
	rad := deg * math.Pi / 180
	sin, cos := math.Sincos(rad)
	return Vector{
		X: v.X*cos - v.Y*sin,
		Y: v.X*sin + v.Y*cos,
	}
}

// Length returns the Euclidean magnitude.
func (v Vector) Length() float64 {
	return math.Hypot(v.X, v.Y)
}

// Normalize returns a unit vector in the same direction.
// The zero vector is returned unchanged.
func (v Vector) Normalize() Vector {
	l := v.Length()
	if l == 0 {
		return v
	}
	return Vector{X: v.X / l, Y: v.Y / l}
}

// PointInPolygon reports whether p lies inside poly using the even-odd rule.
// A horizontal ray is cast from p to the right and edge crossings are counted.
// Each edge covers the half-open y-span [min, max) so a vertex shared by two
// edges is counted once; horizontal edges never count. The closing edge from
// the last vertex back to the first is added when the data does not repeat
// the first vertex.
func PointInPolygon(p Vector, poly []Vector) bool {
	n := len(poly)
	if n < 3 {
		return false
	}

	crossings := 0
	for i := 0; i < n-1; i++ {
		if rayCrosses(p, poly[i], poly[i+1]) {
			crossings++
		}
	}
	if poly[n-1] != poly[0] && rayCrosses(p, poly[n-1], poly[0]) {
		crossings++
	}

	return crossings%2 == 1
}

// rayCrosses checks if a rightward horizontal ray from p crosses edge a-b.
func rayCrosses(p, a, b Vector) bool {
	if a.Y == b.Y {
		return false
	}
	minY, maxY := math.Min(a.Y, b.Y), math.Max(a.Y, b.Y)
	if p.Y < minY || p.Y >= maxY {
		return false
	}

	xIntersect := a.X + (p.Y-a.Y)*(b.X-a.X)/(b.Y-a.Y)
	return xIntersect >= p.X
}

// Rect represents an axis-aligned box in screen cells.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}
