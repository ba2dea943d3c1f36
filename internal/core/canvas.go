package core

// Stroke describes how a primitive is outlined.
type Stroke struct {
	Color Color
	Width float64 // Line width in world units
}

// Canvas receives the drawing primitives produced by the simulation.
// Coordinates are world units; the implementation maps them to its surface.
type Canvas interface {
	// Clear erases the whole drawing surface.
	Clear()

	// Polyline strokes line segments through points in order.
	// When closed is true the last point is joined back to the first.
	Polyline(points []Vector, closed bool, stroke Stroke)

	// Arc strokes a full circle around center.
	Arc(center Vector, radius float64, stroke Stroke)
}

// ShapeKind identifies a recorded primitive.
type ShapeKind int

const (
	ShapePolyline ShapeKind = iota
	ShapeArc
)

// Shape is a single primitive captured by a DrawList.
type Shape struct {
	Kind   ShapeKind
	Points []Vector // Polyline vertices; Points[0] is the arc center
	Closed bool
	Radius float64
	Stroke Stroke
}

// DrawList is a Canvas that records primitives instead of drawing them.
// It holds the primitives issued since the last Clear.
type DrawList struct {
	Shapes []Shape
	Clears int
}

// Clear drops recorded shapes.
func (d *DrawList) Clear() {
	d.Shapes = d.Shapes[:0]
	d.Clears++
}

// Polyline records a polyline. The point slice is copied.
func (d *DrawList) Polyline(points []Vector, closed bool, stroke Stroke) {
	pts := make([]Vector, len(points))
	copy(pts, points)
	d.Shapes = append(d.Shapes, Shape{
		Kind:   ShapePolyline,
		Points: pts,
		Closed: closed,
		Stroke: stroke,
	})
}

// Arc records a circle.
func (d *DrawList) Arc(center Vector, radius float64, stroke Stroke) {
	d.Shapes = append(d.Shapes, Shape{
		Kind:   ShapeArc,
		Points: []Vector{center},
		Radius: radius,
		Stroke: stroke,
	})
}

// Count returns how many recorded shapes are of the given kind.
func (d *DrawList) Count(kind ShapeKind) int {
	n := 0
	for _, s := range d.Shapes {
		if s.Kind == kind {
			n++
		}
	}
	return n
}
