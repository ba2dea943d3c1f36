package core

import "math"

// Half-block glyphs. Each screen cell holds two vertically stacked pixels.
const (
	glyphUpper = '▀'
	glyphLower = '▄'
	glyphFull  = '█'
)

// Raster is a Canvas that draws onto a Screen at half-block resolution:
// every cell is one pixel wide and two pixels tall, which keeps pixels
// roughly square on common terminal fonts.
type Raster struct {
	screen *Screen
	top    int     // First screen row used by the playfield
	scale  float64 // World units per pixel
}

// NewRaster creates a rasterizer drawing below the given number of reserved
// top rows. unitsPerPixel sets how many world units map to one pixel.
func NewRaster(s *Screen, top int, unitsPerPixel float64) *Raster {
	if unitsPerPixel <= 0 {
		unitsPerPixel = 1
	}
	return &Raster{screen: s, top: top, scale: unitsPerPixel}
}

// WorldSize returns the world bounds covered by the playfield.
func (r *Raster) WorldSize() (w, h float64) {
	px, py := r.pixels()
	return float64(px) * r.scale, float64(py) * r.scale
}

// pixels returns the playfield size in pixels.
func (r *Raster) pixels() (int, int) {
	rows := r.screen.Height() - r.top
	if rows < 0 {
		rows = 0
	}
	return r.screen.Width(), rows * 2
}

// Clear erases the playfield rows only; reserved rows keep their content.
func (r *Raster) Clear() {
	for y := r.top; y < r.screen.Height(); y++ {
		for x := 0; x < r.screen.Width(); x++ {
			r.screen.SetCell(x, y, blankCell)
		}
	}
}

// Polyline draws Bresenham lines between consecutive points.
func (r *Raster) Polyline(points []Vector, closed bool, stroke Stroke) {
	if len(points) == 0 {
		return
	}
	if len(points) == 1 {
		x, y := r.toPixel(points[0])
		r.plot(x, y, stroke.Color)
		return
	}

	for i := 0; i < len(points)-1; i++ {
		r.line(points[i], points[i+1], stroke.Color)
	}
	if closed {
		r.line(points[len(points)-1], points[0], stroke.Color)
	}
}

// Arc plots points sampled around the circle. Circles smaller than a pixel
// collapse to their center.
func (r *Raster) Arc(center Vector, radius float64, stroke Stroke) {
	cx, cy := r.toPixel(center)
	rpx := radius / r.scale
	if rpx < 1 {
		r.plot(cx, cy, stroke.Color)
		return
	}

	samples := int(math.Ceil(2 * math.Pi * rpx))
	if samples < 8 {
		samples = 8
	}
	for i := 0; i < samples; i++ {
		p := center.Add(UnitFromAngle(2 * math.Pi * float64(i) / float64(samples)).Scale(radius))
		x, y := r.toPixel(p)
		r.plot(x, y, stroke.Color)
	}
}

// toPixel converts world coordinates to playfield pixel coordinates.
func (r *Raster) toPixel(v Vector) (int, int) {
	return int(math.Floor(v.X / r.scale)), int(math.Floor(v.Y / r.scale))
}

// line traces a segment with integer Bresenham stepping.
func (r *Raster) line(a, b Vector, color Color) {
	if !finite(a) || !finite(b) {
		return
	}
	x0, y0 := r.toPixel(a)
	x1, y1 := r.toPixel(b)

	dx := x1 - x0
	if dx < 0 {
		dx = -dx
	}
	dy := y1 - y0
	if dy < 0 {
		dy = -dy
	}

	stepX := -1
	if x0 < x1 {
		stepX = 1
	}
	stepY := -1
	if y0 < y1 {
		stepY = 1
	}

	err := dx - dy
	for {
		r.plot(x0, y0, color)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x0 += stepX
		}
		if e2 < dx {
			err += dx
			y0 += stepY
		}
	}
}

func finite(v Vector) bool {
	return !math.IsNaN(v.X) && !math.IsNaN(v.Y) && !math.IsInf(v.X, 0) && !math.IsInf(v.Y, 0)
}

// plot lights a single pixel, merging with the other half of its cell.
func (r *Raster) plot(px, py int, color Color) {
	w, h := r.pixels()
	if px < 0 || px >= w || py < 0 || py >= h {
		return
	}

	cx, cy := px, r.top+py/2
	upper := py%2 == 0

	glyph := glyphLower
	if upper {
		glyph = glyphUpper
	}

	switch r.screen.Get(cx, cy) {
	case glyphFull:
		glyph = glyphFull
	case glyphUpper:
		if !upper {
			glyph = glyphFull
		}
	case glyphLower:
		if upper {
			glyph = glyphFull
		}
	}

	r.screen.SetCell(cx, cy, Cell{Rune: glyph, Color: color})
}
