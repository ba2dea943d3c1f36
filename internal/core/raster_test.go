package core

import (
	"strings"
	"testing"
)

func TestRasterWorldSize(t *testing.T) {
	s := NewScreen(80, 24)
	r := NewRaster(s, 1, 4)

	w, h := r.WorldSize()
	if w != 320 || h != 184 {
		t.Errorf("WorldSize() = (%v, %v), expected (320, 184)", w, h)
	}
}

func TestRasterHalfBlocks(t *testing.T) {
	s := NewScreen(4, 3)
	r := NewRaster(s, 1, 1)
	stroke := Stroke{Color: ColorGreen}

	// Pixel row 0 is the upper half of screen row 1.
	r.Polyline([]Vector{{0.5, 0.5}}, false, stroke)
	if got := s.Get(0, 1); got != glyphUpper {
		t.Errorf("expected upper half block, got %q", got)
	}

	// Pixel row 1 fills the lower half of the same cell.
	r.Polyline([]Vector{{0.5, 1.5}}, false, stroke)
	if got := s.Get(0, 1); got != glyphFull {
		t.Errorf("expected full block, got %q", got)
	}

	r.Polyline([]Vector{{1.5, 3.5}}, false, stroke)
	if got := s.Get(1, 2); got != glyphLower {
		t.Errorf("expected lower half block, got %q", got)
	}
	if c := s.GetCell(1, 2); c.Color != ColorGreen {
		t.Errorf("expected stroke color, got %v", c.Color)
	}
}

func TestRasterLine(t *testing.T) {
	s := NewScreen(10, 2)
	r := NewRaster(s, 0, 1)

	// Horizontal line on pixel row 0 covers columns 0..9.
	r.Polyline([]Vector{{0, 0}, {9.5, 0}}, false, Stroke{})
	if got := s.Row(0); got != strings.Repeat(string(glyphUpper), 10) {
		t.Errorf("Row(0) = %q, expected a full row of upper blocks", got)
	}

	// Clipped pixels are ignored.
	r.Polyline([]Vector{{-50, 3}, {50, 3}}, false, Stroke{})
	if got := s.Get(0, 1); got != glyphLower {
		t.Errorf("expected clipped line to draw inside bounds, got %q", got)
	}
}

func TestRasterClosedPolyline(t *testing.T) {
	s := NewScreen(6, 3)
	r := NewRaster(s, 0, 1)
	square := []Vector{{1, 1}, {4, 1}, {4, 4}, {1, 4}}

	r.Polyline(square, false, Stroke{})
	open := s.String()

	r.Clear()
	r.Polyline(square, true, Stroke{})
	closed := s.String()

	if open == closed {
		t.Error("closing a polyline should draw the extra edge")
	}
}

func TestRasterClearKeepsReservedRows(t *testing.T) {
	s := NewScreen(5, 3)
	r := NewRaster(s, 1, 1)

	s.DrawText(0, 0, "HUD", ColorWhite)
	r.Arc(Vector{2, 2}, 0.5, Stroke{})
	r.Clear()

	if s.Row(0) != "HUD  " {
		t.Errorf("Clear should keep reserved rows, Row(0) = %q", s.Row(0))
	}
	if strings.TrimSpace(s.Row(1)+s.Row(2)) != "" {
		t.Error("Clear should erase the playfield")
	}
}

func TestRasterArc(t *testing.T) {
	s := NewScreen(20, 10)
	r := NewRaster(s, 0, 1)
	r.Arc(Vector{10, 10}, 5, Stroke{})

	// Center stays empty, rim gets pixels.
	if s.Get(10, 5) != ' ' {
		t.Error("arc should not fill its center")
	}
	if strings.TrimSpace(s.String()) == "" {
		t.Error("arc should draw something")
	}
}
