package core

import (
	"math"
	"testing"
)

const eps = 1e-9

func almostEqual(a, b Vector) bool {
	return math.Abs(a.X-b.X) < eps && math.Abs(a.Y-b.Y) < eps
}

var sampleVectors = []Vector{
	{0, 0},
	{1, 0},
	{3, -4},
	{-2.5, 7.25},
	{1e6, -1e-6},
}

func TestVectorAddNegateIsZero(t *testing.T) {
	for _, v := range sampleVectors {
		got := v.Add(v.Negate())
		if !almostEqual(got, Vector{}) {
			t.Errorf("%v.Add(%v.Negate()) = %v, expected zero vector", v, v, got)
		}
	}
}

func TestVectorScale(t *testing.T) {
	tests := []struct {
		name     string
		v        Vector
		k        float64
		expected Vector
	}{
		{"identity", Vector{3, -4}, 1, Vector{3, -4}},
		{"double", Vector{3, -4}, 2, Vector{6, -8}},
		{"negative", Vector{3, -4}, -1, Vector{-3, 4}},
		{"fraction", Vector{3, -4}, 0.5, Vector{1.5, -2}},
		{"zero", Vector{3, -4}, 0, Vector{0, 0}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.v.Scale(tc.k); !almostEqual(got, tc.expected) {
				t.Errorf("Scale(%v) = %v, expected %v", tc.k, got, tc.expected)
			}
		})
	}
}

func TestVectorImmutable(t *testing.T) {
	v := Vec(1, 2)
	_ = v.Add(Vec(5, 5))
	_ = v.Scale(3)
	_ = v.Negate()
	_ = v.RotateDegrees(90)
	if v != Vec(1, 2) {
		t.Errorf("operations mutated the receiver: %v", v)
	}
}

func TestRotateDegrees(t *testing.T) {
	tests := []struct {
		name     string
		deg      float64
		expected Vector
	}{
		{"zero is identity", 0, Vector{3, -4}},
		{"quarter turn", 90, Vector{4, 3}},
		{"half turn", 180, Vector{-3, 4}},
		{"negative quarter", -90, Vector{-4, -3}},
		{"full turn", 360, Vector{3, -4}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := Vector{3, -4}.RotateDegrees(tc.deg)
			if !almostEqual(got, tc.expected) {
				t.Errorf("RotateDegrees(%v) = %v, expected %v", tc.deg, got, tc.expected)
			}
		})
	}
}

func TestRotateByVector(t *testing.T) {
	v := Vector{-10, -8}

	// Rotating by (1, 0) is the identity.
	if got := v.RotateByVector(Vector{1, 0}); !almostEqual(got, v) {
		t.Errorf("RotateByVector((1,0)) = %v, expected %v", got, v)
	}

	// (0, 1) is a +90 degree turn, same as RotateDegrees(90).
	if got, want := v.RotateByVector(Vector{0, 1}), v.RotateDegrees(90); !almostEqual(got, want) {
		t.Errorf("RotateByVector((0,1)) = %v, expected %v", got, want)
	}

	// A non-unit operand also scales.
	got := Vector{1, 0}.RotateByVector(Vector{0, 2})
	if !almostEqual(got, Vector{0, 2}) {
		t.Errorf("RotateByVector with |r|=2 = %v, expected (0,2)", got)
	}
}

func TestUnitFromAngle(t *testing.T) {
	for i := 0; i < 64; i++ {
		theta := float64(i) * 0.37
		v := UnitFromAngle(theta)
		if math.Abs(v.Length()-1) > eps {
			t.Errorf("|UnitFromAngle(%v)| = %v, expected 1", theta, v.Length())
		}
	}
	if got := UnitFromAngle(0); !almostEqual(got, Vector{1, 0}) {
		t.Errorf("UnitFromAngle(0) = %v, expected (1,0)", got)
	}
}

func TestLengthAndNormalize(t *testing.T) {
	if l := (Vector{3, 4}).Length(); l != 5 {
		t.Errorf("Length() = %v, expected 5", l)
	}
	if n := (Vector{0, -7}).Normalize(); !almostEqual(n, Vector{0, -1}) {
		t.Errorf("Normalize() = %v, expected (0,-1)", n)
	}
	if n := (Vector{}).Normalize(); n != (Vector{}) {
		t.Errorf("Normalize() of zero = %v, expected zero", n)
	}
}

func TestPointInPolygon(t *testing.T) {
	// Closed square centered at the origin, first vertex repeated.
	closed := []Vector{{-2, -2}, {2, -2}, {2, 2}, {-2, 2}, {-2, -2}}
	// Same square without the repeated vertex.
	open := closed[:4]

	tests := []struct {
		name     string
		p        Vector
		expected bool
	}{
		{"center", Vector{0, 0}, true},
		{"inside near edge", Vector{1.9, -1.9}, true},
		{"far outside", Vector{100, 100}, false},
		{"left of square", Vector{-3, 0}, false},
		{"right of square", Vector{3, 0}, false},
		{"above", Vector{0, -3}, false},
		{"below", Vector{0, 3}, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := PointInPolygon(tc.p, closed); got != tc.expected {
				t.Errorf("closed: PointInPolygon(%v) = %v, expected %v", tc.p, got, tc.expected)
			}
			if got := PointInPolygon(tc.p, open); got != tc.expected {
				t.Errorf("open: PointInPolygon(%v) = %v, expected %v", tc.p, got, tc.expected)
			}
		})
	}
}

func TestPointInPolygonConcave(t *testing.T) {
	// U shape: the notch between the arms is outside.
	u := []Vector{{0, 0}, {6, 0}, {6, 6}, {4, 6}, {4, 2}, {2, 2}, {2, 6}, {0, 6}, {0, 0}}

	if !PointInPolygon(Vector{1, 4}, u) {
		t.Error("left arm should be inside")
	}
	if !PointInPolygon(Vector{5, 4}, u) {
		t.Error("right arm should be inside")
	}
	if PointInPolygon(Vector{3, 4}, u) {
		t.Error("notch should be outside")
	}
	if !PointInPolygon(Vector{3, 1}, u) {
		t.Error("base should be inside")
	}
}

func TestPointInPolygonDegenerate(t *testing.T) {
	if PointInPolygon(Vector{0, 0}, nil) {
		t.Error("empty polygon should contain nothing")
	}
	if PointInPolygon(Vector{0, 0}, []Vector{{-1, 0}, {1, 0}}) {
		t.Error("segment should contain nothing")
	}
}
