package geom

import (
	"math"
	"testing"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestFromAngle(t *testing.T) {
	tests := []struct {
		angle, mag float64
		want       Vec2
	}{
		{0, 1, Vec2{1, 0}},
		{math.Pi / 2, 1, Vec2{0, 1}},
		{math.Pi, 2, Vec2{-2, 0}},
		{-math.Pi / 2, 3, Vec2{0, -3}},
	}
	for _, tt := range tests {
		got := FromAngle(tt.angle, tt.mag)
		if !almostEqual(got.X, tt.want.X) || !almostEqual(got.Y, tt.want.Y) {
			t.Errorf("FromAngle(%g, %g) = %+v, want %+v", tt.angle, tt.mag, got, tt.want)
		}
	}
}

func TestPerpIsOrthogonal(t *testing.T) {
	vs := []Vec2{{1, 0}, {0, 1}, {3, -4}, {-2.5, 7.1}}
	for _, v := range vs {
		if d := v.Dot(v.Perp()); !almostEqual(d, 0) {
			t.Errorf("%+v.Dot(Perp()) = %g, want 0", v, d)
		}
		if !almostEqual(v.Perp().Len(), v.Len()) {
			t.Errorf("Perp changed length of %+v", v)
		}
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, lo, hi, want float64
	}{
		{5, 0, 10, 5},
		{-1, 0, 10, 0},
		{11, 0, 10, 10},
		{0, 0, 10, 0},
		{10, 0, 10, 10},
	}
	for _, tt := range tests {
		if got := Clamp(tt.val, tt.lo, tt.hi); got != tt.want {
			t.Errorf("Clamp(%g, %g, %g) = %g, want %g", tt.val, tt.lo, tt.hi, got, tt.want)
		}
	}
}

func TestWrapAngle(t *testing.T) {
	tests := []struct {
		in, want float64
	}{
		{0, 0},
		{3 * math.Pi, math.Pi},
		{-3 * math.Pi, -math.Pi},
		{math.Pi / 4, math.Pi / 4},
		{2*math.Pi + 0.5, 0.5},
	}
	for _, tt := range tests {
		if got := WrapAngle(tt.in); !almostEqual(got, tt.want) {
			t.Errorf("WrapAngle(%g) = %g, want %g", tt.in, got, tt.want)
		}
	}
}

func TestLenSqMatchesLen(t *testing.T) {
	v := Vec2{3, 4}
	if v.Len() != 5 {
		t.Fatalf("Len = %g, want 5", v.Len())
	}
	if v.LenSq() != 25 {
		t.Fatalf("LenSq = %g, want 25", v.LenSq())
	}
}
