package core

import "testing"

func TestRectEdges(t *testing.T) {
	r := NewRect(5, 10, 20, 15)

	if r.Right() != 25 {
		t.Errorf("Right() = %d, expected 25", r.Right())
	}
	if r.Bottom() != 25 {
		t.Errorf("Bottom() = %d, expected 25", r.Bottom())
	}
}

func TestRectFIntersects(t *testing.T) {
	tests := []struct {
		name     string
		a, b     RectF
		expected bool
	}{
		{"overlap", NewRectF(0, 0, 10, 10), NewRectF(9.5, 9.5, 4, 4), true},
		{"touching edge", NewRectF(0, 0, 10, 10), NewRectF(10, 0, 5, 5), false},
		{"ball inside brick", NewRectF(5, 50, 75, 20), CenteredRectF(40, 60, 15, 15), true},
		{"far apart", NewRectF(0, 0, 1, 1), NewRectF(100, 100, 1, 1), false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.a.Intersects(tc.b); got != tc.expected {
				t.Errorf("Intersects() = %v, expected %v", got, tc.expected)
			}
			if got := tc.b.Intersects(tc.a); got != tc.expected {
				t.Errorf("Intersects() (reversed) = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestCenteredRectF(t *testing.T) {
	r := CenteredRectF(100, 50, 20, 10)
	if r.X != 90 || r.Y != 45 {
		t.Errorf("CenteredRectF origin = (%v, %v), expected (90, 45)", r.X, r.Y)
	}
	c := r.Center()
	if c.X != 100 || c.Y != 50 {
		t.Errorf("Center() = %+v, expected (100, 50)", c)
	}
}

func TestVec2(t *testing.T) {
	v := Vec2{X: 3, Y: 4}
	if v.Len() != 5 {
		t.Errorf("Len() = %v, expected 5", v.Len())
	}
	if got := v.Add(Vec2{X: 1, Y: 1}); got != (Vec2{X: 4, Y: 5}) {
		t.Errorf("Add() = %+v", got)
	}
	if got := v.Scale(2); got != (Vec2{X: 6, Y: 8}) {
		t.Errorf("Scale() = %+v", got)
	}
	if l := FromAngle(1.2, 7).Len(); l < 6.999 || l > 7.001 {
		t.Errorf("FromAngle length = %v, expected 7", l)
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, min, max, expected int
	}{
		{5, 0, 10, 5},   // within range
		{-5, 0, 10, 0},  // below min
		{15, 0, 10, 10}, // above max
		{0, 0, 10, 0},   // at min
		{10, 0, 10, 10}, // at max
	}

	for _, tc := range tests {
		result := Clamp(tc.val, tc.min, tc.max)
		if result != tc.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tc.val, tc.min, tc.max, result, tc.expected)
		}
	}
}

func TestClampF(t *testing.T) {
	tests := []struct {
		val, min, max, expected float64
	}{
		{5.5, 0.0, 10.0, 5.5},
		{-5.5, 0.0, 10.0, 0.0},
		{15.5, 0.0, 10.0, 10.0},
	}

	for _, tc := range tests {
		result := ClampF(tc.val, tc.min, tc.max)
		if result != tc.expected {
			t.Errorf("ClampF(%f, %f, %f) = %f, expected %f", tc.val, tc.min, tc.max, result, tc.expected)
		}
	}
}

func TestMax(t *testing.T) {
	if Max(5, 10) != 10 || Max(10, 5) != 10 {
		t.Error("Max returned wrong value")
	}
}
