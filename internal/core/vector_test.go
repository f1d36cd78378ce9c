package core

import (
	"math"
	"math/rand"
	"testing"
)

func approx(a, b float64) bool {
	return math.Abs(a-b) <= Precision
}

func TestVectorEquals(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Vector
		expected bool
	}{
		{"identical zero vectors", Zero, NewVector(0, 0), true},
		{"equal within precision", NewVector(0.33333333, 1), NewVector(0.33333335, 1), true},
		{"unequal x", NewVector(5, 1), NewVector(4, 1), false},
		{"unequal y just past precision", NewVector(1, 1), NewVector(1, 1+2e-6), false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.a.Equals(tc.b); got != tc.expected {
				t.Errorf("%s.Equals(%s) = %v, expected %v", tc.a, tc.b, got, tc.expected)
			}
		})
	}
}

func TestVectorArithmetic(t *testing.T) {
	a := NewVector(1, 2)
	b := NewVector(3, -4)

	if got := a.Add(b); !got.Equals(NewVector(4, -2)) {
		t.Errorf("Add() = %s", got)
	}
	if got := a.Sub(b); !got.Equals(NewVector(-2, 6)) {
		t.Errorf("Sub() = %s", got)
	}
	if got := b.Scale(-0.5); !got.Equals(NewVector(-1.5, 2)) {
		t.Errorf("Scale() = %s", got)
	}
	if got := b.Magnitude(); got != 5 {
		t.Errorf("Magnitude() = %v, expected 5", got)
	}
	if got := a.Distance(b); !approx(got, math.Sqrt(40)) {
		t.Errorf("Distance() = %v", got)
	}
	if got := NewVector(0, 1).Angle(); !approx(got, math.Pi/2) {
		t.Errorf("Angle() = %v, expected pi/2", got)
	}
	if got := NewVector(-1.5, 2.7).Floor(); !got.Equals(NewVector(-2, 2)) {
		t.Errorf("Floor() = %s", got)
	}
	if got := a.Average(b, NewVector(2, 5)); !got.Equals(NewVector(2, 1)) {
		t.Errorf("Average() = %s, expected (2, 1)", got)
	}
	if got := Square(3); !got.Equals(NewVector(3, 3)) {
		t.Errorf("Square() = %s", got)
	}
	// Inputs must be untouched
	if !a.Equals(NewVector(1, 2)) || !b.Equals(NewVector(3, -4)) {
		t.Error("vector operations must not modify their operands")
	}
}

func TestVectorRotate(t *testing.T) {
	unit := NewVector(1, 0)
	tests := []struct {
		angle    float64
		expected Vector
	}{
		{0, NewVector(1, 0)},
		{math.Pi / 2, NewVector(0, 1)},
		{math.Pi, NewVector(-1, 0)},
		{3 * math.Pi / 2, NewVector(0, -1)},
		{2 * math.Pi, NewVector(1, 0)},
		{math.Pi / 4, NewVector(math.Sqrt2/2, math.Sqrt2/2)},
	}

	for _, tc := range tests {
		if got := unit.Rotate(tc.angle); !got.Equals(tc.expected) {
			t.Errorf("Rotate(%v) = %s, expected %s", tc.angle, got, tc.expected)
		}
	}
}

func TestVectorRotateRoundTrip(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for i := 0; i < 200; i++ {
		v := NewVector(rng.Float64()*200-100, rng.Float64()*200-100)
		theta := rng.Float64()*4*math.Pi - 2*math.Pi

		if got := v.Rotate(theta).Rotate(-theta); !got.Equals(v) {
			t.Fatalf("Rotate(%v).Rotate(-%v) of %s = %s", theta, theta, v, got)
		}
		if got := v.Rotate(2 * math.Pi); !got.Equals(v) {
			t.Fatalf("Rotate(2pi) of %s = %s", v, got)
		}
	}
}

func TestVectorClamp(t *testing.T) {
	tests := []struct {
		name     string
		v        Vector
		max, min float64
		expected Vector
	}{
		{"within range unchanged", NewVector(0, 6), 7, 0, NewVector(0, 6)},
		{"reduced to max", NewVector(0, 6), 5, 0, NewVector(0, 5)},
		{"raised to min", NewVector(0, 3), 10, 4, NewVector(0, 4)},
		{"diagonal keeps direction", NewVector(3, 4), 2.5, 0, NewVector(1.5, 2)},
		{"zero stays zero", Zero, 10, 4, Zero},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.v.ClampRange(tc.max, tc.min); !got.Equals(tc.expected) {
				t.Errorf("ClampRange(%v, %v) of %s = %s, expected %s", tc.max, tc.min, tc.v, got, tc.expected)
			}
		})
	}

	if got := NewVector(0, 6).Clamp(5); !got.Equals(NewVector(0, 5)) {
		t.Errorf("Clamp(5) = %s, expected (0, 5)", got)
	}
}

func TestVectorClampMagnitudeBounds(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	for i := 0; i < 500; i++ {
		v := NewVector(rng.Float64()*40-20, rng.Float64()*40-20)
		min := rng.Float64() * 5
		max := min + rng.Float64()*10

		m := v.ClampRange(max, min).Magnitude()
		if m < min-Precision || m > max+Precision {
			t.Fatalf("ClampRange(%v, %v) of %s has magnitude %v", max, min, v, m)
		}
		if got := v.ClampRange(max, min); !approx(got.Angle(), v.Angle()) {
			t.Fatalf("ClampRange changed the direction of %s", v)
		}
	}
}

func TestFromVector(t *testing.T) {
	tests := []struct {
		dir       Vector
		magnitude float64
	}{
		{NewVector(1, 1), 5},
		{NewVector(3, 7), 8},
		{NewVector(-2, 0.5), 0.25},
	}

	for _, tc := range tests {
		v := FromVector(tc.dir, tc.magnitude)
		if !approx(v.Magnitude(), tc.magnitude) {
			t.Errorf("FromVector(%s, %v) magnitude = %v", tc.dir, tc.magnitude, v.Magnitude())
		}
		if !approx(v.Angle(), tc.dir.Angle()) {
			t.Errorf("FromVector(%s, %v) angle = %v, expected %v", tc.dir, tc.magnitude, v.Angle(), tc.dir.Angle())
		}
	}
}

func TestNormalizeZeroPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Normalize of the zero vector should panic")
		}
	}()
	Zero.Normalize()
}

func TestVectorString(t *testing.T) {
	if got := NewVector(1.5, -2).String(); got != "(1.5, -2)" {
		t.Errorf("String() = %q", got)
	}
}
