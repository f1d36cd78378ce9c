package core

import (
	"fmt"
	"math"
)

// Precision is the absolute per-component tolerance used by Vector.Equals.
// Repeated rotation and scaling drift well below this.
const Precision = 1e-6

// Vector is a 2D point or displacement in world units (pixels).
// Vectors are values: every operation returns a new Vector.
type Vector struct {
	X, Y float64
}

// Zero is the shared zero vector. Safe to reuse since Vector is a value type.
var Zero = Vector{}

// NewVector creates a vector from its components.
func NewVector(x, y float64) Vector {
	return Vector{X: x, Y: y}
}

// Square returns a vector with both components set to val.
func Square(val float64) Vector {
	return Vector{X: val, Y: val}
}

// FromVector returns a vector pointing the same way as direction with the given magnitude.
// Panics if direction is the zero vector.
func FromVector(direction Vector, magnitude float64) Vector {
	return direction.Normalize().Scale(magnitude)
}

// Add returns the componentwise sum v + o.
func (v Vector) Add(o Vector) Vector {
	return Vector{X: v.X + o.X, Y: v.Y + o.Y}
}

// Sub returns the componentwise difference v - o.
func (v Vector) Sub(o Vector) Vector {
	return Vector{X: v.X - o.X, Y: v.Y - o.Y}
}

// Scale multiplies both components by k.
func (v Vector) Scale(k float64) Vector {
	return Vector{X: v.X * k, Y: v.Y * k}
}

// Magnitude returns the Euclidean length of v.
func (v Vector) Magnitude() float64 {
	return math.Hypot(v.X, v.Y)
}

// IsZero reports whether both components are exactly zero.
func (v Vector) IsZero() bool {
	return v.X == 0 && v.Y == 0
}

// Normalize returns the unit vector in the direction of v.
// Panics on the zero vector; callers guard with IsZero.
func (v Vector) Normalize() Vector {
	if v.IsZero() {
		panic("core: normalize of zero vector")
	}
	return v.Scale(1 / v.Magnitude())
}

// Rotate applies the standard 2D rotation matrix for the given angle in radians.
// With y pointing down the rotation appears clockwise on screen.
func (v Vector) Rotate(radians float64) Vector {
	sin, cos := math.Sincos(radians)
	return Vector{
		X: v.X*cos - v.Y*sin,
		Y: v.X*sin + v.Y*cos,
	}
}

// Clamp limits the magnitude of v to max. The zero vector is returned unchanged.
func (v Vector) Clamp(max float64) Vector {
	return v.ClampRange(max, 0)
}

// ClampRange limits the magnitude of v to [min, max] keeping its direction.
// The zero vector has no direction and is returned unchanged.
func (v Vector) ClampRange(max, min float64) Vector {
	if v.IsZero() {
		return v
	}
	m := v.Magnitude()
	switch {
	case m > max:
		m = max
	case m < min:
		m = min
	}
	return v.Normalize().Scale(m)
}

// Equals reports whether v and o match within Precision on both axes.
func (v Vector) Equals(o Vector) bool {
	return math.Abs(v.X-o.X) <= Precision && math.Abs(v.Y-o.Y) <= Precision
}

// Distance returns the Euclidean distance between v and o.
func (v Vector) Distance(o Vector) float64 {
	return v.Sub(o).Magnitude()
}

// Angle returns atan2(y, x) in radians.
func (v Vector) Angle() float64 {
	return math.Atan2(v.Y, v.X)
}

// Floor floors both components.
func (v Vector) Floor() Vector {
	return Vector{X: math.Floor(v.X), Y: math.Floor(v.Y)}
}

// Average returns the arithmetic mean of v and others.
func (v Vector) Average(others ...Vector) Vector {
	sum := v
	for _, o := range others {
		sum = sum.Add(o)
	}
	return sum.Scale(1 / float64(len(others)+1))
}

// String formats the vector as (x, y).
func (v Vector) String() string {
	return fmt.Sprintf("(%g, %g)", v.X, v.Y)
}
