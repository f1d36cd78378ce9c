// Package core provides fundamental types and utilities for the fireworks simulation.
// It contains no external dependencies on the terminal layer (especially no Bubble Tea)
// to keep simulation logic pure and testable.
package core

import "math"

// Box represents an axis-aligned bounding box in world coordinates.
// Construction normalizes the corners so Start <= End on both axes.
type Box struct {
	StartX, StartY float64 // Top-left corner
	EndX, EndY     float64 // Bottom-right corner
}

// NewBox creates a box spanning two arbitrary corners.
func NewBox(a, b Vector) Box {
	return Box{
		StartX: math.Min(a.X, b.X),
		StartY: math.Min(a.Y, b.Y),
		EndX:   math.Max(a.X, b.X),
		EndY:   math.Max(a.Y, b.Y),
	}
}

// TopLeft returns the start corner.
func (b Box) TopLeft() Vector {
	return Vector{X: b.StartX, Y: b.StartY}
}

// BottomRight returns the end corner.
func (b Box) BottomRight() Vector {
	return Vector{X: b.EndX, Y: b.EndY}
}

// Width returns the horizontal extent.
func (b Box) Width() float64 {
	return b.EndX - b.StartX
}

// Height returns the vertical extent.
func (b Box) Height() float64 {
	return b.EndY - b.StartY
}

// Center returns the midpoint of the box.
func (b Box) Center() Vector {
	return b.TopLeft().Average(b.BottomRight())
}

// Contains returns true if the point lies inside the box or on its edge.
func (b Box) Contains(p Vector) bool {
	return p.X >= b.StartX && p.X <= b.EndX && p.Y >= b.StartY && p.Y <= b.EndY
}

// ClampPoint returns p moved to the nearest point inside the box.
func (b Box) ClampPoint(p Vector) Vector {
	return NewVector(ClampF(p.X, b.StartX, b.EndX), ClampF(p.Y, b.StartY, b.EndY))
}

// Overlaps returns true if this box overlaps with another.
// Boxes that only share an edge or corner count as overlapping.
func (b Box) Overlaps(other Box) bool {
	// One box is completely to the left of the other
	if b.StartX > other.EndX || other.StartX > b.EndX {
		return false
	}
	// One box is completely above the other
	if b.StartY > other.EndY || other.StartY > b.EndY {
		return false
	}
	return true
}

// ClampF restricts a float64 value to be within [min, max].
func ClampF(val, min, max float64) float64 {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}
