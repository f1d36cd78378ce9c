package pointer

import (
	"math"

	"github.com/vovakirdan/tui-fireworks/internal/core"
	"github.com/vovakirdan/tui-fireworks/internal/registry"
)

const (
	orbitSpeed  = math.Pi / 2 // Radians per second
	orbitRadius = 0.35        // Fraction of the shorter viewport side
)

// Orbit circles a center point, flattened against the viewport edges.
// Mouse motion moves the center.
type Orbit struct {
	center core.Vector
	angle  float64
	pos    core.Vector
	moved  bool // center was set by the mouse
}

// NewOrbit creates an orbiting source.
func NewOrbit() *Orbit {
	return &Orbit{}
}

func (o *Orbit) ID() string    { return "orbit" }
func (o *Orbit) Title() string { return "Orbit" }

func (o *Orbit) Reset(bounds core.Box, seed int64) {
	o.center = bounds.Center()
	o.moved = false
	// Start somewhere different per seed
	o.angle = float64(seed%360) * math.Pi / 180
	o.pos = o.at(bounds)
}

func (o *Orbit) Step(elapsedMs float64, bounds core.Box) {
	if !o.moved {
		o.center = bounds.Center()
	}
	o.angle = math.Mod(o.angle+orbitSpeed*elapsedMs/1000, 2*math.Pi)
	o.pos = o.at(bounds)
}

func (o *Orbit) at(bounds core.Box) core.Vector {
	r := math.Min(bounds.Width(), bounds.Height()) * orbitRadius
	return bounds.ClampPoint(o.center.Add(core.NewVector(r, 0).Rotate(o.angle)))
}

func (o *Orbit) MoveTo(p core.Vector) {
	o.center = p
	o.moved = true
}

func (o *Orbit) Position() core.Vector {
	return o.pos
}

func init() {
	registry.Register("orbit", func() registry.Source {
		return NewOrbit()
	})
}
