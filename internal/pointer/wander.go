package pointer

import (
	"github.com/aquilax/go-perlin"

	"github.com/vovakirdan/tui-fireworks/internal/core"
	"github.com/vovakirdan/tui-fireworks/internal/registry"
)

const (
	wanderAlpha = 2.0
	wanderBeta  = 2.0
	wanderOct   = 3
	wanderSpeed = 0.25 // Noise units per second
	wanderReach = 1.4  // Noise rarely reaches ±1, so stretch it toward the edges
)

// Wander drifts across the viewport along smooth Perlin noise.
// It ignores the mouse.
type Wander struct {
	noise *perlin.Perlin
	t     float64 // Seconds since Reset
	pos   core.Vector
}

// NewWander creates a noise-driven source. Reset seeds it.
func NewWander() *Wander {
	return &Wander{noise: perlin.NewPerlin(wanderAlpha, wanderBeta, wanderOct, 0)}
}

func (w *Wander) ID() string    { return "wander" }
func (w *Wander) Title() string { return "Wander (Perlin drift)" }

func (w *Wander) Reset(bounds core.Box, seed int64) {
	w.noise = perlin.NewPerlin(wanderAlpha, wanderBeta, wanderOct, seed)
	w.t = 0
	w.pos = w.sample(bounds)
}

func (w *Wander) Step(elapsedMs float64, bounds core.Box) {
	w.t += elapsedMs / 1000
	w.pos = w.sample(bounds)
}

// sample maps the noise at the current time into bounds.
// The two axes read distant rows of the field so they move independently.
func (w *Wander) sample(bounds core.Box) core.Vector {
	u := w.noise.Noise2D(w.t*wanderSpeed, 0)
	v := w.noise.Noise2D(w.t*wanderSpeed, 100)

	c := bounds.Center()
	x := c.X + u*wanderReach*bounds.Width()/2
	y := c.Y + v*wanderReach*bounds.Height()/2
	return bounds.ClampPoint(core.NewVector(x, y))
}

func (w *Wander) MoveTo(core.Vector) {}

func (w *Wander) Position() core.Vector {
	return w.pos
}

func init() {
	registry.Register("wander", func() registry.Source {
		return NewWander()
	})
}
