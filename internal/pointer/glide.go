package pointer

import (
	"github.com/charmbracelet/harmonica"

	"github.com/vovakirdan/tui-fireworks/internal/core"
	"github.com/vovakirdan/tui-fireworks/internal/registry"
)

const (
	glideFrequency = 6.0
	glideDamping   = 0.6 // Under-damped, so the anchor overshoots a little
)

// Glide eases toward the reported pointer with a damped spring per axis.
type Glide struct {
	spring harmonica.Spring
	dt     float64 // Seconds the spring coefficients were built for

	pos    core.Vector
	vel    core.Vector
	target core.Vector
}

// NewGlide creates a spring-eased mouse source.
func NewGlide() *Glide {
	return &Glide{}
}

func (g *Glide) ID() string    { return "glide" }
func (g *Glide) Title() string { return "Glide (spring-eased mouse)" }

func (g *Glide) Reset(bounds core.Box, _ int64) {
	g.pos = bounds.Center()
	g.target = g.pos
	g.vel = core.Zero
}

// Step moves the anchor along the spring toward the target.
func (g *Glide) Step(elapsedMs float64, bounds core.Box) {
	if elapsedMs <= 0 {
		return
	}
	dt := elapsedMs / 1000
	if dt != g.dt {
		g.spring = harmonica.NewSpring(dt, glideFrequency, glideDamping)
		g.dt = dt
	}

	x, vx := g.spring.Update(g.pos.X, g.vel.X, g.target.X)
	y, vy := g.spring.Update(g.pos.Y, g.vel.Y, g.target.Y)
	g.pos = bounds.ClampPoint(core.NewVector(x, y))
	g.vel = core.NewVector(vx, vy)
}

func (g *Glide) MoveTo(p core.Vector) {
	g.target = p
}

func (g *Glide) Position() core.Vector {
	return g.pos
}

func init() {
	registry.Register("glide", func() registry.Source {
		return NewGlide()
	})
}
