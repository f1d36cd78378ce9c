// Package fireworks implements the star simulation: stars spawned at a pointer,
// advanced in fixed steps, and retired once they leave the viewport or age out.
package fireworks

import (
	"fmt"

	"github.com/vovakirdan/tui-fireworks/internal/config"
	"github.com/vovakirdan/tui-fireworks/internal/core"
)

// Star is a single simulated particle. Stars are owned by a State once inserted.
type Star struct {
	ID           uint64
	Position     core.Vector
	Velocity     core.Vector
	Acceleration core.Vector
	Size         float64 // Side length in pixels
	Age          float64 // Seconds since spawn
	Color        core.Color
	Shape        config.Shape
	Alive        bool
}

// Advance moves the star forward by elapsed seconds.
// Velocity is clamped to the configured maximum before it moves the star.
func (s *Star) Advance(elapsed float64, cfg *config.FireworksConfig) {
	s.Velocity = s.Velocity.Add(s.Acceleration.Scale(elapsed)).Clamp(cfg.MaxVelocity)
	s.Position = s.Position.Add(s.Velocity.Scale(elapsed))
	s.Size += elapsed * cfg.ExpansionRate
	s.Age += elapsed
}

// Footprint returns the box the star occupies, centered on its position.
func (s *Star) Footprint() core.Box {
	return footprint(s.Position, s.Size)
}

func footprint(center core.Vector, size float64) core.Box {
	start := center.Add(core.Square(-size / 2))
	return core.NewBox(start, start.Add(core.Square(size)))
}

// Snapshot returns the render-facing view of the star.
func (s *Star) Snapshot() Snapshot {
	return Snapshot{
		ID:       s.ID,
		Position: s.Position,
		Size:     s.Size,
		Shape:    s.Shape,
		Color:    s.Color,
	}
}

// String describes the star for logs.
func (s *Star) String() string {
	return fmt.Sprintf("<Star %d %s>", s.ID, s.Position)
}

// Snapshot is the data a renderer needs to draw one star.
type Snapshot struct {
	ID       uint64
	Position core.Vector
	Size     float64
	Shape    config.Shape
	Color    core.Color
}

// Footprint returns the box the star occupied when the snapshot was taken.
func (s Snapshot) Footprint() core.Box {
	return footprint(s.Position, s.Size)
}
