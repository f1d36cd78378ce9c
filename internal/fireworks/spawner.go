package fireworks

import (
	"math"
	"math/rand"

	"github.com/vovakirdan/tui-fireworks/internal/config"
	"github.com/vovakirdan/tui-fireworks/internal/core"
)

// starShapes are the concrete shapes picked from when the config asks for random.
var starShapes = []config.Shape{config.ShapeSquare, config.ShapeCircle}

// Spawner builds new stars with unique ids.
type Spawner struct {
	cfg     *config.FireworksConfig
	rng     *rand.Rand
	sampler Sampler
	nextID  uint64
}

// NewSpawner creates a spawner. A nil sampler uses a UniformSampler on rng.
func NewSpawner(cfg *config.FireworksConfig, rng *rand.Rand, sampler Sampler) *Spawner {
	if sampler == nil {
		sampler = NewUniformSampler(cfg, rng)
	}
	return &Spawner{
		cfg:     cfg,
		rng:     rng,
		sampler: sampler,
	}
}

// Spawn creates a star at position. A non-zero bias (the pointer velocity) turns the
// sampled acceleration toward the bias heading, within bias_spread degrees either way,
// while keeping the sampled magnitude.
func (s *Spawner) Spawn(position, bias core.Vector) *Star {
	acc := s.sampler.Sample()
	vel := core.Zero
	if !bias.IsZero() {
		spread := s.cfg.BiasSpread * math.Pi / 180
		offset := (s.rng.Float64()*2 - 1) * spread
		acc = bias.Normalize().Rotate(offset).Scale(acc.Magnitude())
		vel = bias.Scale(s.cfg.InheritVelocity).Clamp(s.cfg.MaxVelocity)
	}

	star := &Star{
		ID:           s.nextID,
		Position:     position,
		Velocity:     vel,
		Acceleration: acc,
		Size:         s.cfg.StarSize,
		Color:        s.color(),
		Shape:        s.shape(),
		Alive:        true,
	}
	s.nextID++
	return star
}

// shape resolves the configured shape, picking uniformly for random.
func (s *Spawner) shape() config.Shape {
	if s.cfg.StarShape == config.ShapeRandom {
		return starShapes[s.rng.Intn(len(starShapes))]
	}
	return s.cfg.StarShape
}

// color resolves the configured star color. Unparsable colors fall through to random.
func (s *Spawner) color() core.Color {
	if s.cfg.StarColor != config.ColorRandom {
		if c, ok := core.ParseColor(s.cfg.StarColor); ok {
			return c
		}
	}
	return core.RandomColor(s.rng)
}
