package fireworks

import (
	"math/rand"

	"github.com/vovakirdan/tui-fireworks/internal/config"
	"github.com/vovakirdan/tui-fireworks/internal/core"
)

// Sampler produces random accelerations for new stars.
// Implementations keep the magnitude at or below the configured maximum.
type Sampler interface {
	Sample() core.Vector
}

// UniformSampler draws each component uniformly from [-max, max], floors it,
// and clamps the result into [min_acceleration, max_acceleration].
type UniformSampler struct {
	cfg *config.FireworksConfig
	rng *rand.Rand
}

// NewUniformSampler creates a sampler reading limits from cfg at each call.
func NewUniformSampler(cfg *config.FireworksConfig, rng *rand.Rand) *UniformSampler {
	return &UniformSampler{cfg: cfg, rng: rng}
}

// Sample implements Sampler.
func (u *UniformSampler) Sample() core.Vector {
	max := u.cfg.MaxAcceleration
	v := core.NewVector(
		u.rng.Float64()*max*2-max,
		u.rng.Float64()*max*2-max,
	)
	// Floor first: flooring a negative component can grow the magnitude past max
	return v.Floor().ClampRange(max, u.cfg.MinAcceleration)
}
