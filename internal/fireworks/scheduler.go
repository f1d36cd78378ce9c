package fireworks

import (
	"errors"
	"io"
	"math/rand"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-fireworks/internal/config"
	"github.com/vovakirdan/tui-fireworks/internal/core"
	"github.com/vovakirdan/tui-fireworks/internal/debug"
)

// FixedStep is the simulation step in milliseconds.
const FixedStep = 1000.0 / 60.0

// BoundsProvider reports the current viewport in pixels.
type BoundsProvider interface {
	Bounds() core.Box
}

// PointerProvider reports where new stars appear, in pixels.
type PointerProvider interface {
	Position() core.Vector
}

// BoundsFunc adapts a function to BoundsProvider.
type BoundsFunc func() core.Box

// Bounds implements BoundsProvider.
func (f BoundsFunc) Bounds() core.Box { return f() }

// PointerFunc adapts a function to PointerProvider.
type PointerFunc func() core.Vector

// Position implements PointerProvider.
func (f PointerFunc) Position() core.Vector { return f() }

// Collaborators are the outside pieces a Scheduler talks to.
// Driver, Bounds and Pointer are required.
type Collaborators struct {
	Driver   FrameDriver
	Bounds   BoundsProvider
	Pointer  PointerProvider
	Observer debug.Observer
	Logger   *log.Logger
	Sampler  Sampler // Optional; defaults to a UniformSampler
}

// Scheduler advances the simulation in fixed steps and spawns stars at the
// pointer every spawn_interval milliseconds.
type Scheduler struct {
	cfg      *config.FireworksConfig
	state    *State
	spawner  *Spawner
	driver   FrameDriver
	bounds   BoundsProvider
	pointer  PointerProvider
	observer debug.Observer
	logger   *log.Logger
	sink     func([]Snapshot)

	running    bool
	generation uint64

	lastTimestamp    float64
	simAccumulator   float64
	spawnAccumulator float64
	prevPointer      core.Vector
	pointerVelocity  core.Vector

	steps   int
	spawned int
	skipped int
}

// NewScheduler creates a stopped scheduler with an empty state.
// cfg is shared and read at each use, so later edits take effect on the next tick.
func NewScheduler(cfg *config.FireworksConfig, seed int64, c Collaborators) *Scheduler {
	if c.Observer == nil {
		c.Observer = debug.Nop{}
	}
	if c.Logger == nil {
		c.Logger = log.New(io.Discard)
	}
	rng := rand.New(rand.NewSource(seed))

	return &Scheduler{
		cfg:         cfg,
		state:       NewState(cfg, c.Observer, c.Logger),
		spawner:     NewSpawner(cfg, rng, c.Sampler),
		driver:      c.Driver,
		bounds:      c.Bounds,
		pointer:     c.Pointer,
		observer:    c.Observer,
		logger:      c.Logger,
		prevPointer: c.Pointer.Position(),
	}
}

// State returns the star set the scheduler drives.
func (s *Scheduler) State() *State {
	return s.state
}

// Config returns the shared configuration.
func (s *Scheduler) Config() *config.FireworksConfig {
	return s.cfg
}

// Running reports whether frames are being scheduled.
func (s *Scheduler) Running() bool {
	return s.running
}

// PointerVelocity returns the pointer velocity measured on the last tick, in px/s.
func (s *Scheduler) PointerVelocity() core.Vector {
	return s.pointerVelocity
}

// SetRenderSink registers fn to receive the star snapshot after every handled tick.
func (s *Scheduler) SetRenderSink(fn func([]Snapshot)) {
	s.sink = fn
}

// Start begins requesting frames. Calling Start while running does nothing.
// Timing restarts from the driver's clock; accumulators and stars are kept.
func (s *Scheduler) Start() {
	if s.running {
		return
	}
	s.running = true
	s.generation++
	s.lastTimestamp = s.driver.Now()
	s.observer.OnMetric(debug.MetricRunning, true)
	s.logger.Debug("scheduler started", "at", s.lastTimestamp)
	s.driver.RequestFrame(s.frame(s.generation))
}

// Stop ceases scheduling. A frame already requested becomes a no-op.
func (s *Scheduler) Stop() {
	if !s.running {
		return
	}
	s.running = false
	s.generation++
	s.observer.OnMetric(debug.MetricRunning, false)
	s.logger.Debug("scheduler stopped", "stars", s.state.Count())
}

// Toggle stops a running scheduler and starts a stopped one.
func (s *Scheduler) Toggle() {
	if s.running {
		s.Stop()
	} else {
		s.Start()
	}
}

func (s *Scheduler) frame(generation uint64) func(float64) {
	return func(ts float64) {
		if !s.running || generation != s.generation {
			return
		}
		s.HandleTick(ts)
		if s.running && generation == s.generation {
			s.driver.RequestFrame(s.frame(generation))
		}
	}
}

// HandleTick processes one frame at timestampMs: it runs every simulation step
// the elapsed time owes, then every spawn check.
func (s *Scheduler) HandleTick(timestampMs float64) {
	diff := timestampMs - s.lastTimestamp
	s.lastTimestamp = timestampMs
	s.simAccumulator += diff
	s.spawnAccumulator += diff

	pos := s.pointer.Position()
	s.pointerVelocity = core.Zero
	if diff > 0 {
		s.pointerVelocity = pos.Sub(s.prevPointer).Scale(1000 / diff)
	}
	s.prevPointer = pos
	s.observer.OnMetric(debug.MetricCursorVelocity, s.pointerVelocity)

	bounds := s.bounds.Bounds()
	for s.simAccumulator >= FixedStep {
		s.state.Tick(FixedStep, bounds)
		s.simAccumulator -= FixedStep
		s.steps++
	}
	s.observer.OnMetric(debug.MetricSteps, s.steps)

	interval := s.cfg.SpawnInterval
	if interval > 0 {
		for s.spawnAccumulator >= interval {
			s.spawnAccumulator -= interval
			s.trySpawn(pos, s.pointerVelocity)
		}
	} else {
		// A non-positive interval owes unbounded spawns; fill instead.
		s.spawnAccumulator = 0
		s.fill(pos, s.pointerVelocity)
	}

	if s.sink != nil {
		s.sink(s.state.Stars())
	}
}

// trySpawn inserts one star, or skips the check when the state is full.
func (s *Scheduler) trySpawn(pos, bias core.Vector) bool {
	if !s.state.HasRoom() {
		s.skipped++
		s.observer.OnMetric(debug.MetricSkippedSpawns, s.skipped)
		s.logger.Debug("at max star count", "max", s.cfg.MaxStarCount)
		return false
	}
	star := s.spawner.Spawn(pos, bias)
	if err := s.state.Insert(star); err != nil {
		if errors.Is(err, ErrFull) {
			s.skipped++
		}
		return false
	}
	s.spawned++
	s.observer.OnMetric(debug.MetricSpawned, s.spawned)
	s.observer.OnMetric(debug.MetricStarCount, s.state.Count())
	s.logger.Debug("added star", "id", star.ID, "pos", star.Position, "acc", star.Acceleration)
	return true
}

// Fill spawns unbiased stars at the pointer until the state is full.
// It returns how many stars were added.
func (s *Scheduler) Fill() int {
	return s.fill(s.pointer.Position(), core.Zero)
}

func (s *Scheduler) fill(pos, bias core.Vector) int {
	n := 0
	for s.state.HasRoom() {
		if !s.trySpawn(pos, bias) {
			break
		}
		n++
	}
	return n
}

// UpdateConfig applies the set fields of p to the shared configuration.
func (s *Scheduler) UpdateConfig(p config.Partial) {
	config.Apply(s.cfg, p)
	s.logger.Info("config updated")
}

// Stats summarizes the scheduler counters.
type Stats struct {
	Stars   int
	Steps   int
	Spawned int
	Skipped int
}

// Stats returns the current counters.
func (s *Scheduler) Stats() Stats {
	return Stats{
		Stars:   s.state.Count(),
		Steps:   s.steps,
		Spawned: s.spawned,
		Skipped: s.skipped,
	}
}
