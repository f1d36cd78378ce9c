package fireworks

import (
	"errors"
	"io"
	"sort"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-fireworks/internal/config"
	"github.com/vovakirdan/tui-fireworks/internal/core"
	"github.com/vovakirdan/tui-fireworks/internal/debug"
)

// ErrFull is returned by Insert when the state already holds max_star_count stars.
var ErrFull = errors.New("fireworks: state is at max star count")

// State is the live set of stars keyed by id.
type State struct {
	cfg      *config.FireworksConfig
	stars    map[uint64]*Star
	observer debug.Observer
	logger   *log.Logger
}

// NewState creates an empty state. Nil observer and logger discard their output.
func NewState(cfg *config.FireworksConfig, observer debug.Observer, logger *log.Logger) *State {
	if observer == nil {
		observer = debug.Nop{}
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &State{
		cfg:      cfg,
		stars:    make(map[uint64]*Star),
		observer: observer,
		logger:   logger,
	}
}

// Count returns the number of live stars.
func (s *State) Count() int {
	return len(s.stars)
}

// HasRoom reports whether another star may be inserted.
func (s *State) HasRoom() bool {
	return len(s.stars) < s.cfg.MaxStarCount
}

// Insert adds star, replacing any star with the same id.
func (s *State) Insert(star *Star) error {
	if !s.HasRoom() {
		return ErrFull
	}
	s.stars[star.ID] = star
	return nil
}

// Get returns the star with the given id.
func (s *State) Get(id uint64) (*Star, bool) {
	star, ok := s.stars[id]
	return star, ok
}

// Tick advances every star by stepMs milliseconds and evicts those that
// left bounds or outlived the lifespan.
func (s *State) Tick(stepMs float64, bounds core.Box) {
	elapsed := stepMs / 1000
	for id, star := range s.stars {
		star.Advance(elapsed, s.cfg)
		if s.retained(star, bounds) {
			continue
		}
		star.Alive = false
		delete(s.stars, id)
		s.logger.Debug("removed star", "id", id, "age", star.Age, "pos", star.Position)
	}
	s.observer.OnMetric(debug.MetricStarCount, len(s.stars))
}

func (s *State) retained(star *Star, bounds core.Box) bool {
	return star.Alive &&
		bounds.Overlaps(star.Footprint()) &&
		star.Age < s.cfg.Lifespan
}

// Stars returns a snapshot of every live star ordered by id.
func (s *State) Stars() []Snapshot {
	out := make([]Snapshot, 0, len(s.stars))
	for _, star := range s.stars {
		out = append(out, star.Snapshot())
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].ID < out[j].ID
	})
	return out
}

// Reset removes every star.
func (s *State) Reset() {
	clear(s.stars)
	s.observer.OnMetric(debug.MetricStarCount, 0)
}
