// Package debug provides the metric observers the scheduler reports to,
// and the key sequence that reveals the debug overlay.
package debug

import (
	"fmt"
	"sort"

	"github.com/charmbracelet/log"
)

// Metric names reported by the simulation.
const (
	MetricStarCount      = "STAR_COUNT"
	MetricCursorVelocity = "CURSOR_VELOCITY"
	MetricRunning        = "RUNNING"
	MetricSpawned        = "SPAWNED"
	MetricSkippedSpawns  = "SKIPPED_SPAWNS"
	MetricSteps          = "STEPS"
)

// Observer receives named metric updates.
type Observer interface {
	OnMetric(name string, value any)
}

// Nop discards every metric.
type Nop struct{}

// OnMetric implements Observer.
func (Nop) OnMetric(string, any) {}

// Entry is one recorded metric.
type Entry struct {
	Name  string
	Value string
}

// Recorder keeps the latest value of each metric for display.
// Not safe for concurrent use; the simulation is single-threaded.
type Recorder struct {
	values map[string]string
}

// NewRecorder creates an empty recorder.
func NewRecorder() *Recorder {
	return &Recorder{values: make(map[string]string)}
}

// OnMetric implements Observer.
func (r *Recorder) OnMetric(name string, value any) {
	r.values[name] = fmt.Sprint(value)
}

// Value returns the latest value recorded for name.
func (r *Recorder) Value(name string) (string, bool) {
	v, ok := r.values[name]
	return v, ok
}

// Entries returns all recorded metrics sorted by name.
func (r *Recorder) Entries() []Entry {
	out := make([]Entry, 0, len(r.values))
	for name, v := range r.values {
		out = append(out, Entry{Name: name, Value: v})
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Name < out[j].Name
	})
	return out
}

// LogObserver forwards metrics to a logger at debug level.
type LogObserver struct {
	Logger *log.Logger
}

// OnMetric implements Observer.
func (o LogObserver) OnMetric(name string, value any) {
	o.Logger.Debug("metric", "name", name, "value", value)
}

// Multi fans a metric out to several observers in order.
type Multi []Observer

// OnMetric implements Observer.
func (m Multi) OnMetric(name string, value any) {
	for _, o := range m {
		o.OnMetric(name, value)
	}
}
