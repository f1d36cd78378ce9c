package debug

import (
	"bytes"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
)

func TestRecorderKeepsLatestSorted(t *testing.T) {
	r := NewRecorder()
	r.OnMetric(MetricStarCount, 3)
	r.OnMetric(MetricRunning, true)
	r.OnMetric(MetricStarCount, 7)

	if v, ok := r.Value(MetricStarCount); !ok || v != "7" {
		t.Errorf("Value(STAR_COUNT) = %q, %v; expected \"7\"", v, ok)
	}
	if _, ok := r.Value("MISSING"); ok {
		t.Error("Value of an unrecorded metric should report false")
	}

	entries := r.Entries()
	if len(entries) != 2 {
		t.Fatalf("Entries() returned %d entries, expected 2", len(entries))
	}
	if entries[0].Name != MetricRunning || entries[1].Name != MetricStarCount {
		t.Errorf("Entries() not sorted by name: %+v", entries)
	}
}

func TestMultiFansOut(t *testing.T) {
	a, b := NewRecorder(), NewRecorder()
	Multi{a, Nop{}, b}.OnMetric(MetricSpawned, 1)

	for i, r := range []*Recorder{a, b} {
		if v, _ := r.Value(MetricSpawned); v != "1" {
			t.Errorf("observer %d got %q, expected \"1\"", i, v)
		}
	}
}

func TestLogObserverWritesDebugLines(t *testing.T) {
	var buf bytes.Buffer
	logger := log.NewWithOptions(&buf, log.Options{Level: log.DebugLevel})

	LogObserver{Logger: logger}.OnMetric(MetricStarCount, 42)

	out := buf.String()
	if !strings.Contains(out, MetricStarCount) || !strings.Contains(out, "42") {
		t.Errorf("log output %q should mention the metric and value", out)
	}
}

func TestKonami(t *testing.T) {
	tests := []struct {
		name     string
		keys     []string
		expected bool
	}{
		{"exact sequence", KonamiSequence, true},
		{"extra leading up", append([]string{"up"}, KonamiSequence...), true},
		{"noise before", append([]string{"x", "enter", "a"}, KonamiSequence...), true},
		{"wrong key in the middle", []string{"up", "up", "down", "left", "left", "right", "left", "right", "b", "a", "enter"}, false},
		{"incomplete", KonamiSequence[:10], false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			k := NewKonami()
			fired := false
			for _, key := range tc.keys {
				if k.Press(key) {
					fired = true
				}
			}
			if fired != tc.expected {
				t.Errorf("sequence %v fired = %v, expected %v", tc.keys, fired, tc.expected)
			}
		})
	}
}

func TestKonamiRestartsAfterCompletion(t *testing.T) {
	k := NewKonami()
	for _, key := range KonamiSequence {
		k.Press(key)
	}
	if k.Progress() != 0 {
		t.Errorf("Progress() = %d after completion, expected 0", k.Progress())
	}

	// A mismatch that begins the sequence counts as its first key
	k.Press("up")
	k.Press("up")
	k.Press("down")
	k.Press("up")
	if k.Progress() != 1 {
		t.Errorf("Progress() = %d, expected 1", k.Progress())
	}
}
