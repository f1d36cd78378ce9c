// Package tui provides the Bubble Tea front end for the fireworks simulation.
// It feeds terminal time, mouse and focus events into the scheduler and
// rasterizes the stars into terminal cells.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent once per displayed frame.
type TickMsg time.Time

// tickCmd returns a Bubble Tea command that sends tick messages at the specified rate.
func tickCmd(tickRate int) tea.Cmd {
	if tickRate <= 0 {
		tickRate = 60
	}
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// millisSince converts t to fractional milliseconds after origin.
func millisSince(origin, t time.Time) float64 {
	return float64(t.Sub(origin)) / float64(time.Millisecond)
}
