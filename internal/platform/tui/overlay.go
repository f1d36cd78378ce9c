package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/vovakirdan/tui-fireworks/internal/core"
	"github.com/vovakirdan/tui-fireworks/internal/debug"
)

var (
	overlayBorder = core.NewColor(128, 128, 128)
	overlayText   = core.ColorWhite
)

// Overlay is the read-only debug panel: live metrics and a few settings,
// followed by the key help. It is painted into the Screen over the stars.
type Overlay struct {
	table table.Model
	help  help.Model
	keys  KeyMap
}

// NewOverlay creates an overlay that lists keys from km.
func NewOverlay(km KeyMap) *Overlay {
	t := table.New(
		table.WithColumns([]table.Column{
			{Title: "Metric", Width: 16},
			{Title: "Value", Width: 22},
		}),
		table.WithFocused(false),
	)

	// The panel is drawn cell by cell, so styles only shape the layout
	s := table.DefaultStyles()
	s.Header = lipgloss.NewStyle().Padding(0, 1)
	s.Cell = lipgloss.NewStyle().Padding(0, 1)
	s.Selected = lipgloss.NewStyle()
	t.SetStyles(s)

	h := help.New()
	h.ShowAll = false

	return &Overlay{table: t, help: h, keys: km}
}

// SetRows replaces the metric rows. extra rows come after the recorded metrics.
func (o *Overlay) SetRows(entries []debug.Entry, extra ...debug.Entry) {
	rows := make([]table.Row, 0, len(entries)+len(extra))
	for _, e := range entries {
		rows = append(rows, table.Row{e.Name, e.Value})
	}
	for _, e := range extra {
		rows = append(rows, table.Row{e.Name, e.Value})
	}
	o.table.SetRows(rows)
	o.table.SetHeight(len(rows) + 1)
}

// ToggleHelp switches between the short and full key help.
func (o *Overlay) ToggleHelp() {
	o.help.ShowAll = !o.help.ShowAll
}

// Lines returns the panel content as plain text lines.
func (o *Overlay) Lines() []string {
	var lines []string
	for _, l := range strings.Split(o.table.View(), "\n") {
		lines = append(lines, strings.TrimRight(ansi.Strip(l), " "))
	}
	lines = append(lines, "")
	for _, l := range strings.Split(o.help.View(o.keys), "\n") {
		lines = append(lines, ansi.Strip(l))
	}
	return lines
}

// Draw paints a bordered panel with the content at the top-left of dst.
func (o *Overlay) Draw(dst *core.Screen) {
	lines := o.Lines()
	width := 0
	for _, l := range lines {
		width = max(width, ansi.StringWidth(l))
	}

	const x0, y0 = 1, 1
	x1, y1 := x0+width+3, y0+len(lines)+1

	dst.FillRect(x0, y0, x1, y1, core.Cell{Rune: ' ', Color: overlayText})
	dst.FillRect(x0+1, y0, x1-1, y0, core.Cell{Rune: '─', Color: overlayBorder})
	dst.FillRect(x0+1, y1, x1-1, y1, core.Cell{Rune: '─', Color: overlayBorder})
	dst.FillRect(x0, y0+1, x0, y1-1, core.Cell{Rune: '│', Color: overlayBorder})
	dst.FillRect(x1, y0+1, x1, y1-1, core.Cell{Rune: '│', Color: overlayBorder})
	dst.DrawText(x0, y0, "┌", overlayBorder)
	dst.DrawText(x1, y0, "┐", overlayBorder)
	dst.DrawText(x0, y1, "└", overlayBorder)
	dst.DrawText(x1, y1, "┘", overlayBorder)

	for i, l := range lines {
		dst.DrawText(x0+2, y0+1+i, l, overlayText)
	}
}
