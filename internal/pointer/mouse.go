// Package pointer provides the spawn anchors stars appear at: the terminal
// mouse, eased or autonomous variants of it. Each source registers itself.
package pointer

import (
	"github.com/vovakirdan/tui-fireworks/internal/core"
	"github.com/vovakirdan/tui-fireworks/internal/registry"
)

// Mouse follows the reported pointer position exactly.
type Mouse struct {
	pos core.Vector
}

// NewMouse creates a mouse source at the origin.
func NewMouse() *Mouse {
	return &Mouse{}
}

func (m *Mouse) ID() string    { return "mouse" }
func (m *Mouse) Title() string { return "Mouse" }

// Reset centers the anchor until the first mouse event arrives.
func (m *Mouse) Reset(bounds core.Box, _ int64) {
	m.pos = bounds.Center()
}

func (m *Mouse) Step(float64, core.Box) {}

func (m *Mouse) MoveTo(p core.Vector) {
	m.pos = p
}

func (m *Mouse) Position() core.Vector {
	return m.pos
}

func init() {
	registry.Register("mouse", func() registry.Source {
		return NewMouse()
	})
}
