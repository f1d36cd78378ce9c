package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-fireworks/internal/config"
	"github.com/vovakirdan/tui-fireworks/internal/core"
	"github.com/vovakirdan/tui-fireworks/internal/fireworks"
)

// glyphs per shape, from smaller than half a cell up to a full cell.
var glyphs = map[config.Shape][3]rune{
	config.ShapeSquare: {'▪', '■', '█'},
	config.ShapeCircle: {'·', '•', '●'},
}

// fillGlyphs cover every cell of a star larger than one cell.
var fillGlyphs = map[config.Shape]rune{
	config.ShapeSquare: '█',
	config.ShapeCircle: '●',
}

var defaultBackground = core.NewColor(0, 0, 0)

type styleKey struct {
	fg, bg core.Color
}

// Renderer rasterizes star snapshots into a Screen and turns the Screen
// into styled terminal output.
type Renderer struct {
	cfg    *config.FireworksConfig
	styles map[styleKey]lipgloss.Style
}

// NewRenderer creates a renderer reading cell size and background from cfg.
func NewRenderer(cfg *config.FireworksConfig) *Renderer {
	return &Renderer{
		cfg:    cfg,
		styles: make(map[styleKey]lipgloss.Style),
	}
}

// Background returns the configured background, or black if it does not parse.
func (r *Renderer) Background() core.Color {
	if c, ok := core.ParseColor(r.cfg.BackgroundColor); ok {
		return c
	}
	return defaultBackground
}

// Draw paints stars onto dst in order, so later stars cover earlier ones.
func (r *Renderer) Draw(dst *core.Screen, stars []fireworks.Snapshot) {
	cw, ch := r.cfg.CellWidth, r.cfg.CellHeight
	if cw <= 0 || ch <= 0 {
		return
	}
	bg := r.Background()

	for _, s := range stars {
		shape := s.Shape
		if _, ok := glyphs[shape]; !ok {
			shape = config.ShapeSquare
		}
		color := s.Color.Blend(bg)

		fp := s.Footprint()
		x0, y0 := core.CellAt(fp.TopLeft(), cw, ch)
		x1, y1 := core.CellAt(fp.BottomRight(), cw, ch)

		if x0 == x1 && y0 == y1 {
			dst.SetCell(x0, y0, core.Cell{Rune: glyphs[shape][sizeTier(s.Size, cw)], Color: color})
			continue
		}

		x0, y0 = max(x0, 0), max(y0, 0)
		x1, y1 = min(x1, dst.Width()-1), min(y1, dst.Height()-1)
		cx, cy := core.CellAt(s.Position, cw, ch)
		for y := y0; y <= y1; y++ {
			for x := x0; x <= x1; x++ {
				if shape == config.ShapeCircle && (x != cx || y != cy) &&
					core.CellCenter(x, y, cw, ch).Distance(s.Position) > s.Size/2 {
					continue
				}
				dst.SetCell(x, y, core.Cell{Rune: fillGlyphs[shape], Color: color})
			}
		}
	}
}

// sizeTier picks a glyph index for a star that fits in one cell.
func sizeTier(size, cellWidth float64) int {
	switch {
	case size < cellWidth/2:
		return 0
	case size < cellWidth:
		return 1
	default:
		return 2
	}
}

// style returns the cached style for a foreground over the background.
// Blank cells carry the zero color and get the background only.
func (r *Renderer) style(fg, bg core.Color) lipgloss.Style {
	k := styleKey{fg: fg, bg: bg}
	if st, ok := r.styles[k]; ok {
		return st
	}
	st := lipgloss.NewStyle().Background(lipgloss.Color(bg.Hex()))
	if fg != (core.Color{}) {
		st = st.Foreground(lipgloss.Color(fg.Hex()))
	}
	r.styles[k] = st
	return st
}

// Render converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func (r *Renderer) Render(s *core.Screen) string {
	bg := r.Background()

	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			startColor := s.GetCell(x, y).Color

			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}
			sb.WriteString(r.style(startColor, bg).Render(run.String()))
		}
	}
	return sb.String()
}
