package core

import "strings"

// Cell is one terminal character with its foreground color.
// The zero Color means no foreground: the cell shows only the background.
type Cell struct {
	Rune  rune
	Color Color
}

// blank is the content of a cleared cell.
var blank = Cell{Rune: ' '}

// Screen is a row-major grid of cells the star field is rasterized into.
// The platform turns it into styled terminal output.
type Screen struct {
	width, height int
	cells         []Cell
}

// NewScreen creates a cleared screen. Negative sizes are treated as zero.
func NewScreen(width, height int) *Screen {
	s := &Screen{}
	s.Resize(width, height)
	return s
}

// Width returns the screen width in cells.
func (s *Screen) Width() int { return s.width }

// Height returns the screen height in cells.
func (s *Screen) Height() int { return s.height }

// Resize changes the dimensions and clears the screen.
// Every frame is redrawn from scratch, so old content is not kept.
func (s *Screen) Resize(width, height int) {
	s.width, s.height = max(width, 0), max(height, 0)
	n := s.width * s.height
	if cap(s.cells) >= n {
		s.cells = s.cells[:n]
	} else {
		s.cells = make([]Cell, n)
	}
	s.Clear()
}

// Clear blanks every cell.
func (s *Screen) Clear() {
	for i := range s.cells {
		s.cells[i] = blank
	}
}

// In reports whether (x, y) is on the screen.
func (s *Screen) In(x, y int) bool {
	return x >= 0 && x < s.width && y >= 0 && y < s.height
}

// SetCell writes c at (x, y). Off-screen writes are dropped.
func (s *Screen) SetCell(x, y int, c Cell) {
	if s.In(x, y) {
		s.cells[y*s.width+x] = c
	}
}

// GetCell returns the cell at (x, y), or a blank cell off-screen.
func (s *Screen) GetCell(x, y int) Cell {
	if !s.In(x, y) {
		return blank
	}
	return s.cells[y*s.width+x]
}

// Get returns the rune at (x, y).
func (s *Screen) Get(x, y int) rune {
	return s.GetCell(x, y).Rune
}

// FillRect writes c to every cell in the inclusive rectangle, clipped to the screen.
func (s *Screen) FillRect(x0, y0, x1, y1 int, c Cell) {
	x0, y0 = max(x0, 0), max(y0, 0)
	x1, y1 = min(x1, s.width-1), min(y1, s.height-1)
	for y := y0; y <= y1; y++ {
		row := s.cells[y*s.width : (y+1)*s.width]
		for x := x0; x <= x1; x++ {
			row[x] = c
		}
	}
}

// DrawText writes text left to right from (x, y) in color, one rune per cell.
// Returns the column after the last rune.
func (s *Screen) DrawText(x, y int, text string, color Color) int {
	for _, r := range text {
		s.SetCell(x, y, Cell{Rune: r, Color: color})
		x++
	}
	return x
}

// String returns the runes without colors, rows joined by newlines.
func (s *Screen) String() string {
	var sb strings.Builder
	sb.Grow(len(s.cells) + s.height)
	for y := 0; y < s.height; y++ {
		if y > 0 {
			sb.WriteByte('\n')
		}
		for _, c := range s.cells[y*s.width : (y+1)*s.width] {
			sb.WriteRune(c.Rune)
		}
	}
	return sb.String()
}
