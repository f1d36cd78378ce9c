package core

import (
	"strings"
	"testing"
)

func TestNewScreenIsBlank(t *testing.T) {
	s := NewScreen(6, 3)

	if s.Width() != 6 || s.Height() != 3 {
		t.Fatalf("size = %dx%d, expected 6x3", s.Width(), s.Height())
	}
	if got := s.String(); got != "      \n      \n      " {
		t.Errorf("new screen = %q, expected blanks", got)
	}

	empty := NewScreen(-2, 4)
	if empty.Width() != 0 || empty.String() != "\n\n\n" {
		t.Errorf("negative width should give an empty screen, got %dx%d %q", empty.Width(), empty.Height(), empty.String())
	}
}

func TestScreenCellsAndClipping(t *testing.T) {
	s := NewScreen(4, 4)
	red := NewColor(255, 0, 0)

	s.SetCell(1, 2, Cell{Rune: '■', Color: red})
	if got := s.GetCell(1, 2); got.Rune != '■' || got.Color != red {
		t.Errorf("GetCell(1, 2) = %+v, expected red ■", got)
	}

	for _, p := range [][2]int{{-1, 0}, {4, 0}, {0, -1}, {0, 4}} {
		s.SetCell(p[0], p[1], Cell{Rune: 'X'})
		if s.In(p[0], p[1]) {
			t.Errorf("In(%d, %d) should be false", p[0], p[1])
		}
		if got := s.Get(p[0], p[1]); got != ' ' {
			t.Errorf("off-screen Get(%d, %d) = %q, expected space", p[0], p[1], got)
		}
	}
	if strings.Contains(s.String(), "X") {
		t.Error("off-screen writes must not wrap onto the screen")
	}
}

func TestScreenFillRect(t *testing.T) {
	s := NewScreen(5, 3)
	s.FillRect(3, -1, 9, 1, Cell{Rune: '#'})

	expected := "   ##\n   ##\n     "
	if got := s.String(); got != expected {
		t.Errorf("FillRect result = %q, expected %q", got, expected)
	}
}

func TestScreenDrawText(t *testing.T) {
	s := NewScreen(8, 2)
	blue := NewColor(0, 0, 255)

	end := s.DrawText(5, 1, "héllo", blue)
	if end != 10 {
		t.Errorf("DrawText returned %d, expected 10", end)
	}
	if got := s.String(); got != "        \n     hél" {
		t.Errorf("clipped text = %q", got)
	}
	if s.GetCell(6, 1).Color != blue {
		t.Error("text cells should carry the color")
	}
}

func TestScreenResizeAndClear(t *testing.T) {
	s := NewScreen(10, 10)
	s.DrawText(0, 0, "Hello", ColorWhite)

	s.Resize(3, 2)
	if s.Width() != 3 || s.Height() != 2 || s.String() != "   \n   " {
		t.Errorf("Resize should clear to the new size, got %dx%d %q", s.Width(), s.Height(), s.String())
	}

	s.Resize(12, 12)
	s.FillRect(0, 0, 11, 11, Cell{Rune: 'x', Color: ColorWhite})
	s.Clear()
	for y := 0; y < s.Height(); y++ {
		for x := 0; x < s.Width(); x++ {
			if c := s.GetCell(x, y); c != blank {
				t.Fatalf("after Clear cell (%d, %d) = %+v", x, y, c)
			}
		}
	}
}
