package core

import "math"

// RuntimeConfig contains configuration passed to the simulation at initialization.
// The platform layer fills it from the terminal size and CLI flags.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Frames per second requested from the platform (default 60)
	Seed     int64 // RNG seed for deterministic runs
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// Viewport returns the world-space bounds of the screen, where one character
// cell covers cellW x cellH world units.
func (c RuntimeConfig) Viewport(cellW, cellH float64) Box {
	return NewBox(Zero, NewVector(float64(c.ScreenW)*cellW, float64(c.ScreenH)*cellH))
}

// CellAt maps a world position to the character cell containing it.
func CellAt(p Vector, cellW, cellH float64) (int, int) {
	return int(math.Floor(p.X / cellW)), int(math.Floor(p.Y / cellH))
}

// CellCenter maps a character cell to the world position at its center.
func CellCenter(x, y int, cellW, cellH float64) Vector {
	return NewVector((float64(x)+0.5)*cellW, (float64(y)+0.5)*cellH)
}
