package core

import (
	"fmt"
	"math/rand"
	"regexp"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// Color is a normalized RGBA color carried by each star.
// Channels are 0-255; alpha is 0.0-1.0.
type Color struct {
	R, G, B uint8
	A       float64
}

// ColorWhite is used when nothing else is configured.
var ColorWhite = Color{R: 255, G: 255, B: 255, A: 1}

var (
	hexPattern  = regexp.MustCompile(`^#([0-9a-fA-F]{3}|[0-9a-fA-F]{6})$`)
	rgbPattern  = regexp.MustCompile(`^rgb\(\s*(\d+)\s*,\s*(\d+)\s*,\s*(\d+)\s*\)$`)
	rgbaPattern = regexp.MustCompile(`^rgba\(\s*(\d+)\s*,\s*(\d+)\s*,\s*(\d+)\s*,\s*(\d+(?:\.\d+)?)\s*\)$`)
)

// NewColor creates an opaque color.
func NewColor(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b, A: 1}
}

// ParseColor converts a hex (#RRGGBB, #RGB), rgb(...) or rgba(...) string to a Color.
// The second result is false when the string is not a recognized color;
// callers fall back to a default in that case.
func ParseColor(s string) (Color, bool) {
	s = strings.TrimSpace(s)
	switch {
	case strings.HasPrefix(s, "#"):
		return parseHex(s)
	case strings.HasPrefix(s, "rgba("):
		return parseRGBA(s)
	case strings.HasPrefix(s, "rgb("):
		return parseRGB(s)
	}
	return Color{}, false
}

func parseHex(s string) (Color, bool) {
	if !hexPattern.MatchString(s) {
		return Color{}, false
	}
	c, err := colorful.Hex(s)
	if err != nil {
		return Color{}, false
	}
	r, g, b := c.RGB255()
	return NewColor(r, g, b), true
}

func parseRGB(s string) (Color, bool) {
	m := rgbPattern.FindStringSubmatch(s)
	if m == nil {
		return Color{}, false
	}
	ch, ok := parseChannels(m[1:4])
	if !ok {
		return Color{}, false
	}
	return NewColor(ch[0], ch[1], ch[2]), true
}

func parseRGBA(s string) (Color, bool) {
	m := rgbaPattern.FindStringSubmatch(s)
	if m == nil {
		return Color{}, false
	}
	ch, ok := parseChannels(m[1:4])
	if !ok {
		return Color{}, false
	}
	a, err := strconv.ParseFloat(m[4], 64)
	if err != nil {
		return Color{}, false
	}
	return Color{R: ch[0], G: ch[1], B: ch[2], A: a}, true
}

// parseChannels converts decimal channel strings; values above 255 are rejected.
func parseChannels(parts []string) ([3]uint8, bool) {
	var out [3]uint8
	for i, p := range parts {
		v, err := strconv.ParseUint(p, 10, 8)
		if err != nil {
			return out, false
		}
		out[i] = uint8(v)
	}
	return out, true
}

// RandomColor returns a bright random color. Saturation and value stay high so
// stars remain visible on dark backgrounds.
func RandomColor(rng *rand.Rand) Color {
	c := colorful.Hsv(rng.Float64()*360, 0.5+rng.Float64()*0.5, 0.8+rng.Float64()*0.2)
	r, g, b := c.Clamped().RGB255()
	return NewColor(r, g, b)
}

// Opacity returns a copy of the color with the given alpha.
func (c Color) Opacity(a float64) Color {
	c.A = a
	return c
}

// Colorful converts to a go-colorful color, ignoring alpha.
func (c Color) Colorful() colorful.Color {
	return colorful.Color{R: float64(c.R) / 255, G: float64(c.G) / 255, B: float64(c.B) / 255}
}

// Hex returns the #rrggbb form, ignoring alpha.
func (c Color) Hex() string {
	return c.Colorful().Hex()
}

// Blend mixes the color toward bg by (1 - alpha), for terminals without transparency.
func (c Color) Blend(bg Color) Color {
	mixed := bg.Colorful().BlendRgb(c.Colorful(), ClampF(c.A, 0, 1))
	r, g, b := mixed.Clamped().RGB255()
	return NewColor(r, g, b)
}

// String returns the rgba(...) form.
func (c Color) String() string {
	return fmt.Sprintf("rgba(%d, %d, %d, %g)", c.R, c.G, c.B, c.A)
}
