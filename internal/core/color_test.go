package core

import (
	"math/rand"
	"testing"
)

func TestParseColor(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected Color
	}{
		{"hex", "#1234AB", NewColor(18, 52, 171)},
		{"lowercase hex", "#1234ab", NewColor(18, 52, 171)},
		{"short hex", "#AB2", NewColor(170, 187, 34)},
		{"lowercase short hex", "#ab2", NewColor(170, 187, 34)},
		{"rgb", "rgb(18,52,171)", NewColor(18, 52, 171)},
		{"rgb with spaces", "rgb(18, 52, 171)", NewColor(18, 52, 171)},
		{"rgba", "rgba(18,52,171,0.2)", Color{R: 18, G: 52, B: 171, A: 0.2}},
		{"rgba with spaces", "rgba(18, 52, 171, 0.2)", Color{R: 18, G: 52, B: 171, A: 0.2}},
		{"black short hex", "#000", NewColor(0, 0, 0)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := ParseColor(tc.input)
			if !ok {
				t.Fatalf("ParseColor(%q) reported no value", tc.input)
			}
			if got != tc.expected {
				t.Errorf("ParseColor(%q) = %s, expected %s", tc.input, got, tc.expected)
			}
		})
	}
}

func TestParseColorInvalid(t *testing.T) {
	inputs := []string{
		"abc",
		"invalid",
		"rgb()",
		"rgb(1,2,E)",
		"rgb(1, 2, E)",
		"rgb(1, 2, 300)",
		"rgba(1, 2, 3)",
		"#12",
		"#12345G",
		"#1234567",
		"",
	}

	for _, in := range inputs {
		if c, ok := ParseColor(in); ok {
			t.Errorf("ParseColor(%q) = %s, expected no value", in, c)
		}
	}
}

func TestColorFormatting(t *testing.T) {
	c := NewColor(18, 52, 171)

	if got := c.String(); got != "rgba(18, 52, 171, 1)" {
		t.Errorf("String() = %q", got)
	}
	if got := c.Hex(); got != "#1234ab" {
		t.Errorf("Hex() = %q", got)
	}

	faded := c.Opacity(0.5)
	if faded.A != 0.5 || c.A != 1 {
		t.Errorf("Opacity should return a copy, got %s from %s", faded, c)
	}
}

func TestColorBlend(t *testing.T) {
	black := NewColor(0, 0, 0)
	white := ColorWhite

	if got := white.Blend(black); got != NewColor(255, 255, 255) {
		t.Errorf("opaque Blend() = %s, expected white", got)
	}
	if got := white.Opacity(0).Blend(black); got != NewColor(0, 0, 0) {
		t.Errorf("transparent Blend() = %s, expected black", got)
	}
}

func TestRandomColorDeterministic(t *testing.T) {
	a := RandomColor(rand.New(rand.NewSource(3)))
	b := RandomColor(rand.New(rand.NewSource(3)))

	if a != b {
		t.Errorf("same seed produced %s and %s", a, b)
	}
	if a.A != 1 {
		t.Errorf("random colors should be opaque, got alpha %v", a.A)
	}
}
