package config

import (
	_ "embed"
)

//go:embed defaults/fireworks.yaml
var defaultFireworksYAML []byte

// DefaultFireworksConfig returns the built-in configuration.
// It matches defaults/fireworks.yaml and is used when the embedded file cannot be parsed.
func DefaultFireworksConfig() FireworksConfig {
	return FireworksConfig{
		StarColor:       ColorRandom,
		StarShape:       ShapeSquare,
		StarSize:        1,
		ExpansionRate:   10,
		BackgroundColor: "#000",

		MaxAcceleration: 800,
		MinAcceleration: 0,
		MaxVelocity:     1000,
		InheritVelocity: 0,
		BiasSpread:      90,

		SpawnInterval: 100,
		MaxStarCount:  1000,
		Lifespan:      5,

		CellWidth:  8,
		CellHeight: 16,

		ToggleOnFocusBlur: true,
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultFireworksYAML
}
