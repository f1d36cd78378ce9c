package config

import "fmt"

// Preset represents a named intensity level for the show.
type Preset string

const (
	PresetCalm   Preset = "calm"
	PresetNormal Preset = "normal"
	PresetFrenzy Preset = "frenzy"
)

// PresetNames lists the accepted presets in display order.
var PresetNames = []Preset{PresetCalm, PresetNormal, PresetFrenzy}

// ParsePreset validates a preset name. The empty string means no preset.
func ParsePreset(name string) (Preset, error) {
	if name == "" {
		return "", nil
	}
	for _, p := range PresetNames {
		if string(p) == name {
			return p, nil
		}
	}
	return "", fmt.Errorf("config: unknown preset %q (want one of %v)", name, PresetNames)
}

// ApplyPreset modifies the config based on a preset.
// Normal and the empty preset leave the config as loaded.
func ApplyPreset(cfg *FireworksConfig, preset Preset) {
	switch preset {
	case PresetCalm:
		cfg.SpawnInterval = 250
		cfg.MaxStarCount = 150
		cfg.MaxAcceleration = 300
		cfg.MaxVelocity = 400
		cfg.ExpansionRate = 6
	case PresetFrenzy:
		cfg.SpawnInterval = 5
		cfg.MaxStarCount = 4000
		cfg.MaxAcceleration = 1500
		cfg.MaxVelocity = 2000
		cfg.ExpansionRate = 20
	}
}
