package config

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Load loads the fireworks configuration.
// Search order: customPath -> ~/.fireworks/config.yaml -> ./configs/fireworks.yaml -> embedded default.
// Files are layered over the defaults, so they only need the keys they change.
func Load(customPath string) (FireworksConfig, error) {
	cfg := Defaults()

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("config: failed to parse %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("config.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			layered := cfg
			if err := yaml.Unmarshal(data, &layered); err == nil {
				return layered, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile("configs/fireworks.yaml"); err == nil {
		layered := cfg
		if err := yaml.Unmarshal(data, &layered); err == nil {
			return layered, nil
		}
	}

	return cfg, nil
}

// Defaults returns the embedded default configuration.
func Defaults() FireworksConfig {
	cfg := DefaultFireworksConfig()
	if err := yaml.Unmarshal(defaultFireworksYAML, &cfg); err != nil {
		return DefaultFireworksConfig() // Fallback to hardcoded if embed fails
	}
	return cfg
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".fireworks", filename)
}

// ParseOverrides builds a Partial from key=value pairs such as "max_velocity=500".
// Keys are the YAML names of FireworksConfig; unknown keys are an error.
func ParseOverrides(pairs []string) (Partial, error) {
	var p Partial
	if len(pairs) == 0 {
		return p, nil
	}

	// Build the mapping as a node so values like "#fff" stay scalars instead of comments
	doc := &yaml.Node{Kind: yaml.MappingNode}
	for _, pair := range pairs {
		key, value, ok := strings.Cut(pair, "=")
		key = strings.TrimSpace(key)
		if !ok || key == "" {
			return p, fmt.Errorf("config: override %q is not key=value", pair)
		}
		doc.Content = append(doc.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Value: key},
			&yaml.Node{Kind: yaml.ScalarNode, Value: strings.TrimSpace(value)},
		)
	}

	data, err := yaml.Marshal(doc)
	if err != nil {
		return p, fmt.Errorf("config: cannot encode overrides: %w", err)
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&p); err != nil {
		return p, fmt.Errorf("config: invalid override: %w", err)
	}
	return p, nil
}

// Marshal renders the configuration as YAML.
func Marshal(cfg FireworksConfig) ([]byte, error) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("config: cannot encode: %w", err)
	}
	return data, nil
}
