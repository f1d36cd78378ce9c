package main

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadConfigLayering(t *testing.T) {
	path := filepath.Join(t.TempDir(), "show.yaml")
	if err := os.WriteFile(path, []byte("max_star_count: 50\nspawn_interval: 40\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	flagConfig, flagPreset, flagSet = path, "calm", []string{"max_star_count=7"}
	t.Cleanup(func() { flagConfig, flagPreset, flagSet = "", "", nil })

	cfg, err := loadConfig()
	if err != nil {
		t.Fatalf("loadConfig() failed: %v", err)
	}
	// The preset overrides the file, and --set overrides the preset
	if cfg.SpawnInterval != 250 {
		t.Errorf("SpawnInterval = %v, expected the calm preset's 250", cfg.SpawnInterval)
	}
	if cfg.MaxStarCount != 7 {
		t.Errorf("MaxStarCount = %d, expected the --set value 7", cfg.MaxStarCount)
	}
}

func TestLoadConfigErrors(t *testing.T) {
	tests := []struct {
		name   string
		preset string
		set    []string
	}{
		{"unknown preset", "chaos", nil},
		{"bad override", "", []string{"nope"}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			flagConfig, flagPreset, flagSet = "", tc.preset, tc.set
			t.Cleanup(func() { flagConfig, flagPreset, flagSet = "", "", nil })

			if _, err := loadConfig(); err == nil {
				t.Error("loadConfig() should fail")
			}
		})
	}
}

func TestNewLoggerLevels(t *testing.T) {
	flagLogLevel = "loud"
	t.Cleanup(func() { flagLogLevel = "info" })
	if _, _, err := newLogger("test", os.Stderr); err == nil {
		t.Error("an unknown log level should fail")
	}

	flagLogLevel = "debug"
	flagLogFile = filepath.Join(t.TempDir(), "out.log")
	t.Cleanup(func() { flagLogFile = "" })

	logger, closeLog, err := newLogger("test", os.Stderr)
	if err != nil {
		t.Fatalf("newLogger() failed: %v", err)
	}
	logger.Debug("hello", "k", 1)
	closeLog()

	data, err := os.ReadFile(flagLogFile)
	if err != nil || len(data) == 0 {
		t.Errorf("log file should contain the debug line, got %q (%v)", data, err)
	}
}
