package main

import (
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-fireworks/internal/config"
	"github.com/vovakirdan/tui-fireworks/internal/core"
	"github.com/vovakirdan/tui-fireworks/internal/platform/tui"
	"github.com/vovakirdan/tui-fireworks/internal/registry"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Pick a pointer source and preset interactively",
	Long: `Start with a picker menu. After a show ends you return to the menu.

Controls:
  Up/Down/j/k     - Choose pointer source
  Left/Right/Tab  - Choose preset
  Enter/Space     - Start the show
  Q/Esc           - Quit

Examples:
  fireworks menu
  fireworks menu --fps 30 --set star_shape=circle`,
	Args: cobra.NoArgs,
	Run:  runMenu,
}

func runMenu(_ *cobra.Command, _ []string) {
	logger, closeLog, err := newLogger("fireworks", io.Discard)
	if err != nil {
		fail("%v", err)
	}
	defer closeLog()

	width, height := 80, 24
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}
	rt := core.RuntimeConfig{ScreenW: width, ScreenH: height, TickRate: flagFPS}

	preset, err := config.ParsePreset(flagPreset)
	if err != nil {
		fail("%v", err)
	}
	sourceID := "mouse"

	for {
		result, err := tui.RunMenu(rt, sourceID, preset)
		if err != nil {
			fail("%v", err)
		}
		rt = result.Config
		if result.Quit {
			return
		}
		sourceID, preset = result.SourceID, result.Preset

		// The chosen preset replaces --preset; --set still wins
		flagPreset = string(preset)
		cfg, err := loadConfig()
		if err != nil {
			fail("%v", err)
		}

		source, err := registry.Create(sourceID)
		if err != nil {
			fail("%v", err)
		}

		rt.Seed = seed()
		logger.Info("starting from menu", "source", sourceID, "preset", preset)
		if err := tui.Run(tui.Options{Config: cfg, Source: source, Runtime: rt, Logger: logger}); err != nil {
			logger.Error("program failed", "err", err)
			fail("%v", err)
		}
	}
}
