package main

import (
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-fireworks/internal/core"
	"github.com/vovakirdan/tui-fireworks/internal/platform/tui"
	"github.com/vovakirdan/tui-fireworks/internal/registry"
)

var runCmd = &cobra.Command{
	Use:   "run [source]",
	Short: "Run the fireworks",
	Long: `Start the show in the terminal. Stars spawn at the pointer source,
which defaults to the mouse.

Controls:
  Mouse       - Move the spawn point
  Arrows/hjkl - Nudge the spawn point by one cell
  Space/P     - Pause/resume
  F           - Fill to the maximum star count
  C           - Clear all stars
  ?           - Toggle full key help in the debug overlay
  Q/Esc       - Quit

Examples:
  fireworks run
  fireworks run glide
  fireworks run wander --preset calm --log-file fireworks.log`,
	Args: cobra.MaximumNArgs(1),
	Run:  runRun,
}

func runRun(cmd *cobra.Command, args []string) {
	sourceID := "mouse"
	if len(args) > 0 {
		sourceID = args[0]
	}

	if !registry.Exists(sourceID) {
		fail("unknown pointer source %q\nRun 'fireworks list' to see available sources.", sourceID)
	}

	cfg, err := loadConfig()
	if err != nil {
		fail("%v", err)
	}

	// The alt screen owns the terminal, so logs go nowhere without --log-file
	logger, closeLog, err := newLogger("fireworks", io.Discard)
	if err != nil {
		fail("%v", err)
	}
	defer closeLog()

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	source, err := registry.Create(sourceID)
	if err != nil {
		fail("%v", err)
	}

	logger.Info("starting", "source", sourceID, "width", width, "height", height, "max_stars", cfg.MaxStarCount)

	runErr := tui.Run(tui.Options{
		Config: cfg,
		Source: source,
		Runtime: core.RuntimeConfig{
			ScreenW:  width,
			ScreenH:  height,
			TickRate: flagFPS,
			Seed:     seed(),
		},
		Logger: logger,
	})
	if runErr != nil {
		logger.Error("program failed", "err", runErr)
		closeLog()
		fail("%v", runErr)
	}
}
