package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-fireworks/internal/core"
	"github.com/vovakirdan/tui-fireworks/internal/debug"
	"github.com/vovakirdan/tui-fireworks/internal/fireworks"
	"github.com/vovakirdan/tui-fireworks/internal/registry"
)

var (
	flagDuration time.Duration
	flagWidth    int
	flagHeight   int
)

var simulateCmd = &cobra.Command{
	Use:   "simulate [source]",
	Short: "Run the simulation headless and print statistics",
	Long: `Runs the show without a terminal on a virtual clock, one frame per
--fps tick, and prints the final counters and metrics. With a fixed --seed
the output is reproducible. Logs go to stderr unless --log-file is set.

The source defaults to orbit, since nothing moves the mouse here.

Examples:
  fireworks simulate
  fireworks simulate wander --duration 1m --seed 42
  fireworks simulate --preset frenzy --log-level debug`,
	Args: cobra.MaximumNArgs(1),
	Run:  runSimulate,
}

func init() {
	simulateCmd.Flags().DurationVar(&flagDuration, "duration", 10*time.Second, "Virtual time to simulate")
	simulateCmd.Flags().IntVar(&flagWidth, "width", 80, "Viewport width in terminal columns")
	simulateCmd.Flags().IntVar(&flagHeight, "height", 24, "Viewport height in terminal rows")
}

func runSimulate(cmd *cobra.Command, args []string) {
	sourceID := "orbit"
	if len(args) > 0 {
		sourceID = args[0]
	}
	source, err := registry.Create(sourceID)
	if err != nil {
		fail("%v", err)
	}

	cfg, err := loadConfig()
	if err != nil {
		fail("%v", err)
	}
	if flagFPS <= 0 {
		fail("--fps must be positive, got %d", flagFPS)
	}

	logger, closeLog, err := newLogger("simulate", os.Stderr)
	if err != nil {
		fail("%v", err)
	}
	defer closeLog()

	runSeed := seed()
	bounds := core.RuntimeConfig{ScreenW: flagWidth, ScreenH: flagHeight}.Viewport(cfg.CellWidth, cfg.CellHeight)
	source.Reset(bounds, runSeed)

	recorder := debug.NewRecorder()
	loop := fireworks.NewFrameLoop(0)
	sched := fireworks.NewScheduler(cfg, runSeed, fireworks.Collaborators{
		Driver:   loop,
		Bounds:   fireworks.BoundsFunc(func() core.Box { return bounds }),
		Pointer:  source,
		Observer: debug.Multi{recorder, debug.LogObserver{Logger: logger}},
		Logger:   logger,
	})

	logger.Info("simulating", "source", sourceID, "duration", flagDuration, "seed", runSeed)

	frame := 1000 / float64(flagFPS)
	end := float64(flagDuration) / float64(time.Millisecond)
	frames, peak := 0, 0

	sched.Start()
	for ts := frame; ts <= end; ts += frame {
		source.Step(frame, bounds)
		loop.Fire(ts)
		frames++
		peak = max(peak, sched.State().Count())
	}
	sched.Stop()

	stats := sched.Stats()
	fmt.Printf("Simulated %s with source %q (seed %d)\n\n", flagDuration, sourceID, runSeed)
	fmt.Printf("  %-16s %d\n", "frames", frames)
	fmt.Printf("  %-16s %d\n", "steps", stats.Steps)
	fmt.Printf("  %-16s %d\n", "spawned", stats.Spawned)
	fmt.Printf("  %-16s %d\n", "skipped", stats.Skipped)
	fmt.Printf("  %-16s %d\n", "peak stars", peak)
	fmt.Printf("  %-16s %d\n", "final stars", stats.Stars)

	fmt.Println()
	fmt.Println("Last metrics:")
	for _, e := range recorder.Entries() {
		fmt.Printf("  %-16s %s\n", e.Name, e.Value)
	}
}
