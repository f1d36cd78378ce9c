// fireworks draws mouse-following fireworks in the terminal.
//
// Usage:
//
//	fireworks run [source]   - Run the show (source defaults to mouse)
//	fireworks list           - List pointer sources
//	fireworks menu           - Pick a source and preset interactively
//	fireworks simulate       - Run headless and print statistics
//	fireworks config         - Print the effective configuration
//
// Global flags:
//
//	--fps <rate>        - Set frame rate (default: 60)
//	--seed <value>      - Set RNG seed for a reproducible show
//	--config <path>     - Load a custom YAML config
//	--preset <name>     - Apply an intensity preset: calm, normal, frenzy
//	--set key=value     - Override a single setting (repeatable)
//	--log-file <path>   - Write logs to a file
//	--log-level <level> - debug, info, warn or error (default: info)
package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-fireworks/internal/config"

	// Import pointer sources to register them
	_ "github.com/vovakirdan/tui-fireworks/internal/pointer"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagConfig   string
	flagPreset   string
	flagSet      []string
	flagLogFile  string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "fireworks",
	Short: "Terminal fireworks that follow your mouse",
	Long: `Fireworks spawns expanding stars at the mouse pointer and lets them
fly off until they leave the terminal or burn out.

Available commands:
  run       - Start the show
  list      - Show all pointer sources
  menu      - Pick a source and preset interactively
  simulate  - Run headless and print statistics
  config    - Print the effective configuration

Examples:
  fireworks run
  fireworks run orbit --preset frenzy
  fireworks run --set star_shape=circle --set star_color=#ffaa00
  fireworks simulate --duration 30s --seed 7`,
	SilenceUsage: true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Frame rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().StringVar(&flagPreset, "preset", "", "Intensity preset: calm, normal, frenzy")
	rootCmd.PersistentFlags().StringArrayVar(&flagSet, "set", nil, "Override a setting as key=value (repeatable)")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(simulateCmd)
	rootCmd.AddCommand(configCmd)
}

// loadConfig layers the config file, preset and --set overrides, in that order.
func loadConfig() (*config.FireworksConfig, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return nil, err
	}

	preset, err := config.ParsePreset(flagPreset)
	if err != nil {
		return nil, err
	}
	config.ApplyPreset(&cfg, preset)

	overrides, err := config.ParseOverrides(flagSet)
	if err != nil {
		return nil, err
	}
	config.Apply(&cfg, overrides)

	return &cfg, nil
}

// newLogger builds a logger writing to --log-file, or to fallback when no file is set.
// The returned close function releases the file.
func newLogger(prefix string, fallback io.Writer) (*log.Logger, func(), error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid --log-level: %w", err)
	}

	w, closeFn := fallback, func() {}
	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return nil, nil, fmt.Errorf("cannot open log file: %w", err)
		}
		w = f
		closeFn = func() { f.Close() }
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      time.TimeOnly,
		Prefix:          prefix,
		Level:           level,
	})
	return logger, closeFn, nil
}

// seed returns --seed, or a time-based seed when it is zero.
func seed() int64 {
	if flagSeed != 0 {
		return flagSeed
	}
	return time.Now().UnixNano()
}

// fail prints an error and exits.
func fail(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}
