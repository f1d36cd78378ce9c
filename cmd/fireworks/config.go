package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-fireworks/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Prints the configuration after the config file, --preset and --set
have been applied, as YAML. The output can be saved and passed back with --config.`,
	Args: cobra.NoArgs,
	Run:  runConfig,
}

func runConfig(cmd *cobra.Command, args []string) {
	cfg, err := loadConfig()
	if err != nil {
		fail("%v", err)
	}

	data, err := config.Marshal(*cfg)
	if err != nil {
		fail("%v", err)
	}
	fmt.Print(string(data))
}
