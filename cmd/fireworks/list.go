package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-fireworks/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all pointer sources",
	Long:  `Shows the pointer sources stars can be spawned from.`,
	Run:   runList,
}

func runList(cmd *cobra.Command, args []string) {
	sources := registry.List()

	if len(sources) == 0 {
		fmt.Println("No pointer sources available.")
		return
	}

	fmt.Println("Available pointer sources:")
	fmt.Println()

	// Calculate column widths
	maxIDLen := 2 // "ID" header
	for _, s := range sources {
		maxIDLen = max(maxIDLen, len(s.ID))
	}

	fmt.Printf("  %-*s  %s\n", maxIDLen, "ID", "Title")
	fmt.Printf("  %-*s  %s\n", maxIDLen, "--", "-----")
	for _, s := range sources {
		fmt.Printf("  %-*s  %s\n", maxIDLen, s.ID, s.Title)
	}

	fmt.Println()
	fmt.Println("Run 'fireworks run <id>' to use a source.")
}
