package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/blahos/funfair/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all available attractions",
	Long:  `Shows a list of all attractions registered in the funfair.`,
	Run:   runList,
}

func runList(cmd *cobra.Command, args []string) {
	games := registry.List()

	if len(games) == 0 {
		fmt.Println("No attractions available.")
		return
	}

	fmt.Println("Available attractions:")
	fmt.Println()

	// Calculate column widths
	maxIDLen := 2 // "ID" header
	for _, g := range games {
		if len(g.ID) > maxIDLen {
			maxIDLen = len(g.ID)
		}
	}

	fmt.Printf("  %-*s  %s\n", maxIDLen, "ID", "Title")
	fmt.Printf("  %-*s  %s\n", maxIDLen, "--", "-----")

	for _, g := range games {
		fmt.Printf("  %-*s  %s\n", maxIDLen, g.ID, g.Title)
	}

	fmt.Println()
	fmt.Println("Run 'funfair play <id>' to play an attraction.")
}
