package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/blahos/funfair/internal/registry"
	"github.com/blahos/funfair/internal/storage"
)

var scoresCmd = &cobra.Command{
	Use:   "scores <game>",
	Short: "Show high scores for an attraction",
	Long: `Display the top scores recorded for the specified attraction.

Examples:
  funfair scores claw
  funfair scores coaster
  funfair scores claw --db ./scores.db`,
	Args: cobra.ExactArgs(1),
	Run:  runScores,
}

func runScores(cmd *cobra.Command, args []string) {
	gameID := args[0]

	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown attraction %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'funfair list' to see available attractions.")
		os.Exit(1)
	}

	// Create the game to get its title
	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: could not open scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	scores, err := store.TopScores(gameID, 10)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: could not read scores: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("High scores for %s:\n", game.Title())
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("  No scores recorded yet.")
		fmt.Printf("  Run 'funfair play %s' to set one!\n", gameID)
		return
	}

	fmt.Printf("  %-5s %-8s %s\n", "Rank", "Score", "Date")
	fmt.Printf("  %-5s %-8s %s\n", "----", "-----", "----")

	for i, entry := range scores {
		fmt.Printf("  %-5d %-8d %s\n", i+1, entry.Score, entry.CreatedAt.Format("2006-01-02 15:04"))
	}

	fmt.Println()
	fmt.Printf("Best: %d\n", scores[0].Score)
}
