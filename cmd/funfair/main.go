// funfair is a TUI amusement park for playing fairground attractions in
// the terminal.
//
// Usage:
//
//	funfair list              - List available attractions
//	funfair play <game>       - Play an attraction
//	funfair menu              - Start menu to pick attractions interactively
//	funfair serve             - Start SSH server for remote play
//	funfair scores <game>     - Show high scores for an attraction
//
// Global flags:
//
//	--fps <rate>    - Set target tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible toy placement
//	--db <path>     - Set database path (default: ~/.funfair/scores.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import games to register them
	_ "github.com/blahos/funfair/internal/games/claw"
	_ "github.com/blahos/funfair/internal/games/coaster"
)

var (
	// Global flags
	flagFPS    int
	flagSeed   int64
	flagDBPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "funfair",
	Short: "TUI Funfair - Fairground attractions in your terminal",
	Long: `TUI Funfair is a terminal amusement park: a claw machine and a
rollercoaster you operate with the keyboard and mouse.

Available commands:
  list     - Show all available attractions
  play     - Play a specific attraction directly
  menu     - Interactive attraction picker menu
  serve    - Start SSH server for remote play
  scores   - View high scores

Examples:
  funfair list
  funfair play claw
  funfair menu
  funfair serve --ssh :2222
  funfair scores coaster`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Target tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.funfair/scores.db", "Path to scores database")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
}
