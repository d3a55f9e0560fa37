package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/blahos/funfair/internal/core"
	"github.com/blahos/funfair/internal/games/claw"
	"github.com/blahos/funfair/internal/games/coaster"
	"github.com/blahos/funfair/internal/platform/tui"
	"github.com/blahos/funfair/internal/registry"
	"github.com/blahos/funfair/internal/storage"
)

var flagConfig string

var playCmd = &cobra.Command{
	Use:   "play <game>",
	Short: "Play an attraction",
	Long: `Start playing the specified attraction.

Controls:
  Mouse      - Point and click (token slot, seats, prize, sick riders)
  A/D        - Move the claw
  W/S        - Raise / lower or drop the claw
  N          - Seat a rollercoaster passenger
  Enter      - Start the ride
  P          - Pause
  Q/Ctrl+C   - Quit

Examples:
  funfair play claw
  funfair play coaster
  funfair play claw --config ./my-claw.yaml`,
	Args: cobra.ExactArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
}

func runPlay(cmd *cobra.Command, args []string) {
	gameID := args[0]

	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown attraction %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'funfair list' to see available attractions.")
		os.Exit(1)
	}

	// Get terminal size
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	// Set config path for games before creation
	switch gameID {
	case "claw":
		claw.SetConfigPath(flagConfig)
	case "coaster":
		coaster.SetConfigPath(flagConfig)
	}

	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	// Open score storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}

	runErr := tui.Run(game, store, cfg)

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
