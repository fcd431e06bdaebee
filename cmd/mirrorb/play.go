package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/mirrorb/internal/games/mirrorb"
	"github.com/vovakirdan/mirrorb/internal/platform/tui"
	"github.com/vovakirdan/mirrorb/internal/registry"
	"github.com/vovakirdan/mirrorb/internal/storage"
)

var flagLevel int

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play mirr/orb",
	Long: `Start playing from the first level, or from --level.

Controls:
  Drag a piece     - Place it on a floor cell, or back to the inventory
  Hold on a source - Fire the beam
  R / H / V        - Rotate, flip left-right, flip top-bottom
  U / Y            - Undo / redo
  X                - Return all pieces
  T                - Trash the map for another one of the same level
  N / Enter        - Next level once solved
  Ctrl+S           - Save a screenshot
  ?                - Toggle help
  Esc / Q          - Quit

Examples:
  mirrorb play
  mirrorb play --level 9
  mirrorb play --levels ./custom.dat --seed 42`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().IntVar(&flagLevel, "level", 0, "Displayed level to start at (0 = beginning)")
}

func runPlay(_ *cobra.Command, _ []string) {
	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	logger, closeLog, err := openLogger("mirrorb")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()

	catalog, err := configureGame(cfg, logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading levels: %v\n", err)
		os.Exit(1)
	}
	if flagLevel > catalog.FinalLevel() {
		fmt.Fprintf(os.Stderr, "Error: level %d does not exist, the last one is %d\n", flagLevel, catalog.FinalLevel())
		os.Exit(1)
	}
	mirrorb.SetStartLevel(flagLevel)

	game, err := registry.Create("mirrorb")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	// Open solve storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open solves database: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}

	watcher := startWatcher(cfg, logger)

	runErr := tui.Run(game, store, runtimeConfig(), watcher, logger)

	if watcher != nil {
		watcher.Close()
	}
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		closeLog()
		os.Exit(1)
	}
}
