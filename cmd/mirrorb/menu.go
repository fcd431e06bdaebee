package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/mirrorb/internal/games/mirrorb"
	"github.com/vovakirdan/mirrorb/internal/platform/tui"
	"github.com/vovakirdan/mirrorb/internal/storage"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start with the level picker",
	Long: `Start mirr/orb in interactive menu mode.

Pick a level to start from, or open the solve history with Tab. Leaving
a game with Esc returns to the menu.

Controls:
  Up/Down/j/k      - Navigate levels
  Left/Right       - Page through levels
  Enter/Space      - Play from the selected level
  Tab              - Solve history
  Q                - Quit

Examples:
  mirrorb menu
  mirrorb menu --fps 30
  mirrorb menu --levels ./custom.dat --log ./mirrorb.log`,
	Args: cobra.NoArgs,
	Run:  runMenu,
}

func runMenu(_ *cobra.Command, _ []string) {
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

	// Open solve storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open solves database: %v\n", err)
		store = nil
	}

	watcher := startWatcher(cfg, logger)

	runErr := tui.RunSession(store, runtimeConfig(), catalog, mirrorb.Version, watcher, logger)

	if watcher != nil {
		watcher.Close()
	}
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", runErr)
		closeLog()
		os.Exit(1)
	}
}
