// mirrorb is a terminal beam puzzle: place mirrors and splitters so one
// emitted beam lights every orb on the board.
//
// Usage:
//
//	mirrorb play             - Play from the first (or --level) level
//	mirrorb menu             - Pick a level and browse solves interactively
//	mirrorb levels           - Summarize the level catalog
//	mirrorb scores           - Show recorded solves
//	mirrorb serve            - Start SSH server for remote play
//	mirrorb config           - Print the default configuration
//
// Global flags:
//
//	--fps <rate>     - Set tick rate (default: 60)
//	--seed <value>   - Set RNG seed for reproducible gameplay
//	--db <path>      - Set database path (default: ~/.mirrorb/solves.db)
//	--config <path>  - Use a custom config YAML
//	--levels <path>  - Play a level file instead of the built-in catalog
//	--log <path>     - Append logs to a file
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/mirrorb/internal/config"
	"github.com/vovakirdan/mirrorb/internal/core"
	"github.com/vovakirdan/mirrorb/internal/games/mirrorb"
	mcore "github.com/vovakirdan/mirrorb/internal/games/mirrorb/core"
	"github.com/vovakirdan/mirrorb/internal/games/mirrorb/levels"
	"github.com/vovakirdan/mirrorb/internal/platform/tui"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagLevelsPath string
	flagLogPath    string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "mirrorb",
	Short: "mirr/orb - Bend a beam onto every orb",
	Long: `mirr/orb is a puzzle played in the terminal with the mouse.

Drag pieces from the inventory onto the board, then hold the mouse on a
source at the edge to fire the beam. Light every orb to clear the level.

Available commands:
  play     - Play directly, optionally from a given level
  menu     - Level picker and solve history
  levels   - Summarize the level catalog
  scores   - Show recorded solves
  serve    - Start SSH server for remote play
  config   - Print the default configuration

Examples:
  mirrorb play
  mirrorb play --level 7
  mirrorb menu --levels ./levels.dat
  mirrorb serve --ssh :2222
  mirrorb scores`,
	SilenceUsage: true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.mirrorb/solves.db", "Path to solves database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLevelsPath, "levels", "", "Level file (overrides levels.path)")
	rootCmd.PersistentFlags().StringVar(&flagLogPath, "log", "", "Append logs to this file")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(levelsCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(configCmd)
}

// loadConfig reads the config file and applies flag overrides.
func loadConfig() (config.MirrorbConfig, error) {
	cfg, err := config.LoadMirrorb(flagConfig)
	if err != nil {
		return cfg, err
	}
	if flagLevelsPath != "" {
		cfg.Levels.Path = flagLevelsPath
	}
	return cfg, nil
}

// openLogger returns the logger for interactive commands. The terminal
// belongs to the game, so logs go to --log or nowhere.
func openLogger(prefix string) (*log.Logger, func(), error) {
	if flagLogPath == "" {
		return log.New(io.Discard), func() {}, nil
	}
	f, err := os.OpenFile(flagLogPath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("opening log file: %w", err)
	}
	logger := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
		Level:           log.DebugLevel,
	})
	return logger, func() { f.Close() }, nil
}

// configureGame loads the catalog and applies cfg to games created
// afterwards.
func configureGame(cfg config.MirrorbConfig, logger *log.Logger) (*mcore.Catalog, error) {
	catalog, err := levels.Open(cfg.Levels.Path)
	if err != nil {
		return nil, err
	}

	mirrorb.Configure(mirrorb.Options{
		Catalog:      catalog,
		StepsPerTick: cfg.Beam.StepsPerTick,
		FadeStep:     cfg.Beam.FadeStep,
		ClickDelay:   cfg.Input.ClickDelayTicks,
		Theme:        cfg.Display.Theme,
		ShowVersion:  cfg.Display.ShowVersion,
		Logger:       logger,
	})
	tui.SetTheme(tui.ThemeFor(cfg.Display.Theme))
	return catalog, nil
}

// startWatcher follows the level file when hot reload is enabled. A
// watcher that fails to start is logged and play continues without it.
func startWatcher(cfg config.MirrorbConfig, logger *log.Logger) *levels.Watcher {
	if !cfg.Levels.Watch || cfg.Levels.Path == "" {
		return nil
	}
	w, err := levels.NewWatcher(cfg.Levels.Path)
	if err != nil {
		logger.Warn("level file watch disabled", "path", cfg.Levels.Path, "err", err)
		return nil
	}
	logger.Info("watching level file", "path", w.Path())
	return w
}

// runtimeConfig sizes the game to the terminal.
func runtimeConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW, cfg.ScreenH = w, h
	}
	cfg.TickRate = flagFPS
	cfg.Seed = flagSeed
	return cfg
}
