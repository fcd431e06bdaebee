package main

import (
	"fmt"
	"math/rand"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/mirrorb/internal/games/mirrorb"
	mcore "github.com/vovakirdan/mirrorb/internal/games/mirrorb/core"
	"github.com/vovakirdan/mirrorb/internal/games/mirrorb/levels"
)

var flagCheck bool

var levelsCmd = &cobra.Command{
	Use:   "levels",
	Short: "Summarize the level catalog",
	Long: `Shows the version line and one row per level of the catalog in use.

With --check, every map is built into a board and validated, and the
orb count of each map is compared with its declared count.

Examples:
  mirrorb levels
  mirrorb levels --levels ./custom.dat --check`,
	Args: cobra.NoArgs,
	Run:  runLevels,
}

func init() {
	levelsCmd.Flags().BoolVar(&flagCheck, "check", false, "Build and validate every map")
}

func runLevels(_ *cobra.Command, _ []string) {
	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	catalog, err := levels.Open(cfg.Levels.Path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading levels: %v\n", err)
		os.Exit(1)
	}

	fmt.Println(catalog.Summary(mirrorb.Version))
	fmt.Println()

	// Print header
	fmt.Printf("  %-7s  %-6s  %-5s  %-4s  %s\n", "Level", "Pieces", "Size", "Orbs", "Maps")
	fmt.Printf("  %-7s  %-6s  %-5s  %-4s  %s\n", "-----", "------", "----", "----", "----")

	for i, pool := range catalog.Pools {
		b := pool[0]
		fmt.Printf("  %-7s  %-6d  %-5s  %-4d  %d\n",
			poolLabel(i+1), b.Pieces, fmt.Sprintf("%dx%d", b.Size, b.Size), b.Orbs, len(pool))
	}

	if !flagCheck {
		return
	}

	fmt.Println()
	failed := 0
	rng := rand.New(rand.NewSource(1))
	for i, pool := range catalog.Pools {
		for j, b := range pool {
			if err := checkBlock(b, rng); err != nil {
				fmt.Printf("  level %s map %d: %v\n", poolLabel(i+1), j+1, err)
				failed++
			}
		}
	}
	if failed > 0 {
		fmt.Printf("%d of %d maps failed\n", failed, catalog.MapCount())
		os.Exit(1)
	}
	fmt.Printf("All %d maps OK\n", catalog.MapCount())
}

// poolLabel names the displayed levels a pool is played as.
func poolLabel(level int) string {
	if level == 1 {
		return "1"
	}
	return fmt.Sprintf("%d-%d", mcore.DisplayedLevel(level, 0), mcore.DisplayedLevel(level, 1))
}

// checkBlock builds b into a board and validates it.
func checkBlock(b mcore.Block, rng mcore.Rand) error {
	board := mcore.NewBoard(mcore.BuildScene(b, rng))
	if err := board.Validate(); err != nil {
		return err
	}
	if got := board.Scene.NumGoals; got != b.Orbs {
		return fmt.Errorf("%d orbs on the map, %d declared", got, b.Orbs)
	}
	return nil
}
