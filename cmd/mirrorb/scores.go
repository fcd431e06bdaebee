package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/mirrorb/internal/storage"
)

var (
	flagRecent bool
	flagLimit  int
	flagClear  bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show recorded solves",
	Long: `Display the best solves: highest level first, then fewest moves,
then fastest.

Examples:
  mirrorb scores
  mirrorb scores --recent --limit 20
  mirrorb scores --db ./solves.db`,
	Args: cobra.NoArgs,
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagRecent, "recent", false, "Show the most recent solves instead of the best")
	scoresCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of solves to show")
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete all recorded solves")
}

func runScores(_ *cobra.Command, _ []string) {
	const gameID = "mirrorb"

	// Open solve storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening solves database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagClear {
		if err := store.ClearSolves(gameID); err != nil {
			fmt.Fprintf(os.Stderr, "Error clearing solves: %v\n", err)
			store.Close()
			os.Exit(1)
		}
		fmt.Println("All solves deleted.")
		return
	}

	var solves []storage.SolveRecord
	title := "Best Solves"
	if flagRecent {
		title = "Recent Solves"
		solves, err = store.RecentSolves(flagLimit)
	} else {
		solves, err = store.TopSolves(gameID, flagLimit)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving solves: %v\n", err)
		store.Close()
		os.Exit(1)
	}

	fmt.Printf("%s - mirr/orb\n", title)
	fmt.Println()

	if len(solves) == 0 {
		fmt.Println("No solves recorded yet.")
		fmt.Println()
		fmt.Println("Play 'mirrorb play' to record the first one!")
		return
	}

	// Print header
	fmt.Printf("  %-4s  %-5s  %-5s  %-8s  %-12s  %s\n", "Rank", "Level", "Moves", "Time", "Player", "Date")
	fmt.Printf("  %-4s  %-5s  %-5s  %-8s  %-12s  %s\n", "----", "-----", "-----", "----", "------", "----")

	for i, s := range solves {
		player := s.Player
		if player == "" {
			player = "local"
		}
		fmt.Printf("  %-4d  %-5d  %-5d  %-8s  %-12s  %s\n",
			i+1, s.Level, s.Moves, ticksToDuration(s.Ticks), player, s.CreatedAt.Local().Format("2006-01-02 15:04"))
	}

	stats, err := store.GetGameStats(gameID)
	if err == nil && stats.Solves > 0 {
		fmt.Println()
		fmt.Printf("Solves: %d  Highest level: %d  Avg moves: %.1f  Time played: %s\n",
			stats.Solves, stats.HighestLevel, stats.AvgMoves, ticksToDuration(int(stats.TotalTicks)))
	}
}

// ticksToDuration converts a tick count at --fps to wall time.
func ticksToDuration(ticks int) time.Duration {
	fps := flagFPS
	if fps <= 0 {
		fps = 60
	}
	return (time.Duration(ticks) * time.Second / time.Duration(fps)).Round(100 * time.Millisecond)
}
