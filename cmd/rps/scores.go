package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/rps-arena/internal/config"
	"github.com/vovakirdan/rps-arena/internal/storage"
)

var flagSort string

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show the cumulative scoreboard",
	Long: `Display the top 20 players across all recorded matches.

Sort keys:
  matches_won - Total matches won (default)
  win_rate    - Matches won over matches played
  rounds_won  - Total rounds won

Examples:
  rps scores
  rps scores --sort win_rate`,
	Run: runScores,
}

func init() {
	scoresCmd.Flags().StringVar(&flagSort, "sort", "matches_won", "Sort key: matches_won, win_rate, rounds_won")
}

func runScores(_ *cobra.Command, _ []string) {
	key := storage.SortKey(flagSort)
	switch key {
	case storage.SortByMatchesWon, storage.SortByWinRate, storage.SortByRoundsWon:
	default:
		fmt.Fprintf(os.Stderr, "Error: unknown sort key %q\n", flagSort)
		os.Exit(1)
	}

	cfg, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	dbPath := cfg.Storage.DBPath
	if flagDBPath != "" {
		dbPath = flagDBPath
	}

	store, err := storage.Open(dbPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	players, err := store.Leaderboard(key, 20)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Scoreboard")
	fmt.Println()

	if len(players) == 0 {
		fmt.Println("No matches recorded yet.")
		fmt.Println()
		fmt.Println("Play 'rps play' to get on the board!")
		return
	}

	// Print header
	fmt.Printf("  %-4s  %-20s  %-7s  %-6s  %-8s  %s\n", "Rank", "Player", "Played", "Won", "Win rate", "Rounds won")
	fmt.Printf("  %-4s  %-20s  %-7s  %-6s  %-8s  %s\n", "----", "------", "------", "---", "--------", "----------")

	for i, p := range players {
		fmt.Println(formatScoreRow(i+1, p))
	}
}

// formatScoreRow renders one ledger row with the same column widths as
// the header, the win rate as a left-aligned whole percentage.
func formatScoreRow(rank int, p storage.PlayerStats) string {
	rate := fmt.Sprintf("%.0f%%", p.WinRate()*100)
	return fmt.Sprintf("  %-4d  %-20s  %-7d  %-6d  %-8s  %d",
		rank, p.Name, p.MatchesPlayed, p.MatchesWon, rate, p.RoundsWon)
}
