// rps is a terminal rock-paper-scissors arena with classic and
// extended rulesets, a computer opponent, and a persistent scoreboard.
//
// Usage:
//
//	rps play            - Start an interactive session
//	rps scores          - Show the cumulative scoreboard
//	rps rules           - Print the beats relation for both rulesets
//	rps serve           - Start SSH server for remote play
//
// Global flags:
//
//	--config <path>  - Custom config YAML
//	--db <path>      - Database path (default: ~/.rpsarena/rps.db)
//	--seed <value>   - Opponent RNG seed for reproducible matches
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagConfig string
	flagDBPath string
	flagSeed   int64
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "rps",
	Short: "Rock-paper-scissors matches in your terminal",
	Long: `rps runs rock-paper-scissors matches in the terminal, against the
computer or hot-seat against another player.

Available commands:
  play     - Interactive session (menu, matches, scoreboard)
  scores   - View the cumulative scoreboard
  rules    - Print what beats what under each ruleset
  serve    - Start SSH server for remote play

Examples:
  rps play
  rps scores --sort win_rate
  rps rules --ruleset extended
  rps serve --ssh :2222`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "Path to scores database (overrides config)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "Opponent RNG seed (0 = random based on time)")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(rulesCmd)
	rootCmd.AddCommand(serveCmd)
}
