package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/rps-arena/internal/game"
)

var flagRuleset string

var rulesCmd = &cobra.Command{
	Use:   "rules",
	Short: "Print what beats what",
	Long: `Shows the beats relation for the selected ruleset.

Rulesets:
  classic  - Rock, Paper, Scissors
  extended - Adds Lizard and Spock

Examples:
  rps rules
  rps rules --ruleset extended`,
	Run: runRules,
}

func init() {
	rulesCmd.Flags().StringVar(&flagRuleset, "ruleset", "classic", "Ruleset: classic or extended")
}

func runRules(_ *cobra.Command, _ []string) {
	ruleset := game.Ruleset(flagRuleset)
	if !ruleset.Valid() {
		fmt.Fprintf(os.Stderr, "Error: unknown ruleset %q\n", flagRuleset)
		os.Exit(1)
	}

	fmt.Printf("%s rules:\n", ruleset.Title())
	fmt.Println()

	for _, winner := range game.LegalMoves(ruleset) {
		for _, loser := range game.LegalMoves(ruleset) {
			if game.Beats(ruleset, winner, loser) {
				fmt.Printf("  %-8s %s %s\n", winner.String(), game.Verb(winner, loser), loser.String())
			}
		}
	}

	fmt.Println()
	fmt.Println("Run 'rps play' to start a match.")
}
