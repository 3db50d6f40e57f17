package main

import (
	"fmt"
	"os"
	"os/user"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/rps-arena/internal/ai"
	"github.com/vovakirdan/rps-arena/internal/config"
	"github.com/vovakirdan/rps-arena/internal/platform/tui"
	"github.com/vovakirdan/rps-arena/internal/storage"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Start an interactive session",
	Long: `Start an interactive session: pick a match from the menu, continue a
saved one, or browse the scoreboard.

Controls:
  Up/Down      - Navigate
  Enter        - Select
  r/p/s (l/k)  - Quick-pick a move during a round
  Q/Ctrl+C     - Quit

Examples:
  rps play
  rps play --seed 42
  rps play --db ./rps.db`,
	Run: runPlay,
}

func runPlay(_ *cobra.Command, _ []string) {
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
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		// Continue without storage - matches still work
		store = nil
	}

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	policy := ai.NewSeeded(seed)

	// The OS username pre-fills player 1 in the setup wizard.
	defaultName := ""
	if u, userErr := user.Current(); userErr == nil {
		defaultName = u.Username
	}

	color := cfg.ColorEnabled()
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		color = false
	}

	// Get terminal size early; Bubble Tea corrects it on the first resize.
	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	runErr := tui.RunSession(cfg, store, policy, defaultName, color, width, height)

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", runErr)
		os.Exit(1)
	}
}
