// Package match implements the round/match state machine: configuration,
// round progression, score tallies, history, completion detection, and a
// serializable snapshot for save/resume.
package match

import (
	"fmt"

	"github.com/vovakirdan/rps-arena/internal/game"
)

// Mode distinguishes human-vs-computer from hot-seat play.
type Mode string

const (
	ModeSinglePlayer Mode = "single"
	ModeMultiplayer  Mode = "multi"
)

// FormatKind names the match-completion rule.
type FormatKind string

const (
	FormatSingleRound FormatKind = "single_round"
	FormatBestOfN     FormatKind = "best_of"
	FormatFirstToK    FormatKind = "first_to"
)

// Format is the match-completion predicate. Count is meaningful for
// best-of and first-to formats only; construct through SingleRound,
// BestOf, or FirstTo so an invalid count never reaches a match.
type Format struct {
	Kind  FormatKind `json:"kind" yaml:"kind"`
	Count int        `json:"count,omitempty" yaml:"count,omitempty"`
}

// InvalidFormatError reports a format parameter rejected at construction.
type InvalidFormatError struct {
	Kind   FormatKind
	Count  int
	Reason string
}

func (e *InvalidFormatError) Error() string {
	return fmt.Sprintf("match: invalid format %s(%d): %s", e.Kind, e.Count, e.Reason)
}

// SingleRound returns the one-round format.
func SingleRound() Format {
	return Format{Kind: FormatSingleRound}
}

// BestOf returns a best-of-n format. n must be odd and at least 1; an
// even n has no unique majority threshold.
func BestOf(n int) (Format, error) {
	if n < 1 {
		return Format{}, &InvalidFormatError{Kind: FormatBestOfN, Count: n, Reason: "count must be at least 1"}
	}
	if n%2 == 0 {
		return Format{}, &InvalidFormatError{Kind: FormatBestOfN, Count: n, Reason: "count must be odd"}
	}
	return Format{Kind: FormatBestOfN, Count: n}, nil
}

// FirstTo returns a first-to-k format. k must be at least 1.
func FirstTo(k int) (Format, error) {
	if k < 1 {
		return Format{}, &InvalidFormatError{Kind: FormatFirstToK, Count: k, Reason: "count must be at least 1"}
	}
	return Format{Kind: FormatFirstToK, Count: k}, nil
}

// Validate re-checks a format that arrived from deserialized data.
func (f Format) Validate() error {
	switch f.Kind {
	case FormatSingleRound:
		return nil
	case FormatBestOfN:
		_, err := BestOf(f.Count)
		return err
	case FormatFirstToK:
		_, err := FirstTo(f.Count)
		return err
	default:
		return &InvalidFormatError{Kind: f.Kind, Count: f.Count, Reason: "unknown kind"}
	}
}

// Title returns the display name of the format.
func (f Format) Title() string {
	switch f.Kind {
	case FormatBestOfN:
		return fmt.Sprintf("Best of %d", f.Count)
	case FormatFirstToK:
		return fmt.Sprintf("First to %d wins", f.Count)
	default:
		return "Single round"
	}
}

// Config holds the immutable-per-match parameters. A mid-match settings
// change is modeled as a new Config plus ResetForRematch.
type Config struct {
	Player1    string          `json:"player1" yaml:"player1"`
	Player2    string          `json:"player2" yaml:"player2"`
	Mode       Mode            `json:"mode" yaml:"mode"`
	Ruleset    game.Ruleset    `json:"ruleset" yaml:"ruleset"`
	Format     Format          `json:"format" yaml:"format"`
	Difficulty game.Difficulty `json:"difficulty,omitempty" yaml:"difficulty,omitempty"`
}

// Validate checks the configuration before a match is constructed.
func (c Config) Validate() error {
	if c.Player1 == "" {
		return fmt.Errorf("match: player 1 name is empty")
	}
	if c.Player2 == "" {
		return fmt.Errorf("match: player 2 name is empty")
	}
	if c.Player1 == c.Player2 {
		return fmt.Errorf("match: player names must differ")
	}
	if c.Mode != ModeSinglePlayer && c.Mode != ModeMultiplayer {
		return fmt.Errorf("match: unknown mode %q", c.Mode)
	}
	if !c.Ruleset.Valid() {
		return fmt.Errorf("match: unknown ruleset %q", c.Ruleset)
	}
	if err := c.Format.Validate(); err != nil {
		return err
	}
	if c.Mode == ModeSinglePlayer && !c.Difficulty.Valid() {
		return fmt.Errorf("match: single-player mode requires a difficulty, got %q", c.Difficulty)
	}
	if c.Mode == ModeMultiplayer && c.Difficulty != "" {
		return fmt.Errorf("match: difficulty %q is set but mode is multiplayer", c.Difficulty)
	}
	return nil
}
