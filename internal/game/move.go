// Package game contains the move vocabulary and the round-resolution rules
// for classic and extended Rock-Paper-Scissors. It is pure logic with no
// external dependencies; the platform handles input, rendering, and storage.
package game

import "fmt"

// Move is one of the throwable hand shapes.
type Move int

const (
	Rock Move = iota
	Paper
	Scissors
	Lizard
	Spock
)

// String returns the display name of the move.
func (m Move) String() string {
	switch m {
	case Rock:
		return "Rock"
	case Paper:
		return "Paper"
	case Scissors:
		return "Scissors"
	case Lizard:
		return "Lizard"
	case Spock:
		return "Spock"
	default:
		return "unknown"
	}
}

// MarshalText encodes the move as its lowercase name.
// Used for stable snapshot serialization.
func (m Move) MarshalText() ([]byte, error) {
	switch m {
	case Rock:
		return []byte("rock"), nil
	case Paper:
		return []byte("paper"), nil
	case Scissors:
		return []byte("scissors"), nil
	case Lizard:
		return []byte("lizard"), nil
	case Spock:
		return []byte("spock"), nil
	default:
		return nil, fmt.Errorf("game: cannot marshal move %d", int(m))
	}
}

// UnmarshalText decodes a lowercase move name.
func (m *Move) UnmarshalText(text []byte) error {
	switch string(text) {
	case "rock":
		*m = Rock
	case "paper":
		*m = Paper
	case "scissors":
		*m = Scissors
	case "lizard":
		*m = Lizard
	case "spock":
		*m = Spock
	default:
		return fmt.Errorf("game: unknown move %q", text)
	}
	return nil
}

// Ruleset selects the legal move set and the beats relation for a match.
type Ruleset string

const (
	RulesetClassic  Ruleset = "classic"
	RulesetExtended Ruleset = "extended"
)

// Rulesets lists the known rulesets in menu order.
func Rulesets() []Ruleset {
	return []Ruleset{RulesetClassic, RulesetExtended}
}

// Valid reports whether the ruleset is a known variant.
func (r Ruleset) Valid() bool {
	return r == RulesetClassic || r == RulesetExtended
}

// Title returns the display name of the ruleset.
func (r Ruleset) Title() string {
	switch r {
	case RulesetClassic:
		return "Classic"
	case RulesetExtended:
		return "Extended (Lizard/Spock)"
	default:
		return string(r)
	}
}

// LegalMoves returns the moves allowed under the given ruleset, in
// canonical order.
func LegalMoves(r Ruleset) []Move {
	if r == RulesetExtended {
		return []Move{Rock, Paper, Scissors, Lizard, Spock}
	}
	return []Move{Rock, Paper, Scissors}
}

// Legal reports whether the move is a member of the ruleset's legal set.
func Legal(r Ruleset, m Move) bool {
	for _, lm := range LegalMoves(r) {
		if lm == m {
			return true
		}
	}
	return false
}

// ParseMove parses user input into a move. Full names and single-letter
// aliases are accepted (r/p/s plus l and k under the extended ruleset;
// "k" keeps "s" unambiguous for scissors). Lizard and Spock are rejected
// under the classic ruleset.
func ParseMove(input string, r Ruleset) (Move, bool) {
	var m Move
	switch input {
	case "rock", "r":
		m = Rock
	case "paper", "p":
		m = Paper
	case "scissors", "s":
		m = Scissors
	case "lizard", "l":
		m = Lizard
	case "spock", "k":
		m = Spock
	default:
		return 0, false
	}
	if !Legal(r, m) {
		return 0, false
	}
	return m, true
}

// Difficulty is the computer opponent's skill tier.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyNormal Difficulty = "normal"
	DifficultyHard   Difficulty = "hard"
)

// Difficulties lists the tiers in menu order.
func Difficulties() []Difficulty {
	return []Difficulty{DifficultyEasy, DifficultyNormal, DifficultyHard}
}

// Valid reports whether the difficulty is a known tier.
func (d Difficulty) Valid() bool {
	return d == DifficultyEasy || d == DifficultyNormal || d == DifficultyHard
}

// Title returns the display name of the difficulty tier.
func (d Difficulty) Title() string {
	switch d {
	case DifficultyEasy:
		return "Easy"
	case DifficultyNormal:
		return "Normal"
	case DifficultyHard:
		return "Hard"
	default:
		return string(d)
	}
}
