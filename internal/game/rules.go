package game

// Outcome is the result of resolving one round from player 1's perspective.
type Outcome int

const (
	OutcomeTie Outcome = iota
	OutcomePlayer1
	OutcomePlayer2
)

// String returns a short name for the outcome.
func (o Outcome) String() string {
	switch o {
	case OutcomePlayer1:
		return "player1"
	case OutcomePlayer2:
		return "player2"
	case OutcomeTie:
		return "tie"
	default:
		return "unknown"
	}
}

// MarshalText encodes the outcome for snapshot serialization.
func (o Outcome) MarshalText() ([]byte, error) {
	return []byte(o.String()), nil
}

// UnmarshalText decodes an outcome name.
func (o *Outcome) UnmarshalText(text []byte) error {
	switch string(text) {
	case "player1":
		*o = OutcomePlayer1
	case "player2":
		*o = OutcomePlayer2
	case "tie":
		*o = OutcomeTie
	default:
		return errUnknownOutcome(text)
	}
	return nil
}

type errUnknownOutcome []byte

func (e errUnknownOutcome) Error() string {
	return "game: unknown outcome " + string(e)
}

// classicBeats is the beats relation for the three-move game.
// For every unordered pair of distinct legal moves exactly one
// direction holds, making the relation a tournament.
var classicBeats = map[Move][]Move{
	Rock:     {Scissors},
	Paper:    {Rock},
	Scissors: {Paper},
}

// extendedBeats adds Lizard and Spock: each move beats exactly two others.
var extendedBeats = map[Move][]Move{
	Rock:     {Scissors, Lizard},
	Paper:    {Rock, Spock},
	Scissors: {Paper, Lizard},
	Lizard:   {Spock, Paper},
	Spock:    {Scissors, Rock},
}

func beatsTable(r Ruleset) map[Move][]Move {
	if r == RulesetExtended {
		return extendedBeats
	}
	return classicBeats
}

// Beats reports whether a beats b under the given ruleset.
func Beats(r Ruleset, a, b Move) bool {
	for _, victim := range beatsTable(r)[a] {
		if victim == b {
			return true
		}
	}
	return false
}

// Resolve maps a pair of moves to a round outcome. Identical moves tie;
// otherwise the totality of the beats relation guarantees exactly one
// player wins.
func Resolve(r Ruleset, move1, move2 Move) Outcome {
	if move1 == move2 {
		return OutcomeTie
	}
	if Beats(r, move1, move2) {
		return OutcomePlayer1
	}
	return OutcomePlayer2
}

// Counters returns the legal moves that beat the target under the ruleset,
// in canonical order. The result is never empty for a legal target.
func Counters(r Ruleset, target Move) []Move {
	var out []Move
	for _, m := range LegalMoves(r) {
		if Beats(r, m, target) {
			out = append(out, m)
		}
	}
	return out
}

// Verb describes how winner beats loser, for round summaries
// ("Rock crushes Scissors"). Returns "beats" for pairs outside the
// relation.
func Verb(winner, loser Move) string {
	switch {
	case winner == Rock && loser == Scissors,
		winner == Rock && loser == Lizard:
		return "crushes"
	case winner == Paper && loser == Rock:
		return "covers"
	case winner == Paper && loser == Spock:
		return "disproves"
	case winner == Scissors && loser == Paper:
		return "cuts"
	case winner == Scissors && loser == Lizard:
		return "decapitates"
	case winner == Lizard && loser == Spock:
		return "poisons"
	case winner == Lizard && loser == Paper:
		return "eats"
	case winner == Spock && loser == Scissors:
		return "smashes"
	case winner == Spock && loser == Rock:
		return "vaporizes"
	default:
		return "beats"
	}
}
