// Package ai implements the computer opponent's move selection.
// The policy is deterministic given its random source, so tests inject
// a seeded rand.Rand and assert exact choices.
package ai

import (
	"math/rand"

	"github.com/vovakirdan/rps-arena/internal/game"
)

// normalRandomPercent is the chance (out of 100) that the normal tier
// plays randomly instead of countering the human's last move.
const normalRandomPercent = 65

// Policy selects moves for the computer opponent.
type Policy struct {
	rng *rand.Rand
}

// New creates a policy backed by the given random source.
func New(rng *rand.Rand) *Policy {
	return &Policy{rng: rng}
}

// NewSeeded creates a policy with its own source seeded from seed.
func NewSeeded(seed int64) *Policy {
	return New(rand.New(rand.NewSource(seed)))
}

// Choose picks the computer's move for one round. recent is the human's
// recent move history, oldest first, already including justPlayed.
// The returned move is always legal under the ruleset.
func (p *Policy) Choose(r game.Ruleset, d game.Difficulty, recent []game.Move, justPlayed game.Move) game.Move {
	switch d {
	case game.DifficultyNormal:
		if p.rng.Intn(100) < normalRandomPercent {
			return p.randomMove(r)
		}
		return p.counter(r, justPlayed)
	case game.DifficultyHard:
		predicted, ok := mostCommon(recent)
		if !ok {
			predicted = justPlayed
		}
		return p.counter(r, predicted)
	default:
		return p.randomMove(r)
	}
}

// randomMove picks uniformly from the ruleset's legal moves.
func (p *Policy) randomMove(r game.Ruleset) game.Move {
	legal := game.LegalMoves(r)
	return legal[p.rng.Intn(len(legal))]
}

// counter picks uniformly among the moves that beat target. The beats
// relation guarantees at least one counter for a legal target; if the
// set is somehow empty the target itself is returned.
func (p *Policy) counter(r game.Ruleset, target game.Move) game.Move {
	candidates := game.Counters(r, target)
	if len(candidates) == 0 {
		return target
	}
	return candidates[p.rng.Intn(len(candidates))]
}

// mostCommon returns the most frequent move in history. Frequency ties
// break toward the lowest move value so the prediction is reproducible.
func mostCommon(history []game.Move) (game.Move, bool) {
	if len(history) == 0 {
		return 0, false
	}

	freq := make(map[game.Move]int, len(history))
	for _, m := range history {
		freq[m]++
	}

	best := history[0]
	bestCount := 0
	for _, m := range history {
		c := freq[m]
		if c > bestCount || (c == bestCount && m < best) {
			best = m
			bestCount = c
		}
	}
	return best, true
}
