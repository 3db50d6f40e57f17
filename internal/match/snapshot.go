package match

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/vovakirdan/rps-arena/internal/game"
)

// ErrMalformedSnapshot marks persisted match data that failed decoding
// or invariant checks. Callers treat it as "no saved game" rather than
// a fatal error.
var ErrMalformedSnapshot = errors.New("match: malformed snapshot")

// Snapshot is the full-fidelity serialized form of a match: enough to
// reconstruct an in-progress match exactly, including history order and
// the recent-move buffer.
type Snapshot struct {
	Config      Config        `json:"config"`
	RoundNumber int           `json:"round_number"`
	P1Wins      int           `json:"p1_round_wins"`
	P2Wins      int           `json:"p2_round_wins"`
	History     []RoundRecord `json:"history"`
	HumanRecent []game.Move   `json:"human_recent,omitempty"`
}

// Snapshot captures the match state for persistence.
func (m *Match) Snapshot() Snapshot {
	snap := Snapshot{
		Config:      m.config,
		RoundNumber: m.roundNumber,
		P1Wins:      m.p1Wins,
		P2Wins:      m.p2Wins,
	}
	snap.History = append(snap.History, m.history...)
	snap.HumanRecent = append(snap.HumanRecent, m.humanRecent...)
	return snap
}

// MarshalSnapshot encodes the match state as JSON.
func (m *Match) MarshalSnapshot() ([]byte, error) {
	return json.Marshal(m.Snapshot())
}

// Restore reconstructs a match from previously serialized data. Any
// shape or invariant violation is reported as ErrMalformedSnapshot.
func Restore(data []byte) (*Match, error) {
	var snap Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedSnapshot, err)
	}
	return FromSnapshot(snap)
}

// FromSnapshot validates a decoded snapshot and builds the match.
func FromSnapshot(snap Snapshot) (*Match, error) {
	if err := snap.validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedSnapshot, err)
	}

	m := &Match{
		config:      snap.Config,
		roundNumber: snap.RoundNumber,
		p1Wins:      snap.P1Wins,
		p2Wins:      snap.P2Wins,
	}
	m.history = append(m.history, snap.History...)
	m.humanRecent = append(m.humanRecent, snap.HumanRecent...)
	return m, nil
}

// validate checks the snapshot against the match invariants.
func (s Snapshot) validate() error {
	if err := s.Config.Validate(); err != nil {
		return err
	}
	if s.RoundNumber != len(s.History)+1 {
		return fmt.Errorf("round number %d does not match %d played rounds", s.RoundNumber, len(s.History))
	}
	if s.P1Wins < 0 || s.P2Wins < 0 {
		return fmt.Errorf("negative win tally")
	}

	ties := 0
	p1, p2 := 0, 0
	for i, rec := range s.History {
		if rec.Round != i+1 {
			return fmt.Errorf("history round %d out of order at index %d", rec.Round, i)
		}
		if !game.Legal(s.Config.Ruleset, rec.Move1) || !game.Legal(s.Config.Ruleset, rec.Move2) {
			return fmt.Errorf("history round %d has illegal move for %s rules", rec.Round, s.Config.Ruleset)
		}
		if got := game.Resolve(s.Config.Ruleset, rec.Move1, rec.Move2); got != rec.Outcome {
			return fmt.Errorf("history round %d outcome %s does not match moves", rec.Round, rec.Outcome)
		}
		switch rec.Outcome {
		case game.OutcomePlayer1:
			p1++
		case game.OutcomePlayer2:
			p2++
		default:
			ties++
		}
	}
	if p1 != s.P1Wins || p2 != s.P2Wins {
		return fmt.Errorf("tallies %d-%d disagree with history %d-%d (%d ties)", s.P1Wins, s.P2Wins, p1, p2, ties)
	}

	if len(s.HumanRecent) > RecentCapacity {
		return fmt.Errorf("recent buffer holds %d moves, capacity is %d", len(s.HumanRecent), RecentCapacity)
	}
	for _, mv := range s.HumanRecent {
		if !game.Legal(s.Config.Ruleset, mv) {
			return fmt.Errorf("recent buffer has illegal move %s for %s rules", mv, s.Config.Ruleset)
		}
	}
	return nil
}
