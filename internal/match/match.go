package match

import (
	"fmt"

	"github.com/vovakirdan/rps-arena/internal/ai"
	"github.com/vovakirdan/rps-arena/internal/game"
)

// RecentCapacity bounds the human move history kept for the hard AI tier.
// Oldest entries are evicted first.
const RecentCapacity = 12

// InvalidMoveError reports a move outside the active ruleset's legal set.
// This is a caller contract breach; the match never substitutes a default.
type InvalidMoveError struct {
	Move    game.Move
	Ruleset game.Ruleset
}

func (e *InvalidMoveError) Error() string {
	return fmt.Sprintf("match: move %s is not legal under %s rules", e.Move, e.Ruleset)
}

// ErrMatchComplete is returned when a round is played on a finished match.
var ErrMatchComplete = errComplete{}

type errComplete struct{}

func (errComplete) Error() string { return "match: match is already complete" }

// RoundRecord is one resolved round. Records are append-only.
type RoundRecord struct {
	Round   int          `json:"round"`
	Move1   game.Move    `json:"move1"`
	Move2   game.Move    `json:"move2"`
	Outcome game.Outcome `json:"outcome"`
}

// Match owns the state of one running match. It is not safe for
// concurrent use; each match belongs to a single interactive flow.
type Match struct {
	config      Config
	roundNumber int // 1-based index of the round about to be played
	p1Wins      int
	p2Wins      int
	history     []RoundRecord
	humanRecent []game.Move // ring of player 1's moves, oldest first
}

// New constructs a fresh match in the awaiting-round state.
func New(cfg Config) (*Match, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Match{config: cfg, roundNumber: 1}, nil
}

// Config returns the match configuration.
func (m *Match) Config() Config { return m.config }

// RoundNumber returns the 1-based index of the next round to play.
func (m *Match) RoundNumber() int { return m.roundNumber }

// Score returns the round-win tallies for both players.
func (m *Match) Score() (p1, p2 int) { return m.p1Wins, m.p2Wins }

// History returns the resolved rounds in play order. The returned slice
// must not be mutated.
func (m *Match) History() []RoundRecord { return m.history }

// HumanRecent returns player 1's recent moves, oldest first. Only
// populated in single-player mode.
func (m *Match) HumanRecent() []game.Move { return m.humanRecent }

// PlayRound resolves one round from two already-obtained moves. Both
// moves must be legal under the configured ruleset. Tallies, history,
// and the round counter are updated before returning.
func (m *Match) PlayRound(move1, move2 game.Move) (RoundRecord, error) {
	if m.Complete() {
		return RoundRecord{}, ErrMatchComplete
	}
	if !game.Legal(m.config.Ruleset, move1) {
		return RoundRecord{}, &InvalidMoveError{Move: move1, Ruleset: m.config.Ruleset}
	}
	if !game.Legal(m.config.Ruleset, move2) {
		return RoundRecord{}, &InvalidMoveError{Move: move2, Ruleset: m.config.Ruleset}
	}

	outcome := game.Resolve(m.config.Ruleset, move1, move2)
	switch outcome {
	case game.OutcomePlayer1:
		m.p1Wins++
	case game.OutcomePlayer2:
		m.p2Wins++
	}

	rec := RoundRecord{
		Round:   m.roundNumber,
		Move1:   move1,
		Move2:   move2,
		Outcome: outcome,
	}
	m.history = append(m.history, rec)
	m.roundNumber++
	return rec, nil
}

// PlaySingle plays one single-player round: the human move is recorded
// into the recent buffer, the policy picks the computer's answer, and
// the round is resolved.
func (m *Match) PlaySingle(human game.Move, policy *ai.Policy) (RoundRecord, error) {
	if m.Complete() {
		return RoundRecord{}, ErrMatchComplete
	}
	if !game.Legal(m.config.Ruleset, human) {
		return RoundRecord{}, &InvalidMoveError{Move: human, Ruleset: m.config.Ruleset}
	}

	m.pushRecent(human)
	computer := policy.Choose(m.config.Ruleset, m.config.Difficulty, m.humanRecent, human)
	return m.PlayRound(human, computer)
}

// pushRecent appends a move to the bounded recent buffer.
func (m *Match) pushRecent(mv game.Move) {
	m.humanRecent = append(m.humanRecent, mv)
	if len(m.humanRecent) > RecentCapacity {
		m.humanRecent = m.humanRecent[len(m.humanRecent)-RecentCapacity:]
	}
}

// Winner reports the match result if the completion predicate is
// satisfied. For the single-round format a tied round yields a tied
// match; for the other formats ties never count toward either total,
// so a best-of-n match can take more than n rounds.
func (m *Match) Winner() (game.Outcome, bool) {
	switch m.config.Format.Kind {
	case FormatSingleRound:
		if len(m.history) == 0 {
			return 0, false
		}
		return m.history[len(m.history)-1].Outcome, true
	case FormatBestOfN:
		needed := m.config.Format.Count/2 + 1
		return m.winnerByThreshold(needed)
	case FormatFirstToK:
		return m.winnerByThreshold(m.config.Format.Count)
	default:
		return 0, false
	}
}

func (m *Match) winnerByThreshold(needed int) (game.Outcome, bool) {
	if m.p1Wins >= needed {
		return game.OutcomePlayer1, true
	}
	if m.p2Wins >= needed {
		return game.OutcomePlayer2, true
	}
	return 0, false
}

// Complete reports whether the match has reached its terminal state.
func (m *Match) Complete() bool {
	_, done := m.Winner()
	return done
}

// ResetForRematch clears all round state while keeping the current
// configuration. SetConfig first to change settings for the rematch.
func (m *Match) ResetForRematch() {
	m.roundNumber = 1
	m.p1Wins = 0
	m.p2Wins = 0
	m.history = nil
	m.humanRecent = nil
}

// SetConfig replaces the configuration and resets all round state; a
// settings change mid-flow always starts a fresh match.
func (m *Match) SetConfig(cfg Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	m.config = cfg
	m.ResetForRematch()
	return nil
}

// Result is the completed match's contribution to the cumulative
// scoreboard: both players' round tallies plus the winner's name, empty
// for a tied match.
type Result struct {
	Player1     string
	Player2     string
	WinnerName  string
	P1RoundWins int
	P2RoundWins int
}

// Result computes the scoreboard merge arguments. ok is false while the
// match is still in progress.
func (m *Match) Result() (Result, bool) {
	outcome, done := m.Winner()
	if !done {
		return Result{}, false
	}

	res := Result{
		Player1:     m.config.Player1,
		Player2:     m.config.Player2,
		P1RoundWins: m.p1Wins,
		P2RoundWins: m.p2Wins,
	}
	switch outcome {
	case game.OutcomePlayer1:
		res.WinnerName = m.config.Player1
	case game.OutcomePlayer2:
		res.WinnerName = m.config.Player2
	}
	return res, true
}
