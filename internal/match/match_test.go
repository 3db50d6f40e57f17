package match

import (
	"errors"
	"testing"

	"github.com/vovakirdan/rps-arena/internal/ai"
	"github.com/vovakirdan/rps-arena/internal/game"
)

func multiConfig(format Format) Config {
	return Config{
		Player1: "alice",
		Player2: "bob",
		Mode:    ModeMultiplayer,
		Ruleset: game.RulesetClassic,
		Format:  format,
	}
}

func singleConfig(format Format, d game.Difficulty) Config {
	return Config{
		Player1:    "alice",
		Player2:    "Computer",
		Mode:       ModeSinglePlayer,
		Ruleset:    game.RulesetClassic,
		Format:     format,
		Difficulty: d,
	}
}

// playOutcome plays one round engineered to produce the given outcome.
func playOutcome(t *testing.T, m *Match, want game.Outcome) {
	t.Helper()

	var m1, m2 game.Move
	switch want {
	case game.OutcomePlayer1:
		m1, m2 = game.Rock, game.Scissors
	case game.OutcomePlayer2:
		m1, m2 = game.Scissors, game.Rock
	default:
		m1, m2 = game.Paper, game.Paper
	}

	rec, err := m.PlayRound(m1, m2)
	if err != nil {
		t.Fatalf("PlayRound failed: %v", err)
	}
	if rec.Outcome != want {
		t.Fatalf("PlayRound outcome = %v, want %v", rec.Outcome, want)
	}
}

func TestTallyConsistency(t *testing.T) {
	f, _ := FirstTo(50)
	m, err := New(multiConfig(f))
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	seq := []game.Outcome{
		game.OutcomePlayer1, game.OutcomeTie, game.OutcomePlayer2,
		game.OutcomePlayer1, game.OutcomePlayer1, game.OutcomeTie,
		game.OutcomePlayer2,
	}
	for _, o := range seq {
		playOutcome(t, m, o)
	}

	p1, p2 := m.Score()
	ties := 0
	for _, rec := range m.History() {
		if rec.Outcome == game.OutcomeTie {
			ties++
		}
	}
	if p1+p2+ties != len(m.History()) {
		t.Errorf("tallies %d+%d+%d != history length %d", p1, p2, ties, len(m.History()))
	}
	if m.RoundNumber() != len(m.History())+1 {
		t.Errorf("round number %d, want %d", m.RoundNumber(), len(m.History())+1)
	}
}

func TestSingleRoundWinner(t *testing.T) {
	m, _ := New(multiConfig(SingleRound()))

	if _, done := m.Winner(); done {
		t.Fatal("match complete before any round")
	}

	playOutcome(t, m, game.OutcomeTie)

	outcome, done := m.Winner()
	if !done {
		t.Fatal("single-round match not complete after one round")
	}
	if outcome != game.OutcomeTie {
		t.Errorf("winner = %v, want tie", outcome)
	}

	if _, err := m.PlayRound(game.Rock, game.Paper); !errors.Is(err, ErrMatchComplete) {
		t.Errorf("PlayRound on complete match: err = %v, want ErrMatchComplete", err)
	}
}

func TestBestOfFiveThreshold(t *testing.T) {
	f, err := BestOf(5)
	if err != nil {
		t.Fatalf("BestOf(5) failed: %v", err)
	}
	m, _ := New(multiConfig(f))

	seq := []game.Outcome{game.OutcomePlayer1, game.OutcomePlayer1, game.OutcomePlayer2}
	for _, o := range seq {
		playOutcome(t, m, o)
		if _, done := m.Winner(); done {
			t.Fatalf("match complete too early at round %d", m.RoundNumber()-1)
		}
	}

	playOutcome(t, m, game.OutcomePlayer1)
	outcome, done := m.Winner()
	if !done || outcome != game.OutcomePlayer1 {
		t.Errorf("after 3 wins: winner = %v,%v, want player1,true", outcome, done)
	}
}

func TestBestOfTiesProlongMatch(t *testing.T) {
	// Ties never count toward the majority, so a best-of-3 can run past
	// three rounds.
	f, _ := BestOf(3)
	m, _ := New(multiConfig(f))

	for i := 0; i < 5; i++ {
		playOutcome(t, m, game.OutcomeTie)
	}
	if _, done := m.Winner(); done {
		t.Fatal("all-tie best-of-3 reported a winner")
	}

	playOutcome(t, m, game.OutcomePlayer2)
	playOutcome(t, m, game.OutcomePlayer2)
	outcome, done := m.Winner()
	if !done || outcome != game.OutcomePlayer2 {
		t.Errorf("winner = %v,%v, want player2,true", outcome, done)
	}
	if len(m.History()) != 7 {
		t.Errorf("history length = %d, want 7", len(m.History()))
	}
}

func TestFirstToThreshold(t *testing.T) {
	f, err := FirstTo(2)
	if err != nil {
		t.Fatalf("FirstTo(2) failed: %v", err)
	}
	m, _ := New(multiConfig(f))

	playOutcome(t, m, game.OutcomeTie)
	playOutcome(t, m, game.OutcomePlayer2)
	if _, done := m.Winner(); done {
		t.Fatal("match complete after one player2 win")
	}

	playOutcome(t, m, game.OutcomePlayer2)
	outcome, done := m.Winner()
	if !done || outcome != game.OutcomePlayer2 {
		t.Errorf("winner = %v,%v, want player2,true", outcome, done)
	}
}

func TestInvalidMoveRejected(t *testing.T) {
	m, _ := New(multiConfig(SingleRound()))

	_, err := m.PlayRound(game.Spock, game.Rock)
	var ime *InvalidMoveError
	if !errors.As(err, &ime) {
		t.Fatalf("PlayRound(Spock) under classic rules: err = %v, want InvalidMoveError", err)
	}
	if ime.Move != game.Spock {
		t.Errorf("error move = %v, want Spock", ime.Move)
	}

	// Nothing was recorded.
	if len(m.History()) != 0 || m.RoundNumber() != 1 {
		t.Error("rejected move mutated match state")
	}
}

func TestFormatValidation(t *testing.T) {
	if _, err := BestOf(4); err == nil {
		t.Error("BestOf(4) accepted an even count")
	}
	if _, err := BestOf(0); err == nil {
		t.Error("BestOf(0) accepted")
	}
	if _, err := FirstTo(0); err == nil {
		t.Error("FirstTo(0) accepted")
	}
	if _, err := BestOf(1); err != nil {
		t.Errorf("BestOf(1) rejected: %v", err)
	}

	var ife *InvalidFormatError
	_, err := BestOf(6)
	if !errors.As(err, &ife) {
		t.Errorf("BestOf(6) error type = %T, want InvalidFormatError", err)
	}
}

func TestConfigValidation(t *testing.T) {
	base := singleConfig(SingleRound(), game.DifficultyNormal)

	bad := base
	bad.Player1 = ""
	if _, err := New(bad); err == nil {
		t.Error("empty player 1 name accepted")
	}

	bad = base
	bad.Player2 = bad.Player1
	if _, err := New(bad); err == nil {
		t.Error("duplicate player names accepted")
	}

	bad = base
	bad.Difficulty = ""
	if _, err := New(bad); err == nil {
		t.Error("single-player config without difficulty accepted")
	}

	bad = multiConfig(SingleRound())
	bad.Difficulty = game.DifficultyHard
	if _, err := New(bad); err == nil {
		t.Error("multiplayer config with difficulty accepted")
	}

	if _, err := New(base); err != nil {
		t.Errorf("valid config rejected: %v", err)
	}
}

func TestRecentBufferBound(t *testing.T) {
	f, _ := FirstTo(100)
	m, _ := New(singleConfig(f, game.DifficultyEasy))
	policy := ai.NewSeeded(5)

	moves := game.LegalMoves(game.RulesetClassic)
	var all []game.Move
	for i := 0; i < 20; i++ {
		mv := moves[i%len(moves)]
		all = append(all, mv)
		if _, err := m.PlaySingle(mv, policy); err != nil {
			t.Fatalf("PlaySingle failed at round %d: %v", i+1, err)
		}
	}

	recent := m.HumanRecent()
	if len(recent) != RecentCapacity {
		t.Fatalf("recent buffer length = %d, want %d", len(recent), RecentCapacity)
	}
	want := all[len(all)-RecentCapacity:]
	for i, mv := range recent {
		if mv != want[i] {
			t.Errorf("recent[%d] = %v, want %v", i, mv, want[i])
		}
	}
}

func TestResetForRematch(t *testing.T) {
	f, _ := FirstTo(100)
	m, _ := New(singleConfig(f, game.DifficultyHard))
	policy := ai.NewSeeded(11)

	for i := 0; i < 5; i++ {
		if _, err := m.PlaySingle(game.Rock, policy); err != nil {
			t.Fatalf("PlaySingle failed: %v", err)
		}
	}

	cfg := m.Config()
	m.ResetForRematch()

	if m.RoundNumber() != 1 {
		t.Errorf("round number after reset = %d, want 1", m.RoundNumber())
	}
	p1, p2 := m.Score()
	if p1 != 0 || p2 != 0 {
		t.Errorf("score after reset = %d-%d, want 0-0", p1, p2)
	}
	if len(m.History()) != 0 {
		t.Errorf("history after reset has %d rounds", len(m.History()))
	}
	if len(m.HumanRecent()) != 0 {
		t.Errorf("recent buffer after reset has %d moves", len(m.HumanRecent()))
	}
	if m.Config() != cfg {
		t.Error("reset changed the configuration")
	}
}

func TestResult(t *testing.T) {
	f, _ := FirstTo(2)
	m, _ := New(multiConfig(f))

	if _, ok := m.Result(); ok {
		t.Fatal("Result available before completion")
	}

	playOutcome(t, m, game.OutcomePlayer1)
	playOutcome(t, m, game.OutcomePlayer2)
	playOutcome(t, m, game.OutcomeTie)
	playOutcome(t, m, game.OutcomePlayer1)

	res, ok := m.Result()
	if !ok {
		t.Fatal("Result unavailable after completion")
	}
	if res.WinnerName != "alice" {
		t.Errorf("winner name = %q, want alice", res.WinnerName)
	}
	if res.P1RoundWins != 2 || res.P2RoundWins != 1 {
		t.Errorf("round wins = %d-%d, want 2-1", res.P1RoundWins, res.P2RoundWins)
	}
}

func TestResultTiedSingleRound(t *testing.T) {
	m, _ := New(multiConfig(SingleRound()))
	playOutcome(t, m, game.OutcomeTie)

	res, ok := m.Result()
	if !ok {
		t.Fatal("Result unavailable for tied single round")
	}
	if res.WinnerName != "" {
		t.Errorf("tied match winner name = %q, want empty", res.WinnerName)
	}
}

func TestSetConfigResetsState(t *testing.T) {
	f, _ := BestOf(3)
	m, _ := New(multiConfig(f))
	playOutcome(t, m, game.OutcomePlayer1)

	next := singleConfig(SingleRound(), game.DifficultyEasy)
	if err := m.SetConfig(next); err != nil {
		t.Fatalf("SetConfig failed: %v", err)
	}

	if m.Config().Mode != ModeSinglePlayer {
		t.Error("SetConfig did not apply new config")
	}
	if len(m.History()) != 0 || m.RoundNumber() != 1 {
		t.Error("SetConfig did not reset round state")
	}

	if err := m.SetConfig(Config{}); err == nil {
		t.Error("SetConfig accepted invalid config")
	}
}
