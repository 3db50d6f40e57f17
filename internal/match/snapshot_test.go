package match

import (
	"errors"
	"reflect"
	"testing"

	"github.com/vovakirdan/rps-arena/internal/ai"
	"github.com/vovakirdan/rps-arena/internal/game"
)

func TestSnapshotRoundTrip(t *testing.T) {
	f, _ := FirstTo(10)
	cfg := Config{
		Player1:    "alice",
		Player2:    "Computer",
		Mode:       ModeSinglePlayer,
		Ruleset:    game.RulesetExtended,
		Format:     f,
		Difficulty: game.DifficultyHard,
	}
	m, err := New(cfg)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	policy := ai.NewSeeded(21)
	moves := []game.Move{
		game.Rock, game.Spock, game.Lizard, game.Paper,
		game.Rock, game.Scissors, game.Rock,
	}
	for _, mv := range moves {
		if _, err := m.PlaySingle(mv, policy); err != nil {
			t.Fatalf("PlaySingle failed: %v", err)
		}
	}

	data, err := m.MarshalSnapshot()
	if err != nil {
		t.Fatalf("MarshalSnapshot failed: %v", err)
	}

	restored, err := Restore(data)
	if err != nil {
		t.Fatalf("Restore failed: %v", err)
	}

	if restored.Config() != m.Config() {
		t.Errorf("config mismatch: %+v vs %+v", restored.Config(), m.Config())
	}
	if restored.RoundNumber() != m.RoundNumber() {
		t.Errorf("round number %d, want %d", restored.RoundNumber(), m.RoundNumber())
	}
	rp1, rp2 := restored.Score()
	p1, p2 := m.Score()
	if rp1 != p1 || rp2 != p2 {
		t.Errorf("score %d-%d, want %d-%d", rp1, rp2, p1, p2)
	}
	if !reflect.DeepEqual(restored.History(), m.History()) {
		t.Errorf("history mismatch:\n%v\n%v", restored.History(), m.History())
	}
	if !reflect.DeepEqual(restored.HumanRecent(), m.HumanRecent()) {
		t.Errorf("recent buffer mismatch: %v vs %v", restored.HumanRecent(), m.HumanRecent())
	}
}

func TestRestoreRejectsGarbage(t *testing.T) {
	if _, err := Restore([]byte("not json")); !errors.Is(err, ErrMalformedSnapshot) {
		t.Errorf("garbage input: err = %v, want ErrMalformedSnapshot", err)
	}
	if _, err := Restore([]byte(`{"config":{}}`)); !errors.Is(err, ErrMalformedSnapshot) {
		t.Errorf("empty config: err = %v, want ErrMalformedSnapshot", err)
	}
}

func TestRestoreRejectsInvariantViolations(t *testing.T) {
	f, _ := BestOf(5)
	good := Snapshot{
		Config: Config{
			Player1: "alice",
			Player2: "bob",
			Mode:    ModeMultiplayer,
			Ruleset: game.RulesetClassic,
			Format:  f,
		},
		RoundNumber: 2,
		P1Wins:      1,
		History: []RoundRecord{
			{Round: 1, Move1: game.Rock, Move2: game.Scissors, Outcome: game.OutcomePlayer1},
		},
	}
	if _, err := FromSnapshot(good); err != nil {
		t.Fatalf("valid snapshot rejected: %v", err)
	}

	tests := []struct {
		name   string
		mutate func(*Snapshot)
	}{
		{"round number mismatch", func(s *Snapshot) { s.RoundNumber = 5 }},
		{"tally mismatch", func(s *Snapshot) { s.P1Wins = 3 }},
		{"history order", func(s *Snapshot) { s.History[0].Round = 7 }},
		{"illegal history move", func(s *Snapshot) { s.History[0].Move1 = game.Spock }},
		{"outcome mismatch", func(s *Snapshot) { s.History[0].Outcome = game.OutcomePlayer2 }},
		{"oversized recent buffer", func(s *Snapshot) {
			for i := 0; i < RecentCapacity+1; i++ {
				s.HumanRecent = append(s.HumanRecent, game.Rock)
			}
		}},
		{"illegal recent move", func(s *Snapshot) { s.HumanRecent = []game.Move{game.Lizard} }},
		{"even best-of count", func(s *Snapshot) { s.Config.Format.Count = 4 }},
	}

	for _, tt := range tests {
		snap := good
		snap.History = append([]RoundRecord(nil), good.History...)
		snap.HumanRecent = nil
		tt.mutate(&snap)

		if _, err := FromSnapshot(snap); !errors.Is(err, ErrMalformedSnapshot) {
			t.Errorf("%s: err = %v, want ErrMalformedSnapshot", tt.name, err)
		}
	}
}

func TestRestoredMatchContinues(t *testing.T) {
	f, _ := FirstTo(2)
	m, _ := New(Config{
		Player1: "alice",
		Player2: "bob",
		Mode:    ModeMultiplayer,
		Ruleset: game.RulesetClassic,
		Format:  f,
	})
	if _, err := m.PlayRound(game.Rock, game.Scissors); err != nil {
		t.Fatalf("PlayRound failed: %v", err)
	}

	data, _ := m.MarshalSnapshot()
	restored, err := Restore(data)
	if err != nil {
		t.Fatalf("Restore failed: %v", err)
	}

	if _, err := restored.PlayRound(game.Paper, game.Rock); err != nil {
		t.Fatalf("restored match refused a round: %v", err)
	}
	outcome, done := restored.Winner()
	if !done || outcome != game.OutcomePlayer1 {
		t.Errorf("restored match winner = %v,%v, want player1,true", outcome, done)
	}
}
