package game

import "testing"

func TestResolveTournament(t *testing.T) {
	// For every pair of distinct legal moves exactly one direction wins,
	// and the mirrored pair resolves to the opposite player.
	for _, r := range Rulesets() {
		moves := LegalMoves(r)
		for _, a := range moves {
			for _, b := range moves {
				got := Resolve(r, a, b)
				if a == b {
					if got != OutcomeTie {
						t.Errorf("%s: Resolve(%v, %v) = %v, want tie", r, a, b, got)
					}
					continue
				}
				if got == OutcomeTie {
					t.Errorf("%s: Resolve(%v, %v) = tie for distinct moves", r, a, b)
					continue
				}
				mirror := Resolve(r, b, a)
				if got == OutcomePlayer1 && mirror != OutcomePlayer2 {
					t.Errorf("%s: Resolve(%v, %v) and Resolve(%v, %v) both favor player1", r, a, b, b, a)
				}
				if got == OutcomePlayer2 && mirror != OutcomePlayer1 {
					t.Errorf("%s: Resolve(%v, %v) and Resolve(%v, %v) both favor player2", r, a, b, b, a)
				}
			}
		}
	}
}

func TestExtendedAgreesWithClassic(t *testing.T) {
	// On the classic move subset the extended relation must not change
	// any result.
	for _, a := range LegalMoves(RulesetClassic) {
		for _, b := range LegalMoves(RulesetClassic) {
			classic := Resolve(RulesetClassic, a, b)
			extended := Resolve(RulesetExtended, a, b)
			if classic != extended {
				t.Errorf("Resolve(%v, %v): classic=%v extended=%v", a, b, classic, extended)
			}
		}
	}
}

func TestResolveKnownPairs(t *testing.T) {
	tests := []struct {
		ruleset Ruleset
		a, b    Move
		want    Outcome
	}{
		{RulesetClassic, Rock, Scissors, OutcomePlayer1},
		{RulesetClassic, Paper, Rock, OutcomePlayer1},
		{RulesetClassic, Scissors, Paper, OutcomePlayer1},
		{RulesetClassic, Rock, Paper, OutcomePlayer2},
		{RulesetExtended, Lizard, Spock, OutcomePlayer1},
		{RulesetExtended, Lizard, Paper, OutcomePlayer1},
		{RulesetExtended, Spock, Rock, OutcomePlayer1},
		{RulesetExtended, Spock, Scissors, OutcomePlayer1},
		{RulesetExtended, Rock, Lizard, OutcomePlayer1},
		{RulesetExtended, Paper, Spock, OutcomePlayer1},
		{RulesetExtended, Scissors, Spock, OutcomePlayer2},
	}

	for _, tt := range tests {
		if got := Resolve(tt.ruleset, tt.a, tt.b); got != tt.want {
			t.Errorf("Resolve(%s, %v, %v) = %v, want %v", tt.ruleset, tt.a, tt.b, got, tt.want)
		}
	}
}

func TestCounters(t *testing.T) {
	// Every legal move must have at least one counter, and every counter
	// must beat the target.
	for _, r := range Rulesets() {
		for _, target := range LegalMoves(r) {
			counters := Counters(r, target)
			if len(counters) == 0 {
				t.Errorf("%s: no counters for %v", r, target)
			}
			for _, c := range counters {
				if !Beats(r, c, target) {
					t.Errorf("%s: counter %v does not beat %v", r, c, target)
				}
				if !Legal(r, c) {
					t.Errorf("%s: counter %v is not legal", r, c)
				}
			}
		}
	}

	// Extended counters are exactly the two moves that beat the target.
	counters := Counters(RulesetExtended, Rock)
	if len(counters) != 2 {
		t.Errorf("extended counters for Rock = %v, want 2 moves", counters)
	}
}

func TestParseMove(t *testing.T) {
	tests := []struct {
		input   string
		ruleset Ruleset
		want    Move
		ok      bool
	}{
		{"rock", RulesetClassic, Rock, true},
		{"r", RulesetClassic, Rock, true},
		{"p", RulesetClassic, Paper, true},
		{"scissors", RulesetClassic, Scissors, true},
		{"lizard", RulesetClassic, 0, false},
		{"spock", RulesetClassic, 0, false},
		{"l", RulesetExtended, Lizard, true},
		{"k", RulesetExtended, Spock, true},
		{"spock", RulesetExtended, Spock, true},
		{"", RulesetClassic, 0, false},
		{"x", RulesetExtended, 0, false},
	}

	for _, tt := range tests {
		got, ok := ParseMove(tt.input, tt.ruleset)
		if ok != tt.ok {
			t.Errorf("ParseMove(%q, %s) ok = %v, want %v", tt.input, tt.ruleset, ok, tt.ok)
			continue
		}
		if ok && got != tt.want {
			t.Errorf("ParseMove(%q, %s) = %v, want %v", tt.input, tt.ruleset, got, tt.want)
		}
	}
}

func TestMoveTextRoundTrip(t *testing.T) {
	for _, m := range LegalMoves(RulesetExtended) {
		text, err := m.MarshalText()
		if err != nil {
			t.Fatalf("MarshalText(%v) failed: %v", m, err)
		}
		var back Move
		if err := back.UnmarshalText(text); err != nil {
			t.Fatalf("UnmarshalText(%q) failed: %v", text, err)
		}
		if back != m {
			t.Errorf("round trip %v -> %q -> %v", m, text, back)
		}
	}

	var m Move
	if err := m.UnmarshalText([]byte("banana")); err == nil {
		t.Error("UnmarshalText accepted unknown move")
	}
}

func TestLegalMoves(t *testing.T) {
	if n := len(LegalMoves(RulesetClassic)); n != 3 {
		t.Errorf("classic legal moves = %d, want 3", n)
	}
	if n := len(LegalMoves(RulesetExtended)); n != 5 {
		t.Errorf("extended legal moves = %d, want 5", n)
	}
	if Legal(RulesetClassic, Spock) {
		t.Error("Spock should not be legal under classic rules")
	}
}
