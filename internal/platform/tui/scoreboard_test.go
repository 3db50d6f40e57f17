package tui

import (
	"strings"
	"testing"
)

// The play command keeps the session alive with a nil store when the
// database fails to open, so every scoreboard path must tolerate one.
func TestScoreboardWithoutStore(t *testing.T) {
	m := NewScoreboardModel(nil, NewStyles(false), 80, 24)

	view := m.View()
	if !strings.Contains(view, "Scoreboard unavailable") {
		t.Errorf("View() without store = %q, want unavailable notice", view)
	}

	// Sort cycling triggers a reload; it must not query the nil store.
	updated, _ := m.Update(keyMsg("tab"))
	m = updated.(ScoreboardModel)
	if !strings.Contains(m.View(), "Scoreboard unavailable") {
		t.Error("View() after sort change lost the unavailable notice")
	}

	updated, _ = m.Update(keyMsg("esc"))
	m = updated.(ScoreboardModel)
	if !m.Done() {
		t.Error("esc did not leave the scoreboard")
	}
}
