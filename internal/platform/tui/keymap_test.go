package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func keyMsg(s string) tea.KeyMsg {
	if len(s) == 1 {
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
	switch s {
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	}
	return tea.KeyMsg{}
}

func TestMapKeyToMenuAction(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		key  string
		want MenuAction
	}{
		{"up", MenuActionUp},
		{"k", MenuActionUp},
		{"w", MenuActionUp},
		{"down", MenuActionDown},
		{"j", MenuActionDown},
		{"s", MenuActionDown},
		{"enter", MenuActionSelect},
		{"esc", MenuActionBack},
		{"b", MenuActionBack},
		{"q", MenuActionQuit},
		{"ctrl+c", MenuActionQuit},
		{"x", MenuActionNone},
	}

	for _, tt := range tests {
		if got := km.MapKeyToMenuAction(keyMsg(tt.key)); got != tt.want {
			t.Errorf("MapKeyToMenuAction(%q) = %v, want %v", tt.key, got, tt.want)
		}
	}
}

// Letters must not navigate selection lists; s, l, and k are move
// shortcuts there.
func TestMapKeyToListActionIgnoresLetters(t *testing.T) {
	km := NewKeyMapper()

	for _, letter := range []string{"r", "p", "s", "l", "k", "j", "w", "q"} {
		if got := km.MapKeyToListAction(keyMsg(letter)); got != ListActionNone {
			t.Errorf("MapKeyToListAction(%q) = %v, want ListActionNone", letter, got)
		}
	}

	tests := []struct {
		key  string
		want ListAction
	}{
		{"up", ListActionUp},
		{"down", ListActionDown},
		{"enter", ListActionSelect},
		{"esc", ListActionBack},
		{"ctrl+c", ListActionQuit},
	}
	for _, tt := range tests {
		if got := km.MapKeyToListAction(keyMsg(tt.key)); got != tt.want {
			t.Errorf("MapKeyToListAction(%q) = %v, want %v", tt.key, got, tt.want)
		}
	}
}
