// Package tui provides the Bubble Tea integration for the rps platform:
// the main menu, the match setup wizard, the match screen, the
// scoreboard, and SSH serving via Wish.
package tui

import (
	tea "github.com/charmbracelet/bubbletea"
)

// KeyMapper translates Bubble Tea key messages to UI actions.
// This centralizes key bindings and makes them testable.
type KeyMapper struct{}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// MenuAction represents a menu-specific action derived from input.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionSelect
	MenuActionBack
	MenuActionQuit
)

// MapKeyToMenuAction translates a key to a menu action.
func (km *KeyMapper) MapKeyToMenuAction(msg tea.KeyMsg) MenuAction {
	key := msg.String()

	switch key {
	case "ctrl+c", "q":
		return MenuActionQuit
	case "w", "up", "k": // vim-style k for up
		return MenuActionUp
	case "s", "down", "j": // vim-style j for down
		return MenuActionDown
	case "enter", " ":
		return MenuActionSelect
	case "b", "esc":
		return MenuActionBack
	}

	return MenuActionNone
}

// ListAction is navigation inside selection lists where w/s and k/j are
// reserved for move shortcuts (scissors, spock).
type ListAction int

const (
	ListActionNone ListAction = iota
	ListActionUp
	ListActionDown
	ListActionSelect
	ListActionBack
	ListActionQuit
)

// MapKeyToListAction translates a key using arrow navigation only.
func (km *KeyMapper) MapKeyToListAction(msg tea.KeyMsg) ListAction {
	switch msg.String() {
	case "ctrl+c":
		return ListActionQuit
	case "up":
		return ListActionUp
	case "down":
		return ListActionDown
	case "enter":
		return ListActionSelect
	case "esc":
		return ListActionBack
	}
	return ListActionNone
}
