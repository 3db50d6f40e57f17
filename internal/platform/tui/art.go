package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/rps-arena/internal/game"
)

const artRock = `
    _______
---'   ____)
      (_____)
      (_____)
      (____)
---.__(___)
`

const artPaper = `
     _______
---'   ____)____
          ______)
          _______)
         _______)
---.__________)
`

const artScissors = `
    _______
---'   ____)____
          ______)
       __________)
      (____)
---.__(___)
`

const artLizard = `
     __,---._
    /        '.
   |   .-"""-. |
   |  /  _ _  \|
    \ | | | | |
     \| |_| |_|/
       \      /
        '-..-'
`

const artSpock = `
   \ / _ _ \
    |/ / \ \|
    | | | | |
    | |_| |_|
    \       /
     '-...-'
`

// MoveArt returns the hand-shape art for a move.
func MoveArt(m game.Move) string {
	switch m {
	case game.Rock:
		return artRock
	case game.Paper:
		return artPaper
	case game.Scissors:
		return artScissors
	case game.Lizard:
		return artLizard
	case game.Spock:
		return artSpock
	default:
		return ""
	}
}

// Styles bundles the lipgloss styles used across screens. When color is
// disabled every style degrades to plain text.
type Styles struct {
	Title   lipgloss.Style
	Subtle  lipgloss.Style
	Win     lipgloss.Style
	Loss    lipgloss.Style
	Tie     lipgloss.Style
	Error   lipgloss.Style
	Cursor  lipgloss.Style
	Boxed   lipgloss.Style
	Help    lipgloss.Style
	Colored bool
}

// NewStyles builds the style set.
func NewStyles(color bool) Styles {
	if !color {
		plain := lipgloss.NewStyle()
		return Styles{
			Title: plain.Bold(true),
			Boxed: plain.Border(lipgloss.RoundedBorder()).Padding(0, 1),
		}
	}
	return Styles{
		Title:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229")),
		Subtle:  lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		Win:     lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10")),
		Loss:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9")),
		Tie:     lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("11")),
		Error:   lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
		Cursor:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229")),
		Boxed:   lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("240")).Padding(0, 1),
		Help:    lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		Colored: true,
	}
}

// centerText centers text within given width.
func centerText(text string, width int) string {
	if len(text) >= width {
		return text
	}
	padding := (width - len(text)) / 2
	return strings.Repeat(" ", padding) + text
}

// centerBlock centers every line of a multi-line block.
func centerBlock(block string, width int) string {
	lines := strings.Split(block, "\n")
	for i, line := range lines {
		lines[i] = centerText(line, width)
	}
	return strings.Join(lines, "\n")
}
