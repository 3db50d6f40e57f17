package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/rps-arena/internal/storage"
)

// MenuChoice identifies a main menu entry.
type MenuChoice int

const (
	MenuChoiceNone MenuChoice = iota
	MenuChoiceNewMatch
	MenuChoiceContinue
	MenuChoiceScoreboard
	MenuChoiceQuit
)

type menuItem struct {
	choice MenuChoice
	title  string
}

// MenuModel is the Bubble Tea model for the main menu.
type MenuModel struct {
	items     []menuItem
	cursor    int
	width     int
	height    int
	styles    Styles
	keyMapper *KeyMapper
	quitting  bool
	selected  MenuChoice
}

// NewMenuModel creates the main menu. The continue entry appears only
// when the store holds a saved match.
func NewMenuModel(store *storage.Store, styles Styles, width, height int) MenuModel {
	items := []menuItem{{MenuChoiceNewMatch, "Start a new match"}}

	if store != nil {
		if has, err := store.HasSavedMatch(); err == nil && has {
			items = append(items, menuItem{MenuChoiceContinue, "Continue the saved match"})
		}
	}

	items = append(items,
		menuItem{MenuChoiceScoreboard, "View the scoreboard"},
		menuItem{MenuChoiceQuit, "Exit"},
	)

	return MenuModel{
		items:     items,
		width:     width,
		height:    height,
		styles:    styles,
		keyMapper: NewKeyMapper(),
	}
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input for menu navigation.
func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action := m.keyMapper.MapKeyToMenuAction(msg)

	switch action {
	case MenuActionQuit:
		m.quitting = true
		m.selected = MenuChoiceQuit

	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}

	case MenuActionDown:
		if m.cursor < len(m.items)-1 {
			m.cursor++
		}

	case MenuActionSelect:
		m.selected = m.items[m.cursor].choice
		if m.selected == MenuChoiceQuit {
			m.quitting = true
		}
	}

	return m, nil
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText(m.styles.Title.Render("R O C K   P A P E R   S C I S S O R S"), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText(m.styles.Subtle.Render("Main menu"), m.width))
	b.WriteString("\n\n")

	for i, item := range m.items {
		cursor := "  "
		line := item.title
		if i == m.cursor {
			cursor = "> "
			line = m.styles.Cursor.Render(line)
		}
		b.WriteString(centerText(fmt.Sprintf("%s%s", cursor, line), m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	controls := "Up/Down: Navigate  |  Enter: Select  |  Q: Quit"
	b.WriteString(centerText(m.styles.Help.Render(controls), m.width))
	b.WriteString("\n")

	return b.String()
}

// Selected returns the chosen entry, MenuChoiceNone while browsing.
func (m MenuModel) Selected() MenuChoice {
	return m.selected
}
