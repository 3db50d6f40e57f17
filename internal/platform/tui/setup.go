package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/rps-arena/internal/config"
	"github.com/vovakirdan/rps-arena/internal/game"
	"github.com/vovakirdan/rps-arena/internal/match"
)

// setupStep enumerates the wizard screens in order.
type setupStep int

const (
	stepPlayer1 setupStep = iota
	stepMode
	stepPlayer2
	stepDifficulty
	stepRuleset
	stepFormat
	stepCount
	stepDone
)

// SetupModel is the match setup wizard. It walks through names, mode,
// difficulty, ruleset, and format and produces a validated match.Config.
type SetupModel struct {
	step      setupStep
	defaults  config.DefaultsConfig
	styles    Styles
	keyMapper *KeyMapper
	width     int
	height    int

	nameInput  textinput.Model
	countInput textinput.Model
	cursor     int
	errMsg     string

	player1    string
	player2    string
	mode       match.Mode
	difficulty game.Difficulty
	ruleset    game.Ruleset
	formatKind match.FormatKind
	format     match.Format

	done      bool
	cancelled bool
}

// NewSetupModel creates the wizard. defaultName pre-fills player 1
// (the SSH username when serving remotely); defaults pre-select the
// configured ruleset, format, and difficulty.
func NewSetupModel(defaultName string, defaults config.DefaultsConfig, styles Styles, width, height int) SetupModel {
	name := textinput.New()
	name.Placeholder = "Player 1"
	name.CharLimit = 24
	name.SetValue(defaultName)
	name.Focus()

	count := textinput.New()
	count.Placeholder = "3"
	count.CharLimit = 3

	return SetupModel{
		step:       stepPlayer1,
		defaults:   defaults,
		styles:     styles,
		keyMapper:  NewKeyMapper(),
		width:      width,
		height:     height,
		nameInput:  name,
		countInput: count,
	}
}

// Init initializes the wizard.
func (m SetupModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages for the wizard.
func (m SetupModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	}

	return m.updateInputs(msg)
}

func (m SetupModel) updateInputs(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch m.step {
	case stepPlayer1, stepPlayer2:
		m.nameInput, cmd = m.nameInput.Update(msg)
	case stepCount:
		m.countInput, cmd = m.countInput.Update(msg)
	}
	return m, cmd
}

func (m SetupModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "esc":
		m.cancelled = true
		return m, nil
	}

	switch m.step {
	case stepPlayer1, stepPlayer2, stepCount:
		if msg.String() == "enter" {
			return m.submitText()
		}
		return m.updateInputs(msg)
	default:
		return m.handleChoiceKey(msg)
	}
}

// submitText validates the current text input and advances.
func (m SetupModel) submitText() (tea.Model, tea.Cmd) {
	m.errMsg = ""

	switch m.step {
	case stepPlayer1:
		name := strings.TrimSpace(m.nameInput.Value())
		if name == "" {
			m.errMsg = "Name can't be empty."
			return m, nil
		}
		m.player1 = name
		m.nameInput.Reset()
		m.nameInput.Placeholder = "Player 2"
		m.step = stepMode
		m.cursor = 0

	case stepPlayer2:
		name := strings.TrimSpace(m.nameInput.Value())
		if name == "" || name == m.player1 {
			m.errMsg = "Name can't be empty and must differ from Player 1."
			return m, nil
		}
		m.player2 = name
		m.step = stepRuleset
		m.cursor = m.rulesetIndex()

	case stepCount:
		n, err := strconv.Atoi(strings.TrimSpace(m.countInput.Value()))
		if err != nil {
			m.errMsg = "Enter a number."
			return m, nil
		}
		var f match.Format
		if m.formatKind == match.FormatBestOfN {
			f, err = match.BestOf(n)
		} else {
			f, err = match.FirstTo(n)
		}
		if err != nil {
			m.errMsg = err.Error()
			return m, nil
		}
		m.format = f
		m.step = stepDone
		m.finish()
	}

	return m, nil
}

func (m SetupModel) handleChoiceKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	options := m.choiceCount()

	switch m.keyMapper.MapKeyToMenuAction(msg) {
	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}
	case MenuActionDown:
		if m.cursor < options-1 {
			m.cursor++
		}
	case MenuActionSelect:
		return m.submitChoice()
	}

	return m, nil
}

func (m SetupModel) choiceCount() int {
	switch m.step {
	case stepMode:
		return 2
	case stepDifficulty:
		return len(game.Difficulties())
	case stepRuleset:
		return len(game.Rulesets())
	case stepFormat:
		return 3
	default:
		return 0
	}
}

func (m SetupModel) submitChoice() (tea.Model, tea.Cmd) {
	m.errMsg = ""

	switch m.step {
	case stepMode:
		if m.cursor == 0 {
			m.mode = match.ModeSinglePlayer
			m.player2 = "Computer"
			m.step = stepDifficulty
			m.cursor = m.difficultyIndex()
		} else {
			m.mode = match.ModeMultiplayer
			m.step = stepPlayer2
			m.nameInput.Focus()
		}

	case stepDifficulty:
		m.difficulty = game.Difficulties()[m.cursor]
		m.step = stepRuleset
		m.cursor = m.rulesetIndex()

	case stepRuleset:
		m.ruleset = game.Rulesets()[m.cursor]
		m.step = stepFormat
		m.cursor = m.formatIndex()

	case stepFormat:
		switch m.cursor {
		case 0:
			m.formatKind = match.FormatSingleRound
			m.format = match.SingleRound()
			m.step = stepDone
			m.finish()
		case 1:
			m.formatKind = match.FormatBestOfN
			m.step = stepCount
			m.prepareCountInput()
		default:
			m.formatKind = match.FormatFirstToK
			m.step = stepCount
			m.prepareCountInput()
		}
	}

	return m, nil
}

func (m *SetupModel) prepareCountInput() {
	m.countInput.Reset()
	if m.defaults.Count > 0 {
		m.countInput.SetValue(strconv.Itoa(m.defaults.Count))
	}
	m.countInput.Focus()
}

func (m *SetupModel) finish() {
	m.done = true
}

// Default cursor positions from config defaults.

func (m SetupModel) difficultyIndex() int {
	for i, d := range game.Difficulties() {
		if string(d) == m.defaults.Difficulty {
			return i
		}
	}
	return 1 // normal
}

func (m SetupModel) rulesetIndex() int {
	for i, r := range game.Rulesets() {
		if string(r) == m.defaults.Ruleset {
			return i
		}
	}
	return 0
}

func (m SetupModel) formatIndex() int {
	switch match.FormatKind(m.defaults.Format) {
	case match.FormatBestOfN:
		return 1
	case match.FormatFirstToK:
		return 2
	default:
		return 0
	}
}

// View renders the current wizard step.
func (m SetupModel) View() string {
	if m.done || m.cancelled {
		return ""
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(centerText(m.styles.Title.Render("New match setup"), m.width))
	b.WriteString("\n\n")

	switch m.step {
	case stepPlayer1:
		b.WriteString(centerText("Player 1 name:", m.width))
		b.WriteString("\n\n")
		b.WriteString(centerText(m.nameInput.View(), m.width))
	case stepPlayer2:
		b.WriteString(centerText("Player 2 name:", m.width))
		b.WriteString("\n\n")
		b.WriteString(centerText(m.nameInput.View(), m.width))
	case stepMode:
		m.renderChoices(&b, "Choose mode:", []string{"Single-player (vs computer)", "Multiplayer (hot seat)"})
	case stepDifficulty:
		titles := make([]string, 0, len(game.Difficulties()))
		for _, d := range game.Difficulties() {
			titles = append(titles, d.Title())
		}
		m.renderChoices(&b, "Choose difficulty:", titles)
	case stepRuleset:
		titles := make([]string, 0, len(game.Rulesets()))
		for _, r := range game.Rulesets() {
			titles = append(titles, r.Title())
		}
		m.renderChoices(&b, "Choose ruleset:", titles)
	case stepFormat:
		m.renderChoices(&b, "Choose match format:", []string{"Single round", "Best of N", "First to K wins"})
	case stepCount:
		prompt := "Enter N (odd number >= 1):"
		if m.formatKind == match.FormatFirstToK {
			prompt = "Enter K (>= 1):"
		}
		b.WriteString(centerText(prompt, m.width))
		b.WriteString("\n\n")
		b.WriteString(centerText(m.countInput.View(), m.width))
	}

	if m.errMsg != "" {
		b.WriteString("\n\n")
		b.WriteString(centerText(m.styles.Error.Render(m.errMsg), m.width))
	}

	b.WriteString("\n\n")
	b.WriteString(centerText(m.styles.Help.Render("Enter: Confirm  |  Esc: Cancel"), m.width))
	return b.String()
}

func (m SetupModel) renderChoices(b *strings.Builder, prompt string, options []string) {
	b.WriteString(centerText(prompt, m.width))
	b.WriteString("\n\n")
	for i, opt := range options {
		cursor := "  "
		if i == m.cursor {
			cursor = "> "
			opt = m.styles.Cursor.Render(opt)
		}
		b.WriteString(centerText(fmt.Sprintf("%s%s", cursor, opt), m.width))
		b.WriteString("\n")
	}
}

// Done reports whether the wizard finished.
func (m SetupModel) Done() bool { return m.done }

// Cancelled reports whether the user backed out.
func (m SetupModel) Cancelled() bool { return m.cancelled }

// Config returns the assembled match configuration once Done.
func (m SetupModel) Config() match.Config {
	return match.Config{
		Player1:    m.player1,
		Player2:    m.player2,
		Mode:       m.mode,
		Ruleset:    m.ruleset,
		Format:     m.format,
		Difficulty: m.difficulty,
	}
}
