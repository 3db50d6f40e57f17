package tui

import (
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/rps-arena/internal/ai"
	"github.com/vovakirdan/rps-arena/internal/config"
	"github.com/vovakirdan/rps-arena/internal/match"
	"github.com/vovakirdan/rps-arena/internal/storage"
)

// sessionScreen tracks which sub-model currently owns the terminal.
type sessionScreen int

const (
	screenMenu sessionScreen = iota
	screenSetup
	screenMatch
	screenScoreboard
)

// SessionModel is the composite model for one interactive session,
// local or over SSH. It routes between the menu, the setup wizard, the
// match screen, and the scoreboard, and owns the saved-match restore
// flow.
type SessionModel struct {
	cfg         config.AppConfig
	store       *storage.Store
	policy      *ai.Policy
	styles      Styles
	defaultName string
	width       int
	height      int

	screen     sessionScreen
	menu       MenuModel
	setup      SetupModel
	matchModel MatchModel
	scoreboard ScoreboardModel
	errMsg     string
}

// NewSessionModel creates a session starting at the main menu.
// defaultName pre-fills the player 1 name in the setup wizard.
func NewSessionModel(cfg config.AppConfig, store *storage.Store, policy *ai.Policy, defaultName string, color bool, width, height int) SessionModel {
	styles := NewStyles(color)
	return SessionModel{
		cfg:         cfg,
		store:       store,
		policy:      policy,
		styles:      styles,
		defaultName: defaultName,
		width:       width,
		height:      height,
		screen:      screenMenu,
		menu:        NewMenuModel(store, styles, width, height),
	}
}

// Init initializes the session.
func (m SessionModel) Init() tea.Cmd {
	return m.menu.Init()
}

// Update routes messages to the active screen and handles transitions.
func (m SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if size, ok := msg.(tea.WindowSizeMsg); ok {
		m.width = size.Width
		m.height = size.Height
	}

	switch m.screen {
	case screenMenu:
		return m.updateMenu(msg)
	case screenSetup:
		return m.updateSetup(msg)
	case screenMatch:
		return m.updateMatch(msg)
	case screenScoreboard:
		return m.updateScoreboard(msg)
	}
	return m, nil
}

func (m SessionModel) updateMenu(msg tea.Msg) (tea.Model, tea.Cmd) {
	updated, cmd := m.menu.Update(msg)
	m.menu = updated.(MenuModel)

	switch m.menu.Selected() {
	case MenuChoiceNewMatch:
		return m.toSetup()
	case MenuChoiceContinue:
		return m.restoreSaved()
	case MenuChoiceScoreboard:
		m.scoreboard = NewScoreboardModel(m.store, m.styles, m.width, m.height)
		m.screen = screenScoreboard
		return m, m.scoreboard.Init()
	case MenuChoiceQuit:
		return m, tea.Quit
	}
	return m, cmd
}

func (m SessionModel) toSetup() (tea.Model, tea.Cmd) {
	m.setup = NewSetupModel(m.defaultName, m.cfg.Defaults, m.styles, m.width, m.height)
	m.screen = screenSetup
	return m, m.setup.Init()
}

// restoreSaved loads the snapshot from the saved slot and resumes it.
// A malformed snapshot is reported and the slot is left intact so it
// can be inspected; the user returns to the menu.
func (m SessionModel) restoreSaved() (tea.Model, tea.Cmd) {
	data, err := m.store.LoadMatch()
	if err != nil {
		m.errMsg = err.Error()
		return m.backToMenu()
	}

	restored, err := match.Restore(data)
	if err != nil {
		if errors.Is(err, match.ErrMalformedSnapshot) {
			m.errMsg = fmt.Sprintf("Saved match is corrupted: %v", err)
		} else {
			m.errMsg = err.Error()
		}
		return m.backToMenu()
	}

	m.matchModel = NewMatchModel(restored, m.policy, m.store, m.styles, m.cfg.UI.ASCIIArt, m.width, m.height)
	m.screen = screenMatch
	return m, m.matchModel.Init()
}

func (m SessionModel) updateSetup(msg tea.Msg) (tea.Model, tea.Cmd) {
	updated, cmd := m.setup.Update(msg)
	m.setup = updated.(SetupModel)

	if m.setup.Cancelled() {
		return m.backToMenu()
	}
	if m.setup.Done() {
		mt, err := match.New(m.setup.Config())
		if err != nil {
			m.errMsg = err.Error()
			return m.backToMenu()
		}
		m.matchModel = NewMatchModel(mt, m.policy, m.store, m.styles, m.cfg.UI.ASCIIArt, m.width, m.height)
		m.screen = screenMatch
		return m, m.matchModel.Init()
	}
	return m, cmd
}

func (m SessionModel) updateMatch(msg tea.Msg) (tea.Model, tea.Cmd) {
	updated, cmd := m.matchModel.Update(msg)
	m.matchModel = updated.(MatchModel)

	switch {
	case m.matchModel.Quit(), m.matchModel.Saved():
		return m.backToMenu()
	case m.matchModel.Rematch():
		// Same settings, fresh state; the match was already reset.
		m.matchModel = NewMatchModel(m.matchModel.Match(), m.policy, m.store, m.styles, m.cfg.UI.ASCIIArt, m.width, m.height)
		return m, m.matchModel.Init()
	case m.matchModel.NewSettings():
		return m.toSetup()
	}
	return m, cmd
}

func (m SessionModel) updateScoreboard(msg tea.Msg) (tea.Model, tea.Cmd) {
	updated, cmd := m.scoreboard.Update(msg)
	m.scoreboard = updated.(ScoreboardModel)

	if m.scoreboard.Done() {
		return m.backToMenu()
	}
	return m, cmd
}

func (m SessionModel) backToMenu() (tea.Model, tea.Cmd) {
	m.menu = NewMenuModel(m.store, m.styles, m.width, m.height)
	m.screen = screenMenu
	return m, m.menu.Init()
}

// View renders the active screen.
func (m SessionModel) View() string {
	var body string
	switch m.screen {
	case screenMenu:
		body = m.menu.View()
	case screenSetup:
		body = m.setup.View()
	case screenMatch:
		body = m.matchModel.View()
	case screenScoreboard:
		body = m.scoreboard.View()
	}

	if m.errMsg != "" && m.screen == screenMenu {
		body += "\n" + centerText(m.styles.Error.Render(m.errMsg), m.width)
	}
	return body
}

// RunSession runs a full interactive session on the local terminal.
func RunSession(cfg config.AppConfig, store *storage.Store, policy *ai.Policy, defaultName string, color bool, width, height int) error {
	model := NewSessionModel(cfg, store, policy, defaultName, color, width, height)
	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("session failed: %w", err)
	}
	return nil
}
