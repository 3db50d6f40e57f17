package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/rps-arena/internal/storage"
)

const leaderboardLimit = 20

// scoreboardKeyMap defines the key bindings for the scoreboard screen.
type scoreboardKeyMap struct {
	Up   key.Binding
	Down key.Binding
	Sort key.Binding
	Back key.Binding
}

func (k scoreboardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Sort, k.Back}
}

func (k scoreboardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Up, k.Down}, {k.Sort, k.Back}}
}

var scoreboardKeys = scoreboardKeyMap{
	Up: key.NewBinding(
		key.WithKeys("up", "k"),
		key.WithHelp("↑/k", "up"),
	),
	Down: key.NewBinding(
		key.WithKeys("down", "j"),
		key.WithHelp("↓/j", "down"),
	),
	Sort: key.NewBinding(
		key.WithKeys("tab"),
		key.WithHelp("tab", "change sort"),
	),
	Back: key.NewBinding(
		key.WithKeys("esc", "q"),
		key.WithHelp("esc/q", "back"),
	),
}

// ScoreboardModel shows the cumulative player ledger. Tab cycles the
// ordering between matches won, win rate, and rounds won.
type ScoreboardModel struct {
	store  *storage.Store
	styles Styles
	table  table.Model
	help   help.Model
	sort   storage.SortKey
	errMsg string
	width  int
	height int
	done   bool
}

// NewScoreboardModel loads the leaderboard and builds the table.
func NewScoreboardModel(store *storage.Store, styles Styles, width, height int) ScoreboardModel {
	m := ScoreboardModel{
		store:  store,
		styles: styles,
		help:   help.New(),
		sort:   storage.SortByMatchesWon,
		width:  width,
		height: height,
	}
	m.table = m.buildTable()
	m.reload()
	return m
}

func (m ScoreboardModel) buildTable() table.Model {
	columns := []table.Column{
		{Title: "#", Width: 3},
		{Title: "Player", Width: 20},
		{Title: "Played", Width: 8},
		{Title: "Won", Width: 6},
		{Title: "Win rate", Width: 9},
		{Title: "Rounds won", Width: 11},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(leaderboardLimit),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderBottom(true).
		Bold(true)
	if m.styles.Colored {
		s.Selected = s.Selected.
			Foreground(lipgloss.Color("229")).
			Background(lipgloss.Color("57")).
			Bold(true)
	}
	t.SetStyles(s)
	return t
}

// reload refetches rows under the current sort key. The session keeps
// running without a store when the database failed to open, so a nil
// store degrades to an empty board instead of a query.
func (m *ScoreboardModel) reload() {
	if m.store == nil {
		m.errMsg = "Scoreboard unavailable: no scores database."
		return
	}

	players, err := m.store.Leaderboard(m.sort, leaderboardLimit)
	if err != nil {
		m.errMsg = err.Error()
		return
	}
	m.errMsg = ""

	rows := make([]table.Row, 0, len(players))
	for i, p := range players {
		rows = append(rows, table.Row{
			fmt.Sprintf("%d", i+1),
			p.Name,
			fmt.Sprintf("%d", p.MatchesPlayed),
			fmt.Sprintf("%d", p.MatchesWon),
			fmt.Sprintf("%.0f%%", p.WinRate()*100),
			fmt.Sprintf("%d", p.RoundsWon),
		})
	}
	m.table.SetRows(rows)
}

// Init initializes the scoreboard.
func (m ScoreboardModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the scoreboard.
func (m ScoreboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, scoreboardKeys.Back):
			m.done = true
			return m, nil
		case key.Matches(msg, scoreboardKeys.Sort):
			m.sort = nextSortKey(m.sort)
			m.reload()
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

func nextSortKey(k storage.SortKey) storage.SortKey {
	switch k {
	case storage.SortByMatchesWon:
		return storage.SortByWinRate
	case storage.SortByWinRate:
		return storage.SortByRoundsWon
	default:
		return storage.SortByMatchesWon
	}
}

func sortKeyTitle(k storage.SortKey) string {
	switch k {
	case storage.SortByWinRate:
		return "win rate"
	case storage.SortByRoundsWon:
		return "rounds won"
	default:
		return "matches won"
	}
}

// View renders the scoreboard.
func (m ScoreboardModel) View() string {
	title := m.styles.Title.Render(fmt.Sprintf("Scoreboard (by %s)", sortKeyTitle(m.sort)))

	body := m.table.View()
	if m.errMsg != "" {
		body = m.styles.Error.Render(m.errMsg)
	} else if len(m.table.Rows()) == 0 {
		body = m.styles.Subtle.Render("No matches recorded yet.")
	}

	return "\n" +
		centerText(title, m.width) + "\n\n" +
		centerBlock(m.styles.Boxed.Render(body), m.width) + "\n\n" +
		centerText(m.help.View(scoreboardKeys), m.width) + "\n"
}

// Done reports whether the user left the scoreboard.
func (m ScoreboardModel) Done() bool { return m.done }
