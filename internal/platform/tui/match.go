package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/rps-arena/internal/ai"
	"github.com/vovakirdan/rps-arena/internal/game"
	"github.com/vovakirdan/rps-arena/internal/match"
	"github.com/vovakirdan/rps-arena/internal/storage"
)

// matchPhase enumerates the screens inside one running match.
type matchPhase int

const (
	phasePickP1 matchPhase = iota
	phasePickP2
	phaseRoundSummary
	phaseHistory
	phaseVictory
)

// MatchModel drives one match from the first pick to the victory
// screen. In multiplayer the second pick happens on the same terminal,
// so the first pick is never echoed back before the round resolves.
type MatchModel struct {
	m         *match.Match
	policy    *ai.Policy
	store     *storage.Store
	styles    Styles
	keyMapper *KeyMapper
	showArt   bool
	width     int
	height    int

	phase     matchPhase
	cursor    int
	pendingP1 game.Move
	lastRound match.RoundRecord
	recorded  bool
	errMsg    string

	saved       bool // saved and quitting
	quit        bool // quitting without saving
	rematch     bool
	newSettings bool // return to setup with a fresh config
}

// NewMatchModel starts the interactive flow for an already-constructed
// match. The policy is only consulted in single-player mode; showArt
// toggles the hand-shape art in round summaries.
func NewMatchModel(m *match.Match, policy *ai.Policy, store *storage.Store, styles Styles, showArt bool, width, height int) MatchModel {
	return MatchModel{
		m:         m,
		policy:    policy,
		store:     store,
		styles:    styles,
		keyMapper: NewKeyMapper(),
		showArt:   showArt,
		width:     width,
		height:    height,
		phase:     phasePickP1,
	}
}

// Init initializes the match screen.
func (mm MatchModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the match screen.
func (mm MatchModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return mm.handleKey(msg)

	case tea.WindowSizeMsg:
		mm.width = msg.Width
		mm.height = msg.Height
		return mm, nil
	}

	return mm, nil
}

func (mm MatchModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		mm.quit = true
		return mm, nil
	}

	switch mm.phase {
	case phasePickP1, phasePickP2:
		return mm.handlePick(msg)
	case phaseRoundSummary:
		return mm.handleSummary(msg)
	case phaseHistory:
		mm.phase = mm.returnPhase()
		return mm, nil
	case phaseVictory:
		return mm.handleVictory(msg)
	}
	return mm, nil
}

// handlePick processes a move selection. Letter shortcuts (r/p/s and
// l/k under extended rules) and cursor navigation both work.
func (mm MatchModel) handlePick(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	moves := game.LegalMoves(mm.m.Config().Ruleset)

	if mv, ok := game.ParseMove(msg.String(), mm.m.Config().Ruleset); ok {
		return mm.commitPick(mv)
	}

	switch mm.keyMapper.MapKeyToListAction(msg) {
	case ListActionUp:
		if mm.cursor > 0 {
			mm.cursor--
		}
	case ListActionDown:
		if mm.cursor < len(moves)-1 {
			mm.cursor++
		}
	case ListActionSelect:
		return mm.commitPick(moves[mm.cursor])
	case ListActionQuit, ListActionBack:
		mm.quit = true
	}
	return mm, nil
}

// commitPick records a picked move and either resolves the round or
// hands the terminal to the second player.
func (mm MatchModel) commitPick(mv game.Move) (tea.Model, tea.Cmd) {
	mm.errMsg = ""

	if mm.m.Config().Mode == match.ModeSinglePlayer {
		rec, err := mm.m.PlaySingle(mv, mm.policy)
		if err != nil {
			mm.errMsg = err.Error()
			return mm, nil
		}
		return mm.afterRound(rec)
	}

	if mm.phase == phasePickP1 {
		mm.pendingP1 = mv
		mm.phase = phasePickP2
		mm.cursor = 0
		return mm, nil
	}

	rec, err := mm.m.PlayRound(mm.pendingP1, mv)
	if err != nil {
		mm.errMsg = err.Error()
		return mm, nil
	}
	return mm.afterRound(rec)
}

func (mm MatchModel) afterRound(rec match.RoundRecord) (tea.Model, tea.Cmd) {
	mm.lastRound = rec
	mm.cursor = 0
	if mm.m.Complete() {
		mm.phase = phaseVictory
		return mm.recordResult()
	}
	mm.phase = phaseRoundSummary
	return mm, nil
}

// recordResult merges the finished match into the scoreboard exactly
// once and drops any saved state now that the match is over.
func (mm MatchModel) recordResult() (tea.Model, tea.Cmd) {
	if mm.recorded || mm.store == nil {
		return mm, nil
	}
	res, ok := mm.m.Result()
	if !ok {
		return mm, nil
	}
	if err := mm.store.RecordMatch(res); err != nil {
		mm.errMsg = err.Error()
		return mm, nil
	}
	if err := mm.store.ClearSavedMatch(); err != nil {
		mm.errMsg = err.Error()
	}
	mm.recorded = true
	return mm, nil
}

func (mm MatchModel) handleSummary(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter", "n":
		mm.phase = phasePickP1
		mm.cursor = 0
	case "h":
		mm.phase = phaseHistory
	case "s":
		return mm.saveAndQuit()
	case "q", "esc":
		mm.quit = true
	}
	return mm, nil
}

func (mm MatchModel) saveAndQuit() (tea.Model, tea.Cmd) {
	if mm.store == nil {
		mm.quit = true
		return mm, nil
	}
	data, err := mm.m.MarshalSnapshot()
	if err != nil {
		mm.errMsg = err.Error()
		return mm, nil
	}
	if err := mm.store.SaveMatch(data); err != nil {
		mm.errMsg = err.Error()
		return mm, nil
	}
	mm.saved = true
	return mm, nil
}

func (mm MatchModel) handleVictory(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "r", "enter":
		mm.m.ResetForRematch()
		mm.rematch = true
	case "c":
		mm.newSettings = true
	case "h":
		mm.phase = phaseHistory
	case "q", "esc":
		mm.quit = true
	}
	return mm, nil
}

func (mm MatchModel) returnPhase() matchPhase {
	if mm.m.Complete() {
		return phaseVictory
	}
	return phaseRoundSummary
}

// View renders the current match phase.
func (mm MatchModel) View() string {
	if mm.quit || mm.saved || mm.rematch || mm.newSettings {
		return ""
	}

	switch mm.phase {
	case phasePickP1, phasePickP2:
		return mm.viewPick()
	case phaseRoundSummary:
		return mm.viewSummary()
	case phaseHistory:
		return mm.viewHistory()
	case phaseVictory:
		return mm.viewVictory()
	}
	return ""
}

func (mm MatchModel) viewPick() string {
	cfg := mm.m.Config()
	picker := cfg.Player1
	if mm.phase == phasePickP2 {
		picker = cfg.Player2
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(centerText(mm.styles.Title.Render(mm.headerLine()), mm.width))
	b.WriteString("\n\n")
	b.WriteString(centerText(fmt.Sprintf("%s, pick your move:", picker), mm.width))
	b.WriteString("\n\n")

	for i, mv := range game.LegalMoves(cfg.Ruleset) {
		cursor := "  "
		label := mv.String()
		if i == mm.cursor {
			cursor = "> "
			label = mm.styles.Cursor.Render(label)
		}
		b.WriteString(centerText(cursor+label, mm.width))
		b.WriteString("\n")
	}

	if mm.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(centerText(mm.styles.Error.Render(mm.errMsg), mm.width))
		b.WriteString("\n")
	}

	help := "r/p/s: Quick pick  |  Enter: Confirm  |  Esc: Quit"
	if cfg.Ruleset == game.RulesetExtended {
		help = "r/p/s/l/k: Quick pick  |  Enter: Confirm  |  Esc: Quit"
	}
	b.WriteString("\n")
	b.WriteString(centerText(mm.styles.Help.Render(help), mm.width))
	return b.String()
}

func (mm MatchModel) viewSummary() string {
	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(centerText(mm.styles.Title.Render(mm.headerLine()), mm.width))
	b.WriteString("\n\n")
	b.WriteString(mm.renderRound(mm.lastRound))
	b.WriteString("\n")
	b.WriteString(centerText(mm.styles.Help.Render("n: Next round  |  h: History  |  s: Save & quit  |  q: Quit without saving"), mm.width))
	return b.String()
}

// renderRound shows both moves side by side with their ASCII art and
// the outcome line.
func (mm MatchModel) renderRound(rec match.RoundRecord) string {
	cfg := mm.m.Config()

	var b strings.Builder
	b.WriteString(centerText(fmt.Sprintf("Round %d", rec.Round), mm.width))
	b.WriteString("\n\n")
	if mm.showArt {
		b.WriteString(centerBlock(MoveArt(rec.Move1), mm.width))
		b.WriteString("\n")
	}
	b.WriteString(centerText(fmt.Sprintf("%s played %s", cfg.Player1, rec.Move1), mm.width))
	b.WriteString("\n\n")
	if mm.showArt {
		b.WriteString(centerBlock(MoveArt(rec.Move2), mm.width))
		b.WriteString("\n")
	}
	b.WriteString(centerText(fmt.Sprintf("%s played %s", cfg.Player2, rec.Move2), mm.width))
	b.WriteString("\n\n")

	switch rec.Outcome {
	case game.OutcomeTie:
		b.WriteString(centerText(mm.styles.Tie.Render("It's a tie!"), mm.width))
	case game.OutcomePlayer1:
		line := fmt.Sprintf("%s %s %s. %s wins the round!", rec.Move1, game.Verb(rec.Move1, rec.Move2), rec.Move2, cfg.Player1)
		b.WriteString(centerText(mm.styles.Win.Render(line), mm.width))
	case game.OutcomePlayer2:
		line := fmt.Sprintf("%s %s %s. %s wins the round!", rec.Move2, game.Verb(rec.Move2, rec.Move1), rec.Move1, cfg.Player2)
		b.WriteString(centerText(mm.styles.Win.Render(line), mm.width))
	}
	b.WriteString("\n")
	return b.String()
}

func (mm MatchModel) viewHistory() string {
	cfg := mm.m.Config()

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(centerText(mm.styles.Title.Render("Round history"), mm.width))
	b.WriteString("\n\n")

	for _, rec := range mm.m.History() {
		var result string
		switch rec.Outcome {
		case game.OutcomeTie:
			result = "tie"
		case game.OutcomePlayer1:
			result = cfg.Player1
		case game.OutcomePlayer2:
			result = cfg.Player2
		}
		line := fmt.Sprintf("%2d. %-8s vs %-8s  %s", rec.Round, rec.Move1, rec.Move2, result)
		b.WriteString(centerText(line, mm.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText(mm.styles.Help.Render("Any key: Back"), mm.width))
	return b.String()
}

func (mm MatchModel) viewVictory() string {
	cfg := mm.m.Config()
	p1, p2 := mm.m.Score()
	outcome, _ := mm.m.Winner()

	var headline string
	switch outcome {
	case game.OutcomeTie:
		headline = mm.styles.Tie.Render("The match is a tie!")
	case game.OutcomePlayer1:
		headline = mm.styles.Win.Render(fmt.Sprintf("%s wins the match!", cfg.Player1))
	case game.OutcomePlayer2:
		headline = mm.styles.Win.Render(fmt.Sprintf("%s wins the match!", cfg.Player2))
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(centerText(headline, mm.width))
	b.WriteString("\n\n")
	b.WriteString(centerText(fmt.Sprintf("%s %d : %d %s", cfg.Player1, p1, p2, cfg.Player2), mm.width))
	b.WriteString("\n\n")

	if mm.errMsg != "" {
		b.WriteString(centerText(mm.styles.Error.Render(mm.errMsg), mm.width))
		b.WriteString("\n\n")
	}

	b.WriteString(centerText(mm.styles.Help.Render("r: Rematch  |  c: Change settings  |  h: History  |  q: Quit"), mm.width))
	return b.String()
}

// headerLine shows the running score and format.
func (mm MatchModel) headerLine() string {
	cfg := mm.m.Config()
	p1, p2 := mm.m.Score()
	return fmt.Sprintf("%s %d : %d %s  (%s, %s)", cfg.Player1, p1, p2, cfg.Player2, cfg.Format.Title(), cfg.Ruleset.Title())
}

// Saved reports whether the match was saved for later resumption.
func (mm MatchModel) Saved() bool { return mm.saved }

// Quit reports whether the user left without saving.
func (mm MatchModel) Quit() bool { return mm.quit }

// Rematch reports whether a rematch with the same settings was chosen.
func (mm MatchModel) Rematch() bool { return mm.rematch }

// NewSettings reports whether the user wants a rematch with different
// settings.
func (mm MatchModel) NewSettings() bool { return mm.newSettings }

// Match exposes the underlying match for the session flow.
func (mm MatchModel) Match() *match.Match { return mm.m }
