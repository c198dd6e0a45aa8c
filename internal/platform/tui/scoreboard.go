package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/ballsort/internal/storage"
)

// Scoreboard layout constants
const (
	tableMinWidth = 50  // Below this the date column is dropped
	maxSolves     = 100 // Max records to load
)

// RecordView selects which solves the scoreboard lists.
type RecordView int

const (
	ViewBest   RecordView = iota // Fewest moves first
	ViewRecent                   // Newest first
)

// String returns the heading of the view.
func (v RecordView) String() string {
	if v == ViewRecent {
		return "RECENT SOLVES"
	}
	return "BEST SOLVES"
}

// ScoreboardKeyMap defines the key bindings for the scoreboard.
type ScoreboardKeyMap struct {
	Up         key.Binding
	Down       key.Binding
	ToggleView key.Binding
	Back       key.Binding
	Quit       key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k ScoreboardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.ToggleView, k.Back, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k ScoreboardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.ToggleView},
		{k.Back, k.Quit},
	}
}

// DefaultScoreboardKeyMap returns default key bindings.
func DefaultScoreboardKeyMap() ScoreboardKeyMap {
	return ScoreboardKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		ToggleView: key.NewBinding(
			key.WithKeys("tab", "left", "right"),
			key.WithHelp("tab", "best/recent"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b"),
			key.WithHelp("esc/b", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ScoreboardModel is the Bubble Tea model for the solve records screen.
// Embedded in a game it hands control back on Back; standalone it exits.
type ScoreboardModel struct {
	gameID     string
	title      string
	store      *storage.Store
	tickRate   int
	view       RecordView
	solves     []storage.Solve
	stats      *storage.GameStats
	loadErr    error
	table      table.Model
	help       help.Model
	keys       ScoreboardKeyMap
	width      int
	height     int
	standalone bool
	quitting   bool
	goingBack  bool // True if user pressed back (not quit)
}

// NewScoreboardModel creates a scoreboard for gameID. tickRate converts
// recorded ticks to seconds.
func NewScoreboardModel(store *storage.Store, gameID, title string, tickRate, width, height int) ScoreboardModel {
	if tickRate <= 0 {
		tickRate = 60
	}
	h := help.New()
	h.ShowAll = false
	h.Width = width

	m := ScoreboardModel{
		gameID:   gameID,
		title:    title,
		store:    store,
		tickRate: tickRate,
		keys:     DefaultScoreboardKeyMap(),
		help:     h,
		width:    width,
		height:   height,
	}
	m.table = m.createTable()
	m.loadSolves()
	return m
}

// createTable creates a new table with columns sized to the screen.
func (m *ScoreboardModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "Rank", Width: 6},
		{Title: "Moves", Width: 7},
		{Title: "Time", Width: 9},
		{Title: "Seed", Width: 20},
	}
	if m.width-4 >= tableMinWidth+18 {
		columns = append(columns, table.Column{Title: "Date", Width: 14})
	}

	height := m.height - 10 // Title, stats, borders and help
	if height < 3 {
		height = 3
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(height),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return t
}

// loadSolves reloads the records of the current view.
func (m *ScoreboardModel) loadSolves() {
	m.solves, m.stats, m.loadErr = nil, nil, nil
	if m.store == nil {
		m.updateTableRows()
		return
	}

	var err error
	switch m.view {
	case ViewRecent:
		m.solves, err = m.store.RecentSolves(m.gameID, maxSolves)
	default:
		m.solves, err = m.store.BestSolves(m.gameID, maxSolves)
	}
	if err != nil {
		m.loadErr = err
		m.solves = nil
	}
	if stats, statsErr := m.store.Stats(m.gameID); statsErr == nil {
		m.stats = stats
	}
	m.updateTableRows()
}

// updateTableRows updates the table with the loaded solves.
func (m *ScoreboardModel) updateTableRows() {
	withDate := len(m.table.Columns()) > 4
	rows := make([]table.Row, len(m.solves))
	for i, s := range m.solves {
		row := table.Row{
			fmt.Sprintf("#%d", i+1),
			fmt.Sprintf("%d", s.Moves),
			formatTicks(s.Ticks, m.tickRate),
			fmt.Sprintf("%d", s.Seed),
		}
		if withDate {
			row = append(row, s.CreatedAt.Local().Format("Jan 02 15:04"))
		}
		rows[i] = row
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

// formatTicks renders a tick count as seconds at tickRate.
func formatTicks(ticks uint64, tickRate int) string {
	d := time.Duration(ticks) * time.Second / time.Duration(tickRate)
	return fmt.Sprintf("%.1fs", d.Seconds())
}

// Init initializes the scoreboard model.
func (m ScoreboardModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the scoreboard.
func (m ScoreboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Back):
			m.goingBack = true
			if m.standalone {
				return m, tea.Quit
			}
			return m, nil

		case key.Matches(msg, m.keys.ToggleView):
			m.view = (m.view + 1) % 2
			m.loadSolves()
			return m, nil

		case key.Matches(msg, m.keys.Up), key.Matches(msg, m.keys.Down):
			m.table, cmd = m.table.Update(msg)
			return m, cmd
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.table = m.createTable()
		m.updateTableRows()
		m.help.Width = msg.Width
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the scoreboard.
func (m ScoreboardModel) View() string {
	if m.quitting || (m.standalone && m.goingBack) {
		return ""
	}

	var b strings.Builder

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229"))
	title := fmt.Sprintf("%s - %s", m.view, m.title)
	b.WriteString(lipgloss.PlaceHorizontal(m.width, lipgloss.Center, titleStyle.Render(title)))
	b.WriteString("\n\n")

	statsStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	b.WriteString(lipgloss.PlaceHorizontal(m.width, lipgloss.Center, statsStyle.Render(m.statsLine())))
	b.WriteString("\n\n")

	tableStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)
	b.WriteString(lipgloss.PlaceHorizontal(m.width, lipgloss.Center, tableStyle.Render(m.renderTableContent())))

	b.WriteString("\n")
	helpStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))

	return b.String()
}

// statsLine summarizes all solves of the game.
func (m ScoreboardModel) statsLine() string {
	if m.stats == nil || m.stats.Solved == 0 {
		return "No solves yet"
	}
	return fmt.Sprintf("Solved: %d   Best: %d moves   Avg: %.1f moves   Fastest: %s",
		m.stats.Solved, m.stats.BestMoves, m.stats.AvgMoves, formatTicks(m.stats.BestTicks, m.tickRate))
}

// renderTableContent renders the table or an empty message.
func (m ScoreboardModel) renderTableContent() string {
	emptyStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241")).
		Italic(true).
		Padding(2, 4)

	switch {
	case m.store == nil:
		return emptyStyle.Render("Records are unavailable.\nThe database could not be opened.")
	case m.loadErr != nil:
		return emptyStyle.Render("Could not load records:\n" + m.loadErr.Error())
	case len(m.solves) == 0:
		return emptyStyle.Render("No solves recorded yet.\nSort every color to set a record!")
	}
	return m.table.View()
}

// Solves returns the records currently listed.
func (m ScoreboardModel) Solves() []storage.Solve {
	return m.solves
}

// IsGoingBack returns true if user wants to go back to the game.
func (m ScoreboardModel) IsGoingBack() bool {
	return m.goingBack
}

// IsQuitting returns true if user wants to quit entirely.
func (m ScoreboardModel) IsQuitting() bool {
	return m.quitting
}

// RunScoreboard runs the records screen on its own.
func RunScoreboard(store *storage.Store, gameID, title string, tickRate, width, height int) error {
	model := NewScoreboardModel(store, gameID, title, tickRate, width, height)
	model.standalone = true

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
