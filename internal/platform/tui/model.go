package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/ballsort/internal/config"
	"github.com/vovakirdan/ballsort/internal/core"
	"github.com/vovakirdan/ballsort/internal/registry"
	"github.com/vovakirdan/ballsort/internal/storage"
)

// helpRows is the space kept below the board for the key help line.
const helpRows = 1

var gameHelpStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

// resizer is implemented by games that can move their board without
// dealing a new puzzle.
type resizer interface {
	Resize(w, h int)
}

// Options are the optional collaborators of a Model.
type Options struct {
	Logger    *log.Logger
	SessionID string // Groups solve records; generated when empty
}

// Model is the Bubble Tea model that runs a game in a terminal.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	store      *storage.Store
	records    *storage.Recorder
	logger     *log.Logger
	config     core.RuntimeConfig
	inputFrame core.InputFrame
	gameState  core.GameState
	keyMapper  *KeyMapper
	help       help.Model
	board      *ScoreboardModel // Non-nil while the records screen is open
	quitting   bool
}

// NewModel creates a new Bubble Tea model for the given game.
// A nil store disables solve records.
func NewModel(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, opts Options) Model {
	if cfg.TickRate <= 0 {
		cfg.TickRate = 60
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}
	h := help.New()
	h.Width = cfg.ScreenW
	return Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, boardHeight(cfg.ScreenH)),
		store:      store,
		records:    storage.NewRecorder(store, game.ID(), opts.SessionID),
		logger:     opts.Logger,
		config:     cfg,
		inputFrame: core.NewInputFrame(),
		keyMapper:  NewKeyMapper(),
		help:       h,
	}
}

// boardHeight is the part of a terminal of height h the game draws in.
func boardHeight(h int) int {
	if h > helpRows+1 {
		return h - helpRows
	}
	return h
}

// boardConfig is the runtime config with the help line taken off.
func (m Model) boardConfig() core.RuntimeConfig {
	cfg := m.config
	cfg.ScreenH = boardHeight(cfg.ScreenH)
	return cfg
}

// Init deals the first level and starts the tick loop.
func (m Model) Init() tea.Cmd {
	m.logger.Info("session started",
		"session", m.records.SessionID(),
		"records", m.records.Enabled(),
	)
	m.game.Reset(m.boardConfig())
	m.logger.Info("level dealt", "game", m.game.ID(), "seed", m.game.State().Seed)
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.ShowingScoreboard() {
		return m.updateScoreboard(msg)
	}

	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		m.keyMapper.MapMouseToFrame(msg, &m.inputFrame)
		return m, nil

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// updateScoreboard forwards messages to the records screen. Ticks keep
// the loop alive but do not advance the game.
func (m Model) updateScoreboard(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case TickMsg:
		return m, tickCmd(m.config.TickRate)
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
	}

	next, cmd := m.board.Update(msg)
	board, ok := next.(ScoreboardModel)
	if !ok {
		return m, cmd
	}
	switch {
	case board.IsQuitting():
		m.quitting = true
		return m, tea.Quit
	case board.IsGoingBack():
		m.board = nil
		return m, nil
	}
	m.board = &board
	return m, cmd
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case msg.String() == "ctrl+s":
		m.saveScreenshot()
		return m, nil
	case key.Matches(msg, m.keyMapper.Keys().Scoreboard):
		board := NewScoreboardModel(m.store, m.game.ID(), m.game.Title(),
			m.config.TickRate, m.config.ScreenW, m.config.ScreenH)
		m.board = &board
		return m, nil
	}

	if m.keyMapper.MapKeyToFrame(msg, &m.inputFrame) {
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}

// handleResize processes window resize events.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.resize(msg.Width, msg.Height)
	return m, nil
}

// resize moves the board to the new screen size. Games that cannot move
// their board are re-dealt from the current seed.
func (m *Model) resize(w, h int) {
	m.config.ScreenW = w
	m.config.ScreenH = h
	m.help.Width = w
	bh := boardHeight(h)
	m.screen.Resize(w, bh)

	if r, ok := m.game.(resizer); ok {
		r.Resize(w, bh)
		return
	}
	cfg := m.boardConfig()
	cfg.Seed = m.game.State().Seed
	m.game.Reset(cfg)
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.inputFrame.Has(core.ActionRestart) {
		m.logger.Debug("restart requested", "moves", m.gameState.Moves)
	}

	result := m.game.Step(m.inputFrame)
	m.gameState = result.State

	if result.JustSolved {
		m.recordSolve(result.State)
	}

	m.inputFrame = core.NewInputFrame()
	return m, tickCmd(m.config.TickRate)
}

// recordSolve stores one record for a freshly solved level.
func (m Model) recordSolve(st core.GameState) {
	m.logger.Info("level solved", "moves", st.Moves, "ticks", st.Ticks, "seed", st.Seed)
	best, err := m.records.Record(st.Moves, st.Ticks, st.Seed)
	if err != nil {
		m.logger.Error("could not save solve", "error", err)
		return
	}
	if best {
		m.logger.Info("new best", "moves", st.Moves)
	}
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	dir := filepath.Join(config.HomeDir(), "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("could not create screenshot directory", "error", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("could not save screenshot", "error", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

// State returns the game state as of the last tick.
func (m Model) State() core.GameState {
	return m.gameState
}

// ShowingScoreboard returns true while the records screen is open.
func (m Model) ShowingScoreboard() bool {
	return m.board != nil
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if m.ShowingScoreboard() {
		return m.board.View()
	}

	m.game.Render(m.screen)
	if m.screen.Height() == m.config.ScreenH {
		return RenderScreen(m.screen)
	}
	return RenderScreen(m.screen) + "\n" + gameHelpStyle.Render(m.help.View(m.keyMapper.Keys()))
}

// Run starts the Bubble Tea program with the given game.
func Run(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, opts Options) error {
	model := NewModel(game, store, cfg, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	_, err := p.Run()
	return err
}
