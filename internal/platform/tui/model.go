package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/mirrorb/internal/core"
	"github.com/vovakirdan/mirrorb/internal/games/mirrorb/levels"
	"github.com/vovakirdan/mirrorb/internal/registry"
	"github.com/vovakirdan/mirrorb/internal/storage"
)

var helpStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

// Model is the Bubble Tea model for running a game.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	store      *storage.Store
	config     core.RuntimeConfig
	inputFrame core.InputFrame
	gameState  core.GameState
	keyMapper  *KeyMapper
	help       help.Model
	logger     *log.Logger
	watcher    *levels.Watcher
	player     string
	width      int
	height     int
	embedded   bool // Esc hands control back instead of quitting
	quitting   bool
	backToMenu bool
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game registry.Game, store *storage.Store, cfg core.RuntimeConfig) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	m := Model{
		game:       game,
		store:      store,
		config:     cfg,
		inputFrame: core.NewInputFrame(),
		keyMapper:  NewKeyMapper(),
		help:       help.New(),
		logger:     log.New(io.Discard),
		width:      cfg.ScreenW,
		height:     cfg.ScreenH,
	}
	m.config.ScreenH = m.gameHeight()
	m.screen = core.NewScreen(m.config.ScreenW, m.config.ScreenH)
	return m
}

// WithLogger returns a copy of m that logs to l.
func (m Model) WithLogger(l *log.Logger) Model {
	if l != nil {
		m.logger = l
	}
	return m
}

// WithPlayer returns a copy of m that records solves under name.
func (m Model) WithPlayer(name string) Model {
	m.player = name
	return m
}

// WithWatcher returns a copy of m that feeds reloaded catalogs from w to
// the game.
func (m Model) WithWatcher(w *levels.Watcher) Model {
	m.watcher = w
	return m
}

// Embedded returns a copy of m whose Esc returns to the caller's menu.
func (m Model) Embedded() Model {
	m.embedded = true
	return m
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	// Note: gameState will be set on first tick (value receiver limitation)

	return tea.Batch(tickCmd(m.config.TickRate), watchCmd(m.watcher))
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		m.keyMapper.MapMouseToFrame(msg, &m.inputFrame)
		return m, nil

	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.resize()
		return m, nil

	case TickMsg:
		return m.handleTick()

	case CatalogMsg:
		m.ReloadCatalog(msg)
		return m, watchCmd(m.watcher)

	case WatchErrMsg:
		m.logger.Error("level reload failed, keeping current catalog", "err", msg.Err)
		return m, watchCmd(m.watcher)
	}

	return m, nil
}

// ReloadCatalog hands a reloaded catalog to the game if it supports it.
func (m Model) ReloadCatalog(msg CatalogMsg) {
	if r, ok := m.game.(registry.CatalogReloader); ok && msg.Catalog != nil {
		r.ReloadCatalog(msg.Catalog)
	}
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	keys := m.keyMapper.Keys
	switch {
	case key.Matches(msg, keys.Shot):
		m.saveScreenshot()
		return m, nil
	case key.Matches(msg, keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		m.resize()
		return m, nil
	}

	if m.keyMapper.MapKeyToFrame(msg, &m.inputFrame) {
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}

// gameHeight returns the rows left for the game below the help view.
func (m Model) gameHeight() int {
	lines := 1
	if m.help.ShowAll {
		for _, col := range m.keyMapper.Keys.FullHelp() {
			lines = max(lines, len(col))
		}
	}
	return max(m.height-lines, 1)
}

// resize adapts the screen and the game to the window.
func (m *Model) resize() {
	m.config.ScreenW = m.width
	m.config.ScreenH = m.gameHeight()
	m.screen.Resize(m.config.ScreenW, m.config.ScreenH)
	m.help.Width = m.width

	if r, ok := m.game.(registry.Resizer); ok {
		r.Resize(m.config.ScreenW, m.config.ScreenH)
		return
	}
	// Games that cannot adapt start over
	if !m.gameState.GameOver {
		m.game.Reset(m.config)
	}
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.backToMenu || m.quitting {
		return m, nil
	}

	result := m.game.Step(m.inputFrame)
	m.gameState = result.State
	m.inputFrame.Clear()

	for _, e := range result.Events {
		m.record(e)
	}

	if m.gameState.QuitRequested {
		if m.embedded {
			m.backToMenu = true
			return m, nil
		}
		m.quitting = true
		return m, tea.Quit
	}

	// Continue ticking
	return m, tickCmd(m.config.TickRate)
}

// record logs an event and stores solves.
func (m Model) record(e core.Event) {
	switch e.Kind {
	case core.EventLevelStarted:
		m.logger.Debug("level started", "game", m.game.ID(), "level", e.Level)
	case core.EventCatalogReloaded:
		m.logger.Info("catalog reloaded", "game", m.game.ID(), "level", e.Level)
	case core.EventLevelSolved:
		m.logger.Info("level solved", "game", m.game.ID(), "level", e.Level, "moves", e.Moves, "ticks", e.Ticks, "player", m.player)
		if m.store == nil {
			return
		}
		_, err := m.store.SaveSolve(storage.SolveRecord{
			GameID: m.game.ID(),
			Player: m.player,
			Level:  e.Level,
			Moves:  e.Moves,
			Ticks:  e.Ticks,
		})
		if err != nil {
			// Best-effort save, game continues regardless
			m.logger.Warn("could not save solve", "err", err)
		}
	}
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	// Render current state
	m.game.Render(m.screen)

	// Create screenshots directory
	home, err := os.UserHomeDir()
	if err != nil {
		return
	}
	dir := filepath.Join(home, ".mirrorb", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	// Generate filename with timestamp
	timestamp := time.Now().Format("20060102_150405")
	filename := fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp)
	path := filepath.Join(dir, filename)

	// Save screenshot
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("could not save screenshot", "path", path, "err", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting || m.backToMenu {
		return ""
	}

	// Render game to screen buffer
	m.game.Render(m.screen)

	var b strings.Builder
	b.WriteString(RenderScreen(m.screen))
	b.WriteString("\n")
	b.WriteString(helpStyle.Render(m.help.View(m.keyMapper.Keys)))
	return b.String()
}

// GameState returns the state reported by the last tick.
func (m Model) GameState() core.GameState {
	return m.gameState
}

// IsQuitting returns true if user requested to quit entirely.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m Model) BackToMenu() bool {
	return m.backToMenu
}

// Run starts a Bubble Tea program for a single game. w may be nil.
func Run(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, w *levels.Watcher, logger *log.Logger) error {
	model := NewModel(game, store, cfg).WithWatcher(w).WithLogger(logger)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),      // Use alternate screen buffer
		tea.WithMouseAllMotion(), // Hover needs motion without a button held
	)

	_, err := p.Run()
	return err
}
