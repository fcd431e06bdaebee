package tui

import (
	"fmt"
	"io"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/mirrorb/internal/core"
	mcore "github.com/vovakirdan/mirrorb/internal/games/mirrorb/core"
	"github.com/vovakirdan/mirrorb/internal/games/mirrorb/levels"
	"github.com/vovakirdan/mirrorb/internal/registry"
	"github.com/vovakirdan/mirrorb/internal/storage"
)

// SessionGameID is the registry entry sessions start.
const SessionGameID = "mirrorb"

type sessionScreen int

const (
	screenMenu sessionScreen = iota
	screenGame
	screenScores
)

// SessionModel manages the full session flow: menu -> game or scoreboard
// -> menu. It is the top-level model for SSH sessions and `mirrorb menu`.
type SessionModel struct {
	store    *storage.Store
	config   core.RuntimeConfig
	catalog  *mcore.Catalog
	version  string
	player   string
	logger   *log.Logger
	watcher  *levels.Watcher // Nil unless hot reload is on
	screen   sessionScreen
	menu     MenuModel
	scores   ScoreboardModel
	game     Model
	quitting bool
}

// NewSessionModel creates a new session model listing catalog.
func NewSessionModel(store *storage.Store, cfg core.RuntimeConfig, catalog *mcore.Catalog, version string) SessionModel {
	return SessionModel{
		store:   store,
		config:  cfg,
		catalog: catalog,
		version: version,
		logger:  log.New(io.Discard),
		menu:    NewMenuModel(catalog, version, cfg),
	}
}

// WithLogger returns a copy of m that logs to l.
func (m SessionModel) WithLogger(l *log.Logger) SessionModel {
	if l != nil {
		m.logger = l
	}
	return m
}

// WithPlayer returns a copy of m that records solves under name.
func (m SessionModel) WithPlayer(name string) SessionModel {
	m.player = name
	return m
}

// WithWatcher returns a copy of m that follows reloads from w.
func (m SessionModel) WithWatcher(w *levels.Watcher) SessionModel {
	m.watcher = w
	return m
}

// Init initializes the session.
func (m SessionModel) Init() tea.Cmd {
	return tea.Batch(m.menu.Init(), watchCmd(m.watcher))
}

// Update handles messages for the session.
func (m SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height

	case CatalogMsg:
		m.reload(msg)
		return m, watchCmd(m.watcher)

	case WatchErrMsg:
		m.logger.Error("level reload failed, keeping current catalog", "err", msg.Err)
		return m, watchCmd(m.watcher)
	}

	switch m.screen {
	case screenGame:
		return m.updateGame(msg)
	case screenScores:
		return m.updateScores(msg)
	default:
		return m.updateMenu(msg)
	}
}

// reload shares a new catalog with the menu and any running game.
func (m *SessionModel) reload(msg CatalogMsg) {
	if msg.Catalog == nil {
		return
	}
	m.catalog = msg.Catalog
	m.menu.SetCatalog(msg.Catalog)
	if m.screen == screenGame {
		m.game.ReloadCatalog(msg)
	}
}

// updateMenu handles updates when in menu mode.
func (m SessionModel) updateMenu(msg tea.Msg) (tea.Model, tea.Cmd) {
	newMenu, cmd := m.menu.Update(msg)
	if menuModel, ok := newMenu.(MenuModel); ok {
		m.menu = menuModel
	}

	if m.menu.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	if m.menu.WantsScoreboard() {
		m.scores = NewScoreboardModel(m.store, m.config)
		m.screen = screenScores
		return m, m.scores.Init()
	}

	if selected := m.menu.Selected(); selected != nil {
		model, err := m.startGame(selected.Level)
		if err != nil {
			m.logger.Error("could not start game", "err", err)
			m.menu = NewMenuModel(m.catalog, m.version, m.config)
			return m, nil
		}
		m.game = model
		m.screen = screenGame
		return m, m.game.Init()
	}

	return m, cmd
}

// startGame builds an embedded game model starting at level.
func (m SessionModel) startGame(level int) (Model, error) {
	game, err := registry.Create(SessionGameID)
	if err != nil {
		return Model{}, err
	}
	picker, ok := game.(registry.LevelPicker)
	if !ok {
		return Model{}, fmt.Errorf("game %q cannot pick levels", SessionGameID)
	}
	picker.UseCatalog(m.catalog)
	picker.StartAt(level)

	m.logger.Info("game started", "player", m.player, "level", level)
	model := NewModel(game, m.store, m.config).
		WithLogger(m.logger).
		WithPlayer(m.player).
		Embedded()
	return model, nil
}

// updateGame handles updates when in game mode.
func (m SessionModel) updateGame(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.game.Update(msg)
	if gameModel, ok := newModel.(Model); ok {
		m.game = gameModel
	}

	if m.game.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	if m.game.BackToMenu() {
		m.game = Model{}
		m.backToMenu()
		return m, m.menu.Init()
	}

	return m, cmd
}

// updateScores handles updates when the scoreboard is shown.
func (m SessionModel) updateScores(msg tea.Msg) (tea.Model, tea.Cmd) {
	newScores, cmd := m.scores.Update(msg)
	if scores, ok := newScores.(ScoreboardModel); ok {
		m.scores = scores
	}

	if m.scores.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	if m.scores.IsGoingBack() {
		m.backToMenu()
		return m, m.menu.Init()
	}

	return m, cmd
}

// backToMenu shows a fresh menu sized to the window.
func (m *SessionModel) backToMenu() {
	m.menu = NewMenuModel(m.catalog, m.version, m.config)
	m.screen = screenMenu
}

// View renders the current view.
func (m SessionModel) View() string {
	if m.quitting {
		return ""
	}

	switch m.screen {
	case screenGame:
		return m.game.View()
	case screenScores:
		return m.scores.View()
	default:
		return m.menu.View()
	}
}

// Screen reports which screen is active, for tests.
func (m SessionModel) Screen() string {
	switch m.screen {
	case screenGame:
		return "game"
	case screenScores:
		return "scores"
	default:
		return "menu"
	}
}

// RunSession runs the menu, game and scoreboard in one local program.
// w may be nil.
func RunSession(store *storage.Store, cfg core.RuntimeConfig, catalog *mcore.Catalog, version string, w *levels.Watcher, logger *log.Logger) error {
	model := NewSessionModel(store, cfg, catalog, version).
		WithWatcher(w).
		WithLogger(logger)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseAllMotion(),
	)

	_, err := p.Run()
	return err
}
