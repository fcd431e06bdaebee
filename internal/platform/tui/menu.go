package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/mirrorb/internal/core"
	mcore "github.com/vovakirdan/mirrorb/internal/games/mirrorb/core"
)

// MenuSelection holds the user's choice from the title menu.
type MenuSelection struct {
	Level int // 0 = start from beginning, otherwise a displayed level
}

// MenuModel is the title screen with the level picker.
type MenuModel struct {
	catalog        *mcore.Catalog
	version        string
	cursor         int // 0 = start from beginning, N = displayed level N
	scrollOffset   int
	width          int
	height         int
	config         core.RuntimeConfig
	keyMapper      *KeyMapper
	theme          Theme
	selection      MenuSelection
	choosing       bool
	quitting       bool
	openScoreboard bool // True if user pressed Tab for scoreboard
}

// NewMenuModel creates a new menu model.
func NewMenuModel(catalog *mcore.Catalog, version string, cfg core.RuntimeConfig) MenuModel {
	return MenuModel{
		catalog:   catalog,
		version:   version,
		width:     cfg.ScreenW,
		height:    cfg.ScreenH,
		config:    cfg,
		keyMapper: NewKeyMapper(),
		theme:     GetTheme(),
		choosing:  true,
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
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.updateScroll()
		return m, nil

	case CatalogMsg:
		m.SetCatalog(msg.Catalog)
		return m, nil
	}

	return m, nil
}

// SetCatalog swaps the listed catalog, keeping the cursor in range.
func (m *MenuModel) SetCatalog(c *mcore.Catalog) {
	if c == nil {
		return
	}
	m.catalog = c
	m.cursor = min(m.cursor, m.itemCount()-1)
	m.updateScroll()
}

// itemCount counts the entries: the start option plus every level.
func (m MenuModel) itemCount() int {
	return 1 + m.catalog.FinalLevel()
}

// handleKey processes keyboard input for menu navigation.
func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action := m.keyMapper.MapKeyToMenuAction(msg)
	page := m.visibleItems()

	switch action {
	case MenuActionQuit, MenuActionBack:
		m.quitting = true
		return m, tea.Quit

	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}

	case MenuActionDown:
		if m.cursor < m.itemCount()-1 {
			m.cursor++
		}

	case MenuActionPageUp:
		m.cursor = core.Clamp(m.cursor-page, 0, m.itemCount()-1)

	case MenuActionPageDown:
		m.cursor = core.Clamp(m.cursor+page, 0, m.itemCount()-1)

	case MenuActionSelect:
		m.choosing = false
		m.selection = MenuSelection{Level: m.cursor}
		return m, tea.Quit // Exit menu to start game

	case MenuActionScoreboard:
		m.openScoreboard = true
		return m, tea.Quit // Exit menu to show scoreboard
	}

	m.updateScroll()
	return m, nil
}

// visibleItems returns how many level rows fit between header and footer.
func (m MenuModel) visibleItems() int {
	return max(m.height-12, 3)
}

// updateScroll adjusts scroll offset to keep cursor visible.
func (m *MenuModel) updateScroll() {
	visible := m.visibleItems()
	if m.cursor < m.scrollOffset {
		m.scrollOffset = m.cursor
	} else if m.cursor >= m.scrollOffset+visible {
		m.scrollOffset = m.cursor - visible + 1
	}
}

// itemLabel describes one picker entry.
func (m MenuModel) itemLabel(i int) (label, detail string) {
	if i == 0 {
		return "Start from Beginning", ""
	}
	level, _ := mcore.LevelFor(i)
	pool := m.catalog.Pool(level)
	if len(pool) == 0 {
		return fmt.Sprintf("Level %2d", i), ""
	}
	b := pool[0]
	label = fmt.Sprintf("Level %2d", i)
	if i == m.catalog.FinalLevel() {
		label = "FINAL LEVEL"
	}
	orbs := "orbs"
	if b.Orbs == 1 {
		orbs = "orb"
	}
	detail = fmt.Sprintf("%2dx%-2d %d %s, %d pieces", b.Size, b.Size, b.Orbs, orbs, b.Pieces)
	return label, detail
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}

	th := m.theme
	var b strings.Builder

	// Title
	b.WriteString("\n")
	b.WriteString(centerText(th.Title.Render("m i r r / o r b"), m.width))
	b.WriteString("\n\n")

	// Subtitle
	b.WriteString(centerText(th.Subtitle.Render("Bend the beam onto every orb"), m.width))
	b.WriteString("\n\n")

	// Level list
	visible := m.visibleItems()
	end := min(m.scrollOffset+visible, m.itemCount())
	for i := m.scrollOffset; i < end; i++ {
		label, detail := m.itemLabel(i)
		cursor := "  "
		style := th.ItemNormal
		if i > 0 && i == m.catalog.FinalLevel() {
			style = th.ItemFinal
		}
		if i == m.cursor {
			cursor = "> "
			style = th.ItemActive
		}

		line := style.Render(fmt.Sprintf("%s%-20s", cursor, label))
		if detail != "" {
			line += "  " + th.ItemDetail.Render(detail)
		}
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}

	// Scroll indicators
	if m.scrollOffset > 0 {
		b.WriteString(centerText(th.Description.Render("... more above ..."), m.width))
		b.WriteString("\n")
	}
	if end < m.itemCount() {
		b.WriteString(centerText(th.Description.Render("... more below ..."), m.width))
		b.WriteString("\n")
	}

	// Footer with controls
	b.WriteString("\n")
	controls := "Up/Down: Navigate  |  Enter: Play  |  Tab: Solves  |  Q: Quit"
	b.WriteString(centerText(th.Controls.Render(controls), m.width))
	b.WriteString("\n")
	b.WriteString(centerText(th.Version.Render(m.catalog.Summary(m.version)), m.width))
	b.WriteString("\n")

	return b.String()
}

// Selected returns the selection, or nil if still choosing.
func (m MenuModel) Selected() *MenuSelection {
	if m.choosing {
		return nil
	}
	return &m.selection
}

// IsQuitting returns true if user requested to quit.
func (m MenuModel) IsQuitting() bool {
	return m.quitting
}

// WantsScoreboard returns true if user requested scoreboard.
func (m MenuModel) WantsScoreboard() bool {
	return m.openScoreboard
}

// Config returns the current runtime config (may have been updated by resize).
func (m MenuModel) Config() core.RuntimeConfig {
	return m.config
}

// centerText centers text within given width.
// Styled text is measured without its escape sequences.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	padding := (width - w) / 2
	return strings.Repeat(" ", padding) + text
}
