// Package mirrorb provides the mirr/orb beam puzzle for the platform.
package mirrorb

import (
	"io"
	"math/rand"
	"strings"

	"github.com/charmbracelet/log"

	platformcore "github.com/vovakirdan/mirrorb/internal/core"
	"github.com/vovakirdan/mirrorb/internal/games/mirrorb/core"
	"github.com/vovakirdan/mirrorb/internal/games/mirrorb/levels"
	"github.com/vovakirdan/mirrorb/internal/registry"
)

// Options tunes a game instance. Zero values fall back to defaults.
type Options struct {
	Catalog      *core.Catalog // nil uses the built-in levels
	StepsPerTick int           // Beam changes per tick while held; 0 settles at once
	FadeStep     float64       // Alpha lost per tick after release
	ClickDelay   int           // Ticks a consumed click blocks the pointer
	Theme        string
	ShowVersion  bool
	Logger       *log.Logger
}

// DefaultOptions returns the options used when nothing is configured.
func DefaultOptions() Options {
	return Options{
		StepsPerTick: 4,
		FadeStep:     0.05,
		ClickDelay:   12,
		Theme:        UnicodeTheme.Name,
		ShowVersion:  true,
	}
}

// Package-level configuration, captured by New.
var (
	options            = DefaultOptions()
	selectedStartLevel int
)

// Configure sets the options for games created afterwards.
func Configure(o Options) {
	options = o
}

// SetStartLevel sets the displayed level the next run starts at. 0 or 1
// start from the beginning.
func SetStartLevel(level int) {
	selectedStartLevel = level
}

// GetStartLevel returns the currently selected start level.
func GetStartLevel() int {
	return selectedStartLevel
}

func init() {
	registry.Register("mirrorb", func() registry.Game {
		return New()
	})
}

// Game adapts the puzzle rules to the platform tick loop.
type Game struct {
	opts       Options
	startLevel int
	rng        *rand.Rand
	state      *core.State
	logger     *log.Logger
	layers     *Layers
	layout     Layout
	theme      Theme
	loadErr    error

	pointer    platformcore.Pointer
	hover      Target
	clickDelay int

	screenW int
	screenH int

	tick       uint64
	levelTicks int
	solved     int
	gameOver   bool
	quit       bool
	tooSmall   bool
	pending    []platformcore.Event
}

// New creates a game from the package-level options. Call Reset before
// stepping it.
func New() *Game {
	return &Game{
		opts:       options,
		startLevel: selectedStartLevel,
		layers:     NewLayers(),
		theme:      UnicodeTheme,
	}
}

// StartAt sets the displayed level the next Reset starts at.
func (g *Game) StartAt(level int) {
	g.startLevel = level
}

// UseCatalog sets the catalog the next Reset draws from.
func (g *Game) UseCatalog(c *core.Catalog) {
	g.opts.Catalog = c
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return "mirrorb"
}

// Title returns the display name.
func (g *Game) Title() string {
	return "mirr/orb"
}

// Reset starts a new run.
func (g *Game) Reset(cfg platformcore.RuntimeConfig) {
	if g.opts.FadeStep <= 0 {
		g.opts.FadeStep = DefaultOptions().FadeStep
	}
	g.logger = g.opts.Logger
	if g.logger == nil {
		g.logger = log.New(io.Discard)
	}
	g.rng = rand.New(rand.NewSource(cfg.Seed))
	g.theme = ThemeByName(g.opts.Theme)
	g.layers = NewLayers()
	g.screenW, g.screenH = cfg.ScreenW, cfg.ScreenH
	g.tick = 0
	g.solved = 0
	g.gameOver = false
	g.quit = false
	g.clickDelay = 0
	g.hover = Target{}
	g.pending = nil
	g.state = nil
	g.loadErr = nil

	catalog := g.opts.Catalog
	if catalog == nil {
		c, err := levels.Default()
		if err != nil {
			g.loadErr = err
			g.logger.Error("built-in levels failed to load", "err", err)
			return
		}
		catalog = c
	}
	g.logger.Info("catalog loaded", "pools", catalog.Len(), "maps", catalog.MapCount(), "levels", catalog.LevelCount())

	g.state = core.NewState(catalog, g.rng)
	if g.startLevel > 1 {
		g.state.JumpTo(g.startLevel)
	} else {
		g.state.NextLevel()
	}
	g.levelStarted()
}

// Resize adapts the layout to a new screen size without restarting.
func (g *Game) Resize(w, h int) {
	g.screenW, g.screenH = w, h
	if g.state != nil {
		g.relayout()
		g.publish()
	}
}

// ReloadCatalog swaps in a freshly loaded catalog. The board in play is
// kept; later level changes draw from the new catalog.
func (g *Game) ReloadCatalog(c *core.Catalog) {
	if g.state == nil || c == nil {
		return
	}
	g.opts.Catalog = c
	g.state.SetCatalog(c)
	g.logger.Info("catalog reloaded", "pools", c.Len(), "maps", c.MapCount())
	g.pending = append(g.pending, platformcore.Event{
		Kind:  platformcore.EventCatalogReloaded,
		Level: g.state.Cursor.Displayed,
	})
	g.publish()
}

// Step advances the game by one tick.
func (g *Game) Step(in platformcore.InputFrame) platformcore.StepResult {
	g.tick++
	events := g.pending
	g.pending = nil

	if in.Has(platformcore.ActionEscape) {
		g.quit = true
	}
	if in.Pointer.Valid {
		g.pointer = in.Pointer
		g.hover = g.layout.Hit(in.Pointer.X, in.Pointer.Y)
	}

	if g.state == nil || g.tooSmall || g.gameOver {
		return platformcore.StepResult{State: g.State(), Events: events}
	}
	st := g.state

	if g.clickDelay > 0 {
		g.clickDelay--
	}

	for _, a := range menuActions {
		if in.Has(a) {
			g.apply(a)
		}
	}

	if in.Has(platformcore.ActionPress) && g.clickDelay == 0 {
		g.press()
	}
	if in.Has(platformcore.ActionRelease) && g.clickDelay == 0 {
		if g.click() {
			g.clickDelay = g.opts.ClickDelay
		}
		if st.Release() {
			events = append(events, g.levelSolved())
		}
	}

	if st.BeamHold {
		st.Advance(g.opts.StepsPerTick)
	} else {
		st.Fade(g.opts.FadeStep)
	}
	if !st.Complete {
		g.levelTicks++
	}

	events = append(events, g.pending...)
	g.pending = nil
	g.publish()
	return platformcore.StepResult{State: g.State(), Events: events}
}

func (g *Game) press() {
	st := g.state
	if g.hover.Kind != TargetCell || st.Holding >= 0 || st.Complete {
		return
	}
	st.Arm(g.hover.Index)
}

// click handles a pointer release. It reports whether the click did
// something.
func (g *Game) click() bool {
	st := g.state
	if st.Complete {
		if g.hover.Kind == TargetMenu && MenuItem(g.hover.Index) == MenuNext {
			return g.next()
		}
		return false
	}

	switch g.hover.Kind {
	case TargetSlot:
		if st.SelectSlot(g.hover.Index) {
			return true
		}
	case TargetCell:
		if st.Board.CanHold(g.hover.Index) {
			return st.ClickCell(g.hover.Index)
		}
	case TargetMenu:
		if st.Holding < 0 {
			return g.apply(MenuItem(g.hover.Index).Action())
		}
	}
	return st.Drop()
}

func (g *Game) apply(a platformcore.Action) bool {
	st := g.state
	switch a {
	case platformcore.ActionUndo:
		return st.Undo()
	case platformcore.ActionRedo:
		return st.Redo()
	case platformcore.ActionRotate:
		return st.Transform(core.Rotate)
	case platformcore.ActionFlipH:
		return st.Transform(core.FlipH)
	case platformcore.ActionFlipV:
		return st.Transform(core.FlipV)
	case platformcore.ActionReset:
		return st.ResetLevel()
	case platformcore.ActionTrash:
		if !st.TrashLevel() {
			return false
		}
		g.logger.Info("level trashed", "level", st.Cursor.Displayed, "option", st.Cursor.Option)
		g.levelStarted()
		return true
	case platformcore.ActionNext:
		return g.next()
	}
	return false
}

func (g *Game) next() bool {
	st := g.state
	if !st.Complete || st.Final {
		return false
	}
	st.NextLevel()
	g.levelStarted()
	return true
}

func (g *Game) levelStarted() {
	st := g.state
	g.levelTicks = 0
	g.relayout()
	g.logger.Info("level started",
		"level", st.Cursor.Level,
		"sub", st.Cursor.SubLevel,
		"option", st.Cursor.Option,
		"displayed", st.Cursor.Displayed,
		"size", st.Board.Scene.Size)
	g.pending = append(g.pending, platformcore.Event{
		Kind:  platformcore.EventLevelStarted,
		Level: st.Cursor.Displayed,
	})
	g.publish()
}

func (g *Game) levelSolved() platformcore.Event {
	st := g.state
	g.solved++
	if st.Final {
		g.gameOver = true
	}
	g.logger.Info("level solved", "level", st.Cursor.Displayed, "moves", st.Moves, "ticks", g.levelTicks)
	return platformcore.Event{
		Kind:  platformcore.EventLevelSolved,
		Level: st.Cursor.Displayed,
		Moves: st.Moves,
		Ticks: g.levelTicks,
	}
}

func (g *Game) relayout() {
	b := g.state.Board
	g.layout = NewLayout(g.screenW, g.screenH, b.Scene.Size, b.Slots())
	g.tooSmall = !g.layout.Fits(g.screenW, g.screenH)
	if g.pointer.Valid {
		g.hover = g.layout.Hit(g.pointer.X, g.pointer.Y)
	}
}

// publish hands the current frame to the renderer.
func (g *Game) publish() {
	var r Renderer = g.layers
	st := g.state
	b := st.Board
	s := b.Scene
	l := g.layout

	for _, layer := range []Layer{LayerTiles, LayerPieces, LayerBeams} {
		r.SetPosition(layer, l.Board.X, l.Board.Y)
	}
	r.SetTilemap(LayerTiles, s.Tilemap, s.Size)
	r.SetVisible(LayerTiles, true)
	r.SetTilemap(LayerPieces, s.Reflectors, s.Size)
	r.SetVisible(LayerPieces, true)
	r.SetTilemap(LayerBeams, s.Beams, s.Size)
	r.SetAlpha(LayerBeams, st.BeamAlpha)
	r.SetVisible(LayerBeams, st.Emitter >= 0)

	hoverCell := g.hover.Kind == TargetCell && s.InBounds(g.hover.Index)
	showSource := hoverCell && core.IsSource(s.Tilemap[g.hover.Index]) &&
		st.Holding < 0 && !st.BeamHold && !st.Complete
	r.SetVisible(LayerSource, showSource)
	if showSource {
		glyph, _ := g.theme.Glyph(s.Tilemap[g.hover.Index])
		x, y := l.CellOrigin(g.hover.Index)
		r.SetText(LayerSource, glyph.Text)
		r.SetPosition(LayerSource, x, y)
	}

	r.SetTilemap(LayerInventory, inventoryTiles(b), invCols)
	r.SetPosition(LayerInventory, l.Inventory.X, l.Inventory.Y)
	r.SetVisible(LayerInventory, true)

	showSlot := g.hover.Kind == TargetSlot && b.InInventory(g.hover.Index) && !st.Complete
	r.SetVisible(LayerSlotHover, showSlot)
	if showSlot {
		x, y := l.SlotOrigin(g.hover.Index)
		r.SetText(LayerSlotHover, "<")
		r.SetPosition(LayerSlotHover, x+cellW, y)
	}

	r.SetText(LayerMenu, strings.Join(menuLabels[:], "\n"))
	r.SetPosition(LayerMenu, l.Menu.X, l.Menu.Y)
	r.SetVisible(LayerMenu, true)
	if st.Holding >= 0 || st.Complete {
		r.SetAlpha(LayerMenu, 0.3)
	} else {
		r.SetAlpha(LayerMenu, 1)
	}

	hovered := MenuItem(-1)
	switch {
	case st.Complete && !st.Final:
		hovered = MenuNext
	case g.hover.Kind == TargetMenu && st.Holding < 0 && !st.Complete:
		hovered = MenuItem(g.hover.Index)
	}
	r.SetVisible(LayerMenuHover, hovered >= 0)
	if hovered >= 0 {
		x, y := l.MenuOrigin(hovered)
		r.SetText(LayerMenuHover, hovered.String())
		r.SetPosition(LayerMenuHover, x, y)
	}

	r.SetVisible(LayerHolding, st.Holding >= 0)
	if st.Holding >= 0 {
		r.SetTilemap(LayerHolding, []core.Tile{b.Pieces[st.Holding].Tile}, 1)
		if hoverCell && b.CanHold(g.hover.Index) {
			x, y := l.CellOrigin(g.hover.Index)
			r.SetPosition(LayerHolding, x, y)
		} else {
			r.SetPosition(LayerHolding, g.pointer.X, g.pointer.Y)
		}
	}

	r.SetText(LayerHUD, levelLabel(st))
	r.SetPosition(LayerHUD, l.Board.X, 0)
	r.SetVisible(LayerHUD, true)

	summary := st.Catalog().Summary(Version)
	r.SetText(LayerVersion, summary)
	r.SetPosition(LayerVersion, max(g.screenW-len(summary)-1, 0), 0)
	r.SetVisible(LayerVersion, g.opts.ShowVersion)

	status := statusLine(st, g.gameOver)
	r.SetText(LayerStatus, status)
	r.SetPosition(LayerStatus, l.Board.X, 1)
	r.SetVisible(LayerStatus, status != "")
}

// Render draws the game to the screen.
func (g *Game) Render(dst *platformcore.Screen) {
	dst.Clear()

	switch {
	case g.loadErr != nil:
		g.renderOverlay(dst, "Levels failed to load", g.loadErr.Error())
		return
	case g.state == nil:
		return
	case g.tooSmall:
		g.renderOverlay(dst, "Window too small", "Resize to continue")
		return
	}

	g.layers.Draw(dst, g.theme)
	if g.gameOver {
		g.renderOverlay(dst, "You solved every level!", "Esc to leave")
	}
}

// renderOverlay draws a centered box with two lines of text.
func (g *Game) renderOverlay(dst *platformcore.Screen, line1, line2 string) {
	w := max(len(line1), len(line2)) + 4
	box := platformcore.NewRect((dst.Width()-w)/2, (dst.Height()-5)/2, w, 5)
	for y := box.Y; y < box.Bottom(); y++ {
		for x := box.X; x < box.Right(); x++ {
			dst.Set(x, y, ' ')
		}
	}
	dst.DrawBox(box, platformcore.ColorBrightWhite)
	dst.DrawTextCentered(box.Y+1, line1, platformcore.ColorBrightWhite)
	dst.DrawTextCentered(box.Y+3, line2, platformcore.ColorGray)
}

// State returns the current game state.
func (g *Game) State() platformcore.GameState {
	st := platformcore.GameState{
		Score:         g.solved,
		GameOver:      g.gameOver,
		QuitRequested: g.quit,
	}
	if g.state != nil && g.state.Loaded() {
		st.Level = g.state.Cursor.Displayed
	}
	return st
}

// Puzzle exposes the rules state for tests and tooling.
func (g *Game) Puzzle() *core.State {
	return g.state
}

// Layout returns the current screen layout.
func (g *Game) Layout() Layout {
	return g.layout
}
