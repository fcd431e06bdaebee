package mirrorb

import (
	"bytes"
	"reflect"
	"strings"
	"testing"

	platformcore "github.com/vovakirdan/mirrorb/internal/core"
	"github.com/vovakirdan/mirrorb/internal/games/mirrorb/core"
)

func openBlock(n, x, y int) core.Block {
	m := bytes.Repeat([]byte{core.FloorMarker}, n*n)
	m[y*n+x] = core.OrbMarker
	return core.Block{Pieces: 8, Size: n, Orbs: 1, Map: m}
}

func newTestGame(t *testing.T, seed int64) *Game {
	t.Helper()
	opts := DefaultOptions()
	opts.Catalog = core.NewCatalog([]core.Block{
		openBlock(5, 3, 2),
		openBlock(6, 2, 3),
	})
	Configure(opts)
	t.Cleanup(func() { Configure(DefaultOptions()) })

	g := New()
	g.Reset(platformcore.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: seed})
	return g
}

func findTile(s *core.Scene, tile core.Tile) int {
	for i, t := range s.Tilemap {
		if t == tile {
			return i
		}
	}
	return -1
}

func findFloor(s *core.Scene) int {
	for i, t := range s.Tilemap {
		if core.IsFloor(t) {
			return i
		}
	}
	return -1
}

func idle(g *Game, n int) {
	in := platformcore.NewInputFrame()
	in.Pointer = g.pointer
	for range n {
		g.Step(in)
	}
}

// clickAt presses and releases over (x, y) and returns the release events.
func clickAt(g *Game, x, y int) []platformcore.Event {
	in := platformcore.NewInputFrame()
	in.MoveTo(x, y)
	in.Set(platformcore.ActionPress)
	g.Step(in)
	in.Clear()
	in.Set(platformcore.ActionRelease)
	return g.Step(in).Events
}

// fireAtOrb arms the source facing the orb along its row.
func fireAtOrb(t *testing.T, g *Game) []platformcore.Event {
	t.Helper()
	s := g.Puzzle().Board.Scene
	orb := findTile(s, core.Orb)
	if orb < 0 {
		t.Fatal("no orb on board")
	}
	_, oy := s.XY(orb)
	x, y := g.Layout().CellOrigin(s.Index(0, oy))
	return clickAt(g, x, y)
}

func hasEvent(events []platformcore.Event, kind platformcore.EventKind) (platformcore.Event, bool) {
	for _, e := range events {
		if e.Kind == kind {
			return e, true
		}
	}
	return platformcore.Event{}, false
}

func TestSolveAndAdvance(t *testing.T) {
	g := newTestGame(t, 1)

	events := fireAtOrb(t, g)
	solved, ok := hasEvent(events, platformcore.EventLevelSolved)
	if !ok {
		t.Fatalf("events = %+v, expected a solve", events)
	}
	if solved.Level != 1 {
		t.Errorf("solved level = %d, expected 1", solved.Level)
	}
	if !g.Puzzle().Complete || g.State().GameOver {
		t.Fatalf("complete %v, game over %v", g.Puzzle().Complete, g.State().GameOver)
	}

	in := platformcore.NewInputFrame()
	in.Set(platformcore.ActionNext)
	res := g.Step(in)
	if e, ok := hasEvent(res.Events, platformcore.EventLevelStarted); !ok || e.Level != 2 {
		t.Fatalf("events = %+v, expected level 2 to start", res.Events)
	}
	if !g.Puzzle().Final {
		t.Error("level 2 should be final")
	}

	idle(g, g.opts.ClickDelay)
	if _, ok := hasEvent(fireAtOrb(t, g), platformcore.EventLevelSolved); !ok {
		t.Fatal("level 2 not solved")
	}
	if st := g.State(); !st.GameOver || st.Score != 2 {
		t.Errorf("State() = %+v, expected game over with score 2", st)
	}
	if g.Snapshot().Phase != PhaseFinished {
		t.Errorf("Phase = %s, expected %s", g.Snapshot().Phase, PhaseFinished)
	}
}

func TestMissedShotFades(t *testing.T) {
	g := newTestGame(t, 1)
	s := g.Puzzle().Board.Scene
	orb := findTile(s, core.Orb)
	_, oy := s.XY(orb)
	row := 1
	if row == oy {
		row = 3
	}
	x, y := g.Layout().CellOrigin(s.Index(0, row))
	if _, ok := hasEvent(clickAt(g, x, y), platformcore.EventLevelSolved); ok {
		t.Fatal("a missed shot solved the level")
	}
	if g.Snapshot().Phase != PhaseBeam {
		t.Errorf("Phase = %s, expected %s", g.Snapshot().Phase, PhaseBeam)
	}
	idle(g, 25)
	if g.Puzzle().Emitter != -1 {
		t.Error("beam did not fade out")
	}
}

func TestPointerPlacement(t *testing.T) {
	g := newTestGame(t, 7)
	st := g.Puzzle()
	l := g.Layout()

	x, y := l.SlotOrigin(2)
	clickAt(g, x, y)
	if st.Holding != 2 {
		t.Fatalf("Holding = %d, expected 2", st.Holding)
	}

	// Clicks during the delay are ignored.
	cell := findFloor(st.Board.Scene)
	cx, cy := l.CellOrigin(cell)
	clickAt(g, cx, cy)
	if st.Board.Pieces[2].Placed() {
		t.Fatal("click during delay placed the piece")
	}

	idle(g, g.opts.ClickDelay)
	clickAt(g, cx, cy)
	if st.Board.Pieces[2].Cell != cell || st.Holding != -1 {
		t.Fatalf("piece = %+v, holding %d", st.Board.Pieces[2], st.Holding)
	}
	if g.Snapshot().Moves != 1 {
		t.Errorf("Moves = %d, expected 1", g.Snapshot().Moves)
	}

	idle(g, g.opts.ClickDelay)
	mx, my := l.MenuOrigin(MenuUndo)
	clickAt(g, mx, my)
	if st.Board.Pieces[2].Placed() {
		t.Error("undo from the menu did not lift the piece")
	}

	idle(g, g.opts.ClickDelay)
	mx, my = l.MenuOrigin(MenuRedo)
	clickAt(g, mx, my)
	if st.Board.Pieces[2].Cell != cell {
		t.Error("redo from the menu did not restore the piece")
	}
}

func TestKeyTransforms(t *testing.T) {
	g := newTestGame(t, 3)
	before := g.Snapshot()

	in := platformcore.NewInputFrame()
	in.Set(platformcore.ActionRotate)
	g.Step(in)
	after := g.Snapshot()
	if after.History != before.History+1 {
		t.Errorf("History = %d, expected %d", after.History, before.History+1)
	}
	orb := findTile(g.Puzzle().Board.Scene, core.Orb)
	if want := core.Rotate.MapCell(before.Size, findTileIn(before.Tilemap, core.Orb)); orb != want {
		t.Errorf("orb at %d after rotate, expected %d", orb, want)
	}

	in.Clear()
	in.Set(platformcore.ActionUndo)
	g.Step(in)
	if !reflect.DeepEqual(g.Snapshot().Tilemap, before.Tilemap) {
		t.Error("undo did not restore the tilemap")
	}
}

func TestRotateWhileBeamHeld(t *testing.T) {
	g := newTestGame(t, 1)
	s := g.Puzzle().Board.Scene
	_, oy := s.XY(findTile(s, core.Orb))
	x, y := g.Layout().CellOrigin(s.Index(0, oy))

	in := platformcore.NewInputFrame()
	in.MoveTo(x, y)
	in.Set(platformcore.ActionPress)
	g.Step(in)
	idle(g, 5)
	if !g.Puzzle().BeamHold || g.Puzzle().Board.Scene.ActiveOrbs() != 1 {
		t.Fatal("held beam does not light the orb")
	}

	in.Clear()
	in.Set(platformcore.ActionRotate)
	g.Step(in)
	if g.Puzzle().Emitter != -1 {
		t.Errorf("Emitter = %d after rotate, expected the beam dropped", g.Puzzle().Emitter)
	}

	in.Clear()
	in.Set(platformcore.ActionRelease)
	res := g.Step(in)
	if _, ok := hasEvent(res.Events, platformcore.EventLevelSolved); ok || g.Puzzle().Complete {
		t.Fatalf("events = %+v, rotating under a held beam solved the level", res.Events)
	}
	if got := g.Puzzle().Board.Scene.ActiveOrbs(); got != 0 {
		t.Errorf("ActiveOrbs() = %d after release, expected 0", got)
	}
}

func findTileIn(tiles []core.Tile, tile core.Tile) int {
	for i, t := range tiles {
		if t == tile {
			return i
		}
	}
	return -1
}

func TestEscapeRequestsQuit(t *testing.T) {
	g := newTestGame(t, 1)
	in := platformcore.NewInputFrame()
	in.Set(platformcore.ActionEscape)
	if res := g.Step(in); !res.State.QuitRequested {
		t.Error("Escape did not request quit")
	}
}

func TestDeterminism(t *testing.T) {
	g1 := newTestGame(t, 12345)
	g2 := newTestGame(t, 12345)

	in := platformcore.NewInputFrame()
	for i := range 60 {
		in.Clear()
		switch i {
		case 5:
			in.Set(platformcore.ActionFlipH)
		case 10:
			in.Set(platformcore.ActionTrash)
		case 20:
			in.Set(platformcore.ActionRotate)
		}
		g1.Step(in)
		g2.Step(in)
	}

	if s1, s2 := g1.Snapshot(), g2.Snapshot(); !reflect.DeepEqual(s1, s2) {
		t.Errorf("snapshots differ:\n%+v\n%+v", s1, s2)
	}
}

func TestRender(t *testing.T) {
	g := newTestGame(t, 1)
	screen := platformcore.NewScreen(80, 24)
	g.Render(screen)

	if row := screen.Row(0); !strings.Contains(row, "Level: 1") || !strings.Contains(row, "mirr/orb v0.9.0, 2 levels, 2 maps") {
		t.Errorf("HUD row = %q", row)
	}
	s := g.Puzzle().Board.Scene
	x, y := g.Layout().CellOrigin(findTile(s, core.Orb))
	if got := screen.Get(x, y); got != '○' {
		t.Errorf("orb glyph = %q, expected '○'", got)
	}
	_, my := g.Layout().MenuOrigin(MenuTrash)
	if row := screen.Row(my); !strings.Contains(row, "trash") {
		t.Errorf("menu row = %q, expected trash", row)
	}
}

func TestTooSmall(t *testing.T) {
	g := newTestGame(t, 1)
	g.Resize(20, 8)
	if g.Snapshot().Phase != PhasePausedSmall {
		t.Fatalf("Phase = %s, expected %s", g.Snapshot().Phase, PhasePausedSmall)
	}
	screen := platformcore.NewScreen(20, 8)
	g.Render(screen)
	if !strings.Contains(screen.String(), "Window too small") {
		t.Error("too-small overlay missing")
	}

	g.Resize(80, 24)
	if g.Snapshot().Phase != PhasePlaying || g.Snapshot().Level != 1 {
		t.Errorf("resize lost the run: %+v", g.Snapshot())
	}
}

func TestReloadCatalog(t *testing.T) {
	g := newTestGame(t, 1)
	g.ReloadCatalog(core.NewCatalog([]core.Block{openBlock(5, 2, 2)}))

	res := g.Step(platformcore.NewInputFrame())
	if _, ok := hasEvent(res.Events, platformcore.EventCatalogReloaded); !ok {
		t.Errorf("events = %+v, expected a reload", res.Events)
	}
	if !g.Puzzle().Final {
		t.Error("single-level catalog should make the current level final")
	}
}

func TestStartLevel(t *testing.T) {
	SetStartLevel(2)
	t.Cleanup(func() { SetStartLevel(0) })
	g := newTestGame(t, 1)
	if g.Snapshot().Level != 2 || g.Snapshot().Size != 6 {
		t.Errorf("start level snapshot = %+v", g.Snapshot())
	}
}

func TestStartAtAndUseCatalog(t *testing.T) {
	g := newTestGame(t, 1)
	g.UseCatalog(core.NewCatalog([]core.Block{openBlock(5, 1, 1), openBlock(7, 3, 3)}))
	g.StartAt(2)
	g.Reset(platformcore.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 2})

	if s := g.Snapshot(); s.Level != 2 || s.Size != 7 {
		t.Errorf("snapshot after StartAt = %+v", s)
	}
}
