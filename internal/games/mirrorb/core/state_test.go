package core_test

import (
	"testing"

	"github.com/vovakirdan/mirrorb/internal/games/mirrorb/core"
)

func catalogOf(blocks ...core.Block) *core.Catalog {
	return core.NewCatalog(blocks)
}

func newState(t *testing.T, c *core.Catalog) *core.State {
	t.Helper()
	s := core.NewState(c, stubRand{f: 1})
	s.NextLevel()
	checkState(t, s)
	return s
}

func checkState(t *testing.T, s *core.State) {
	t.Helper()
	if err := s.Validate(); err != nil {
		t.Fatalf("Validate() = %v", err)
	}
}

func progression() *core.Catalog {
	return catalogOf(
		openBlock(5, 8, xy{3, 2}),
		openBlock(6, 8, xy{2, 4}),
		openBlock(6, 8, xy{3, 4}),
		openBlock(7, 16, xy{3, 3}),
	)
}

func TestNextLevelProgression(t *testing.T) {
	c := progression()
	if c.Len() != 3 || c.LevelCount() != 4 || c.MapCount() != 4 {
		t.Fatalf("catalog = %d pools, %d levels, %d maps", c.Len(), c.LevelCount(), c.MapCount())
	}

	s := newState(t, c)
	tests := []struct {
		level, sub, displayed int
		final                 bool
	}{
		{2, 0, 2, false},
		{2, 1, 3, false},
		{3, 0, 4, true},
	}
	if s.Cursor.Level != 1 || s.Cursor.Displayed != 1 || s.Final {
		t.Fatalf("first level cursor = %+v, final %v", s.Cursor, s.Final)
	}
	for _, tt := range tests {
		s.NextLevel()
		checkState(t, s)
		if s.Cursor.Level != tt.level || s.Cursor.SubLevel != tt.sub || s.Cursor.Displayed != tt.displayed {
			t.Errorf("cursor = %+v, expected level %d sub %d displayed %d", s.Cursor, tt.level, tt.sub, tt.displayed)
		}
		if s.Final != tt.final {
			t.Errorf("level %d: Final = %v, expected %v", tt.displayed, s.Final, tt.final)
		}
		if s.History.Len() != 1 || s.Moves != 0 {
			t.Errorf("level %d: history %d, moves %d", tt.displayed, s.History.Len(), s.Moves)
		}
	}
}

func TestSubLevelUsesOtherOption(t *testing.T) {
	s := newState(t, progression())
	s.NextLevel()
	first := s.Cursor.Option
	s.NextLevel()
	if s.Cursor.Option == first {
		t.Errorf("sub level reused option %d", first)
	}
	if s.Board.Scene.Size != 6 {
		t.Errorf("Size = %d, expected 6", s.Board.Scene.Size)
	}
}

func TestJumpTo(t *testing.T) {
	tests := []struct {
		displayed  int
		level, sub int
	}{
		{0, 1, 0},
		{1, 1, 0},
		{2, 2, 0},
		{3, 2, 1},
		{4, 3, 0},
		{99, 3, 0},
	}
	for _, tt := range tests {
		s := core.NewState(progression(), stubRand{f: 1})
		s.JumpTo(tt.displayed)
		checkState(t, s)
		if s.Cursor.Level != tt.level || s.Cursor.SubLevel != tt.sub {
			t.Errorf("JumpTo(%d) cursor = %+v, expected level %d sub %d", tt.displayed, s.Cursor, tt.level, tt.sub)
		}
		if s.Cursor.Displayed != core.DisplayedLevel(tt.level, tt.sub) {
			t.Errorf("JumpTo(%d) displayed = %d", tt.displayed, s.Cursor.Displayed)
		}
	}
}

func TestWinFiresOnce(t *testing.T) {
	s := newState(t, progression())
	e := s.Board.Scene.Index(0, 2)

	if !s.Arm(e) {
		t.Fatal("Arm() = false")
	}
	if s.BeamAlpha != 1 || !s.BeamHold || s.Emitter != e {
		t.Errorf("armed state = alpha %v hold %v emitter %d", s.BeamAlpha, s.BeamHold, s.Emitter)
	}
	if !s.Release() {
		t.Fatal("Release() = false, expected a win")
	}
	if !s.Complete || s.BeamHold || s.Emitter != -1 || s.BeamAlpha != 0 {
		t.Errorf("after win: complete %v hold %v emitter %d alpha %v", s.Complete, s.BeamHold, s.Emitter, s.BeamAlpha)
	}
	if s.CheckWin() {
		t.Error("CheckWin() fired twice")
	}
	if s.Arm(e) {
		t.Error("Arm() on a complete level should be ignored")
	}
	checkState(t, s)
}

func TestWinClearsPieces(t *testing.T) {
	s := newState(t, catalogOf(openBlock(6, 8, xy{2, 4})))
	b := s.Board
	slot := core.Slot(core.ReflectorTR)
	if !s.SelectSlot(slot) || !s.ClickCell(b.Scene.Index(2, 2)) {
		t.Fatal("placing TR failed")
	}
	s.Arm(b.Scene.Index(0, 2))
	if !s.Release() {
		t.Fatal("Release() = false, expected a win")
	}
	if b.Pieces.AnyPlaced() {
		t.Error("pieces still placed after win")
	}
	if s.Moves != 1 {
		t.Errorf("Moves = %d, expected 1", s.Moves)
	}
}

func TestNoGoalsNeverWins(t *testing.T) {
	s := newState(t, catalogOf(openBlock(5, 8)))
	for i := range s.Board.Scene.Tilemap {
		if !core.IsSource(s.Board.Scene.Tilemap[i]) {
			continue
		}
		s.Arm(i)
		if s.Release() || s.Complete {
			t.Fatalf("emitter %d completed a level without goals", i)
		}
	}
}

func TestMissedBeamDisarms(t *testing.T) {
	s := newState(t, progression())
	e := s.Board.Scene.Index(0, 1)
	s.Arm(e)
	if s.Release() {
		t.Fatal("Release() = true for a beam that misses the orb")
	}
	if s.BeamHold || s.Emitter != e {
		t.Errorf("hold %v emitter %d, expected released beam still visible", s.BeamHold, s.Emitter)
	}

	for s.Fade(0.25) {
	}
	if s.Emitter != -1 || s.BeamAlpha != 0 || s.Board.Scene.Lit(s.Board.Scene.Index(1, 1)) {
		t.Errorf("after fade: emitter %d alpha %v", s.Emitter, s.BeamAlpha)
	}
}

func TestBoardChangeDisarmsBeam(t *testing.T) {
	placeOffBeam := func(s *core.State) {
		s.SelectSlot(0)
		s.ClickCell(s.Board.Scene.Index(1, 1))
	}
	tests := []struct {
		name  string
		setup func(s *core.State)
		act   func(s *core.State) bool
	}{
		{"rotate", nil, func(s *core.State) bool { return s.Transform(core.Rotate) }},
		{"flip", nil, func(s *core.State) bool { return s.Transform(core.FlipV) }},
		{"undo", placeOffBeam, (*core.State).Undo},
		{"redo", func(s *core.State) { placeOffBeam(s); s.Undo() }, (*core.State).Redo},
		{"reset", placeOffBeam, (*core.State).ResetLevel},
	}
	for _, tt := range tests {
		for _, held := range []bool{true, false} {
			mode := "fading"
			if held {
				mode = "held"
			}
			t.Run(tt.name+"_"+mode, func(t *testing.T) {
				s := newState(t, progression())
				if tt.setup != nil {
					tt.setup(s)
				}
				e := s.Board.Scene.Index(0, 2)
				if !held {
					e = s.Board.Scene.Index(0, 3)
				}
				s.Arm(e)
				s.Advance(0)
				if !held {
					s.Release()
					if s.Emitter != e {
						t.Fatal("released beam is not fading")
					}
				} else if s.Board.Scene.ActiveOrbs() != 1 {
					t.Fatal("armed beam does not light the orb")
				}

				if !tt.act(s) {
					t.Fatal("board change was ignored")
				}
				if s.Emitter != -1 || s.BeamHold || s.BeamAlpha != 0 {
					t.Errorf("emitter %d hold %v alpha %v, expected a disarmed beam", s.Emitter, s.BeamHold, s.BeamAlpha)
				}
				for i, b := range s.Board.Scene.Beams {
					if b != core.Empty {
						t.Fatalf("overlay cell %d = %s after the board changed", i, b)
					}
				}
				if s.Release() || s.Complete {
					t.Error("release after a board change solved the level")
				}
				checkState(t, s)
			})
		}
	}
}

func TestAdvanceAnimates(t *testing.T) {
	s := newState(t, progression())
	e := s.Board.Scene.Index(0, 2)
	s.Arm(e)
	if !s.Advance(1) {
		t.Fatal("Advance(1) = false")
	}
	if s.Board.Scene.Lit(s.Board.Scene.Index(2, 2)) {
		t.Error("one step lit two cells")
	}
	for s.Advance(1) {
	}
	if got := s.Board.Scene.ActiveOrbs(); got != 1 {
		t.Errorf("ActiveOrbs() = %d, expected 1", got)
	}
}

func TestHoldingStateMachine(t *testing.T) {
	s := newState(t, catalogOf(openBlock(6, 8, xy{4, 4})))
	b := s.Board
	c1, c2 := b.Scene.Index(1, 1), b.Scene.Index(2, 1)

	if s.ClickCell(c1) {
		t.Error("click on empty cell with empty hand should be a no-op")
	}
	if s.SelectSlot(8) {
		t.Error("SelectSlot() outside inventory should fail")
	}

	s.SelectSlot(0)
	s.ClickCell(c1)
	if s.Holding != -1 || b.Pieces[0].Cell != c1 {
		t.Errorf("place: holding %d, piece %+v", s.Holding, b.Pieces[0])
	}
	if s.SelectSlot(0) {
		t.Error("SelectSlot() on a placed piece should fail")
	}

	s.SelectSlot(1)
	s.ClickCell(c1)
	if s.Holding != 0 || b.Pieces[1].Cell != c1 || b.Pieces[0].Placed() {
		t.Errorf("swap: holding %d, pieces %+v %+v", s.Holding, b.Pieces[0], b.Pieces[1])
	}
	checkState(t, s)

	if s.Arm(b.Scene.Index(0, 2)) {
		t.Error("Arm() while holding should be ignored")
	}
	if s.Undo() || s.Transform(core.Rotate) || s.ResetLevel() || s.TrashLevel() {
		t.Error("menu actions while holding should be ignored")
	}

	s.ClickCell(c2)
	s.ClickCell(c1)
	if s.Holding != 1 || b.Pieces[1].Placed() {
		t.Errorf("pickup: holding %d, piece %+v", s.Holding, b.Pieces[1])
	}
	if !s.Drop() || s.Holding != -1 {
		t.Error("Drop() did not empty the hand")
	}
	if s.ClickCell(b.Scene.Index(4, 4)) {
		t.Error("click on an orb should be a no-op")
	}
	if s.Moves != 4 || s.History.Len() != 5 {
		t.Errorf("Moves = %d, Len() = %d, expected 4, 5", s.Moves, s.History.Len())
	}
}

func TestResetLevel(t *testing.T) {
	s := newState(t, progression())
	if s.ResetLevel() {
		t.Error("ResetLevel() on an empty board should not record a snapshot")
	}
	s.SelectSlot(2)
	s.ClickCell(s.Board.Scene.Index(1, 1))
	if !s.ResetLevel() {
		t.Fatal("ResetLevel() = false")
	}
	if s.Board.Pieces.AnyPlaced() || s.History.Len() != 3 {
		t.Errorf("after reset: placed %v, Len() = %d", s.Board.Pieces.AnyPlaced(), s.History.Len())
	}
	if !s.Undo() || !s.Board.Pieces[2].Placed() {
		t.Error("undo did not bring back the reset piece")
	}
}

func TestTrashLevel(t *testing.T) {
	s := newState(t, progression())
	s.NextLevel()
	s.SelectSlot(0)
	s.ClickCell(s.Board.Scene.Index(1, 1))
	s.Transform(core.FlipH)

	if !s.TrashLevel() {
		t.Fatal("TrashLevel() = false")
	}
	checkState(t, s)
	if s.Board.Pieces.AnyPlaced() || s.History.Len() != 1 || s.Moves != 0 {
		t.Errorf("after trash: placed %v, Len() = %d, Moves = %d", s.Board.Pieces.AnyPlaced(), s.History.Len(), s.Moves)
	}
	if s.Cursor.Level != 2 {
		t.Errorf("trash changed level to %d", s.Cursor.Level)
	}
}

func TestShuffleOnLoad(t *testing.T) {
	s := core.NewState(catalogOf(openBlock(6, 8, xy{1, 2})), stubRand{f: 0.4})
	s.NextLevel()
	checkState(t, s)

	// Both flips make a half turn; three more quarter turns leave the
	// board one quarter turn from where it started.
	want := s.Board.Scene.Index(3, 1)
	if got := s.Board.Scene.Tilemap[want]; got != core.Orb {
		t.Errorf("Tilemap(3,1) = %s, expected orb", got)
	}
	if s.History.Len() != 1 {
		t.Errorf("Len() = %d, expected 1", s.History.Len())
	}
}

func TestSetCatalogClamps(t *testing.T) {
	s := newState(t, progression())
	s.NextLevel()
	s.NextLevel()
	s.NextLevel()
	if !s.Final {
		t.Fatal("expected final level")
	}

	s.SetCatalog(catalogOf(openBlock(5, 8, xy{3, 2}), openBlock(6, 8, xy{2, 4})))
	if s.Cursor.Level != 2 || s.Cursor.Option != 0 {
		t.Errorf("cursor = %+v, expected level 2 option 0", s.Cursor)
	}
	if !s.Final {
		t.Error("last pool of the new catalog should be final")
	}
}
