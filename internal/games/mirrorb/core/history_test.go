package core_test

import (
	"slices"
	"testing"

	"github.com/vovakirdan/mirrorb/internal/games/mirrorb/core"
)

func TestHistoryEmpty(t *testing.T) {
	var h core.History
	b := openBoard(t, 5)
	if h.Undo(b) {
		t.Error("Undo() on empty ledger should be a no-op")
	}
	if h.Redo(b) {
		t.Error("Redo() on empty ledger should be a no-op")
	}
}

func TestHistoryUndoRedoRoundTrip(t *testing.T) {
	b := lopsidedBoard(t)
	var h core.History
	h.Push(b)

	b.Apply(core.Rotate)
	h.Push(b)
	slot, err := b.Pickup(b.Pieces[core.Rotate.Perm[3]].Cell)
	if err != nil {
		t.Fatalf("Pickup() = %v", err)
	}
	b.UpdateClipping()
	h.Push(b)
	if err := b.Place(slot, b.Scene.Index(3, 1)); err != nil {
		t.Fatalf("Place() = %v", err)
	}
	b.UpdateClipping()
	h.Push(b)

	want := clone(b)
	if !h.Undo(b) {
		t.Fatal("Undo() = false, expected true")
	}
	if b.Pieces[slot].Placed() {
		t.Error("undo did not return the piece to the inventory")
	}
	if !h.Redo(b) {
		t.Fatal("Redo() = false, expected true")
	}
	sameBoard(t, "undo then redo", b, want)
	if !slices.Equal(b.Scene.Clipping, want.Scene.Clipping) {
		t.Error("clipping not restored")
	}
	if h.Redo(b) {
		t.Error("Redo() at tail should be a no-op")
	}

	for h.Undo(b) {
	}
	sameBoard(t, "undo to start", b, lopsidedBoard(t))
	if h.Index() != 0 || h.Len() != 4 {
		t.Errorf("Index() = %d, Len() = %d, expected 0, 4", h.Index(), h.Len())
	}
}

func TestHistoryTruncatesRedoTail(t *testing.T) {
	s := newState(t, catalogOf(openBlock(6, 8, xy{4, 4})))
	b := s.Board
	b1, b2 := b.Scene.Index(1, 1), b.Scene.Index(2, 2)

	click := func(slot, cell int) {
		t.Helper()
		if !s.SelectSlot(slot) || !s.ClickCell(cell) {
			t.Fatalf("placing slot %d at %d failed", slot, cell)
		}
	}

	click(0, b1)
	click(1, b2)
	if !s.Undo() {
		t.Fatal("Undo() = false")
	}
	if b.Pieces[1].Placed() || b.Pieces[0].Cell != b1 {
		t.Errorf("after one undo pieces = %+v %+v", b.Pieces[0], b.Pieces[1])
	}
	if !s.Undo() {
		t.Fatal("Undo() = false")
	}
	if b.Pieces[0].Placed() {
		t.Error("after two undos piece 0 is still placed")
	}

	click(2, b1)
	if got, want := s.History.Len(), s.History.Index()+1; got != want {
		t.Errorf("Len() = %d, expected %d", got, want)
	}
	if s.History.Len() != 2 {
		t.Errorf("Len() = %d, expected 2", s.History.Len())
	}
	if s.Redo() {
		t.Error("Redo() after a new move should be a no-op")
	}
}
