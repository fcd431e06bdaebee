package core

// Snapshot is one undo ledger entry.
type Snapshot struct {
	Positions [MaxPieces]int
	Tilemap   []Tile
}

// History is a linear undo ledger with a cursor. Pushing after an undo
// discards the redo tail.
type History struct {
	entries []Snapshot
	idx     int
}

// Push records the board and moves the cursor to the new entry.
func (h *History) Push(b *Board) {
	if len(h.entries) > 0 {
		h.entries = h.entries[:h.idx+1]
	}
	h.entries = append(h.entries, Snapshot{
		Positions: b.Pieces.Positions(),
		Tilemap:   append([]Tile(nil), b.Scene.Tilemap...),
	})
	h.idx = len(h.entries) - 1
}

// Clear drops every entry.
func (h *History) Clear() {
	h.entries = nil
	h.idx = 0
}

// Undo steps the cursor back and restores that entry. It reports false at
// the oldest entry.
func (h *History) Undo(b *Board) bool {
	if h.idx == 0 || len(h.entries) == 0 {
		return false
	}
	h.idx--
	h.restore(b)
	return true
}

// Redo steps the cursor forward and restores that entry. It reports false at
// the newest entry.
func (h *History) Redo(b *Board) bool {
	if h.idx >= len(h.entries)-1 {
		return false
	}
	h.idx++
	h.restore(b)
	return true
}

// Len returns the number of entries.
func (h *History) Len() int {
	return len(h.entries)
}

// Index returns the cursor position.
func (h *History) Index() int {
	return h.idx
}

func (h *History) restore(b *Board) {
	e := h.entries[h.idx]
	b.Pieces.Restore(e.Positions)
	copy(b.Scene.Tilemap, e.Tilemap)
	b.UpdateClipping()
}
