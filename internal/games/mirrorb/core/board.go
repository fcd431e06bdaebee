package core

// Board couples a scene with its inventory.
type Board struct {
	Scene  *Scene
	Pieces Pieces
}

// NewBoard wraps a scene with a fresh inventory.
func NewBoard(s *Scene) *Board {
	b := &Board{Scene: s, Pieces: NewPieces()}
	b.UpdateClipping()
	return b
}

// Slots returns the inventory size in play for this level.
func (b *Board) Slots() int {
	return min(b.Scene.NumPieces, MaxPieces)
}

// UpdateClipping recomputes the clipping and reflector maps from the
// tilemap and placed pieces.
func (b *Board) UpdateClipping() {
	s := b.Scene
	s.Clipping = Clipping(s.Tilemap, b.Pieces[:])
	clear(s.Reflectors)
	for _, p := range b.Pieces {
		if p.Placed() {
			s.Reflectors[p.Cell] = p.Tile
		}
	}
}

// CanHold reports whether cell accepts a piece: an interior floor cell.
func (b *Board) CanHold(cell int) bool {
	return b.Scene.IsInterior(cell) && IsFloor(b.Scene.Tilemap[cell])
}

// Place moves an inventory piece onto an empty floor cell.
func (b *Board) Place(slot, cell int) error {
	if err := b.checkSlot("place", slot); err != nil {
		return err
	}
	if !b.CanHold(cell) {
		return violation("place", "cell %d is not an interior floor cell", cell)
	}
	if other := b.Pieces.At(cell); other >= 0 {
		return violation("place", "cell %d already holds piece %d", cell, other)
	}
	if b.Pieces[slot].Placed() {
		return violation("place", "piece %d is already on the board", slot)
	}
	b.Pieces[slot].Cell = cell
	return nil
}

// Swap places the held inventory piece at an occupied cell and returns the
// displaced piece to the inventory. It returns the displaced slot.
func (b *Board) Swap(slot, cell int) (int, error) {
	if err := b.checkSlot("swap", slot); err != nil {
		return -1, err
	}
	if b.Pieces[slot].Placed() {
		return -1, violation("swap", "piece %d is already on the board", slot)
	}
	other := b.Pieces.At(cell)
	if other < 0 {
		return -1, violation("swap", "cell %d is empty", cell)
	}
	b.Pieces[other].Cell = Unplaced
	b.Pieces[slot].Cell = cell
	return other, nil
}

// Pickup returns the piece at cell to the inventory and returns its slot.
func (b *Board) Pickup(cell int) (int, error) {
	slot := b.Pieces.At(cell)
	if slot < 0 {
		return -1, violation("pickup", "cell %d is empty", cell)
	}
	b.Pieces[slot].Cell = Unplaced
	return slot, nil
}

// InInventory reports whether slot is a usable piece not on the board.
func (b *Board) InInventory(slot int) bool {
	return slot >= 0 && slot < b.Slots() && !b.Pieces[slot].Placed()
}

func (b *Board) checkSlot(op string, slot int) error {
	if slot < 0 || slot >= b.Slots() {
		return violation(op, "slot %d outside inventory of %d", slot, b.Slots())
	}
	return nil
}
