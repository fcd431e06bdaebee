package core

// Unplaced marks a piece that sits in the inventory.
const Unplaced = -1

// Piece is one inventory reflector. Its tile never changes; only the cell
// it occupies does.
type Piece struct {
	Tile Tile
	Cell int // Board cell, or Unplaced
}

// Placed reports whether the piece is on the board.
func (p Piece) Placed() bool {
	return p.Cell != Unplaced
}

// Pieces is the full inventory. Slot k holds Canonical[k%8].
type Pieces [MaxPieces]Piece

// NewPieces returns an inventory with every piece unplaced.
func NewPieces() Pieces {
	var ps Pieces
	for k := range ps {
		ps[k] = Piece{Tile: Canonical[k%Orientations], Cell: Unplaced}
	}
	return ps
}

// Positions returns the occupied cell of every slot.
func (ps *Pieces) Positions() [MaxPieces]int {
	var pos [MaxPieces]int
	for k, p := range ps {
		pos[k] = p.Cell
	}
	return pos
}

// Restore sets every slot's cell from pos.
func (ps *Pieces) Restore(pos [MaxPieces]int) {
	for k := range ps {
		ps[k].Cell = pos[k]
	}
}

// At returns the slot of the piece at cell, or -1.
func (ps *Pieces) At(cell int) int {
	for k, p := range ps {
		if p.Placed() && p.Cell == cell {
			return k
		}
	}
	return -1
}

// AnyPlaced reports whether at least one piece is on the board.
func (ps *Pieces) AnyPlaced() bool {
	for _, p := range ps {
		if p.Placed() {
			return true
		}
	}
	return false
}

// PlacedCount returns how many pieces are on the board.
func (ps *Pieces) PlacedCount() int {
	n := 0
	for _, p := range ps {
		if p.Placed() {
			n++
		}
	}
	return n
}

// Reset returns every piece to the inventory.
func (ps *Pieces) Reset() {
	for k := range ps {
		ps[k].Cell = Unplaced
	}
}
