package core

// Transform is a rigid motion of the interior. Perm maps an orientation
// slot to the slot holding the transformed orientation; Remap maps interior
// coordinates on a board of side n.
type Transform struct {
	Name  string
	Perm  [Orientations]int
	Remap func(n, x, y int) (int, int)
}

var (
	// FlipH mirrors left to right.
	FlipH = Transform{
		Name:  "flip_h",
		Perm:  [Orientations]int{1, 0, 2, 6, 5, 4, 3, 7},
		Remap: func(n, x, y int) (int, int) { return n - 1 - x, y },
	}
	// FlipV mirrors top to bottom.
	FlipV = Transform{
		Name:  "flip_v",
		Perm:  [Orientations]int{4, 5, 7, 3, 0, 1, 6, 2},
		Remap: func(n, x, y int) (int, int) { return x, n - 1 - y },
	}
	// Rotate turns the board a quarter clockwise.
	Rotate = Transform{
		Name:  "rotate",
		Perm:  [Orientations]int{1, 5, 6, 2, 0, 4, 7, 3},
		Remap: func(n, x, y int) (int, int) { return n - 1 - y, x },
	}
)

// Apply transforms the board in place. The border ring is untouched; every
// interior tile moves with the motion and each placed piece hands its cell
// to the slot carrying its transformed orientation.
func (b *Board) Apply(t Transform) {
	s := b.Scene
	n := s.Size

	old := append([]Tile(nil), s.Tilemap...)
	for y := 1; y < n-1; y++ {
		for x := 1; x < n-1; x++ {
			nx, ny := t.Remap(n, x, y)
			s.Tilemap[s.Index(nx, ny)] = old[s.Index(x, y)]
		}
	}

	pos := b.Pieces.Positions()
	for k, cell := range pos {
		dst := t.Perm[k%Orientations] + k - k%Orientations
		if cell == Unplaced {
			b.Pieces[dst].Cell = Unplaced
			continue
		}
		x, y := s.XY(cell)
		nx, ny := t.Remap(n, x, y)
		b.Pieces[dst].Cell = s.Index(nx, ny)
	}

	b.UpdateClipping()
}

// MapCell returns where cell lands under t on a board of side n.
func (t Transform) MapCell(n, cell int) int {
	nx, ny := t.Remap(n, cell%n, cell/n)
	return ny*n + nx
}
