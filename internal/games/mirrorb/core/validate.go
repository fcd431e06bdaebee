package core

// inward is the source each border side must carry.
func (s *Scene) inward(idx int) Tile {
	x, y := s.XY(idx)
	switch {
	case x == 0:
		return SourceR
	case x == s.Size-1:
		return SourceL
	case y == 0:
		return SourceD
	default:
		return SourceU
	}
}

// Validate checks the structural rules a board must satisfy between
// transitions. It returns the first violation found.
func (b *Board) Validate() error {
	s := b.Scene
	n := s.Size * s.Size
	if len(s.Tilemap) != n || len(s.Clipping) != n || len(s.Beams) != n || len(s.Reflectors) != n {
		return violation("validate", "layer sizes differ from %d", n)
	}

	orbs := 0
	for i, t := range s.Tilemap {
		switch {
		case s.IsCorner(i):
			if t != Empty {
				return violation("validate", "corner %d holds %s", i, t)
			}
		case s.IsBorder(i):
			if t != Empty && t != s.inward(i) {
				return violation("validate", "border cell %d holds %s", i, t)
			}
		default:
			if !IsFloor(t) && t != BlockTile && t != Orb {
				return violation("validate", "interior cell %d holds %s", i, t)
			}
		}
		if t == Orb {
			orbs++
		}
	}
	if orbs != s.NumGoals {
		return violation("validate", "%d orbs on board, %d goals", orbs, s.NumGoals)
	}

	seen := make(map[int]int)
	for k, p := range b.Pieces {
		if !p.Placed() {
			continue
		}
		if k >= b.Slots() {
			return violation("validate", "piece %d outside inventory of %d is placed", k, b.Slots())
		}
		if !b.CanHold(p.Cell) {
			return violation("validate", "piece %d sits on cell %d which is not floor", k, p.Cell)
		}
		if other, ok := seen[p.Cell]; ok {
			return violation("validate", "pieces %d and %d share cell %d", other, k, p.Cell)
		}
		seen[p.Cell] = k
	}

	want := Clipping(s.Tilemap, b.Pieces[:])
	for i := range want {
		if want[i] != s.Clipping[i] {
			return violation("validate", "clipping at %d is %s, expected %s", i, s.Clipping[i], want[i])
		}
	}
	return nil
}
