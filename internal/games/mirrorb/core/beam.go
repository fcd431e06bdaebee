package core

// Beam states that carry light into the cell below, above, right or left of
// them respectively.
var (
	carriesDown  = tileSet(BeamV, BeamSplitX, BeamSplitTL, BeamSplitTR, BeamSplitL, BeamSplitR)
	carriesUp    = tileSet(BeamV, BeamSplitX, BeamSplitBL, BeamSplitBR, BeamSplitL, BeamSplitR)
	carriesRight = tileSet(BeamH, BeamSplitX, BeamSplitTL, BeamSplitBL, BeamSplitU, BeamSplitD)
	carriesLeft  = tileSet(BeamH, BeamSplitX, BeamSplitTR, BeamSplitBR, BeamSplitU, BeamSplitD)

	turnsHorizontalFromLeft  = tileSet(BeamSplitBL, BeamSplitTL, BeamSplitU, BeamSplitD)
	turnsHorizontalFromRight = tileSet(BeamSplitBR, BeamSplitTR, BeamSplitU, BeamSplitD)
	turnsVerticalFromBelow   = tileSet(BeamSplitBL, BeamSplitBR, BeamSplitL, BeamSplitR)
	turnsVerticalFromAbove   = tileSet(BeamSplitTL, BeamSplitTR, BeamSplitL, BeamSplitR)
)

type tiles map[Tile]bool

func tileSet(ts ...Tile) tiles {
	m := make(tiles, len(ts))
	for _, t := range ts {
		m[t] = true
	}
	return m
}

// incoming records which sides of a cell currently receive light.
type incoming struct {
	above, below, left, right bool
}

func (in incoming) any() bool {
	return in.above || in.below || in.left || in.right
}

// Arm clears the overlay and seeds the emitter cell with its stop code.
func (s *Scene) Arm(emitter int) {
	s.ClearBeams()
	if s.InBounds(emitter) && IsSource(s.Tilemap[emitter]) {
		s.Beams[emitter] = StopForSource(s.Tilemap[emitter])
	}
}

// StepBeam performs one propagation change: it scans interior cells in
// row-major order and applies the first upgrade or new beam it finds.
// It reports whether anything changed.
func (s *Scene) StepBeam(emitter int) bool {
	n := s.Size
	for y := 1; y < n-1; y++ {
		for x := 1; x < n-1; x++ {
			i := s.Index(x, y)
			if next := s.nextBeam(i, emitter); next != s.Beams[i] {
				s.Beams[i] = next
				return true
			}
		}
	}
	return false
}

// Propagate runs StepBeam to its fixed point and returns the number of
// changes made.
func (s *Scene) Propagate(emitter int) int {
	steps := 0
	for s.StepBeam(emitter) {
		steps++
	}
	return steps
}

// ActiveOrbs counts orbs currently lit by the beam.
func (s *Scene) ActiveOrbs() int {
	n := 0
	for _, b := range s.Beams {
		if b == OrbActive {
			n++
		}
	}
	return n
}

// Lit reports whether the overlay holds anything at cell.
func (s *Scene) Lit(cell int) bool {
	return s.InBounds(cell) && s.Beams[cell] != Empty
}

func (s *Scene) incoming(i, emitter int) incoming {
	n := s.Size
	up, down, left, right := i-n, i+n, i-1, i+1
	return incoming{
		above: carriesDown[s.Beams[up]] || up == emitter,
		below: carriesUp[s.Beams[down]] || down == emitter,
		left:  carriesRight[s.Beams[left]] || left == emitter,
		right: carriesLeft[s.Beams[right]] || right == emitter,
	}
}

// nextBeam returns the overlay value cell i should hold given its
// neighbours. Cells already lit only ever upgrade straight beams to a
// crossing.
func (s *Scene) nextBeam(i, emitter int) Tile {
	cur := s.Beams[i]
	in := s.incoming(i, emitter)

	switch cur {
	case Empty:
	case BeamH:
		if in.above || in.below {
			return BeamSplitX
		}
		return cur
	case BeamV:
		if in.left || in.right {
			return BeamSplitX
		}
		return cur
	default:
		return cur
	}

	n := s.Size
	up, down, left, right := s.Beams[i-n], s.Beams[i+n], s.Beams[i-1], s.Beams[i+1]

	switch s.Clipping[i] {
	case ClipNone:
		// Later rules win over earlier ones.
		next := Empty
		if i-n == emitter || i+n == emitter {
			next = BeamV
		}
		if i-1 == emitter || i+1 == emitter {
			next = BeamH
		}
		if isVertical(up) || isVertical(down) {
			next = BeamV
		}
		if isHorizontal(left) || isHorizontal(right) {
			next = BeamH
		}
		if turnsHorizontalFromLeft[left] || turnsHorizontalFromRight[right] {
			next = BeamH
		}
		if turnsVerticalFromBelow[down] || turnsVerticalFromAbove[up] {
			next = BeamV
		}
		return next
	case BlockTile:
		next := Empty
		if in.above {
			next = BeamStopU
		}
		if in.below {
			next = BeamStopD
		}
		if in.left {
			next = BeamStopL
		}
		if in.right {
			next = BeamStopR
		}
		return next
	case Orb:
		if in.any() {
			return OrbActive
		}
	case ReflectorBL:
		if in.above || in.right {
			return BeamSplitBL
		}
	case ReflectorBR:
		if in.above || in.left {
			return BeamSplitBR
		}
	case ReflectorTL:
		if in.below || in.right {
			return BeamSplitTL
		}
	case ReflectorTR:
		if in.below || in.left {
			return BeamSplitTR
		}
	case ReflectorD:
		if in.above {
			return BeamSplitD
		}
	case ReflectorL:
		if in.right {
			return BeamSplitL
		}
	case ReflectorU:
		if in.below {
			return BeamSplitU
		}
	case ReflectorR:
		if in.left {
			return BeamSplitR
		}
	}
	return Empty
}

func isVertical(t Tile) bool {
	return t == BeamV || t == BeamSplitX
}

func isHorizontal(t Tile) bool {
	return t == BeamH || t == BeamSplitX
}
