package core

// Scene is one board: the static tilemap plus the derived per-cell maps.
// All slices have Size*Size entries, row-major.
type Scene struct {
	Size       int
	Tilemap    []Tile // Static board
	Clipping   []Tile // What each cell does to a beam
	Reflectors []Tile // Placed pieces, for rendering only
	Beams      []Tile // Beam overlay
	NumGoals   int    // Orbs on the static board
	NumPieces  int    // Inventory size
}

// NewScene allocates an empty scene of the given side length.
func NewScene(size int) *Scene {
	n := size * size
	return &Scene{
		Size:       size,
		Tilemap:    make([]Tile, n),
		Clipping:   make([]Tile, n),
		Reflectors: make([]Tile, n),
		Beams:      make([]Tile, n),
	}
}

// BuildScene converts a decoded block into a fresh scene. rng decides which
// block markers become blocks.
func BuildScene(b Block, rng Rand) *Scene {
	s := NewScene(b.Size)
	n := s.Size

	for y := 1; y < n-1; y++ {
		for x := 1; x < n-1; x++ {
			s.Tilemap[s.Index(x, y)] = FloorEven + Tile((x+y)%2)
		}
	}

	for i, m := range b.Map {
		if m == BlockMarker && rng.Float32() < BlockChance {
			s.Tilemap[i] = BlockTile
		}
	}

	s.Tilemap[0] = Empty
	s.Tilemap[n-1] = Empty
	s.Tilemap[(n-1)*n] = Empty
	s.Tilemap[n*n-1] = Empty

	// Edge sources face the interior
	for i := 1; i < n-1; i++ {
		s.Tilemap[s.Index(0, i)] = SourceR
		s.Tilemap[s.Index(n-1, i)] = SourceL
		s.Tilemap[s.Index(i, 0)] = SourceD
		s.Tilemap[s.Index(i, n-1)] = SourceU
	}

	for i, m := range b.Map {
		if m == OrbMarker {
			s.Tilemap[i] = Orb
			s.NumGoals++
		}
	}

	s.Clipping = Clipping(s.Tilemap, nil)
	s.NumPieces = b.Pieces
	return s
}

// Index converts interior-agnostic coordinates to a cell index.
func (s *Scene) Index(x, y int) int {
	return y*s.Size + x
}

// XY converts a cell index to coordinates.
func (s *Scene) XY(idx int) (x, y int) {
	return idx % s.Size, idx / s.Size
}

// InBounds reports whether idx addresses a cell of this scene.
func (s *Scene) InBounds(idx int) bool {
	return idx >= 0 && idx < s.Size*s.Size
}

// IsBorder reports whether idx lies on the outer ring.
func (s *Scene) IsBorder(idx int) bool {
	x, y := s.XY(idx)
	return x == 0 || y == 0 || x == s.Size-1 || y == s.Size-1
}

// IsInterior reports whether idx lies strictly inside the border.
func (s *Scene) IsInterior(idx int) bool {
	return s.InBounds(idx) && !s.IsBorder(idx)
}

// IsCorner reports whether idx is one of the four corners.
func (s *Scene) IsCorner(idx int) bool {
	x, y := s.XY(idx)
	return (x == 0 || x == s.Size-1) && (y == 0 || y == s.Size-1)
}

// CountTiles returns how many tilemap cells hold t.
func (s *Scene) CountTiles(t Tile) int {
	n := 0
	for _, c := range s.Tilemap {
		if c == t {
			n++
		}
	}
	return n
}

// ClearBeams zeroes the beam overlay in place.
func (s *Scene) ClearBeams() {
	clear(s.Beams)
}

// Clone returns a deep copy.
func (s *Scene) Clone() *Scene {
	c := *s
	c.Tilemap = append([]Tile(nil), s.Tilemap...)
	c.Clipping = append([]Tile(nil), s.Clipping...)
	c.Reflectors = append([]Tile(nil), s.Reflectors...)
	c.Beams = append([]Tile(nil), s.Beams...)
	return &c
}

// Clipping derives the clipping map from a tilemap and the placed pieces.
// It is a pure function: the beam overlay never feeds into it.
func Clipping(tilemap []Tile, placed []Piece) []Tile {
	clip := make([]Tile, len(tilemap))
	for i, t := range tilemap {
		switch {
		case IsSource(t):
			clip[i] = ClipSource
		case t == Empty, t == BlockTile:
			clip[i] = BlockTile
		case t == Orb:
			clip[i] = Orb
		}
	}
	for _, p := range placed {
		if p.Placed() {
			clip[p.Cell] = p.Tile
		}
	}
	return clip
}
