// Package core provides the board model and rules of the mirr/orb puzzle.
// This package is UI-agnostic and deterministic given its Rand.
package core

import "strconv"

// Tile is a cell code. The same code space serves the static tilemap, the
// placed-piece overlay, the clipping map, and the beam overlay.
type Tile uint16

const (
	Empty Tile = 0
	Grid  Tile = 2

	FloorEven Tile = 3
	FloorOdd  Tile = 4
	BlockTile Tile = 5
	Orb       Tile = 6
	OrbActive Tile = 7

	// Reflectors double as inventory piece codes.
	ReflectorTL Tile = 17
	ReflectorTR Tile = 18
	ReflectorBL Tile = 19
	ReflectorBR Tile = 20
	ReflectorD  Tile = 21
	ReflectorL  Tile = 22
	ReflectorU  Tile = 23
	ReflectorR  Tile = 24

	// Source codes are contiguous; the letter is the direction the source fires.
	SourceU Tile = 33
	SourceD Tile = 34
	SourceL Tile = 35
	SourceR Tile = 36

	BeamH     Tile = 41
	BeamV     Tile = 42
	BeamStopU Tile = 43
	BeamStopD Tile = 44
	BeamStopL Tile = 45
	BeamStopR Tile = 46

	BeamSplitX  Tile = 47
	BeamSplitTL Tile = 49
	BeamSplitTR Tile = 50
	BeamSplitBL Tile = 51
	BeamSplitBR Tile = 52
	BeamSplitD  Tile = 53
	BeamSplitL  Tile = 54
	BeamSplitU  Tile = 55
	BeamSplitR  Tile = 56

	Burst Tile = 57
)

// Clipping classes that are not tile codes. BlockTile, Orb and the reflector
// codes are used as clipping classes directly.
const (
	ClipNone   Tile = 0
	ClipSource Tile = 1
)

// SourceStopOffset maps a source code to the stop code its own cell shows
// while it is the emitter: BeamStopU + (src - SourceU).
const SourceStopOffset = BeamStopU - SourceU

const (
	// MaxSize is the largest supported side length.
	MaxSize = 15
	// MinSize is the smallest side length that still has an interior.
	MinSize = 3
	// MaxPieces is the inventory capacity.
	MaxPieces = 24
	// Orientations is the number of distinct reflector orientations.
	Orientations = 8
	// BlockChance is the probability that a block marker becomes a BlockTile.
	BlockChance = 0.3
)

// Canonical inventory order of one orientation set.
var Canonical = [Orientations]Tile{
	ReflectorTL, ReflectorTR, ReflectorU, ReflectorL,
	ReflectorBL, ReflectorBR, ReflectorR, ReflectorD,
}

// IsSource reports whether t is one of the four edge sources.
func IsSource(t Tile) bool {
	return t >= SourceU && t <= SourceR
}

// IsReflector reports whether t is one of the eight reflector orientations.
func IsReflector(t Tile) bool {
	return t >= ReflectorTL && t <= ReflectorR
}

// IsFloor reports whether t is a plain floor cell a piece may occupy.
func IsFloor(t Tile) bool {
	return t == FloorEven || t == FloorOdd
}

// IsBeam reports whether t belongs to the beam overlay alphabet.
func IsBeam(t Tile) bool {
	return (t >= BeamH && t <= BeamSplitX) || IsSplit(t)
}

// IsSplit reports whether t is a split code, crossover included.
func IsSplit(t Tile) bool {
	return t == BeamSplitX || (t >= BeamSplitTL && t <= BeamSplitR)
}

// IsStop reports whether t is one of the four stop codes.
func IsStop(t Tile) bool {
	return t >= BeamStopU && t <= BeamStopR
}

// StopForSource returns the stop code an emitter paints on its own cell.
func StopForSource(src Tile) Tile {
	return src + SourceStopOffset
}

// SplitFor returns the split code a reflector emits once lit.
func SplitFor(reflector Tile) Tile {
	switch reflector {
	case ReflectorTL:
		return BeamSplitTL
	case ReflectorTR:
		return BeamSplitTR
	case ReflectorBL:
		return BeamSplitBL
	case ReflectorBR:
		return BeamSplitBR
	case ReflectorD:
		return BeamSplitD
	case ReflectorL:
		return BeamSplitL
	case ReflectorU:
		return BeamSplitU
	case ReflectorR:
		return BeamSplitR
	default:
		return Empty
	}
}

// Slot returns the canonical orientation slot (0..7) of a reflector code,
// or -1 for anything else.
func Slot(reflector Tile) int {
	for i, t := range Canonical {
		if t == reflector {
			return i
		}
	}
	return -1
}

// String returns a short name for debugging and test output.
func (t Tile) String() string {
	if name, ok := tileNames[t]; ok {
		return name
	}
	return "Tile(" + strconv.Itoa(int(t)) + ")"
}

var tileNames = map[Tile]string{
	Empty: "Empty", Grid: "Grid", FloorEven: "FloorEven", FloorOdd: "FloorOdd",
	BlockTile: "Block", Orb: "Orb", OrbActive: "OrbActive",
	ReflectorTL: "ReflectorTL", ReflectorTR: "ReflectorTR", ReflectorBL: "ReflectorBL", ReflectorBR: "ReflectorBR",
	ReflectorD: "ReflectorD", ReflectorL: "ReflectorL", ReflectorU: "ReflectorU", ReflectorR: "ReflectorR",
	SourceU: "SourceU", SourceD: "SourceD", SourceL: "SourceL", SourceR: "SourceR",
	BeamH: "BeamH", BeamV: "BeamV",
	BeamStopU: "BeamStopU", BeamStopD: "BeamStopD", BeamStopL: "BeamStopL", BeamStopR: "BeamStopR",
	BeamSplitX: "BeamSplitX", BeamSplitTL: "BeamSplitTL", BeamSplitTR: "BeamSplitTR",
	BeamSplitBL: "BeamSplitBL", BeamSplitBR: "BeamSplitBR", BeamSplitD: "BeamSplitD",
	BeamSplitL: "BeamSplitL", BeamSplitU: "BeamSplitU", BeamSplitR: "BeamSplitR",
	Burst: "Burst",
}
