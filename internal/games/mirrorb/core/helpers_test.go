package core_test

import (
	"bytes"
	"testing"

	"github.com/vovakirdan/mirrorb/internal/games/mirrorb/core"
)

// stubRand returns fixed values so scenes build without blocks and load
// without random transforms.
type stubRand struct {
	f float32
	n int
}

func (r stubRand) Float32() float32 { return r.f }
func (r stubRand) Intn(n int) int   { return r.n % n }

type xy struct{ x, y int }

func openBlock(n, pieces int, orbs ...xy) core.Block {
	m := bytes.Repeat([]byte{core.FloorMarker}, n*n)
	for _, o := range orbs {
		m[o.y*n+o.x] = core.OrbMarker
	}
	return core.Block{Pieces: pieces, Size: n, Orbs: len(orbs), Map: m}
}

func openBoard(t *testing.T, n int, orbs ...xy) *core.Board {
	t.Helper()
	s := core.BuildScene(openBlock(n, 8, orbs...), stubRand{f: 1})
	b := core.NewBoard(s)
	if err := b.Validate(); err != nil {
		t.Fatalf("Validate() = %v", err)
	}
	return b
}

func place(t *testing.T, b *core.Board, tile core.Tile, x, y int) int {
	t.Helper()
	slot := core.Slot(tile)
	cell := b.Scene.Index(x, y)
	if err := b.Place(slot, cell); err != nil {
		t.Fatalf("Place(%s, %d) = %v", tile, cell, err)
	}
	b.UpdateClipping()
	return slot
}

func beamAt(b *core.Board, x, y int) core.Tile {
	return b.Scene.Beams[b.Scene.Index(x, y)]
}
