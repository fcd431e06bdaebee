package core_test

import (
	"testing"

	"github.com/vovakirdan/mirrorb/internal/games/mirrorb/core"
)

type beamCase struct {
	x, y int
	want core.Tile
}

func checkBeams(t *testing.T, b *core.Board, cases []beamCase) {
	t.Helper()
	for _, c := range cases {
		if got := beamAt(b, c.x, c.y); got != c.want {
			t.Errorf("Beams(%d,%d) = %s, expected %s", c.x, c.y, got, c.want)
		}
	}
}

func TestBeamStraightToOrb(t *testing.T) {
	b := openBoard(t, 5, xy{3, 2})
	e := b.Scene.Index(0, 2)
	b.Scene.Arm(e)
	b.Scene.Propagate(e)

	checkBeams(t, b, []beamCase{
		{0, 2, core.BeamStopR},
		{1, 2, core.BeamH},
		{2, 2, core.BeamH},
		{3, 2, core.OrbActive},
		{4, 2, core.Empty},
		{2, 1, core.Empty},
		{2, 3, core.Empty},
	})
	if got := b.Scene.ActiveOrbs(); got != 1 {
		t.Errorf("ActiveOrbs() = %d, expected 1", got)
	}
}

func TestBeamCornerReflector(t *testing.T) {
	b := openBoard(t, 6, xy{2, 4})
	place(t, b, core.ReflectorTR, 2, 2)
	e := b.Scene.Index(0, 2)
	b.Scene.Arm(e)
	b.Scene.Propagate(e)

	checkBeams(t, b, []beamCase{
		{1, 2, core.BeamH},
		{2, 2, core.BeamSplitTR},
		{2, 3, core.BeamV},
		{2, 4, core.OrbActive},
		{3, 2, core.Empty},
		{2, 1, core.Empty},
	})
}

func TestBeamReflectorRejectsSide(t *testing.T) {
	b := openBoard(t, 6, xy{2, 4})
	place(t, b, core.ReflectorBL, 2, 2)
	e := b.Scene.Index(0, 2)
	b.Scene.Arm(e)
	b.Scene.Propagate(e)

	checkBeams(t, b, []beamCase{
		{1, 2, core.BeamH},
		{2, 2, core.Empty},
		{2, 3, core.Empty},
		{2, 4, core.Empty},
	})
}

func crossBoard(t *testing.T) *core.Board {
	t.Helper()
	b := openBoard(t, 8, xy{6, 5}, xy{4, 6})
	place(t, b, core.ReflectorR, 2, 3)
	place(t, b, core.ReflectorTL, 2, 1)
	place(t, b, core.ReflectorTR, 4, 1)
	place(t, b, core.ReflectorBL, 2, 5)
	return b
}

func TestBeamCrossing(t *testing.T) {
	b := crossBoard(t)
	e := b.Scene.Index(0, 3)
	b.Scene.Arm(e)
	b.Scene.Propagate(e)

	checkBeams(t, b, []beamCase{
		{1, 3, core.BeamH},
		{2, 3, core.BeamSplitR},
		{2, 2, core.BeamV},
		{2, 1, core.BeamSplitTL},
		{3, 1, core.BeamH},
		{4, 1, core.BeamSplitTR},
		{4, 3, core.BeamV},
		{2, 4, core.BeamV},
		{2, 5, core.BeamSplitBL},
		{3, 5, core.BeamH},
		{4, 5, core.BeamSplitX},
		{5, 5, core.BeamH},
		{6, 5, core.OrbActive},
		{4, 6, core.OrbActive},
		{3, 3, core.Empty},
	})

	crossings := 0
	for _, v := range b.Scene.Beams {
		if v == core.BeamSplitX {
			crossings++
		}
	}
	if crossings != 1 {
		t.Errorf("crossings = %d, expected 1", crossings)
	}
}

func TestBeamStopsAtBlock(t *testing.T) {
	b := openBoard(t, 5)
	s := b.Scene
	s.Tilemap[s.Index(3, 2)] = core.BlockTile
	b.UpdateClipping()

	e := s.Index(0, 2)
	s.Arm(e)
	s.Propagate(e)

	checkBeams(t, b, []beamCase{
		{2, 2, core.BeamH},
		{3, 2, core.BeamStopL},
	})

	e = s.Index(3, 0)
	s.Arm(e)
	s.Propagate(e)
	checkBeams(t, b, []beamCase{
		{3, 1, core.BeamV},
		{3, 2, core.BeamStopU},
		{3, 3, core.Empty},
	})
}

func TestBeamWallDeflector(t *testing.T) {
	b := openBoard(t, 6)
	place(t, b, core.ReflectorR, 2, 2)
	e := b.Scene.Index(0, 2)
	b.Scene.Arm(e)
	b.Scene.Propagate(e)

	checkBeams(t, b, []beamCase{
		{2, 2, core.BeamSplitR},
		{2, 1, core.BeamV},
		{2, 3, core.BeamV},
		{2, 4, core.BeamV},
		{3, 2, core.Empty},
	})
	if got := beamAt(b, 2, 5); got != core.Empty {
		t.Errorf("border source lit: %s", got)
	}
}

func TestBeamDeterministic(t *testing.T) {
	a, b := crossBoard(t), crossBoard(t)
	e := a.Scene.Index(0, 3)
	a.Scene.Arm(e)
	a.Scene.Propagate(e)
	b.Scene.Arm(e)
	for b.Scene.StepBeam(e) {
	}
	for i := range a.Scene.Beams {
		if a.Scene.Beams[i] != b.Scene.Beams[i] {
			t.Fatalf("overlay differs at %d: %s vs %s", i, a.Scene.Beams[i], b.Scene.Beams[i])
		}
	}
	if got := a.Scene.Propagate(e); got != 0 {
		t.Errorf("Propagate() at fixed point = %d changes, expected 0", got)
	}
}

var mirrored = map[core.Tile]core.Tile{
	core.BeamSplitTL: core.BeamSplitTR,
	core.BeamSplitTR: core.BeamSplitTL,
	core.BeamSplitBL: core.BeamSplitBR,
	core.BeamSplitBR: core.BeamSplitBL,
	core.BeamSplitL:  core.BeamSplitR,
	core.BeamSplitR:  core.BeamSplitL,
	core.BeamStopL:   core.BeamStopR,
	core.BeamStopR:   core.BeamStopL,
}

func TestBeamMirrorSymmetry(t *testing.T) {
	a, b := crossBoard(t), crossBoard(t)
	n := a.Scene.Size
	e := a.Scene.Index(0, 3)
	a.Scene.Arm(e)
	a.Scene.Propagate(e)

	b.Apply(core.FlipH)
	fe := core.FlipH.MapCell(n, e)
	b.Scene.Arm(fe)
	b.Scene.Propagate(fe)

	for y := 1; y < n-1; y++ {
		for x := 1; x < n-1; x++ {
			want := a.Scene.Beams[a.Scene.Index(x, y)]
			if m, ok := mirrored[want]; ok {
				want = m
			}
			if got := beamAt(b, n-1-x, y); got != want {
				t.Errorf("mirrored Beams(%d,%d) = %s, expected %s", n-1-x, y, got, want)
			}
		}
	}
}
