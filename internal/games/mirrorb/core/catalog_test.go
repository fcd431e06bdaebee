package core_test

import (
	"testing"

	"github.com/vovakirdan/mirrorb/internal/games/mirrorb/core"
)

func TestNewCatalogGroupsConsecutive(t *testing.T) {
	c := catalogOf(
		openBlock(5, 8, xy{2, 2}),
		openBlock(5, 8, xy{1, 1}),
		openBlock(6, 8, xy{2, 2}),
		openBlock(5, 8, xy{3, 3}),
	)
	want := []int{2, 1, 1}
	if c.Len() != len(want) {
		t.Fatalf("Len() = %d, expected %d", c.Len(), len(want))
	}
	for i, n := range want {
		if got := len(c.Pool(i + 1)); got != n {
			t.Errorf("Pool(%d) has %d options, expected %d", i+1, got, n)
		}
	}
	if c.Pool(0) != nil || c.Pool(4) != nil {
		t.Error("Pool() out of range should be nil")
	}
}

func TestCatalogSummary(t *testing.T) {
	got := progression().Summary("v0.9.0")
	want := "mirr/orb v0.9.0, 4 levels, 4 maps"
	if got != want {
		t.Errorf("Summary() = %q, expected %q", got, want)
	}
}

func TestCatalogFinalLevel(t *testing.T) {
	if got := progression().FinalLevel(); got != 4 {
		t.Errorf("FinalLevel() = %d, expected 4", got)
	}
	two := catalogOf(openBlock(5, 8, xy{2, 2}), openBlock(6, 8, xy{2, 2}), openBlock(6, 8, xy{3, 3}))
	if got := two.FinalLevel(); got != 3 {
		t.Errorf("FinalLevel() = %d, expected 3", got)
	}
	if got := core.NewCatalog(nil).FinalLevel(); got != 0 {
		t.Errorf("empty FinalLevel() = %d, expected 0", got)
	}
}

func TestDisplayedLevel(t *testing.T) {
	tests := []struct {
		level, sub, want int
	}{
		{1, 0, 1},
		{2, 0, 2},
		{2, 1, 3},
		{5, 0, 8},
		{5, 1, 9},
	}
	for _, tt := range tests {
		if got := core.DisplayedLevel(tt.level, tt.sub); got != tt.want {
			t.Errorf("DisplayedLevel(%d, %d) = %d, expected %d", tt.level, tt.sub, got, tt.want)
		}
		if l, s := core.LevelFor(tt.want); l != tt.level || s != tt.sub {
			t.Errorf("LevelFor(%d) = %d, %d, expected %d, %d", tt.want, l, s, tt.level, tt.sub)
		}
	}
}

func TestTileClasses(t *testing.T) {
	if core.StopForSource(core.SourceL) != core.BeamStopL {
		t.Errorf("StopForSource(SourceL) = %s", core.StopForSource(core.SourceL))
	}
	if core.SourceStopOffset != 10 {
		t.Errorf("SourceStopOffset = %d, expected 10", core.SourceStopOffset)
	}
	for k, r := range core.Canonical {
		if core.Slot(r) != k || !core.IsReflector(r) {
			t.Errorf("Canonical[%d] = %s", k, r)
		}
		if !core.IsSplit(core.SplitFor(r)) {
			t.Errorf("SplitFor(%s) = %s", r, core.SplitFor(r))
		}
	}
	if core.Slot(core.Orb) != -1 {
		t.Error("Slot(Orb) should be -1")
	}
}
