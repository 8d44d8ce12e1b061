package attack

import (
	"testing"

	"github.com/shardline/stackcore/board"
)

func preset(t *testing.T, name string) Config {
	t.Helper()
	cfg, ok := DefaultPresets()[name]
	if !ok {
		t.Fatalf("missing preset %q", name)
	}
	return cfg
}

// TestQuadAttack covers SPEC_FULL.md §8 scenario 1.
func TestQuadAttack(t *testing.T) {
	got := CalculateAttack(4, board.NoSpin, 0, 0, preset(t, "tetra_league"), false)
	if got != 4.0 {
		t.Errorf("got %v want 4.0", got)
	}
}

// TestTSpinDouble covers scenario 2.
func TestTSpinDouble(t *testing.T) {
	got := CalculateAttack(2, board.FullSpin, 0, 0, preset(t, "tetra_league"), false)
	if got != 4.0 {
		t.Errorf("got %v want 4.0", got)
	}
}

// TestB2BBonus covers scenario 3.
func TestB2BBonus(t *testing.T) {
	got := CalculateAttack(4, board.NoSpin, 1, 0, preset(t, "tetra_league"), false)
	if got != 5.0 {
		t.Errorf("got %v want 5.0", got)
	}
}

// TestPerfectClearTetraLeague covers scenario 4.
func TestPerfectClearTetraLeague(t *testing.T) {
	got := CalculateAttack(4, board.NoSpin, 0, 0, preset(t, "tetra_league"), true)
	if got != 9.0 {
		t.Errorf("got %v want 9.0", got)
	}
}

// TestSurgeOnBreakTetraLeague covers scenario 5.
func TestSurgeOnBreakTetraLeague(t *testing.T) {
	cfg := preset(t, "tetra_league")
	tr := &Tracker{Level: 4}
	_, surge := tr.Clear(1, board.NoSpin, cfg, false)
	want := []int{2, 2, 1}
	if !equalInts(surge, want) {
		t.Errorf("got %v want %v", surge, want)
	}
	if tr.Level != 0 {
		t.Errorf("expected level reset to 0, got %d", tr.Level)
	}
}

// TestSurgeOnBreakQuickPlay covers scenario 6.
func TestSurgeOnBreakQuickPlay(t *testing.T) {
	cfg := preset(t, "quick_play")
	tr := &Tracker{Level: 4}
	_, surge := tr.Clear(1, board.NoSpin, cfg, false)
	want := []int{1, 1, 0}
	if !equalInts(surge, want) {
		t.Errorf("got %v want %v", surge, want)
	}
}

func TestTrackerQualifyingClearIncrementsLevel(t *testing.T) {
	cfg := preset(t, "tetra_league")
	tr := &Tracker{}
	tr.Clear(4, board.NoSpin, cfg, false)
	if tr.Level != 1 {
		t.Errorf("expected level 1 after a quad, got %d", tr.Level)
	}
}

func TestTrackerNoClearResetsCombo(t *testing.T) {
	tr := &Tracker{Combo: 3}
	cfg := preset(t, "tetra_league")
	tr.Clear(0, board.NoSpin, cfg, false)
	if tr.Combo != 0 {
		t.Errorf("expected combo reset to 0, got %d", tr.Combo)
	}
}

func equalInts(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
