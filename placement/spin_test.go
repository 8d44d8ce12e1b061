package placement

import (
	"testing"

	"github.com/shardline/stackcore/board"
)

func TestClassifyTSpinBelowThreeCornersIsNone(t *testing.T) {
	pf := board.NewPlayfield()
	cmap := board.BuildCornerMap(pf)
	none, mini, full := classifyTSpin(cmap, board.North, 4, uint64(1)<<5, true)
	if none != uint64(1)<<5 || mini != 0 || full != 0 {
		t.Errorf("open board should classify as none spin, got none=%x mini=%x full=%x", none, mini, full)
	}
}

func TestClassifyTSpinBothFrontCornersIsFull(t *testing.T) {
	pf := board.NewPlayfield()
	// Occupy all four diagonal neighbours of pivot (4, 1): walls aren't
	// involved, so fill the actual cells.
	pf.Set(3, 2, true)
	pf.Set(5, 2, true)
	pf.Set(3, 0, true)
	pf.Set(5, 0, true)
	cmap := board.BuildCornerMap(pf)
	bit := uint64(1) << 1
	none, mini, full := classifyTSpin(cmap, board.North, 4, bit, false)
	if full != bit || none != 0 || mini != 0 {
		t.Errorf("four occupied corners with both front corners filled should be full spin, got none=%x mini=%x full=%x", none, mini, full)
	}
}

func TestClassifyTSpinThreeCornersNoKickIsNone(t *testing.T) {
	pf := board.NewPlayfield()
	// Occupy SE, SW, NW but not NE: three corners, front pair (NW, NE)
	// for North is not fully occupied.
	pf.Set(3, 2, true) // NW
	pf.Set(3, 0, true) // SW
	pf.Set(5, 0, true) // SE
	cmap := board.BuildCornerMap(pf)
	bit := uint64(1) << 1
	none, mini, full := classifyTSpin(cmap, board.North, 4, bit, false)
	if none != bit || mini != 0 || full != 0 {
		t.Errorf("three corners without a kick should be none spin, got none=%x mini=%x full=%x", none, mini, full)
	}
}

func TestClassifyTSpinThreeCornersWithKickIsMini(t *testing.T) {
	pf := board.NewPlayfield()
	pf.Set(3, 2, true) // NW
	pf.Set(3, 0, true) // SW
	pf.Set(5, 0, true) // SE
	cmap := board.BuildCornerMap(pf)
	bit := uint64(1) << 1
	none, mini, full := classifyTSpin(cmap, board.North, 4, bit, true)
	if mini != bit || none != 0 || full != 0 {
		t.Errorf("three corners via a non-zero kick should be mini spin, got none=%x mini=%x full=%x", none, mini, full)
	}
}

func TestImmobileSpinWallsCountAsOccupied(t *testing.T) {
	pf := board.NewPlayfield()
	cm := board.BuildCollisionMap(pf, board.O)
	// Column -1 and column 1 around pivot x=0 are the left wall and an
	// open cell respectively, so the O piece at column 0 is not immobile.
	if immobileSpin(cm, board.North, 0, 0) {
		t.Errorf("O piece at the wall with open space on the other side should not be immobile")
	}
}
