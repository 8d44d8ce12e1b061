package placement

import "github.com/shardline/stackcore/board"

// classifyTSpin splits a newly-reached bitboard of T-piece pivot rows at
// (toRotation, targetX) into none/mini/full spin classes using the
// three-corner rule (SPEC_FULL.md §4.6): fewer than three occupied
// corners is never a spin; three or more with both "front" corners
// occupied is always full, regardless of the kick used; three or more
// without both front corners occupied is mini when a non-zero kick
// produced it, and none when the zero-offset rotation did.
func classifyTSpin(cmap *board.CornerMap, toRotation board.Rotation, targetX int, bits uint64, usedNonZeroKick bool) (none, mini, full uint64) {
	occ3 := cmap.Occ3(targetX) & bits
	below3 := bits &^ occ3

	frontBoth := cmap.FrontBoth(toRotation, targetX) & occ3
	full = frontBoth
	ambiguous := occ3 &^ frontBoth

	if usedNonZeroKick {
		mini = ambiguous
	} else {
		none = ambiguous
	}
	none |= below3
	return none, mini, full
}

// immobileSpin reports whether a non-T piece locked at (r, x, y) cannot
// slide left or right without colliding -- SPEC_FULL.md §4.6's
// immobile-spin rule for S, Z, I, O, J, L. Downward immobility is
// guaranteed by construction: a bit only reaches the lock set once
// gravity's fixed point says it cannot fall further.
func immobileSpin(cm *board.CollisionMap, r board.Rotation, x, y int) bool {
	leftBlocked := columnBlocked(cm, r, x-1, y)
	rightBlocked := columnBlocked(cm, r, x+1, y)
	return leftBlocked && rightBlocked
}

func columnBlocked(cm *board.CollisionMap, r board.Rotation, x, y int) bool {
	if x < board.ColumnLow || x > board.ColumnHigh {
		return true
	}
	return cm.At(r, x)>>uint(y)&1 != 0
}
