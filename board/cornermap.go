package board

// CornerMap precomputes, for every candidate pivot column, the bitboards
// needed by the three-corner T-spin rule (SPEC_FULL.md §4.6): which pivot
// rows have at least three of their four diagonal corners occupied, and
// which have both "front" corners occupied for a given rotation. Corner
// occupancy is purely geometric (diagonal neighbours of the pivot cell)
// and does not depend on the piece or its shape, only on the board and
// the candidate column -- so, like CollisionMap, it is built once per
// board and reused across rotations.
type CornerMap struct {
	nw, ne, se, sw [ColumnSpan]uint64
}

// BuildCornerMap computes the corner-occupancy bitboards for every pivot
// column in [ColumnLow, ColumnHigh].
func BuildCornerMap(pf *Playfield) *CornerMap {
	cmap := &CornerMap{}
	for x := ColumnLow; x <= ColumnHigh; x++ {
		ci := columnIndex(x)
		cmap.nw[ci] = cornerBits(pf, x, -1, +1)
		cmap.ne[ci] = cornerBits(pf, x, +1, +1)
		cmap.se[ci] = cornerBits(pf, x, +1, -1)
		cmap.sw[ci] = cornerBits(pf, x, -1, -1)
	}
	return cmap
}

// cornerBits returns, for the corner at (x+dx, y+dy) relative to every
// pivot row y, a bitboard with bit y set when that corner is "occupied":
// filled, a wall (column out of [0,9]), or the floor (row < 0). The
// ceiling (row >= 40) is never occupied, matching SPEC_FULL.md §4.6.
func cornerBits(pf *Playfield, x, dx, dy int) uint64 {
	col := x + dx
	if col < 0 || col >= Columns {
		return ^uint64(0) // wall: every pivot row sees this corner as occupied.
	}
	occupied := pf.Column(col) & stableMask
	if dy > 0 {
		// corner row = pivot row + 1: shifting right by 1 moves bit
		// (y+1) of occupied down to bit y. Ceiling overflow naturally
		// yields 0, matching "ceiling is empty".
		return occupied >> 1
	}
	// corner row = pivot row - 1: shifting left by 1 moves bit (y-1) of
	// occupied up to bit y; bit 0 (pivot row 0, corner row -1) is the
	// floor and is always occupied.
	return occupied<<1 | 1
}

// Occ3 returns the bitboard of pivot rows at column x with at least
// three of the four diagonal corners occupied. This is the OR of every
// "three out of four" conjunction, which vectorizes the popcount(corners)
// >= 3 test across an entire column in four three-way ANDs and three ORs.
func (cmap *CornerMap) Occ3(x int) uint64 {
	ci := columnIndex(x)
	nw, ne, se, sw := cmap.nw[ci], cmap.ne[ci], cmap.se[ci], cmap.sw[ci]
	return (nw & ne & se) | (nw & ne & sw) | (nw & se & sw) | (ne & se & sw)
}

// FrontBoth returns the bitboard of pivot rows at column x where both of
// rotation r's "front" corners are occupied (N: NW+NE, E: NE+SE, S:
// SE+SW, W: SW+NW).
func (cmap *CornerMap) FrontBoth(r Rotation, x int) uint64 {
	ci := columnIndex(x)
	switch r {
	case North:
		return cmap.nw[ci] & cmap.ne[ci]
	case East:
		return cmap.ne[ci] & cmap.se[ci]
	case South:
		return cmap.se[ci] & cmap.sw[ci]
	default: // West
		return cmap.sw[ci] & cmap.nw[ci]
	}
}
