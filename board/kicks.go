package board

// Transition identifies a rotation change.
type Transition struct {
	From, To Rotation
}

// kickOffset is a single wall/floor-kick attempt. The basic no-offset
// attempt (0, 0) is always first in a kick list; see Open Questions in
// DESIGN.md for the 180-kick table choice.
type kickOffset = Offset

// jlstzKicks holds the standard SRS wall-kick table shared by J, L, S, T, Z
// for the four 90-degree transitions plus the SRS+ 180-degree transitions.
var jlstzKicks = map[Transition][]kickOffset{
	{North, East}: {{0, 0}, {-1, 0}, {-1, 1}, {0, -2}, {-1, -2}},
	{East, North}: {{0, 0}, {1, 0}, {1, -1}, {0, 2}, {1, 2}},
	{East, South}: {{0, 0}, {1, 0}, {1, -1}, {0, 2}, {1, 2}},
	{South, East}: {{0, 0}, {-1, 0}, {-1, 1}, {0, -2}, {-1, -2}},
	{South, West}: {{0, 0}, {1, 0}, {1, 1}, {0, -2}, {1, -2}},
	{West, South}: {{0, 0}, {-1, 0}, {-1, -1}, {0, 2}, {-1, 2}},
	{West, North}: {{0, 0}, {-1, 0}, {-1, -1}, {0, 2}, {-1, 2}},
	{North, West}: {{0, 0}, {1, 0}, {1, 1}, {0, -2}, {1, -2}},

	// SRS+ 180-degree kicks: a single shared six-entry table for all of
	// J, L, S, T, Z.
	{North, South}: {{0, 0}, {0, 1}, {1, 1}, {-1, 1}, {1, 0}, {-1, 0}},
	{South, North}: {{0, 0}, {0, 1}, {1, 1}, {-1, 1}, {1, 0}, {-1, 0}},
	{East, West}:   {{0, 0}, {1, 0}, {1, 2}, {1, -1}, {0, 2}, {0, -1}},
	{West, East}:   {{0, 0}, {-1, 0}, {-1, 2}, {-1, -1}, {0, 2}, {0, -1}},
}

// iKicks holds the I-piece's distinct wall-kick table for 90-degree
// transitions, plus the six-entry 180-degree form (see DESIGN.md: two
// historical forms -- five-entry and six-entry -- exist for I's 180 kick;
// this module picks the six-entry form).
var iKicks = map[Transition][]kickOffset{
	{North, East}: {{0, 0}, {-2, 0}, {1, 0}, {-2, -1}, {1, 2}},
	{East, North}: {{0, 0}, {2, 0}, {-1, 0}, {2, 1}, {-1, -2}},
	{East, South}: {{0, 0}, {-1, 0}, {2, 0}, {-1, 2}, {2, -1}},
	{South, East}: {{0, 0}, {1, 0}, {-2, 0}, {1, -2}, {-2, 1}},
	{South, West}: {{0, 0}, {2, 0}, {-1, 0}, {2, 1}, {-1, -2}},
	{West, South}: {{0, 0}, {-2, 0}, {1, 0}, {-2, -1}, {1, 2}},
	{West, North}: {{0, 0}, {1, 0}, {-2, 0}, {1, -2}, {-2, 1}},
	{North, West}: {{0, 0}, {-1, 0}, {2, 0}, {-1, 2}, {2, -1}},

	{North, South}: {{0, 0}, {0, 1}, {0, 2}, {0, -1}, {1, 0}, {-1, 0}},
	{South, North}: {{0, 0}, {0, -1}, {0, -2}, {0, 1}, {-1, 0}, {1, 0}},
	{East, West}:   {{0, 0}, {1, 0}, {2, 0}, {-1, 0}, {0, 1}, {0, -1}},
	{West, East}:   {{0, 0}, {-1, 0}, {-2, 0}, {1, 0}, {0, 1}, {0, -1}},
}

// oKicks is empty: rotation is a no-op for O placement purposes, but the
// transition is still tracked for state (hold/queue bookkeeping).
var oKicks = map[Transition][]kickOffset{}

// Kicks returns the ordered kick list for (piece, from, to). The first
// entry of a non-empty list is always (0, 0). O pieces get an empty
// slice, and the placement engine propagates no rotation for them.
func Kicks(p Piece, from, to Rotation) []kickOffset {
	switch p {
	case O:
		return oKicks[Transition{from, to}]
	case I:
		return iKicks[Transition{from, to}]
	default:
		return jlstzKicks[Transition{from, to}]
	}
}

// Transitions lists the three rotation changes the placement engine
// propagates from any given orientation: clockwise, counter-clockwise and
// the 180-degree flip.
func Transitions(from Rotation) []Transition {
	return []Transition{
		{from, from.CW()},
		{from, from.CCW()},
		{from, from.Flip()},
	}
}
