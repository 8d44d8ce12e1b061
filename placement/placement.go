// Package placement implements the flood-fill placement engine: given a
// playfield and a piece, it enumerates every reachable final resting
// position (the "placement set"), tagging T-spin and immobile-spin
// classifications, and the apply/unapply machinery search code drives to
// walk a branch and back out again. Grounded on the teacher's
// engine/position.go GenerateMoves/DoMove/UndoMove trio: a single-piece
// bitboard reachability sweep takes the place of pseudo-legal move
// generation, and a snapshot-based undo record takes the place of the
// incremental DoMove/UndoMove state stack.
package placement

import "github.com/shardline/stackcore/board"

// Placement is one final resting position for a piece: its rotation, the
// pivot coordinates, and how it was achieved for scoring purposes.
type Placement struct {
	Piece    board.Piece
	Rotation board.Rotation
	X, Y     int
	Spin     board.SpinClass
}

func (p Placement) String() string {
	return p.Piece.String() + " " + p.Rotation.String()
}
