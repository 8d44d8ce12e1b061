package placement

import "github.com/shardline/stackcore/board"

// Apply returns a new playfield with pl locked in, plus the number of
// rows cleared. The source playfield is left untouched; callers walking
// a branch of the search tree in place should use ApplyInPlace and Undo
// instead to avoid a clone per node.
func Apply(pf *board.Playfield, pl Placement) (*board.Playfield, int) {
	next := pf.Clone()
	cleared := ApplyInPlace(next, pl)
	return next, cleared
}

// ApplyInPlace locks pl's minos into pf and clears any full rows,
// returning the number of rows cleared.
func ApplyInPlace(pf *board.Playfield, pl Placement) int {
	for _, m := range board.Minos(pl.Piece, pl.Rotation) {
		pf.Set(pl.X+m.Dx, pl.Y+m.Dy, true)
	}
	return pf.ClearLines()
}

// Undo captures enough state to reverse an ApplyInPlace call. Unlike the
// teacher's chess move stack, which undoes a move by replaying its
// inverse (restoring captured pieces, castling rights, en passant
// state), a locked tetromino plus line clears has no compact inverse --
// clearing shuffles every row above the cleared ones. A Playfield is
// only eleven words (ten columns plus the hash), so Undo snapshots the
// whole board rather than
// recording a differential patch.
type Undo struct {
	snapshot board.Playfield
}

// Snapshot captures pf's current state for a later Restore.
func Snapshot(pf *board.Playfield) Undo {
	return Undo{snapshot: *pf}
}

// Restore overwrites pf with the state captured by Snapshot.
func (u Undo) Restore(pf *board.Playfield) {
	*pf = u.snapshot
}

// ApplyUndo is the usual search idiom: snapshot, apply, and hand back the
// token needed to restore.
func ApplyUndo(pf *board.Playfield, pl Placement) (cleared int, undo Undo) {
	undo = Snapshot(pf)
	cleared = ApplyInPlace(pf, pl)
	return cleared, undo
}
