package placement

import (
	"math/bits"

	"github.com/shardline/stackcore/board"
)

const (
	rotations  = board.RotationArraySize
	columns    = board.ColumnSpan
	fullRange  = board.Rows + board.ScratchRows
	rangeMask  = uint64(1)<<fullRange - 1
	frontierN  = rotations * columns
)

// grid is a per-(rotation, pivot-column) bitboard table, indexed the same
// way as board.CollisionMap: column index = x - board.ColumnLow.
type grid [rotations][columns]uint64

// engine holds the working state of one flood-fill sweep: the frontier
// still to be expanded (toSearch), the set of bits ever enqueued
// (searched, so no position is processed twice), and the accumulated
// result sets. For T pieces the result is split into three spin-class
// layers; for every other piece a single moveSet suffices and the spin
// class is computed once, cheaply, at extraction time.
type engine struct {
	piece  board.Piece
	cm     *board.CollisionMap
	corner *board.CornerMap // nil for non-T pieces

	toSearch grid
	searched grid
	pending  uint64 // bit (r*columns+ci) set while toSearch[r][ci] != 0

	moveSet grid // non-T: every locked bit

	// T-piece only: spin-class layers, and the frontier tags that track
	// which layer each in-flight bit belongs to.
	noneSet, miniSet, fullSet grid
	noneTag, miniTag, fullTag grid
}

func newEngine(pf *board.Playfield, piece board.Piece) *engine {
	e := &engine{
		piece: piece,
		cm:    board.BuildCollisionMap(pf, piece),
	}
	if piece == board.T {
		e.corner = board.BuildCornerMap(pf)
	}
	return e
}

func idx(r board.Rotation, ci int) int { return int(r)*columns + ci }

func colIndex(x int) int { return x - board.ColumnLow }

// run executes the flood fill from the spawn position to a fixed point.
func (e *engine) run() {
	spawnX := board.SpawnX(e.piece)
	spawnY := board.SpawnY(e.piece)
	spawnCi := colIndex(spawnX)

	if e.cm.At(board.North, spawnX)>>uint(spawnY)&1 != 0 {
		return // blocked at spawn: no placements (top-out).
	}

	seed := uint64(1) << uint(spawnY)
	e.toSearch[board.North][spawnCi] = seed
	e.searched[board.North][spawnCi] = seed
	e.pending |= 1 << uint(idx(board.North, spawnCi))
	if e.piece == board.T {
		e.noneTag[board.North][spawnCi] = seed
	}

	for e.pending != 0 {
		bit := bits.TrailingZeros64(e.pending)
		e.pending &^= uint64(1) << uint(bit)
		r := board.Rotation(bit / columns)
		ci := bit % columns

		current := e.toSearch[r][ci]
		e.toSearch[r][ci] = 0
		if current == 0 {
			continue
		}
		x := ci + board.ColumnLow
		blocked := e.cm.At(r, x)

		var noneCur, miniCur, fullCur uint64
		if e.piece == board.T {
			noneCur, miniCur, fullCur = e.noneTag[r][ci], e.miniTag[r][ci], e.fullTag[r][ci]
			e.noneTag[r][ci], e.miniTag[r][ci], e.fullTag[r][ci] = 0, 0, 0
		}

		// Gravity closure: repeatedly fall one row while the row below is
		// free, until no new row is reached. The spin-class tags fall in
		// lockstep, restricted to stay a subset of current.
		for {
			next := current | ((current >> 1) &^ blocked)
			if e.piece == board.T {
				noneCur = (noneCur | ((noneCur >> 1) &^ blocked)) & next
				miniCur = (miniCur | ((miniCur >> 1) &^ blocked)) & next
				fullCur = (fullCur | ((fullCur >> 1) &^ blocked)) & next
			}
			if next == current {
				break
			}
			current = next
		}

		e.lockAndPropagate(r, ci, x, current, blocked, noneCur, miniCur, fullCur)
	}
}

func (e *engine) lockAndPropagate(r board.Rotation, ci, x int, current, blocked, noneCur, miniCur, fullCur uint64) {
	// Lock detection: a pivot row is "locked" if the row below it is
	// blocked (or it is already resting on the floor at row 0).
	lockable := current & ((blocked<<1 | 1) &^ blocked)

	if e.piece == board.T {
		e.noneSet[r][ci] |= lockable & noneCur
		e.miniSet[r][ci] |= lockable & miniCur
		e.fullSet[r][ci] |= lockable & fullCur
	} else {
		e.moveSet[r][ci] |= lockable
	}

	e.propagateLateral(r, ci, x, -1, current, noneCur, miniCur, fullCur)
	e.propagateLateral(r, ci, x, 1, current, noneCur, miniCur, fullCur)
	e.propagateRotation(r, x, current)
}

func (e *engine) propagateLateral(r board.Rotation, ci, x, dx int, current, noneCur, miniCur, fullCur uint64) {
	nx := x + dx
	if nx < board.ColumnLow || nx > board.ColumnHigh {
		return
	}
	nci := colIndex(nx)
	blocked := e.cm.At(r, nx)
	valid := current &^ blocked
	fresh := valid &^ e.searched[r][nci]
	if fresh == 0 {
		return
	}
	e.enqueue(r, nci, fresh, fresh&noneCur, fresh&miniCur, fresh&fullCur)
}

func (e *engine) propagateRotation(r board.Rotation, x int, current uint64) {
	for _, tr := range board.Transitions(r) {
		kicks := board.Kicks(e.piece, tr.From, tr.To)
		remainingSource := current
		for _, k := range kicks {
			if remainingSource == 0 {
				break
			}
			targetX := x + k.Dx
			if targetX < board.ColumnLow || targetX > board.ColumnHigh {
				continue
			}
			targetBlocked := e.cm.At(tr.To, targetX)

			shifted := shiftSigned(remainingSource, k.Dy) & rangeMask
			valid := shifted &^ targetBlocked

			used := shiftSigned(valid, -k.Dy)
			remainingSource &^= used

			if valid == 0 {
				continue
			}
			tci := colIndex(targetX)
			fresh := valid &^ e.searched[tr.To][tci]
			if fresh == 0 {
				continue
			}

			if e.piece == board.T {
				usedNonZeroKick := k != (board.Offset{})
				none, mini, full := classifyTSpin(e.corner, tr.To, targetX, fresh, usedNonZeroKick)
				e.enqueue(tr.To, tci, fresh, none, mini, full)
			} else {
				e.enqueue(tr.To, tci, fresh, 0, 0, 0)
			}
		}
	}
}

// enqueue merges fresh bits into a frontier entry, marking them searched
// and scheduling the entry for processing.
func (e *engine) enqueue(r board.Rotation, ci int, fresh, none, mini, full uint64) {
	e.searched[r][ci] |= fresh
	e.toSearch[r][ci] |= fresh
	e.pending |= 1 << uint(idx(r, ci))
	if e.piece == board.T {
		e.noneTag[r][ci] |= none
		e.miniTag[r][ci] |= mini
		e.fullTag[r][ci] |= full
	}
}

func shiftSigned(v uint64, dy int) uint64 {
	if dy >= 0 {
		if dy >= 64 {
			return 0
		}
		return v << uint(dy)
	}
	n := -dy
	if n >= 64 {
		return 0
	}
	return v >> uint(n)
}

// Generate enumerates every reachable final placement for piece on pf.
func Generate(pf *board.Playfield, piece board.Piece) []Placement {
	e := newEngine(pf, piece)
	e.run()
	return e.extract()
}

// Count returns the number of reachable final placements for piece on
// pf, without materializing them. For T pieces a single (rotation, x, y)
// lock can count once per spin class it is reachable under, matching
// Generate's expansion.
func Count(pf *board.Playfield, piece board.Piece) int {
	e := newEngine(pf, piece)
	e.run()
	if piece == board.T {
		return countCanonical(piece, e.noneSet) + countCanonical(piece, e.miniSet) + countCanonical(piece, e.fullSet)
	}
	return countCanonical(piece, e.moveSet)
}

// markCanonical folds a raw (r, x, y) lock through board.Canonicalize and
// records it in seen, keyed by (canonical rotation, canonical x, canonical
// y). It reports the canonical coordinate and whether this is the first
// time that coordinate has been seen -- a piece like I, S or Z reaches the
// same physical cell from two raw orientations (e.g. North and South), and
// only the first should survive into the result.
func markCanonical(piece board.Piece, seen *grid, r board.Rotation, x, y int) (cr board.Rotation, cx, cy int, fresh bool) {
	cr, cx, cy = board.Canonicalize(piece, r, x, y)
	cci := colIndex(cx)
	bit := uint64(1) << uint(cy)
	if seen[cr][cci]&bit != 0 {
		return cr, cx, cy, false
	}
	seen[cr][cci] |= bit
	return cr, cx, cy, true
}

// countCanonical counts the distinct canonical placements represented by
// set, collapsing symmetric raw orientations the same way extract does.
func countCanonical(piece board.Piece, set grid) int {
	var seen grid
	total := 0
	for r := 0; r < rotations; r++ {
		for ci := 0; ci < columns; ci++ {
			x := ci + board.ColumnLow
			m := set[r][ci]
			for m != 0 {
				y := bits.TrailingZeros64(m)
				m &= m - 1
				if _, _, _, fresh := markCanonical(piece, &seen, board.Rotation(r), x, y); fresh {
					total++
				}
			}
		}
	}
	return total
}

func (e *engine) extract() []Placement {
	var out []Placement
	if e.piece == board.T {
		appendSet := func(set grid, seen *grid, spin board.SpinClass) {
			for r := 0; r < rotations; r++ {
				for ci := 0; ci < columns; ci++ {
					x := ci + board.ColumnLow
					m := set[r][ci]
					for m != 0 {
						y := bits.TrailingZeros64(m)
						m &= m - 1
						cr, cx, cy, fresh := markCanonical(e.piece, seen, board.Rotation(r), x, y)
						if !fresh {
							continue
						}
						out = append(out, Placement{Piece: e.piece, Rotation: cr, X: cx, Y: cy, Spin: spin})
					}
				}
			}
		}
		var noneSeen, miniSeen, fullSeen grid
		appendSet(e.noneSet, &noneSeen, board.NoSpin)
		appendSet(e.miniSet, &miniSeen, board.MiniSpin)
		appendSet(e.fullSet, &fullSeen, board.FullSpin)
		return out
	}

	var seen grid
	for r := 0; r < rotations; r++ {
		for ci := 0; ci < columns; ci++ {
			x := ci + board.ColumnLow
			m := e.moveSet[r][ci]
			for m != 0 {
				y := bits.TrailingZeros64(m)
				m &= m - 1
				spin := board.NoSpin
				if immobileSpin(e.cm, board.Rotation(r), x, y) {
					spin = board.MiniSpin
				}
				cr, cx, cy, fresh := markCanonical(e.piece, &seen, board.Rotation(r), x, y)
				if !fresh {
					continue
				}
				out = append(out, Placement{Piece: e.piece, Rotation: cr, X: cx, Y: cy, Spin: spin})
			}
		}
	}
	return out
}
