package eval

import (
	"math"
	"sort"

	"github.com/shardline/stackcore/board"
	"github.com/shardline/stackcore/placement"
)

// Move is a single resolved ply: the placement played, and whether it
// was reached by swapping through hold first (SPEC_FULL.md §4.10).
type Move struct {
	Placement placement.Placement
	HoldUsed  bool
}

// State is one node of the lookahead tree: a board, the piece about to
// be played (nil once the known queue prefix runs out), the hold slot,
// the remaining known queue, and the move/score history accumulated to
// reach this node.
type State struct {
	Board   *board.Playfield
	Current *board.Piece
	Hold    *board.Piece
	Queue   []board.Piece
	Moves   []Move
	Score   float32
}

// NewState starts a lookahead tree at (board, current, hold, queue).
func NewState(pf *board.Playfield, current board.Piece, hold *board.Piece, queue []board.Piece) State {
	return State{Board: pf, Current: &current, Hold: hold, Queue: queue}
}

// swapForHold computes the (piece-to-play, new-hold, new-queue) triple a
// hold swap produces: if hold holds a piece, it is swapped in and
// current goes to hold; if hold is empty, the next queue piece is
// consumed into play and current goes to hold.
func swapForHold(s State) (play board.Piece, newHold board.Piece, newQueue []board.Piece, ok bool) {
	if s.Current == nil {
		return 0, 0, nil, false
	}
	if s.Hold != nil {
		return *s.Hold, *s.Current, s.Queue, true
	}
	if len(s.Queue) == 0 {
		return 0, 0, nil, false
	}
	return s.Queue[0], *s.Current, s.Queue[1:], true
}

// expand produces every child state reachable by playing the current
// piece directly, or by swapping through hold first and playing the
// result, per SPEC_FULL.md §4.9/§4.10.
func expand(s State, w Weights) []State {
	if s.Current == nil {
		return nil
	}
	var out []State

	add := func(piece board.Piece, holdUsed bool, resultHold *board.Piece, resultQueue []board.Piece) {
		for _, pl := range placement.Generate(s.Board, piece) {
			nb, lines := placement.Apply(s.Board, pl)
			moves := make([]Move, len(s.Moves)+1)
			copy(moves, s.Moves)
			moves[len(s.Moves)] = Move{Placement: pl, HoldUsed: holdUsed}

			var nextCurrent *board.Piece
			var nextQueue []board.Piece
			if len(resultQueue) > 0 {
				p := resultQueue[0]
				nextCurrent = &p
				nextQueue = resultQueue[1:]
			}

			out = append(out, State{
				Board:   nb,
				Current: nextCurrent,
				Hold:    resultHold,
				Queue:   nextQueue,
				Moves:   moves,
				Score:   s.Score + EvaluateAfterClear(nb, lines, w),
			})
		}
	}

	add(*s.Current, false, s.Hold, s.Queue)
	if play, newHold, newQueue, ok := swapForHold(s); ok {
		h := newHold
		add(play, true, &h, newQueue)
	}
	return out
}

// Lookahead searches up to depth plies ahead from s, keeping at most
// beamWidth candidates per ply, and returns the first move of the best
// surviving line along with its accumulated score. When the known queue
// runs out before depth is exhausted, the tail is estimated by averaging
// the best continuation across all seven piece identities one additional
// ply deeper (SPEC_FULL.md §4.9).
func Lookahead(s State, depth, beamWidth int, w Weights) (Move, float32, bool) {
	children := expand(s, w)
	if len(children) == 0 {
		return Move{}, 0, false
	}
	children = pruneToBeam(children, beamWidth)

	best := float32(math.Inf(-1))
	var bestMove Move
	for _, c := range children {
		sc := search(c, depth-1, beamWidth, w)
		if sc > best {
			best = sc
			bestMove = c.Moves[len(c.Moves)-1]
		}
	}
	return bestMove, best, true
}

func search(s State, depth, beamWidth int, w Weights) float32 {
	if depth <= 0 {
		return s.Score
	}
	if s.Current == nil {
		return estimateTail(s, depth, beamWidth, w)
	}
	children := expand(s, w)
	if len(children) == 0 {
		return s.Score
	}
	children = pruneToBeam(children, beamWidth)
	best := float32(math.Inf(-1))
	for _, c := range children {
		if sc := search(c, depth-1, beamWidth, w); sc > best {
			best = sc
		}
	}
	return best
}

func estimateTail(s State, depth, beamWidth int, w Weights) float32 {
	var sum float32
	for p := board.Piece(0); p < board.Piece(board.PieceArraySize); p++ {
		piece := p
		trial := s
		trial.Current = &piece
		sum += search(trial, depth, beamWidth, w)
	}
	return sum / float32(board.PieceArraySize)
}

func pruneToBeam(states []State, beamWidth int) []State {
	sort.Slice(states, func(i, j int) bool { return states[i].Score > states[j].Score })
	if beamWidth > 0 && len(states) > beamWidth {
		states = states[:beamWidth]
	}
	return states
}
