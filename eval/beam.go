package eval

import (
	"sort"

	"github.com/shardline/stackcore/board"
	"github.com/shardline/stackcore/placement"
)

// Scored pairs a placement with the score its resulting board earns.
type Scored struct {
	Placement placement.Placement
	Score     float32
}

// TopMoves enumerates every placement for piece on pf, scores each by
// the post-clear board, and returns the top n by score (descending).
// This is the beam search of SPEC_FULL.md §4.8; BestMove is the n=1
// special case.
func TopMoves(pf *board.Playfield, piece board.Piece, w Weights, n int) []Scored {
	placements := placement.Generate(pf, piece)
	scored := make([]Scored, len(placements))
	for i, pl := range placements {
		next, lines := placement.Apply(pf, pl)
		scored[i] = Scored{Placement: pl, Score: EvaluateAfterClear(next, lines, w)}
	}
	sort.Slice(scored, func(i, j int) bool { return scored[i].Score > scored[j].Score })
	if n >= 0 && len(scored) > n {
		scored = scored[:n]
	}
	return scored
}

// BestMove returns the single highest-scoring placement for piece on pf.
func BestMove(pf *board.Playfield, piece board.Piece, w Weights) (placement.Placement, float32, bool) {
	top := TopMoves(pf, piece, w, 1)
	if len(top) == 0 {
		return placement.Placement{}, 0, false
	}
	return top[0].Placement, top[0].Score, true
}
