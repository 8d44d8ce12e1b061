package analysis

import (
	"github.com/shardline/stackcore/board"
	"github.com/shardline/stackcore/eval"
	"github.com/shardline/stackcore/placement"
)

// DefaultSuboptimalThreshold is the score gap (engine best minus
// player's actual placement, after applying evaluator weights) above
// which a placement is flagged as a misdrop.
const DefaultSuboptimalThreshold = 20.0

// DetectMisdrop scores a player's placement against the engine's own
// best move for the same board and piece, and separately checks
// whether the placement left a T-spin opportunity unflagged. It
// returns nil when neither check fires.
func DetectMisdrop(pf *board.Playfield, piece board.Piece, playerPlacement placement.Placement, weights eval.Weights, threshold float32) *Misdrop {
	if m := detectMissedTSpin(pf, piece, playerPlacement); m != nil {
		return m
	}
	return detectSuboptimal(pf, piece, playerPlacement, weights, threshold)
}

func detectSuboptimal(pf *board.Playfield, piece board.Piece, playerPlacement placement.Placement, weights eval.Weights, threshold float32) *Misdrop {
	best, bestScore, ok := eval.BestMove(pf, piece, weights)
	if !ok {
		return nil
	}

	holesBefore := eval.CountHoles(pf)

	played := *pf
	clearedByPlayer, undo := placement.ApplyUndo(&played, playerPlacement)
	playerScore := eval.EvaluateAfterClear(&played, clearedByPlayer, weights)
	holesAfter := eval.CountHoles(&played)
	undo.Restore(&played)

	delta := bestScore - playerScore
	if delta <= threshold {
		return nil
	}
	return &Misdrop{
		Kind:            Suboptimal,
		PlayerPlacement: playerPlacement,
		BestPlacement:   best,
		ScoreDelta:      delta,
		Severity:        classifySeverity(delta),
		CreatesHole:     holesAfter > holesBefore,
	}
}

// detectMissedTSpin flags a T placement that satisfied the
// three-corner rule (per SPEC_FULL.md §8 scenario 7) but was recorded
// without a spin label, meaning the player's client (or input) did not
// recognize the spin it actually executed.
func detectMissedTSpin(pf *board.Playfield, piece board.Piece, playerPlacement placement.Placement) *Misdrop {
	if piece != board.T || playerPlacement.Spin != board.NoSpin {
		return nil
	}
	cmap := board.BuildCornerMap(pf)
	occ3 := cmap.Occ3(playerPlacement.X)
	if occ3&(uint64(1)<<uint(playerPlacement.Y)) == 0 {
		return nil
	}
	return &Misdrop{
		Kind:            MissedTSpin,
		PlayerPlacement: playerPlacement,
	}
}
