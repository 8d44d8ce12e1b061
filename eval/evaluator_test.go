package eval

import (
	"testing"

	"github.com/shardline/stackcore/board"
)

func TestEvaluateEmptyBoardIsZero(t *testing.T) {
	pf := board.NewPlayfield()
	if got := Evaluate(pf, DefaultWeights()); got != 0 {
		t.Errorf("expected 0 score for an empty board, got %v", got)
	}
}

func TestEvaluatePenalizesHoles(t *testing.T) {
	pf := board.NewPlayfield()
	pf.Set(0, 1, true) // covers (0,0), creating one hole
	w := DefaultWeights()
	got := Evaluate(pf, w)
	want := w.Height*2 + w.Holes*1 + w.Bumpiness*2
	if diff := got - want; diff > 1e-4 || diff < -1e-4 {
		t.Errorf("got %v want %v", got, want)
	}
}

func TestEvaluateAfterClearRewardsLines(t *testing.T) {
	pf := board.NewPlayfield()
	w := DefaultWeights()
	withLines := EvaluateAfterClear(pf, 4, w)
	withoutLines := EvaluateAfterClear(pf, 0, w)
	if withLines <= withoutLines {
		t.Errorf("expected clearing lines to raise the score: with=%v without=%v", withLines, withoutLines)
	}
}

func TestBestMoveReturnsAPlacement(t *testing.T) {
	pf := board.NewPlayfield()
	pl, _, ok := BestMove(pf, board.O, DefaultWeights())
	if !ok {
		t.Fatal("expected a best move on an empty board")
	}
	if pl.Piece != board.O {
		t.Errorf("expected an O placement, got %v", pl.Piece)
	}
}

func TestTopMovesIsDescending(t *testing.T) {
	pf := board.NewPlayfield()
	top := TopMoves(pf, board.T, DefaultWeights(), 5)
	for i := 1; i < len(top); i++ {
		if top[i].Score > top[i-1].Score {
			t.Errorf("expected descending scores, got %v then %v", top[i-1].Score, top[i].Score)
		}
	}
}
