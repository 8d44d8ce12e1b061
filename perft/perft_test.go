package perft

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/shardline/stackcore/board"
)

// sequence is the canonical validation queue used throughout
// SPEC_FULL.md §8: I, O, L, J, S, Z, T.
var sequence = []board.Piece{board.I, board.O, board.L, board.J, board.S, board.Z, board.T}

func TestPerftDepth1MatchesPublishedNodeCount(t *testing.T) {
	pf := board.NewPlayfield()
	got := Perft(Node{Board: pf, Queue: sequence}, 1)
	require.Equal(t, uint64(17), got)
}

func TestPerftDepth2MatchesPublishedNodeCount(t *testing.T) {
	pf := board.NewPlayfield()
	got := Perft(Node{Board: pf, Queue: sequence}, 2)
	require.Equal(t, uint64(153), got)
}

func TestPerftDepth3MatchesPublishedNodeCount(t *testing.T) {
	pf := board.NewPlayfield()
	got := Perft(Node{Board: pf, Queue: sequence}, 3)
	require.Equal(t, uint64(5266), got)
}

func TestPerftDeepSequenceMatchesPublishedNodeCounts(t *testing.T) {
	if testing.Short() {
		t.Skip("deep perft is expensive; run without -short")
	}
	want := []uint64{17, 153, 5266, 188561, 3500883, 67088390, 2705999255}
	for depth, w := range want {
		got := Perft(Node{Board: board.NewPlayfield(), Queue: sequence}, depth+1)
		require.Equalf(t, w, got, "depth %d", depth+1)
	}
}

// TestPerftTTMatchesPlainRecursion checks the memoized walk agrees with
// the unmemoized one at a depth deep enough to revisit transposed
// boards.
func TestPerftTTMatchesPlainRecursion(t *testing.T) {
	want := Perft(Node{Board: board.NewPlayfield(), Queue: sequence}, 3)

	tt := NewTranspositionTable(1 << 16)
	got := PerftTT(Node{Board: board.NewPlayfield(), Queue: sequence}, 3, tt)
	require.Equal(t, want, got)
}

func TestParallelPerftMatchesSerial(t *testing.T) {
	want := Perft(Node{Board: board.NewPlayfield(), Queue: sequence}, 3)
	got := ParallelPerft(Node{Board: board.NewPlayfield(), Queue: sequence}, 3, 1<<12)
	require.Equal(t, want, got)
}

// TestPerftPerPieceDepth1 covers the per-piece D1 counts from
// SPEC_FULL.md §8: a lone piece of each shape dropped on an empty
// board.
func TestPerftPerPieceDepth1(t *testing.T) {
	cases := map[board.Piece]uint64{
		board.I: 17,
		board.O: 9,
		board.T: 34,
		board.S: 17,
		board.Z: 17,
		board.J: 34,
		board.L: 34,
	}
	for piece, want := range cases {
		pf := board.NewPlayfield()
		got := Perft(Node{Board: pf, Queue: []board.Piece{piece}}, 1)
		require.Equalf(t, want, got, "piece %s", piece)
	}
}
