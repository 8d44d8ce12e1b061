// Package perft implements the node-count validation harness: given a
// board and a fixed piece sequence, count the number of leaf boards
// reachable after locking every piece in the sequence to some depth.
// Grounded on the teacher's perft/perft.go, which walks the same
// recurse/backtrack shape over chess positions with an optional
// Zobrist-keyed hash table; here the "moves" are bitboard placements
// and "backtrack" is placement.Undo instead of UndoMove.
package perft

import (
	"golang.org/x/sync/errgroup"

	"github.com/shardline/stackcore/board"
	"github.com/shardline/stackcore/placement"
)

// Node is one perft search node: a board and the upcoming piece
// sequence still to be placed.
type Node struct {
	Board *board.Playfield
	Queue []board.Piece
}

// Perft counts leaf boards reached by placing Queue[0..depth) pieces,
// one per ply, recursing over every placement the engine generates for
// the piece on deck.
func Perft(n Node, depth int) uint64 {
	if depth == 0 || len(n.Queue) == 0 {
		return 1
	}
	piece := n.Queue[0]
	rest := n.Queue[1:]

	var total uint64
	for _, pl := range placement.Generate(n.Board, piece) {
		cleared, undo := placement.ApplyUndo(n.Board, pl)
		_ = cleared
		total += Perft(Node{Board: n.Board, Queue: rest}, depth-1)
		undo.Restore(n.Board)
	}
	return total
}

// TTEntry is one transposition table slot.
type TTEntry struct {
	key   uint64
	depth int
	count uint64
	valid bool
}

// TranspositionTable is a direct-mapped, power-of-two hash table: a
// single probe via key-masking either hits or is overwritten, exactly
// like the teacher's flat hashEntry slice indexed by zobrist%len,
// except indexing is done with a bit mask since the table size here is
// always a power of two.
type TranspositionTable struct {
	entries []TTEntry
	mask    uint64
}

// NewTranspositionTable allocates a table of size capacity rounded up
// to the next power of two.
func NewTranspositionTable(capacity int) *TranspositionTable {
	size := 1
	for size < capacity {
		size <<= 1
	}
	return &TranspositionTable{entries: make([]TTEntry, size), mask: uint64(size - 1)}
}

// ttKey packs (hash, depth, next-piece) into one lookup key: the board
// hash XOR the depth shifted left by three bits XOR the piece byte
// multiplied by the 64-bit golden-ratio constant, which spreads adjacent
// piece bytes across the whole word.
func ttKey(pf *board.Playfield, depth int, nextPiece board.Piece) uint64 {
	const golden = 0x9e3779b97f4a7c15
	return pf.Hash() ^ (uint64(depth) << 3) ^ (uint64(nextPiece.Byte()) * golden)
}

func (tt *TranspositionTable) get(key uint64, depth int) (uint64, bool) {
	e := &tt.entries[key&tt.mask]
	if e.valid && e.key == key && e.depth == depth {
		return e.count, true
	}
	return 0, false
}

func (tt *TranspositionTable) put(key uint64, depth int, count uint64) {
	tt.entries[key&tt.mask] = TTEntry{key: key, depth: depth, count: count, valid: true}
}

// PerftTT is Perft with memoization: nodes are keyed by hash XOR depth
// XOR next-piece-tag, per SPEC_FULL.md §4.12.
func PerftTT(n Node, depth int, tt *TranspositionTable) uint64 {
	if depth == 0 || len(n.Queue) == 0 {
		return 1
	}
	piece := n.Queue[0]
	rest := n.Queue[1:]

	key := ttKey(n.Board, depth, piece)
	if tt != nil {
		if count, ok := tt.get(key, depth); ok {
			return count
		}
	}

	var total uint64
	for _, pl := range placement.Generate(n.Board, piece) {
		cleared, undo := placement.ApplyUndo(n.Board, pl)
		_ = cleared
		total += PerftTT(Node{Board: n.Board, Queue: rest}, depth-1, tt)
		undo.Restore(n.Board)
	}

	if tt != nil {
		tt.put(key, depth, total)
	}
	return total
}

// ParallelPerft fans the first ply's placements out across an
// errgroup, each branch owning its own board copy and its own
// transposition table so no mutable state crosses goroutines. This
// replaces the teacher's worker-pool dispatch (no verified library in
// the retrieved pack covers that API) with golang.org/x/sync/errgroup,
// which the rest of the module already depends on.
func ParallelPerft(n Node, depth int, ttCapacity int) uint64 {
	if depth == 0 || len(n.Queue) == 0 {
		return 1
	}
	piece := n.Queue[0]
	rest := n.Queue[1:]
	branches := placement.Generate(n.Board, piece)

	counts := make([]uint64, len(branches))
	var g errgroup.Group
	for i, pl := range branches {
		i, pl := i, pl
		g.Go(func() error {
			branchBoard := *n.Board
			placement.ApplyInPlace(&branchBoard, pl)
			var tt *TranspositionTable
			if ttCapacity > 0 {
				tt = NewTranspositionTable(ttCapacity)
			}
			counts[i] = PerftTT(Node{Board: &branchBoard, Queue: rest}, depth-1, tt)
			return nil
		})
	}
	_ = g.Wait()

	var total uint64
	for _, c := range counts {
		total += c
	}
	return total
}
