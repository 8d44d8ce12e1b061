// Command perft is a perft tool for the placement engine.
//
// Perft's purpose is to test, debug and benchmark placement generation.
// To do this we count the number of leaf boards reached after locking a
// fixed piece sequence to a given depth, optionally memoized with a
// transposition table keyed by hash, depth and next-piece tag.
//
// Examples:
//
// Simple fast integration test:
//	$ go test github.com/shardline/stackcore/perft
//
// default sequence (I O L J S Z T) on an empty board:
//	$ ./perft --max_depth 5
//	Searching sequence "IOLJSZT" on an empty board
//	depth        nodes eval  KNps   elapsed
//	-----+------------+-----+------+-------
//	    1           17 good    131 129.948µs
//	    2          153 good     60 2.531444ms
//	    3         5266 good    157 33.494604ms
//	    4       188561 good   3301 57.114844ms
//	    5      3500883 good   8736 400.762477ms
package main

import (
	"flag"
	"fmt"
	"log"
	"time"

	"github.com/pkg/profile"

	"github.com/shardline/stackcore/board"
	"github.com/shardline/stackcore/perft"
)

var (
	sequenceFlag = flag.String("sequence", "IOLJSZT", "piece sequence to search, one letter per piece")
	minDepth     = flag.Int("min_depth", 1, "minimum depth to search (inclusive)")
	maxDepth     = flag.Int("max_depth", 5, "maximum depth to search (inclusive)")
	depthFlag    = flag.Int("depth", 0, "if non zero, searches only this depth")
	useHash      = flag.Bool("use_hash", true, "memoize nodes in a transposition table")
	hashBits     = flag.Int("hash_bits", 20, "log2 of the transposition table size")
	cpuProfile   = flag.Bool("cpuprofile", false, "write a CPU profile (cpu.pprof in a new temporary directory)")
)

var known = map[string][]uint64{
	"IOLJSZT": {17, 153, 5266, 188561, 3500883, 67088390, 2705999255},
}

func parseSequence(s string) ([]board.Piece, error) {
	pieceByLetter := map[byte]board.Piece{
		'I': board.I, 'O': board.O, 'T': board.T,
		'S': board.S, 'Z': board.Z, 'J': board.J, 'L': board.L,
	}
	queue := make([]board.Piece, 0, len(s))
	for i := 0; i < len(s); i++ {
		p, ok := pieceByLetter[s[i]]
		if !ok {
			return nil, fmt.Errorf("unknown piece letter %q", s[i])
		}
		queue = append(queue, p)
	}
	return queue, nil
}

func main() {
	flag.Parse()
	log.SetFlags(log.Lshortfile)

	if *cpuProfile {
		defer profile.Start(profile.CPUProfile).Stop()
	}

	queue, err := parseSequence(*sequenceFlag)
	if err != nil {
		log.Fatalln("Cannot parse --sequence:", err)
	}
	expected := known[*sequenceFlag]

	if *depthFlag != 0 {
		*minDepth = *depthFlag
		*maxDepth = *depthFlag
	}

	fmt.Printf("Searching sequence %q on an empty board\n", *sequenceFlag)
	fmt.Printf("depth        nodes eval  KNps   elapsed\n")
	fmt.Printf("-----+------------+-----+------+-------\n")

	var tt *perft.TranspositionTable
	if *useHash {
		tt = perft.NewTranspositionTable(1 << *hashBits)
	}

	for d := *minDepth; d <= *maxDepth; d++ {
		if d > len(queue) {
			break
		}
		start := time.Now()
		node := perft.Node{Board: board.NewPlayfield(), Queue: queue}
		nodes := perft.PerftTT(node, d, tt)
		duration := time.Since(start)

		ok := ""
		if d-1 < len(expected) {
			if nodes == expected[d-1] {
				ok = "good"
			} else {
				ok = "bad"
			}
		}

		fmt.Printf("   %2d %12d %-4s %6.f %v\n",
			d, nodes, ok, float64(nodes)/duration.Seconds()/1e3, duration)

		if ok == "bad" {
			fmt.Printf("   %2d %12d expected\n", d, expected[d-1])
			break
		}
	}
}
