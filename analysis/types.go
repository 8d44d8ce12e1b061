// Package analysis consumes a stream of replay frames and annotates
// each one against the engine's own judgment: was the placement the
// best available, and did the player miss a T-spin opportunity that
// the board geometry actually offered. Grounded on the teacher's
// puzzle/puzzle.go, which walks a batch of recorded positions and
// compares the recorded move against what the engine itself would
// play; here "solve" becomes "best_move" and "move" becomes
// "placement".
package analysis

import (
	"github.com/shardline/stackcore/board"
	"github.com/shardline/stackcore/placement"
)

// Frame is one recorded decision point in a replay: the board as it
// stood before the piece locked, the piece that was on deck, and the
// placement the player actually chose.
type Frame struct {
	Board           *board.Playfield
	Piece           board.Piece
	Hold            *board.Piece
	Queue           []board.Piece
	PlayerPlacement placement.Placement
}

// MisdropKind distinguishes the two ways a frame can be flagged.
type MisdropKind int

const (
	// Suboptimal marks a placement that scores materially worse than
	// the engine's best move for the same board and piece.
	Suboptimal MisdropKind = iota
	// MissedTSpin marks a placement that satisfied the three-corner
	// rule but was not recognized/executed as a spin.
	MissedTSpin
)

func (k MisdropKind) String() string {
	switch k {
	case Suboptimal:
		return "suboptimal"
	case MissedTSpin:
		return "missed T-spin"
	default:
		return "unknown"
	}
}

// Severity buckets a Suboptimal misdrop's score gap so a host can
// surface "minor/moderate/major" without re-deriving thresholds.
type Severity int

const (
	Minor Severity = iota
	Moderate
	Major
)

func (s Severity) String() string {
	switch s {
	case Minor:
		return "minor"
	case Moderate:
		return "moderate"
	case Major:
		return "major"
	default:
		return "unknown"
	}
}

func classifySeverity(diff float32) Severity {
	switch {
	case diff < 50:
		return Minor
	case diff < 150:
		return Moderate
	default:
		return Major
	}
}

// Misdrop is a single flagged frame.
type Misdrop struct {
	Frame           int
	Kind            MisdropKind
	PlayerPlacement placement.Placement
	BestPlacement   placement.Placement
	ScoreDelta      float32
	Severity        Severity
	CreatesHole     bool
}

// Moment pairs a frame index with whatever misdrop (if any) was found
// there.
type Moment struct {
	Frame   int
	Misdrop *Misdrop
}

// AnalysisResult is the full annotated walk over a replay.
type AnalysisResult struct {
	Moments  []Moment
	Misdrops []Misdrop
}
