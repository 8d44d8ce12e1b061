package analysis

import (
	"testing"

	"github.com/shardline/stackcore/board"
	"github.com/shardline/stackcore/placement"
)

func buildMissedSpinFrame() Frame {
	pf := board.NewPlayfield()
	pf.Set(3, 0, true)
	pf.Set(5, 0, true)
	pf.Set(3, 2, true)
	return Frame{
		Board:           pf,
		Piece:           board.T,
		PlayerPlacement: placement.Placement{Piece: board.T, Rotation: board.North, X: 4, Y: 1, Spin: board.NoSpin},
	}
}

func TestAnalyzeReplaySerialFindsMissedSpin(t *testing.T) {
	frames := []Frame{buildMissedSpinFrame()}
	result := AnalyzeReplay(frames, DefaultOptions())
	if len(result.Misdrops) != 1 {
		t.Fatalf("expected 1 misdrop, got %d", len(result.Misdrops))
	}
	if result.Misdrops[0].Kind != MissedTSpin {
		t.Errorf("expected MissedTSpin, got %v", result.Misdrops[0].Kind)
	}
}

func TestAnalyzeReplayParallelMatchesSerial(t *testing.T) {
	frames := make([]Frame, 0, 8)
	for i := 0; i < 8; i++ {
		frames = append(frames, buildMissedSpinFrame())
	}

	serial := AnalyzeReplay(frames, DefaultOptions())

	parallelOpts := DefaultOptions()
	parallelOpts.Concurrency = 4
	parallel := AnalyzeReplay(frames, parallelOpts)

	if len(serial.Misdrops) != len(parallel.Misdrops) {
		t.Fatalf("serial found %d misdrops, parallel found %d", len(serial.Misdrops), len(parallel.Misdrops))
	}
}

func TestAnalyzeReplayEmptyFrames(t *testing.T) {
	result := AnalyzeReplay(nil, DefaultOptions())
	if len(result.Moments) != 0 || len(result.Misdrops) != 0 {
		t.Errorf("expected an empty result, got %+v", result)
	}
}
