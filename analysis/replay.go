package analysis

import (
	"golang.org/x/sync/errgroup"

	"github.com/shardline/stackcore/eval"
)

// AnalyzeOptions configures AnalyzeReplay. The default is serial, matching
// SPEC_FULL.md §5's "embarrassingly parallel per frame... default is
// serial" — a host opts into sharding explicitly.
type AnalyzeOptions struct {
	Weights     eval.Weights
	Threshold   float32
	Concurrency int
}

// DefaultOptions returns serial analysis with the evaluator's default
// weights and the default misdrop threshold.
func DefaultOptions() AnalyzeOptions {
	return AnalyzeOptions{Weights: eval.DefaultWeights(), Threshold: DefaultSuboptimalThreshold, Concurrency: 1}
}

// AnalyzeReplay walks every frame, independently checking each one
// against the engine's own judgment, and collects the flagged moments.
// Frames are pure functions of their own board+piece+placement, so
// sharding across Concurrency workers (via golang.org/x/sync/errgroup,
// the same fan-out primitive perft uses for its chokepoint) changes
// only wall-clock time, never the result.
func AnalyzeReplay(frames []Frame, opts AnalyzeOptions) AnalysisResult {
	concurrency := opts.Concurrency
	if concurrency < 1 {
		concurrency = 1
	}

	misdrops := make([]*Misdrop, len(frames))
	analyzeOne := func(i int) {
		f := frames[i]
		misdrops[i] = DetectMisdrop(f.Board, f.Piece, f.PlayerPlacement, opts.Weights, opts.Threshold)
	}

	if concurrency == 1 {
		for i := range frames {
			analyzeOne(i)
		}
	} else {
		var g errgroup.Group
		g.SetLimit(concurrency)
		for i := range frames {
			i := i
			g.Go(func() error {
				analyzeOne(i)
				return nil
			})
		}
		_ = g.Wait()
	}

	result := AnalysisResult{Moments: make([]Moment, len(frames))}
	for i, m := range misdrops {
		result.Moments[i] = Moment{Frame: i, Misdrop: m}
		if m != nil {
			m.Frame = i
			result.Misdrops = append(result.Misdrops, *m)
		}
	}
	return result
}
