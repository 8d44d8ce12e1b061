package eval

import "github.com/shardline/stackcore/board"

// Features is the raw per-board measurement set the weighted sum is
// built from (SPEC_FULL.md §4.7).
type Features struct {
	Heights     [board.Columns]int
	MaxHeight   int
	Holes       int
	Bumpiness   int
	WellDepth   int // deepest well, used as the "I-dependency" feature
}

// computeFeatures walks every column once: a column's height is one past
// its topmost filled cell, holes are empty cells below that top, and
// bumpiness/wells derive from the resulting height profile.
func computeFeatures(pf *board.Playfield) Features {
	var f Features
	for x := 0; x < board.Columns; x++ {
		col := pf.Column(x)
		height := 0
		holes := 0
		for y := board.Rows - 1; y >= 0; y-- {
			filled := col>>uint(y)&1 != 0
			if filled && height == 0 {
				height = y + 1
			}
			if !filled && height > 0 {
				holes++
			}
		}
		f.Heights[x] = height
		f.Holes += holes
		if height > f.MaxHeight {
			f.MaxHeight = height
		}
	}

	for x := 0; x < board.Columns-1; x++ {
		d := f.Heights[x] - f.Heights[x+1]
		if d < 0 {
			d = -d
		}
		f.Bumpiness += d
	}

	for x := 0; x < board.Columns; x++ {
		left, right := board.Rows, board.Rows
		if x > 0 {
			left = f.Heights[x-1]
		}
		if x < board.Columns-1 {
			right = f.Heights[x+1]
		}
		neighbor := left
		if right < neighbor {
			neighbor = right
		}
		if neighbor > f.Heights[x] {
			depth := neighbor - f.Heights[x]
			if depth > f.WellDepth {
				f.WellDepth = depth
			}
		}
	}

	return f
}

// CountHoles reports the number of empty cells that sit below some
// filled cell in their column, summed over the whole board.
func CountHoles(pf *board.Playfield) int {
	return computeFeatures(pf).Holes
}

// Evaluate scores a board with no associated line-clear event.
func Evaluate(pf *board.Playfield, w Weights) float32 {
	return EvaluateAfterClear(pf, 0, w)
}

// EvaluateAfterClear scores the board that resulted from clearing lines
// lines, folding the lines-cleared reward into the weighted sum.
func EvaluateAfterClear(pf *board.Playfield, lines int, w Weights) float32 {
	f := computeFeatures(pf)
	return w.Height*float32(f.MaxHeight) +
		w.Holes*float32(f.Holes) +
		w.Bumpiness*float32(f.Bumpiness) +
		w.Wells*float32(f.WellDepth) +
		w.IDependency*float32(f.WellDepth) +
		w.LinesCleared*float32(lines)
}
