package attack

import (
	"math"

	"github.com/shardline/stackcore/board"
)

// Tracker holds the live back-to-back level and combo counter (the
// "Attack context" entries of SPEC_FULL.md §3), and turns each
// line-clear event into a garbage payout plus any surge triggered by a
// chain breaking.
type Tracker struct {
	Level int
	Combo int
}

// Clear processes one line-clear event and returns the garbage it earns
// plus, if a charged back-to-back chain just broke, the three-way surge
// split (nil otherwise).
func (t *Tracker) Clear(lines int, spin board.SpinClass, cfg Config, isPC bool) (garbage float64, surge []int) {
	if lines == 0 {
		t.Combo = 0
		return 0, nil
	}

	garbage = CalculateAttack(lines, spin, t.Level, t.Combo, cfg, isPC)

	qualifies := spin != board.NoSpin || lines >= 4
	if qualifies {
		t.Level++
	} else {
		if cfg.B2BCharging != nil && t.Level >= int(cfg.B2BCharging.At) {
			total := t.Level - int(cfg.B2BCharging.At) + int(cfg.B2BCharging.Base) + 1
			surge = splitThree(total)
		}
		t.Level = 0
	}
	t.Combo++
	return garbage, surge
}

// ChainDisplayBonus is the fractional "B2B level" bonus described by the
// chaining formula in SPEC_FULL.md §4.11 -- a UI-facing quantity, not
// part of the garbage total CalculateAttack returns.
func ChainDisplayBonus(level int) float64 {
	if level == 0 {
		return 0
	}
	logValue := math.Log1p(0.8 * float64(level))
	base := math.Floor(1 + logValue)
	if level == 1 {
		return base
	}
	frac := logValue - math.Floor(logValue)
	return base + (1+frac)/3
}

// splitThree divides a surge payout into three roughly-even chunks: the
// first two are total/3 rounded to the nearest integer, and the third
// gets the remainder (never below zero).
func splitThree(total int) []int {
	if total <= 0 {
		return nil
	}
	chunk := int(math.Round(float64(total) / 3.0))
	third := total - chunk*2
	if third < 0 {
		third = 0
	}
	return []int{chunk, chunk, third}
}
