package attack

import (
	"math"

	"github.com/shardline/stackcore/board"
)

// baseAttack is the static lines/spin garbage table (SPEC_FULL.md
// §4.11), extended linearly past the entries a single modern piece can
// actually produce (four lines, or a T-spin triple).
func baseAttack(lines int, spin board.SpinClass) float64 {
	if lines <= 0 {
		return 0
	}
	switch spin {
	case board.FullSpin:
		switch lines {
		case 1:
			return 2
		case 2:
			return 4
		case 3:
			return 6
		default:
			return float64(2 * lines)
		}
	case board.MiniSpin:
		switch lines {
		case 1:
			return 1
		default:
			return float64(lines)
		}
	default:
		switch lines {
		case 1:
			return 0
		case 2:
			return 1
		case 3:
			return 2
		case 4:
			return 4
		default:
			return float64(lines)
		}
	}
}

var classicComboTable = [11]float64{0, 0, 1, 1, 2, 2, 3, 3, 4, 4, 4}
var modernComboTable = [13]float64{0, 0, 1, 1, 2, 2, 3, 3, 4, 4, 4, 5, 5}

func lookupCapped(table []float64, combo int) float64 {
	if combo < 0 {
		combo = 0
	}
	if combo >= len(table) {
		combo = len(table) - 1
	}
	return table[combo]
}

// applyComboMultiplier scales a base garbage amount by the running
// combo count: +25% per combo step, with a logarithmic floor once the
// combo exceeds one so long combos never flatten out entirely.
func applyComboMultiplier(base float64, combo int) float64 {
	if combo <= 0 {
		return base
	}
	multiplied := base * (1 + 0.25*float64(combo))
	if combo > 1 {
		floor := math.Log1p(1.0 + float64(combo)*1.25)
		if multiplied < floor {
			return floor
		}
	}
	return multiplied
}

func tableBonus(combo int, mode ComboTable) float64 {
	switch mode {
	case ComboClassic:
		return lookupCapped(classicComboTable[:], combo)
	case ComboModern:
		return lookupCapped(modernComboTable[:], combo)
	default:
		return 0
	}
}

// CalculateAttack is the pure scoring function from SPEC_FULL.md §4.11
// and §6.1: base table lookup, perfect-clear bonus, the flat back-to-back
// continuation bonus, then either the combo multiplier or one of the
// additive combo tables (depending on the preset), all scaled by the
// configured garbage multiplier.
func CalculateAttack(lines int, spin board.SpinClass, b2bLevel, combo int, cfg Config, isPC bool) float64 {
	total := baseAttack(lines, spin)

	if isPC {
		total += float64(cfg.PCGarbage)
	}
	if lines > 0 && b2bLevel > 0 {
		if isPC {
			total += float64(cfg.PCB2B)
		} else {
			total++
		}
	}

	switch cfg.ComboTable {
	case ComboMultiplier:
		total = applyComboMultiplier(total, combo)
	case ComboClassic, ComboModern:
		total += tableBonus(combo, cfg.ComboTable)
	}

	return total * float64(cfg.GarbageMultiplier)
}
