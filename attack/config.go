// Package attack scores locked placements into garbage, tracking the
// back-to-back and combo state machines used to modulate that score.
// Grounded on the teacher's material.go weighted-term style for the
// attack formula itself, and on engine/engine.go's Options/Stats shape
// for the stateful Tracker. Configuration presets load from TOML via
// github.com/BurntSushi/toml, the library the rest of the retrieved pack
// uses for structured config documents.
package attack

// ComboTable selects which combo-bonus curve CalculateAttack applies.
type ComboTable int

const (
	ComboNone ComboTable = iota
	ComboMultiplier
	ComboClassic
	ComboModern
)

var comboTableNames = map[string]ComboTable{
	"none":       ComboNone,
	"multiplier": ComboMultiplier,
	"classic":    ComboClassic,
	"modern":     ComboModern,
}

var comboTableStrings = [...]string{"none", "multiplier", "classic", "modern"}

func (c ComboTable) String() string {
	if int(c) < 0 || int(c) >= len(comboTableStrings) {
		return "unknown"
	}
	return comboTableStrings[c]
}

// UnmarshalText lets ComboTable be read directly out of a TOML string
// value, e.g. combo_table = "multiplier".
func (c *ComboTable) UnmarshalText(text []byte) error {
	v, ok := comboTableNames[string(text)]
	if !ok {
		return errUnknownComboTable(string(text))
	}
	*c = v
	return nil
}

func (c ComboTable) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// ChargingConfig enables the back-to-back "surge on break" payout.
type ChargingConfig struct {
	At   uint8 `toml:"at"`
	Base uint8 `toml:"base"`
}

// Config is the full attack-scoring configuration (SPEC_FULL.md §6.4).
type Config struct {
	PCGarbage         uint8           `toml:"pc_garbage"`
	PCB2B             uint8           `toml:"pc_b2b"`
	B2BChaining       bool            `toml:"b2b_chaining"`
	B2BCharging       *ChargingConfig `toml:"b2b_charging"`
	ComboTable        ComboTable      `toml:"combo_table"`
	GarbageMultiplier float32         `toml:"garbage_multiplier"`
}

// DefaultPresets returns the two named presets from SPEC_FULL.md §6.4.
func DefaultPresets() map[string]Config {
	return map[string]Config{
		"tetra_league": {
			PCGarbage:         5,
			PCB2B:             2,
			B2BChaining:       true,
			B2BCharging:       &ChargingConfig{At: 4, Base: 4},
			ComboTable:        ComboMultiplier,
			GarbageMultiplier: 1.0,
		},
		"quick_play": {
			PCGarbage:         3,
			PCB2B:             2,
			B2BChaining:       false,
			B2BCharging:       &ChargingConfig{At: 4, Base: 1},
			ComboTable:        ComboMultiplier,
			GarbageMultiplier: 1.0,
		},
	}
}
