package attack

import (
	"github.com/BurntSushi/toml"

	"github.com/shardline/stackcore/eval"
)

// presetsDocument is the on-disk shape of an attack-config preset file:
// a table of named Config blocks.
type presetsDocument struct {
	Presets map[string]Config `toml:"presets"`
}

// LoadAttackConfig reads a TOML document of named attack presets,
// returning them keyed by name. Missing fields fall back to the Go
// zero value, matching the teacher pack's general stance that
// configuration documents only override what they mention.
func LoadAttackConfig(path string) (map[string]Config, error) {
	var doc presetsDocument
	if _, err := toml.DecodeFile(path, &doc); err != nil {
		return nil, err
	}
	return doc.Presets, nil
}

// weightsDocument is the on-disk shape of an evaluator-weights file.
type weightsDocument struct {
	Weights eval.Weights `toml:"weights"`
}

// LoadWeights reads a TOML document of evaluator weights.
func LoadWeights(path string) (eval.Weights, error) {
	var doc weightsDocument
	if _, err := toml.DecodeFile(path, &doc); err != nil {
		return eval.Weights{}, err
	}
	return doc.Weights, nil
}
