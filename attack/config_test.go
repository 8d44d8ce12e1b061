package attack

import (
	"testing"

	"github.com/BurntSushi/toml"
)

const samplePresetsTOML = `
[presets.custom]
pc_garbage = 1
pc_b2b = 1
b2b_chaining = true
combo_table = "classic"
garbage_multiplier = 1.5

[presets.custom.b2b_charging]
at = 2
base = 1
`

func TestDecodePresetsDocument(t *testing.T) {
	var doc presetsDocument
	if _, err := toml.Decode(samplePresetsTOML, &doc); err != nil {
		t.Fatalf("unexpected decode error: %v", err)
	}
	cfg, ok := doc.Presets["custom"]
	if !ok {
		t.Fatal("expected a \"custom\" preset")
	}
	if cfg.PCGarbage != 1 || cfg.ComboTable != ComboClassic {
		t.Errorf("unexpected preset contents: %+v", cfg)
	}
	if cfg.B2BCharging == nil || cfg.B2BCharging.At != 2 {
		t.Errorf("expected b2b_charging.at = 2, got %+v", cfg.B2BCharging)
	}
}

func TestDefaultPresetsHaveBothNames(t *testing.T) {
	presets := DefaultPresets()
	for _, name := range []string{"tetra_league", "quick_play"} {
		if _, ok := presets[name]; !ok {
			t.Errorf("missing preset %q", name)
		}
	}
}
