package config

import (
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Source != "coin" {
		t.Errorf("expected source coin, got %s", cfg.Source)
	}
	if cfg.Samples <= 0 {
		t.Error("samples should be positive")
	}
	if cfg.Alpha != DefaultAlpha {
		t.Errorf("expected alpha %f, got %f", DefaultAlpha, cfg.Alpha)
	}
}

func TestSaveLoadRoundtrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "experiment.yaml")

	cfg := DefaultConfig()
	cfg.Source = "biased"
	cfg.Samples = 500
	cfg.Probability = 0.4
	cfg.Seed = 99

	if err := Save(path, cfg); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}

	if loaded.Source != "biased" || loaded.Samples != 500 || loaded.Seed != 99 {
		t.Errorf("roundtrip mismatch: %+v", loaded)
	}
	if loaded.Probability != 0.4 {
		t.Errorf("expected probability 0.4, got %f", loaded.Probability)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestGetPreset(t *testing.T) {
	cfg := GetPreset("biased-90-10")
	if cfg == nil {
		t.Fatal("expected preset, got nil")
	}
	if cfg.Probability != 0.1 {
		t.Errorf("expected probability 0.1, got %f", cfg.Probability)
	}

	// Returned preset must be a copy.
	cfg.Samples = 1
	if Presets["biased-90-10"].Samples == 1 {
		t.Error("mutating a preset copy should not touch the registry")
	}
}

func TestGetPreset_NotFound(t *testing.T) {
	if GetPreset("nonexistent") != nil {
		t.Error("expected nil for nonexistent preset")
	}
}

func TestListPresets(t *testing.T) {
	names := ListPresets()
	if len(names) != len(Presets) {
		t.Errorf("expected %d presets, got %d", len(Presets), len(names))
	}
	for i := 1; i < len(names); i++ {
		if names[i-1] >= names[i] {
			t.Error("expected sorted preset names")
		}
	}
}
