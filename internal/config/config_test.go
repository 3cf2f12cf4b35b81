package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/san-kum/acidbase/internal/chem"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Selected != chem.WeakAcid {
		t.Errorf("expected weak_acid selected, got %s", cfg.Selected)
	}
	if cfg.LensRadius <= 0 {
		t.Error("lens radius should be positive")
	}
	if cfg.BarHeight <= 0 {
		t.Error("bar height should be positive")
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config invalid: %v", err)
	}
}

func TestSaveLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "acidbase.yaml")

	cfg := DefaultConfig()
	cfg.Seed = 42
	cfg.Selected = chem.WeakBase
	cfg.SetSolution(chem.Solution{Kind: chem.WeakBase, Concentration: 0.2, Strength: 1.8e-5})
	cfg.SetSolution(chem.Solution{Kind: chem.StrongAcid, Concentration: 0.5, Strength: chem.StrongStrength})

	if err := Save(path, cfg); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if loaded.Seed != 42 || loaded.Selected != chem.WeakBase {
		t.Errorf("unexpected config %+v", loaded)
	}

	wb := loaded.Solution(chem.WeakBase)
	if wb.Concentration != 0.2 || wb.Strength != 1.8e-5 {
		t.Errorf("unexpected weak base %+v", wb)
	}
	sa := loaded.Solution(chem.StrongAcid)
	if sa.Concentration != 0.5 || sa.Strength != chem.StrongStrength {
		t.Errorf("unexpected strong acid %+v", sa)
	}
}

func TestLoadPartialKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "partial.yaml")
	data := "selected: strong-base\nsolutions:\n  weak_acid:\n    strength: 1.0e-4\n"
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if cfg.Selected != chem.StrongBase {
		t.Errorf("expected strong_base, got %s", cfg.Selected)
	}
	if cfg.BarHeight != DefaultBarHeight {
		t.Errorf("expected default bar height, got %f", cfg.BarHeight)
	}
	wa := cfg.Solution(chem.WeakAcid)
	if wa.Concentration != chem.DefaultConcentration || wa.Strength != 1e-4 {
		t.Errorf("unexpected weak acid %+v", wa)
	}
}

func TestLoadRejectsOutOfRange(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	data := "solutions:\n  weak_acid:\n    concentration: 3\n"
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := Load(path); !errors.Is(err, chem.ErrConcentrationRange) {
		t.Errorf("expected concentration range error, got %v", err)
	}
}

func TestLoadRejectsUnknownSolution(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("solutions:\n  brine:\n    concentration: 0.1\n"), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := Load(path); !errors.Is(err, chem.ErrUnknownKind) {
		t.Errorf("expected unknown kind error, got %v", err)
	}
}

func TestConfigSet(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Selected = chem.StrongAcid
	cfg.SetSolution(chem.Solution{Kind: chem.StrongAcid, Concentration: 0.3})

	set, err := cfg.Set()
	if err != nil {
		t.Fatal(err)
	}
	if set.SelectedKind() != chem.StrongAcid {
		t.Errorf("expected strong_acid selected, got %s", set.SelectedKind())
	}
	if set.Selected().Concentration != 0.3 {
		t.Errorf("expected 0.3, got %g", set.Selected().Concentration)
	}
}

func TestConfigSetRejectsOutOfRange(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Solutions["weak_acid"] = SolutionConfig{Concentration: 5}
	if _, err := cfg.Set(); !errors.Is(err, chem.ErrConcentrationRange) {
		t.Errorf("expected concentration range error, got %v", err)
	}

	cfg = DefaultConfig()
	cfg.Solutions["weak_base"] = SolutionConfig{Concentration: 0.1, Strength: 1e3}
	if _, err := cfg.Set(); !errors.Is(err, chem.ErrStrengthRange) {
		t.Errorf("expected strength range error, got %v", err)
	}

	cfg = DefaultConfig()
	cfg.Selected = chem.Kind(42)
	if _, err := cfg.Set(); !errors.Is(err, chem.ErrUnknownKind) {
		t.Errorf("expected unknown kind error, got %v", err)
	}
}

func TestGetPreset(t *testing.T) {
	sol, ok := GetPreset("weak_acid", "acetic")
	if !ok {
		t.Fatal("expected preset")
	}
	if sol.Strength != 1.8e-5 {
		t.Errorf("expected Ka 1.8e-5, got %g", sol.Strength)
	}
	if err := sol.Validate(); err != nil {
		t.Errorf("preset invalid: %v", err)
	}
}

func TestGetPreset_NotFound(t *testing.T) {
	if _, ok := GetPreset("weak_acid", "nonexistent"); ok {
		t.Error("expected no preset")
	}
	if _, ok := GetPreset("nonexistent", "acetic"); ok {
		t.Error("expected no preset for unknown kind")
	}
}

func TestListPresets(t *testing.T) {
	presets := ListPresets("weak_base")
	if len(presets) != 3 || presets[0] != "ammonia" {
		t.Errorf("unexpected presets %v", presets)
	}
	if ListPresets("nonexistent") != nil {
		t.Error("expected nil for unknown kind")
	}
}

func TestAllPresetsValid(t *testing.T) {
	for kind, presets := range Presets {
		for name, sol := range presets {
			if sol.Kind.String() != kind {
				t.Errorf("%s/%s: kind %s", kind, name, sol.Kind)
			}
			if err := sol.Validate(); err != nil {
				t.Errorf("%s/%s: %v", kind, name, err)
			}
		}
	}
}
