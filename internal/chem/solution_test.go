package chem

import (
	"errors"
	"strings"
	"testing"
)

func TestParseKind(t *testing.T) {
	tests := []struct {
		in   string
		want Kind
	}{
		{"water", Water},
		{"strong_acid", StrongAcid},
		{"weak-acid", WeakAcid},
		{"Strong Base", StrongBase},
		{" weak_base ", WeakBase},
	}

	for _, tt := range tests {
		got, err := ParseKind(tt.in)
		if err != nil {
			t.Errorf("ParseKind(%q): %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseKind(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}

	for i, name := range KindNames() {
		if k, err := ParseKind(name); err != nil || k != Kind(i) {
			t.Errorf("KindNames()[%d] = %q does not parse back", i, name)
		}
	}
	if _, err := ParseKind("brine"); err == nil || !strings.Contains(err.Error(), "weak_base") {
		t.Errorf("error should list the kinds: %v", err)
	}
	if _, err := ParseKind("brine"); !errors.Is(err, ErrUnknownKind) {
		t.Errorf("expected ErrUnknownKind, got %v", err)
	}
}

func TestKindText(t *testing.T) {
	for _, k := range Kinds() {
		text, err := k.MarshalText()
		if err != nil {
			t.Fatalf("marshal %v: %v", k, err)
		}
		var back Kind
		if err := back.UnmarshalText(text); err != nil {
			t.Fatalf("unmarshal %s: %v", text, err)
		}
		if back != k {
			t.Errorf("expected %v, got %v", k, back)
		}
	}
}

func TestSpeciesConcentrationApplicability(t *testing.T) {
	water := NewSolution(Water)
	if _, ok := water.SpeciesConcentration(Solute); ok {
		t.Error("water should have no solute species")
	}
	if _, ok := water.SpeciesConcentration(Product); ok {
		t.Error("water should have no product species")
	}
	if v, ok := water.SpeciesConcentration(Hydronium); !ok || v <= 0 {
		t.Errorf("expected applicable hydronium, got %g %v", v, ok)
	}

	acid := NewSolution(StrongAcid)
	v, ok := acid.SpeciesConcentration(Solute)
	if !ok {
		t.Error("strong acid solute should be applicable")
	}
	if v != 0 {
		t.Errorf("expected zero undissociated solute, got %g", v)
	}
}

func TestSpeciesConcentrationUnknownKeyPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic for unknown species key")
		}
	}()
	NewSolution(WeakAcid).SpeciesConcentration(SpeciesKey(99))
}

func TestSpeciesTable(t *testing.T) {
	tests := []struct {
		kind  Kind
		count int
	}{
		{Water, 3},
		{StrongAcid, 5},
		{WeakAcid, 5},
		{StrongBase, 5},
		{WeakBase, 5},
	}

	for _, tt := range tests {
		if got := len(SpeciesOf(tt.kind)); got != tt.count {
			t.Errorf("%v: expected %d species, got %d", tt.kind, tt.count, got)
		}
	}

	if Symbol(WeakBase, Product) != "BH+" {
		t.Errorf("expected BH+, got %q", Symbol(WeakBase, Product))
	}
	if Symbol(Water, Solute) != "" {
		t.Errorf("expected no symbol, got %q", Symbol(Water, Solute))
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name string
		sol  Solution
		err  error
	}{
		{"default weak acid", NewSolution(WeakAcid), nil},
		{"water ignores c", Solution{Kind: Water, Concentration: 10}, nil},
		{"c too low", Solution{Kind: StrongAcid, Concentration: 1e-4, Strength: StrongStrength}, ErrConcentrationRange},
		{"c too high", Solution{Kind: WeakBase, Concentration: 2, Strength: 1e-5}, ErrConcentrationRange},
		{"k too high", Solution{Kind: WeakAcid, Concentration: 0.1, Strength: 1000}, ErrStrengthRange},
		{"unknown kind", Solution{Kind: Kind(-1)}, ErrUnknownKind},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.sol.Validate()
			if tt.err == nil && err != nil {
				t.Errorf("unexpected error: %v", err)
			}
			if tt.err != nil && !errors.Is(err, tt.err) {
				t.Errorf("expected %v, got %v", tt.err, err)
			}
		})
	}
}

func TestPercentDissociated(t *testing.T) {
	if p := NewSolution(StrongAcid).PercentDissociated(); p != 100 {
		t.Errorf("expected 100%%, got %g", p)
	}
	if p := NewSolution(Water).PercentDissociated(); p != 0 {
		t.Errorf("expected 0%%, got %g", p)
	}
	weak := Solution{Kind: WeakAcid, Concentration: 0.1, Strength: 1.8e-5}
	if p := weak.PercentDissociated(); p < 1 || p > 2 {
		t.Errorf("expected ~1.3%%, got %g", p)
	}
}

func TestSet(t *testing.T) {
	s := NewSet()
	if s.SelectedKind() != WeakAcid {
		t.Errorf("expected weak acid selected, got %v", s.SelectedKind())
	}

	if err := s.Select(StrongBase); err != nil {
		t.Fatal(err)
	}
	if s.Selected().Kind != StrongBase {
		t.Errorf("expected strong base, got %v", s.Selected().Kind)
	}

	if err := s.SetConcentration(WeakAcid, 0.5); err != nil {
		t.Fatal(err)
	}
	if s.Get(WeakAcid).Concentration != 0.5 {
		t.Errorf("concentration not stored")
	}
	if s.Get(StrongBase).Concentration != DefaultConcentration {
		t.Errorf("other solutions must not change")
	}

	if err := s.SetConcentration(WeakAcid, 5); !errors.Is(err, ErrConcentrationRange) {
		t.Errorf("expected range error, got %v", err)
	}
	if s.Get(WeakAcid).Concentration != 0.5 {
		t.Errorf("rejected value must not be stored")
	}

	if err := s.SetStrength(StrongAcid, 1); !errors.Is(err, ErrFixedStrength) {
		t.Errorf("expected fixed strength error, got %v", err)
	}
	if err := s.SetStrength(WeakBase, 1e-3); err != nil {
		t.Fatal(err)
	}
	if s.Get(WeakBase).Strength != 1e-3 {
		t.Errorf("strength not stored")
	}

	if err := s.Select(Kind(9)); !errors.Is(err, ErrUnknownKind) {
		t.Errorf("expected unknown kind, got %v", err)
	}
}
