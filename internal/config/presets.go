package config

import (
	"sort"

	"github.com/san-kum/acidbase/internal/chem"
)

// Presets holds named household and laboratory solutions per archetype.
var Presets = map[string]map[string]chem.Solution{
	"strong_acid": {
		"hydrochloric": {Kind: chem.StrongAcid, Concentration: 0.1, Strength: chem.StrongStrength},
		"stomach":      {Kind: chem.StrongAcid, Concentration: 0.01, Strength: chem.StrongStrength},
		"concentrated": {Kind: chem.StrongAcid, Concentration: 1.0, Strength: chem.StrongStrength},
	},
	"weak_acid": {
		"acetic":       {Kind: chem.WeakAcid, Concentration: 0.1, Strength: 1.8e-5},
		"hypochlorous": {Kind: chem.WeakAcid, Concentration: 0.05, Strength: 3.0e-8},
		"hydrofluoric": {Kind: chem.WeakAcid, Concentration: 0.1, Strength: 6.8e-4},
		"boric":        {Kind: chem.WeakAcid, Concentration: 0.1, Strength: 5.8e-10},
	},
	"strong_base": {
		"sodium_hydroxide": {Kind: chem.StrongBase, Concentration: 0.1, Strength: chem.StrongStrength},
		"drain_cleaner":    {Kind: chem.StrongBase, Concentration: 1.0, Strength: chem.StrongStrength},
	},
	"weak_base": {
		"ammonia":     {Kind: chem.WeakBase, Concentration: 0.1, Strength: 1.8e-5},
		"pyridine":    {Kind: chem.WeakBase, Concentration: 0.1, Strength: 1.7e-9},
		"methylamine": {Kind: chem.WeakBase, Concentration: 0.05, Strength: 4.4e-4},
	},
}

func GetPreset(kind, preset string) (chem.Solution, bool) {
	kindPresets, ok := Presets[kind]
	if !ok {
		return chem.Solution{}, false
	}
	sol, ok := kindPresets[preset]
	return sol, ok
}

// ListPresets returns the preset names of a kind, sorted.
func ListPresets(kind string) []string {
	kindPresets, ok := Presets[kind]
	if !ok {
		return nil
	}
	names := make([]string, 0, len(kindPresets))
	for name := range kindPresets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
