package chem

import "fmt"

// SpeciesKey selects one of the five concentration slots.
type SpeciesKey int

const (
	Solute SpeciesKey = iota
	Product
	Hydronium
	Hydroxide
	Solvent
	NumSpecies
)

var speciesKeyNames = [NumSpecies]string{
	Solute:    "solute",
	Product:   "product",
	Hydronium: "h3o",
	Hydroxide: "oh",
	Solvent:   "h2o",
}

func (k SpeciesKey) String() string {
	if k < 0 || k >= NumSpecies {
		return fmt.Sprintf("species(%d)", int(k))
	}
	return speciesKeyNames[k]
}

// Species describes one chemical entity of an archetype.
type Species struct {
	Key    SpeciesKey
	Symbol string
}

// IsSolvent reports whether the species is water itself.
func (s Species) IsSolvent() bool { return s.Key == Solvent }

var (
	h3o = Species{Key: Hydronium, Symbol: "H3O+"}
	oh  = Species{Key: Hydroxide, Symbol: "OH-"}
	h2o = Species{Key: Solvent, Symbol: "H2O"}
)

// speciesTable lists the species of each archetype in display order.
var speciesTable = [numKinds][]Species{
	Water:      {h2o, h3o, oh},
	StrongAcid: {{Key: Solute, Symbol: "HA"}, h2o, {Key: Product, Symbol: "A-"}, h3o, oh},
	WeakAcid:   {{Key: Solute, Symbol: "HA"}, h2o, {Key: Product, Symbol: "A-"}, h3o, oh},
	StrongBase: {{Key: Solute, Symbol: "MOH"}, {Key: Product, Symbol: "M+"}, oh, h3o, h2o},
	WeakBase:   {{Key: Solute, Symbol: "B"}, h2o, {Key: Product, Symbol: "BH+"}, oh, h3o},
}

// SpeciesOf returns the species of an archetype. The slice is shared and
// must not be modified.
func SpeciesOf(kind Kind) []Species {
	if !kind.Valid() {
		panic("chem: species of " + kind.String())
	}
	return speciesTable[kind]
}

// Applies reports whether the species key exists in the archetype.
func Applies(kind Kind, key SpeciesKey) bool {
	for _, s := range SpeciesOf(kind) {
		if s.Key == key {
			return true
		}
	}
	return false
}

// Symbol returns the display symbol of a species in an archetype, or "" if
// the species does not apply.
func Symbol(kind Kind, key SpeciesKey) string {
	for _, s := range SpeciesOf(kind) {
		if s.Key == key {
			return s.Symbol
		}
	}
	return ""
}

// Value returns the slot of c selected by key. An unknown key is a
// programming error and panics.
func (c Concentrations) Value(key SpeciesKey) float64 {
	switch key {
	case Solute:
		return c.Solute
	case Product:
		return c.Product
	case Hydronium:
		return c.Hydronium
	case Hydroxide:
		return c.Hydroxide
	case Solvent:
		return c.Water
	}
	panic(fmt.Sprintf("chem: unknown species key %d", int(key)))
}
