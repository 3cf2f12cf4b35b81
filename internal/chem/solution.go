package chem

import "fmt"

const (
	DefaultConcentration = 0.01
	DefaultWeakStrength  = 1e-7
)

// Solution is a tagged variant over the five archetypes.
type Solution struct {
	Kind          Kind
	Concentration float64
	Strength      float64
}

// NewSolution returns an archetype with its default parameters.
func NewSolution(kind Kind) Solution {
	s := Solution{Kind: kind, Concentration: DefaultConcentration}
	switch {
	case kind == Water:
		s.Concentration = 0
	case kind.IsWeak():
		s.Strength = DefaultWeakStrength
	default:
		s.Strength = StrongStrength
	}
	return s
}

func (s Solution) Concentrations() Concentrations {
	return Compute(s.Kind, s.Concentration, s.Strength)
}

func (s Solution) PH() float64 {
	return PH(s.Concentrations().Hydronium)
}

// SpeciesConcentration returns the equilibrium concentration of a species.
// ok is false when the species is not part of this archetype.
func (s Solution) SpeciesConcentration(key SpeciesKey) (value float64, ok bool) {
	c := s.Concentrations()
	v := c.Value(key)
	if !Applies(s.Kind, key) {
		return 0, false
	}
	return v, true
}

func (s Solution) Species() []Species {
	return SpeciesOf(s.Kind)
}

// PercentDissociated is the fraction of solute converted to product, in percent.
func (s Solution) PercentDissociated() float64 {
	if s.Kind == Water || s.Concentration <= 0 {
		return 0
	}
	return 100 * s.Concentrations().Product / s.Concentration
}

func (s Solution) Validate() error {
	if !s.Kind.Valid() {
		return fmt.Errorf("%w: %d", ErrUnknownKind, int(s.Kind))
	}
	if s.Kind == Water {
		return nil
	}
	if s.Concentration < MinConcentration || s.Concentration > MaxConcentration {
		return fmt.Errorf("%w: %g not in [%g, %g]", ErrConcentrationRange, s.Concentration, MinConcentration, MaxConcentration)
	}
	if s.Kind.IsWeak() && (s.Strength < MinWeakStrength || s.Strength > MaxWeakStrength) {
		return fmt.Errorf("%w: %g not in [%g, %g]", ErrStrengthRange, s.Strength, MinWeakStrength, MaxWeakStrength)
	}
	return nil
}

func (s Solution) String() string {
	switch {
	case s.Kind == Water:
		return s.Kind.String()
	case s.Kind.IsWeak():
		return fmt.Sprintf("%s c=%.3g k=%.3g", s.Kind, s.Concentration, s.Strength)
	default:
		return fmt.Sprintf("%s c=%.3g", s.Kind, s.Concentration)
	}
}
