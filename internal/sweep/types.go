package sweep

import (
	"fmt"

	"github.com/san-kum/acidbase/internal/chem"
)

// Point is the equilibrium of one solution along a sweep.
type Point struct {
	chem.Concentrations
	Concentration float64 `json:"concentration"`
	PH            float64 `json:"ph"`
}

type Metric interface {
	Name() string
	Observe(p Point)
	Value() float64
	Reset()
}

type Observer interface {
	OnPoint(i int, p Point)
}

// Config describes a log-spaced concentration sweep of one archetype at a
// fixed strength.
type Config struct {
	Kind     chem.Kind
	Strength float64
	MinC     float64
	MaxC     float64
	Points   int
}

func DefaultConfig(kind chem.Kind) Config {
	sol := chem.NewSolution(kind)
	return Config{
		Kind:     kind,
		Strength: sol.Strength,
		MinC:     chem.MinConcentration,
		MaxC:     chem.MaxConcentration,
		Points:   61,
	}
}

type Result struct {
	Points  []Point
	Metrics map[string]float64
}

// PH returns the pH column of the sweep.
func (r *Result) PH() []float64 {
	out := make([]float64, len(r.Points))
	for i, p := range r.Points {
		out[i] = p.PH
	}
	return out
}

// Column returns one species column of the sweep.
func (r *Result) Column(key chem.SpeciesKey) []float64 {
	out := make([]float64, len(r.Points))
	for i, p := range r.Points {
		out[i] = p.Value(key)
	}
	return out
}

type SweepError struct {
	Index         int
	Concentration float64
	Message       string
}

func (e SweepError) Error() string {
	return fmt.Sprintf("point %d (c=%.4g): %s", e.Index, e.Concentration, e.Message)
}
