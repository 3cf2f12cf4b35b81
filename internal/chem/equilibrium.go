package chem

import "math"

const (
	// Kw is the water equilibrium constant at 25 C.
	Kw = 1e-14

	// WaterConcentration is the molar concentration of pure water, mol/L.
	WaterConcentration = 55.6

	MinConcentration = 1e-3
	MaxConcentration = 1.0

	MinWeakStrength = 1e-10
	MaxWeakStrength = 100.0

	// StrongStrength is the sentinel strength carried by strong solutions.
	StrongStrength = MaxWeakStrength + 1
)

// Concentrations holds the five equilibrium values of a solution, mol/L.
type Concentrations struct {
	Solute    float64 `json:"solute"`
	Product   float64 `json:"product"`
	Hydronium float64 `json:"h3o"`
	Hydroxide float64 `json:"oh"`
	Water     float64 `json:"h2o"`
}

type formula func(c, k float64) Concentrations

var formulas = [numKinds]formula{
	Water:      water,
	StrongAcid: strongAcid,
	WeakAcid:   weakAcid,
	StrongBase: strongBase,
	WeakBase:   weakBase,
}

// Compute returns the equilibrium concentrations of an archetype for a total
// solute concentration c and strength k. An invalid kind panics.
func Compute(kind Kind, c, k float64) Concentrations {
	if !kind.Valid() {
		panic("chem: compute on " + kind.String())
	}
	return formulas[kind](c, k)
}

func water(_, _ float64) Concentrations {
	h := math.Sqrt(Kw)
	return Concentrations{
		Hydronium: h,
		Hydroxide: h,
		Water:     WaterConcentration,
	}
}

func strongAcid(c, _ float64) Concentrations {
	return Concentrations{
		Product:   c,
		Hydronium: c,
		Hydroxide: Kw / c,
		Water:     WaterConcentration - c,
	}
}

func weakAcid(c, ka float64) Concentrations {
	x := positiveRoot(c, ka)
	return Concentrations{
		Solute:    c - x,
		Product:   x,
		Hydronium: x,
		Hydroxide: Kw / x,
		Water:     WaterConcentration - x,
	}
}

func strongBase(c, _ float64) Concentrations {
	return Concentrations{
		Product:   c,
		Hydronium: Kw / c,
		Hydroxide: c,
		Water:     WaterConcentration,
	}
}

func weakBase(c, kb float64) Concentrations {
	y := positiveRoot(c, kb)
	return Concentrations{
		Solute:    c - y,
		Product:   y,
		Hydronium: Kw / y,
		Hydroxide: y,
		Water:     WaterConcentration - y,
	}
}

// positiveRoot solves x^2 + k*x - k*c = 0. The discriminant is non-negative
// for k, c >= 0.
func positiveRoot(c, k float64) float64 {
	return (-k + math.Sqrt(k*k+4*k*c)) / 2
}

// PH converts a hydronium concentration to pH, rounded to two decimals.
// The log is rounded before it is negated, so ties move toward the lower pH.
func PH(hydronium float64) float64 {
	ph := -roundHalfUp(100*math.Log10(hydronium)) / 100
	if ph == 0 {
		// no -0 on display
		return 0
	}
	return ph
}

func roundHalfUp(x float64) float64 {
	return math.Floor(x + 0.5)
}
