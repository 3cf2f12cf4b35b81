// Package particles maps species concentrations to stable particle layouts
// inside a circular lens.
//
// The number of particles grows geometrically with concentration, from
// BaseDots at BaseConcentration to MaxParticles at 1 mol/L. Positions are
// sampled once per index and kept until [Mapper.Reset], so a concentration
// that oscillates (a dragged slider) never makes existing particles jump.
package particles

import "math"

const (
	// MaxParticles bounds the particles drawn for one species.
	MaxParticles = 200

	// BaseConcentration is the concentration that yields BaseDots
	// particles; pure water's ions still show a few.
	BaseConcentration = 1e-7
	BaseDots          = 2

	// SolventOpacity is the fixed opacity of the water background.
	SolventOpacity = 0.15
)

var baseFactor = math.Pow(MaxParticles/BaseDots, 1/math.Log10(1/BaseConcentration))

// CountFor returns the number of particles shown for a concentration.
func CountFor(concentration float64) int {
	raiseFactor := math.Log10(concentration / BaseConcentration)
	n := math.Round(BaseDots * math.Pow(baseFactor, raiseFactor))
	if math.IsNaN(n) || math.IsInf(n, 0) || n < 0 {
		return 0
	}
	if n > MaxParticles {
		return MaxParticles
	}
	return int(n)
}
