// Package bars scales concentrations to bar heights and labels.
package bars

import (
	"fmt"
	"math"

	"github.com/san-kum/acidbase/internal/chem"
)

const (
	// Negligible is the label for concentrations below NegligibleThreshold.
	Negligible          = "negligible"
	NegligibleThreshold = 1e-13

	labelDecimals = 1
)

// Scaler maps concentrations onto a log axis spanning ten decades,
// 1e-8 at the baseline and 1e2 at MaxHeight.
type Scaler struct {
	MaxHeight float64
}

func NewScaler(maxHeight float64) Scaler {
	return Scaler{MaxHeight: maxHeight}
}

// ValueToHeight returns the bar height for v. Zero and other values with no
// finite logarithm give a zero-height bar.
func (s Scaler) ValueToHeight(v float64) float64 {
	h := math.Abs(math.Log10(v)+8) * s.MaxHeight / 10
	if math.IsNaN(h) || math.IsInf(h, 0) {
		return 0
	}
	return h
}

// ValueToLabel formats v as "M.m x 10^E".
func ValueToLabel(v float64) string {
	switch {
	case v < NegligibleThreshold:
		return Negligible
	case v <= 1:
		mantissa, exponent := scientific(v, labelDecimals)
		if exponent == 0 {
			return fmt.Sprintf("%.*f", labelDecimals, mantissa)
		}
		return fmt.Sprintf("%.*f x 10^%d", labelDecimals, mantissa, exponent)
	default:
		return fmt.Sprintf("%.*f", labelDecimals, v)
	}
}

// scientific splits v into a mantissa rounded to decimals places and a
// base-10 exponent. A mantissa that rounds up to 10 carries into the exponent.
func scientific(v float64, decimals int) (float64, int) {
	exponent := int(math.Floor(math.Log10(v)))
	scale := math.Pow(10, float64(decimals))
	mantissa := math.Round(v*math.Pow(10, float64(-exponent))*scale) / scale
	if math.Abs(mantissa-10) < math.Pow(10, float64(-decimals)) {
		mantissa = 1
		exponent++
	}
	return mantissa, exponent
}

// Bar is one column of the concentration chart.
type Bar struct {
	Key    chem.SpeciesKey
	Symbol string
	Value  float64
	Height float64
	Label  string
}

// Bars builds one bar per species of the solution, in display order.
func (s Scaler) Bars(sol chem.Solution) []Bar {
	c := sol.Concentrations()
	species := sol.Species()
	out := make([]Bar, 0, len(species))
	for _, sp := range species {
		v := c.Value(sp.Key)
		out = append(out, Bar{
			Key:    sp.Key,
			Symbol: sp.Symbol,
			Value:  v,
			Height: s.ValueToHeight(v),
			Label:  ValueToLabel(v),
		})
	}
	return out
}
