// Package phcolor maps a continuous pH to a display color.
//
// Integer pH values return one of 15 fixed table entries unchanged; anything
// in between blends the two neighbouring entries channel by channel.
package phcolor

import (
	"image/color"
	"math"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/san-kum/acidbase/internal/assert"
)

const (
	MinPH = 0
	MaxPH = 14
)

// Color is an RGB color with channels in [0, 255]. Channels stay fractional
// after interpolation.
type Color struct {
	R, G, B float64
}

func rgb(r, g, b float64) Color { return Color{R: r, G: g, B: b} }

var table = [MaxPH + 1]Color{
	rgb(182, 70, 72),
	rgb(196, 80, 86),
	rgb(213, 83, 71),
	rgb(237, 123, 83),
	rgb(246, 152, 86),
	rgb(244, 158, 79),
	rgb(243, 160, 78),
	rgb(244, 182, 67),
	rgb(231, 201, 75),
	rgb(93, 118, 88),
	rgb(30, 92, 89),
	rgb(34, 90, 105),
	rgb(39, 87, 111),
	rgb(27, 67, 90),
	rgb(0, 34, 52),
}

// Table returns a copy of the integer pH colors, index 0 through 14.
func Table() [MaxPH + 1]Color {
	return table
}

// PHToColor returns the color for a pH in [0, 14].
func PHToColor(pH float64) Color {
	assert.That(pH >= MinPH && pH <= MaxPH, "pH %v outside [%d, %d]", pH, MinPH, MaxPH)
	if math.IsNaN(pH) {
		return table[7]
	}
	pH = math.Max(MinPH, math.Min(MaxPH, pH))

	if pH == math.Trunc(pH) {
		return table[int(pH)]
	}

	lo, hi := table[int(math.Floor(pH))], table[int(math.Ceil(pH))]
	return interpolate(lo, hi, pH-math.Floor(pH))
}

func interpolate(a, b Color, t float64) Color {
	return Color{
		R: a.R + (b.R-a.R)*t,
		G: a.G + (b.G-a.G)*t,
		B: a.B + (b.B-a.B)*t,
	}
}

// Colorful converts to a go-colorful color with channels in [0, 1].
func (c Color) Colorful() colorful.Color {
	return colorful.Color{R: c.R / 255, G: c.G / 255, B: c.B / 255}
}

// Hex returns the color as #rrggbb.
func (c Color) Hex() string {
	return c.Colorful().Clamped().Hex()
}

func (c Color) RGBA() color.RGBA {
	r, g, b := c.Colorful().Clamped().RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 0xff}
}
