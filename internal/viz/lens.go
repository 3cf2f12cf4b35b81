package viz

import (
	"math"

	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/acidbase/internal/chem"
	"github.com/san-kum/acidbase/internal/particles"
)

// Lens is a circular braille viewport that particles are drawn into.
// It implements particles.Surface.
type Lens struct {
	canvas  *Canvas
	radius  float64
	solvent float64
}

// NewLens sizes a lens of w x h terminal cells showing a disc of the given
// model radius.
func NewLens(w, h int, radius float64) *Lens {
	return &Lens{canvas: NewCanvas(w, h), radius: radius}
}

func (l *Lens) Canvas() *Canvas { return l.canvas }

func (l *Lens) Ready() bool {
	return l.canvas != nil && l.canvas.Width > 0 && l.canvas.Height > 0 && l.radius > 0
}

func (l *Lens) Clear() {
	l.canvas.Clear()
	l.solvent = 0
}

// geometry returns the sub-pixel center and scale of the disc.
func (l *Lens) geometry() (cx, cy int, scale float64) {
	sw, sh := l.canvas.Width*2, l.canvas.Height*4
	rPix := math.Min(float64(sw), float64(sh))/2 - 1
	return sw / 2, sh / 2, rPix / l.radius
}

// FillSolvent outlines the disc in the solvent color.
func (l *Lens) FillSolvent(opacity float64) {
	l.solvent = opacity
	cx, cy, scale := l.geometry()
	l.canvas.DrawCircle(cx, cy, int(math.Round(l.radius*scale)), int(chem.Solvent))
}

func (l *Lens) Dot(key chem.SpeciesKey, p particles.Point) {
	cx, cy, scale := l.geometry()
	x := cx + int(math.Round(p.X*scale))
	y := cy - int(math.Round(p.Y*scale))
	l.canvas.Set(x, y, int(key))
}

// Render colors the lens with the theme's species palette. The solvent is
// faded by the opacity it was filled with.
func (l *Lens) Render(theme Theme) string {
	return l.canvas.Render(func(ink int) lipgloss.Style {
		key := chem.SpeciesKey(ink)
		if key == chem.Solvent {
			return lipgloss.NewStyle().Foreground(theme.Faded(key, l.solvent))
		}
		return lipgloss.NewStyle().Foreground(theme.Species[key])
	})
}
