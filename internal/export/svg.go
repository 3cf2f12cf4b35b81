package export

import (
	"fmt"
	"math"
	"strings"

	"github.com/san-kum/acidbase/internal/bars"
	"github.com/san-kum/acidbase/internal/chem"
	"github.com/san-kum/acidbase/internal/particles"
	"github.com/san-kum/acidbase/internal/phcolor"
	"github.com/san-kum/acidbase/internal/viz"
)

// svgSurface writes particles as SVG circles. It implements particles.Surface.
type svgSurface struct {
	sb     *strings.Builder
	theme  viz.Theme
	size   float64
	radius float64
}

func (s *svgSurface) Ready() bool { return s.sb != nil && s.radius > 0 }

func (s *svgSurface) FillSolvent(opacity float64) {
	c := s.size / 2
	s.sb.WriteString(fmt.Sprintf(`<circle cx="%.1f" cy="%.1f" r="%.1f" fill="%s" fill-opacity="%.2f" stroke="%s"/>
`, c, c, c-1, s.theme.SpeciesHex(chem.Solvent), opacity, s.theme.Muted))
}

func (s *svgSurface) Dot(key chem.SpeciesKey, p particles.Point) {
	scale := (s.size/2 - 1) / s.radius
	cx := s.size/2 + p.X*scale
	cy := s.size/2 - p.Y*scale
	s.sb.WriteString(fmt.Sprintf(`<circle class="%s" cx="%.1f" cy="%.1f" r="%.1f" fill="%s"/>
`, key, cx, cy, math.Max(1.5, s.size/120), s.theme.SpeciesHex(key)))
}

// LensToSVG renders the mapper's current particles inside a size x size lens.
func LensToSVG(m *particles.Mapper, size int, theme viz.Theme) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="%s"/>
`, size, size, size, size, theme.Background))

	m.Draw(&svgSurface{sb: &sb, theme: theme, size: float64(size), radius: m.Radius()})

	sb.WriteString("</svg>")
	return sb.String()
}

// BarsToSVG renders the concentration bar chart of a solution with a pH
// swatch on the right.
func BarsToSVG(sol chem.Solution, width, height int, theme viz.Theme) string {
	const (
		padding   = 20.0
		labelArea = 40.0
		swatch    = 60.0
	)
	plotH := float64(height) - 2*padding - labelArea
	bs := bars.NewScaler(plotH).Bars(sol)
	slot := (float64(width) - 2*padding - swatch) / float64(len(bs))
	baseline := padding + plotH

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="%s"/>
<g font-family="sans-serif" font-size="11" text-anchor="middle">
`, width, height, width, height, theme.Background))

	for i, b := range bs {
		x := padding + float64(i)*slot + slot*0.2
		w := slot * 0.6
		sb.WriteString(fmt.Sprintf(`<rect class="bar" x="%.1f" y="%.1f" width="%.1f" height="%.1f" fill="%s"/>
`, x, baseline-b.Height, w, b.Height, theme.SpeciesHex(b.Key)))
		sb.WriteString(fmt.Sprintf(`<text x="%.1f" y="%.1f" fill="%s">%s</text>
<text x="%.1f" y="%.1f" fill="%s">%s</text>
`, x+w/2, baseline+16, theme.Text, escape(b.Symbol), x+w/2, baseline+32, theme.Muted, escape(b.Label)))
	}

	ph := sol.PH()
	sx := float64(width) - padding - swatch
	sb.WriteString(fmt.Sprintf(`<rect class="ph" x="%.1f" y="%.1f" width="%.1f" height="%.1f" fill="%s"/>
<text x="%.1f" y="%.1f" fill="%s">pH %.2f</text>
`, sx, padding, swatch, plotH, phcolor.PHToColor(ph).Hex(), sx+swatch/2, baseline+16, theme.Text, ph))

	sb.WriteString("</g>\n</svg>")
	return sb.String()
}

func escape(s string) string {
	return strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;").Replace(s)
}
