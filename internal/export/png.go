package export

import (
	"fmt"
	"io"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/san-kum/acidbase/internal/bars"
	"github.com/san-kum/acidbase/internal/chem"
	"github.com/san-kum/acidbase/internal/phcolor"
	"github.com/san-kum/acidbase/internal/viz"
)

// BarChartPNG renders the log-scaled concentration bars of a solution as a
// PNG. Bar heights follow the same scale as the interactive view; the chart
// background carries the pH color.
func BarChartPNG(w io.Writer, sol chem.Solution, width, height int, theme viz.Theme) error {
	bs := bars.NewScaler(100).Bars(sol)
	if len(bs) == 0 {
		return fmt.Errorf("no species for %s", sol.Kind)
	}

	ph := sol.PH()
	bg := phcolor.PHToColor(ph).RGBA()

	values := make([]chart.Value, 0, len(bs))
	for _, b := range bs {
		values = append(values, chart.Value{
			Label: b.Symbol + " " + b.Label,
			Value: b.Height,
			Style: chart.Style{
				FillColor:   drawingColor(theme.SpeciesHex(b.Key)),
				StrokeColor: drawing.ColorBlack,
				StrokeWidth: 1,
			},
		})
	}

	graph := chart.BarChart{
		Title:      fmt.Sprintf("%s  pH %.2f", sol, ph),
		Width:      width,
		Height:     height,
		BarWidth:   width / (3 * len(bs)),
		Background: chart.Style{Padding: chart.Box{Top: 40, Left: 10, Right: 10, Bottom: 10}},
		Canvas:     chart.Style{FillColor: drawing.Color{R: bg.R, G: bg.G, B: bg.B, A: 0x40}},
		Bars:       values,
	}

	return graph.Render(chart.PNG, w)
}

func drawingColor(hex string) drawing.Color {
	c, err := colorful.Hex(hex)
	if err != nil {
		return drawing.ColorBlack
	}
	r, g, b := c.RGB255()
	return drawing.Color{R: r, G: g, B: b, A: 0xff}
}
