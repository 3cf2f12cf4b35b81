package viz

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/acidbase/internal/bars"
	"github.com/san-kum/acidbase/internal/chem"
	"github.com/san-kum/acidbase/internal/phcolor"
)

const barColumnWidth = 13

var eighths = []rune{' ', '▁', '▂', '▃', '▄', '▅', '▆', '▇', '█'}

// RenderBars draws vertical bars rows cells tall. height maps a bar to the
// height actually drawn, which lets the app animate toward Bar.Height.
func RenderBars(bs []bars.Bar, height func(bars.Bar) float64, rows int, theme Theme) string {
	cols := make([]string, 0, len(bs))
	label := lipgloss.NewStyle().Foreground(theme.Muted).Width(barColumnWidth).Align(lipgloss.Center)
	symbol := lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Width(barColumnWidth).Align(lipgloss.Center)

	for _, b := range bs {
		h := height(b)
		if math.IsNaN(h) || h < 0 {
			h = 0
		}
		style := lipgloss.NewStyle().Foreground(theme.Species[b.Key])

		var col strings.Builder
		for r := 0; r < rows; r++ {
			level := float64(rows - r)
			cell := barCell(h, level)
			pad := strings.Repeat(" ", (barColumnWidth-3)/2)
			col.WriteString(pad + style.Render(strings.Repeat(string(cell), 3)) + pad + " \n")
		}
		col.WriteString(symbol.Render(b.Symbol) + "\n")
		col.WriteString(label.Render(b.Label))
		cols = append(cols, col.String())
	}

	return lipgloss.JoinHorizontal(lipgloss.Bottom, cols...)
}

// barCell returns the block for the cell whose top edge is at level.
func barCell(h, level float64) rune {
	switch {
	case h >= level:
		return eighths[8]
	case h <= level-1:
		return eighths[0]
	default:
		return eighths[int(math.Round((h-(level-1))*8))]
	}
}

// PHSwatch renders the pH value on its interpolated color.
func PHSwatch(ph float64) string {
	c := phcolor.PHToColor(ph)
	fg := lipgloss.Color("#000000")
	if l, _, _ := c.Colorful().Lab(); l < 0.5 {
		fg = lipgloss.Color("#ffffff")
	}
	return lipgloss.NewStyle().
		Background(lipgloss.Color(c.Hex())).
		Foreground(fg).
		Bold(true).
		Padding(0, 2).
		Render(fmt.Sprintf("pH %.2f", ph))
}

// SpeciesTable lists each species of the solution with its concentration.
func SpeciesTable(sol chem.Solution, theme Theme) string {
	var b strings.Builder
	c := sol.Concentrations()
	for _, sp := range sol.Species() {
		style := lipgloss.NewStyle().Foreground(theme.Species[sp.Key]).Width(6)
		b.WriteString(style.Render(sp.Symbol))
		b.WriteString(fmt.Sprintf(" %-14s %.4e\n", bars.ValueToLabel(c.Value(sp.Key)), c.Value(sp.Key)))
	}
	return b.String()
}
