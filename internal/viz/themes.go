package viz

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/san-kum/acidbase/internal/chem"
)

var ErrUnknownTheme = errors.New("viz: unknown theme")

// Theme defines the color scheme of the terminal views.
type Theme struct {
	Name       string
	Text       lipgloss.Color
	Muted      lipgloss.Color
	Accent     lipgloss.Color
	Background lipgloss.Color
	Species    [chem.NumSpecies]lipgloss.Color
}

var (
	ThemePaper = Theme{
		Name:       "paper",
		Text:       lipgloss.Color("#f0f0f0"),
		Muted:      lipgloss.Color("#808080"),
		Accent:     lipgloss.Color("#ffd166"),
		Background: lipgloss.Color("#101418"),
		Species: [chem.NumSpecies]lipgloss.Color{
			chem.Solute:    lipgloss.Color("#6c8ebf"),
			chem.Product:   lipgloss.Color("#4caf50"),
			chem.Hydronium: lipgloss.Color("#e05a47"),
			chem.Hydroxide: lipgloss.Color("#3f6fd8"),
			chem.Solvent:   lipgloss.Color("#9fd3f0"),
		},
	}

	ThemeNight = Theme{
		Name:       "night",
		Text:       lipgloss.Color("#e0f0ff"),
		Muted:      lipgloss.Color("#4488aa"),
		Accent:     lipgloss.Color("#ff9ff3"),
		Background: lipgloss.Color("#001a33"),
		Species: [chem.NumSpecies]lipgloss.Color{
			chem.Solute:    lipgloss.Color("#feca57"),
			chem.Product:   lipgloss.Color("#5fd068"),
			chem.Hydronium: lipgloss.Color("#ff4757"),
			chem.Hydroxide: lipgloss.Color("#00a8cc"),
			chem.Solvent:   lipgloss.Color("#0077be"),
		},
	}

	ThemeMono = Theme{
		Name:       "mono",
		Text:       lipgloss.Color("#ffffff"),
		Muted:      lipgloss.Color("#888888"),
		Accent:     lipgloss.Color("#cccccc"),
		Background: lipgloss.Color("#000000"),
		Species: [chem.NumSpecies]lipgloss.Color{
			chem.Solute:    lipgloss.Color("#bbbbbb"),
			chem.Product:   lipgloss.Color("#999999"),
			chem.Hydronium: lipgloss.Color("#ffffff"),
			chem.Hydroxide: lipgloss.Color("#dddddd"),
			chem.Solvent:   lipgloss.Color("#666666"),
		},
	}

	Themes = []Theme{
		ThemePaper,
		ThemeNight,
		ThemeMono,
	}
)

// GetTheme returns a theme by name, falling back to paper.
func GetTheme(name string) Theme {
	for _, t := range Themes {
		if t.Name == name {
			return t
		}
	}
	return ThemePaper
}

// ThemeByName is GetTheme without the fallback.
func ThemeByName(name string) (Theme, error) {
	for _, t := range Themes {
		if t.Name == name {
			return t, nil
		}
	}
	return Theme{}, fmt.Errorf("%w: %q (available: %s)", ErrUnknownTheme, name, strings.Join(ThemeNames(), ", "))
}

func ThemeNames() []string {
	names := make([]string, len(Themes))
	for i, t := range Themes {
		names[i] = t.Name
	}
	return names
}

// NextTheme returns the theme after the named one, wrapping around.
func NextTheme(name string) Theme {
	for i, t := range Themes {
		if t.Name == name {
			return Themes[(i+1)%len(Themes)]
		}
	}
	return Themes[0]
}

// SpeciesHex returns the species color of the theme as #rrggbb.
func (t Theme) SpeciesHex(key chem.SpeciesKey) string {
	return string(t.Species[key])
}

// Faded blends a species color into the background by opacity.
func (t Theme) Faded(key chem.SpeciesKey, opacity float64) lipgloss.Color {
	fg, err := colorful.Hex(string(t.Species[key]))
	if err != nil {
		return t.Species[key]
	}
	bg, err := colorful.Hex(string(t.Background))
	if err != nil {
		return t.Species[key]
	}
	return lipgloss.Color(bg.BlendRgb(fg, opacity).Clamped().Hex())
}
