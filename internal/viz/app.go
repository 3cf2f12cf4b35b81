package viz

import (
	"fmt"
	"math"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/harmonica"
	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/acidbase/internal/bars"
	"github.com/san-kum/acidbase/internal/chem"
	"github.com/san-kum/acidbase/internal/config"
	"github.com/san-kum/acidbase/internal/particles"
)

const (
	fps           = 30
	lensWidth     = 30
	lensHeight    = 15
	concStep      = 0.05
	strengthStep  = 0.25
	springFreq    = 6.0
	springDamping = 0.8
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).MarginBottom(1)
	panelStyle  = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	helpStyle   = lipgloss.NewStyle().MarginTop(1)
)

type TickMsg time.Time

// App is the interactive front end. It owns the solution set and is the
// only caller of the particle mapper.
type App struct {
	set           *chem.Set
	mapper        *particles.Mapper
	lens          *Lens
	scaler        bars.Scaler
	rows          int
	spring        harmonica.Spring
	barPos        [chem.NumSpecies]float64
	barVel        [chem.NumSpecies]float64
	showParticles bool
	showBars      bool
	showHelp      bool
	theme         Theme
	status        string
}

func NewApp(cfg *config.Config) (App, error) {
	set, err := cfg.Set()
	if err != nil {
		return App{}, err
	}
	rows := int(math.Round(cfg.BarHeight))
	a := App{
		set:           set,
		mapper:        particles.New(cfg.LensRadius, cfg.Seed),
		lens:          NewLens(lensWidth, lensHeight, cfg.LensRadius),
		scaler:        bars.NewScaler(float64(rows)),
		rows:          rows,
		spring:        harmonica.NewSpring(harmonica.FPS(fps), springFreq, springDamping),
		showParticles: true,
		showBars:      true,
		theme:         GetTheme(cfg.Theme),
	}
	a.refresh()
	return a, nil
}

func tick() tea.Cmd {
	return tea.Tick(time.Second/fps, func(t time.Time) tea.Msg { return TickMsg(t) })
}

func (a App) Init() tea.Cmd { return tick() }

func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return a.handleKey(msg)
	case TickMsg:
		a.animate()
		return a, tick()
	}
	return a, nil
}

func (a App) handleKey(msg tea.KeyMsg) (App, tea.Cmd) {
	a.status = ""
	switch key := msg.String(); key {
	case "q", "ctrl+c":
		return a, tea.Quit
	case "1", "2", "3", "4", "5":
		a.set.Select(chem.Kinds()[key[0]-'1'])
	case "right", "l":
		a.scaleConcentration(concStep)
	case "left", "h":
		a.scaleConcentration(-concStep)
	case "up", "k":
		a.scaleStrength(strengthStep)
	case "down", "j":
		a.scaleStrength(-strengthStep)
	case "p":
		a.showParticles = !a.showParticles
		a.mapper.SetVisible(a.showParticles)
	case "b":
		a.showBars = !a.showBars
	case "t":
		a.theme = NextTheme(a.theme.Name)
	case "r":
		a.restoreDefaults()
	case "?":
		a.showHelp = !a.showHelp
	}
	a.refresh()
	return a, nil
}

// scaleConcentration moves the selected concentration by decades, clamped
// to the model's domain.
func (a *App) scaleConcentration(decades float64) {
	sol := a.set.Selected()
	if sol.Kind == chem.Water {
		return
	}
	c := clamp(sol.Concentration*math.Pow(10, decades), chem.MinConcentration, chem.MaxConcentration)
	if err := a.set.SetConcentration(sol.Kind, c); err != nil {
		a.status = err.Error()
	}
}

func (a *App) scaleStrength(decades float64) {
	sol := a.set.Selected()
	if !sol.Kind.IsWeak() {
		return
	}
	k := clamp(sol.Strength*math.Pow(10, decades), chem.MinWeakStrength, chem.MaxWeakStrength)
	if err := a.set.SetStrength(sol.Kind, k); err != nil {
		a.status = err.Error()
	}
}

func (a *App) restoreDefaults() {
	kind := a.set.SelectedKind()
	def := chem.NewSolution(kind)
	a.set.SetConcentration(kind, def.Concentration)
	if kind.IsWeak() {
		a.set.SetStrength(kind, def.Strength)
	}
}

func (a *App) refresh() {
	a.mapper.Update(a.set.Selected())
}

func (a *App) animate() {
	for _, b := range a.scaler.Bars(a.set.Selected()) {
		a.barPos[b.Key], a.barVel[b.Key] = a.spring.Update(a.barPos[b.Key], a.barVel[b.Key], b.Height)
	}
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}

func (a App) View() string {
	sol := a.set.Selected()
	muted := lipgloss.NewStyle().Foreground(a.theme.Muted)

	var s strings.Builder
	s.WriteString(headerStyle.Foreground(a.theme.Accent).Render("ACID/BASE SOLUTIONS") + "\n")
	s.WriteString(a.tabs() + "\n\n")

	panels := make([]string, 0, 2)
	if a.showParticles {
		a.lens.Clear()
		a.mapper.Draw(a.lens)
		panels = append(panels, panelStyle.BorderForeground(a.theme.Muted).Render(a.lens.Render(a.theme)))
	}
	if a.showBars {
		chart := RenderBars(a.scaler.Bars(sol), func(b bars.Bar) float64 { return a.barPos[b.Key] }, a.rows, a.theme)
		panels = append(panels, panelStyle.BorderForeground(a.theme.Muted).Render(chart))
	}
	if len(panels) > 0 {
		s.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, panels...) + "\n")
	}

	s.WriteString(PHSwatch(sol.PH()) + "  " + a.parameters(sol) + "\n")
	if a.status != "" {
		s.WriteString(lipgloss.NewStyle().Foreground(a.theme.Species[chem.Hydronium]).Render(a.status) + "\n")
	}
	s.WriteString(helpStyle.Render(muted.Render("1-5:Solution ←→:Conc ↑↓:Strength P:Particles B:Bars T:Theme R:Reset ?:Help Q:Quit")))

	if a.showHelp {
		return helpOverlay + "\n" + s.String()
	}
	return s.String()
}

func (a App) tabs() string {
	active := lipgloss.NewStyle().Bold(true).Foreground(a.theme.Accent).Underline(true)
	idle := lipgloss.NewStyle().Foreground(a.theme.Muted)
	parts := make([]string, 0, len(chem.Kinds()))
	for i, k := range chem.Kinds() {
		label := fmt.Sprintf("%d %s", i+1, strings.ReplaceAll(k.String(), "_", " "))
		if k == a.set.SelectedKind() {
			parts = append(parts, active.Render(label))
		} else {
			parts = append(parts, idle.Render(label))
		}
	}
	return strings.Join(parts, "   ")
}

func (a App) parameters(sol chem.Solution) string {
	text := lipgloss.NewStyle().Foreground(a.theme.Text)
	switch {
	case sol.Kind == chem.Water:
		return text.Render("pure water")
	case sol.Kind.IsWeak():
		name := "Ka"
		if sol.Kind.IsBase() {
			name = "Kb"
		}
		return text.Render(fmt.Sprintf("C = %.2e mol/L   %s = %.2e   %.2f%% dissociated",
			sol.Concentration, name, sol.Strength, sol.PercentDissociated()))
	default:
		return text.Render(fmt.Sprintf("C = %.2e mol/L   strong", sol.Concentration))
	}
}

const helpOverlay = `
╔══════════════════════════════════════╗
║          KEYBOARD SHORTCUTS          ║
╠══════════════════════════════════════╣
║  1-5      - Select solution          ║
║  Left/H   - Lower concentration      ║
║  Right/L  - Raise concentration      ║
║  Up/K     - Raise strength (weak)    ║
║  Down/J   - Lower strength (weak)    ║
║  P        - Toggle particle view     ║
║  B        - Toggle bar chart         ║
║  T        - Cycle themes             ║
║  R        - Restore defaults         ║
║  ?        - Toggle this help         ║
║  Q        - Quit                     ║
╚══════════════════════════════════════╝`

// RunInteractive starts the TUI with the given configuration.
func RunInteractive(cfg *config.Config) error {
	app, err := NewApp(cfg)
	if err != nil {
		return err
	}
	p := tea.NewProgram(app, tea.WithAltScreen())
	_, err = p.Run()
	return err
}
