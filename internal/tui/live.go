package tui

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/san-kum/acidbase/internal/bars"
	"github.com/san-kum/acidbase/internal/chem"
	"github.com/san-kum/acidbase/internal/particles"
	"github.com/san-kum/acidbase/internal/sweep"
	"github.com/san-kum/acidbase/internal/viz"
)

const (
	width       = 36
	height      = 14
	barRows     = 8
	clearScreen = "\033[2J\033[H"
	hideCursor  = "\033[?25l"
	showCursor  = "\033[?25h"
)

// LiveRenderer redraws the lens and bars as a sweep walks through
// concentrations. It implements sweep.Observer.
type LiveRenderer struct {
	out       io.Writer
	kind      chem.Kind
	strength  float64
	frameRate int
	lastFrame time.Time
	mapper    *particles.Mapper
	lens      *viz.Lens
	scaler    bars.Scaler
	theme     viz.Theme
	frames    int
}

func NewLiveRenderer(cfg sweep.Config, frameRate int, seed int64, theme viz.Theme) *LiveRenderer {
	if frameRate <= 0 {
		frameRate = 30
	}
	return &LiveRenderer{
		out:       os.Stdout,
		kind:      cfg.Kind,
		strength:  cfg.Strength,
		frameRate: frameRate,
		mapper:    particles.New(1, seed),
		lens:      viz.NewLens(width, height, 1),
		scaler:    bars.NewScaler(barRows),
		theme:     theme,
	}
}

// SetOutput redirects frames away from stdout.
func (r *LiveRenderer) SetOutput(w io.Writer) { r.out = w }

// Frames reports how many frames were drawn.
func (r *LiveRenderer) Frames() int { return r.frames }

func (r *LiveRenderer) OnPoint(i int, p sweep.Point) {
	sol := chem.Solution{Kind: r.kind, Concentration: p.Concentration, Strength: r.strength}
	r.mapper.Update(sol)

	if r.frameRate > 0 && i > 0 {
		if time.Since(r.lastFrame) < time.Second/time.Duration(r.frameRate) {
			return
		}
	}
	r.lastFrame = time.Now()
	r.render(i, sol, p)
}

func (r *LiveRenderer) render(i int, sol chem.Solution, p sweep.Point) {
	r.lens.Clear()
	r.mapper.Draw(r.lens)

	var b strings.Builder
	b.WriteString(clearScreen)
	b.WriteString(fmt.Sprintf("  %s  #%d  C=%.3g M  pH %.2f  %s\n\n", r.kind, i, p.Concentration, p.PH, viz.PHSwatch(p.PH)))
	for _, line := range strings.Split(r.lens.Render(r.theme), "\n") {
		b.WriteString("  " + line + "\n")
	}
	b.WriteString("\n")
	bs := r.scaler.Bars(sol)
	b.WriteString(viz.RenderBars(bs, func(bar bars.Bar) float64 { return bar.Height }, barRows, r.theme))
	b.WriteString("\n")

	fmt.Fprint(r.out, b.String())
	r.frames++
}

func (r *LiveRenderer) Start() { fmt.Fprint(r.out, hideCursor) }
func (r *LiveRenderer) Stop()  { fmt.Fprint(r.out, showCursor) }
