package particles

import (
	"math"
	"math/rand"

	"github.com/san-kum/acidbase/internal/chem"
)

// Point is a position relative to the lens center.
type Point struct {
	X, Y float64
}

// Surface receives the particles of one frame.
type Surface interface {
	// Ready reports whether the surface can be drawn on yet.
	Ready() bool
	FillSolvent(opacity float64)
	Dot(key chem.SpeciesKey, p Point)
}

// layer is a fixed-capacity position buffer. sampled is the high-water mark
// of assigned positions; count is how many are shown.
type layer struct {
	positions [MaxParticles]Point
	sampled   int
	count     int
}

type Mapper struct {
	radius  float64
	rng     *rand.Rand
	layers  [chem.NumSpecies]layer
	kind    chem.Kind
	hasKind bool
	visible bool
}

func New(radius float64, seed int64) *Mapper {
	return &Mapper{
		radius:  radius,
		rng:     rand.New(rand.NewSource(seed)),
		visible: true,
	}
}

func (m *Mapper) Radius() float64 { return m.radius }
func (m *Mapper) Visible() bool   { return m.visible }

// SetVisible gates Update and Draw. Becoming visible again starts a new
// layout, since the hidden mapper missed every change in between.
func (m *Mapper) SetVisible(visible bool) {
	if visible && !m.visible {
		m.Reset()
	}
	m.visible = visible
}

// Reset drops every particle without releasing the buffers.
func (m *Mapper) Reset() {
	for i := range m.layers {
		m.layers[i].sampled = 0
		m.layers[i].count = 0
	}
}

// Update brings the particle counts in line with sol. Switching to another
// archetype resets the layout first.
func (m *Mapper) Update(sol chem.Solution) {
	if !m.visible {
		return
	}
	if !m.hasKind || sol.Kind != m.kind {
		m.Reset()
		m.kind, m.hasKind = sol.Kind, true
	}

	c := sol.Concentrations()
	for _, sp := range sol.Species() {
		if sp.IsSolvent() {
			continue
		}
		m.grow(&m.layers[sp.Key], CountFor(c.Value(sp.Key)))
	}
}

func (m *Mapper) grow(l *layer, n int) {
	for i := l.sampled; i < n; i++ {
		l.positions[i] = m.sample()
	}
	if n > l.sampled {
		l.sampled = n
	}
	l.count = n
}

// sample picks a point uniformly by area inside the lens.
func (m *Mapper) sample() Point {
	r := m.radius * math.Sqrt(m.rng.Float64())
	theta := 2 * math.Pi * m.rng.Float64()
	return Point{X: r * math.Cos(theta), Y: r * math.Sin(theta)}
}

// Count returns the number of particles shown for a species.
func (m *Mapper) Count(key chem.SpeciesKey) int {
	return m.layers[key].count
}

// Positions returns a copy of the shown positions of a species.
func (m *Mapper) Positions(key chem.SpeciesKey) []Point {
	l := &m.layers[key]
	out := make([]Point, l.count)
	copy(out, l.positions[:l.count])
	return out
}

// Draw paints the solvent once and then every shown particle.
func (m *Mapper) Draw(s Surface) {
	if !m.visible || !m.hasKind || !s.Ready() {
		return
	}
	s.FillSolvent(SolventOpacity)
	for _, sp := range chem.SpeciesOf(m.kind) {
		if sp.IsSolvent() {
			continue
		}
		l := &m.layers[sp.Key]
		for i := 0; i < l.count; i++ {
			s.Dot(sp.Key, l.positions[i])
		}
	}
}
