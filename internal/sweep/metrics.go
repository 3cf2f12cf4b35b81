package sweep

import "math"

// PHSpan is the difference between the highest and lowest pH seen.
type PHSpan struct {
	min, max float64
	samples  int
}

func NewPHSpan() *PHSpan { return &PHSpan{} }

func (m *PHSpan) Name() string { return "ph_span" }

func (m *PHSpan) Observe(p Point) {
	if m.samples == 0 {
		m.min, m.max = p.PH, p.PH
	}
	m.min = math.Min(m.min, p.PH)
	m.max = math.Max(m.max, p.PH)
	m.samples++
}

func (m *PHSpan) Value() float64 {
	if m.samples == 0 {
		return 0
	}
	return m.max - m.min
}

func (m *PHSpan) Reset() { *m = PHSpan{} }

// Dissociation averages the percentage of solute converted to product.
type Dissociation struct {
	sum     float64
	samples int
}

func NewDissociation() *Dissociation { return &Dissociation{} }

func (m *Dissociation) Name() string { return "mean_dissociation" }

func (m *Dissociation) Observe(p Point) {
	m.samples++
	if p.Concentration > 0 {
		m.sum += 100 * p.Product / p.Concentration
	}
}

func (m *Dissociation) Value() float64 {
	if m.samples == 0 {
		return 0
	}
	return m.sum / float64(m.samples)
}

func (m *Dissociation) Reset() { *m = Dissociation{} }

// Neutrality is the fraction of points within Tolerance pH units of 7.
type Neutrality struct {
	Tolerance float64
	hits      int
	samples   int
}

func NewNeutrality(tolerance float64) *Neutrality {
	return &Neutrality{Tolerance: tolerance}
}

func (m *Neutrality) Name() string { return "neutral_fraction" }

func (m *Neutrality) Observe(p Point) {
	m.samples++
	if math.Abs(p.PH-7) <= m.Tolerance {
		m.hits++
	}
}

func (m *Neutrality) Value() float64 {
	if m.samples == 0 {
		return 0
	}
	return float64(m.hits) / float64(m.samples)
}

func (m *Neutrality) Reset() {
	m.hits = 0
	m.samples = 0
}

// DefaultMetrics returns the metrics recorded with every stored sweep.
func DefaultMetrics() []Metric {
	return []Metric{
		NewPHSpan(),
		NewDissociation(),
		NewNeutrality(0.5),
	}
}
