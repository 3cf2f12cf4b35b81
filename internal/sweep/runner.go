// Package sweep evaluates an archetype across a range of concentrations.
package sweep

import (
	"context"
	"fmt"
	"math"

	"github.com/san-kum/acidbase/internal/chem"
)

type Runner struct {
	metrics   []Metric
	observers []Observer
}

func New() *Runner {
	return &Runner{
		metrics:   make([]Metric, 0),
		observers: make([]Observer, 0),
	}
}

func (r *Runner) AddMetric(m Metric)     { r.metrics = append(r.metrics, m) }
func (r *Runner) AddObserver(o Observer) { r.observers = append(r.observers, o) }

func (r *Runner) Run(ctx context.Context, cfg Config) (*Result, error) {
	if err := validateConfig(cfg); err != nil {
		return nil, err
	}

	result := &Result{
		Points:  make([]Point, 0, cfg.Points),
		Metrics: make(map[string]float64),
	}

	for _, m := range r.metrics {
		m.Reset()
	}

	lo, hi := math.Log10(cfg.MinC), math.Log10(cfg.MaxC)
	for i := 0; i < cfg.Points; i++ {
		select {
		case <-ctx.Done():
			return result, ctx.Err()
		default:
		}

		c := cfg.MinC
		if cfg.Points > 1 {
			c = math.Pow(10, lo+(hi-lo)*float64(i)/float64(cfg.Points-1))
		}
		sol := chem.Solution{Kind: cfg.Kind, Concentration: c, Strength: cfg.Strength}
		values := sol.Concentrations()
		p := Point{Concentrations: values, Concentration: c, PH: chem.PH(values.Hydronium)}

		if math.IsNaN(p.PH) || math.IsInf(p.PH, 0) {
			return result, SweepError{Index: i, Concentration: c, Message: "non-finite pH"}
		}

		for _, m := range r.metrics {
			m.Observe(p)
		}
		for _, obs := range r.observers {
			obs.OnPoint(i, p)
		}
		result.Points = append(result.Points, p)
	}

	for _, m := range r.metrics {
		result.Metrics[m.Name()] = m.Value()
	}

	return result, nil
}

func validateConfig(cfg Config) error {
	if !cfg.Kind.Valid() {
		return fmt.Errorf("%w: %d", chem.ErrUnknownKind, int(cfg.Kind))
	}
	if cfg.Points <= 0 {
		return fmt.Errorf("points must be positive, got %d", cfg.Points)
	}
	if cfg.MinC <= 0 || cfg.MaxC < cfg.MinC {
		return fmt.Errorf("invalid concentration range [%g, %g]", cfg.MinC, cfg.MaxC)
	}
	for _, c := range []float64{cfg.MinC, cfg.MaxC} {
		sol := chem.Solution{Kind: cfg.Kind, Concentration: c, Strength: cfg.Strength}
		if err := sol.Validate(); err != nil {
			return err
		}
	}
	return nil
}
