package sweep

import (
	"context"
	"errors"
	"math"
	"testing"

	"github.com/san-kum/acidbase/internal/chem"
)

func TestRunStrongAcid(t *testing.T) {
	r := New()
	for _, m := range DefaultMetrics() {
		r.AddMetric(m)
	}

	cfg := DefaultConfig(chem.StrongAcid)
	cfg.Points = 4
	result, err := r.Run(context.Background(), cfg)
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}

	if len(result.Points) != 4 {
		t.Fatalf("expected 4 points, got %d", len(result.Points))
	}

	ph := result.PH()
	want := []float64{3, 2, 1, 0}
	for i := range want {
		if math.Abs(ph[i]-want[i]) > 1e-9 {
			t.Errorf("point %d: expected pH %g, got %g", i, want[i], ph[i])
		}
	}

	if got := result.Metrics["ph_span"]; math.Abs(got-3) > 1e-9 {
		t.Errorf("expected ph_span 3, got %g", got)
	}
	if got := result.Metrics["mean_dissociation"]; math.Abs(got-100) > 1e-9 {
		t.Errorf("expected 100%% dissociation, got %g", got)
	}
	if got := result.Metrics["neutral_fraction"]; got != 0 {
		t.Errorf("expected no neutral points, got %g", got)
	}
}

func TestRunColumns(t *testing.T) {
	cfg := DefaultConfig(chem.WeakBase)
	cfg.Strength = 1.8e-5
	cfg.Points = 10

	result, err := New().Run(context.Background(), cfg)
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}

	oh := result.Column(chem.Hydroxide)
	for i := 1; i < len(oh); i++ {
		if oh[i] < oh[i-1] {
			t.Errorf("hydroxide decreased at point %d", i)
		}
	}
	if math.Abs(result.Points[0].Concentration-chem.MinConcentration) > 1e-15 {
		t.Errorf("expected first point at %g, got %g", chem.MinConcentration, result.Points[0].Concentration)
	}
	if math.Abs(result.Points[9].Concentration-chem.MaxConcentration) > 1e-12 {
		t.Errorf("expected last point at %g, got %g", chem.MaxConcentration, result.Points[9].Concentration)
	}
}

func TestRunInvalidConfig(t *testing.T) {
	tests := []struct {
		name string
		cfg  Config
	}{
		{"zero points", Config{Kind: chem.WeakAcid, Strength: 1e-5, MinC: 1e-3, MaxC: 1, Points: 0}},
		{"inverted range", Config{Kind: chem.WeakAcid, Strength: 1e-5, MinC: 1, MaxC: 1e-3, Points: 5}},
		{"out of domain", Config{Kind: chem.WeakAcid, Strength: 1e-5, MinC: 1e-3, MaxC: 10, Points: 5}},
		{"bad strength", Config{Kind: chem.WeakAcid, Strength: 1e3, MinC: 1e-3, MaxC: 1, Points: 5}},
		{"unknown kind", Config{Kind: chem.Kind(12), MinC: 1e-3, MaxC: 1, Points: 5}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := New().Run(context.Background(), tt.cfg); err == nil {
				t.Error("expected error, got nil")
			}
		})
	}
}

func TestRunCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	result, err := New().Run(ctx, DefaultConfig(chem.WeakAcid))
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
	if len(result.Points) != 0 {
		t.Errorf("expected no points, got %d", len(result.Points))
	}
}

type countingObserver struct{ n int }

func (c *countingObserver) OnPoint(i int, p Point) { c.n++ }

func TestRunObserver(t *testing.T) {
	r := New()
	obs := &countingObserver{}
	r.AddObserver(obs)

	cfg := DefaultConfig(chem.Water)
	cfg.Points = 7
	if _, err := r.Run(context.Background(), cfg); err != nil {
		t.Fatalf("run failed: %v", err)
	}
	if obs.n != 7 {
		t.Errorf("expected 7 observations, got %d", obs.n)
	}
}

func TestNeutralityWater(t *testing.T) {
	m := NewNeutrality(0.5)
	m.Observe(Point{PH: 7})
	m.Observe(Point{PH: 9})
	if m.Value() != 0.5 {
		t.Errorf("expected 0.5, got %g", m.Value())
	}
	m.Reset()
	if m.Value() != 0 {
		t.Error("expected zero after reset")
	}
}
