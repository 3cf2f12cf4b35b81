package sweep

import (
	"context"
	"errors"
	"testing"

	"github.com/san-kum/acidbase/internal/chem"
)

func TestBatchMatchesSequential(t *testing.T) {
	var cfgs []Config
	for _, k := range chem.Kinds() {
		cfg := DefaultConfig(k)
		cfg.Points = 9
		cfgs = append(cfgs, cfg)
	}

	results, err := NewBatch(nil).Run(context.Background(), cfgs)
	if err != nil {
		t.Fatal(err)
	}
	if len(results) != len(cfgs) {
		t.Fatalf("results = %d, want %d", len(results), len(cfgs))
	}

	for i, cfg := range cfgs {
		r := New()
		for _, m := range DefaultMetrics() {
			r.AddMetric(m)
		}
		want, err := r.Run(context.Background(), cfg)
		if err != nil {
			t.Fatal(err)
		}
		for j := range want.Points {
			if results[i].Points[j] != want.Points[j] {
				t.Fatalf("%s point %d differs", cfg.Kind, j)
			}
		}
		for name, v := range want.Metrics {
			if results[i].Metrics[name] != v {
				t.Errorf("%s metric %s = %v, want %v", cfg.Kind, name, results[i].Metrics[name], v)
			}
		}
	}
}

func TestBatchCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewBatch(nil).Run(ctx, []Config{DefaultConfig(chem.WeakAcid)})
	if !errors.Is(err, context.Canceled) {
		t.Errorf("err = %v, want context.Canceled", err)
	}
}
