package sweep

import (
	"context"
	"sync"
)

// Batch runs one sweep per config concurrently. Metrics carry state, so
// every sweep gets a fresh set from the factory.
type Batch struct {
	metrics func() []Metric
}

func NewBatch(metrics func() []Metric) *Batch {
	if metrics == nil {
		metrics = DefaultMetrics
	}
	return &Batch{metrics: metrics}
}

// Run returns results in the order of cfgs. The first error wins.
func (b *Batch) Run(ctx context.Context, cfgs []Config) ([]*Result, error) {
	results := make([]*Result, len(cfgs))
	errs := make([]error, len(cfgs))

	var wg sync.WaitGroup
	for i := range cfgs {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()

			r := New()
			for _, m := range b.metrics() {
				r.AddMetric(m)
			}
			results[idx], errs[idx] = r.Run(ctx, cfgs[idx])
		}(i)
	}

	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}

	return results, nil
}
