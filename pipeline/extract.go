package pipeline

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/trendclust/series"
	"github.com/katalvlaran/trendclust/trend"
	"github.com/katalvlaran/trendclust/volatility"
)

// Features are the per-sample sequences compared by the clustering stages.
type Features struct {
	Changepoints trend.Changepoints
	// Volatility has one entry per consecutive changepoint pair; a sample
	// with a single changepoint gets [0]. Nil in single-stage runs.
	Volatility []float64
}

// extract segments every sample (and computes its volatility sequence when
// withVol is set) on at most workers goroutines. Output order follows samples.
func extract(ctx context.Context, samples []series.Sample, h int, withVol bool, workers int) ([]Features, error) {
	out := make([]Features, len(samples))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i := range samples {
		i := i
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			values := samples[i].Values()
			cp, err := trend.Segment(values, h)
			if err != nil {
				return fmt.Errorf("sample %s: %w", samples[i].Name().Format(nameLayout), err)
			}
			out[i].Changepoints = cp
			if !withVol {
				return nil
			}
			rv, err := volatility.Sequence(values, cp.Positions)
			if err != nil {
				return fmt.Errorf("sample %s: %w", samples[i].Name().Format(nameLayout), err)
			}
			if len(rv) == 0 {
				rv = []float64{0}
			}
			out[i].Volatility = rv

			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return out, nil
}
