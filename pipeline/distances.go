package pipeline

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/trendclust/dtw"
	"github.com/katalvlaran/trendclust/matrix"
)

// distances fills the symmetric DTW matrix of seqs. Each goroutine owns one
// row of the upper triangle, so no two goroutines write the same cell.
func distances(ctx context.Context, seqs [][]float64, workers int) (*matrix.Distance, error) {
	d, err := matrix.NewDistance(len(seqs))
	if err != nil {
		return nil, err
	}
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i := range seqs {
		i := i
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			for j := i + 1; j < len(seqs); j++ {
				v, err := dtw.Distance(seqs[i], seqs[j])
				if err != nil {
					return fmt.Errorf("dtw(%d,%d): %w", i, j, err)
				}
				if err = d.Set(i, j, v); err != nil {
					return err
				}
			}

			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return d, nil
}
