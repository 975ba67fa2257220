package hcluster

import (
	"fmt"

	"github.com/katalvlaran/trendclust/matrix"
)

// Cluster builds the dendrogram of d under method m and cuts it into
// exactly k flat clusters.
//
// Errors: ErrNilMatrix, ErrBadK, ErrUnknownMethod.
func Cluster(d *matrix.Distance, k int, m Method) (Labels, *Dendrogram, error) {
	if d == nil || d.Len() == 0 {
		return nil, nil, ErrNilMatrix
	}
	if k < 1 || k > d.Len() {
		return nil, nil, fmt.Errorf("k=%d, n=%d: %w", k, d.Len(), ErrBadK)
	}

	dg, err := Linkage(d, m)
	if err != nil {
		return nil, nil, err
	}
	labels, err := dg.Cut(k)
	if err != nil {
		return nil, nil, err
	}

	return labels, dg, nil
}

// ClusterRows validates a raw square matrix and clusters it.
//
// Errors: ErrBadMatrix (also matching the matrix sentinel), plus those of Cluster.
func ClusterRows(rows [][]float64, k int, m Method) (Labels, *Dendrogram, error) {
	d, err := matrix.FromRows(rows, matrix.DefaultEpsilon)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %w", ErrBadMatrix, err)
	}

	return Cluster(d, k, m)
}
