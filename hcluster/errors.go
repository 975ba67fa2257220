package hcluster

import (
	"fmt"

	"github.com/katalvlaran/trendclust"
)

var (
	// ErrBadK indicates a requested cluster count outside [1, n].
	ErrBadK = fmt.Errorf("hcluster: cluster count out of range: %w", trendclust.ErrClustering)

	// ErrNilMatrix indicates a nil or empty distance matrix.
	ErrNilMatrix = fmt.Errorf("hcluster: nil or empty distance matrix: %w", trendclust.ErrClustering)

	// ErrBadMatrix indicates raw rows that fail the distance-matrix policy.
	ErrBadMatrix = fmt.Errorf("hcluster: malformed distance matrix: %w", trendclust.ErrClustering)

	// ErrNilDendrogram indicates a nil or inconsistent dendrogram.
	ErrNilDendrogram = fmt.Errorf("hcluster: nil or malformed dendrogram: %w", trendclust.ErrClustering)

	// ErrUnknownMethod indicates an unsupported linkage name or value.
	ErrUnknownMethod = fmt.Errorf("hcluster: unknown linkage method: %w", trendclust.ErrInvalidInput)
)
