package volatility

import (
	"fmt"

	"github.com/katalvlaran/trendclust"
)

var (
	// ErrNonPositive indicates a value <= 0 (or NaN) where a logarithm is required.
	ErrNonPositive = fmt.Errorf("volatility: values must be strictly positive: %w", trendclust.ErrDomain)

	// ErrBadPositions indicates changepoint positions that are empty, not
	// strictly increasing, or outside the value slice.
	ErrBadPositions = fmt.Errorf("volatility: invalid changepoint positions: %w", trendclust.ErrInvalidInput)
)
