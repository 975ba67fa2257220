package trend

import (
	"fmt"

	"github.com/katalvlaran/trendclust"
)

var (
	// ErrBadHorizon indicates a smoothing horizon h < 1.
	ErrBadHorizon = fmt.Errorf("trend: horizon must be >= 1: %w", trendclust.ErrInvalidInput)

	// ErrShortSample indicates a sample with fewer than two points.
	ErrShortSample = fmt.Errorf("trend: sample needs at least 2 points: %w", trendclust.ErrInvalidInput)

	// ErrNonFinite indicates a NaN or ±Inf value inside the sample.
	ErrNonFinite = fmt.Errorf("trend: sample contains NaN or Inf: %w", trendclust.ErrInvalidInput)
)
