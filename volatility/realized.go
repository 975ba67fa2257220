package volatility

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
)

// Realized returns Σ (ln s[i+1] − ln s[i])² over segment. Segments shorter
// than two points carry no return and yield 0.
//
// Errors: ErrNonPositive if any value is <= 0, NaN or +Inf.
// Complexity: O(len(segment)).
func Realized(segment []float64) (float64, error) {
	n := len(segment)
	if n < 2 {
		return 0, nil
	}

	logs := make([]float64, n)
	for i, v := range segment {
		if !(v > 0) || math.IsInf(v, 1) {
			return 0, fmt.Errorf("index %d (%g): %w", i, v, ErrNonPositive)
		}
		logs[i] = math.Log(v)
	}

	returns := make([]float64, n-1)
	floats.SubTo(returns, logs[1:], logs[:n-1])

	return floats.Dot(returns, returns), nil
}

// Sequence returns one realized volatility per consecutive pair of
// changepoint positions; the sub-interval for pair i is the half-open range
// values[positions[i]:positions[i+1]]. m positions yield m-1 entries.
//
// Errors: ErrBadPositions for malformed positions, ErrNonPositive from Realized.
func Sequence(values []float64, positions []int) ([]float64, error) {
	if err := validatePositions(positions, len(values)); err != nil {
		return nil, err
	}

	out := make([]float64, len(positions)-1)
	for i := 0; i+1 < len(positions); i++ {
		rv, err := Realized(values[positions[i]:positions[i+1]])
		if err != nil {
			return nil, fmt.Errorf("segment %d: %w", i, err)
		}
		out[i] = rv
	}

	return out, nil
}

// validatePositions checks 0 <= p[0] < p[1] < ... < n.
func validatePositions(positions []int, n int) error {
	if len(positions) == 0 {
		return ErrBadPositions
	}
	for i, p := range positions {
		if p < 0 || p >= n {
			return fmt.Errorf("position %d out of range [0,%d): %w", p, n, ErrBadPositions)
		}
		if i > 0 && p <= positions[i-1] {
			return fmt.Errorf("position %d not after %d: %w", p, positions[i-1], ErrBadPositions)
		}
	}

	return nil
}
