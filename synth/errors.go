// SPDX-License-Identifier: MIT
// Package: trendclust/synth
//
// errors.go — sentinel errors for the synth package.
//
// Error policy:
//   • Generators return only these sentinels (wrapped with %w for context).
//   • Option constructors panic on meaningless input instead.

package synth

import (
	"fmt"

	"github.com/katalvlaran/trendclust"
)

// ErrBadSize indicates a requested length n < 1.
var ErrBadSize = fmt.Errorf("synth: series length must be >= 1: %w", trendclust.ErrInvalidInput)

// ErrNonPositive indicates a generated price <= 0 (e.g. a steep negative
// slope); price series feeding volatility must stay strictly positive.
var ErrNonPositive = fmt.Errorf("synth: generated value is not positive: %w", trendclust.ErrDomain)

// synthErrorf attaches generator and parameter context to a sentinel.
func synthErrorf(gen string, n int, err error) error {
	return fmt.Errorf("%s(n=%d): %w", gen, n, err)
}
