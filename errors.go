// SPDX-License-Identifier: MIT
// Package: trendclust
//
// errors.go — error classes shared by all subpackages.
//
// Error policy:
//   - Subpackages declare their own "pkg: ..." sentinels and wrap exactly one
//     class below, e.g. fmt.Errorf("dtw: input sequences must be non-empty: %w", ErrInvalidInput).
//   - Callers match either the precise sentinel or the class with errors.Is.
//   - Nothing is retried: every computation here is pure and deterministic.

package trendclust

import "errors"

var (
	// ErrInvalidInput marks malformed or empty sequences and out-of-range
	// hyperparameters (h < 1, L < 2, unknown linkage, ...).
	ErrInvalidInput = errors.New("trendclust: invalid input")

	// ErrDomain marks values outside the mathematical domain of an operation,
	// e.g. non-positive prices passed to a logarithm.
	ErrDomain = errors.New("trendclust: value outside domain")

	// ErrClustering marks an invalid cluster count or a malformed distance matrix.
	ErrClustering = errors.New("trendclust: clustering failed")
)
