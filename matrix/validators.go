// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Single source of truth for the distance-matrix checks used by FromRows
//    and by callers that receive raw [][]float64 from outside.
//
// Determinism & Performance:
//  - Pure, allocation-free, fixed i→j traversal.
//  - Symmetry is checked on the upper triangle only: O(n²/2).
//
// Note:
//  - Checks run in a fixed sequence: shape → finiteness → sign → diagonal → symmetry.

package matrix

import (
	"fmt"
	"math"
)

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateRows checks that rows is a non-empty square matrix of finite,
// non-negative values with a zero diagonal, symmetric within eps.
//
// Errors: ErrBadShape, ErrNonSquare, ErrNaNInf, ErrNegative,
// ErrNonZeroDiagonal, ErrAsymmetry (all wrapped with cell context).
// Complexity: O(n²).
func ValidateRows(rows [][]float64, eps float64) error {
	n := len(rows)
	if n == 0 {
		return validatorErrorf("ValidateRows", ErrBadShape)
	}
	if math.IsNaN(eps) || eps < 0 {
		eps = DefaultEpsilon
	}
	for i := range rows {
		if len(rows[i]) != n {
			return validatorErrorf(fmt.Sprintf("ValidateRows: row %d", i), ErrNonSquare)
		}
	}

	var i, j int
	var v float64
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			v = rows[i][j]
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return matrixErrorf("ValidateRows", i, j, ErrNaNInf)
			}
			if v < 0 {
				return matrixErrorf("ValidateRows", i, j, ErrNegative)
			}
		}
		if math.Abs(rows[i][i]) > eps {
			return matrixErrorf("ValidateRows", i, i, ErrNonZeroDiagonal)
		}
	}

	return ValidateSymmetric(rows, eps)
}

// ValidateSymmetric checks |rows[i][j] - rows[j][i]| <= eps on the upper triangle.
// Assumes rows is square (caller must ensure).
func ValidateSymmetric(rows [][]float64, eps float64) error {
	n := len(rows)
	var i, j int
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			if math.Abs(rows[i][j]-rows[j][i]) > eps {
				return matrixErrorf("ValidateSymmetric", i, j, ErrAsymmetry)
			}
		}
	}

	return nil
}
