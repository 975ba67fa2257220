// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Own the DistanceMatrix invariant: square, symmetric, zero diagonal,
//     finite, non-negative.
//   - Expose the data to linkage code (Rows, Condensed) and to gonum users (Sym).
//
// Determinism & Performance:
//   - Upper-triangle storage via mat.SymDense; Set(i,j) == Set(j,i).
//   - Condensed/Rows traverse i→j in fixed order.

package matrix

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// DefaultEpsilon is the tolerance used by FromRows for symmetry and diagonal checks.
const DefaultEpsilon = 1e-9

// Distance is a symmetric n×n distance matrix with a zero diagonal.
type Distance struct {
	n   int
	sym *mat.SymDense
}

// NewDistance returns an n×n zero matrix.
// Errors: ErrBadShape if n <= 0.
// Complexity: O(n²) zeroing.
func NewDistance(n int) (*Distance, error) {
	if n <= 0 {
		return nil, matrixErrorf("NewDistance", n, n, ErrBadShape)
	}

	return &Distance{n: n, sym: mat.NewSymDense(n, nil)}, nil
}

// FromRows validates rows against the distance-matrix policy and copies it.
// Stage 1 (Validate): shape, finiteness, sign, diagonal, symmetry (eps).
// Stage 2 (Execute): copy the upper triangle, averaging the two halves.
//
// Errors: ErrBadShape, ErrNonSquare, ErrNaNInf, ErrNegative,
// ErrNonZeroDiagonal, ErrAsymmetry.
func FromRows(rows [][]float64, eps float64) (*Distance, error) {
	if err := ValidateRows(rows, eps); err != nil {
		return nil, err
	}
	n := len(rows)
	d := &Distance{n: n, sym: mat.NewSymDense(n, nil)}
	var i, j int
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			d.sym.SetSym(i, j, 0.5*(rows[i][j]+rows[j][i]))
		}
	}

	return d, nil
}

// Len returns n, the number of items compared.
func (d *Distance) Len() int {
	if d == nil {
		return 0
	}

	return d.n
}

// At returns the distance between items i and j.
func (d *Distance) At(i, j int) (float64, error) {
	if err := d.check("At", i, j); err != nil {
		return 0, err
	}

	return d.sym.At(i, j), nil
}

// Set stores v as the distance between i and j (and j and i).
// The diagonal only accepts 0.
// Errors: ErrOutOfRange, ErrNaNInf, ErrNegative, ErrNonZeroDiagonal.
func (d *Distance) Set(i, j int, v float64) error {
	if err := d.check("Set", i, j); err != nil {
		return err
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return matrixErrorf("Set", i, j, ErrNaNInf)
	}
	if v < 0 {
		return matrixErrorf("Set", i, j, ErrNegative)
	}
	if i == j && v != 0 {
		return matrixErrorf("Set", i, j, ErrNonZeroDiagonal)
	}
	d.sym.SetSym(i, j, v)

	return nil
}

// Rows returns a dense [][]float64 copy (both triangles filled).
// Complexity: O(n²).
func (d *Distance) Rows() [][]float64 {
	if d == nil {
		return nil
	}
	out := make([][]float64, d.n)
	var i, j int
	for i = 0; i < d.n; i++ {
		out[i] = make([]float64, d.n)
		for j = 0; j < d.n; j++ {
			out[i][j] = d.sym.At(i, j)
		}
	}

	return out
}

// Condensed returns the upper triangle (i < j) in row-major order, the
// layout linkage tools conventionally consume. Length n(n-1)/2.
func (d *Distance) Condensed() []float64 {
	if d == nil {
		return nil
	}
	out := make([]float64, 0, d.n*(d.n-1)/2)
	var i, j int
	for i = 0; i < d.n; i++ {
		for j = i + 1; j < d.n; j++ {
			out = append(out, d.sym.At(i, j))
		}
	}

	return out
}

// Sym exposes the matrix as a read-only gonum Symmetric view.
func (d *Distance) Sym() mat.Symmetric {
	return d.sym
}

// check validates receiver and indices.
func (d *Distance) check(op string, i, j int) error {
	if d == nil || d.sym == nil {
		return matrixErrorf(op, i, j, ErrNilMatrix)
	}
	if i < 0 || i >= d.n || j < 0 || j >= d.n {
		return matrixErrorf(op, i, j, ErrOutOfRange)
	}

	return nil
}
