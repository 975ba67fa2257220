// Package matrix provides the symmetric distance matrices built by each
// clustering stage.
//
// Distance is an n×n, symmetric, zero-diagonal matrix of finite, non-negative
// reals, backed by gonum's mat.SymDense (upper triangle storage, so symmetry
// holds by construction). Callers that receive a matrix from elsewhere can
// validate it with FromRows, which enforces the same policy.
//
//	d, _ := matrix.NewDistance(3)
//	_ = d.Set(0, 2, 1.5) // also sets (2,0)
//	v, _ := d.At(2, 0)   // 1.5
//
// Writes to distinct cells are independent, so parallel fills are safe as
// long as each (i,j) pair is written by a single goroutine.
package matrix
