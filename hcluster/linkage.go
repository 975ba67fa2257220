// SPDX-License-Identifier: MIT
// Package: hcluster
//
// Purpose:
//   - Build the merge history of a distance matrix under one linkage method.
//
// Contract:
//   - Input is a validated *matrix.Distance (symmetric, zero diagonal, finite).
//   - Output merges have non-decreasing Distance for all supported methods.
//   - Ties on distance resolve to the lowest (i, j) slot pair.

package hcluster

import (
	"math"

	"github.com/katalvlaran/trendclust/matrix"
)

// Linkage agglomerates the n items of d into a Dendrogram.
//
// Stage 1 (Validate): non-nil matrix, known method.
// Stage 2 (Prepare): flat working copy of the distances; each slot holds
// one active cluster (slot index == its lowest-index surviving member slot).
// Stage 3 (Execute): n-1 times pick the closest active pair (a < b), record
// the merge, write the Lance–Williams distances into slot a, retire slot b.
//
// Complexity: O(n³) time, O(n²) memory.
func Linkage(d *matrix.Distance, m Method) (*Dendrogram, error) {
	if d == nil || d.Len() == 0 {
		return nil, ErrNilMatrix
	}
	if !m.valid() {
		return nil, ErrUnknownMethod
	}

	n := d.Len()
	dist := make([]float64, n*n)
	rows := d.Rows()
	var i, j int
	for i = 0; i < n; i++ {
		copy(dist[i*n:(i+1)*n], rows[i])
	}

	size := make([]int, n)
	id := make([]int, n)
	active := make([]bool, n)
	for i = 0; i < n; i++ {
		size[i], id[i], active[i] = 1, i, true
	}

	merges := make([]Merge, 0, n-1)
	var (
		a, b, k int
		best    float64
	)
	for step := 0; step < n-1; step++ {
		a, b, best = -1, -1, math.Inf(1)
		for i = 0; i < n; i++ {
			if !active[i] {
				continue
			}
			for j = i + 1; j < n; j++ {
				if active[j] && (a < 0 || dist[i*n+j] < best) {
					a, b, best = i, j, dist[i*n+j]
				}
			}
		}

		left, right := id[a], id[b]
		if left > right {
			left, right = right, left
		}
		merges = append(merges, Merge{Left: left, Right: right, Distance: best, Size: size[a] + size[b]})

		for k = 0; k < n; k++ {
			if !active[k] || k == a || k == b {
				continue
			}
			v := update(m, dist[a*n+k], dist[b*n+k], best, size[a], size[b], size[k])
			dist[a*n+k], dist[k*n+a] = v, v
		}
		size[a] += size[b]
		id[a] = n + step
		active[b] = false
	}

	return &Dendrogram{N: n, Method: m, Merges: merges}, nil
}

// update returns the distance from cluster k to the union of a and b.
// dak, dbk: distances from k to a and b; dab: distance between a and b.
func update(m Method, dak, dbk, dab float64, na, nb, nk int) float64 {
	switch m {
	case Single:
		return math.Min(dak, dbk)
	case Average:
		return (float64(na)*dak + float64(nb)*dbk) / float64(na+nb)
	case Ward:
		fa, fb, fk := float64(na), float64(nb), float64(nk)
		v := ((fa+fk)*dak*dak + (fb+fk)*dbk*dbk - fk*dab*dab) / (fa + fb + fk)
		if v < 0 { // rounding
			v = 0
		}

		return math.Sqrt(v)
	default: // Complete
		return math.Max(dak, dbk)
	}
}
