package dtw

import (
	"math"
)

// DTW — Dynamic Time Warping
//
// Description:
//
//	DTW measures similarity between two sequences that may vary in time or
//	speed by finding an optimal "warping path". The alignment must start at
//	(0,0) and end at (n-1,m-1); every element of both inputs is matched at
//	least once.
//
// Algorithm Outline (Full-Matrix):
//  1. Let n = len(a), m = len(b). Allocate (n+1)x(m+1) DP matrix D.
//  2. Initialize:
//     D[0][0] = 0
//     D[i][0] = +∞ for i=1..n
//     D[0][j] = +∞ for j=1..m
//  3. For i = 1..n:
//     For j = 1..m (and |i-j| ≤ Window, if constrained):
//     cost = |a[i-1] - b[j-1]|
//     ins   = D[i-1][j]   + SlopePenalty
//     del   = D[i][j-1]   + SlopePenalty
//     match = D[i-1][j-1]
//     D[i][j] = cost + min(ins, del, match)
//  4. distance = D[n][m].
//  5. If ReturnPath, backtrack from (n,m) to (1,1) following the cheapest
//     predecessor (diagonal preferred on ties).
//
// Complexity:
//
//	Time   = O(n·m)
//	Memory = O(n·m) (FullMatrix) or O(m) (TwoRows)

// Distance returns the plain DTW distance between x and y: absolute-difference
// cost, no band, no slope penalty. It is symmetric in its arguments and zero
// for identical inputs.
//
// Errors: ErrEmptyInput if either input is empty.
func Distance(x, y []float64) (float64, error) {
	opts := DefaultOptions()
	opts.MemoryMode = TwoRows // distance only; O(m) memory
	dist, _, err := DTW(x, y, &opts)

	return dist, err
}

// DTW computes the Dynamic Time Warping distance between a and b.
// Returns (distance, path, error). A nil opts means DefaultOptions().
//
// If opts.ReturnPath is true, opts.MemoryMode must be FullMatrix.
//
// Example:
//
//	opts := DefaultOptions()
//	opts.ReturnPath = true
//	dist, path, err := DTW(seqA, seqB, &opts)
func DTW(a, b []float64, opts *Options) (float64, []Coord, error) {
	// Stage 1 (Validate): inputs, then options.
	n, m := len(a), len(b)
	if n == 0 || m == 0 {
		return 0, nil, ErrEmptyInput
	}
	o := DefaultOptions()
	if opts != nil {
		o = *opts
	}
	if err := validateOptions(o); err != nil {
		return 0, nil, err
	}

	// Stage 2 (Execute): fill the DP table.
	if o.MemoryMode == TwoRows {
		return rolling(a, b, o), nil, nil
	}
	dp := full(a, b, o)

	// Stage 3 (Finalize): distance and, on request, the warping path.
	distance := dp[n][m]
	if !o.ReturnPath || math.IsInf(distance, 1) {
		return distance, nil, nil
	}

	return distance, backtrack(dp, o.SlopePenalty), nil
}

// validateOptions rejects contradictory or out-of-range option sets.
func validateOptions(o Options) error {
	if o.Window < Unlimited {
		return ErrBadInput
	}
	if o.SlopePenalty < 0 || math.IsNaN(o.SlopePenalty) || math.IsInf(o.SlopePenalty, 0) {
		return ErrBadInput
	}
	if o.MemoryMode != FullMatrix && o.MemoryMode != TwoRows {
		return ErrBadInput
	}
	if o.ReturnPath && o.MemoryMode != FullMatrix {
		return ErrPathNeedsMatrix
	}

	return nil
}

// outside reports whether cell (i,j) (1-based) falls outside the band.
func outside(i, j, window int) bool {
	return window != Unlimited && abs(i-j) > window
}

// full builds the complete (n+1)x(m+1) cumulative-cost matrix.
func full(a, b []float64, o Options) [][]float64 {
	n, m := len(a), len(b)
	inf := math.Inf(1)

	dp := make([][]float64, n+1)
	for i := range dp {
		dp[i] = make([]float64, m+1)
	}
	for i := 1; i <= n; i++ {
		dp[i][0] = inf
	}
	for j := 1; j <= m; j++ {
		dp[0][j] = inf
	}

	var i, j int
	for i = 1; i <= n; i++ {
		for j = 1; j <= m; j++ {
			if outside(i, j, o.Window) {
				dp[i][j] = inf
				continue
			}
			cost := math.Abs(a[i-1] - b[j-1])
			dp[i][j] = cost + min3(
				dp[i-1][j]+o.SlopePenalty, // insertion
				dp[i][j-1]+o.SlopePenalty, // deletion
				dp[i-1][j-1],              // match
			)
		}
	}

	return dp
}

// rolling computes the distance keeping only the previous and current rows.
func rolling(a, b []float64, o Options) float64 {
	n, m := len(a), len(b)
	inf := math.Inf(1)

	prev := make([]float64, m+1)
	curr := make([]float64, m+1)
	for j := 1; j <= m; j++ {
		prev[j] = inf
	}

	var i, j int
	for i = 1; i <= n; i++ {
		curr[0] = inf
		for j = 1; j <= m; j++ {
			if outside(i, j, o.Window) {
				curr[j] = inf
				continue
			}
			cost := math.Abs(a[i-1] - b[j-1])
			curr[j] = cost + min3(prev[j]+o.SlopePenalty, curr[j-1]+o.SlopePenalty, prev[j-1])
		}
		prev, curr = curr, prev
	}

	return prev[m]
}

// backtrack walks from (n,m) to (1,1) and returns the 0-based path in order.
// Ties prefer the diagonal, then insertion, then deletion.
func backtrack(dp [][]float64, penalty float64) []Coord {
	i, j := len(dp)-1, len(dp[0])-1
	path := make([]Coord, 0, i+j)
	path = append(path, Coord{I: i - 1, J: j - 1})

	for i > 1 || j > 1 {
		match := dp[i-1][j-1]
		ins := dp[i-1][j] + penalty
		del := dp[i][j-1] + penalty
		switch {
		case match <= ins && match <= del:
			i, j = i-1, j-1
		case ins <= del:
			i--
		default:
			j--
		}
		path = append(path, Coord{I: i - 1, J: j - 1})
	}

	// reverse path in-place
	for l, r := 0, len(path)-1; l < r; l, r = l+1, r-1 {
		path[l], path[r] = path[r], path[l]
	}

	return path
}

// abs returns the absolute value of an int.
func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// min3 returns the minimum of three float64 values.
func min3(a, b, c float64) float64 {
	if a < b {
		if a < c {
			return a
		}
		return c
	}
	if b < c {
		return b
	}
	return c
}
