// SPDX-License-Identifier: MIT
// Package: trendclust/trend
//
// segment.go — changepoint scan over one fixed-length sample.
//
// Contract:
//   - Segment(values, h) → Changepoints with Positions[0]==0, strictly
//     increasing positions and Values[i]==values[Positions[i]].
//   - h < 1 → ErrBadHorizon; len(values) < 2 → ErrShortSample;
//     NaN/Inf → ErrNonFinite. Never panics.
//   - O(len(values) * h) time, O(#changepoints) memory.
//
// States:
//   seed: slope from index 0 to a look-ahead growing by h until its sign is non-zero.
//   extend: advance by h while the slope keeps the current sign r.
//   search: extremum of r*v on [j, min(j+h, n)]; flat window → right endpoint.
//   record: append when different from the last changepoint; flip r.

package trend

import (
	"math"

	"github.com/katalvlaran/trendclust/series"
)

// Changepoints holds the trend reversal points of one sample.
type Changepoints struct {
	// Positions are offsets inside the sample; Positions[0] is always 0.
	Positions []int
	// Values[i] is the sample value at Positions[i].
	Values []float64
}

// Len returns the number of changepoints (>= 1 for any valid result).
func (c Changepoints) Len() int {
	return len(c.Positions)
}

// Segment scans values with smoothing horizon h and returns its changepoints.
func Segment(values []float64, h int) (Changepoints, error) {
	// Stage 1 (Validate).
	if h < 1 {
		return Changepoints{}, ErrBadHorizon
	}
	if len(values) < 2 {
		return Changepoints{}, ErrShortSample
	}
	for _, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return Changepoints{}, ErrNonFinite
		}
	}

	// Stage 2 (Prepare): the first point is always a changepoint.
	n := len(values) - 1 // last valid index
	cp := Changepoints{
		Positions: []int{0},
		Values:    []float64{values[0]},
	}

	// Stage 3 (Seed): establish the first trend direction.
	r, i := seed(values, h, n)

	// Stage 4 (Extend / Search / Record) until the cursor reaches the end.
	// A zero trend can only survive the seed phase with i == n, so the loop
	// body always runs with r in {-1, +1}.
	j := i
	var k, last int
	for j < n {
		// extend: keep moving while the h-step slope has the current sign.
		for {
			k = min(i+h, n)
			if k == i {
				break // no room left to extend
			}
			if Sign(slope(values, j, k)) != r {
				break // reversal ahead
			}
			j = k
			i = j
		}

		// search: locate the extremum of the next window.
		j = j + extremum(values[j:min(j+h, n)+1], r)

		// record: skip duplicates of the previous changepoint.
		last = cp.Positions[len(cp.Positions)-1]
		if j != last {
			cp.Positions = append(cp.Positions, j)
			cp.Values = append(cp.Values, values[j])
		}

		i = j
		r = -r
	}

	return cp, nil
}

// SegmentSample is Segment over the values of a series sample.
func SegmentSample(s series.Sample, h int) (Changepoints, error) {
	return Segment(s.Values(), h)
}

// seed grows a look-ahead window from index 0 by h steps at a time until the
// average slope has a non-zero sign or the end of the sample is reached.
// It returns the trend sign and the look-ahead index it stopped at.
func seed(values []float64, h, n int) (r, look int) {
	const anchor = 0
	for look < n {
		look = min(look+h, n)
		if look == anchor {
			continue // collapsed window: no signal yet, never divide by zero
		}
		if r = Sign(slope(values, anchor, look)); r != 0 {
			return r, look
		}
	}

	return 0, look
}

// slope is the average slope of values between indices from < to.
func slope(values []float64, from, to int) float64 {
	return (values[to] - values[from]) / float64(to-from)
}

// extremum returns the offset of the maximum of r*window, first occurrence on
// ties. A flat window resolves to its right endpoint.
func extremum(window []float64, r int) int {
	lo, hi := window[0], window[0]
	best, bestAt := float64(r)*window[0], 0
	for idx := 1; idx < len(window); idx++ {
		v := window[idx]
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
		if sv := float64(r) * v; sv > best {
			best, bestAt = sv, idx
		}
	}
	if lo == hi {
		return len(window) - 1
	}

	return bestAt
}
