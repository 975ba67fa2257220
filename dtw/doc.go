// Package dtw computes Dynamic Time Warping (DTW) distances between
// numeric sequences, with optional alignment path and memory optimizations.
//
// 🚀 What is DTW?
//
//	DTW finds the best match between two sequences by warping the time
//	axis to minimize cumulative distance. Here it compares variable-length
//	feature sequences of daily samples:
//	  • changepoint values (trend shape)
//	  • per-segment realized volatilities (volatility shape)
//
// ✨ Key features:
//   - Distance(x, y): the plain contract: full matrix, no band, no penalty
//   - full-matrix mode: exact O(N·M) time & memory, path recovery
//   - rolling mode: O(M) memory (TwoRows) when only the distance is needed
//   - optional Sakoe–Chiba window (|i−j| ≤ w)
//   - slope penalty to discourage excessive stretching
//
// ⚙️ Usage:
//
//	d, err := dtw.Distance(a, b)
//
//	opts := dtw.DefaultOptions()
//	opts.ReturnPath = true
//	dist, path, err := dtw.DTW(a, b, &opts)
//
// Both inputs must be non-empty; ErrEmptyInput wraps trendclust.ErrInvalidInput.
//
// Performance:
//
//   - Time:   O(N·M)
//   - Memory: O(N·M) (FullMatrix) or O(M) (TwoRows)
package dtw
