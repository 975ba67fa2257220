// Package trendclust groups short numeric time-series samples by the shape of
// their trends and, optionally, by the shape of their volatility.
//
// 🚀 What does it do?
//
//	A long series (e.g. half-hourly prices) is cut into fixed-length samples
//	(one trading day each). Every sample is reduced to its changepoints, the
//	points where the short-horizon trend reverses, and to the realized
//	volatility of each segment between consecutive changepoints. Samples are
//	then compared with Dynamic Time Warping and grouped with agglomerative
//	hierarchical clustering, first by trend, then by volatility inside each
//	trend cluster.
//
// Under the hood, everything is organized under these subpackages:
//
//	trend/: sign function & the changepoint (trend segmentation) scan
//	volatility/: realized volatility per changepoint segment
//	dtw/: Dynamic Time Warping distance (+ window, penalty, path)
//	matrix/: symmetric distance matrices (gonum SymDense backed)
//	hcluster/: linkage (single/complete/average/ward), dendrogram, flat cut
//	series/: points, samples, slicing, CSV/XLSX loaders
//	pipeline/: the two-stage clustering orchestrator
//	synth/: deterministic synthetic series for tests & demos
//	report/: JSON/YAML export of results and dendrograms
//	config/: file/env configuration for the CLI
//
// Errors from every package wrap one of the three classes declared here, so a
// caller can branch on the class without knowing which package failed:
//
//	if errors.Is(err, trendclust.ErrDomain) { /* non-positive prices */ }
//
//	go install github.com/katalvlaran/trendclust/cmd/trendclust@latest
package trendclust
