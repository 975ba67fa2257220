// Package synth generates deterministic synthetic price series for tests,
// examples and the `trendclust synth` command.
//
// 🚀 What is synth?
//
//	Small, reproducible generators whose shape is known in advance, so the
//	segmentation and clustering stages can be checked against it:
//
//	  - GBM:    discrete geometric Brownian motion (strictly positive).
//	  - Linear: straight trend with optional Gaussian noise.
//	  - ZigZag: triangle wave on top of an optional linear trend.
//
// ✨ Key features
//
//   - Functional options (WithStart, WithDrift, WithVolatility, ...) that
//     panic on meaningless values; generators themselves only return errors.
//   - Determinism is explicit: WithSeed / WithRand, or the seed argument of GBM.
//
// ⚙️ Usage
//
//	prices, err := synth.GBM(480, 42, synth.WithVolatility(0.01))
//	s := series.FromValues(t0, time.Hour, prices)
package synth
