// SPDX-License-Identifier: MIT
// Package: trendclust/synth
//
// generators.go — GBM, Linear and ZigZag series.
//
// Contract:
//   • n < 1 ⇒ ErrBadSize; never panic.
//   • Same options and seed ⇒ identical output.
//   • O(n) time and memory.

package synth

import "math"

// GBM returns n prices following a discrete geometric Brownian motion:
//
//	S_{t+1} = S_t * exp((μ - 0.5σ²) + σ * Z),  Z ~ N(0,1),  S_0 = start.
//
// The RNG is the configured one (WithSeed/WithRand) or a fresh one seeded
// with seed.
func GBM(n int, seed int64, opts ...Option) ([]float64, error) {
	if n < 1 {
		return nil, synthErrorf("GBM", n, ErrBadSize)
	}
	cfg := newConfig(opts...)
	rng := rngFrom(cfg, seed)

	out := make([]float64, n)
	drift := cfg.drift - 0.5*cfg.vol*cfg.vol // (μ - 0.5 σ²), reused
	s := cfg.start
	out[0] = s
	for i := 1; i < n; i++ {
		s *= math.Exp(drift + cfg.vol*rng.NormFloat64())
		out[i] = s
	}

	return out, nil
}

// Linear returns start + slope*i (+ noise) for i in [0, n).
// Errors: ErrBadSize, ErrNonPositive if a value drops to <= 0.
func Linear(n int, opts ...Option) ([]float64, error) {
	if n < 1 {
		return nil, synthErrorf("Linear", n, ErrBadSize)
	}
	cfg := newConfig(opts...)
	rng := rngFrom(cfg, 0)

	out := make([]float64, n)
	for i := range out {
		out[i] = cfg.start + cfg.slope*float64(i)
		if cfg.noise > 0 {
			out[i] += cfg.noise * rng.NormFloat64()
		}
		if out[i] <= 0 {
			return nil, synthErrorf("Linear", n, ErrNonPositive)
		}
	}

	return out, nil
}

// ZigZag returns a triangle wave of the configured amplitude and period,
// starting at a trough, riding on start + slope*i (slope defaults to 0 here
// unless WithSlope is given).
// Errors: ErrBadSize, ErrNonPositive.
func ZigZag(n int, opts ...Option) ([]float64, error) {
	if n < 1 {
		return nil, synthErrorf("ZigZag", n, ErrBadSize)
	}
	cfg := newConfig(append([]Option{WithSlope(0)}, opts...)...)
	rng := rngFrom(cfg, 0)

	out := make([]float64, n)
	half := float64(cfg.period) / 2
	var phase float64
	for i := range out {
		phase = float64(i % cfg.period)
		if phase > half {
			phase = float64(cfg.period) - phase
		}
		out[i] = cfg.start + cfg.slope*float64(i) + cfg.amplitude*phase/half
		if cfg.noise > 0 {
			out[i] += cfg.noise * rng.NormFloat64()
		}
		if out[i] <= 0 {
			return nil, synthErrorf("ZigZag", n, ErrNonPositive)
		}
	}

	return out, nil
}
