// SPDX-License-Identifier: MIT
// Package: trendclust/synth
//
// options.go — functional options for the generators.
//
// Contract (strict):
//   • Option constructors VALIDATE and PANIC on meaningless inputs.
//     Generators themselves never panic.
//   • Determinism is explicit: seeding is done via WithSeed or WithRand.

package synth

import (
	"math"
	"math/rand"
)

// Defaults shared by all generators.
const (
	DefaultStart      = 100.0  // initial price S0
	DefaultDrift      = 0.0005 // per-step drift μ
	DefaultVolatility = 0.02   // per-step volatility σ
	DefaultSlope      = 1.0    // Linear/ZigZag increment per step
	DefaultAmplitude  = 10.0   // ZigZag peak-to-trough height
	DefaultPeriod     = 12     // ZigZag steps per full cycle
)

// Option customizes a generator by mutating its config before generation.
type Option func(*config)

// config holds resolved generator parameters.
type config struct {
	start     float64
	drift     float64
	vol       float64
	slope     float64
	amplitude float64
	period    int
	noise     float64
	rng       *rand.Rand
}

func newConfig(opts ...Option) config {
	c := config{
		start:     DefaultStart,
		drift:     DefaultDrift,
		vol:       DefaultVolatility,
		slope:     DefaultSlope,
		amplitude: DefaultAmplitude,
		period:    DefaultPeriod,
	}
	for _, opt := range opts {
		opt(&c)
	}

	return c
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// WithStart sets the first value. Panics unless finite and > 0.
func WithStart(v float64) Option {
	if !finite(v) || v <= 0 {
		panic("synth: WithStart requires a finite value > 0")
	}
	return func(c *config) { c.start = v }
}

// WithDrift sets the GBM drift μ per step. Panics on NaN/Inf.
func WithDrift(mu float64) Option {
	if !finite(mu) {
		panic("synth: WithDrift requires a finite value")
	}
	return func(c *config) { c.drift = mu }
}

// WithVolatility sets the GBM volatility σ per step. Panics unless finite and >= 0.
func WithVolatility(sigma float64) Option {
	if !finite(sigma) || sigma < 0 {
		panic("synth: WithVolatility requires a finite value >= 0")
	}
	return func(c *config) { c.vol = sigma }
}

// WithSlope sets the per-step increment of Linear and ZigZag. Panics on NaN/Inf.
func WithSlope(v float64) Option {
	if !finite(v) {
		panic("synth: WithSlope requires a finite value")
	}
	return func(c *config) { c.slope = v }
}

// WithAmplitude sets the ZigZag peak-to-trough height. Panics unless finite and >= 0.
func WithAmplitude(v float64) Option {
	if !finite(v) || v < 0 {
		panic("synth: WithAmplitude requires a finite value >= 0")
	}
	return func(c *config) { c.amplitude = v }
}

// WithPeriod sets the ZigZag cycle length in steps. Panics if p < 2.
func WithPeriod(p int) Option {
	if p < 2 {
		panic("synth: WithPeriod requires p >= 2")
	}
	return func(c *config) { c.period = p }
}

// WithNoise adds N(0, sd²) noise to Linear and ZigZag. Panics unless finite and >= 0.
func WithNoise(sd float64) Option {
	if !finite(sd) || sd < 0 {
		panic("synth: WithNoise requires a finite value >= 0")
	}
	return func(c *config) { c.noise = sd }
}

// WithRand provides an explicit RNG. Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("synth: WithRand(nil)")
	}
	return func(c *config) { c.rng = r }
}

// WithSeed creates a new seeded RNG.
func WithSeed(seed int64) Option {
	return func(c *config) { c.rng = rand.New(rand.NewSource(seed)) }
}

// rngFrom prefers the configured RNG; otherwise seeds a local one.
func rngFrom(c config, seed int64) *rand.Rand {
	if c.rng != nil {
		return c.rng
	}

	return rand.New(rand.NewSource(seed))
}
