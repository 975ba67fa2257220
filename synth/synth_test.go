package synth_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/trendclust"
	"github.com/katalvlaran/trendclust/synth"
)

func TestGenerators_BadSize(t *testing.T) {
	t.Parallel()
	_, err := synth.GBM(0, 1)
	assert.ErrorIs(t, err, synth.ErrBadSize)
	assert.ErrorIs(t, err, trendclust.ErrInvalidInput)
	_, err = synth.Linear(-1)
	assert.ErrorIs(t, err, synth.ErrBadSize)
	_, err = synth.ZigZag(0)
	assert.ErrorIs(t, err, synth.ErrBadSize)
}

func TestGBM_DeterministicAndPositive(t *testing.T) {
	t.Parallel()
	a, err := synth.GBM(500, 42)
	require.NoError(t, err)
	b, err := synth.GBM(500, 42)
	require.NoError(t, err)
	c, err := synth.GBM(500, 43)
	require.NoError(t, err)

	assert.Equal(t, a, b)
	assert.NotEqual(t, a, c)
	assert.Equal(t, synth.DefaultStart, a[0])
	for i, v := range a {
		assert.Greater(t, v, 0.0, "index %d", i)
	}
}

func TestGBM_ZeroVolatilityIsExponential(t *testing.T) {
	t.Parallel()
	got, err := synth.GBM(4, 1, synth.WithStart(10), synth.WithVolatility(0), synth.WithDrift(0))
	require.NoError(t, err)
	assert.Equal(t, []float64{10, 10, 10, 10}, got)
}

func TestGBM_SharedRandOverridesSeed(t *testing.T) {
	t.Parallel()
	a, err := synth.GBM(10, 1, synth.WithRand(rand.New(rand.NewSource(9))))
	require.NoError(t, err)
	b, err := synth.GBM(10, 2, synth.WithSeed(9))
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestLinear(t *testing.T) {
	t.Parallel()
	got, err := synth.Linear(4, synth.WithStart(5), synth.WithSlope(-1))
	require.NoError(t, err)
	assert.Equal(t, []float64{5, 4, 3, 2}, got)

	_, err = synth.Linear(10, synth.WithStart(5), synth.WithSlope(-1))
	assert.ErrorIs(t, err, synth.ErrNonPositive)
	assert.ErrorIs(t, err, trendclust.ErrDomain)

	noisy, err := synth.Linear(50, synth.WithNoise(0.5), synth.WithSeed(3))
	require.NoError(t, err)
	again, err := synth.Linear(50, synth.WithNoise(0.5), synth.WithSeed(3))
	require.NoError(t, err)
	assert.Equal(t, noisy, again)
}

func TestZigZag_Shape(t *testing.T) {
	t.Parallel()
	got, err := synth.ZigZag(9, synth.WithStart(10), synth.WithAmplitude(4), synth.WithPeriod(4))
	require.NoError(t, err)
	assert.Equal(t, []float64{10, 12, 14, 12, 10, 12, 14, 12, 10}, got)

	tilted, err := synth.ZigZag(5, synth.WithStart(10), synth.WithAmplitude(4), synth.WithPeriod(4), synth.WithSlope(1))
	require.NoError(t, err)
	assert.Equal(t, []float64{10, 13, 16, 15, 14}, tilted)
}

func TestOptions_Panic(t *testing.T) {
	t.Parallel()
	assert.Panics(t, func() { synth.WithStart(0) })
	assert.Panics(t, func() { synth.WithVolatility(-1) })
	assert.Panics(t, func() { synth.WithPeriod(1) })
	assert.Panics(t, func() { synth.WithNoise(-0.1) })
	assert.Panics(t, func() { synth.WithAmplitude(-2) })
	assert.Panics(t, func() { synth.WithRand(nil) })
}
