package series_test

import (
	"testing"
	"time"

	"github.com/katalvlaran/trendclust"
	"github.com/katalvlaran/trendclust/series"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var t0 = time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC)

func TestSlice_DropsPartialTail(t *testing.T) {
	t.Parallel()

	s := series.FromValues(t0, 30*time.Minute, make([]float64, 100))
	samples, err := series.Slice(s, 48)
	require.NoError(t, err)
	require.Len(t, samples, 2, "100 points hold two full samples of 48")

	assert.Equal(t, t0, samples[0].Name())
	assert.Equal(t, t0.Add(48*30*time.Minute), samples[1].Name())
	for i, smp := range samples {
		assert.Equal(t, i, smp.Index())
		assert.Equal(t, 48, smp.Len())
	}
}

func TestSlice_EmptyAndShort(t *testing.T) {
	t.Parallel()

	samples, err := series.Slice(nil, 48)
	require.NoError(t, err)
	assert.Empty(t, samples)

	samples, err = series.Slice(series.FromValues(t0, time.Minute, []float64{1, 2, 3}), 48)
	require.NoError(t, err)
	assert.Empty(t, samples)
}

func TestSlice_BadLength(t *testing.T) {
	t.Parallel()

	for _, l := range []int{-1, 0, 1} {
		_, err := series.Slice(series.Series{}, l)
		assert.ErrorIs(t, err, series.ErrBadLength)
		assert.ErrorIs(t, err, trendclust.ErrInvalidInput)
	}
}

func TestSample_IsImmutableCopy(t *testing.T) {
	t.Parallel()

	pts := []series.Point{{Time: t0, Value: 1}, {Time: t0.Add(time.Minute), Value: 2}}
	smp := series.NewSample(0, pts)
	pts[0].Value = 99

	assert.Equal(t, []float64{1, 2}, smp.Values())
	vals := smp.Values()
	vals[1] = -5
	assert.Equal(t, 2.0, smp.At(1).Value)
	assert.Equal(t, series.Point{Time: t0, Value: 1}, smp.Points()[0])
	assert.True(t, series.Sample{}.Name().IsZero())
}

func TestSeries_Validate(t *testing.T) {
	t.Parallel()

	ok := series.FromValues(t0, time.Second, []float64{1, 2, 3})
	assert.NoError(t, ok.Validate())

	dup := series.Series{{Time: t0, Value: 1}, {Time: t0, Value: 2}}
	assert.ErrorIs(t, dup.Validate(), series.ErrNotIncreasing)
}
