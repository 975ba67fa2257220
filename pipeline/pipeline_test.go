package pipeline_test

import (
	"context"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/sirupsen/logrus"
	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"

	"github.com/katalvlaran/trendclust"
	"github.com/katalvlaran/trendclust/pipeline"
	"github.com/katalvlaran/trendclust/series"
)

var t0 = time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)

const step = 30 * time.Minute

// ramp returns start + slope*j for j in [0, n).
func ramp(start, slope float64, n int) []float64 {
	out := make([]float64, n)
	for j := range out {
		out[j] = start + slope*float64(j)
	}

	return out
}

// build concatenates samples into one regular series.
func build(samples ...[]float64) series.Series {
	var all []float64
	for _, s := range samples {
		all = append(all, s...)
	}

	return series.FromValues(t0, step, all)
}

func sampleName(i, length int) time.Time {
	return t0.Add(time.Duration(i*length) * step)
}

func singleStage() pipeline.Config {
	cfg := pipeline.DefaultConfig()
	cfg.TwoStage = false
	cfg.Workers = 4

	return cfg
}

func TestConfig_Validate(t *testing.T) {
	t.Parallel()
	require.NoError(t, pipeline.DefaultConfig().Validate())

	cases := map[string]func(*pipeline.Config){
		"horizon":      func(c *pipeline.Config) { c.Horizon = 0 },
		"length":       func(c *pipeline.Config) { c.SampleLength = 1 },
		"clusters":     func(c *pipeline.Config) { c.Clusters = 0 },
		"vol clusters": func(c *pipeline.Config) { c.VolatilityClusters = 0 },
		"min group":    func(c *pipeline.Config) { c.MinGroupSize = -1 },
		"linkage":      func(c *pipeline.Config) { c.Linkage = "median" },
	}
	for name, mutate := range cases {
		cfg := pipeline.DefaultConfig()
		mutate(&cfg)
		err := cfg.Validate()
		assert.ErrorIs(t, err, trendclust.ErrInvalidInput, name)
		_, err = pipeline.New(cfg)
		assert.Error(t, err, name)
	}
}

func TestRun_SeparatesUpFromDown(t *testing.T) {
	t.Parallel()
	const L = 48
	var parts [][]float64
	for i := 0; i < 20; i++ {
		if i%2 == 0 {
			parts = append(parts, ramp(100, 1, L))
		} else {
			parts = append(parts, ramp(200, -1, L))
		}
	}
	p, err := pipeline.New(singleStage())
	require.NoError(t, err)

	res, err := p.Run(context.Background(), build(parts...))
	require.NoError(t, err)
	require.Len(t, res.Clusters, 2)
	assert.NotEmpty(t, res.RunID)

	var up, down []time.Time
	for i := 0; i < 20; i++ {
		if i%2 == 0 {
			up = append(up, sampleName(i, L))
		} else {
			down = append(down, sampleName(i, L))
		}
	}
	flat := res.Flat()
	assert.Equal(t, up, flat[1])
	assert.Equal(t, down, flat[2])

	assert.Equal(t, []int{0, 47}, res.Features[0].Changepoints.Positions)
	assert.Equal(t, []float64{200, 153}, res.Features[1].Changepoints.Values)
	assert.Nil(t, res.Features[0].Volatility)
	assert.Equal(t, 20, res.Trend.Distance.Len())
	assert.Len(t, res.Trend.Dendrogram.Merges, 19)
}

func TestRun_SmallGroupsAreNotSubdivided(t *testing.T) {
	t.Parallel()
	const L = 48
	var parts [][]float64
	for i := 0; i < 20; i++ {
		if i < 10 {
			parts = append(parts, ramp(100, 1, L))
		} else {
			parts = append(parts, ramp(200, -1, L))
		}
	}
	cfg := pipeline.DefaultConfig()
	p, err := pipeline.New(cfg)
	require.NoError(t, err)

	res, err := p.Run(context.Background(), build(parts...))
	require.NoError(t, err)
	require.Len(t, res.Clusters, 2)

	nested := res.Nested()
	for _, c := range res.Clusters {
		assert.False(t, c.Subdivided)
		assert.Nil(t, c.Volatility)
		assert.Len(t, c.Indices, 10)
		assert.Equal(t, map[int][]time.Time{1: c.Names}, nested[c.Label])
	}
	assert.Len(t, res.Features[0].Volatility, 1)
}

func TestRun_TwoStageSubdividesByVolatility(t *testing.T) {
	t.Parallel()
	const L = 48
	calm := ramp(100, 1, L)
	wild := ramp(100, 3, L)
	down := ramp(1000, -1, L)
	// indices: 0 calm, 1 down, 2 wild, 3 down, 4 calm, 5 down, 6 wild, 7 down
	s := build(calm, down, wild, down, calm, down, wild, down)

	cfg := pipeline.DefaultConfig()
	cfg.MinGroupSize = 2
	cfg.Workers = 2
	p, err := pipeline.New(cfg)
	require.NoError(t, err)

	res, err := p.Run(context.Background(), s)
	require.NoError(t, err)
	require.Len(t, res.Clusters, 2)

	ups := res.Clusters[0]
	assert.Equal(t, []int{0, 2, 4, 6}, ups.Indices)
	assert.Equal(t, []int{1, 3, 5, 7}, res.Clusters[1].Indices)
	require.True(t, ups.Subdivided)
	require.NotNil(t, ups.Volatility)
	require.Len(t, ups.Sub, 2)
	assert.Equal(t, []int{0, 4}, ups.Sub[0].Indices)
	assert.Equal(t, []int{2, 6}, ups.Sub[1].Indices)
	assert.Equal(t, []time.Time{sampleName(2, L), sampleName(6, L)}, res.Nested()[1][2])

	assert.True(t, res.Clusters[1].Subdivided)
	assert.Len(t, res.Clusters[1].Sub, 2)
}

func TestRun_EmptyAndShortInput(t *testing.T) {
	t.Parallel()
	p, err := pipeline.New(pipeline.DefaultConfig())
	require.NoError(t, err)

	res, err := p.Run(context.Background(), nil)
	require.NoError(t, err)
	assert.True(t, res.Empty())
	assert.Empty(t, res.Flat())
	assert.Empty(t, res.Nested())
	assert.Nil(t, res.Trend)

	res, err = p.Run(context.Background(), build(ramp(100, 1, 47)))
	require.NoError(t, err)
	assert.True(t, res.Empty())
}

func TestRun_Errors(t *testing.T) {
	t.Parallel()

	// more clusters than samples
	p, err := pipeline.New(singleStage())
	require.NoError(t, err)
	_, err = p.Run(context.Background(), build(ramp(100, 1, 48)))
	assert.ErrorIs(t, err, trendclust.ErrClustering)

	// non-positive price only matters when volatility is computed
	cfg := pipeline.DefaultConfig()
	cfg.Clusters = 1
	p, err = pipeline.New(cfg)
	require.NoError(t, err)
	_, err = p.Run(context.Background(), build(ramp(10, -1, 48)))
	assert.ErrorIs(t, err, trendclust.ErrDomain)

	cfg.TwoStage = false
	p, err = pipeline.New(cfg)
	require.NoError(t, err)
	res, err := p.Run(context.Background(), build(ramp(10, -1, 48)))
	require.NoError(t, err)
	assert.Len(t, res.Clusters, 1)

	// timestamps must increase
	bad := build(ramp(100, 1, 48))
	bad[3].Time = bad[2].Time
	_, err = p.Run(context.Background(), bad)
	assert.ErrorIs(t, err, series.ErrNotIncreasing)
}

func TestRun_Cancelled(t *testing.T) {
	t.Parallel()
	p, err := pipeline.New(singleStage())
	require.NoError(t, err)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err = p.Run(ctx, build(ramp(100, 1, 48), ramp(200, -1, 48)))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestRun_Observability(t *testing.T) {
	t.Parallel()
	reg := prometheus.NewRegistry()
	m, err := pipeline.NewMetrics(reg)
	require.NoError(t, err)

	logger, hook := logtest.NewNullLogger()
	logger.SetLevel(logrus.DebugLevel)

	rec := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(rec))

	p, err := pipeline.New(pipeline.DefaultConfig(),
		pipeline.WithLogger(logger),
		pipeline.WithMetrics(m),
		pipeline.WithTracerProvider(tp),
	)
	require.NoError(t, err)

	res, err := p.Run(context.Background(), build(ramp(100, 1, 48), ramp(200, -1, 48)))
	require.NoError(t, err)

	last := hook.LastEntry()
	require.NotNil(t, last)
	assert.Equal(t, logrus.InfoLevel, last.Level)
	assert.Equal(t, res.RunID, last.Data["run_id"])

	var names []string
	for _, s := range rec.Ended() {
		names = append(names, s.Name())
	}
	assert.ElementsMatch(t, []string{
		"trendclust.slice", "trendclust.extract", "trendclust.trend",
		"trendclust.volatility", "trendclust.run",
	}, names)

	families, err := reg.Gather()
	require.NoError(t, err)
	got := map[string]bool{}
	for _, mf := range families {
		got[mf.GetName()] = true
		if mf.GetName() == "trendclust_samples_total" {
			assert.Equal(t, 2.0, mf.GetMetric()[0].GetCounter().GetValue())
		}
	}
	for _, name := range []string{
		"trendclust_stage_duration_seconds", "trendclust_samples_total",
		"trendclust_changepoints", "trendclust_runs_total",
	} {
		assert.True(t, got[name], name)
	}

	_, err = pipeline.NewMetrics(reg)
	assert.Error(t, err, "duplicate registration")
}

func TestOptions_PanicOnNil(t *testing.T) {
	t.Parallel()
	assert.Panics(t, func() { pipeline.WithLogger(nil) })
	assert.Panics(t, func() { pipeline.WithMetrics(nil) })
	assert.Panics(t, func() { pipeline.WithTracerProvider(nil) })
}
