package main

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/trendclust"
	"github.com/katalvlaran/trendclust/config"
	"github.com/katalvlaran/trendclust/series"
)

var start = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

func TestSynthesize(t *testing.T) {
	t.Parallel()
	for _, shape := range []string{"up", "down", "gbm", "mixed"} {
		s, err := synthesize(6, 48, shape, 3, start, time.Hour)
		require.NoError(t, err, shape)
		require.Len(t, s, 6*48, shape)
		require.NoError(t, s.Validate())
		for _, p := range s {
			assert.Greater(t, p.Value, 0.0, shape)
		}
		again, err := synthesize(6, 48, shape, 3, start, time.Hour)
		require.NoError(t, err)
		assert.Equal(t, s, again, "deterministic %s", shape)
	}

	_, err := synthesize(2, 48, "sideways", 1, start, time.Hour)
	assert.ErrorIs(t, err, ErrUnknownShape)
	_, err = synthesize(0, 48, "up", 1, start, time.Hour)
	assert.ErrorIs(t, err, trendclust.ErrInvalidInput)
}

func TestRunClustering_EndToEnd(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	input := filepath.Join(dir, "data.csv")
	s, err := synthesize(12, 48, "mixed", 7, start, 30*time.Minute)
	require.NoError(t, err)
	f, err := os.Create(input)
	require.NoError(t, err)
	require.NoError(t, series.WriteCSV(f, s, series.DefaultColumns()))
	require.NoError(t, f.Close())

	cfg, err := config.Load("", nil)
	require.NoError(t, err)
	cfg.Log.Level = "error"
	cfg.Input.Path = input
	cfg.Pipeline.Clusters = 3
	cfg.Output.Dendrograms = true
	cfg.Metrics.Textfile = filepath.Join(dir, "trendclust.prom")

	var out bytes.Buffer
	require.NoError(t, runClustering(context.Background(), cfg, &out))

	var doc struct {
		Samples  int `json:"samples"`
		Clusters []struct {
			Size int `json:"size"`
		} `json:"clusters"`
	}
	require.NoError(t, json.Unmarshal(out.Bytes(), &doc))
	assert.Equal(t, 12, doc.Samples)
	require.Len(t, doc.Clusters, 3)
	total := 0
	for _, c := range doc.Clusters {
		total += c.Size
	}
	assert.Equal(t, 12, total)

	prom, err := os.ReadFile(cfg.Metrics.Textfile)
	require.NoError(t, err)
	assert.Contains(t, string(prom), "trendclust_runs_total")
}

func TestRunClustering_Errors(t *testing.T) {
	t.Parallel()
	cfg, err := config.Load("", nil)
	require.NoError(t, err)
	assert.ErrorIs(t, runClustering(context.Background(), cfg, &bytes.Buffer{}), trendclust.ErrInvalidInput)

	cfg.Input.Path = "data.parquet"
	assert.ErrorIs(t, runClustering(context.Background(), cfg, &bytes.Buffer{}), series.ErrUnsupportedFormat)

	cfg.Output.Format = "toml"
	assert.ErrorIs(t, runClustering(context.Background(), cfg, &bytes.Buffer{}), trendclust.ErrInvalidInput)
}

func TestSetupTracing(t *testing.T) {
	t.Parallel()
	tp, shutdown, err := setupTracing(config.TracingConfig{})
	require.NoError(t, err)
	_, span := tp.Tracer("test").Start(context.Background(), "ignored")
	assert.False(t, span.SpanContext().IsValid())
	require.NoError(t, shutdown(context.Background()))

	out := filepath.Join(t.TempDir(), "spans.json")
	tp, shutdown, err = setupTracing(config.TracingConfig{Enabled: true, Output: out})
	require.NoError(t, err)
	_, span = tp.Tracer("test").Start(context.Background(), "trendclust.unit")
	span.End()
	require.NoError(t, shutdown(context.Background()))

	b, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Contains(t, string(b), `"Name": "trendclust.unit"`)
}
