package pipeline

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics is the Prometheus instrumentation of the pipeline.
// A nil *Metrics is valid and records nothing.
type Metrics struct {
	stageDuration *prometheus.HistogramVec
	samples       prometheus.Counter
	changepoints  prometheus.Histogram
	runs          *prometheus.CounterVec
}

// NewMetrics creates the collectors and registers them with reg (if non-nil).
func NewMetrics(reg prometheus.Registerer) (*Metrics, error) {
	m := &Metrics{
		stageDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "trendclust_stage_duration_seconds",
			Help:    "Duration of pipeline stages.",
			Buckets: prometheus.ExponentialBuckets(0.0005, 4, 10),
		}, []string{"stage", "result"}),
		samples: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "trendclust_samples_total",
			Help: "Samples sliced from input series.",
		}),
		changepoints: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "trendclust_changepoints",
			Help:    "Changepoints found per sample.",
			Buckets: prometheus.LinearBuckets(1, 2, 12),
		}),
		runs: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "trendclust_runs_total",
			Help: "Pipeline runs by result.",
		}, []string{"result"}),
	}
	if reg == nil {
		return m, nil
	}
	for _, c := range []prometheus.Collector{m.stageDuration, m.samples, m.changepoints, m.runs} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}

	return m, nil
}

func resultLabel(err error) string {
	if err != nil {
		return "error"
	}

	return "ok"
}

func (m *Metrics) observeStage(stage string, elapsed time.Duration, err error) {
	if m == nil {
		return
	}
	m.stageDuration.WithLabelValues(stage, resultLabel(err)).Observe(elapsed.Seconds())
}

func (m *Metrics) addSamples(n int) {
	if m == nil {
		return
	}
	m.samples.Add(float64(n))
}

func (m *Metrics) observeChangepoints(n int) {
	if m == nil {
		return
	}
	m.changepoints.Observe(float64(n))
}

func (m *Metrics) observeRun(err error) {
	if m == nil {
		return
	}
	m.runs.WithLabelValues(resultLabel(err)).Inc()
}
