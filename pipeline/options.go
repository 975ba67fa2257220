package pipeline

import (
	"io"

	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/trace"
)

// Option customizes a Pipeline. Constructors panic on nil arguments.
type Option func(*Pipeline)

// WithLogger routes stage logs to l. The default logger discards output.
func WithLogger(l logrus.FieldLogger) Option {
	if l == nil {
		panic("pipeline: WithLogger(nil)")
	}
	return func(p *Pipeline) { p.log = l }
}

// WithMetrics records stage timings and counts into m.
func WithMetrics(m *Metrics) Option {
	if m == nil {
		panic("pipeline: WithMetrics(nil)")
	}
	return func(p *Pipeline) { p.metrics = m }
}

// WithTracerProvider takes stage spans from tp instead of the global provider.
func WithTracerProvider(tp trace.TracerProvider) Option {
	if tp == nil {
		panic("pipeline: WithTracerProvider(nil)")
	}
	return func(p *Pipeline) { p.tracer = tp.Tracer(tracerName) }
}

func discardLogger() logrus.FieldLogger {
	l := logrus.New()
	l.SetOutput(io.Discard)

	return l
}
