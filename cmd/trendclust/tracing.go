package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"

	"github.com/katalvlaran/trendclust/config"
)

// setupTracing returns the provider the pipeline should use and a shutdown
// hook that flushes pending spans. Disabled tracing yields a no-op provider.
func setupTracing(cfg config.TracingConfig) (trace.TracerProvider, func(context.Context) error, error) {
	if !cfg.Enabled {
		return noop.NewTracerProvider(), func(context.Context) error { return nil }, nil
	}

	var (
		w       io.Writer
		closeFn func() error
	)
	switch cfg.Output {
	case "", "stderr":
		w = os.Stderr
	case "stdout":
		w = os.Stdout
	default:
		f, err := os.Create(cfg.Output)
		if err != nil {
			return nil, nil, fmt.Errorf("trace output: %w", err)
		}
		w, closeFn = f, f.Close
	}

	exporter, err := stdouttrace.New(stdouttrace.WithWriter(w), stdouttrace.WithPrettyPrint())
	if err != nil {
		return nil, nil, fmt.Errorf("stdout trace exporter: %w", err)
	}
	tp := sdktrace.NewTracerProvider(
		sdktrace.WithSyncer(exporter),
		sdktrace.WithResource(resource.NewWithAttributes(
			semconv.SchemaURL,
			semconv.ServiceName("trendclust"),
		)),
	)

	shutdown := func(ctx context.Context) error {
		err := tp.Shutdown(ctx)
		if closeFn != nil {
			if cerr := closeFn(); err == nil {
				err = cerr
			}
		}

		return err
	}

	return tp, shutdown, nil
}
