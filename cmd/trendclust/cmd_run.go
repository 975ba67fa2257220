package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/trendclust"
	"github.com/katalvlaran/trendclust/config"
	"github.com/katalvlaran/trendclust/internal/logging"
	"github.com/katalvlaran/trendclust/pipeline"
	"github.com/katalvlaran/trendclust/report"
	"github.com/katalvlaran/trendclust/series"
)

// runCmd implements 'trendclust run'
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Cluster the samples of a CSV or XLSX price series",
	Long: `Load a series (columns "time" and "val" by default), cluster its samples
and write the clusters as JSON or YAML.

Example usage:
  trendclust run --input data.csv
  trendclust run --input data.xlsx --sheet Prices --format yaml --output clusters.yaml
  trendclust run --input data.csv --two-stage=false --clusters 3 --linkage ward`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		cfg, err := config.Load(configPath, cmd.Flags())
		if err != nil {
			return err
		}

		return runClustering(cmd.Context(), cfg, cmd.OutOrStdout())
	},
}

func init() {
	rootCmd.AddCommand(runCmd)

	d := pipeline.DefaultConfig()
	f := runCmd.Flags()
	f.String("input", "", "Input series (.csv, .xlsx)")
	f.String("sheet", "", "XLSX sheet (default: first sheet)")
	f.String("time-column", "time", "Name of the timestamp column")
	f.String("value-column", "val", "Name of the value column")
	f.Int("horizon", d.Horizon, "Segmentation horizon h")
	f.Int("sample-length", d.SampleLength, "Points per sample")
	f.Int("clusters", d.Clusters, "Trend clusters K")
	f.Int("volatility-clusters", d.VolatilityClusters, "Volatility clusters per trend cluster")
	f.String("linkage", d.Linkage, "Linkage: single, complete, average, ward")
	f.Bool("two-stage", d.TwoStage, "Subdivide trend clusters by volatility")
	f.Int("min-group-size", d.MinGroupSize, "Trend clusters at or below this size are not subdivided")
	f.Int("workers", d.Workers, "Concurrent workers")
	f.String("output", "", "Output file (default: stdout)")
	f.String("format", "json", "Output format: json, yaml")
	f.Bool("dendrograms", false, "Include dendrograms in the output")
	f.String("metrics-textfile", "", "Write Prometheus metrics to this file after the run")
	f.Bool("trace", false, "Export OpenTelemetry spans")
	f.String("trace-output", "stderr", "Span destination: stdout, stderr or a file")
}

// runClustering executes one configured run and writes the report to stdout
// unless cfg.Output.Path is set.
func runClustering(ctx context.Context, cfg *config.Config, stdout io.Writer) (err error) {
	if ctx == nil {
		ctx = context.Background()
	}
	log, err := logging.New(cfg.Log.Level, cfg.Log.Format, nil)
	if err != nil {
		return err
	}
	pcfg, err := cfg.PipelineConfig()
	if err != nil {
		return err
	}
	format, err := report.ParseFormat(cfg.Output.Format)
	if err != nil {
		return err
	}
	if cfg.Input.Path == "" {
		return fmt.Errorf("no input, set --input or input.path: %w", trendclust.ErrInvalidInput)
	}

	tp, shutdown, err := setupTracing(cfg.Tracing)
	if err != nil {
		return err
	}
	defer func() {
		if serr := shutdown(context.Background()); serr != nil && err == nil {
			err = serr
		}
	}()

	reg := prometheus.NewRegistry()
	metrics, err := pipeline.NewMetrics(reg)
	if err != nil {
		return err
	}

	s, err := series.LoadFile(cfg.Input.Path, cfg.Columns(), cfg.Input.Sheet)
	if err != nil {
		return err
	}
	log.WithFields(logrus.Fields{"input": cfg.Input.Path, "points": len(s)}).Info("series loaded")

	p, err := pipeline.New(pcfg,
		pipeline.WithLogger(log),
		pipeline.WithMetrics(metrics),
		pipeline.WithTracerProvider(tp),
	)
	if err != nil {
		return err
	}
	res, runErr := p.Run(ctx, s)

	if cfg.Metrics.Textfile != "" {
		if err := prometheus.WriteToTextfile(cfg.Metrics.Textfile, reg); err != nil {
			log.WithError(err).Warn("metrics textfile not written")
		}
	}
	if runErr != nil {
		return runErr
	}

	var opts []report.Option
	if cfg.Output.Dendrograms {
		opts = append(opts, report.WithDendrograms())
	}
	doc := report.Build(res, opts...)

	if cfg.Output.Path == "" {
		return report.Write(stdout, doc, format)
	}
	f, err := os.Create(cfg.Output.Path)
	if err != nil {
		return fmt.Errorf("create output: %w", err)
	}
	defer f.Close()
	if err := report.Write(f, doc, format); err != nil {
		return err
	}
	log.WithField("output", cfg.Output.Path).Info("report written")

	return nil
}
