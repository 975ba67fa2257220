package pipeline

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/katalvlaran/trendclust/hcluster"
	"github.com/katalvlaran/trendclust/series"
)

const tracerName = "github.com/katalvlaran/trendclust/pipeline"

// Stage names used in spans, logs and metrics.
const (
	StageSlice      = "slice"
	StageExtract    = "extract"
	StageTrend      = "trend"
	StageVolatility = "volatility"
)

// Pipeline runs the clustering stages with a fixed configuration.
// It is safe for concurrent use; each Run is independent.
type Pipeline struct {
	cfg     Config
	method  hcluster.Method
	log     logrus.FieldLogger
	metrics *Metrics
	tracer  trace.Tracer
}

// New validates cfg and applies opts.
func New(cfg Config, opts ...Option) (*Pipeline, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	method, _ := hcluster.ParseMethod(cfg.Linkage) // checked by Validate

	p := &Pipeline{
		cfg:    cfg,
		method: method,
		log:    discardLogger(),
		tracer: otel.GetTracerProvider().Tracer(tracerName),
	}
	for _, opt := range opts {
		opt(p)
	}

	return p, nil
}

// Config returns the configuration the pipeline was built with.
func (p *Pipeline) Config() Config { return p.cfg }

// Run clusters the samples of s.
//
// Stage 1 (Slice): non-overlapping samples of SampleLength points; an input
// without a full sample yields an empty Result and no error.
// Stage 2 (Extract): changepoints (and volatility sequences if TwoStage).
// Stage 3 (Trend): DTW matrix over changepoint values, cut into Clusters.
// Stage 4 (Volatility): every trend cluster with more than MinGroupSize
// members is re-clustered into VolatilityClusters by volatility shape.
func (p *Pipeline) Run(ctx context.Context, s series.Series) (res *Result, err error) {
	runID := uuid.NewString()
	log := p.log.WithField("run_id", runID)
	ctx, span := p.tracer.Start(ctx, "trendclust.run", trace.WithAttributes(
		attribute.String("trendclust.run_id", runID),
		attribute.Int("trendclust.points", len(s)),
	))
	started := time.Now()
	defer func() {
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		span.End()
		p.metrics.observeRun(err)
	}()

	res = &Result{RunID: runID, Config: p.cfg}

	var samples []series.Sample
	err = p.stage(ctx, log, StageSlice, func(context.Context) error {
		if verr := s.Validate(); verr != nil {
			return verr
		}
		var serr error
		samples, serr = series.Slice(s, p.cfg.SampleLength)

		return serr
	})
	if err != nil {
		return nil, err
	}
	if len(samples) == 0 {
		log.WithField("points", len(s)).Info("no full sample in input; empty result")
		return res, nil
	}
	p.metrics.addSamples(len(samples))
	res.Names = make([]time.Time, len(samples))
	for i := range samples {
		res.Names[i] = samples[i].Name()
	}

	err = p.stage(ctx, log, StageExtract, func(ctx context.Context) error {
		var eerr error
		res.Features, eerr = extract(ctx, samples, p.cfg.Horizon, p.cfg.TwoStage, p.cfg.workers())
		if eerr != nil {
			return eerr
		}
		for _, f := range res.Features {
			p.metrics.observeChangepoints(f.Changepoints.Len())
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	err = p.stage(ctx, log, StageTrend, func(ctx context.Context) error {
		members := make([]int, len(samples))
		seqs := make([][]float64, len(samples))
		for i := range samples {
			members[i] = i
			seqs[i] = res.Features[i].Changepoints.Values
		}
		st, terr := p.cluster(ctx, members, seqs, p.cfg.Clusters)
		if terr != nil {
			return terr
		}
		res.Trend = st
		res.Clusters = groupClusters(st, res.Names)

		return nil
	})
	if err != nil {
		return nil, err
	}

	if p.cfg.TwoStage {
		err = p.stage(ctx, log, StageVolatility, func(ctx context.Context) error {
			return p.subdivide(ctx, log, res)
		})
		if err != nil {
			return nil, err
		}
	}

	log.WithFields(logrus.Fields{
		"samples":   len(samples),
		"clusters":  len(res.Clusters),
		"two_stage": p.cfg.TwoStage,
		"elapsed":   time.Since(started),
	}).Info("clustering run complete")

	return res, nil
}

// subdivide runs the volatility stage on each large enough trend cluster.
func (p *Pipeline) subdivide(ctx context.Context, log logrus.FieldLogger, res *Result) error {
	for ci := range res.Clusters {
		c := &res.Clusters[ci]
		if len(c.Indices) <= p.cfg.MinGroupSize {
			log.WithFields(logrus.Fields{"cluster": c.Label, "size": len(c.Indices)}).
				Debug("cluster too small to subdivide")
			continue
		}
		seqs := make([][]float64, len(c.Indices))
		for i, k := range c.Indices {
			seqs[i] = res.Features[k].Volatility
		}
		st, err := p.cluster(ctx, c.Indices, seqs, p.cfg.VolatilityClusters)
		if err != nil {
			return fmt.Errorf("cluster %d: %w", c.Label, err)
		}
		c.Subdivided = true
		c.Volatility = st
		c.Sub = groupSub(st, res.Names)
	}

	return nil
}

// cluster builds the DTW matrix of seqs and cuts it into k clusters.
func (p *Pipeline) cluster(ctx context.Context, members []int, seqs [][]float64, k int) (*Stage, error) {
	d, err := distances(ctx, seqs, p.cfg.workers())
	if err != nil {
		return nil, err
	}
	labels, dg, err := hcluster.Cluster(d, k, p.method)
	if err != nil {
		return nil, err
	}

	return &Stage{Members: members, Distance: d, Dendrogram: dg, Labels: labels}, nil
}

// stage wraps fn in a span, a duration metric and debug logs.
func (p *Pipeline) stage(ctx context.Context, log logrus.FieldLogger, name string, fn func(context.Context) error) error {
	ctx, span := p.tracer.Start(ctx, "trendclust."+name)
	defer span.End()

	start := time.Now()
	err := fn(ctx)
	elapsed := time.Since(start)
	p.metrics.observeStage(name, elapsed, err)

	entry := log.WithFields(logrus.Fields{"stage": name, "elapsed": elapsed})
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		entry.WithError(err).Debug("stage failed")

		return stageErrorf(name, err)
	}
	entry.Debug("stage done")

	return nil
}

// groupClusters turns trend labels into ordered clusters, each starting
// unsubdivided with a single sub-cluster 1.
func groupClusters(st *Stage, names []time.Time) []Cluster {
	groups := st.Labels.Groups()
	out := make([]Cluster, 0, len(groups))
	for label := 1; label <= st.Labels.K(); label++ {
		idx := make([]int, len(groups[label]))
		for i, pos := range groups[label] {
			idx[i] = st.Members[pos]
		}
		ns := namesOf(names, idx)
		out = append(out, Cluster{
			Label:   label,
			Indices: idx,
			Names:   ns,
			Sub:     []SubCluster{{Label: 1, Indices: idx, Names: ns}},
		})
	}

	return out
}

// groupSub turns volatility labels into ordered sub-clusters.
func groupSub(st *Stage, names []time.Time) []SubCluster {
	groups := st.Labels.Groups()
	out := make([]SubCluster, 0, len(groups))
	for label := 1; label <= st.Labels.K(); label++ {
		idx := make([]int, len(groups[label]))
		for i, pos := range groups[label] {
			idx[i] = st.Members[pos]
		}
		out = append(out, SubCluster{Label: label, Indices: idx, Names: namesOf(names, idx)})
	}

	return out
}
