// Package pipeline clusters the fixed-length samples of one price series by
// trend shape and, optionally, by volatility shape within each trend cluster.
//
// 🚀 What is the pipeline?
//
//	Slice      series → non-overlapping samples of SampleLength points
//	Extract    sample → changepoints (trend.Segment) [+ volatility.Sequence]
//	Trend      DTW over changepoint values → hcluster.Cluster(K)
//	Volatility per trend cluster larger than MinGroupSize:
//	           DTW over volatility sequences → hcluster.Cluster(VolatilityK)
//
// ✨ Key features
//
//   - Extraction and the upper-triangle DTW fill fan out over an errgroup
//     bounded by Config.Workers; results are deterministic regardless of it.
//   - Each stage is an OpenTelemetry span and a Prometheus histogram sample;
//     every run gets a UUID that is attached to logs and spans.
//   - Any failing sample fails the whole run. No partial results.
//
// ⚙️ Usage
//
//	p, err := pipeline.New(pipeline.DefaultConfig(), pipeline.WithLogger(log))
//	res, err := p.Run(ctx, s)
//	for label, names := range res.Flat() { ... }
package pipeline
