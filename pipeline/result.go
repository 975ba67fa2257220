package pipeline

import (
	"time"

	"github.com/katalvlaran/trendclust/hcluster"
	"github.com/katalvlaran/trendclust/matrix"
)

// nameLayout formats sample names in logs and errors.
const nameLayout = time.RFC3339

// Stage is the clustering state of one stage over a subset of samples.
type Stage struct {
	// Members are the sample indices clustered by this stage, in order;
	// Labels[i] belongs to Members[i].
	Members    []int
	Distance   *matrix.Distance
	Dendrogram *hcluster.Dendrogram
	Labels     hcluster.Labels
}

// SubCluster is one volatility cluster inside a trend cluster.
type SubCluster struct {
	Label   int
	Indices []int
	Names   []time.Time
}

// Cluster is one trend cluster.
type Cluster struct {
	Label   int
	Indices []int
	Names   []time.Time
	// Subdivided reports whether the volatility stage ran for this cluster.
	// When false, Sub holds a single sub-cluster labelled 1 with every member.
	Subdivided bool
	Sub        []SubCluster
	// Volatility is nil unless Subdivided.
	Volatility *Stage
}

// Result is the outcome of one Run.
type Result struct {
	RunID    string
	Config   Config
	Names    []time.Time
	Features []Features
	// Trend is nil when the input held no full sample.
	Trend    *Stage
	Clusters []Cluster
}

// Empty reports whether no sample was clustered.
func (r *Result) Empty() bool {
	return r == nil || len(r.Clusters) == 0
}

// Flat returns trend label → sample names.
func (r *Result) Flat() map[int][]time.Time {
	out := make(map[int][]time.Time)
	if r == nil {
		return out
	}
	for _, c := range r.Clusters {
		out[c.Label] = append([]time.Time(nil), c.Names...)
	}

	return out
}

// Nested returns trend label → volatility label → sample names.
// Clusters that were not subdivided map to a single sub-cluster 1.
func (r *Result) Nested() map[int]map[int][]time.Time {
	out := make(map[int]map[int][]time.Time)
	if r == nil {
		return out
	}
	for _, c := range r.Clusters {
		inner := make(map[int][]time.Time, len(c.Sub))
		for _, s := range c.Sub {
			inner[s.Label] = append([]time.Time(nil), s.Names...)
		}
		out[c.Label] = inner
	}

	return out
}

// namesOf maps sample indices to their names.
func namesOf(all []time.Time, idx []int) []time.Time {
	out := make([]time.Time, len(idx))
	for i, k := range idx {
		out[i] = all[k]
	}

	return out
}
