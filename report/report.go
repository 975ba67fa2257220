package report

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/trendclust"
	"github.com/katalvlaran/trendclust/hcluster"
	"github.com/katalvlaran/trendclust/pipeline"
)

// Format selects the document encoding.
type Format string

// Supported formats.
const (
	JSON Format = "json"
	YAML Format = "yaml"
)

// ErrUnknownFormat indicates an unsupported output format.
var ErrUnknownFormat = fmt.Errorf("report: unknown format: %w", trendclust.ErrInvalidInput)

// ParseFormat maps "json", "yaml" or "yml" (any case) to a Format.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "json":
		return JSON, nil
	case "yaml", "yml":
		return YAML, nil
	default:
		return "", fmt.Errorf("%q: %w", s, ErrUnknownFormat)
	}
}

// Document is the serialisable form of a clustering run.
type Document struct {
	RunID       string          `json:"run_id" yaml:"run_id"`
	Config      pipeline.Config `json:"config" yaml:"config"`
	Samples     int             `json:"samples" yaml:"samples"`
	Clusters    []Cluster       `json:"clusters" yaml:"clusters"`
	Dendrograms []Dendrogram    `json:"dendrograms,omitempty" yaml:"dendrograms,omitempty"`
}

// Cluster is one trend cluster.
type Cluster struct {
	Label      int          `json:"label" yaml:"label"`
	Size       int          `json:"size" yaml:"size"`
	Samples    []string     `json:"samples" yaml:"samples"`
	Subdivided bool         `json:"subdivided" yaml:"subdivided"`
	Volatility []SubCluster `json:"volatility" yaml:"volatility"`
}

// SubCluster is one volatility cluster.
type SubCluster struct {
	Label   int      `json:"label" yaml:"label"`
	Samples []string `json:"samples" yaml:"samples"`
}

// Dendrogram is one stage's merge history with leaves named by sample.
// Merge ids below len(Leaves) refer to Members, not to the leaf order.
type Dendrogram struct {
	Stage   string               `json:"stage" yaml:"stage"`
	Cluster int                  `json:"cluster,omitempty" yaml:"cluster,omitempty"`
	Members []string             `json:"members" yaml:"members"`
	Leaves  []string             `json:"leaves" yaml:"leaves"`
	Tree    *hcluster.Dendrogram `json:"tree" yaml:"tree"`
}

// Option customizes Build.
type Option func(*options)

type options struct {
	dendrograms bool
}

// WithDendrograms includes the per-stage merge histories.
func WithDendrograms() Option {
	return func(o *options) { o.dendrograms = true }
}

// Build converts res. A nil or empty result yields a document with no clusters.
func Build(res *pipeline.Result, opts ...Option) Document {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	doc := Document{Clusters: []Cluster{}}
	if res == nil {
		return doc
	}
	doc.RunID = res.RunID
	doc.Config = res.Config
	doc.Samples = len(res.Names)

	for _, c := range res.Clusters {
		out := Cluster{
			Label:      c.Label,
			Size:       len(c.Indices),
			Samples:    formatNames(c.Names),
			Subdivided: c.Subdivided,
		}
		for _, s := range c.Sub {
			out.Volatility = append(out.Volatility, SubCluster{Label: s.Label, Samples: formatNames(s.Names)})
		}
		doc.Clusters = append(doc.Clusters, out)
	}

	if !o.dendrograms || res.Trend == nil {
		return doc
	}
	doc.Dendrograms = append(doc.Dendrograms, dendrogram(pipeline.StageTrend, 0, res.Trend, res.Names))
	for _, c := range res.Clusters {
		if c.Volatility != nil {
			doc.Dendrograms = append(doc.Dendrograms, dendrogram(pipeline.StageVolatility, c.Label, c.Volatility, res.Names))
		}
	}

	return doc
}

func dendrogram(stage string, cluster int, st *pipeline.Stage, names []time.Time) Dendrogram {
	members := make([]string, len(st.Members))
	for i, k := range st.Members {
		members[i] = names[k].Format(time.RFC3339)
	}
	leaves := make([]string, 0, len(members))
	for _, leaf := range st.Dendrogram.Leaves() {
		leaves = append(leaves, members[leaf])
	}

	return Dendrogram{Stage: stage, Cluster: cluster, Members: members, Leaves: leaves, Tree: st.Dendrogram}
}

func formatNames(ts []time.Time) []string {
	out := make([]string, len(ts))
	for i, t := range ts {
		out[i] = t.Format(time.RFC3339)
	}

	return out
}

// Write encodes doc to w in format f.
func Write(w io.Writer, doc Document, f Format) error {
	switch f {
	case JSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(doc); err != nil {
			return fmt.Errorf("report: encode json: %w", err)
		}

		return nil
	case YAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(doc); err != nil {
			return fmt.Errorf("report: encode yaml: %w", err)
		}

		return enc.Close()
	default:
		return fmt.Errorf("%q: %w", string(f), ErrUnknownFormat)
	}
}
