package pipeline

import (
	"fmt"
	"runtime"

	"github.com/katalvlaran/trendclust/hcluster"
	"github.com/katalvlaran/trendclust/series"
)

// Defaults.
const (
	DefaultHorizon      = 5
	DefaultClusters     = 2
	DefaultVolClusters  = 2
	DefaultLinkage      = "complete"
	DefaultMinGroupSize = 10
)

// Config holds the pipeline hyperparameters.
type Config struct {
	// Horizon is the segmentation smoothing step h.
	Horizon int `mapstructure:"horizon" json:"horizon" yaml:"horizon"`
	// SampleLength is the number of points per sample L.
	SampleLength int `mapstructure:"sample_length" json:"sample_length" yaml:"sample_length"`
	// Clusters is the trend-stage cluster count K.
	Clusters int `mapstructure:"clusters" json:"clusters" yaml:"clusters"`
	// VolatilityClusters is the volatility-stage cluster count.
	VolatilityClusters int `mapstructure:"volatility_clusters" json:"volatility_clusters" yaml:"volatility_clusters"`
	// Linkage names the hcluster method used by both stages.
	Linkage string `mapstructure:"linkage" json:"linkage" yaml:"linkage"`
	// TwoStage enables volatility subdivision.
	TwoStage bool `mapstructure:"two_stage" json:"two_stage" yaml:"two_stage"`
	// MinGroupSize: trend groups with at most this many samples are not subdivided.
	MinGroupSize int `mapstructure:"min_group_size" json:"min_group_size" yaml:"min_group_size"`
	// Workers bounds the number of concurrent extraction / DTW goroutines.
	Workers int `mapstructure:"workers" json:"workers" yaml:"workers"`
}

// DefaultConfig returns the defaults of the reference analysis.
func DefaultConfig() Config {
	return Config{
		Horizon:            DefaultHorizon,
		SampleLength:       series.DefaultSampleLength,
		Clusters:           DefaultClusters,
		VolatilityClusters: DefaultVolClusters,
		Linkage:            DefaultLinkage,
		TwoStage:           true,
		MinGroupSize:       DefaultMinGroupSize,
		Workers:            runtime.NumCPU(),
	}
}

// Validate checks every field; Workers <= 0 is accepted and means NumCPU.
func (c Config) Validate() error {
	switch {
	case c.Horizon < 1:
		return fmt.Errorf("horizon=%d: %w", c.Horizon, ErrBadConfig)
	case c.SampleLength < 2:
		return fmt.Errorf("sample_length=%d: %w", c.SampleLength, ErrBadConfig)
	case c.Clusters < 1:
		return fmt.Errorf("clusters=%d: %w", c.Clusters, ErrBadConfig)
	case c.TwoStage && c.VolatilityClusters < 1:
		return fmt.Errorf("volatility_clusters=%d: %w", c.VolatilityClusters, ErrBadConfig)
	case c.MinGroupSize < 0:
		return fmt.Errorf("min_group_size=%d: %w", c.MinGroupSize, ErrBadConfig)
	}
	if _, err := hcluster.ParseMethod(c.Linkage); err != nil {
		return fmt.Errorf("linkage: %w", err)
	}

	return nil
}

func (c Config) workers() int {
	if c.Workers > 0 {
		return c.Workers
	}

	return runtime.NumCPU()
}
