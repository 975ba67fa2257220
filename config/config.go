// Package config loads trendclust settings from an optional YAML file,
// TRENDCLUST_* environment variables and bound command-line flags, in
// increasing order of precedence.
package config

import (
	"fmt"
	"runtime"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/katalvlaran/trendclust"
	"github.com/katalvlaran/trendclust/pipeline"
	"github.com/katalvlaran/trendclust/series"
)

// EnvPrefix prefixes every environment override, e.g. TRENDCLUST_PIPELINE_CLUSTERS.
const EnvPrefix = "TRENDCLUST"

// ErrLoad wraps file and decoding failures.
var ErrLoad = fmt.Errorf("config: load failed: %w", trendclust.ErrInvalidInput)

type Config struct {
	Log      LogConfig       `mapstructure:"log"`
	Input    InputConfig     `mapstructure:"input"`
	Pipeline pipeline.Config `mapstructure:"pipeline"`
	Output   OutputConfig    `mapstructure:"output"`
	Metrics  MetricsConfig   `mapstructure:"metrics"`
	Tracing  TracingConfig   `mapstructure:"tracing"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

type InputConfig struct {
	Path        string `mapstructure:"path"`
	Sheet       string `mapstructure:"sheet"`
	TimeColumn  string `mapstructure:"time_column"`
	ValueColumn string `mapstructure:"value_column"`
}

type OutputConfig struct {
	Path        string `mapstructure:"path"`
	Format      string `mapstructure:"format"`
	Dendrograms bool   `mapstructure:"dendrograms"`
}

type MetricsConfig struct {
	// Textfile, when set, receives the Prometheus registry after each run.
	Textfile string `mapstructure:"textfile"`
}

type TracingConfig struct {
	Enabled bool `mapstructure:"enabled"`
	// Output is "stdout", "stderr" or a file path.
	Output string `mapstructure:"output"`
}

// FlagKeys maps CLI flag names to the config keys they override.
var FlagKeys = map[string]string{
	"log-level":           "log.level",
	"log-format":          "log.format",
	"input":               "input.path",
	"sheet":               "input.sheet",
	"time-column":         "input.time_column",
	"value-column":        "input.value_column",
	"horizon":             "pipeline.horizon",
	"sample-length":       "pipeline.sample_length",
	"clusters":            "pipeline.clusters",
	"volatility-clusters": "pipeline.volatility_clusters",
	"linkage":             "pipeline.linkage",
	"two-stage":           "pipeline.two_stage",
	"min-group-size":      "pipeline.min_group_size",
	"workers":             "pipeline.workers",
	"output":              "output.path",
	"format":              "output.format",
	"dendrograms":         "output.dendrograms",
	"metrics-textfile":    "metrics.textfile",
	"trace":               "tracing.enabled",
	"trace-output":        "tracing.output",
}

// Load reads path (skipped when empty), applies environment overrides and
// the flags of fs that appear in FlagKeys (fs may be nil).
func Load(path string, fs *pflag.FlagSet) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if fs != nil {
		for name, key := range FlagKeys {
			if f := fs.Lookup(name); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return nil, fmt.Errorf("bind flag %s: %w", name, err)
				}
			}
		}
	}

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("%s: %w: %w", path, ErrLoad, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoad, err)
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	d := pipeline.DefaultConfig()
	cols := series.DefaultColumns()

	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")

	v.SetDefault("input.path", "")
	v.SetDefault("input.sheet", "")
	v.SetDefault("input.time_column", cols.Time)
	v.SetDefault("input.value_column", cols.Value)

	v.SetDefault("pipeline.horizon", d.Horizon)
	v.SetDefault("pipeline.sample_length", d.SampleLength)
	v.SetDefault("pipeline.clusters", d.Clusters)
	v.SetDefault("pipeline.volatility_clusters", d.VolatilityClusters)
	v.SetDefault("pipeline.linkage", d.Linkage)
	v.SetDefault("pipeline.two_stage", d.TwoStage)
	v.SetDefault("pipeline.min_group_size", d.MinGroupSize)
	v.SetDefault("pipeline.workers", runtime.NumCPU())

	v.SetDefault("output.path", "")
	v.SetDefault("output.format", "json")
	v.SetDefault("output.dendrograms", false)

	v.SetDefault("metrics.textfile", "")

	v.SetDefault("tracing.enabled", false)
	v.SetDefault("tracing.output", "stderr")
}

// PipelineConfig returns the validated pipeline section.
func (c *Config) PipelineConfig() (pipeline.Config, error) {
	if err := c.Pipeline.Validate(); err != nil {
		return pipeline.Config{}, err
	}

	return c.Pipeline, nil
}

// Columns returns the input column names.
func (c *Config) Columns() series.Columns {
	return series.Columns{Time: c.Input.TimeColumn, Value: c.Input.ValueColumn}
}
