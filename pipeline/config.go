// SPDX-License-Identifier: MIT
//
// File: config.go
// Role: Run configuration loaded with viper (YAML file + SIGNET_* env + defaults).

package pipeline

import (
	stderrors "errors"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/viper"

	"github.com/MRoblesR/signed-graphs/core"
	"github.com/MRoblesR/signed-graphs/report"
	"github.com/MRoblesR/signed-graphs/sampler"
	"github.com/MRoblesR/signed-graphs/source"
)

// ErrInvalidConfig indicates a configuration that cannot drive a run.
var ErrInvalidConfig = stderrors.New("pipeline: invalid configuration")

// Input formats understood by NewIntSource / NewLabelledSource.
const (
	FormatEdgeList = "edgelist"
	FormatTriples  = "triples"
)

// EnvPrefix prefixes environment overrides, e.g. SIGNET_SEED or
// SIGNET_TRIPLES_DELIMITER.
const EnvPrefix = "SIGNET"

// Config is the full run configuration.
type Config struct {
	Source      string        `mapstructure:"source"`
	Destination string        `mapstructure:"destination"`
	ReportFile  string        `mapstructure:"report_file"`
	SampleSizes []int         `mapstructure:"sample_sizes"`
	Seed        int64         `mapstructure:"seed"`
	Directed    bool          `mapstructure:"directed"`
	MetricsFile string        `mapstructure:"metrics_file"`
	Format      string        `mapstructure:"format"`
	Triples     TriplesConfig `mapstructure:"triples"`
}

// TriplesConfig mirrors source.TripleParser for the triples format.
type TriplesConfig struct {
	Delimiter      string `mapstructure:"delimiter"`
	SkipLines      int    `mapstructure:"skip_lines"`
	Comment        string `mapstructure:"comment"`
	NormalizeSigns bool   `mapstructure:"normalize_signs"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("source", "")
	v.SetDefault("destination", "")
	v.SetDefault("report_file", report.DefaultFileName)
	v.SetDefault("sample_sizes", []int{})
	v.SetDefault("seed", sampler.DefaultSeed)
	v.SetDefault("directed", false)
	v.SetDefault("metrics_file", "")
	v.SetDefault("format", FormatEdgeList)
	v.SetDefault("triples.delimiter", "")
	v.SetDefault("triples.skip_lines", 0)
	v.SetDefault("triples.comment", "#")
	v.SetDefault("triples.normalize_signs", false)
}

// LoadConfig reads the YAML file at path (skipped when path is empty),
// applies SIGNET_* environment overrides and defaults, and validates the result.
func LoadConfig(path string) (Config, error) {
	v := viper.New()
	setDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return Config{}, errors.Wrapf(err, "read config %s", path)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, errors.Wrapf(ErrInvalidConfig, "decode: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Validate reports the first problem that would prevent a run.
func (c Config) Validate() error {
	switch {
	case c.Source == "":
		return errors.Wrap(ErrInvalidConfig, "source is required")
	case c.Destination == "":
		return errors.Wrap(ErrInvalidConfig, "destination is required")
	case c.Format != FormatEdgeList && c.Format != FormatTriples:
		return errors.Wrapf(ErrInvalidConfig, "unknown format %q", c.Format)
	case c.Triples.SkipLines < 0:
		return errors.Wrapf(ErrInvalidConfig, "triples.skip_lines=%d", c.Triples.SkipLines)
	}
	for _, k := range c.SampleSizes {
		if k < 0 {
			return errors.Wrapf(ErrInvalidConfig, "negative sample size %d", k)
		}
	}

	return nil
}

// GraphOptions returns the core options implied by the configuration.
func (c Config) GraphOptions() []core.GraphOption {
	return []core.GraphOption{core.WithDirected(c.Directed)}
}

// NewIntSource returns the edge-list source.
func (c Config) NewIntSource() source.Directory[int] {
	return source.NewDirectory[int](source.EdgeListParser{Options: c.GraphOptions()})
}

// NewLabelledSource returns the triples source.
func (c Config) NewLabelledSource() source.Directory[string] {
	return source.NewDirectory[string](source.TripleParser{
		Delimiter:      c.Triples.Delimiter,
		SkipLines:      c.Triples.SkipLines,
		Comment:        c.Triples.Comment,
		NormalizeSigns: c.Triples.NormalizeSigns,
		Options:        c.GraphOptions(),
	})
}
