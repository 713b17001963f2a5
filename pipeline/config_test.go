// SPDX-License-Identifier: MIT

package pipeline_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MRoblesR/signed-graphs/pipeline"
	"github.com/MRoblesR/signed-graphs/report"
	"github.com/MRoblesR/signed-graphs/sampler"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "sgexport.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))

	return path
}

func TestLoadConfig(t *testing.T) {
	path := writeConfig(t, `
source: data/original
destination: data/dataset
sample_sizes: [100, 500, 1000, 2500]
seed: 7
directed: true
format: triples
triples:
  delimiter: ","
  normalize_signs: true
`)
	cfg, err := pipeline.LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "data/original", cfg.Source)
	assert.Equal(t, "data/dataset", cfg.Destination)
	assert.Equal(t, []int{100, 500, 1000, 2500}, cfg.SampleSizes)
	assert.Equal(t, int64(7), cfg.Seed)
	assert.True(t, cfg.Directed)
	assert.Equal(t, pipeline.FormatTriples, cfg.Format)
	assert.Equal(t, ",", cfg.Triples.Delimiter)
	assert.True(t, cfg.Triples.NormalizeSigns)
	assert.Equal(t, "#", cfg.Triples.Comment)
	assert.Equal(t, report.DefaultFileName, cfg.ReportFile)
}

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := pipeline.LoadConfig(writeConfig(t, "source: in\ndestination: out\n"))
	require.NoError(t, err)
	assert.Equal(t, sampler.DefaultSeed, cfg.Seed)
	assert.False(t, cfg.Directed)
	assert.Equal(t, pipeline.FormatEdgeList, cfg.Format)
	assert.Empty(t, cfg.SampleSizes)
	assert.Empty(t, cfg.MetricsFile)
}

func TestLoadConfig_EnvOverrides(t *testing.T) {
	t.Setenv("SIGNET_SEED", "99")
	t.Setenv("SIGNET_DESTINATION", "elsewhere")
	t.Setenv("SIGNET_TRIPLES_SKIP_LINES", "4")

	cfg, err := pipeline.LoadConfig(writeConfig(t, "source: in\ndestination: out\nseed: 1\n"))
	require.NoError(t, err)
	assert.Equal(t, int64(99), cfg.Seed)
	assert.Equal(t, "elsewhere", cfg.Destination)
	assert.Equal(t, 4, cfg.Triples.SkipLines)
}

func TestLoadConfig_EnvOnly(t *testing.T) {
	t.Setenv("SIGNET_SOURCE", "in")
	t.Setenv("SIGNET_DESTINATION", "out")

	cfg, err := pipeline.LoadConfig("")
	require.NoError(t, err)
	assert.Equal(t, "in", cfg.Source)
}

func TestLoadConfig_Invalid(t *testing.T) {
	tests := []struct {
		name, body string
	}{
		{"missing source", "destination: out\n"},
		{"missing destination", "source: in\n"},
		{"negative sample", "source: in\ndestination: out\nsample_sizes: [10, -1]\n"},
		{"unknown format", "source: in\ndestination: out\nformat: graphml\n"},
		{"negative skip", "source: in\ndestination: out\ntriples:\n  skip_lines: -2\n"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := pipeline.LoadConfig(writeConfig(t, tc.body))
			assert.ErrorIs(t, err, pipeline.ErrInvalidConfig)
		})
	}
}

func TestLoadConfig_MissingFile(t *testing.T) {
	_, err := pipeline.LoadConfig(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}

func TestSampleName(t *testing.T) {
	assert.Equal(t, "soc-sign-bitcoinalpha_100", pipeline.SampleName("soc-sign-bitcoinalpha.csv", 100))
	assert.Equal(t, "votes_5", pipeline.SampleName("votes", 5))
	assert.Equal(t, "a.b_3", pipeline.SampleName("a.b.txt", 3))
}
