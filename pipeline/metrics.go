// SPDX-License-Identifier: MIT
//
// File: metrics.go
// Role: Per-run Prometheus counters, written as a textfile at the end of a run.

package pipeline

import (
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
)

// runMetrics lives in a private registry so repeated runs in one process
// (tests, embedding) never collide on registration.
type runMetrics struct {
	registry *prometheus.Registry

	graphs         prometheus.Counter
	filesWritten   *prometheus.CounterVec
	sampleVertices *prometheus.GaugeVec
	sampleEdges    *prometheus.GaugeVec
}

func newRunMetrics() *runMetrics {
	m := &runMetrics{
		registry: prometheus.NewRegistry(),
		graphs: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "signet_graphs_parsed_total",
			Help: "Graphs produced by the source",
		}),
		filesWritten: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "signet_files_written_total",
				Help: "Edge-list files written, by kind",
			},
			[]string{"kind"},
		),
		sampleVertices: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "signet_sample_vertices",
				Help: "Vertices in the sample drawn for a target size",
			},
			[]string{"graph", "target"},
		),
		sampleEdges: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "signet_sample_edges",
				Help: "Edges in the sample drawn for a target size",
			},
			[]string{"graph", "target"},
		),
	}
	m.registry.MustRegister(m.graphs, m.filesWritten, m.sampleVertices, m.sampleEdges)

	return m
}

// writeTo writes the registry to path in the text exposition format.
func (m *runMetrics) writeTo(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), dirPerm); err != nil {
		return errors.Wrapf(err, "create directory for %s", path)
	}

	return errors.Wrapf(prometheus.WriteToTextfile(path, m.registry), "write metrics %s", path)
}
