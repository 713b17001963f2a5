// SPDX-License-Identifier: MIT
//
// File: pipeline.go
// Role: Sequential export run over every graph of a Source.

package pipeline

import (
	"fmt"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/plan-systems/klog"

	"github.com/MRoblesR/signed-graphs/core"
	"github.com/MRoblesR/signed-graphs/graphio"
	"github.com/MRoblesR/signed-graphs/report"
	"github.com/MRoblesR/signed-graphs/sampler"
	"github.com/MRoblesR/signed-graphs/source"
)

const dirPerm = 0o755

const (
	kindGraph  = "graph"
	kindSample = "sample"
)

// Summary counts what a run produced.
type Summary struct {
	Graphs       int
	Samples      int
	FilesWritten int
	Report       string
}

// SampleName names the sample of size k drawn from the graph called name:
// the name without its extension, then "_k".
func SampleName(name string, k int) string {
	return fmt.Sprintf("%s_%d", strings.TrimSuffix(name, filepath.Ext(name)), k)
}

// Run parses cfg.Source with src and writes the anonymized graphs, their
// samples and the properties report into cfg.Destination.
func Run[V core.VertexID](cfg Config, src source.Source[V]) (Summary, error) {
	var sum Summary
	if err := cfg.Validate(); err != nil {
		return sum, err
	}
	metrics := newRunMetrics()

	graphs, err := src.Parse(cfg.Source)
	if err != nil {
		return sum, errors.Wrap(err, "parse")
	}
	klog.Infof("pipeline: parsed %d graph(s) from %s", len(graphs), cfg.Source)
	sum.Graphs = len(graphs)
	metrics.graphs.Add(float64(len(graphs)))

	for _, g := range graphs {
		if err = exportGraph(cfg, g, &sum, metrics); err != nil {
			return sum, errors.Wrapf(err, "graph %s", g.Name())
		}
	}

	sum.Report, err = report.ExportGraphs(cfg.Destination, cfg.ReportFile, graphs...)
	if err != nil {
		return sum, errors.Wrap(err, "export properties")
	}
	klog.Infof("pipeline: %d graph(s), %d sample(s), %d file(s) written to %s",
		sum.Graphs, sum.Samples, sum.FilesWritten, cfg.Destination)

	if cfg.MetricsFile != "" {
		if err = metrics.writeTo(cfg.MetricsFile); err != nil {
			return sum, err
		}
	}

	return sum, nil
}

// exportGraph anonymizes and saves g, then draws, saves and reports one
// sample per configured size.
func exportGraph[V core.VertexID](cfg Config, g *core.Graph[V], sum *Summary, metrics *runMetrics) error {
	numeric, _, _ := g.GenerateNumericGraph()
	path, err := graphio.Save(numeric, cfg.Destination, "")
	if err != nil {
		return errors.Wrap(err, "save")
	}
	sum.FilesWritten++
	metrics.filesWritten.WithLabelValues(kindGraph).Inc()
	klog.V(2).Infof("pipeline: %s: |V|=%d |E|=%d -> %s", g.Name(), numeric.VertexCount(), numeric.EdgeCount(), path)

	for _, k := range cfg.SampleSizes {
		drawn, err := sampler.GenerateSubgraph(numeric, k, sampler.WithSeed(cfg.Seed))
		if err != nil {
			return errors.Wrapf(err, "sample %d", k)
		}
		sample, _, _ := drawn.GenerateNumericGraph()
		sample = sample.WithName(SampleName(g.Name(), k))
		if drawn.VertexCount() < k {
			klog.Warningf("pipeline: %s: sample %d holds only %d vertices", g.Name(), k, drawn.VertexCount())
		}

		if path, err = graphio.Save(sample, cfg.Destination, ""); err != nil {
			return errors.Wrapf(err, "save sample %d", k)
		}
		if _, err = report.ExportGraphs(cfg.Destination, cfg.ReportFile, sample); err != nil {
			return errors.Wrapf(err, "export sample %d", k)
		}
		sum.Samples++
		sum.FilesWritten++

		target := strconv.Itoa(k)
		metrics.filesWritten.WithLabelValues(kindSample).Inc()
		metrics.sampleVertices.WithLabelValues(g.Name(), target).Set(float64(sample.VertexCount()))
		metrics.sampleEdges.WithLabelValues(g.Name(), target).Set(float64(sample.EdgeCount()))
		klog.V(2).Infof("pipeline: %s: sample %d: |V|=%d |E|=%d -> %s",
			g.Name(), k, sample.VertexCount(), sample.EdgeCount(), path)
	}

	return nil
}
