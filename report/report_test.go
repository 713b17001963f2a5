// SPDX-License-Identifier: MIT

package report_test

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MRoblesR/signed-graphs/core"
	"github.com/MRoblesR/signed-graphs/report"
)

func e(u, v int, w int64) core.Edge[int] {
	return core.Edge[int]{From: u, To: v, Weight: w}
}

func fixtures() []*core.Graph[int] {
	return []*core.Graph[int]{
		core.MustGraph("sample", []int{1, 2, 3, 4, 5},
			[]core.Edge[int]{e(1, 2, 1), e(1, 3, 1), e(2, 3, -1), e(4, 5, -1)}),
		core.MustGraph("k3", []int{1, 2, 3},
			[]core.Edge[int]{e(1, 2, 1), e(2, 3, -1), e(1, 3, 1)}),
		core.MustGraph[int]("empty", nil, nil),
	}
}

func TestCollect(t *testing.T) {
	p := report.Collect(fixtures()[0])
	assert.Equal(t, "sample", p.Name)
	assert.Equal(t, 5, p.Vertices)
	assert.Equal(t, 4, p.Edges)
	assert.Equal(t, 2, p.MaxDegree)
	assert.True(t, p.Density.Defined)
	assert.InDelta(t, 0.4, p.Density.Value, 1e-12)
	assert.InDelta(t, 0.8, p.AveragePositiveDegree.Value, 1e-12)
	assert.False(t, p.Complete)
}

func TestCollect_UndefinedMetrics(t *testing.T) {
	p := report.Collect(core.MustGraph("lonely", []int{1}, nil))
	assert.False(t, p.Density.Defined)
	assert.True(t, p.AverageDegree.Defined)
	assert.False(t, p.AverageWeight.Defined)
	assert.Equal(t, report.NotAvailable, p.Density.String())
	assert.Equal(t, "0", p.AverageDegree.String())
}

func TestWrite_Golden(t *testing.T) {
	var props []report.Properties
	for _, g := range fixtures() {
		props = append(props, report.Collect(g))
	}
	var buf bytes.Buffer
	require.NoError(t, report.Write(&buf, true, props...))

	gold := goldie.New(t)
	gold.Assert(t, "properties", buf.Bytes())
}

func TestExport_HeaderOnlyOnce(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "out")
	graphs := fixtures()

	path, err := report.ExportGraphs(dir, "", graphs[0])
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, report.DefaultFileName), path)

	_, err = report.ExportGraphs(dir, "", graphs[1], graphs[2])
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSuffix(string(data), "\n"), "\n")
	require.Len(t, lines, 4)
	assert.Equal(t, strings.Join(report.Header(), "\t"), lines[0])
	assert.True(t, strings.HasPrefix(lines[1], "sample\t"))
	assert.True(t, strings.HasPrefix(lines[2], "k3\t"))
	assert.True(t, strings.HasPrefix(lines[3], "empty\t"))
	assert.Equal(t, 1, strings.Count(string(data), "Graph name"))
}

func TestExport_AppendsToExistingFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "props.tsv")
	require.NoError(t, os.WriteFile(path, []byte("previous run\n"), 0o644))

	_, err := report.ExportGraphs(dir, "props.tsv", fixtures()[1])
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "previous run\nk3\t3\t3\t1\t2\t2\t1.3333333333333333\t0.6666666666666666\t0.3333333333333333\ttrue\n", string(data))
}

func TestExport_NoRows(t *testing.T) {
	dir := t.TempDir()
	path, err := report.Export(dir, "")
	require.NoError(t, err)
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, strings.Join(report.Header(), "\t")+"\n", string(data))
}
