// SPDX-License-Identifier: MIT
//
// File: source.go
// Role: Source/ContentParser contracts, directory listing and the Directory composition.

package source

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/pkg/errors"

	"github.com/MRoblesR/signed-graphs/core"
	"github.com/MRoblesR/signed-graphs/report"
)

// Entry is one raw input file: its base name and decoded text.
type Entry struct {
	Name string
	Text string
}

// ContentParser converts one raw Entry into a graph.
type ContentParser[V core.VertexID] interface {
	ParseContent(entry Entry) (*core.Graph[V], error)
}

// Source produces graphs from a file or directory path.
type Source[V core.VertexID] interface {
	Parse(path string) ([]*core.Graph[V], error)
}

// ReadEntry reads the file at path. Bytes that are not valid UTF-8 are dropped.
func ReadEntry(path string) (Entry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Entry{}, errors.Wrapf(err, "read %s", path)
	}

	return Entry{Name: filepath.Base(path), Text: strings.ToValidUTF8(string(data), "")}, nil
}

// ReadEntries reads every regular file directly inside dir, sorted by name.
// Subdirectories are skipped, not descended into.
func ReadEntries(dir string) ([]Entry, error) {
	items, err := os.ReadDir(dir)
	if err != nil {
		return nil, errors.Wrapf(err, "list %s", dir)
	}
	sort.Slice(items, func(i, j int) bool { return items[i].Name() < items[j].Name() })

	entries := make([]Entry, 0, len(items))
	for _, item := range items {
		if item.IsDir() {
			continue
		}
		entry, err := ReadEntry(filepath.Join(dir, item.Name()))
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}

	return entries, nil
}

// Directory is a Source that applies Parser to each file of a directory,
// or to a single file when the path names one.
type Directory[V core.VertexID] struct {
	Parser ContentParser[V]
}

var _ Source[int] = Directory[int]{}

// NewDirectory returns a Directory source backed by parser.
func NewDirectory[V core.VertexID](parser ContentParser[V]) Directory[V] {
	return Directory[V]{Parser: parser}
}

// Parse reads path and parses every entry in name order.
func (d Directory[V]) Parse(path string) ([]*core.Graph[V], error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, errors.Wrapf(err, "stat %s", path)
	}

	var entries []Entry
	if info.IsDir() {
		entries, err = ReadEntries(path)
	} else {
		var entry Entry
		entry, err = ReadEntry(path)
		entries = []Entry{entry}
	}
	if err != nil {
		return nil, err
	}

	graphs := make([]*core.Graph[V], 0, len(entries))
	for _, entry := range entries {
		g, err := d.Parser.ParseContent(entry)
		if err != nil {
			return nil, errors.Wrapf(err, "parse %s", entry.Name)
		}
		graphs = append(graphs, g)
	}

	return graphs, nil
}

// ExportProperties appends one report row per graph to dir/fileName.
func (d Directory[V]) ExportProperties(dir, fileName string, graphs []*core.Graph[V]) (string, error) {
	return report.ExportGraphs(dir, fileName, graphs...)
}
