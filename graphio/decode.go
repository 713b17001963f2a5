// SPDX-License-Identifier: MIT
//
// File: decode.go
// Role: Edge-list reader.
// Policy:
//   - Exactly edgeCount edge lines must follow the header; only blank lines
//     may trail them.
//   - Endpoints must lie in 1..vertexCount.
//   - vertexCount is bounded by MaxVertices.

package graphio

import (
	"bufio"
	stderrors "errors"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/MRoblesR/signed-graphs/core"
)

const (
	// maxPrealloc bounds the edge capacity reserved from an untrusted header.
	maxPrealloc = 1 << 16
	// MaxVertices is the largest vertex count Decode accepts.
	MaxVertices = 1 << 26
)

// ErrMalformedFile indicates input that does not follow the edge-list format.
var ErrMalformedFile = stderrors.New("graphio: malformed edge-list file")

// Decode parses an edge-list stream into a numeric graph named name over the
// vertices 1..vertexCount. opts select the adjacency mode.
// Complexity: O(V + E).
func Decode(r io.Reader, name string, opts ...core.GraphOption) (*core.Graph[int], error) {
	sc := bufio.NewScanner(r)
	line := 0

	if !sc.Scan() {
		if err := sc.Err(); err != nil {
			return nil, errors.Wrap(err, "read header")
		}
		return nil, errors.Wrap(ErrMalformedFile, "missing header")
	}
	line++
	header, err := parseInts(sc.Text(), 2)
	if err != nil {
		return nil, errors.Wrapf(err, "line %d", line)
	}
	nv, ne := header[0], header[1]
	if nv < 0 || ne < 0 {
		return nil, errors.Wrapf(ErrMalformedFile, "line %d: negative count in header %q", line, sc.Text())
	}
	if nv > MaxVertices {
		return nil, errors.Wrapf(ErrMalformedFile, "line %d: vertex count %d too large", line, nv)
	}

	edges := make([]core.Edge[int], 0, min(ne, maxPrealloc))
	for len(edges) < int(ne) {
		if !sc.Scan() {
			if err = sc.Err(); err != nil {
				return nil, errors.Wrapf(err, "read line %d", line+1)
			}
			return nil, errors.Wrapf(ErrMalformedFile, "header declares %d edges, found %d", ne, len(edges))
		}
		line++
		fields, err := parseInts(sc.Text(), 3)
		if err != nil {
			return nil, errors.Wrapf(err, "line %d", line)
		}
		from, to := fields[0], fields[1]
		if from < 1 || from > nv || to < 1 || to > nv {
			return nil, errors.Wrapf(ErrMalformedFile, "line %d: endpoint outside 1..%d", line, nv)
		}
		edges = append(edges, core.Edge[int]{From: int(from), To: int(to), Weight: fields[2]})
	}
	for sc.Scan() {
		line++
		if strings.TrimSpace(sc.Text()) != "" {
			return nil, errors.Wrapf(ErrMalformedFile, "line %d: more edges than the %d declared", line, ne)
		}
	}
	if err = sc.Err(); err != nil {
		return nil, errors.Wrapf(err, "read line %d", line+1)
	}

	vertices := make([]int, nv)
	for i := range vertices {
		vertices[i] = i + 1
	}
	g, err := core.NewGraph(name, vertices, edges, opts...)
	if err != nil {
		return nil, errors.Wrap(err, "build graph")
	}

	return g, nil
}

// Read decodes the edge-list file at path. The graph is named after the
// file's base name.
func Read(path string, opts ...core.GraphOption) (*core.Graph[int], error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "open %s", path)
	}
	defer f.Close()

	g, err := Decode(f, filepath.Base(path), opts...)
	if err != nil {
		return nil, errors.Wrapf(err, "read %s", path)
	}

	return g, nil
}

// parseInts splits s on whitespace and parses exactly want integers.
func parseInts(s string, want int) ([]int64, error) {
	fields := strings.Fields(s)
	if len(fields) != want {
		return nil, errors.Wrapf(ErrMalformedFile, "want %d fields, got %d in %q", want, len(fields), s)
	}
	out := make([]int64, want)
	for i, f := range fields {
		v, err := strconv.ParseInt(f, 10, 64)
		if err != nil {
			return nil, errors.Wrapf(ErrMalformedFile, "field %d %q is not an integer", i+1, f)
		}
		out[i] = v
	}

	return out, nil
}
