// SPDX-License-Identifier: MIT
//
// File: encode.go
// Role: Edge-list writer and atomic file save.

package graphio

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"

	"github.com/MRoblesR/signed-graphs/core"
)

const (
	// Extension is appended to saved file names that lack it.
	Extension = ".txt"
	// DefaultFileName is used when neither a file name nor a graph name is given.
	DefaultFileName = "graph"

	dirPerm  = 0o755
	filePerm = 0o644
)

// Encode writes g to w in edge-list format.
// Complexity: O(E).
func Encode[V core.VertexID](w io.Writer, g *core.Graph[V]) error {
	bw := bufio.NewWriter(w)
	edges := g.Edges()
	if _, err := fmt.Fprintf(bw, "%d %d\n", g.VertexCount(), len(edges)); err != nil {
		return errors.Wrap(err, "write header")
	}
	for i, e := range edges {
		if _, err := fmt.Fprintf(bw, "%v %v %d\n", e.From, e.To, e.Weight); err != nil {
			return errors.Wrapf(err, "write edge #%d", i)
		}
	}

	return errors.Wrap(bw.Flush(), "flush")
}

// FileName resolves the on-disk name for g: fileName if non-empty, else the
// graph name, else DefaultFileName; Extension is appended when missing.
func FileName(graphName, fileName string) string {
	name := fileName
	if name == "" {
		name = graphName
	}
	if name == "" {
		name = DefaultFileName
	}
	if !strings.HasSuffix(name, Extension) {
		name += Extension
	}

	return name
}

// Save writes g into dir (created if absent) and returns the written path.
// See FileName for how the name is chosen. An existing file is replaced;
// the result is written with mode 0644.
func Save[V core.VertexID](g *core.Graph[V], dir, fileName string) (string, error) {
	if err := os.MkdirAll(dir, dirPerm); err != nil {
		return "", errors.Wrapf(err, "create directory %s", dir)
	}
	path := filepath.Join(dir, FileName(g.Name(), fileName))

	tmp, err := os.CreateTemp(dir, ".graph-*")
	if err != nil {
		return "", errors.Wrap(err, "create temp file")
	}
	defer os.Remove(tmp.Name()) // no-op after a successful rename

	if err = Encode(tmp, g); err != nil {
		tmp.Close()
		return "", errors.Wrapf(err, "encode %s", path)
	}
	if err = tmp.Chmod(filePerm); err != nil {
		tmp.Close()
		return "", errors.Wrap(err, "chmod temp file")
	}
	if err = tmp.Sync(); err != nil {
		tmp.Close()
		return "", errors.Wrap(err, "sync temp file")
	}
	if err = tmp.Close(); err != nil {
		return "", errors.Wrap(err, "close temp file")
	}
	if err = os.Rename(tmp.Name(), path); err != nil {
		return "", errors.Wrapf(err, "rename temp file to %s", path)
	}

	return path, nil
}
