// SPDX-License-Identifier: MIT
//
// File: export.go
// Role: Append-only TSV writer for Properties rows.

package report

import (
	"encoding/csv"
	"io"
	"os"
	"path/filepath"

	"github.com/pkg/errors"

	"github.com/MRoblesR/signed-graphs/core"
)

const (
	// DefaultFileName is used by Export when fileName is empty.
	DefaultFileName = "properties.txt"

	dirPerm  = 0o755
	filePerm = 0o644
)

// Write emits the rows of props to w, preceded by the header when
// withHeader is set.
func Write(w io.Writer, withHeader bool, props ...Properties) error {
	cw := csv.NewWriter(w)
	cw.Comma = '\t'
	if withHeader {
		if err := cw.Write(Header()); err != nil {
			return errors.Wrap(err, "write header")
		}
	}
	for _, p := range props {
		if err := cw.Write(p.Record()); err != nil {
			return errors.Wrapf(err, "write row %q", p.Name)
		}
	}
	cw.Flush()

	return errors.Wrap(cw.Error(), "flush")
}

// Export appends one row per Properties to dir/fileName, creating the
// directory and the file as needed. The header is written only when the
// file is empty. Returns the report path.
func Export(dir, fileName string, props ...Properties) (string, error) {
	if fileName == "" {
		fileName = DefaultFileName
	}
	if err := os.MkdirAll(dir, dirPerm); err != nil {
		return "", errors.Wrapf(err, "create directory %s", dir)
	}
	path := filepath.Join(dir, fileName)

	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, filePerm)
	if err != nil {
		return "", errors.Wrapf(err, "open %s", path)
	}
	info, err := f.Stat()
	if err != nil {
		f.Close()
		return "", errors.Wrapf(err, "stat %s", path)
	}
	if err = Write(f, info.Size() == 0, props...); err != nil {
		f.Close()
		return "", errors.Wrapf(err, "export to %s", path)
	}

	return path, errors.Wrapf(f.Close(), "close %s", path)
}

// ExportGraphs collects and exports the properties of every graph in order.
func ExportGraphs[V core.VertexID](dir, fileName string, graphs ...*core.Graph[V]) (string, error) {
	props := make([]Properties, len(graphs))
	for i, g := range graphs {
		props[i] = Collect(g)
	}

	return Export(dir, fileName, props...)
}
