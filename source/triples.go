// SPDX-License-Identifier: MIT
//
// File: triples.go
// Role: Parser for labelled "<from> <to> <weight>" relation lists such as
//       trust ratings, votes or co-sponsorship exports.

package source

import (
	stderrors "errors"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/MRoblesR/signed-graphs/core"
)

// ErrBadRecord indicates a relation line that cannot be parsed.
var ErrBadRecord = stderrors.New("source: bad record")

// TripleParser parses one relation per line. Columns beyond the third
// (timestamps and the like) are ignored.
type TripleParser struct {
	// Delimiter separates columns; empty means any run of whitespace.
	Delimiter string
	// SkipLines drops a fixed preamble (headers, banners) before parsing.
	SkipLines int
	// Comment marks lines to ignore when it prefixes them; empty disables.
	Comment string
	// NormalizeSigns maps every positive weight to +1 and every
	// non-positive weight to -1.
	NormalizeSigns bool
	// Options select the adjacency mode of the produced graphs.
	Options []core.GraphOption
}

// ParseContent builds a string-labelled graph whose vertices appear in the
// order they are first mentioned. Blank lines are ignored.
func (p TripleParser) ParseContent(entry Entry) (*core.Graph[string], error) {
	type record struct {
		from, to string
		weight   int64
	}

	var (
		vertices []string
		seen     = make(map[string]struct{})
		records  []record
	)
	declare := func(v string) {
		if _, ok := seen[v]; !ok {
			seen[v] = struct{}{}
			vertices = append(vertices, v)
		}
	}

	for i, line := range strings.Split(entry.Text, "\n") {
		line = strings.TrimSpace(line)
		if i < p.SkipLines || line == "" || (p.Comment != "" && strings.HasPrefix(line, p.Comment)) {
			continue
		}
		fields := p.split(line)
		if len(fields) < 3 {
			return nil, errors.Wrapf(ErrBadRecord, "%s:%d: want at least 3 columns, got %d", entry.Name, i+1, len(fields))
		}
		w, err := strconv.ParseInt(fields[2], 10, 64)
		if err != nil {
			return nil, errors.Wrapf(ErrBadRecord, "%s:%d: weight %q is not an integer", entry.Name, i+1, fields[2])
		}
		if p.NormalizeSigns {
			w = sign(w)
		}
		declare(fields[0])
		declare(fields[1])
		records = append(records, record{from: fields[0], to: fields[1], weight: w})
	}

	g, err := core.NewGraph[string](entry.Name, vertices, nil, p.Options...)
	if err != nil {
		return nil, errors.Wrap(err, entry.Name)
	}
	for _, r := range records {
		if err = g.AddEdge(r.from, r.to, r.weight); err != nil {
			return nil, errors.Wrap(err, entry.Name)
		}
	}

	return g, nil
}

func (p TripleParser) split(line string) []string {
	if p.Delimiter == "" {
		return strings.Fields(line)
	}
	fields := strings.Split(line, p.Delimiter)
	for i := range fields {
		fields[i] = strings.TrimSpace(fields[i])
	}

	return fields
}

func sign(w int64) int64 {
	if w > 0 {
		return 1
	}

	return -1
}
