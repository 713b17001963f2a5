// SPDX-License-Identifier: MIT

package source

import (
	"strings"

	"github.com/MRoblesR/signed-graphs/core"
	"github.com/MRoblesR/signed-graphs/graphio"
)

// EdgeListParser parses entries in the canonical edge-list format.
// Options select the adjacency mode of the produced graphs.
type EdgeListParser struct {
	Options []core.GraphOption
}

// ParseContent decodes entry into a numeric graph named after the entry.
func (p EdgeListParser) ParseContent(entry Entry) (*core.Graph[int], error) {
	return graphio.Decode(strings.NewReader(entry.Text), entry.Name, p.Options...)
}
