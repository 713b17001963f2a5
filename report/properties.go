// SPDX-License-Identifier: MIT
//
// File: properties.go
// Role: Statistics snapshot of a single graph.

package report

import (
	"strconv"

	"github.com/MRoblesR/signed-graphs/core"
)

// NotAvailable is the cell text of an undefined metric.
const NotAvailable = "n/a"

// Metric is a statistic that may be undefined for a given graph.
type Metric struct {
	Value   float64
	Defined bool
}

// metric converts a (value, error) statistic; any error marks it undefined.
func metric(v float64, err error) Metric {
	return Metric{Value: v, Defined: err == nil}
}

// String renders the shortest decimal that round-trips, or NotAvailable.
func (m Metric) String() string {
	if !m.Defined {
		return NotAvailable
	}

	return strconv.FormatFloat(m.Value, 'g', -1, 64)
}

// Properties is one report row.
type Properties struct {
	Name                  string
	Vertices              int
	Edges                 int
	Density               Metric
	MaxDegree             int
	AverageDegree         Metric
	AveragePositiveDegree Metric
	AverageNegativeDegree Metric
	AverageWeight         Metric
	Complete              bool
}

// Collect computes the Properties of g.
// Complexity: O(V + E).
func Collect[V core.VertexID](g *core.Graph[V]) Properties {
	return Properties{
		Name:                  g.Name(),
		Vertices:              g.VertexCount(),
		Edges:                 g.EdgeCount(),
		Density:               metric(g.Density()),
		MaxDegree:             g.MaxDegree(),
		AverageDegree:         metric(g.AverageDegree()),
		AveragePositiveDegree: metric(g.AveragePositiveDegree()),
		AverageNegativeDegree: metric(g.AverageNegativeDegree()),
		AverageWeight:         metric(g.AverageWeight()),
		Complete:              g.IsComplete(),
	}
}

// Header returns the report column titles.
func Header() []string {
	return []string{
		"Graph name", "vertices", "edges", "density", "degree",
		"average_degree", "average_pos_degree", "average_neg_degree",
		"average_weight", "complete",
	}
}

// Record returns p as report cells, in Header order.
func (p Properties) Record() []string {
	return []string{
		p.Name,
		strconv.Itoa(p.Vertices),
		strconv.Itoa(p.Edges),
		p.Density.String(),
		strconv.Itoa(p.MaxDegree),
		p.AverageDegree.String(),
		p.AveragePositiveDegree.String(),
		p.AverageNegativeDegree.String(),
		p.AverageWeight.String(),
		strconv.FormatBool(p.Complete),
	}
}
