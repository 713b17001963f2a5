// Package signedgraphs is the home of an in-memory toolkit for canonicalizing
// signed social-network datasets: trust ratings, adminship votes, bill
// co-sponsorship and similar relations where every edge is either positive
// or negative.
//
// What it does:
//   - Core primitives: a generic Graph over int or string identifiers, with
//     an adjacency index kept in step with its edges under an R/W lock.
//   - Statistics: signed degrees, averages, densities, completeness.
//   - Anonymization: re-index any graph onto 1..n.
//   - Sampling: fixed-seed growth of vertex-bounded representative subgraphs.
//   - I/O: the "<|V|> <|E|>" edge-list format and an append-only TSV report.
//   - Batch: a configurable pipeline and the sgexport command.
//
// Everything is organized under these subpackages:
//
//	core/      Graph, Edge, Neighbor; queries, statistics, transformations
//	sampler/   GenerateSubgraph with injected random source
//	graphio/   Encode/Decode, Save/Read of edge-list files
//	report/    Properties snapshot and tab-separated export
//	source/    Source/ContentParser contracts, Directory, parsers
//	pipeline/  viper configuration, klog progress, prometheus run metrics
//	builder/   deterministic synthetic signed topologies (fixtures)
//	cmd/       sgexport batch binary
//	examples/  runnable walkthrough
//
// Quick ASCII example (undirected, "+" and "-" edges):
//
//	1 -+- 2      4 --- 5
//	 \   /         (-)
//	  + -
//	   3
//
// degree(1)=2, density=0.4, average positive degree=0.8, and the closed
// neighbourhood of 1 is the triangle {1,2,3}.
package signedgraphs
