// SPDX-License-Identifier: MIT

// Package report snapshots graph statistics into Properties and appends them
// as tab-separated rows to a shared report file.
//
// Report format (one header, then one row per exported graph):
//
//	Graph name  vertices  edges  density  degree  average_degree  average_pos_degree  average_neg_degree  average_weight  complete
//
// "degree" is the maximum vertex degree. Metrics that are undefined for a
// graph (density below two vertices, averages on an empty graph, average
// weight without edges) are written as NotAvailable.
//
// The report file is opened in append mode and never truncated; the header
// is written only when the file is empty, so several runs can share one file.
package report
