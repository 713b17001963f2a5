// SPDX-License-Identifier: MIT

// Package pipeline drives the dataset export batch:
//
//	parse ─▶ for each graph:
//	           anonymize ─▶ save
//	           for each sample size k:
//	             sample(k) ─▶ anonymize ─▶ rename <stem>_<k> ─▶ save ─▶ report row
//	         report rows of every parsed graph
//
// Configuration comes from a YAML file read with viper, overridable by
// SIGNET_* environment variables. The run is sequential; every stage error
// aborts it and is returned with the stage and graph name attached.
// Progress is logged with klog; when metrics_file is set, run counters are
// written in the Prometheus text format for node_exporter's textfile collector.
package pipeline
