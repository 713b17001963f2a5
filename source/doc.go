// SPDX-License-Identifier: MIT

// Package source turns raw dataset files into signed graphs.
//
// A Source parses a file or a directory into graphs. Directory implements
// Source for any ContentParser by composition: it lists the directory with
// ReadEntries (non-recursive, sorted by name, invalid UTF-8 dropped) and hands
// every Entry to the parser. Directory also exports the properties of the
// graphs it produced.
//
// Two parsers are provided:
//
//	EdgeListParser - the canonical "<|V|> <|E|>" edge-list format (graphio);
//	                 used to re-sample datasets that were already exported.
//	TripleParser   - one "<from> <to> <weight>" relation per line with
//	                 arbitrary string labels, optional delimiter, skipped
//	                 preamble, comments and sign normalization.
package source
