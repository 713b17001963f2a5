// SPDX-License-Identifier: MIT

// Package graphio reads and writes signed graphs in the edge-list format:
//
//	<vertexCount> <edgeCount>
//	<source> <destination> <weight>
//	...
//
// All fields are integers separated by single spaces; one edge per line, in
// edge order. Vertex identities are positional: Decode synthesizes vertices
// 1..vertexCount, so only numeric (anonymized) graphs round-trip losslessly.
//
// Save writes through a temporary file in the target directory and renames
// it into place, so a failed write never leaves a truncated file behind.
//
// Errors:
//
//	ErrMalformedFile - header, edge count, field count or field value does
//	                   not match the format; the message names the line.
package graphio
