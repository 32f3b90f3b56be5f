// SPDX-License-Identifier: MIT

// Package textio provides the plain-text file adapters the densemat
// kernel treats as external collaborators: a matrix reader/writer and a
// vector reader/writer.
//
// Matrix layout: a "rows cols" header line followed by rows lines of
// cols whitespace-separated values; the writer formats values with two
// decimal digits. Vector layout: a "size" header followed by size
// whitespace-separated values.
//
// The adapters only promise to produce/consume matrices and vectors
// satisfying the kernel's invariants (contiguous row-major buffer,
// length == rows·cols); the textual format itself is a collaborator
// concern, not a kernel concern. Files are float64, the CLI's working
// scalar.
package textio
