// SPDX-License-Identifier: MIT

// Package lu: sentinel error set. All failures of the factorizer and
// solver are these sentinels (or matrix package sentinels for shape
// violations on the solve side), matched via errors.Is.
package lu

import "errors"

var (
	// ErrNonSquare signals that factorization was requested on a
	// non-square matrix. Surfaced before any work begins.
	ErrNonSquare = errors.New("lu: matrix is not square")

	// ErrSingular is returned when a pivot magnitude falls below
	// PivotTol during factorization. The wrapping error identifies the
	// offending pivot index; no partial Result is returned.
	ErrSingular = errors.New("lu: singular matrix")

	// ErrNilMatrix indicates a nil input matrix or nil Result.
	ErrNilMatrix = errors.New("lu: nil input")
)
