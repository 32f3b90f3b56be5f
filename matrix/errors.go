// SPDX-License-Identifier: MIT

// Package matrix: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the
// matrix package. All operations MUST return these sentinels and tests
// MUST check them via errors.Is. No operation panics on user-triggered
// error conditions; panics are reserved for precondition violations of
// the unchecked hot path (out-of-range At/Set, sub-block bounds).
package matrix

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for consistency and to
// allow easy grepping across logs. Do not %w-wrap these sentinels when
// returning directly; if context is essential, wrap with
// fmt.Errorf("ctx: %w", ErrX) at the operation boundary; callers still
// match via errors.Is.

var (
	// ErrBadShape is returned when a requested shape is invalid
	// (negative row/column count at construction, or a padding/crop
	// target that cannot contain/fit the source).
	ErrBadShape = errors.New("matrix: invalid shape")

	// ErrDimensionMismatch indicates incompatible dimensions between
	// operands: Add/Sub on different shapes, or Mul where
	// a.Cols != b.Rows.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNilMatrix indicates that a nil *Dense was passed to an
	// operation that requires a concrete matrix.
	ErrNilMatrix = errors.New("matrix: nil matrix")
)
