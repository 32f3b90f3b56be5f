// SPDX-License-Identifier: MIT

// Package matrix: elementwise addition and subtraction. Both public
// facades validate first and then share one flat-loop kernel; the same
// kernel (unchecked) feeds the Strassen combinations, where shapes are
// guaranteed by construction.
package matrix

import "fmt"

// Operation name constants for unified error wrapping.
const (
	opAdd = "Add"
	opSub = "Sub"
	opMul = "Mul"
)

// opErrorf wraps err with an operation tag, preserving the sentinel via
// %w. Call only with err != nil.
func opErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ewAddSub computes out = a + sign·b over the flat buffers, for
// sign ∈ {+1, −1}. Internal kernel: shapes must already match. A fresh
// Dense is allocated; operands are never mutated.
// Deterministic single flat loop 0..n−1; O(r·c) time and space.
func ewAddSub[T Numeric](a, b *Dense[T], sign T) *Dense[T] {
	out := &Dense[T]{r: a.r, c: a.c, data: make([]T, len(a.data))}
	for idx := range a.data {
		out.data[idx] = a.data[idx] + sign*b.data[idx]
	}
	return out
}

// Add computes the elementwise sum C = A + B into a fresh matrix.
//
// Implementation:
//   - Stage 1: validateBinarySameShape(a, b).
//   - Stage 2: single flat loop over the backing slices.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (from validation).
//
// Determinism: flat 0..n−1 order. Complexity: O(r·c) time and space.
// Operands are never mutated.
func Add[T Numeric](a, b *Dense[T]) (*Dense[T], error) {
	if err := validateBinarySameShape(a, b); err != nil {
		return nil, opErrorf(opAdd, err)
	}
	return ewAddSub(a, b, 1), nil
}

// Sub computes the elementwise difference C = A − B into a fresh matrix.
//
// Implementation:
//   - Stage 1: validateBinarySameShape(a, b).
//   - Stage 2: single flat loop over the backing slices.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (from validation).
//
// Determinism: flat 0..n−1 order. Complexity: O(r·c) time and space.
// Operands are never mutated.
func Sub[T Numeric](a, b *Dense[T]) (*Dense[T], error) {
	if err := validateBinarySameShape(a, b); err != nil {
		return nil, opErrorf(opSub, err)
	}
	return ewAddSub(a, b, -1), nil
}
