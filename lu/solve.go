// SPDX-License-Identifier: MIT

// Package lu: the triangular solver. Consumes a Result read-only;
// permute → forward → backward, each pass in a fixed index order.
package lu

import (
	"fmt"

	"github.com/katalvlaran/densemat/matrix"
)

// Solve computes x such that A·x = b, given the Result of Decompose(A)
// and a right-hand side of length Dim().
//
// Implementation:
//   - Stage 1: permute: pb[i] = b[Perm[i]], reproducing the row swaps
//     performed during factorization.
//   - Stage 2: forward substitution, L·y = pb with L unit lower
//     triangular: y[i] = pb[i] − Σ_{j<i} LU(i,j)·y[j], increasing i.
//   - Stage 3: backward substitution, U·x = y with U's diagonal stored:
//     x[i] = (y[i] − Σ_{j>i} LU(i,j)·x[j]) / LU(i,i), decreasing i.
//
// PRECONDITION: res must come from Decompose and be unmodified since.
// The diagonal is NOT re-checked for near-zero values at solve time (it
// was checked during factorization); solving against a mutated or
// hand-built factorization with a near-zero diagonal is undefined
// behavior.
//
// Errors:
//   - ErrNilMatrix (nil res), matrix.ErrDimensionMismatch
//     (len(b) != Dim()).
//
// Complexity: O(n²) time, O(n) space for pb, y, x.
func Solve[T matrix.Float](res *Result[T], b []T) ([]T, error) {
	if res == nil || res.LU == nil {
		return nil, fmt.Errorf("Solve: %w", ErrNilMatrix)
	}
	n := res.Dim()
	if len(b) != n {
		return nil, fmt.Errorf("Solve: rhs length %d, dim %d: %w", len(b), n, matrix.ErrDimensionMismatch)
	}

	// Stage 1: apply the permutation to b.
	pb := make([]T, n)
	var i, j int // loop iterators
	for i = 0; i < n; i++ {
		pb[i] = b[res.Perm[i]]
	}

	// Stage 2: forward substitution (diagonal of L is implicitly 1).
	y := make([]T, n)
	var sum T
	for i = 0; i < n; i++ {
		sum = 0
		for j = 0; j < i; j++ {
			sum += res.LU.At(i, j) * y[j]
		}
		y[i] = pb[i] - sum
	}

	// Stage 3: backward substitution (diagonal of U is stored).
	x := make([]T, n)
	for i = n - 1; i >= 0; i-- {
		sum = 0
		for j = i + 1; j < n; j++ {
			sum += res.LU.At(i, j) * x[j]
		}
		x[i] = (y[i] - sum) / res.LU.At(i, i)
	}

	return x, nil
}
