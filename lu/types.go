// SPDX-License-Identifier: MIT

// Package lu: the factorization result type and its packed-triangle
// accessors. One buffer, two logical triangular views; the space
// optimization is part of the contract, not an implementation detail.
package lu

import "github.com/katalvlaran/densemat/matrix"

// Result is the output of Decompose: a packed factorization of a square
// matrix A such that permuting A's rows by Perm and multiplying the
// unpacked L·U reproduces that permuted A within floating-point
// tolerance.
//
// Invariants (established by Decompose, relied upon by Solve):
//   - LU is square; its upper triangle including the diagonal holds U,
//     its strict lower triangle holds the multipliers of L. L's unit
//     diagonal is implicit and never stored.
//   - Perm is a permutation of [0, Dim()): Perm[i] is the original row
//     index occupying position i after pivoting.
//   - Sign ∈ {+1, −1} is the parity of the number of row swaps.
//
// A Result is read-only after creation. Mutating LU (or constructing a
// Result by hand with a near-zero U diagonal) and then calling Solve is
// undefined behavior: Solve divides by the stored diagonal without
// re-checking it.
type Result[T matrix.Float] struct {
	LU   *matrix.Dense[T] // packed L (strict lower) and U (upper incl. diagonal)
	Perm []int            // permutation vector tracking row swaps
	Sign int              // swap-count parity, +1 or −1
}

// Dim returns the factorization dimension n. O(1).
func (r *Result[T]) Dim() int { return r.LU.Rows() }

// UpperAt reads the U factor at (i, j): the stored value on or above the
// diagonal, the additive identity below it.
//
// PRECONDITION: 0 ≤ i, j < Dim() (unchecked, like matrix.Dense access).
func (r *Result[T]) UpperAt(i, j int) T {
	if j < i {
		return 0
	}
	return r.LU.At(i, j)
}

// LowerAt reads the unit lower triangular L factor at (i, j): the stored
// multiplier below the diagonal, 1 on it, the additive identity above.
//
// PRECONDITION: 0 ≤ i, j < Dim() (unchecked).
func (r *Result[T]) LowerAt(i, j int) T {
	switch {
	case j < i:
		return r.LU.At(i, j)
	case j == i:
		return 1
	default:
		return 0
	}
}

// Det returns the determinant of the factorized matrix: the product of
// U's diagonal entries times the swap-parity sign. O(n).
func (r *Result[T]) Det() T {
	n := r.Dim()
	det := T(r.Sign)
	for i := 0; i < n; i++ {
		det *= r.LU.At(i, i)
	}
	return det
}
