// SPDX-License-Identifier: MIT

// Package lu provides the pivoted triangular factorization and the
// linear-system solver of densemat.
//
// Decompose factorizes a square matrix A with partial pivoting into a
// single packed buffer: the upper triangle (diagonal included) holds U,
// the strict lower triangle holds the multipliers of the unit lower
// triangular L (whose all-ones diagonal is never stored). Alongside the
// packed factors, a Result records the permutation vector P produced by
// the row swaps and the parity sign of the swap count, so that
// permuting A's rows by P and reassembling L·U reproduces that permuted
// A within floating-point tolerance.
//
// Solve consumes a Result read-only: it permutes the right-hand side,
// runs forward substitution against the implicit-unit L, then backward
// substitution against U. Det multiplies U's diagonal by the swap-parity
// sign.
//
// Entry points are constrained to matrix.Float scalars: elimination and
// substitution divide by pivots, which integer scalars cannot honor.
// Failures are sentinel errors (ErrNonSquare, ErrSingular) surfaced
// synchronously; no partial factorization is ever returned as valid.
package lu
