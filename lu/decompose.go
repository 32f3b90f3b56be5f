// SPDX-License-Identifier: MIT

// Package lu: the pivoted factorizer. A strictly sequential
// left-to-right column sweep over a working copy; each pivot step
// depends on every previous elimination, so the loop structure below is
// the algorithm, not an optimization choice.
package lu

import (
	"fmt"
	"math"

	"github.com/katalvlaran/densemat/matrix"
)

// PivotTol is the near-zero pivot tolerance: a (post-swap) pivot whose
// magnitude falls below it marks the matrix as singular.
const PivotTol = 1e-15

// Decompose factorizes the square matrix a into a packed LU Result with
// partial pivoting.
//
// Implementation:
//   - Stage 1: validate a non-nil and square; clone a into a working
//     buffer; initialize Perm to identity and Sign to +1.
//   - Stage 2: for each pivot index i in 0..n−1:
//     (a) scan column i from row i downward for the largest |value|;
//     (b) if the winner differs from i, swap the two rows' entries from
//     column i onward, swap the Perm entries, flip Sign;
//     (c) if the pivot magnitude is below PivotTol, fail with
//     ErrSingular naming the pivot index, no partial Result;
//     (d) for each row j below i, store multiplier = LU(j,i)/LU(i,i)
//     into LU(j,i) (that cell is never again read as part of U) and
//     subtract multiplier×row i from row j over columns i+1..n−1.
//
// Behavior highlights:
//   - a is never mutated; all work happens on the clone.
//   - Deterministic: fixed scan and elimination orders, first-largest
//     pivot wins ties (strict > comparison).
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare (before factorization begins),
//     ErrSingular (wrapped with the pivot index).
//
// Complexity: O(n³) time, O(n²) space for the working copy.
func Decompose[T matrix.Float](a *matrix.Dense[T]) (*Result[T], error) {
	if a == nil {
		return nil, fmt.Errorf("Decompose: %w", ErrNilMatrix)
	}
	if a.Rows() != a.Cols() {
		return nil, fmt.Errorf("Decompose: %dx%d: %w", a.Rows(), a.Cols(), ErrNonSquare)
	}

	n := a.Rows()
	work := a.Clone() // in-place elimination happens on the copy only
	perm := make([]int, n)
	for i := range perm {
		perm[i] = i
	}
	sign := 1

	var (
		i, j, k  int // pivot column, row below, elimination column
		maxIndex int // row index of the current pivot candidate
		maxVal   float64
		mult     T // elimination multiplier, stored into the L triangle
		tmp      T // row-swap temporary
	)
	for i = 0; i < n; i++ {
		// (a) Partial pivot scan: largest |value| in column i, rows i..n−1.
		maxIndex = i
		maxVal = math.Abs(float64(work.At(i, i)))
		for j = i + 1; j < n; j++ {
			if v := math.Abs(float64(work.At(j, i))); v > maxVal {
				maxVal = v
				maxIndex = j
			}
		}

		// (b) Row swap from column i onward; columns left of i already
		// hold L multipliers of earlier steps and keep their rows.
		if maxIndex != i {
			for j = i; j < n; j++ {
				tmp = work.At(i, j)
				work.Set(i, j, work.At(maxIndex, j))
				work.Set(maxIndex, j, tmp)
			}
			perm[i], perm[maxIndex] = perm[maxIndex], perm[i]
			sign = -sign
		}

		// (c) Singularity guard on the (possibly swapped) pivot.
		if math.Abs(float64(work.At(i, i))) < PivotTol {
			return nil, fmt.Errorf("Decompose: null pivot at index %d: %w", i, ErrSingular)
		}

		// (d) Eliminate below the pivot; the multiplier overwrites the
		// eliminated cell, packing L into the strict lower triangle.
		for j = i + 1; j < n; j++ {
			mult = work.At(j, i) / work.At(i, i)
			work.Set(j, i, mult)
			for k = i + 1; k < n; k++ {
				work.Set(j, k, work.At(j, k)-mult*work.At(i, k))
			}
		}
	}

	return &Result[T]{LU: work, Perm: perm, Sign: sign}, nil
}
