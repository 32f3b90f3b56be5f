// SPDX-License-Identifier: MIT

// Package matrix: the multiplication surface. One public dispatcher
// (Mul) chooses between the cache-ordered classical kernel and the
// padded Strassen recursion; MulClassical exposes the cubic kernel
// directly for callers that want to force it (cross-checks, benchmarks).
package matrix

// MulThreshold is the hybrid dispatch cutoff. The dispatcher compares
// the smaller operand's element count against it (padding overhead is
// not justified below this scale), and the Strassen recursion compares
// the block dimension against it as the base case, bounding recursion
// depth to about log₂(n/MulThreshold).
const MulThreshold = 64

// Mul multiplies A (r₁×c₁) by B (r₂×c₂) and returns the r₁×c₂ product.
//
// Implementation:
//   - Stage 1: validateMulCompatible(a, b): c₁ must equal r₂.
//   - Stage 2: hybrid dispatch. If min(len(A), len(B)) element count is
//     below MulThreshold, run the classical i→k→j kernel directly.
//     Otherwise pad both operands with zeros to the smallest power of
//     two ≥ max(r₁, c₁, r₂, c₂), run the Strassen recursion on the
//     square operands, and crop the result back to r₁×c₂.
//
// Behavior highlights:
//   - Purely functional: inputs are never mutated, no partial result is
//     observable; the recursion allocates fresh temporaries per level.
//   - Both paths produce the same product (the Strassen path within
//     floating-point reassociation tolerance).
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (from validation).
//
// Complexity: O(r₁·c₁·c₂) classical; ~O(n^2.81) on the padded size for
// the recursive path, with transient quadrant temporaries at each of
// O(log n) levels.
func Mul[T Numeric](a, b *Dense[T]) (*Dense[T], error) {
	if err := validateMulCompatible(a, b); err != nil {
		return nil, opErrorf(opMul, err)
	}

	// Small operands: recursion and padding overhead never pay off.
	if min(len(a.data), len(b.data)) < MulThreshold {
		return mulClassical(a, b), nil
	}

	// Pad both operands to a shared square power-of-two size.
	maxDim := max(a.r, a.c, b.r, b.c)
	size := NextPowerOfTwo(maxDim)
	ap, err := a.PadToSquare(size)
	if err != nil {
		return nil, opErrorf(opMul, err)
	}
	bp, err := b.PadToSquare(size)
	if err != nil {
		return nil, opErrorf(opMul, err)
	}

	// Recurse, then crop the square product to the true output shape.
	cp := mulStrassen(ap, bp, MulThreshold)
	out, err := cp.Crop(a.r, b.c)
	if err != nil {
		return nil, opErrorf(opMul, err)
	}
	return out, nil
}

// MulClassical multiplies A by B with the cubic kernel only, bypassing
// the hybrid dispatch. Same validation and contracts as Mul.
func MulClassical[T Numeric](a, b *Dense[T]) (*Dense[T], error) {
	if err := validateMulCompatible(a, b); err != nil {
		return nil, opErrorf(opMul, err)
	}
	return mulClassical(a, b), nil
}

// mulClassical is the classical O(r₁·c₁·c₂) kernel, iterated in
// i→k→j order: the innermost loop strides over row k of B and row i of
// the result, both contiguous in row-major storage, maximizing
// sequential access and cache-line reuse. Internal: shapes must already
// be compatible. No partial result is visible until the full product
// returns; inputs are untouched.
func mulClassical[T Numeric](a, b *Dense[T]) *Dense[T] {
	out := &Dense[T]{r: a.r, c: b.c, data: make([]T, a.r*b.c)}
	var (
		i, k, j            int // loop iterators, fixed i→k→j order
		rowA, rowB, rowOut int // flat row offsets
		aik                T   // A[i,k], hoisted out of the j loop
	)
	for i = 0; i < a.r; i++ {
		rowA = i * a.c
		rowOut = i * b.c
		for k = 0; k < a.c; k++ {
			aik = a.data[rowA+k]
			if aik == 0 {
				continue // zero row entry contributes nothing
			}
			rowB = k * b.c
			for j = 0; j < b.c; j++ {
				out.data[rowOut+j] += aik * b.data[rowB+j]
			}
		}
	}
	return out
}

// mulStrassen multiplies two square n×n matrices with Strassen's
// divide-and-conquer identity.
//
// PRECONDITIONS (guaranteed by the Mul dispatcher): a and b are square,
// share dimension n, and n is a power of two.
//
// Implementation:
//   - Base case: n ≤ threshold delegates to the classical kernel.
//   - Recursive case: partition both operands into four (n/2)×(n/2)
//     quadrants, form the seven products M1..M7 from add/sub
//     combinations of quadrants, then combine them into the four result
//     quadrants C11..C22 and assemble. The combination order M1..M7 →
//     C11..C22 is fixed: floating-point accumulation is not
//     reassociation-free, so the order is part of the contract.
//
// Purely functional at every level: inputs are never mutated, all
// temporaries are freshly allocated, no aliasing between levels.
func mulStrassen[T Numeric](a, b *Dense[T], threshold int) *Dense[T] {
	n := a.r
	if n <= threshold {
		return mulClassical(a, b)
	}
	half := n / 2

	// Quadrant split (independent copies).
	a11 := a.SubMatrix(0, 0, half)
	a12 := a.SubMatrix(0, half, half)
	a21 := a.SubMatrix(half, 0, half)
	a22 := a.SubMatrix(half, half, half)

	b11 := b.SubMatrix(0, 0, half)
	b12 := b.SubMatrix(0, half, half)
	b21 := b.SubMatrix(half, 0, half)
	b22 := b.SubMatrix(half, half, half)

	// Seven products replacing the eight naive block multiplications.
	m1 := mulStrassen(ewAddSub(a11, a22, 1), ewAddSub(b11, b22, 1), threshold)  // (A11+A22)(B11+B22)
	m2 := mulStrassen(ewAddSub(a21, a22, 1), b11, threshold)                    // (A21+A22)B11
	m3 := mulStrassen(a11, ewAddSub(b12, b22, -1), threshold)                   // A11(B12−B22)
	m4 := mulStrassen(a22, ewAddSub(b21, b11, -1), threshold)                   // A22(B21−B11)
	m5 := mulStrassen(ewAddSub(a11, a12, 1), b22, threshold)                    // (A11+A12)B22
	m6 := mulStrassen(ewAddSub(a21, a11, -1), ewAddSub(b11, b12, 1), threshold) // (A21−A11)(B11+B12)
	m7 := mulStrassen(ewAddSub(a12, a22, -1), ewAddSub(b21, b22, 1), threshold) // (A12−A22)(B21+B22)

	// Result quadrants, fixed combination order.
	c11 := ewAddSub(ewAddSub(ewAddSub(m1, m4, 1), m5, -1), m7, 1) // M1+M4−M5+M7
	c12 := ewAddSub(m3, m5, 1)                                    // M3+M5
	c21 := ewAddSub(m2, m4, 1)                                    // M2+M4
	c22 := ewAddSub(ewAddSub(ewAddSub(m1, m2, -1), m3, 1), m6, 1) // M1−M2+M3+M6

	// Assemble the n×n product from the quadrants.
	out := &Dense[T]{r: n, c: n, data: make([]T, n*n)}
	out.SetSubMatrix(0, 0, c11)
	out.SetSubMatrix(0, half, c12)
	out.SetSubMatrix(half, 0, c21)
	out.SetSubMatrix(half, half, c22)
	return out
}
