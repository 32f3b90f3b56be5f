// SPDX-License-Identifier: MIT

package matrix

// Verify reports whether A·X equals B elementwise EXACTLY. It is the
// small verification utility solvers' callers use to confirm a computed
// solution or product against an expected matrix.
//
// The product is computed with the hybrid Mul dispatcher; a shape
// mismatch between the product and B yields false (not an error), while
// multiplication failures (nil operand, incompatible inner dimensions)
// propagate.
//
// Complexity: one Mul plus an O(r·c) exact comparison.
func Verify[T Numeric](a, x, b *Dense[T]) (bool, error) {
	product, err := Mul(a, x)
	if err != nil {
		return false, err
	}
	return product.Equal(b), nil
}
