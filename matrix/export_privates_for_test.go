// SPDX-License-Identifier: MIT

package matrix

// Test-Bridge (White-Box) for Private Multiplication Kernels
//
// Purpose:
//   - Expose the UNEXPORTED classical and Strassen kernels to
//     matrix_test ONLY, so tests can force the recursive path with a
//     lowered threshold and compare both paths across the dispatch
//     boundary, without widening the production API.
//
// Behavior & Determinism:
//   - Thin pass-throughs; no allocations beyond the wrapped kernels.
//
// Maintenance:
//   - If a private kernel changes signature, mirror the change here
//     once, not across many tests.

// MulStrassen_TestOnly forwards to the private mulStrassen kernel with a
// caller-chosen base-case threshold. Preconditions are the kernel's:
// square power-of-two operands of equal dimension.
func MulStrassen_TestOnly[T Numeric](a, b *Dense[T], threshold int) *Dense[T] {
	return mulStrassen(a, b, threshold)
}

// MulClassicalKernel_TestOnly forwards to the private classical kernel,
// bypassing validation. Shapes must already be compatible.
func MulClassicalKernel_TestOnly[T Numeric](a, b *Dense[T]) *Dense[T] {
	return mulClassical(a, b)
}
