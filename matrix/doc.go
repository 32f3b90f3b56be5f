// SPDX-License-Identifier: MIT

// Package matrix provides the dense row-major container and the
// multiplication kernels of densemat.
//
// The package offers:
//
//   - Dense[T]: a rectangular grid of scalars stored in one contiguous
//     buffer (index = row·cols + col). Every Dense exclusively owns its
//     buffer; sub-matrix extraction copies, it never aliases.
//   - Elementwise Add/Sub with strict shape validation.
//   - Mul: a hybrid multiplier that runs the cache-ordered classical
//     O(n³) kernel for small operands and a padded Strassen
//     divide-and-conquer for large ones, cropping the result back to the
//     mathematically correct shape.
//   - Sub-block extraction/insertion and power-of-two padding, the raw
//     material of the recursive multiplier.
//   - Verify: exact elementwise check that A·X equals B.
//
// Element access is deliberately unchecked: At and Set index the flat
// buffer directly, and out-of-range coordinates are a precondition
// violation (they surface as a slice-bounds panic). All shape errors on
// the public operation surface are sentinel errors matched via errors.Is.
//
// The container is generic over signed numeric scalars; see the lu
// package for the floating-point-only factorization built on top of it.
package matrix
