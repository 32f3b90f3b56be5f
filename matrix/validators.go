// SPDX-License-Identifier: MIT

// Package matrix: canonical validators shared by the public operations.
// Kernels stay minimal by delegating nil/shape checks here; validators
// return plain sentinels so call sites can wrap uniformly with their
// operation tag.
//
// All checks are pure, deterministic, O(1), and allocate nothing.
package matrix

import "fmt"

// validatorErrorf tags an underlying sentinel with the validator name,
// preserving errors.Is matching via %w.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// validateNotNil ensures m is a usable matrix value.
func validateNotNil[T Numeric](m *Dense[T]) error {
	if m == nil {
		return validatorErrorf("validateNotNil", ErrNilMatrix)
	}
	return nil
}

// validateBinarySameShape is the composite guard for elementwise kernels:
// NotNil(a) → NotNil(b) → identical shape.
func validateBinarySameShape[T Numeric](a, b *Dense[T]) error {
	if err := validateNotNil(a); err != nil {
		return validatorErrorf("validateBinarySameShape", ErrNilMatrix)
	}
	if err := validateNotNil(b); err != nil {
		return validatorErrorf("validateBinarySameShape", ErrNilMatrix)
	}
	if a.r != b.r || a.c != b.c {
		return validatorErrorf("validateBinarySameShape", ErrDimensionMismatch)
	}
	return nil
}

// validateMulCompatible ensures a.Cols == b.Rows, inputs non-nil.
func validateMulCompatible[T Numeric](a, b *Dense[T]) error {
	if err := validateNotNil(a); err != nil {
		return validatorErrorf("validateMulCompatible", ErrNilMatrix)
	}
	if err := validateNotNil(b); err != nil {
		return validatorErrorf("validateMulCompatible", ErrNilMatrix)
	}
	if a.c != b.r {
		return validatorErrorf("validateMulCompatible", ErrDimensionMismatch)
	}
	return nil
}
