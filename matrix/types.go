// SPDX-License-Identifier: MIT

// Package matrix: scalar constraints shared across the container and the
// multiplication kernels. Only domain-facing type sets live here; errors
// and validators live in dedicated files per the package conventions.
package matrix

// Signed is the set of built-in signed integer scalars accepted by the
// container. Unsigned integers are excluded on purpose: the elementwise
// kernels and Strassen combinations rely on negation being total.
type Signed interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64
}

// Float is the set of real floating-point scalars. Factorization and
// solving (package lu) are restricted to this set because they divide by
// pivots; the container itself accepts any Numeric.
type Float interface {
	~float32 | ~float64
}

// Numeric is the full scalar set of the container: any type supporting
// addition, subtraction, and multiplication with exact Go semantics.
type Numeric interface {
	Signed | Float
}
