// SPDX-License-Identifier: MIT

// Package matrix: the Dense container. Dense is a concrete, row-major
// grid of scalars backed by one flat slice for contiguity and cache
// friendliness. The buffer length always equals rows·cols and is never
// partially resized; arithmetic produces new instances instead of
// reshaping in place.
package matrix

import (
	"fmt"
	"strings"
)

// Dense is a row-major rows×cols matrix of T values.
// r is rows, c is columns, and data holds r·c elements in row-major
// order (index = row·c + col). Each Dense exclusively owns data: no
// constructor or operation in this package aliases another matrix's
// buffer.
type Dense[T Numeric] struct {
	r, c int // number of rows and columns
	data []T // flat backing storage, length == r*c
}

// New creates a rows×cols Dense initialized to the additive identity.
//
// Implementation:
//   - Stage 1: Validate rows ≥ 0 and cols ≥ 0.
//   - Stage 2: Allocate the flat backing slice (zero-filled by Go).
//
// Returns:
//   - *Dense[T]: freshly allocated zero matrix.
//   - error: ErrBadShape when either dimension is negative.
//
// Complexity: O(rows·cols) time and memory.
func New[T Numeric](rows, cols int) (*Dense[T], error) {
	if rows < 0 || cols < 0 {
		return nil, fmt.Errorf("New(%d,%d): %w", rows, cols, ErrBadShape)
	}
	return &Dense[T]{r: rows, c: cols, data: make([]T, rows*cols)}, nil
}

// NewVector wraps an ordered sequence of values as an n×1 matrix when
// asColumn is true, or a 1×n matrix otherwise. Values are copied; no 2D
// shape is inferred. A nil or empty slice yields a 0×1 (or 1×0) matrix.
// Complexity: O(n) time and memory.
func NewVector[T Numeric](values []T, asColumn bool) *Dense[T] {
	data := make([]T, len(values))
	copy(data, values)
	if asColumn {
		return &Dense[T]{r: len(values), c: 1, data: data}
	}
	return &Dense[T]{r: 1, c: len(values), data: data}
}

// Rows returns the number of rows. O(1).
func (m *Dense[T]) Rows() int { return m.r }

// Cols returns the number of columns. O(1).
func (m *Dense[T]) Cols() int { return m.c }

// At returns the element at (row, col).
//
// PRECONDITION: 0 ≤ row < Rows() and 0 ≤ col < Cols(). Indices are NOT
// bounds-checked against the declared shape; this is the deliberate
// hot-path trade-off of the container. A violation is programmer error
// and surfaces as a slice-bounds panic (or, for some in-range flat
// offsets, silently reads the wrong cell).
// Complexity: O(1).
func (m *Dense[T]) At(row, col int) T {
	return m.data[row*m.c+col]
}

// Set assigns v at (row, col).
//
// PRECONDITION: same as At. Indices must lie within the declared shape;
// no bounds checking is performed on the hot path.
// Complexity: O(1).
func (m *Dense[T]) Set(row, col int, v T) {
	m.data[row*m.c+col] = v
}

// Clone returns a deep copy of the matrix with an independent buffer.
// Complexity: O(r·c) time and memory.
func (m *Dense[T]) Clone() *Dense[T] {
	data := make([]T, len(m.data))
	copy(data, m.data)
	return &Dense[T]{r: m.r, c: m.c, data: data}
}

// Equal reports whether o has the same shape and exactly identical
// elements. Exact comparison is intentional: Verify requires
// bit-for-bit agreement, not tolerance.
// Complexity: O(r·c).
func (m *Dense[T]) Equal(o *Dense[T]) bool {
	if o == nil || m.r != o.r || m.c != o.c {
		return false
	}
	for idx, v := range m.data { // flat 0..n-1, deterministic
		if v != o.data[idx] {
			return false
		}
	}
	return true
}

// String implements fmt.Stringer for debugging, one bracketed row per
// line. Complexity: O(r·c).
func (m *Dense[T]) String() string {
	var sb strings.Builder
	var i, j int // loop iterators
	for i = 0; i < m.r; i++ {
		sb.WriteByte('[')
		for j = 0; j < m.c; j++ {
			fmt.Fprintf(&sb, "%v", m.data[i*m.c+j])
			if j < m.c-1 {
				sb.WriteString(", ")
			}
		}
		sb.WriteString("]\n")
	}
	return sb.String()
}
