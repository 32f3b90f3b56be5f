// SPDX-License-Identifier: MIT

// Package matrix: sub-block extraction/insertion and square power-of-two
// padding. These are the building blocks of the recursive multiplier:
// quadrant splits are copies (never views), and padding extends a matrix
// with additive-identity entries to the square size the recursion needs.
package matrix

import "fmt"

// SubMatrix returns a new size×size matrix copied from the source region
// starting at (startRow, startCol).
//
// PRECONDITION: the region lies within bounds
// (startRow+size ≤ Rows(), startCol+size ≤ Cols()); the caller
// guarantees it, no check is performed. The result owns an independent
// buffer; mutating it never touches the source.
// Complexity: O(size²).
func (m *Dense[T]) SubMatrix(startRow, startCol, size int) *Dense[T] {
	sub := &Dense[T]{r: size, c: size, data: make([]T, size*size)}
	var i int // per-row copy over contiguous spans
	for i = 0; i < size; i++ {
		srcBase := (startRow+i)*m.c + startCol
		copy(sub.data[i*size:(i+1)*size], m.data[srcBase:srcBase+size])
	}
	return sub
}

// SetSubMatrix overwrites the destination region starting at
// (startRow, startCol) with block's values, in place. Only values
// change; the receiver's shape is immutable.
//
// PRECONDITION: the region lies within bounds; the caller guarantees it.
// Complexity: O(block.Rows()·block.Cols()).
func (m *Dense[T]) SetSubMatrix(startRow, startCol int, block *Dense[T]) {
	var i int
	for i = 0; i < block.r; i++ {
		dstBase := (startRow+i)*m.c + startCol
		copy(m.data[dstBase:dstBase+block.c], block.data[i*block.c:(i+1)*block.c])
	}
}

// PadToSquare returns a newSize×newSize matrix with the receiver's
// values in the top-left region and the additive identity elsewhere.
// When the receiver is already newSize×newSize the result is an
// equivalent fresh copy, so callers may always mutate the returned
// matrix without aliasing the source.
//
// Returns ErrBadShape when newSize < max(Rows(), Cols()).
// Complexity: O(newSize²).
func (m *Dense[T]) PadToSquare(newSize int) (*Dense[T], error) {
	if newSize < m.r || newSize < m.c {
		return nil, fmt.Errorf("PadToSquare(%d): %dx%d source: %w", newSize, m.r, m.c, ErrBadShape)
	}
	if newSize == m.r && newSize == m.c {
		return m.Clone(), nil // already square of the target size
	}
	padded := &Dense[T]{r: newSize, c: newSize, data: make([]T, newSize*newSize)}
	var i int // copy original rows; the remainder stays zero
	for i = 0; i < m.r; i++ {
		copy(padded.data[i*newSize:i*newSize+m.c], m.data[i*m.c:(i+1)*m.c])
	}
	return padded, nil
}

// Crop returns a rows×cols matrix copied from the receiver's top-left
// region, undoing an earlier PadToSquare.
//
// Returns ErrBadShape when rows/cols exceed the source dimensions.
// Complexity: O(rows·cols).
func (m *Dense[T]) Crop(rows, cols int) (*Dense[T], error) {
	if rows < 0 || cols < 0 || rows > m.r || cols > m.c {
		return nil, fmt.Errorf("Crop(%d,%d): %dx%d source: %w", rows, cols, m.r, m.c, ErrBadShape)
	}
	out := &Dense[T]{r: rows, c: cols, data: make([]T, rows*cols)}
	var i int
	for i = 0; i < rows; i++ {
		copy(out.data[i*cols:(i+1)*cols], m.data[i*m.c:i*m.c+cols])
	}
	return out, nil
}

// NextPowerOfTwo computes the smallest power of two ≥ n. Returns 1 for
// n ≤ 0. The (n & (n-1)) idiom detects an exact power of two before the
// shift loop. O(log n).
func NextPowerOfTwo(n int) int {
	if n <= 0 {
		return 1
	}
	if n&(n-1) == 0 {
		return n // already a power of two
	}
	power := 1
	for power < n {
		power <<= 1
	}
	return power
}
