// SPDX-License-Identifier: MIT

package textio

import (
	"bufio"
	"fmt"
	"os"
)

// ReadVector loads a vector from the file at path.
//
// Expected layout: a "size" header followed by size whitespace-separated
// values.
//
// Errors: wrapped os error when the file cannot be opened; ErrBadData on
// an unreadable header, a negative size, or insufficient values.
func ReadVector(path string) ([]float64, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("ReadVector(%s): %w", path, err)
	}
	defer f.Close()

	r := bufio.NewReader(f)
	var size int
	if _, err = fmt.Fscan(r, &size); err != nil || size < 0 {
		return nil, fmt.Errorf("ReadVector(%s): header: %w", path, ErrBadData)
	}

	vec := make([]float64, size)
	for i := 0; i < size; i++ {
		if _, err = fmt.Fscan(r, &vec[i]); err != nil {
			return nil, fmt.Errorf("ReadVector(%s): value %d: %w", path, i, ErrBadData)
		}
	}
	return vec, nil
}

// WriteVector saves v to the file at path in the layout ReadVector
// expects, formatting every value with two decimal digits.
func WriteVector(path string, v []float64) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("WriteVector(%s): %w", path, err)
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	fmt.Fprintf(w, "%d\n", len(v))
	for i, x := range v {
		if i > 0 {
			w.WriteByte(' ')
		}
		fmt.Fprintf(w, "%.2f", x)
	}
	w.WriteByte('\n')
	if err := w.Flush(); err != nil {
		return fmt.Errorf("WriteVector(%s): %w", path, err)
	}
	return nil
}
