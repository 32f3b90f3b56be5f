// SPDX-License-Identifier: MIT

package textio

import (
	"bufio"
	"fmt"
	"os"

	"github.com/katalvlaran/densemat/matrix"
)

// ReadMatrix loads a matrix from the file at path.
//
// Expected layout: a "rows cols" header line, then rows lines of cols
// whitespace-separated values (any whitespace split is accepted, line
// breaks included).
//
// Errors: wrapped os error when the file cannot be opened; ErrBadData
// on an unreadable header or insufficient values; the constructor's
// matrix.ErrBadShape on negative dimensions.
func ReadMatrix(path string) (*matrix.Dense[float64], error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("ReadMatrix(%s): %w", path, err)
	}
	defer f.Close()

	r := bufio.NewReader(f)
	var rows, cols int
	if _, err = fmt.Fscan(r, &rows, &cols); err != nil {
		return nil, fmt.Errorf("ReadMatrix(%s): header: %w", path, ErrBadData)
	}
	m, err := matrix.New[float64](rows, cols)
	if err != nil {
		return nil, fmt.Errorf("ReadMatrix(%s): %w", path, err)
	}

	var i, j int
	var v float64
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			if _, err = fmt.Fscan(r, &v); err != nil {
				return nil, fmt.Errorf("ReadMatrix(%s): value (%d,%d): %w", path, i, j, ErrBadData)
			}
			m.Set(i, j, v)
		}
	}
	return m, nil
}

// WriteMatrix saves m to the file at path in the layout ReadMatrix
// expects, formatting every value with two decimal digits.
func WriteMatrix(path string, m *matrix.Dense[float64]) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("WriteMatrix(%s): %w", path, err)
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	fmt.Fprintf(w, "%d %d\n", m.Rows(), m.Cols())
	var i, j int
	for i = 0; i < m.Rows(); i++ {
		for j = 0; j < m.Cols(); j++ {
			if j > 0 {
				w.WriteByte(' ')
			}
			fmt.Fprintf(w, "%.2f", m.At(i, j))
		}
		w.WriteByte('\n')
	}
	if err = w.Flush(); err != nil {
		return fmt.Errorf("WriteMatrix(%s): %w", path, err)
	}
	return nil
}
