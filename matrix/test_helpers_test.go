// SPDX-License-Identifier: MIT

// Package matrix_test: shared helpers for the matrix test suites.
// Deterministic seeds only, so every random fill is reproducible.
package matrix_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/densemat/matrix"
)

// mustDense allocates a rows×cols float64 matrix or fails the test.
func mustDense(tb testing.TB, rows, cols int) *matrix.Dense[float64] {
	tb.Helper()
	m, err := matrix.New[float64](rows, cols)
	require.NoError(tb, err)
	return m
}

// fillRand populates m with deterministic pseudo-random values in [0, 10).
func fillRand(tb testing.TB, m *matrix.Dense[float64], seed int64) {
	tb.Helper()
	rng := rand.New(rand.NewSource(seed))
	var i, j int // loop iterators
	for i = 0; i < m.Rows(); i++ {
		for j = 0; j < m.Cols(); j++ {
			m.Set(i, j, rng.Float64()*10)
		}
	}
}

// requireAllInDelta asserts elementwise agreement of two same-shaped
// matrices within tol.
func requireAllInDelta(tb testing.TB, want, got *matrix.Dense[float64], tol float64) {
	tb.Helper()
	require.Equal(tb, want.Rows(), got.Rows())
	require.Equal(tb, want.Cols(), got.Cols())
	var i, j int
	for i = 0; i < want.Rows(); i++ {
		for j = 0; j < want.Cols(); j++ {
			require.InDelta(tb, want.At(i, j), got.At(i, j), tol, "mismatch at (%d,%d)", i, j)
		}
	}
}

// fromRows builds a float64 matrix from row slices (all equal length).
func fromRows(tb testing.TB, rows [][]float64) *matrix.Dense[float64] {
	tb.Helper()
	m := mustDense(tb, len(rows), len(rows[0]))
	for i, row := range rows {
		for j, v := range row {
			m.Set(i, j, v)
		}
	}
	return m
}
