// SPDX-License-Identifier: MIT

// Package lu_test shares deterministic fixtures across the factorization
// and solver tests.
package lu_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/densemat/matrix"
)

// fromRows builds a Dense[float64] from row literals.
func fromRows(tb testing.TB, rows [][]float64) *matrix.Dense[float64] {
	tb.Helper()
	r := len(rows)
	c := 0
	if r > 0 {
		c = len(rows[0])
	}
	m, err := matrix.New[float64](r, c)
	if err != nil {
		tb.Fatalf("New(%d,%d) failed: %v", r, c, err)
	}
	for i := 0; i < r; i++ {
		if len(rows[i]) != c {
			tb.Fatalf("ragged row %d: got %d values, want %d", i, len(rows[i]), c)
		}
		for j := 0; j < c; j++ {
			m.Set(i, j, rows[i][j])
		}
	}
	return m
}

// randDiagDominant builds a deterministic diagonally dominant n×n system,
// guaranteed nonsingular and well conditioned for substitution.
func randDiagDominant(tb testing.TB, n int, seed int64) *matrix.Dense[float64] {
	tb.Helper()
	m, err := matrix.New[float64](n, n)
	if err != nil {
		tb.Fatalf("New(%d,%d) failed: %v", n, n, err)
	}
	rng := rand.New(rand.NewSource(seed))
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			m.Set(i, j, rng.Float64()*10)
		}
		m.Set(i, i, m.At(i, i)+float64(n)*10)
	}
	return m
}

// flatten returns the row-major contents of m, for gonum cross-checks.
func flatten(m *matrix.Dense[float64]) []float64 {
	out := make([]float64, 0, m.Rows()*m.Cols())
	for i := 0; i < m.Rows(); i++ {
		for j := 0; j < m.Cols(); j++ {
			out = append(out, m.At(i, j))
		}
	}
	return out
}
