// SPDX-License-Identifier: MIT

// Package textio_test: file round-trips and malformed-input handling.
package textio_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/densemat/matrix"
	"github.com/katalvlaran/densemat/textio"
)

// TestMatrixRoundTrip writes a matrix and reads it back unchanged; the
// two-decimal format is lossless for the values used here.
func TestMatrixRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "m.txt")

	m, err := matrix.New[float64](2, 3)
	require.NoError(t, err)
	vals := []float64{1.25, -2.5, 0, 3.75, 10, -0.25}
	for i := 0; i < 2; i++ {
		for j := 0; j < 3; j++ {
			m.Set(i, j, vals[i*3+j])
		}
	}

	require.NoError(t, textio.WriteMatrix(path, m))

	got, err := textio.ReadMatrix(path)
	require.NoError(t, err)
	require.True(t, got.Equal(m))
}

// TestMatrixFileLayout pins the on-disk format: header line, space
// separated rows, two decimal digits per value.
func TestMatrixFileLayout(t *testing.T) {
	path := filepath.Join(t.TempDir(), "m.txt")

	m, err := matrix.New[float64](2, 2)
	require.NoError(t, err)
	m.Set(0, 0, 1)
	m.Set(0, 1, 2.5)
	m.Set(1, 0, -3)
	m.Set(1, 1, 0)

	require.NoError(t, textio.WriteMatrix(path, m))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, "2 2\n1.00 2.50\n-3.00 0.00\n", string(raw))
}

// TestReadMatrixTruncated: fewer values than the header declares.
func TestReadMatrixTruncated(t *testing.T) {
	path := filepath.Join(t.TempDir(), "m.txt")
	require.NoError(t, os.WriteFile(path, []byte("2 2\n1 2 3\n"), 0o600))

	_, err := textio.ReadMatrix(path)
	require.ErrorIs(t, err, textio.ErrBadData)
}

// TestReadMatrixBadHeader: a non-numeric header is rejected.
func TestReadMatrixBadHeader(t *testing.T) {
	path := filepath.Join(t.TempDir(), "m.txt")
	require.NoError(t, os.WriteFile(path, []byte("two by two\n"), 0o600))

	_, err := textio.ReadMatrix(path)
	require.ErrorIs(t, err, textio.ErrBadData)
}

// TestReadMatrixNegativeDims: negative dimensions propagate the shape
// sentinel from the constructor.
func TestReadMatrixNegativeDims(t *testing.T) {
	path := filepath.Join(t.TempDir(), "m.txt")
	require.NoError(t, os.WriteFile(path, []byte("-1 2\n"), 0o600))

	_, err := textio.ReadMatrix(path)
	require.ErrorIs(t, err, matrix.ErrBadShape)
}

// TestReadMatrixMissingFile: open failures are os errors, not ErrBadData.
func TestReadMatrixMissingFile(t *testing.T) {
	_, err := textio.ReadMatrix(filepath.Join(t.TempDir(), "absent.txt"))
	require.Error(t, err)
	require.NotErrorIs(t, err, textio.ErrBadData)
	require.ErrorIs(t, err, os.ErrNotExist)
}

// TestVectorRoundTrip writes a vector and reads it back unchanged.
func TestVectorRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "v.txt")
	want := []float64{3, 5.25, -1.5, 0}

	require.NoError(t, textio.WriteVector(path, want))

	got, err := textio.ReadVector(path)
	require.NoError(t, err)
	require.Equal(t, want, got)

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, "4\n3.00 5.25 -1.50 0.00\n", string(raw))
}

// TestReadVectorTruncated: fewer values than the declared size.
func TestReadVectorTruncated(t *testing.T) {
	path := filepath.Join(t.TempDir(), "v.txt")
	require.NoError(t, os.WriteFile(path, []byte("3\n1 2\n"), 0o600))

	_, err := textio.ReadVector(path)
	require.ErrorIs(t, err, textio.ErrBadData)
}

// TestReadVectorNegativeSize: a negative header is malformed.
func TestReadVectorNegativeSize(t *testing.T) {
	path := filepath.Join(t.TempDir(), "v.txt")
	require.NoError(t, os.WriteFile(path, []byte("-2\n"), 0o600))

	_, err := textio.ReadVector(path)
	require.ErrorIs(t, err, textio.ErrBadData)
}

// TestVectorEmpty: a zero-length vector round-trips.
func TestVectorEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "v.txt")

	require.NoError(t, textio.WriteVector(path, nil))

	got, err := textio.ReadVector(path)
	require.NoError(t, err)
	require.Empty(t, got)
}
