// SPDX-License-Identifier: MIT

// Package lu_test: factorization and solve benchmarks on deterministic
// diagonally dominant systems.
package lu_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/densemat/lu"
)

// benchSizes are the system dimensions to benchmark.
var benchSizes = []int{64, 128, 256}

// sinks to defeat dead-code elimination
var (
	sinkRes *lu.Result[float64]
	sinkVec []float64
)

func BenchmarkDecompose(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			a := randDiagDominant(b, n, int64(n))
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				res, err := lu.Decompose(a)
				if err != nil {
					b.Fatal(err)
				}
				sinkRes = res
			}
		})
	}
}

func BenchmarkSolve(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			a := randDiagDominant(b, n, int64(n)+1)
			res, err := lu.Decompose(a)
			if err != nil {
				b.Fatal(err)
			}
			rhs := make([]float64, n)
			for i := range rhs {
				rhs[i] = float64(i)
			}
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				x, err := lu.Solve(res, rhs)
				if err != nil {
					b.Fatal(err)
				}
				sinkVec = x
			}
		})
	}
}
