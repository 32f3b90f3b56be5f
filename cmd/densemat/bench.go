// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/spf13/cobra"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"

	"github.com/katalvlaran/densemat/lu"
	"github.com/katalvlaran/densemat/matrix"
)

var (
	benchSizes []int
	benchPlot  string
	benchSeed  int64
)

// benchSample is one timing row of the sweep.
type benchSample struct {
	n         int
	classical time.Duration
	hybrid    time.Duration
	solver    time.Duration
}

var benchCmd = &cobra.Command{
	Use:   "bench",
	Short: "Time classical vs hybrid multiplication and the LU solver",
	RunE: func(cmd *cobra.Command, args []string) error {
		rng := rand.New(rand.NewSource(benchSeed))
		samples := make([]benchSample, 0, len(benchSizes))

		fmt.Printf("%8s %14s %14s %14s\n", "n", "classical", "hybrid", "lu+solve")
		for _, n := range benchSizes {
			a := randomDense(rng, n)
			b := randomDense(rng, n)

			start := time.Now()
			if _, err := matrix.MulClassical(a, b); err != nil {
				return err
			}
			classical := time.Since(start)

			start = time.Now()
			if _, err := matrix.Mul(a, b); err != nil {
				return err
			}
			hybrid := time.Since(start)

			// Diagonally dominant system: adding n to the diagonal keeps
			// the random matrix comfortably non-singular.
			sys := randomDense(rng, n)
			rhs := make([]float64, n)
			for i := 0; i < n; i++ {
				sys.Set(i, i, sys.At(i, i)+float64(n))
				rhs[i] = 1 + rng.Float64()*9
			}
			start = time.Now()
			res, err := lu.Decompose(sys)
			if err != nil {
				return err
			}
			if _, err = lu.Solve(res, rhs); err != nil {
				return err
			}
			solver := time.Since(start)

			samples = append(samples, benchSample{n: n, classical: classical, hybrid: hybrid, solver: solver})
			fmt.Printf("%8d %14s %14s %14s\n", n, classical, hybrid, solver)
		}

		if benchPlot != "" {
			if err := saveBenchPlot(benchPlot, samples); err != nil {
				return err
			}
			fmt.Printf("Timing plot saved to %s\n", benchPlot)
		}
		return nil
	},
}

// randomDense builds an n×n matrix with entries in [0, 10).
func randomDense(rng *rand.Rand, n int) *matrix.Dense[float64] {
	m, _ := matrix.New[float64](n, n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			m.Set(i, j, rng.Float64()*10)
		}
	}
	return m
}

// saveBenchPlot renders the sweep as milliseconds-vs-dimension lines.
func saveBenchPlot(path string, samples []benchSample) error {
	p := plot.New()
	p.Title.Text = "densemat multiplication and solver timings"
	p.X.Label.Text = "matrix dimension n"
	p.Y.Label.Text = "milliseconds"

	classical := make(plotter.XYs, len(samples))
	hybrid := make(plotter.XYs, len(samples))
	solver := make(plotter.XYs, len(samples))
	for i, s := range samples {
		x := float64(s.n)
		classical[i] = plotter.XY{X: x, Y: float64(s.classical.Microseconds()) / 1e3}
		hybrid[i] = plotter.XY{X: x, Y: float64(s.hybrid.Microseconds()) / 1e3}
		solver[i] = plotter.XY{X: x, Y: float64(s.solver.Microseconds()) / 1e3}
	}

	if err := plotutil.AddLinePoints(p,
		"classical", classical,
		"hybrid", hybrid,
		"lu+solve", solver,
	); err != nil {
		return err
	}
	return p.Save(6*vg.Inch, 4*vg.Inch, path)
}

func init() {
	benchCmd.Flags().IntSliceVar(&benchSizes, "sizes", []int{64, 128, 256, 512}, "square dimensions to sweep")
	benchCmd.Flags().StringVar(&benchPlot, "plot", "", "optional PNG path for the timing plot")
	benchCmd.Flags().Int64Var(&benchSeed, "seed", 1337, "deterministic fill seed")
	rootCmd.AddCommand(benchCmd)
}
