// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"math"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/densemat/lu"
	"github.com/katalvlaran/densemat/matrix"
	"github.com/katalvlaran/densemat/textio"
)

// solveResidualTol bounds the max |A·x − b| entry accepted as a good
// solve in the console report.
const solveResidualTol = 1e-9

var solveOut string

var solveCmd = &cobra.Command{
	Use:   "solve <fileA> <fileb>",
	Short: "Solve A·x = b via pivoted LU factorization",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := textio.ReadMatrix(args[0])
		if err != nil {
			return err
		}
		b, err := textio.ReadVector(args[1])
		if err != nil {
			return err
		}
		fmt.Printf("Matrix A: %dx%d, vector b: %dx1\n", a.Rows(), a.Cols(), len(b))

		res, err := lu.Decompose(a)
		if err != nil {
			return err
		}
		x, err := lu.Solve(res, b)
		if err != nil {
			return err
		}

		fmt.Println("Solution vector x:")
		for _, v := range x {
			fmt.Printf("%g ", v)
		}
		fmt.Println()
		fmt.Printf("det(A) = %g\n", res.Det())

		// Residual check: multiply back and report the worst entry.
		ax, err := matrix.Mul(a, matrix.NewVector(x, true))
		if err != nil {
			return err
		}
		var maxResidual float64
		for i := range b {
			if r := math.Abs(ax.At(i, 0) - b[i]); r > maxResidual {
				maxResidual = r
			}
		}
		if maxResidual <= solveResidualTol {
			color.Green("Residual check passed: max |A·x − b| = %.3g", maxResidual)
		} else {
			color.Red("Residual check FAILED: max |A·x − b| = %.3g", maxResidual)
		}

		if solveOut != "" {
			if err = textio.WriteVector(solveOut, x); err != nil {
				return err
			}
			fmt.Printf("Solution saved to %s\n", solveOut)
		}
		return nil
	},
}

func init() {
	solveCmd.Flags().StringVarP(&solveOut, "out", "o", "", "optional output file for the solution vector")
	rootCmd.AddCommand(solveCmd)
}
