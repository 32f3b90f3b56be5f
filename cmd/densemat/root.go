// SPDX-License-Identifier: MIT

package main

import "github.com/spf13/cobra"

var rootCmd = &cobra.Command{
	Use:   "densemat",
	Short: "Dense matrix kernel: hybrid multiplication and pivoted LU solving",
	Long: `densemat drives the dense linear-algebra kernel from text files:

  multiply  hybrid classical/Strassen product of two matrices
  solve     pivoted LU factorization and triangular solve of Ax = b
  verify    exact elementwise check that A·X equals B
  bench     timing sweep of the multiplication paths and the solver

Matrix files carry a "rows cols" header line followed by rows of
whitespace-separated values; vector files carry a "size" header followed
by the values.`,
	SilenceUsage: true,
}
