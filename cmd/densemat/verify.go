// SPDX-License-Identifier: MIT

package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/densemat/matrix"
	"github.com/katalvlaran/densemat/textio"
)

var verifyCmd = &cobra.Command{
	Use:   "verify <fileA> <fileX> <fileB>",
	Short: "Check that A·X equals B elementwise exactly",
	Args:  cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := textio.ReadMatrix(args[0])
		if err != nil {
			return err
		}
		x, err := textio.ReadMatrix(args[1])
		if err != nil {
			return err
		}
		b, err := textio.ReadMatrix(args[2])
		if err != nil {
			return err
		}

		ok, err := matrix.Verify(a, x, b)
		if err != nil {
			return err
		}
		if !ok {
			color.Red("Verification failed: matrices are different.")
			return fmt.Errorf("verify: A·X does not equal B")
		}
		color.Green("Verification successful: matrices are identical.")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(verifyCmd)
}
