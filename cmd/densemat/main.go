// SPDX-License-Identifier: MIT

// Command densemat is the file-driven front end of the densemat kernel:
// multiply matrices, solve linear systems, verify products, and benchmark
// the multiplication paths, all over the plain-text formats of textio.
package main

import "os"

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
