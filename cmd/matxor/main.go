// SPDX-License-Identifier: MIT

// Command matxor generates two random matrices, XORs them after rounding and
// prints the sum of the per-column maxima of the result.
//
// It takes no arguments or flags; settings come from MATXOR_* environment
// variables (see internal/config). Results go to stdout, errors to stderr.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd(defaultDeps()).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "matxor:", err)
		os.Exit(1)
	}
}
