// Command simulate tabulates the estimated bits per key of four encoding
// strategies for n = 10^2 .. 10^9 keys and writes the table as CSV.
package main

import (
	"os"
)

const (
	version = "1.0.0"
)

func main() {
	os.Exit(run(os.Stdout, os.Stderr))
}
