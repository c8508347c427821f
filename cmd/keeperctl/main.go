// Command keeperctl is a small CLI over a file-backed cache root: get,
// set, rm, clear, cleanup, and a serve subcommand that just holds the
// guard and exports Prometheus metrics over HTTP until interrupted.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
