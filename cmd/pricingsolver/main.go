// Command pricingsolver solves one VRPTW-C pricing subproblem: it reads a
// JSON input envelope, runs the label-setting search, and writes either an
// improving route or JSON null.
package main

import "os"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
