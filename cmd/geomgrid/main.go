// Package main provides the geomgrid CLI entry point.
package main

import (
	"fmt"
	"os"

	"github.com/leapstack-labs/geomgrid/internal/cli"
)

func main() {
	if err := cli.NewRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
