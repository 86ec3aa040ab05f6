// Package main provides the entry point for lockbench.
//
// lockbench benchmarks three locking disciplines for a chained sharded
// hash table under a two-phase concurrent put/get workload.
package main

import (
	"fmt"
	"os"

	"github.com/yndnr/lockbench-go/internal/cli/command"
)

func main() {
	app := command.App()

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
