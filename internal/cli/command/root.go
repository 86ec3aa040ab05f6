// Package command provides CLI command definitions for lockbench.
//
// It uses urfave/cli/v2 for command parsing. The run command keeps the
// original benchmark's contract: the thread-pool size is a required
// positional argument, and a missing or non-positive value terminates
// the process with a usage diagnostic and a non-zero exit status.
package command

import (
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/yndnr/lockbench-go/internal/infra/buildinfo"
)

// App creates the CLI application.
func App() *cli.App {
	return &cli.App{
		Name:  "lockbench",
		Usage: "benchmark locking disciplines for a chained sharded hash table",
		Version: fmt.Sprintf("%s (commit: %s, built: %s)",
			buildinfo.Version, buildinfo.Commit, buildinfo.BuildTime),
		Commands: []*cli.Command{
			RunCommand(),
			StrategiesCommand(),
		},
	}
}
