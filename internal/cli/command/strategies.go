// Package command provides CLI command definitions for lockbench.
package command

import (
	"fmt"
	"text/tabwriter"

	"github.com/urfave/cli/v2"

	"github.com/yndnr/lockbench-go/internal/table"
)

var strategyDescriptions = map[table.Strategy]string{
	table.StrategyCoarse:   "one RWMutex per bucket; writers exclusive, readers shared",
	table.StrategyTwoLevel: "bucket RWMutex plus per-entry locks; updates don't block bucket readers",
	table.StrategySpin:     "one busy-wait exclusive lock per bucket; never parks a thread",
}

// StrategiesCommand returns the strategies subcommand.
func StrategiesCommand() *cli.Command {
	return &cli.Command{
		Name:  "strategies",
		Usage: "List the available locking disciplines",
		Action: func(c *cli.Context) error {
			tw := tabwriter.NewWriter(c.App.Writer, 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "NAME\tDESCRIPTION")
			for _, s := range table.Strategies() {
				fmt.Fprintf(tw, "%s\t%s\n", s, strategyDescriptions[s])
			}
			return tw.Flush()
		},
	}
}
