// Package output provides report formatting for the lockbench CLI.
package output

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/yndnr/lockbench-go/internal/bench"
)

// TableFormatter formats benchmark results as an aligned text table.
type TableFormatter struct {
	NoHeaders bool
}

// Format renders *bench.Result and []*bench.Result as a table. Other
// data falls back to indented JSON.
func (f *TableFormatter) Format(w io.Writer, data any) error {
	switch v := data.(type) {
	case *bench.Result:
		return f.render(w, []*bench.Result{v})
	case []*bench.Result:
		return f.render(w, v)
	default:
		encoder := json.NewEncoder(w)
		encoder.SetIndent("", "  ")
		return encoder.Encode(data)
	}
}

func (f *TableFormatter) render(w io.Writer, results []*bench.Result) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)

	if !f.NoHeaders {
		fmt.Fprintln(tw, "STRATEGY\tWORKERS\tBUCKETS\tKEYS\tLOST\tPUT(s)\tPUT(ops/s)\tGET(s)\tGET(ops/s)")
	}
	for _, r := range results {
		fmt.Fprintf(tw, "%s\t%d\t%d\t%d\t%d\t%.6f\t%.0f\t%.6f\t%.0f\n",
			r.Strategy,
			r.Workers,
			r.Buckets,
			r.Keys,
			r.Lost,
			r.PutSeconds,
			r.PutOpsPerSec(),
			r.GetSeconds,
			r.GetOpsPerSec(),
		)
	}

	return tw.Flush()
}
