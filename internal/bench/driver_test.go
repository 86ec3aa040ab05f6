package bench

import (
	"bytes"
	"fmt"
	"io"
	"strings"
	"testing"

	"github.com/yndnr/lockbench-go/internal/table"
)

func TestRun_Validation(t *testing.T) {
	wl := NewWorkload(10, 1)

	tests := []struct {
		name string
		cfg  Config
	}{
		{"zero workers", Config{Strategy: table.StrategyCoarse, Workers: 0, Workload: wl}},
		{"negative workers", Config{Strategy: table.StrategyCoarse, Workers: -2, Workload: wl}},
		{"nil workload", Config{Strategy: table.StrategyCoarse, Workers: 1}},
		{"empty workload", Config{Strategy: table.StrategyCoarse, Workers: 1, Workload: Fixed(nil)}},
		{"unknown strategy", Config{Strategy: table.Strategy("bogus"), Workers: 1, Workload: wl}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.cfg.Out = io.Discard
			if _, err := Run(tt.cfg); err == nil {
				t.Error("Run() expected error, got nil")
			}
		})
	}
}

// The strided partition must cover every workload index exactly once for
// any worker count.
func TestPartitionCompleteness(t *testing.T) {
	const total = 1000

	for _, workers := range []int{1, 2, 3, 4, 7, 16, 1000, 1500} {
		t.Run(fmt.Sprintf("workers=%d", workers), func(t *testing.T) {
			seen := make([]int, total)
			for w := 0; w < workers; w++ {
				for i := w; i < total; i += workers {
					seen[i]++
				}
			}
			for i, n := range seen {
				if n != 1 {
					t.Fatalf("index %d covered %d times, want exactly once", i, n)
				}
			}
		})
	}
}

func TestRun_NoLostKeys(t *testing.T) {
	wl := NewWorkload(2000, 7)

	for _, s := range table.Strategies() {
		for _, workers := range []int{1, 2, 4, 16} {
			t.Run(fmt.Sprintf("%s/workers=%d", s, workers), func(t *testing.T) {
				res, err := Run(Config{
					Strategy: s,
					Workers:  workers,
					Buckets:  5,
					Workload: wl,
					Out:      io.Discard,
				})
				if err != nil {
					t.Fatalf("Run() error = %v", err)
				}
				if res.Lost != 0 {
					t.Errorf("Lost = %d, want 0", res.Lost)
				}
				if res.Retrieved != len(wl.Keys) {
					t.Errorf("Retrieved = %d, want %d", res.Retrieved, len(wl.Keys))
				}
				if len(res.WorkerLost) != workers {
					t.Errorf("len(WorkerLost) = %d, want %d", len(res.WorkerLost), workers)
				}
			})
		}
	}
}

// Classic fixture: 5 buckets, 10 known keys, 2 workers. Every key must
// come back with its inserting worker's id; key 3 appears twice on
// worker 0's partition, so worker 0's program order decides its final
// value either way.
func TestRun_KnownScenario(t *testing.T) {
	keys := []int64{3, 8, 3, 12, 7, 1, 9, 4, 6, 2}

	wantValue := map[int64]int64{
		3: 0, // indexes 0 and 2, both worker 0
		8: 1, 12: 1, 1: 1, 4: 1, 2: 1, // odd indexes, worker 1
		7: 0, 9: 0, 6: 0, // even indexes, worker 0
	}

	for _, s := range table.Strategies() {
		t.Run(string(s), func(t *testing.T) {
			// Re-run the put phase through the driver, then verify
			// values on a fresh table populated the same way.
			res, err := Run(Config{
				Strategy: s,
				Workers:  2,
				Buckets:  5,
				Workload: Fixed(keys),
				Out:      io.Discard,
			})
			if err != nil {
				t.Fatalf("Run() error = %v", err)
			}
			if res.Lost != 0 {
				t.Errorf("Lost = %d, want 0", res.Lost)
			}

			// The driver tears its table down, so replay the same
			// partition single-threaded per worker to check values.
			tbl, err := table.New(s, 5)
			if err != nil {
				t.Fatal(err)
			}
			defer tbl.Close()
			for w := 0; w < 2; w++ {
				for i := w; i < len(keys); i += 2 {
					tbl.Insert(keys[i], int64(w))
				}
			}
			for k, want := range wantValue {
				snap, ok := tbl.Lookup(k)
				if !ok {
					t.Fatalf("Lookup(%d) = miss, want hit", k)
				}
				if snap.Value != want {
					t.Errorf("Lookup(%d).Value = %d, want %d", k, snap.Value, want)
				}
			}
		})
	}
}

func TestRun_OutputLines(t *testing.T) {
	var buf bytes.Buffer
	res, err := Run(Config{
		Strategy: table.StrategyCoarse,
		Workers:  2,
		Buckets:  5,
		Workload: NewWorkload(100, 3),
		Out:      &buf,
	})
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	out := buf.String()
	for _, want := range []string{
		"[worker 0] 0 keys lost!",
		"[worker 1] 0 keys lost!",
		"[main] inserted 100 keys in",
		"[main] retrieved 100/100 keys in",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}

	if res.RunID == "" {
		t.Error("RunID is empty")
	}
	if res.PutSeconds < 0 || res.GetSeconds < 0 {
		t.Errorf("negative phase durations: put=%f get=%f", res.PutSeconds, res.GetSeconds)
	}
}

func TestRun_MoreWorkersThanKeys(t *testing.T) {
	res, err := Run(Config{
		Strategy: table.StrategySpin,
		Workers:  16,
		Buckets:  5,
		Workload: Fixed([]int64{1, 2, 3}),
		Out:      io.Discard,
	})
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if res.Lost != 0 {
		t.Errorf("Lost = %d, want 0", res.Lost)
	}
	if res.Retrieved != 3 {
		t.Errorf("Retrieved = %d, want 3", res.Retrieved)
	}
}

func TestRun_DefaultBuckets(t *testing.T) {
	res, err := Run(Config{
		Strategy: table.StrategyTwoLevel,
		Workers:  1,
		Workload: Fixed([]int64{10, 20}),
		Out:      io.Discard,
	})
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if res.Buckets != table.DefaultBucketCount {
		t.Errorf("Buckets = %d, want %d", res.Buckets, table.DefaultBucketCount)
	}
}
