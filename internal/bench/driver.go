package bench

import (
	"errors"
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"
	"golang.org/x/time/rate"

	"github.com/yndnr/lockbench-go/internal/table"
	"github.com/yndnr/lockbench-go/internal/telemetry/logger"
	"github.com/yndnr/lockbench-go/internal/telemetry/metric"
)

// progressLogInterval throttles per-worker progress logging so a large
// workload emits a few debug lines per second instead of one per key.
const progressLogInterval = time.Second

// Config configures a single benchmark run.
type Config struct {
	// Strategy is the locking discipline under test.
	Strategy table.Strategy

	// Workers is the size of the worker pool spawned per phase.
	Workers int

	// Buckets is the number of table buckets. Zero means
	// table.DefaultBucketCount.
	Buckets int

	// Workload is the fixed key set driven through both phases.
	Workload *Workload

	// Out receives the classic per-worker and summary lines. Nil means
	// os.Stdout.
	Out io.Writer

	// Log receives structured run logging. Nil means logger.Default().
	Log logger.Logger

	// Metrics optionally records counters and phase durations. Nil
	// disables recording.
	Metrics *metric.Metrics
}

// Run executes a full put phase followed by a full get phase and tears
// the table down before returning the aggregated result.
func Run(cfg Config) (*Result, error) {
	if cfg.Workers < 1 {
		return nil, fmt.Errorf("bench: workers must be positive, got %d", cfg.Workers)
	}
	if cfg.Workload == nil || len(cfg.Workload.Keys) == 0 {
		return nil, errors.New("bench: workload is empty")
	}

	buckets := cfg.Buckets
	if buckets == 0 {
		buckets = table.DefaultBucketCount
	}
	tbl, err := table.New(cfg.Strategy, buckets)
	if err != nil {
		return nil, err
	}
	defer tbl.Close()

	out := &syncWriter{w: cfg.Out}
	if cfg.Out == nil {
		out.w = os.Stdout
	}

	runID := ulid.Make().String()
	log := cfg.Log
	if log == nil {
		log = logger.Default()
	}
	log = log.With("run_id", runID, "strategy", cfg.Strategy)

	keys := cfg.Workload.Keys
	strategy := string(cfg.Strategy)

	// Put phase.
	log.Info("put phase starting",
		"workers", cfg.Workers,
		"keys", len(keys),
		"buckets", buckets,
	)
	var wg sync.WaitGroup
	putStart := time.Now()
	for t := 0; t < cfg.Workers; t++ {
		wg.Add(1)
		go func(t int) {
			defer wg.Done()
			limiter := rate.NewLimiter(rate.Every(progressLogInterval), 1)
			inserted := 0
			for i := t; i < len(keys); i += cfg.Workers {
				tbl.Insert(keys[i], int64(t))
				inserted++
				if limiter.Allow() {
					log.Debug("put progress", "worker", t, "inserted", inserted)
				}
			}
		}(t)
	}
	wg.Wait()
	putElapsed := time.Since(putStart)

	cfg.Metrics.AddInserts(strategy, len(keys))
	cfg.Metrics.ObservePhase(strategy, metric.PhasePut, putElapsed.Seconds())
	fmt.Fprintf(out, "[main] inserted %d keys in %f seconds\n", len(keys), putElapsed.Seconds())

	// Get phase. Each worker looks up the partition it inserted and
	// counts misses privately.
	log.Info("get phase starting", "workers", cfg.Workers)
	workerLost := make([]int64, cfg.Workers)
	getStart := time.Now()
	for t := 0; t < cfg.Workers; t++ {
		wg.Add(1)
		go func(t int) {
			defer wg.Done()
			var lost int64
			for i := t; i < len(keys); i += cfg.Workers {
				if _, ok := tbl.Lookup(keys[i]); !ok {
					lost++
				}
			}
			workerLost[t] = lost
			fmt.Fprintf(out, "[worker %d] %d keys lost!\n", t, lost)
		}(t)
	}
	wg.Wait()
	getElapsed := time.Since(getStart)

	var totalLost int64
	for _, n := range workerLost {
		totalLost += n
	}

	cfg.Metrics.AddLookups(strategy, len(keys), totalLost)
	cfg.Metrics.ObservePhase(strategy, metric.PhaseGet, getElapsed.Seconds())
	cfg.Metrics.IncRuns(strategy)

	retrieved := len(keys) - int(totalLost)
	fmt.Fprintf(out, "[main] retrieved %d/%d keys in %f seconds\n", retrieved, len(keys), getElapsed.Seconds())
	log.Info("run complete",
		"inserted", len(keys),
		"retrieved", retrieved,
		"lost", totalLost,
		"put_seconds", putElapsed.Seconds(),
		"get_seconds", getElapsed.Seconds(),
	)

	return &Result{
		RunID:      runID,
		Strategy:   strategy,
		Workers:    cfg.Workers,
		Buckets:    buckets,
		Keys:       len(keys),
		Seed:       cfg.Workload.Seed,
		Inserted:   len(keys),
		Retrieved:  retrieved,
		Lost:       totalLost,
		PutSeconds: putElapsed.Seconds(),
		GetSeconds: getElapsed.Seconds(),
		WorkerLost: workerLost,
	}, nil
}

// syncWriter serializes the per-worker lines emitted during the get
// phase; workers write concurrently.
type syncWriter struct {
	mu sync.Mutex
	w  io.Writer
}

func (s *syncWriter) Write(p []byte) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.w.Write(p)
}
