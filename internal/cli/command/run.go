// Package command provides CLI command definitions for lockbench.
package command

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/urfave/cli/v2"

	"github.com/yndnr/lockbench-go/internal/bench"
	"github.com/yndnr/lockbench-go/internal/cli/output"
	"github.com/yndnr/lockbench-go/internal/config"
	"github.com/yndnr/lockbench-go/internal/infra/confloader"
	"github.com/yndnr/lockbench-go/internal/table"
	"github.com/yndnr/lockbench-go/internal/telemetry/logger"
	"github.com/yndnr/lockbench-go/internal/telemetry/metric"
)

// RunCommand returns the run subcommand.
func RunCommand() *cli.Command {
	return &cli.Command{
		Name:      "run",
		Usage:     "Run the put/get benchmark",
		ArgsUsage: "<num_threads>",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "Path to a YAML configuration file",
			},
			&cli.StringFlag{
				Name:    "strategy",
				Aliases: []string{"s"},
				Usage:   "Locking discipline: coarse, twolevel, spin, all",
			},
			&cli.IntFlag{
				Name:    "buckets",
				Aliases: []string{"b"},
				Usage:   "Number of table buckets",
			},
			&cli.IntFlag{
				Name:    "keys",
				Aliases: []string{"k"},
				Usage:   "Number of workload keys",
			},
			&cli.Int64Flag{
				Name:  "seed",
				Usage: "Workload seed (0 derives one from the clock)",
			},
			&cli.StringFlag{
				Name:    "output",
				Aliases: []string{"o"},
				Usage:   "Report format: table, json, yaml",
			},
			&cli.StringFlag{
				Name:  "metrics-addr",
				Usage: "Expose Prometheus /metrics on this address",
			},
			&cli.BoolFlag{
				Name:    "watch",
				Aliases: []string{"w"},
				Usage:   "Re-run the benchmark when the config file changes",
			},
			&cli.BoolFlag{
				Name:    "verbose",
				Aliases: []string{"V"},
				Usage:   "Enable debug logging",
			},
		},
		Action: runAction,
	}
}

func runAction(c *cli.Context) error {
	if c.NArg() != 1 {
		return cli.Exit("usage: lockbench run [options] <num_threads>", 1)
	}
	workers, err := strconv.Atoi(c.Args().First())
	if err != nil || workers <= 0 {
		return cli.Exit(fmt.Sprintf("num_threads must be a positive integer, got %q", c.Args().First()), 1)
	}

	cfg, err := loadConfig(c)
	if err != nil {
		return cli.Exit(err.Error(), 1)
	}

	logCfg := logger.Config{Level: cfg.Log.Level, Format: cfg.Log.Format}
	if c.Bool("verbose") {
		logCfg.Level = "debug"
	}
	log := logger.New(logCfg)
	logger.SetDefault(log)

	var metrics *metric.Metrics
	if cfg.Metrics.Addr != "" {
		metrics = metric.New()
		srv := serveMetrics(cfg.Metrics.Addr, metrics, log)
		defer srv.Close()
	}

	if err := executeRun(c, cfg, workers, metrics, log); err != nil {
		return cli.Exit(err.Error(), 1)
	}

	if c.Bool("watch") {
		return watchAndRerun(c, workers, metrics, log)
	}
	return nil
}

// loadConfig merges defaults, the optional config file, environment
// variables and explicitly set flags, in that order.
func loadConfig(c *cli.Context) (*config.Config, error) {
	overrides := make(map[string]any)
	if c.IsSet("strategy") {
		overrides["bench.strategy"] = c.String("strategy")
	}
	if c.IsSet("buckets") {
		overrides["bench.buckets"] = c.Int("buckets")
	}
	if c.IsSet("keys") {
		overrides["bench.keys"] = c.Int("keys")
	}
	if c.IsSet("seed") {
		overrides["bench.seed"] = c.Int64("seed")
	}
	if c.IsSet("output") {
		overrides["bench.output"] = c.String("output")
	}
	if c.IsSet("metrics-addr") {
		overrides["metrics.addr"] = c.String("metrics-addr")
	}

	var opts []confloader.Option
	if c.IsSet("config") {
		opts = append(opts, confloader.WithConfigFile(c.String("config")))
	}

	cfg := config.Default()
	if err := confloader.NewLoader(opts...).Load(cfg, overrides); err != nil {
		return nil, err
	}
	if err := config.Verify(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// executeRun runs the benchmark for the configured strategy, or all of
// them in sequence on fresh tables, and renders the report.
func executeRun(c *cli.Context, cfg *config.Config, workers int, metrics *metric.Metrics, log logger.Logger) error {
	workload := bench.NewWorkload(cfg.Bench.Keys, cfg.Bench.Seed)

	strategies := []table.Strategy{table.Strategy(cfg.Bench.Strategy)}
	if cfg.Bench.Strategy == config.StrategyAll {
		strategies = table.Strategies()
	}

	results := make([]*bench.Result, 0, len(strategies))
	for _, s := range strategies {
		res, err := bench.Run(bench.Config{
			Strategy: s,
			Workers:  workers,
			Buckets:  cfg.Bench.Buckets,
			Workload: workload,
			Out:      c.App.Writer,
			Log:      log,
			Metrics:  metrics,
		})
		if err != nil {
			return err
		}
		results = append(results, res)
	}

	formatter := output.NewFormatter(output.Format(cfg.Bench.Output))
	if len(results) == 1 {
		return formatter.Format(c.App.Writer, results[0])
	}
	return formatter.Format(c.App.Writer, results)
}

// watchAndRerun blocks, re-running the benchmark whenever the config
// file changes. Configuration is reloaded for each re-run so edits to
// keys, buckets or strategy take effect.
func watchAndRerun(c *cli.Context, workers int, metrics *metric.Metrics, log logger.Logger) error {
	if !c.IsSet("config") {
		return cli.Exit("--watch requires --config", 1)
	}

	watcher, err := confloader.NewWatcher(confloader.WithWatcherLogger(log))
	if err != nil {
		return cli.Exit(err.Error(), 1)
	}
	defer watcher.Stop()

	watcher.OnChange(func(path string) {
		log.Info("config changed, re-running benchmark", "path", path)
		cfg, err := loadConfig(c)
		if err != nil {
			log.Error("config reload failed", "error", err)
			return
		}
		if err := executeRun(c, cfg, workers, metrics, log); err != nil {
			log.Error("benchmark re-run failed", "error", err)
		}
	})
	if err := watcher.Watch(c.String("config")); err != nil {
		return cli.Exit(err.Error(), 1)
	}

	log.Info("watching config, press Ctrl-C to stop", "path", c.String("config"))
	watcher.Start()
	return nil
}

// serveMetrics exposes the /metrics endpoint in the background for the
// lifetime of the run.
func serveMetrics(addr string, metrics *metric.Metrics, log logger.Logger) *http.Server {
	mux := http.NewServeMux()
	mux.Handle("/metrics", metrics.Handler())
	srv := &http.Server{Addr: addr, Handler: mux}

	go func() {
		log.Info("metrics endpoint listening", "addr", addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("metrics endpoint failed", "error", err)
		}
	}()

	return srv
}
