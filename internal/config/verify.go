// Package config defines the lockbench configuration structure.
package config

import (
	"fmt"

	"github.com/yndnr/lockbench-go/internal/table"
)

// StrategyAll runs every discipline in sequence on fresh tables.
const StrategyAll = "all"

// Verify validates the configuration.
func Verify(cfg *Config) error {
	if err := verifyBench(&cfg.Bench); err != nil {
		return err
	}
	return verifyLog(&cfg.Log)
}

func verifyBench(cfg *BenchSection) error {
	if cfg.Strategy != StrategyAll {
		known := false
		for _, s := range table.Strategies() {
			if cfg.Strategy == string(s) {
				known = true
				break
			}
		}
		if !known {
			return fmt.Errorf("bench.strategy %q is not one of coarse, twolevel, spin, all", cfg.Strategy)
		}
	}

	if cfg.Buckets < 1 {
		return fmt.Errorf("bench.buckets must be at least 1, got %d", cfg.Buckets)
	}
	if cfg.Keys < 1 {
		return fmt.Errorf("bench.keys must be at least 1, got %d", cfg.Keys)
	}

	switch cfg.Output {
	case "table", "json", "yaml":
	default:
		return fmt.Errorf("bench.output %q is not one of table, json, yaml", cfg.Output)
	}

	return nil
}

func verifyLog(cfg *LogSection) error {
	switch cfg.Level {
	case "", "debug", "info", "warn", "warning", "error":
	default:
		return fmt.Errorf("log.level %q is not a known level", cfg.Level)
	}
	switch cfg.Format {
	case "", "json", "text":
	default:
		return fmt.Errorf("log.format %q is not one of json, text", cfg.Format)
	}
	return nil
}
