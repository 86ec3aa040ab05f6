// Package config defines the lockbench configuration structure.
package config

// Config is the root configuration for lockbench.
type Config struct {
	Bench   BenchSection   `koanf:"bench"`
	Metrics MetricsSection `koanf:"metrics"`
	Log     LogSection     `koanf:"log"`
}

// BenchSection configures the benchmark run.
type BenchSection struct {
	// Strategy selects the locking discipline: coarse, twolevel, spin,
	// or "all" to run each in sequence on a fresh table.
	Strategy string `koanf:"strategy"`

	// Buckets is the number of chains in the table. A small count
	// concentrates contention; the classic configuration is 5.
	Buckets int `koanf:"buckets"`

	// Keys is the size of the generated workload.
	Keys int `koanf:"keys"`

	// Seed seeds the workload generator. Zero means "derive from the
	// current time", matching the original seed-from-clock behavior;
	// any other value makes runs reproducible.
	Seed int64 `koanf:"seed"`

	// Output is the report format: table, json, yaml.
	Output string `koanf:"output"`
}

// MetricsSection configures the optional Prometheus endpoint.
type MetricsSection struct {
	// Addr is the listen address for /metrics (e.g. "127.0.0.1:9090").
	// Empty disables the endpoint.
	Addr string `koanf:"addr"`
}

// LogSection configures logging.
type LogSection struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
}
