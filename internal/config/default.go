// Package config defines the lockbench configuration structure.
package config

// Default configuration values. Buckets and Keys match the original
// benchmark constants.
const (
	DefaultStrategy = "coarse"
	DefaultBuckets  = 5
	DefaultKeys     = 100000
	DefaultOutput   = "table"

	DefaultLogLevel  = "info"
	DefaultLogFormat = "text"
)

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		Bench: BenchSection{
			Strategy: DefaultStrategy,
			Buckets:  DefaultBuckets,
			Keys:     DefaultKeys,
			Output:   DefaultOutput,
		},
		Log: LogSection{
			Level:  DefaultLogLevel,
			Format: DefaultLogFormat,
		},
	}
}
