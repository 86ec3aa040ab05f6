package table

import (
	"errors"
	"fmt"
)

// DefaultBucketCount is the default number of buckets.
const DefaultBucketCount = 5

// Strategy names a locking discipline.
type Strategy string

const (
	// StrategyCoarse guards each bucket with a single RWMutex.
	StrategyCoarse Strategy = "coarse"
	// StrategyTwoLevel combines a bucket RWMutex with per-entry locks.
	StrategyTwoLevel Strategy = "twolevel"
	// StrategySpin guards each bucket with a busy-wait exclusive lock.
	StrategySpin Strategy = "spin"
)

// Strategies lists all disciplines in their canonical order.
func Strategies() []Strategy {
	return []Strategy{StrategyCoarse, StrategyTwoLevel, StrategySpin}
}

// ErrUnknownStrategy is returned by New for an unrecognized strategy name.
var ErrUnknownStrategy = errors.New("table: unknown strategy")

// Snapshot is an independent copy of one entry, detached from the table.
// It stays valid after every lock has been released, even if a later
// insert overwrites the entry it was copied from.
type Snapshot struct {
	Key   int64 `json:"key" yaml:"key"`
	Value int64 `json:"value" yaml:"value"`
}

// Table is a fixed-size chained hash table.
//
// Insert and Lookup are safe for concurrent use between New and Close.
// Neither blocks indefinitely: an operation holds at most one bucket
// lock plus, in the twolevel discipline, one entry lock nested inside it.
type Table interface {
	// Insert stores value under key, updating the existing entry in
	// place if the key is already present. A chain never holds two
	// entries with the same key.
	Insert(key, value int64)

	// Lookup returns a snapshot copy of the entry for key, or ok=false
	// if the key is absent.
	Lookup(key int64) (snap Snapshot, ok bool)

	// Count returns the number of entries in the table.
	Count() int

	// Strategy reports the discipline guarding this table.
	Strategy() Strategy

	// Close detaches every chain under each bucket's exclusive lock.
	// The table must not be used afterwards.
	Close()
}

// New builds an empty table with bucketCount buckets guarded by the
// given discipline.
func New(s Strategy, bucketCount int) (Table, error) {
	if bucketCount <= 0 {
		return nil, fmt.Errorf("table: bucket count must be positive, got %d", bucketCount)
	}
	switch s {
	case StrategyCoarse:
		return newCoarseTable(bucketCount), nil
	case StrategyTwoLevel:
		return newTwoLevelTable(bucketCount), nil
	case StrategySpin:
		return newSpinTable(bucketCount), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownStrategy, s)
	}
}

// bucketIndex maps a key to its bucket. The result is non-negative even
// for negative keys, so the key-to-bucket mapping is total.
func bucketIndex(key int64, bucketCount int) int {
	i := key % int64(bucketCount)
	if i < 0 {
		i += int64(bucketCount)
	}
	return int(i)
}
