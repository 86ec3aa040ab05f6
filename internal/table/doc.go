// Package table implements a fixed-size, chained, sharded hash table
// guarded by one of three interchangeable locking disciplines.
//
// The table is deliberately minimal: it never resizes, never deletes and
// never persists. Every key lives in the bucket selected by key mod
// bucket count, as the head-linked chain of entries. Insert either
// updates an existing entry's value in place or prepends a new entry;
// Lookup returns an independent snapshot copy so callers can inspect the
// result after every lock has been released.
//
// Three disciplines guard the same bucket shape:
//
//   - coarse: one RWMutex per bucket. Writers take the write lock for
//     the whole scan-then-mutate sequence, readers share the read lock.
//   - twolevel: a bucket RWMutex plus one mutex per entry. Updating an
//     existing key only needs the bucket read lock and the entry's own
//     lock, so readers of other keys in the same bucket are not blocked.
//     Prepending escalates to the write lock with a mandatory re-scan.
//   - spin: one busy-wait exclusive lock per bucket, held for the whole
//     critical section by both Insert and Lookup.
//
// All operations are safe for any number of concurrent callers between
// New and Close.
package table
