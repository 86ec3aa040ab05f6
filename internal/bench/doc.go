// Package bench drives the two-phase hash table benchmark.
//
// A run builds an empty table for the selected locking discipline,
// spawns a fixed pool of workers for the put phase, joins them, spawns
// the pool again for the get phase, joins, and reports counts and
// elapsed wall time. The phases are strictly sequential: no get worker
// observes the table before every put worker has finished.
//
// Work is partitioned by stride: worker t handles every workload index i
// with i mod workers == t, so each index belongs to exactly one worker
// in both phases. Get-phase misses are counted in per-worker private
// counters and only summed after the join barrier, so the measurement
// itself introduces no shared mutable state.
package bench
