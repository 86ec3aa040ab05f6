package bench

import (
	"encoding/binary"
	"time"

	"github.com/spaolacci/murmur3"
)

// Workload is the fixed key set shared read-only by all workers. It is
// generated once before the put phase and never mutated afterwards, so
// workers read it without synchronization.
type Workload struct {
	Seed int64
	Keys []int64
}

// NewWorkload derives count keys from seed using MurmurHash3, so a run
// is reproducible for a fixed seed. Seed 0 derives one from the clock,
// matching the classic seed-from-time behavior.
func NewWorkload(count int, seed int64) *Workload {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	keys := make([]int64, count)
	var buf [16]byte
	binary.LittleEndian.PutUint64(buf[:8], uint64(seed))
	for i := range keys {
		binary.LittleEndian.PutUint64(buf[8:], uint64(i))
		// Shift keeps keys non-negative, like the C library random().
		keys[i] = int64(murmur3.Sum64(buf[:]) >> 1)
	}

	return &Workload{Seed: seed, Keys: keys}
}

// Fixed wraps an explicit key slice as a workload, for tests and
// replaying known-bad key sets.
func Fixed(keys []int64) *Workload {
	return &Workload{Keys: keys}
}
