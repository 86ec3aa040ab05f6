package table

import "sync"

// coarseTable guards each bucket with a single reader-writer lock.
//
// Insert holds the write lock for the full scan-then-mutate sequence;
// Lookup holds the read lock for the full scan-and-copy sequence. Simple
// and correct, but readers and writers of the same bucket fully
// serialize against each other.
type coarseTable struct {
	buckets []coarseBucket
}

type coarseBucket struct {
	mu   sync.RWMutex
	head *entry
}

func newCoarseTable(bucketCount int) *coarseTable {
	return &coarseTable{buckets: make([]coarseBucket, bucketCount)}
}

func (t *coarseTable) Strategy() Strategy { return StrategyCoarse }

func (t *coarseTable) Insert(key, value int64) {
	b := &t.buckets[bucketIndex(key, len(t.buckets))]
	b.mu.Lock()
	defer b.mu.Unlock()

	if e := find(b.head, key); e != nil {
		e.value = value
		return
	}
	b.head = &entry{key: key, value: value, next: b.head}
}

func (t *coarseTable) Lookup(key int64) (Snapshot, bool) {
	b := &t.buckets[bucketIndex(key, len(t.buckets))]
	b.mu.RLock()
	defer b.mu.RUnlock()

	e := find(b.head, key)
	if e == nil {
		return Snapshot{}, false
	}
	return Snapshot{Key: e.key, Value: e.value}, true
}

func (t *coarseTable) Count() int {
	n := 0
	for i := range t.buckets {
		b := &t.buckets[i]
		b.mu.RLock()
		n += chainLen(b.head)
		b.mu.RUnlock()
	}
	return n
}

func (t *coarseTable) Close() {
	for i := range t.buckets {
		b := &t.buckets[i]
		b.mu.Lock()
		b.head = nil
		b.mu.Unlock()
	}
}
