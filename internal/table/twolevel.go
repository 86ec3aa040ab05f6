package table

import "sync"

// twoLevelTable combines a per-bucket reader-writer lock with a
// per-entry mutex guarding each entry's value.
//
// The common case, updating an existing key, needs only the bucket read
// lock plus the entry's own lock, so concurrent readers of other keys in
// the same bucket proceed without blocking. Only prepending a new entry
// escalates to the bucket write lock, and the escalation re-scans the
// chain because another writer may have inserted the same key during the
// window between releasing the read lock and acquiring the write lock.
type twoLevelTable struct {
	buckets []twoLevelBucket
}

type twoLevelBucket struct {
	mu   sync.RWMutex
	head *lockedEntry
}

func newTwoLevelTable(bucketCount int) *twoLevelTable {
	return &twoLevelTable{buckets: make([]twoLevelBucket, bucketCount)}
}

func (t *twoLevelTable) Strategy() Strategy { return StrategyTwoLevel }

func (t *twoLevelTable) Insert(key, value int64) {
	b := &t.buckets[bucketIndex(key, len(t.buckets))]

	// Optimistic path: the key usually exists, and updating it needs
	// no bucket-wide exclusivity.
	b.mu.RLock()
	if e := findLocked(b.head, key); e != nil {
		e.mu.Lock()
		e.value = value
		e.mu.Unlock()
		b.mu.RUnlock()
		return
	}
	b.mu.RUnlock()

	b.mu.Lock()
	defer b.mu.Unlock()

	// Double-check: a racing writer may have prepended this key while
	// we held no lock.
	if e := findLocked(b.head, key); e != nil {
		e.mu.Lock()
		e.value = value
		e.mu.Unlock()
		return
	}
	b.head = &lockedEntry{key: key, value: value, next: b.head}
}

func (t *twoLevelTable) Lookup(key int64) (Snapshot, bool) {
	b := &t.buckets[bucketIndex(key, len(t.buckets))]
	b.mu.RLock()
	defer b.mu.RUnlock()

	e := findLocked(b.head, key)
	if e == nil {
		return Snapshot{}, false
	}
	e.mu.Lock()
	snap := Snapshot{Key: e.key, Value: e.value}
	e.mu.Unlock()
	return snap, true
}

func (t *twoLevelTable) Count() int {
	n := 0
	for i := range t.buckets {
		b := &t.buckets[i]
		b.mu.RLock()
		n += lockedChainLen(b.head)
		b.mu.RUnlock()
	}
	return n
}

func (t *twoLevelTable) Close() {
	for i := range t.buckets {
		b := &t.buckets[i]
		b.mu.Lock()
		b.head = nil
		b.mu.Unlock()
	}
}
