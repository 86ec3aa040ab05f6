package table

import "github.com/yndnr/lockbench-go/pkg/spinlock"

// spinTable guards each bucket with a busy-wait exclusive lock. There is
// no reader/writer distinction: Insert and Lookup both hold the lock for
// their whole critical section and spin until acquired.
//
// Appropriate only because chain scans are short and bounded; the
// discipline trades CPU under contention for never paying the
// block/wake-up scheduling cost of a sleeping lock.
type spinTable struct {
	buckets []spinBucket
}

type spinBucket struct {
	mu   spinlock.Mutex
	head *entry
}

func newSpinTable(bucketCount int) *spinTable {
	return &spinTable{buckets: make([]spinBucket, bucketCount)}
}

func (t *spinTable) Strategy() Strategy { return StrategySpin }

func (t *spinTable) Insert(key, value int64) {
	b := &t.buckets[bucketIndex(key, len(t.buckets))]
	b.mu.Lock()
	defer b.mu.Unlock()

	if e := find(b.head, key); e != nil {
		e.value = value
		return
	}
	b.head = &entry{key: key, value: value, next: b.head}
}

func (t *spinTable) Lookup(key int64) (Snapshot, bool) {
	b := &t.buckets[bucketIndex(key, len(t.buckets))]
	b.mu.Lock()
	defer b.mu.Unlock()

	e := find(b.head, key)
	if e == nil {
		return Snapshot{}, false
	}
	return Snapshot{Key: e.key, Value: e.value}, true
}

func (t *spinTable) Count() int {
	n := 0
	for i := range t.buckets {
		b := &t.buckets[i]
		b.mu.Lock()
		n += chainLen(b.head)
		b.mu.Unlock()
	}
	return n
}

func (t *spinTable) Close() {
	for i := range t.buckets {
		b := &t.buckets[i]
		b.mu.Lock()
		b.head = nil
		b.mu.Unlock()
	}
}
